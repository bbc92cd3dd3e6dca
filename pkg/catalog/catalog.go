// Package catalog holds the product catalogue: record types, the use-case
// classifier, and the builder that enriches raw records once at startup.
package catalog

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidProduct wraps every validation failure raised by Build.
var ErrInvalidProduct = errors.New("invalid product")

// Catalog is the enriched, immutable product list plus the set of brands it
// contains. It is safe for concurrent use.
type Catalog struct {
	products []Product
	brands   []string
}

var recordValidator = newRecordValidator()

func newRecordValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report yaml field names so errors point at the source document.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Build validates raw records, derives each record's use case, and collects
// the brand set. Input order is preserved. Any malformed record aborts the
// build so that a bad catalogue is never served.
func Build(raw []RawProduct) (*Catalog, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: catalogue is empty", ErrInvalidProduct)
	}

	products := make([]Product, 0, len(raw))
	seen := make(map[string]struct{})
	brands := make([]string, 0)

	for i, r := range raw {
		r.Brand = strings.ToLower(strings.TrimSpace(r.Brand))
		r.Name = strings.TrimSpace(r.Name)
		r.Category = strings.ToLower(strings.TrimSpace(r.Category))

		if err := validateRecord(i, r); err != nil {
			return nil, err
		}

		products = append(products, Product{
			Name:     r.Name,
			Brand:    r.Brand,
			Category: r.Category,
			Price:    r.Price,
			RAM:      r.RAM,
			Storage:  r.Storage,
			UseCase:  Classify(r.RAM, r.Storage, r.Brand, r.Price),
		})

		if _, ok := seen[r.Brand]; !ok {
			seen[r.Brand] = struct{}{}
			brands = append(brands, r.Brand)
		}
	}

	sort.Strings(brands)
	return &Catalog{products: products, brands: brands}, nil
}

func validateRecord(i int, r RawProduct) error {
	if err := recordValidator.Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: record %d (%q): field %s failed %q check",
				ErrInvalidProduct, i, r.Name, fe.Field(), fe.Tag())
		}
		return fmt.Errorf("%w: record %d: %v", ErrInvalidProduct, i, err)
	}
	if len(strings.Fields(r.Brand)) != 1 {
		return fmt.Errorf("%w: record %d (%q): brand %q must be a single token",
			ErrInvalidProduct, i, r.Name, r.Brand)
	}
	return nil
}

// Products returns a copy of all entries in catalogue order.
func (c *Catalog) Products() []Product {
	cp := make([]Product, len(c.products))
	copy(cp, c.products)
	return cp
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Brands returns the distinct brands, sorted.
func (c *Catalog) Brands() []string {
	cp := make([]string, len(c.brands))
	copy(cp, c.brands)
	return cp
}

// HasBrand reports whether brand appears in the catalogue.
func (c *Catalog) HasBrand(brand string) bool {
	i := sort.SearchStrings(c.brands, brand)
	return i < len(c.brands) && c.brands[i] == brand
}
