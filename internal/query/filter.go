// Package query turns free-text requirements into a FilterSet and matches
// catalogue products against it.
package query

import "github.com/HerbHall/specmatch/pkg/catalog"

// FilterSet is the set of constraints extracted from one query. Optional
// constraints are nil when absent, so an explicit zero is still a constraint.
type FilterSet struct {
	IsMobile bool             `json:"is_mobile"`
	Brand    *string          `json:"brand"`
	RAM      *int             `json:"ram"`
	Storage  *int             `json:"storage"`
	PriceMax *int             `json:"price_max"`
	PriceMin *int             `json:"price_min"`
	UseCase  *catalog.UseCase `json:"use_case"`
}

// HasRealFilter reports whether at least one constraint is active. A query
// without any is treated as unparseable.
func (f FilterSet) HasRealFilter() bool {
	return f.IsMobile ||
		f.Brand != nil ||
		f.RAM != nil ||
		f.Storage != nil ||
		f.PriceMax != nil ||
		f.PriceMin != nil ||
		f.UseCase != nil
}

// Match reports whether p satisfies every active constraint.
func (f FilterSet) Match(p catalog.Product) bool {
	if f.IsMobile && p.Category != catalog.CategoryMobile {
		return false
	}
	if f.Brand != nil && p.Brand != *f.Brand {
		return false
	}
	if f.RAM != nil && p.RAM != *f.RAM {
		return false
	}
	if f.Storage != nil && p.Storage != *f.Storage {
		return false
	}
	if f.PriceMax != nil && p.Price > *f.PriceMax {
		return false
	}
	if f.PriceMin != nil && p.Price < *f.PriceMin {
		return false
	}
	if f.UseCase != nil && p.UseCase != *f.UseCase {
		return false
	}
	return true
}

// Filter returns the products that match f, in their original order. The
// result is never nil.
func (f FilterSet) Filter(products []catalog.Product) []catalog.Product {
	out := make([]catalog.Product, 0, len(products))
	for i := range products {
		if f.Match(products[i]) {
			out = append(out, products[i])
		}
	}
	return out
}
