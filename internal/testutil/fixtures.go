package testutil

import (
	"testing"

	"github.com/google/uuid"

	"github.com/HerbHall/specmatch/pkg/catalog"
)

// NewRawProduct returns a catalogue record with sensible defaults, suitable
// for test fixtures. The name carries a random suffix so records built in a
// loop stay distinguishable.
func NewRawProduct(opts ...func(*catalog.RawProduct)) catalog.RawProduct {
	p := catalog.RawProduct{
		Name:     "Test Phone " + uuid.NewString()[:8],
		Brand:    "acme",
		Category: catalog.CategoryMobile,
		Price:    19999,
		RAM:      6,
		Storage:  128,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// WithName sets the product name.
func WithName(name string) func(*catalog.RawProduct) {
	return func(p *catalog.RawProduct) { p.Name = name }
}

// WithBrand sets the product brand.
func WithBrand(brand string) func(*catalog.RawProduct) {
	return func(p *catalog.RawProduct) { p.Brand = brand }
}

// WithCategory sets the product category.
func WithCategory(category string) func(*catalog.RawProduct) {
	return func(p *catalog.RawProduct) { p.Category = category }
}

// WithPrice sets the price in rupees.
func WithPrice(price int) func(*catalog.RawProduct) {
	return func(p *catalog.RawProduct) { p.Price = price }
}

// WithMemory sets RAM and storage in GB.
func WithMemory(ram, storage int) func(*catalog.RawProduct) {
	return func(p *catalog.RawProduct) {
		p.RAM = ram
		p.Storage = storage
	}
}

// NewCatalog builds a catalogue from raw records, failing the test on error.
func NewCatalog(t testing.TB, raw ...catalog.RawProduct) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Build(raw)
	if err != nil {
		t.Fatalf("testutil.NewCatalog: %v", err)
	}
	return c
}
