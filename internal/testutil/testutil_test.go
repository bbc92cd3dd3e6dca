package testutil

import (
	"strings"
	"testing"

	"github.com/HerbHall/specmatch/pkg/catalog"
)

func TestLogger_NotNil(t *testing.T) {
	l := Logger(t)
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	l.Debug("logger smoke test")
}

func TestNewRawProduct_Defaults(t *testing.T) {
	p := NewRawProduct()
	if !strings.HasPrefix(p.Name, "Test Phone ") {
		t.Errorf("Name = %q, want prefix %q", p.Name, "Test Phone ")
	}
	if p.Brand != "acme" {
		t.Errorf("Brand = %q, want acme", p.Brand)
	}
	if p.Category != catalog.CategoryMobile {
		t.Errorf("Category = %q, want %q", p.Category, catalog.CategoryMobile)
	}
	if p.Price <= 0 || p.RAM <= 0 || p.Storage <= 0 {
		t.Errorf("numeric defaults must be positive, got %+v", p)
	}
	if other := NewRawProduct(); other.Name == p.Name {
		t.Errorf("two fixtures share name %q", p.Name)
	}
}

func TestNewRawProduct_Options(t *testing.T) {
	p := NewRawProduct(
		WithName("Acme Max"),
		WithBrand("zeta"),
		WithCategory("tablet"),
		WithPrice(45000),
		WithMemory(12, 512),
	)
	want := catalog.RawProduct{Name: "Acme Max", Brand: "zeta", Category: "tablet", Price: 45000, RAM: 12, Storage: 512}
	if p != want {
		t.Errorf("NewRawProduct() = %+v, want %+v", p, want)
	}
}

func TestNewCatalog(t *testing.T) {
	c := NewCatalog(t,
		NewRawProduct(WithBrand("acme")),
		NewRawProduct(WithBrand("zeta")),
	)
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	if !c.HasBrand("zeta") {
		t.Error("HasBrand(zeta) = false, want true")
	}
}
