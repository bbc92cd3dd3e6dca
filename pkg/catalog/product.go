package catalog

// UseCase is the usage niche derived for a product from its specs and price.
type UseCase string

const (
	UseCaseGaming   UseCase = "gaming"
	UseCaseCamera   UseCase = "camera"
	UseCaseBudget   UseCase = "budget"
	UseCasePremium  UseCase = "premium"
	UseCaseEveryday UseCase = "everyday"
)

// CategoryMobile is the only category present in the default catalogue.
const CategoryMobile = "mobile"

// Valid reports whether u is one of the known use-case labels.
func (u UseCase) Valid() bool {
	switch u {
	case UseCaseGaming, UseCaseCamera, UseCaseBudget, UseCasePremium, UseCaseEveryday:
		return true
	}
	return false
}

// ParseUseCase converts s to a UseCase. ok is false for unknown labels.
func ParseUseCase(s string) (UseCase, bool) {
	u := UseCase(s)
	return u, u.Valid()
}

// RawProduct is a catalogue record as it appears in the source data, before
// the use case is derived.
type RawProduct struct {
	Name     string `yaml:"name" validate:"required"`
	Brand    string `yaml:"brand" validate:"required"`
	Category string `yaml:"category" validate:"required"`
	Price    int    `yaml:"price" validate:"gt=0"`
	RAM      int    `yaml:"ram" validate:"gt=0"`
	Storage  int    `yaml:"storage" validate:"gt=0"`
}

// Product is an enriched, read-only catalogue entry.
type Product struct {
	Name     string  `json:"name"`
	Brand    string  `json:"brand"`
	Category string  `json:"category"`
	Price    int     `json:"price"`
	RAM      int     `json:"ram"`
	Storage  int     `json:"storage"`
	UseCase  UseCase `json:"use_case"`
}
