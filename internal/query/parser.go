package query

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/HerbHall/specmatch/pkg/catalog"
)

var (
	mobilePattern     = regexp.MustCompile(`\b(?:mobiles?|phones?)\b`)
	ramPattern        = regexp.MustCompile(`(\d+)\s*gb\s*ram`)
	storagePattern    = regexp.MustCompile(`(\d+)\s*gb\s*storage`)
	underKPattern     = regexp.MustCompile(`under\s*(\d+)\s*k`)
	underAbsPattern   = regexp.MustCompile(`under\s*(\d{4,6})`)
	aboveKPattern     = regexp.MustCompile(`above\s*(\d+)\s*k`)
	useCaseByPriority = []catalog.UseCase{
		catalog.UseCaseGaming,
		catalog.UseCaseCamera,
		catalog.UseCaseBudget,
		catalog.UseCasePremium,
	}
)

// brandPattern pairs a known brand with its whole-word matcher.
type brandPattern struct {
	brand string
	re    *regexp.Regexp
}

// Parser extracts a FilterSet from free text. It only recognises brands it
// was constructed with. A Parser is immutable and safe for concurrent use.
type Parser struct {
	brands []brandPattern
}

// NewParser creates a Parser for the given brand vocabulary. Brands are
// matched case-insensitively; empty and duplicate entries are ignored.
func NewParser(brands []string) *Parser {
	p := &Parser{}
	seen := make(map[string]struct{}, len(brands))
	for _, b := range brands {
		b = strings.ToLower(strings.TrimSpace(b))
		if b == "" {
			continue
		}
		if _, dup := seen[b]; dup {
			continue
		}
		seen[b] = struct{}{}
		p.brands = append(p.brands, brandPattern{
			brand: b,
			re:    regexp.MustCompile(`\b` + regexp.QuoteMeta(b) + `\b`),
		})
	}
	return p
}

// Parse converts text into a FilterSet. It never fails: text with nothing
// recognisable yields the zero FilterSet. Every rule runs independently.
func (p *Parser) Parse(text string) FilterSet {
	q := strings.ToLower(text)
	var f FilterSet

	if mobilePattern.MatchString(q) {
		f.IsMobile = true
	}

	if b, ok := p.matchBrand(q); ok {
		f.Brand = &b
	}

	if n, ok := captureInt(ramPattern, q, 1); ok {
		f.RAM = &n
	}
	if n, ok := captureInt(storagePattern, q, 1); ok {
		f.Storage = &n
	}

	// The absolute form runs second and wins when both forms match.
	if n, ok := captureInt(underKPattern, q, 1000); ok {
		f.PriceMax = &n
	}
	if n, ok := captureInt(underAbsPattern, q, 1); ok {
		f.PriceMax = &n
	}

	if n, ok := captureInt(aboveKPattern, q, 1000); ok {
		f.PriceMin = &n
	}

	// Substring containment, not whole word: "budgetary" means budget.
	for _, u := range useCaseByPriority {
		if strings.Contains(q, string(u)) {
			uc := u
			f.UseCase = &uc
			break
		}
	}

	return f
}

// matchBrand returns the known brand whose first whole-word occurrence comes
// earliest in q. Equal positions go to the longer brand.
func (p *Parser) matchBrand(q string) (string, bool) {
	best, bestPos := "", -1
	for _, bp := range p.brands {
		loc := bp.re.FindStringIndex(q)
		if loc == nil {
			continue
		}
		pos := loc[0]
		if bestPos == -1 || pos < bestPos || (pos == bestPos && len(bp.brand) > len(best)) {
			best, bestPos = bp.brand, pos
		}
	}
	return best, bestPos >= 0
}

// captureInt returns the first submatch of re in q multiplied by scale.
// Values too large for an int saturate at math.MaxInt, so the constraint is
// kept and simply matches nothing (or everything, for a ceiling).
func captureInt(re *regexp.Regexp, q string, scale int) (int, bool) {
	m := re.FindStringSubmatch(q)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxInt, true
	}
	if err != nil {
		return 0, false
	}
	if scale > 1 && n > math.MaxInt/scale {
		return math.MaxInt, true
	}
	return n * scale, true
}
