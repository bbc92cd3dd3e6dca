// Package catalog provides the recommendation engine that answers free-text
// requirement queries against the product catalogue, and its HTTP API.
package catalog

import (
	"context"
	"fmt"

	"github.com/HerbHall/specmatch/internal/metrics"
	"github.com/HerbHall/specmatch/internal/query"
	pkgcatalog "github.com/HerbHall/specmatch/pkg/catalog"
	"go.uber.org/zap"
)

// Status is the outcome of a recommendation query.
type Status string

const (
	StatusSuccess Status = "success"
	StatusWarning Status = "warning"
	StatusError   Status = "error"
)

// Messages surfaced to callers for each outcome.
const (
	MessageNoRequirement = "no valid requirement detected"
	MessageNoMatch       = "no product matches all the conditions"
)

// Recommendation is the result of one query.
type Recommendation struct {
	Query    string               `json:"query"`
	Status   Status               `json:"status"`
	Message  string               `json:"message"`
	Filters  query.FilterSet      `json:"filters"`
	Count    int                  `json:"count"`
	Products []pkgcatalog.Product `json:"products"`
}

// Engine matches parsed queries against an immutable catalogue.
type Engine struct {
	cat    *pkgcatalog.Catalog
	parser *query.Parser
	logger *zap.Logger
}

// NewEngine creates a recommendation engine backed by the given catalogue.
// The parser vocabulary is the catalogue's brand set.
func NewEngine(cat *pkgcatalog.Catalog, logger *zap.Logger) *Engine {
	return &Engine{
		cat:    cat,
		parser: query.NewParser(cat.Brands()),
		logger: logger.Named("engine"),
	}
}

// Catalog returns the catalogue the engine serves.
func (e *Engine) Catalog() *pkgcatalog.Catalog {
	return e.cat
}

// Recommend parses text and returns every catalogue entry that satisfies all
// recognised constraints, in catalogue order. Text with no recognised
// constraint yields StatusError and no products.
func (e *Engine) Recommend(_ context.Context, text string) Recommendation {
	filters := e.parser.Parse(text)
	rec := Recommendation{
		Query:    text,
		Filters:  filters,
		Products: []pkgcatalog.Product{},
	}

	if !filters.HasRealFilter() {
		rec.Status = StatusError
		rec.Message = MessageNoRequirement
		e.observe(rec)
		return rec
	}

	rec.Products = filters.Filter(e.cat.Products())
	rec.Count = len(rec.Products)
	if rec.Count > 0 {
		rec.Status = StatusSuccess
		rec.Message = fmt.Sprintf("%d product(s) found", rec.Count)
	} else {
		rec.Status = StatusWarning
		rec.Message = MessageNoMatch
	}

	metrics.QueryMatches.Observe(float64(rec.Count))
	e.observe(rec)
	return rec
}

func (e *Engine) observe(rec Recommendation) {
	metrics.QueriesTotal.WithLabelValues(string(rec.Status)).Inc()
	e.logger.Debug("recommendation query",
		zap.String("query", rec.Query),
		zap.String("status", string(rec.Status)),
		zap.Int("count", rec.Count),
		zap.Any("filters", rec.Filters),
	)
}
