package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/HerbHall/specmatch/internal/query"
	"github.com/HerbHall/specmatch/internal/server"
	pkgcatalog "github.com/HerbHall/specmatch/pkg/catalog"
	"go.uber.org/zap"
)

// maxQueryBody caps the size of a recommendation request body.
const maxQueryBody = 4 << 10

// RecommendationRequest is the body for POST /api/v1/recommendations.
type RecommendationRequest struct {
	Query string `json:"query" example:"mobile 8gb ram under 30000 gaming"`
}

// CatalogResponse is the response for GET /api/v1/catalog/products.
type CatalogResponse struct {
	Count    int                  `json:"count"`
	Products []pkgcatalog.Product `json:"products"`
}

// BrandsResponse is the response for GET /api/v1/catalog/brands.
type BrandsResponse struct {
	Brands []string `json:"brands"`
}

// noRequirementProblem is the 422 body returned when a query carries no
// recognisable constraint.
type noRequirementProblem struct {
	server.Problem
	Query   string          `json:"query"`
	Filters query.FilterSet `json:"filters"`
}

// Handler serves the recommendation and catalogue API.
type Handler struct {
	engine *Engine
	logger *zap.Logger
}

// NewHandler creates a new catalogue API handler.
func NewHandler(engine *Engine, logger *zap.Logger) *Handler {
	return &Handler{engine: engine, logger: logger.Named("api")}
}

// RegisterRoutes implements server.RouteRegistrar.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/recommendations", h.handleRecommend)
	mux.HandleFunc("GET /api/v1/recommendations", h.handleRecommendQuery)
	mux.HandleFunc("GET /api/v1/catalog/products", h.handleListProducts)
	mux.HandleFunc("GET /api/v1/catalog/brands", h.handleListBrands)
}

// handleRecommend answers a free-text requirement.
//
//	@Summary		Recommend products
//	@Description	Parses a free-text requirement and returns every product satisfying all recognised constraints.
//	@Tags			recommendations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RecommendationRequest	true	"Requirement text"
//	@Success		200		{object}	Recommendation
//	@Failure		400		{object}	server.Problem
//	@Failure		413		{object}	server.Problem
//	@Failure		422		{object}	server.Problem
//	@Router			/recommendations [post]
func (h *Handler) handleRecommend(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxQueryBody)

	var req RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			server.PayloadTooLarge(w, fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit), r.URL.Path)
			return
		}
		server.BadRequest(w, "invalid request body", r.URL.Path)
		return
	}

	h.respond(w, r, req.Query)
}

// handleRecommendQuery is the GET form of handleRecommend.
//
//	@Summary		Recommend products (query string)
//	@Tags			recommendations
//	@Produce		json
//	@Param			q	query		string	false	"Requirement text"
//	@Success		200	{object}	Recommendation
//	@Failure		422	{object}	server.Problem
//	@Router			/recommendations [get]
func (h *Handler) handleRecommendQuery(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, r.URL.Query().Get("q"))
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, text string) {
	rec := h.engine.Recommend(r.Context(), text)

	if rec.Status == StatusError {
		h.logger.Debug("query rejected", zap.String("query", text))
		server.WriteProblem(w, http.StatusUnprocessableEntity, noRequirementProblem{
			Problem: server.NewProblem(server.ProblemTypeUnprocessable,
				http.StatusUnprocessableEntity, rec.Message, r.URL.Path),
			Query:   rec.Query,
			Filters: rec.Filters,
		})
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// handleListProducts returns the enriched catalogue.
//
//	@Summary		List catalogue products
//	@Description	Returns every catalogue entry including its derived use case, optionally narrowed by brand and use case.
//	@Tags			catalog
//	@Produce		json
//	@Param			brand		query		string	false	"Brand filter"
//	@Param			use_case	query		string	false	"Use case filter"	Enums(gaming, camera, budget, premium, everyday)
//	@Success		200			{object}	CatalogResponse
//	@Failure		400			{object}	server.Problem
//	@Failure		404			{object}	server.Problem
//	@Router			/catalog/products [get]
func (h *Handler) handleListProducts(w http.ResponseWriter, r *http.Request) {
	cat := h.engine.Catalog()
	var filters query.FilterSet

	if raw := r.URL.Query().Get("brand"); raw != "" {
		brand := strings.ToLower(strings.TrimSpace(raw))
		if !cat.HasBrand(brand) {
			server.NotFound(w, "unknown brand "+strconv.Quote(raw), r.URL.Path)
			return
		}
		filters.Brand = &brand
	}

	if raw := r.URL.Query().Get("use_case"); raw != "" {
		uc, ok := pkgcatalog.ParseUseCase(raw)
		if !ok {
			server.BadRequest(w, "unknown use_case "+strconv.Quote(raw), r.URL.Path)
			return
		}
		filters.UseCase = &uc
	}

	products := filters.Filter(cat.Products())
	writeJSON(w, http.StatusOK, CatalogResponse{
		Count:    len(products),
		Products: products,
	})
}

// handleListBrands returns the brands the query parser recognises.
//
//	@Summary		List known brands
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{object}	BrandsResponse
//	@Router			/catalog/brands [get]
func (h *Handler) handleListBrands(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, BrandsResponse{
		Brands: h.engine.Catalog().Brands(),
	})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
