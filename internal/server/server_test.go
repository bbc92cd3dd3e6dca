package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/HerbHall/specmatch/internal/testutil"
)

type routeFunc func(mux *http.ServeMux)

func (f routeFunc) RegisterRoutes(mux *http.ServeMux) { f(mux) }

func newTestServer(t *testing.T, opts Options, registrars ...RouteRegistrar) http.Handler {
	t.Helper()
	return New("127.0.0.1:0", opts, testutil.Logger(t), registrars...).Handler()
}

func TestHealth(t *testing.T) {
	h := newTestServer(t, Options{})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if got := w.Header().Get("X-SpecMatch-Version"); got != "dev" {
		t.Errorf("X-SpecMatch-Version = %q, want %q", got, "dev")
	}
	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %v, want ok", body["status"])
	}
	if body["service"] != "specmatch" {
		t.Errorf("service field = %v, want specmatch", body["service"])
	}
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestServer(t, Options{})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestUnknownRoute(t *testing.T) {
	h := newTestServer(t, Options{})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/nowhere", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("content-type = %q, want application/problem+json", ct)
	}
	var p Problem
	if err := json.NewDecoder(w.Body).Decode(&p); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if p.Instance != "/api/v1/nowhere" {
		t.Errorf("instance = %q, want /api/v1/nowhere", p.Instance)
	}
}

func TestRegistrarRoutesMounted(t *testing.T) {
	h := newTestServer(t, Options{}, routeFunc(func(mux *http.ServeMux) {
		mux.HandleFunc("GET /api/v1/ping", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/ping", nil))
	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNoContent)
	}
}

func TestRequestID(t *testing.T) {
	var seen string
	h := newTestServer(t, Options{}, routeFunc(func(mux *http.ServeMux) {
		mux.HandleFunc("GET /api/v1/echo", func(w http.ResponseWriter, r *http.Request) {
			seen = RequestIDFrom(r.Context())
			w.WriteHeader(http.StatusOK)
		})
	}))

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/echo", nil))
		id := w.Header().Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			t.Fatalf("%s = %q, want a UUID", RequestIDHeader, id)
		}
		if seen != id {
			t.Errorf("context id = %q, want %q", seen, id)
		}
	})

	t.Run("inbound preserved", func(t *testing.T) {
		inbound := uuid.NewString()
		req := httptest.NewRequest("GET", "/api/v1/echo", nil)
		req.Header.Set(RequestIDHeader, inbound)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		if got := w.Header().Get(RequestIDHeader); got != inbound {
			t.Errorf("%s = %q, want %q", RequestIDHeader, got, inbound)
		}
	})

	t.Run("malformed inbound replaced", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/echo", nil)
		req.Header.Set(RequestIDHeader, "not-an-id")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		got := w.Header().Get(RequestIDHeader)
		if _, err := uuid.Parse(got); err != nil {
			t.Errorf("%s = %q, want a fresh UUID", RequestIDHeader, got)
		}
	})
}

func TestRateLimit(t *testing.T) {
	h := newTestServer(t, Options{RateLimit: 0.001, RateBurst: 1})

	first := httptest.NewRecorder()
	h.ServeHTTP(first, httptest.NewRequest("GET", "/api/v1/health", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("first status = %d, want %d", first.Code, http.StatusOK)
	}

	second := httptest.NewRecorder()
	h.ServeHTTP(second, httptest.NewRequest("GET", "/api/v1/health", nil))
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("second status = %d, want %d", second.Code, http.StatusTooManyRequests)
	}
	if second.Header().Get("Retry-After") == "" {
		t.Error("Retry-After header missing")
	}
	if second.Header().Get(RequestIDHeader) == "" {
		t.Error("rate-limited response should still carry a request ID")
	}
}

func TestRateLimitDisabled(t *testing.T) {
	h := newTestServer(t, Options{RateLimit: -1})

	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/health", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want %d", i, w.Code, http.StatusOK)
		}
	}
}

func TestRecoverPanic(t *testing.T) {
	h := newTestServer(t, Options{}, routeFunc(func(mux *http.ServeMux) {
		mux.HandleFunc("GET /api/v1/boom", func(http.ResponseWriter, *http.Request) {
			panic("boom")
		})
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/boom", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
	var p Problem
	if err := json.NewDecoder(w.Body).Decode(&p); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if p.Type != ProblemTypeInternal {
		t.Errorf("type = %q, want %q", p.Type, ProblemTypeInternal)
	}
}
