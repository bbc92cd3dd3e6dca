package server

import (
	"encoding/json"
	"net/http"
)

// Problem types for RFC 7807 Problem Details responses.
const (
	ProblemTypeNotFound        = "https://specmatch.dev/problems/not-found"
	ProblemTypeBadRequest      = "https://specmatch.dev/problems/bad-request"
	ProblemTypePayloadTooLarge = "https://specmatch.dev/problems/payload-too-large"
	ProblemTypeUnprocessable   = "https://specmatch.dev/problems/no-requirement"
	ProblemTypeInternal        = "https://specmatch.dev/problems/internal-error"
	ProblemTypeRateLimited     = "https://specmatch.dev/problems/rate-limited"
)

// Problem represents an RFC 7807 Problem Details response. Handlers that need
// extension members embed it in their own struct.
type Problem struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
}

// NewProblem builds a Problem whose title is the standard status text.
func NewProblem(typ string, status int, detail, instance string) Problem {
	return Problem{
		Type:     typ,
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: instance,
	}
}

// WriteProblem writes body as application/problem+json with the given status.
// body is a Problem or a struct embedding one.
func WriteProblem(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeProblem(w http.ResponseWriter, typ string, status int, detail, instance string) {
	WriteProblem(w, status, NewProblem(typ, status, detail, instance))
}

// NotFound writes a 404 problem response.
func NotFound(w http.ResponseWriter, detail, instance string) {
	writeProblem(w, ProblemTypeNotFound, http.StatusNotFound, detail, instance)
}

// BadRequest writes a 400 problem response.
func BadRequest(w http.ResponseWriter, detail, instance string) {
	writeProblem(w, ProblemTypeBadRequest, http.StatusBadRequest, detail, instance)
}

// PayloadTooLarge writes a 413 problem response.
func PayloadTooLarge(w http.ResponseWriter, detail, instance string) {
	writeProblem(w, ProblemTypePayloadTooLarge, http.StatusRequestEntityTooLarge, detail, instance)
}

// InternalError writes a 500 problem response.
func InternalError(w http.ResponseWriter, detail, instance string) {
	writeProblem(w, ProblemTypeInternal, http.StatusInternalServerError, detail, instance)
}

// RateLimited writes a 429 problem response.
func RateLimited(w http.ResponseWriter, detail, instance string) {
	writeProblem(w, ProblemTypeRateLimited, http.StatusTooManyRequests, detail, instance)
}
