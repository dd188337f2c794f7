package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// pathID parses a numeric path parameter. A non-numeric value behaves like
// an unknown identifier (the route only matches integers in the real API),
// so callers turn ok=false into their entity's 404.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// queryInt reads an integer query parameter, falling back to def when the
// parameter is absent or malformed.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

// queryInt64Ptr reads an optional integer query parameter as a pointer;
// absent or malformed values yield nil (the predicate is not applied).
func queryInt64Ptr(r *http.Request, name string) *int64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

// queryBoolPtr reads an optional boolean query parameter as a pointer.
// Any present value other than "true" (case-insensitive) means false,
// matching the reference behavior.
func queryBoolPtr(r *http.Request, name string) *bool {
	if !r.URL.Query().Has(name) {
		return nil
	}
	v := strings.EqualFold(r.URL.Query().Get(name), "true")
	return &v
}
