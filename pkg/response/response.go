package response

import (
	"encoding/json"
	"net/http"

	"etsy-mock-api/pkg/apierror"
)

// Collection is the envelope for list endpoints: {"count": n, "results": [...]}.
type Collection struct {
	Count   int         `json:"count"`
	Results interface{} `json:"results"`
}

// JSON sends a JSON response with the given status code.
// Records are sent bare, without a success wrapper, to match the real API.
func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// List sends a 200 collection response with the match count computed
// before pagination.
func List(w http.ResponseWriter, count int, results interface{}) {
	JSON(w, http.StatusOK, Collection{Count: count, Results: results})
}

// Error sends an error response.
func Error(w http.ResponseWriter, err error) {
	apiErr, ok := err.(*apierror.Error)
	if !ok {
		apiErr = apierror.InternalError("an unexpected error occurred")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.StatusCode)
	w.Write(apiErr.ToJSON())
}

// Created sends a 201 Created response with the created resource.
func Created(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusCreated, data)
}

// OK sends a 200 OK response.
func OK(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, data)
}
