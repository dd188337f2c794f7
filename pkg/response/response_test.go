package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"etsy-mock-api/pkg/apierror"

	"github.com/stretchr/testify/assert"
)

func TestList(t *testing.T) {
	rec := httptest.NewRecorder()
	List(rec, 3, []string{"a"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	// Count is the total match count, independent of the page size.
	assert.JSONEq(t, `{"count": 3, "results": ["a"]}`, rec.Body.String())
}

func TestErrorWithAPIError(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, apierror.NotFound("Shop not found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "Shop not found"}`, rec.Body.String())
}

func TestErrorWithPlainError(t *testing.T) {
	// Anything that is not an *apierror.Error collapses to a generic 500.
	rec := httptest.NewRecorder()
	Error(rec, errors.New("database exploded"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error": "an unexpected error occurred"}`, rec.Body.String())
}

func TestCreated(t *testing.T) {
	rec := httptest.NewRecorder()
	Created(rec, map[string]int{"listing_id": 1})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"listing_id": 1}`, rec.Body.String())
}
