package apierror

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *Error
		status int
		msg    string
	}{
		{"bad request", BadRequest("bad input"), http.StatusBadRequest, "bad input"},
		{"unauthorized", Unauthorized("no token"), http.StatusUnauthorized, "no token"},
		{"unauthorized default", Unauthorized(""), http.StatusUnauthorized, "Authentication required"},
		{"not found", NotFound("Shop not found"), http.StatusNotFound, "Shop not found"},
		{"not found default", NotFound(""), http.StatusNotFound, "Resource not found"},
		{"internal", InternalError("boom"), http.StatusInternalServerError, "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.StatusCode)
			assert.Equal(t, tt.msg, tt.err.Message)
			assert.Equal(t, tt.msg, tt.err.Error())
		})
	}
}

func TestToJSONWireShape(t *testing.T) {
	// The status code stays out of the body; only {"error": ...} goes out.
	body := NotFound("Listing not found").ToJSON()
	assert.JSONEq(t, `{"error": "Listing not found"}`, string(body))
}
