package handler

import (
	"net/http"

	"etsy-mock-api/internal/repository"
	"etsy-mock-api/pkg/apierror"
	"etsy-mock-api/pkg/response"
)

// RequestLogHandler serves the recorded API traffic.
type RequestLogHandler struct {
	logs repository.RequestLogRepository
}

// NewRequestLogHandler creates a new request log handler.
func NewRequestLogHandler(logs repository.RequestLogRepository) *RequestLogHandler {
	return &RequestLogHandler{logs: logs}
}

// List handles GET /internal/requests - paginated, newest first.
func (h *RequestLogHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.logs == nil {
		response.Error(w, apierror.NotFound("Request log is disabled"))
		return
	}

	limit := queryInt(r, "limit", 50)
	if limit < 1 || limit > 500 {
		limit = 50
	}
	offset := queryInt(r, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	entries, total, err := h.logs.List(r.Context(), limit, offset)
	if err != nil {
		response.Error(w, apierror.InternalError("failed to fetch request log"))
		return
	}
	response.List(w, int(total), entries)
}
