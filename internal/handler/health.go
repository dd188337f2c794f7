package handler

import (
	"net/http"
	"time"

	"etsy-mock-api/pkg/response"
)

// Handler contains the unauthenticated informational endpoints.
type Handler struct {
	appName string
	version string
}

// New creates a new handler.
func New(appName, version string) *Handler {
	return &Handler{appName: appName, version: version}
}

// PingResponse represents the openapi-ping response.
type PingResponse struct {
	Application string `json:"application"`
	Version     string `json:"version"`
	Timestamp   int64  `json:"timestamp"`
}

// Ping handles GET /v3/application/openapi-ping - the liveness/version probe.
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	response.OK(w, PingResponse{
		Application: h.appName,
		Version:     h.version,
		Timestamp:   time.Now().Unix(),
	})
}

// Root handles GET / - an index of the API surface for humans poking at the
// mock with curl.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]interface{}{
		"name":          "Mock Etsy API v3",
		"version":       h.version,
		"description":   "Mock Etsy API server for development and testing",
		"documentation": "https://developer.etsy.com/documentation/",
		"endpoints": map[string]string{
			"oauth":    "/v3/public/oauth/token",
			"ping":     "/v3/application/openapi-ping",
			"shops":    "/v3/application/shops/{shop_id}",
			"receipts": "/v3/application/shops/{shop_id}/receipts",
			"listings": "/v3/application/shops/{shop_id}/listings",
		},
	})
}
