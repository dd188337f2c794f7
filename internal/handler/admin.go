package handler

import (
	"net/http"
	"runtime"
	"time"

	"etsy-mock-api/internal/repository"
	"etsy-mock-api/pkg/response"
)

// AdminHandler serves the internal observability endpoints.
type AdminHandler struct {
	store     *repository.MemoryStore
	logs      repository.RequestLogRepository
	startTime time.Time
}

// NewAdminHandler creates a new admin handler. logs may be nil when the
// request audit log is disabled.
func NewAdminHandler(store *repository.MemoryStore, logs repository.RequestLogRepository) *AdminHandler {
	return &AdminHandler{
		store:     store,
		logs:      logs,
		startTime: time.Now(),
	}
}

// GetStats handles GET /internal/stats
func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	stats := make(map[string]interface{})

	stats["uptime_seconds"] = int64(time.Since(h.startTime).Seconds())
	stats["server_time"] = time.Now().UTC().Format(time.RFC3339)

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	stats["memory"] = map[string]interface{}{
		"alloc_mb":   float64(memStats.Alloc) / 1024 / 1024,
		"sys_mb":     float64(memStats.Sys) / 1024 / 1024,
		"num_gc":     memStats.NumGC,
		"goroutines": runtime.NumGoroutine(),
	}

	shops, _ := h.store.ListShops(ctx)
	receipts, _ := h.store.ListReceipts(ctx)
	listings, _ := h.store.ListListings(ctx)
	stats["entities"] = map[string]int{
		"shops":    len(shops),
		"receipts": len(receipts),
		"listings": len(listings),
	}

	if h.logs != nil {
		if _, total, err := h.logs.List(ctx, 1, 0); err == nil {
			stats["request_log"] = map[string]interface{}{
				"status":   "enabled",
				"recorded": total,
			}
		} else {
			stats["request_log"] = map[string]interface{}{
				"status": "error",
				"error":  err.Error(),
			}
		}
	} else {
		stats["request_log"] = map[string]interface{}{
			"status": "disabled",
		}
	}

	response.OK(w, stats)
}
