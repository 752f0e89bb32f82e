package handler

import (
	"context"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/wagneradl/mission-control/internal/api/response"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles liveness and readiness endpoints
type HealthHandler struct {
	store   Pinger
	started time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store Pinger) *HealthHandler {
	return &HealthHandler{store: store, started: time.Now()}
}

// Health reports process liveness with uptime and memory stats
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	uptime := time.Since(h.started)
	response.OK(w, map[string]any{
		"status": "healthy",
		"uptime": fmt.Sprintf("%dd %dh", int(uptime.Hours())/24, int(uptime.Hours())%24),
		"memory": map[string]uint64{
			"used":  mem.HeapAlloc / 1024 / 1024,
			"total": mem.HeapSys / 1024 / 1024,
		},
	})
}

// Ready reports whether the backing store answers a ping
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		response.Error(w, http.StatusServiceUnavailable, "store unreachable")
		return
	}

	response.OK(w, map[string]string{"status": "ready", "store": "connected"})
}
