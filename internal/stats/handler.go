// AngelaMos | 2026
// handler.go

package stats

import (
	"context"
	"net/http"
	"runtime"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/techbuzz-api/internal/core"
)

type RuntimeStats struct {
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutine"`
	NumCPU       int    `json:"num_cpu"`
	MemAlloc     uint64 `json:"mem_alloc_bytes"`
	MemSys       uint64 `json:"mem_sys_bytes"`
	NumGC        uint32 `json:"num_gc"`
}

type SystemStatsResponse struct {
	DatabaseHealthy bool         `json:"database_healthy"`
	Counts          Snapshot     `json:"counts"`
	Runtime         RuntimeStats `json:"runtime"`
}

type Handler struct {
	service *Service
	dbPing  func(ctx context.Context) error
}

func NewHandler(service *Service, dbPing func(ctx context.Context) error) *Handler {
	return &Handler{service: service, dbPing: dbPing}
}

// RegisterRoutes mounts the dashboard stats. The count snapshot is
// visible to moderators; the system view stays admin-only.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, moderatorOnly, adminOnly func(http.Handler) http.Handler,
) {
	r.With(authenticator, moderatorOnly).Get("/admin-stats", h.GetSnapshot)
	r.With(authenticator, adminOnly).Get("/admin-stats/system", h.GetSystemStats)
}

func (h *Handler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.service.Snapshot(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, snapshot)
}

func (h *Handler) GetSystemStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	snapshot, err := h.service.Snapshot(ctx)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	dbHealthy := true
	if h.dbPing != nil {
		if err := h.dbPing(ctx); err != nil {
			dbHealthy = false
		}
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	core.OK(w, SystemStatsResponse{
		DatabaseHealthy: dbHealthy,
		Counts:          *snapshot,
		Runtime: RuntimeStats{
			GoVersion:    runtime.Version(),
			NumGoroutine: runtime.NumGoroutine(),
			NumCPU:       runtime.NumCPU(),
			MemAlloc:     memStats.Alloc,
			MemSys:       memStats.Sys,
			NumGC:        memStats.NumGC,
		},
	})
}
