package api

import (
	"context"
	"net/http"
	"time"

	"github.com/studyroom/studyroom-api/internal/api/shared"
	"github.com/studyroom/studyroom-api/internal/platform/logger"
)

// Pinger reports whether the underlying connection is alive. *sql.DB
// satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler reports database connectivity.
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler creates a new HealthHandler backed by the given
// connection.
func NewHealthHandler(db Pinger) *HealthHandler {
	if db == nil {
		panic("db cannot be nil")
	}
	return &HealthHandler{db: db}
}

// healthResponse is the body for GET /health.
type healthResponse struct {
	Database string `json:"database"`
}

// Check handles GET /health.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		logger.FromContext(r.Context()).Error("database ping failed", "error", err)
		shared.RespondWithJSON(w, r, http.StatusServiceUnavailable,
			healthResponse{Database: "disconnected"})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, healthResponse{Database: "connected"})
}
