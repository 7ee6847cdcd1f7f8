package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"ordersvc/internal/dto"
)

// Pinger is the subset of *sql.DB the probe needs.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Controller struct {
	db     Pinger
	logger *zap.Logger
}

func NewController(db Pinger, logger *zap.Logger) *Controller {
	return &Controller{
		db:     db,
		logger: logger,
	}
}

// HandleHealth always answers 200; the database field tells probes whether
// the store is reachable right now.
func (c *Controller) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "connected"
	if err := c.db.PingContext(ctx); err != nil {
		c.logger.Warn("database ping failed", zap.Error(err))
		dbStatus = "disconnected"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto.HealthResponse{
		Status:    "OK",
		Service:   "order-service",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Database:  dbStatus,
	}); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
