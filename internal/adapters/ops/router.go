package ops

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/AutMai/discord-net/internal/adapters/ops/middleware"
	"github.com/AutMai/discord-net/internal/platform/telemetry"
)

// RouterConfig contains configuration for setting up the ops router.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// ServiceName names the service in telemetry spans.
	ServiceName string

	// HealthHandler handles health check endpoints.
	HealthHandler *HealthHandler
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Request ID - generate/extract request ID
//  3. Correlation ID - propagate transaction ID across services
//  4. OpenTelemetry - tracing and metrics
//  5. Logging - request logging (skips probe endpoints)
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.TracingMiddleware(cfg.ServiceName),
		telemetry.Middleware(cfg.ServiceName),
		middleware.Logging(cfg.Logger),
	)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterRoutes(engine)
	}
}
