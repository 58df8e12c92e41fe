package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/AutMai/discord-net/internal/platform/logging"
)

// errorResponse is the error envelope for ops server failures.
type errorResponse struct {
	Error   errorDetail `json:"error"`
	TraceID string      `json:"traceId,omitempty"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Recovery returns middleware that recovers from panics.
// On panic, it logs the error with full stack trace at ERROR level and
// returns a 500 with the standard error envelope including the trace id.
//
// This middleware should be applied first in the chain to catch panics
// from all subsequent handlers and middleware.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				stack := debug.Stack()

				// Context logger carries request_id and correlation_id.
				ctxLogger := logging.FromContext(c.Request.Context())

				var traceID string
				if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
					traceID = span.SpanContext().TraceID().String()
				}

				ctxLogger.Error("panic recovered",
					slog.Any("error", r),
					slog.String("stack", string(stack)),
					slog.String("path", c.Request.URL.Path),
					slog.String("method", c.Request.Method),
					slog.String("trace_id", traceID),
				)

				resp := errorResponse{
					Error: errorDetail{
						Code:    "INTERNAL_ERROR",
						Message: "an internal error occurred",
					},
					TraceID: traceID,
				}

				if !c.Writer.Written() {
					c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
				} else {
					c.Abort()
				}
			}
		}()

		c.Next()
	}
}
