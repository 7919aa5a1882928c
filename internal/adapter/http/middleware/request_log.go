package middleware

import (
	"strings"
	"time"

	"underwriting_service/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

// OperatorHeader names the acting underwriter on operator routes.
const OperatorHeader = "X-Operator-ID"

// RequestLogger writes one line per request once the handler chain has finished.
// Proposal routes carry the proposal id and the operator so a lifecycle change can be
// traced back to the request that caused it.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	log = logger.OrNop(log).Component("http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := requestFields(c, status, time.Since(start))
		switch {
		case status >= 500:
			log.Error("request failed", fields...)
		case status >= 400:
			log.Warn("request refused", fields...)
		default:
			log.Info("request served", fields...)
		}
	}
}

func requestFields(c *gin.Context, status int, took time.Duration) []interface{} {
	route := c.FullPath()
	if route == "" {
		route = c.Request.URL.Path
	}
	fields := []interface{}{
		"method", strings.ToUpper(c.Request.Method),
		"route", route,
		"status", status,
		"duration_ms", took.Milliseconds(),
	}
	if id := strings.TrimSpace(c.Param("id")); id != "" {
		fields = append(fields, "proposal_id", id)
	}
	if op := strings.TrimSpace(c.GetHeader(OperatorHeader)); op != "" {
		fields = append(fields, "operator", op)
	}
	if c.Writer.Header().Get(ReplayedHeader) == "true" {
		fields = append(fields, "idempotent_replay", true)
	}
	if sc := trace.SpanContextFromContext(c.Request.Context()); sc.HasTraceID() {
		fields = append(fields, "trace_id", sc.TraceID().String())
	}
	if len(c.Errors) > 0 {
		fields = append(fields, "errors", c.Errors.String())
	}
	return fields
}
