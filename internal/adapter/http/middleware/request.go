package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"paintshop_lots/internal/domain/entities"
	"paintshop_lots/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	RequestIDKey    = "request_id"
	RequestIDHeader = "X-Request-ID"
	RoleHeader      = "X-Actor-Role"

	roleKey = "actor_role"
)

// RequestID propagates the caller's request id or mints a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(RequestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// ActorRole reads the role forwarded by the identity provider. Anything that
// is not a known role is treated as an operator.
func ActorRole() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := entities.Role(strings.ToLower(strings.TrimSpace(c.GetHeader(RoleHeader))))
		if role != entities.RoleAdmin {
			role = entities.RoleOperator
		}
		c.Set(roleKey, role)
		c.Next()
	}
}

// RoleFrom returns the acting role, operator when ActorRole did not run.
func RoleFrom(c *gin.Context) entities.Role {
	if v, ok := c.Get(roleKey); ok {
		if r, ok := v.(entities.Role); ok {
			return r
		}
	}
	return entities.RoleOperator
}

// Logger logs each request with method, path, status, latency and request_id.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("request_id", c.GetString(RequestIDKey)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

// Recovery turns a panic into a 500 without leaking the stack to the client.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Str("request_id", c.GetString(RequestIDKey)).
					Interface("panic", r).
					Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR", "message": "An internal error occurred"})
			}
		}()
		c.Next()
	}
}

// Metrics records request count and latency per matched route. Unmatched
// paths share one label so scanners cannot blow up cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
