package logging

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type contextKey string

const loggerKey contextKey = "logger"

// RequestIDHeader carries the request id in requests and responses.
const RequestIDHeader = "X-Request-ID"

// WithContext returns the request scoped logger stored in ctx, or the global
// logger.
func WithContext(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(loggerKey).(*zap.Logger); ok {
		return logger
	}
	return L()
}

// FromGin returns the request scoped logger of c.
func FromGin(c *gin.Context) *zap.Logger {
	if v, ok := c.Get(string(loggerKey)); ok {
		if logger, ok := v.(*zap.Logger); ok {
			return logger
		}
	}
	return WithContext(c.Request.Context())
}

// Gin returns middleware that tags every request with an id and logs its
// start and completion.
func Gin() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)

		logger := L().With(zap.String("request_id", requestID))
		c.Set(string(loggerKey), logger)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), loggerKey, logger))

		logger.Debug("request started",
			zap.String("method", c.Request.Method),
			zap.String("url", c.Request.URL.String()),
			zap.String("remote_addr", c.ClientIP()),
		)

		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("url", c.Request.URL.String()),
			zap.Int("status", c.Writer.Status()),
			zap.Int("size", c.Writer.Size()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}
