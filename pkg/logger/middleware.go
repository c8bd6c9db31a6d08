package logger

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader é o cabeçalho usado para correlacionar requisições
const RequestIDHeader = "X-Request-ID"

// GinMiddleware registra cada requisição e garante um request id
func GinMiddleware(l Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)

		c.Next()

		fields := []interface{}{
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
			"client_ip", c.ClientIP(),
		}

		if len(c.Errors) > 0 {
			l.Error("requisição com erro", append(fields, "errors", c.Errors.String())...)
			return
		}

		if c.Writer.Status() >= 500 {
			l.Error("requisição falhou", fields...)
			return
		}
		l.Info("requisição atendida", fields...)
	}
}
