package web

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kcmvp/commerce/model"
	"github.com/kcmvp/commerce/service"
)

const traceKey = "traceId"

// TraceID assigns every request a correlation id, echoed in the X-Trace-Id
// response header and in the error envelope.
func TraceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Trace-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(traceKey, id)
		c.Header("X-Trace-Id", id)
		c.Next()
	}
}

// TraceOf returns the correlation id of the current request.
func TraceOf(c *gin.Context) string {
	return c.GetString(traceKey)
}

// RequestLogger writes one RequestLog record and one log line per inbound
// request, success or failure. The write runs in a defer so it happens even
// when a downstream handler panics.
func RequestLogger(logs *service.RequestLog) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			elapsed := time.Since(start)
			status := c.Writer.Status()
			if _, err := logs.Log(c.Request.Context(), model.RequestLog{
				RequestMethod: c.Request.Method,
				RequestPath:   c.Request.URL.Path,
				StatusCode:    status,
				ElapsedMillis: elapsed.Milliseconds(),
				RequestedAt:   start.UTC(),
			}); err != nil {
				log.Printf("request log write failed: %v", err)
			}
			log.Printf("%s %s status=%d elapsed=%s trace=%s", c.Request.Method, c.Request.URL.Path, status, elapsed, TraceOf(c))
		}()
		c.Next()
	}
}
