package web

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kcmvp/commerce/fault"
)

// ErrorResponse is the uniform error envelope every failed request returns.
type ErrorResponse struct {
	StatusCode int       `json:"statusCode"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	TraceID    string    `json:"traceId"`
	Timestamp  time.Time `json:"timestamp"`
}

// translate maps a service failure to its HTTP status and client-facing
// message. Unclassified failures surface a generic message; the detail stays
// in the server log only.
func translate(err error) (int, string) {
	switch {
	case fault.IsInvalidArgument(err):
		return http.StatusBadRequest, fault.Detail(err)
	case fault.IsInvalidOperation(err):
		return http.StatusNotFound, fault.Detail(err)
	default:
		return http.StatusInternalServerError, "An unexpected error occurred"
	}
}

func writeEnvelope(c *gin.Context, status int, message, details string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		StatusCode: status,
		Message:    message,
		Details:    details,
		TraceID:    TraceOf(c),
		Timestamp:  time.Now().UTC(),
	})
}

// abortErr hands err to the translation middleware and stops the handler
// chain.
func abortErr(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// errNotFound is the shared not-found failure for absent reads, false update
// results and false delete results.
func errNotFound(entity string, id int) error {
	return fault.InvalidOpf("%s with ID %d not found", entity, id)
}

// Errors is the exception-translation boundary. It recovers panics as 500s
// and converts the first recorded handler error into the envelope. It must be
// registered after the request logger so the logged status reflects the
// translated code.
func Errors() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("panic handling %s %s trace=%s: %v", c.Request.Method, c.Request.URL.Path, TraceOf(c), r)
				writeEnvelope(c, http.StatusInternalServerError, "An unexpected error occurred", "")
			}
		}()
		c.Next()
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors[0].Err
		status, message := translate(err)
		details := err.Error()
		if status == http.StatusInternalServerError {
			// Unclassified failures stay in the server log only.
			log.Printf("request %s %s trace=%s failed: %v", c.Request.Method, c.Request.URL.Path, TraceOf(c), err)
			details = ""
		}
		writeEnvelope(c, status, message, details)
	}
}
