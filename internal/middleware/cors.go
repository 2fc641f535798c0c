package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// EchoPreflightHeaders makes CORS preflights permit whatever headers the browser asks for.
// gin-contrib/cors answers preflights with its static allow list, and a literal "*" is not
// honored alongside credentials, so the requested list is copied back instead.
// It must run before the cors middleware.
func EchoPreflightHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodOptions || c.GetHeader("Origin") == "" {
			c.Next()
			return
		}
		requested := c.GetHeader("Access-Control-Request-Headers")
		if requested == "" || c.GetHeader("Access-Control-Request-Method") == "" {
			c.Next()
			return
		}
		c.Writer = &preflightWriter{ResponseWriter: c.Writer, requested: requested}
		c.Next()
	}
}

// preflightWriter overwrites Access-Control-Allow-Headers right before the status is sent.
type preflightWriter struct {
	gin.ResponseWriter
	requested string
	patched   bool
}

func (w *preflightWriter) patch() {
	if w.patched {
		return
	}
	w.patched = true
	h := w.Header()
	if h.Get("Access-Control-Allow-Origin") == "" {
		return
	}
	h.Set("Access-Control-Allow-Headers", w.requested)
	h.Add("Vary", "Access-Control-Request-Headers")
}

func (w *preflightWriter) WriteHeader(code int) {
	w.patch()
	w.ResponseWriter.WriteHeader(code)
}

func (w *preflightWriter) WriteHeaderNow() {
	w.patch()
	w.ResponseWriter.WriteHeaderNow()
}

func (w *preflightWriter) Write(data []byte) (int, error) {
	w.patch()
	return w.ResponseWriter.Write(data)
}

func (w *preflightWriter) WriteString(s string) (int, error) {
	w.patch()
	return w.ResponseWriter.WriteString(s)
}
