package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"libraryhub/utils"

	"github.com/gin-gonic/gin"
)

// RequestTimeout attaches a deadline to the request context. Store calls made with
// that context fail once it passes; a handler that wrote nothing by then gets a 504.
func RequestTimeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if timeout <= 0 {
			c.Next()
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if errors.Is(ctx.Err(), context.DeadlineExceeded) && !c.Writer.Written() {
			utils.JSONError(c, http.StatusGatewayTimeout, "Request timed out")
		}
	}
}
