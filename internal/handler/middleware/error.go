package middleware

import (
	"log/slog"
	"net/http"

	"smart-parking/internal/handler/httperr"
	"smart-parking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the envelope for handlers that recorded an error
// without writing a body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}

		last := c.Errors.Last().Err
		status, msg := httperr.Classify(last)
		if status >= http.StatusInternalServerError {
			slog.Error("request failed",
				"error", last.Error(),
				"stack", errs.ExtractStackLines(last, 12),
				"path", c.Request.URL.Path,
				"request_id", GetRequestID(c))
		}
		c.JSON(status, httperr.NewResponse(status, msg, nil))
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic",
					"error", err,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c))

				resp := httperr.NewResponse(http.StatusInternalServerError, "Internal server error", nil)
				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
