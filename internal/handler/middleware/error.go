package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"calldesk-booking/internal/handler/httperr"
	"calldesk-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler writes the error envelope for handlers that recorded an error
// with c.Error but did not respond.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				// Public: Meta ⇒ Return as is
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}

		if last := c.Errors.Last(); last != nil {
			status, code := statusFor(last.Err)
			slog.ErrorContext(c.Request.Context(), "unhandled request error",
				slog.String("request_id", GetRequestID(c)),
				slog.String("code", code),
				slog.String("error", last.Err.Error()))
			writeEnvelope(c, status, code)
			return
		}

		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		writeEnvelope(c, http.StatusInternalServerError, httperr.CodeInternal)
	}
}

// statusFor maps the sentinels that can escape a handler unanswered.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, errs.ErrResourceNotFound):
		return http.StatusNotFound, httperr.CodeRessourceNotFound
	case errors.Is(err, errs.ErrInvalidCalendar):
		return http.StatusInternalServerError, httperr.CodeInvalidCalendar
	default:
		return http.StatusInternalServerError, httperr.CodeInternal
	}
}

func writeEnvelope(c *gin.Context, status int, code string) {
	resp := httperr.Response{Status: status}
	resp.Error.Message = code
	c.JSON(status, resp)
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.ErrorContext(c.Request.Context(), "recovered from panic",
					slog.Any("error", err),
					slog.String("path", c.Request.URL.Path),
					slog.String("request_id", GetRequestID(c)))

				writeEnvelope(c, http.StatusInternalServerError, httperr.CodeInternal)
				c.Abort()
			}
		}()
		c.Next()
	}
}
