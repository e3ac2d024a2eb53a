package httperr

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// Error codes carried in the response message.
const (
	CodeMissingParameter  = "MissingParameter"
	CodeInvalidParameter  = "InvalidParameter"
	CodeRessourceNotFound = "RessourceNotFound"
	CodeSlotNotAvailable  = "SlotNotAvailable"
	CodeTooManyRequests   = "TooManyRequests"
	CodeInvalidCalendar   = "InvalidCalendar"
	CodeInternal          = "InternalServerError"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
