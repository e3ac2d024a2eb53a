package api

import (
	"errors"
	"net/http"

	"calldesk-booking/internal/handler/httperr"
	"calldesk-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortWithUseCaseError maps use case sentinels to a status and error code.
func abortWithUseCaseError(c *gin.Context, err error, detail any) {
	switch {
	case errors.Is(err, errs.ErrResourceNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeRessourceNotFound, detail)
	case errors.Is(err, errs.ErrSlotNotOffered):
		httperr.AbortWithError(c, http.StatusConflict, err, httperr.CodeSlotNotAvailable, detail)
	case errors.Is(err, errs.ErrInvalidTimeRange),
		errors.Is(err, errs.ErrInvalidDays),
		errors.Is(err, errs.ErrSlotInPast),
		errors.Is(err, errs.ErrInvalidPhoneNumber),
		errors.Is(err, errs.ErrInvalidPartySize),
		errors.Is(err, errs.ErrInvalidContactName),
		errors.Is(err, errs.ErrInvalidTransferReason),
		errors.Is(err, errs.ErrCallIDRequired):
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeInvalidParameter, invalidDetail(err, detail))
	case errors.Is(err, errs.ErrInvalidCalendar):
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInvalidCalendar, detail)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, nil)
	}
}

// invalidDetail adds the rejected field to detail.
func invalidDetail(err error, detail any) any {
	field := ""
	switch {
	case errors.Is(err, errs.ErrInvalidTimeRange), errors.Is(err, errs.ErrSlotInPast):
		field = "date"
	case errors.Is(err, errs.ErrInvalidDays), errors.Is(err, errs.ErrInvalidPartySize):
		field = "number"
	case errors.Is(err, errs.ErrInvalidPhoneNumber):
		field = "phoneNumber"
	case errors.Is(err, errs.ErrInvalidContactName):
		field = "name"
	case errors.Is(err, errs.ErrInvalidTransferReason):
		field = "reason"
	case errors.Is(err, errs.ErrCallIDRequired):
		field = "id"
	}
	out := gin.H{"field": field}
	if m, ok := detail.(gin.H); ok {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

func missingParameter(c *gin.Context, err error, query any) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeMissingParameter, gin.H{"query": query})
}
