package api

import (
	"net/http"

	reqdto "calldesk-booking/internal/handler/dto/request"
	resdto "calldesk-booking/internal/handler/dto/response"
	"calldesk-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CallHandler struct {
	cmds commands.CallCommands
}

func NewCallHandler(cmds commands.CallCommands) *CallHandler {
	return &CallHandler{cmds: cmds}
}

// @Summary Transfer a call
// @Description Hands a live call over to a human agent
// @Tags call
// @Produce json
// @Param id path string true "Call ID"
// @Param reason query string true "TRANSFER_ASKED_BY_USER, CALL_DISCONNECTED_BEFORE_BEING_DONE, TRANSFER_AFTER_TO_MANY_NOT_UNDERSTOOD or TRANSFER_AFTER_ERROR"
// @Success 200 {object} resdto.TransferResponse
// @Failure 400 {object} httperr.Response
// @Router /v1/call/{id} [post]
func (h *CallHandler) Transfer(c *gin.Context) {
	var req reqdto.TransferCallRequest
	if err := c.ShouldBind(&req); err != nil {
		missingParameter(c, err, c.Request.URL.Query())
		return
	}

	result, err := h.cmds.TransferCall(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		abortWithUseCaseError(c, err, gin.H{"id": c.Param("id")})
		return
	}
	c.JSON(http.StatusOK, resdto.FromTransferResult(result))
}
