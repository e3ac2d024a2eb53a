package api

import (
	"net/http"

	reqdto "calldesk-booking/internal/handler/dto/request"
	resdto "calldesk-booking/internal/handler/dto/response"
	"calldesk-booking/internal/pkg/errs"
	"calldesk-booking/internal/usecase/commands"
	"calldesk-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SlotHandler struct {
	cmds commands.BookingCommands
	q    queries.SlotQueries
}

func NewSlotHandler(cmds commands.BookingCommands, q queries.SlotQueries) *SlotHandler {
	return &SlotHandler{cmds: cmds, q: q}
}

// @Summary List available slots
// @Description Returns the slots available from startDate for number days (7 by default)
// @Tags slot
// @Produce json
// @Param id path string true "Resource ID"
// @Param startDate query string true "RFC 3339 start instant, e.g. 2016-06-20T10:00:00+02:00"
// @Param number query int false "Number of days"
// @Success 200 {object} resdto.SlotListResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /v1/ressource/{id}/slot [get]
func (h *SlotHandler) List(c *gin.Context) {
	var req reqdto.ListSlotsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		abortWithUseCaseError(c, errs.Mark(err, errs.ErrInvalidDays), gin.H{"query": c.Request.URL.Query()})
		return
	}
	if req.Start() == "" {
		missingParameter(c, errs.Wrap(errs.ErrInvalidTimeRange, "startDate is missing"), c.Request.URL.Query())
		return
	}

	id := c.Param("id")
	list, err := h.q.ListSlots(c.Request.Context(), req.ToQuery(id))
	if err != nil {
		abortWithUseCaseError(c, err, gin.H{"id": id})
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotList(list))
}

// @Summary Book a slot
// @Tags slot
// @Accept json
// @Produce json
// @Param id path string true "Resource ID"
// @Param slotId path string true "RFC 3339 start instant of the slot"
// @Param request body reqdto.BookSlotRequest true "Booking request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /v1/ressource/{id}/slot/{slotId} [post]
func (h *SlotHandler) Book(c *gin.Context) {
	var req reqdto.BookSlotRequest
	if err := c.ShouldBind(&req); err != nil {
		missingParameter(c, err, c.Request.URL.Query())
		return
	}

	id := c.Param("id")
	result, err := h.cmds.BookSlot(c.Request.Context(), req.ToParams(id, c.Param("slotId")))
	if err != nil {
		abortWithUseCaseError(c, err, gin.H{"id": id})
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookSlotResult(result))
}
