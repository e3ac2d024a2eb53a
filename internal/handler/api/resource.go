package api

import (
	"net/http"

	resdto "calldesk-booking/internal/handler/dto/response"
	"calldesk-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ResourceHandler struct {
	q queries.ResourceQueries
}

func NewResourceHandler(q queries.ResourceQueries) *ResourceHandler {
	return &ResourceHandler{q: q}
}

// @Summary Get resource
// @Description Returns the information of a resource such as a doctor or a restaurant
// @Tags ressource
// @Produce json
// @Param id path string true "Resource ID"
// @Success 200 {object} resdto.ResourceResponse
// @Failure 404 {object} httperr.Response
// @Router /v1/ressource/{id} [get]
func (h *ResourceHandler) Get(c *gin.Context) {
	id := c.Param("id")
	view, err := h.q.GetResource(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err, gin.H{"id": id})
		return
	}
	c.JSON(http.StatusOK, resdto.FromResourceView(view))
}

// @Summary List resources
// @Tags ressource
// @Produce json
// @Success 200 {array} resdto.ResourceResponse
// @Router /v1/ressource [get]
func (h *ResourceHandler) List(c *gin.Context) {
	views, err := h.q.ListResources(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResourceViews(views))
}
