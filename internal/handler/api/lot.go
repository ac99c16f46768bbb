package api

import (
	"net/http"

	reqdto "smart-parking/internal/handler/dto/request"
	resdto "smart-parking/internal/handler/dto/response"
	"smart-parking/internal/handler/httperr"
	"smart-parking/internal/usecase/commands"
	"smart-parking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LotHandler struct {
	cmds commands.LotCommands
	q    queries.LotQueries
}

func NewLotHandler(cmds commands.LotCommands, q queries.LotQueries) *LotHandler {
	return &LotHandler{cmds: cmds, q: q}
}

// @Summary List parking lots
// @Description All lots, oldest first, with availability derived from their spots
// @Tags lots
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope{data=[]resdto.LotResponse}
// @Failure 401 {object} httperr.Response
// @Router /lots [get]
func (h *LotHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Counted("", len(views), resdto.FromLotViews(views)))
}

// @Summary Get parking lot
// @Tags lots
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lot ID"
// @Success 200 {object} resdto.Envelope{data=resdto.LotResponse}
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /lots/{id} [get]
func (h *LotHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id", "parking lot")
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromLotView(view)))
}

// @Summary Create parking lot
// @Description Creates the lot and one spot per unit of capacity
// @Tags lots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateLotRequest true "Lot"
// @Success 201 {object} resdto.Envelope{data=resdto.LotResponse}
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /lots [post]
func (h *LotHandler) Create(c *gin.Context) {
	var req reqdto.CreateLotRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load parking lot", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.WithMessage("Parking lot created successfully with auto-generated slots", resdto.FromLotView(view)))
}

// @Summary Update parking lot
// @Description Partial update. Omitted or null fields keep their value. Spots are not re-provisioned.
// @Tags lots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lot ID"
// @Param request body reqdto.UpdateLotRequest true "Fields to change"
// @Success 200 {object} resdto.Envelope{data=resdto.LotResponse}
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /lots/{id} [put]
func (h *LotHandler) Update(c *gin.Context) {
	id, ok := uuidParam(c, "id", "parking lot")
	if !ok {
		return
	}
	var req reqdto.UpdateLotRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.cmds.Update(c.Request.Context(), id, req.ToPatch()); err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.WithMessage("Parking lot updated successfully", resdto.FromLotView(view)))
}

// @Summary Delete parking lot
// @Description Deletes the lot together with its spots
// @Tags lots
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lot ID"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /lots/{id} [delete]
func (h *LotHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "id", "parking lot")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.WithMessage("Parking lot and associated spots deleted successfully", nil))
}
