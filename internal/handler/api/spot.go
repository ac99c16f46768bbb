package api

import (
	"fmt"
	"net/http"

	reqdto "smart-parking/internal/handler/dto/request"
	resdto "smart-parking/internal/handler/dto/response"
	"smart-parking/internal/handler/httperr"
	"smart-parking/internal/usecase/commands"
	"smart-parking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SpotHandler struct {
	cmds commands.SpotCommands
	q    queries.SpotQueries
}

func NewSpotHandler(cmds commands.SpotCommands, q queries.SpotQueries) *SpotHandler {
	return &SpotHandler{cmds: cmds, q: q}
}

// @Summary List spots of a lot
// @Description Spots ordered by label plus a per-status summary
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param lotId path string true "Lot ID"
// @Success 200 {object} resdto.Envelope{data=resdto.LotSpotsResponse}
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /slots/lot/{lotId} [get]
func (h *SpotHandler) ListByLot(c *gin.Context) {
	lotID, ok := uuidParam(c, "lotId", "parking lot")
	if !ok {
		return
	}
	view, err := h.q.ListByLot(c.Request.Context(), lotID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromLotSpotsView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resp))
}

// @Summary Get spot
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param id path string true "Spot ID"
// @Success 200 {object} resdto.Envelope{data=resdto.SpotDetailResponse}
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /slots/{id} [get]
func (h *SpotHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id", "parking slot")
	if !ok {
		return
	}
	if view, ok := h.loadDetail(c, id); ok {
		c.JSON(http.StatusOK, resdto.OK(view))
	}
}

// @Summary Create spot
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSpotRequest true "Spot"
// @Success 201 {object} resdto.Envelope{data=resdto.SpotDetailResponse}
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /slots [post]
func (h *SpotHandler) Create(c *gin.Context) {
	var req reqdto.CreateSpotRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if view, ok := h.loadDetail(c, id); ok {
		c.JSON(http.StatusCreated, resdto.WithMessage("Parking slot created successfully", view))
	}
}

// @Summary Set spot status
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Spot ID"
// @Param request body reqdto.UpdateSpotStatusRequest true "AVAILABLE, OCCUPIED or RESERVED"
// @Success 200 {object} resdto.Envelope{data=resdto.SpotDetailResponse}
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /slots/{id}/status [put]
func (h *SpotHandler) SetStatus(c *gin.Context) {
	id, ok := uuidParam(c, "id", "parking slot")
	if !ok {
		return
	}
	var req reqdto.UpdateSpotStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.cmds.SetStatus(c.Request.Context(), id, req.Status); err != nil {
		httperr.Abort(c, err)
		return
	}
	if view, ok := h.loadDetail(c, id); ok {
		c.JSON(http.StatusOK, resdto.WithMessage("Slot status updated successfully", view))
	}
}

// @Summary Delete spot
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param id path string true "Spot ID"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /slots/{id} [delete]
func (h *SpotHandler) Delete(c *gin.Context) {
	id, ok := uuidParam(c, "id", "parking slot")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.WithMessage("Parking slot deleted successfully", nil))
}

// @Summary Simulate occupancy changes
// @Description Each spot of the lot flips to AVAILABLE or OCCUPIED with probability 0.3
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param lotId path string true "Lot ID"
// @Success 200 {object} resdto.Envelope{data=[]resdto.SpotResponse}
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /slots/simulate/{lotId} [post]
func (h *SpotHandler) Simulate(c *gin.Context) {
	lotID, ok := uuidParam(c, "lotId", "parking lot")
	if !ok {
		return
	}
	updated, err := h.cmds.Simulate(c.Request.Context(), lotID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	resp, err := resdto.FromSpotSnapshots(updated)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	msg := fmt.Sprintf("Simulated update for %d slots", len(resp))
	c.JSON(http.StatusOK, resdto.Counted(msg, len(resp), resp))
}

func (h *SpotHandler) loadDetail(c *gin.Context, id uuid.UUID) (*resdto.SpotDetailResponse, bool) {
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return nil, false
	}
	resp, err := resdto.FromSpotDetailView(view)
	if err != nil {
		httperr.Abort(c, err)
		return nil, false
	}
	return resp, true
}
