package handlers

import (
	"net/http"
	"strconv"

	"paintshop_lots/internal/adapter/http/dto/request"
	"paintshop_lots/internal/adapter/http/dto/response"
	"paintshop_lots/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SchedulingHandler struct {
	usecase usecase.ISchedulingUseCase
}

func NewSchedulingHandler(uc usecase.ISchedulingUseCase) *SchedulingHandler {
	return &SchedulingHandler{usecase: uc}
}

// ListStations godoc
// @Summary Station queues in paint order
// @Tags stations
// @Produce json
// @Success 200 {array} response.StationQueueResponse
// @Router /stations [get]
func (h *SchedulingHandler) ListStations(c *gin.Context) {
	ctx := c.Request.Context()
	out := make([]response.StationQueueResponse, 0, h.usecase.Stations())
	for s := 1; s <= h.usecase.Stations(); s++ {
		lots, err := h.usecase.StationQueue(ctx, s)
		if err != nil {
			respondError(c, err)
			return
		}
		out = append(out, response.StationQueueResponse{Station: s, Lots: response.FromLots(lots)})
	}
	c.JSON(http.StatusOK, out)
}

// GetStation godoc
// @Summary One station queue in paint order
// @Tags stations
// @Produce json
// @Param station path int true "Station"
// @Success 200 {object} response.StationQueueResponse
// @Router /stations/{station} [get]
func (h *SchedulingHandler) GetStation(c *gin.Context) {
	station, ok := stationParam(c)
	if !ok {
		return
	}
	lots, err := h.usecase.StationQueue(c.Request.Context(), station)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.StationQueueResponse{Station: station, Lots: response.FromLots(lots)})
}

// Reorder godoc
// @Summary Rewrite the paint order of a station
// @Description lot_ids must list exactly the lots at the station, first to paint first.
// @Tags stations
// @Accept json
// @Produce json
// @Param station path int true "Station"
// @Param body body request.ReorderRequest true "Ordered lot ids"
// @Success 200 {object} response.StationQueueResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /stations/{station}/order [put]
func (h *SchedulingHandler) Reorder(c *gin.Context) {
	station, ok := stationParam(c)
	if !ok {
		return
	}
	var payload request.ReorderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, err)
		return
	}

	lots, err := h.usecase.Reorder(c.Request.Context(), station, payload.LotIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.StationQueueResponse{Station: station, Lots: response.FromLots(lots)})
}

func stationParam(c *gin.Context) (int, bool) {
	station, err := strconv.Atoi(c.Param("station"))
	if err != nil {
		respondError(c, usecase.ErrInvalidStation)
		return 0, false
	}
	return station, true
}
