package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"paintshop_lots/internal/adapter/http/dto/request"
	"paintshop_lots/internal/adapter/http/dto/response"
	"paintshop_lots/internal/domain/entities"
	"paintshop_lots/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// LotHandler exposes the lot state machine: intake, status toggles,
// scheduling flags, painting and delivery.
type LotHandler struct {
	lots       usecase.ILotUseCase
	scheduling usecase.ISchedulingUseCase
	prompts    usecase.ISettlementPrompt
}

func NewLotHandler(lots usecase.ILotUseCase, scheduling usecase.ISchedulingUseCase, prompts usecase.ISettlementPrompt) *LotHandler {
	return &LotHandler{lots: lots, scheduling: scheduling, prompts: prompts}
}

// CreateLot godoc
// @Summary Register a received lot
// @Tags lots
// @Accept json
// @Produce json
// @Param lot body request.LotRequest true "Lot"
// @Success 201 {object} response.LotResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /lots [post]
func (h *LotHandler) CreateLot(c *gin.Context) {
	var payload request.LotRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, err)
		return
	}
	details, err := payload.ToDetails()
	if err != nil {
		respondError(c, err)
		return
	}

	lot, err := h.lots.Create(c.Request.Context(), details)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromLot(lot))
}

// GetLot godoc
// @Summary Get a lot
// @Tags lots
// @Produce json
// @Param id path string true "Lot ID"
// @Success 200 {object} response.LotResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /lots/{id} [get]
func (h *LotHandler) GetLot(c *gin.Context) {
	lot, err := h.lots.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromLot(lot))
}

// UpdateLot edits the descriptive fields of a lot.
// @Summary Edit lot details
// @Tags lots
// @Accept json
// @Produce json
// @Param id path string true "Lot ID"
// @Param lot body request.LotRequest true "Lot"
// @Success 200 {object} response.LotResponse
// @Router /lots/{id} [put]
func (h *LotHandler) UpdateLot(c *gin.Context) {
	var payload request.LotRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, err)
		return
	}
	details, err := payload.ToDetails()
	if err != nil {
		respondError(c, err)
		return
	}

	lot, err := h.lots.UpdateDetails(c.Request.Context(), c.Param("id"), details)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromLot(lot))
}

// DeleteLot godoc
// @Summary Remove an active lot (admin only)
// @Tags lots
// @Param id path string true "Lot ID"
// @Success 204
// @Failure 403 {object} pkg.HTTPError
// @Router /lots/{id} [delete]
func (h *LotHandler) DeleteLot(c *gin.Context) {
	if err := h.lots.Delete(c.Request.Context(), c.Param("id"), actorRole(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Board godoc
// @Summary Production board
// @Tags lots
// @Produce json
// @Param search query string false "Client or color"
// @Param payment query string false "unanalysed|pending|ok|any"
// @Param measurement query string false "unanalysed|pending|ok|any"
// @Param invoice query string false "unanalysed|pending|ok|any"
// @Param station query int false "Station for the scheduled column"
// @Success 200 {object} response.BoardResponse
// @Router /lots/board [get]
func (h *LotHandler) Board(c *gin.Context) {
	f := usecase.BoardFilter{Search: c.Query("search")}
	var err error
	if f.Payment, err = triStateQuery(c, "payment"); err != nil {
		respondInvalid(c, err)
		return
	}
	if f.Measurement, err = triStateQuery(c, "measurement"); err != nil {
		respondInvalid(c, err)
		return
	}
	if f.Invoice, err = triStateQuery(c, "invoice"); err != nil {
		respondInvalid(c, err)
		return
	}
	if s := strings.TrimSpace(c.Query("station")); s != "" {
		if f.Station, err = strconv.Atoi(s); err != nil || f.Station < 1 {
			respondError(c, usecase.ErrInvalidStation)
			return
		}
	}

	board, err := h.lots.Board(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBoard(board))
}

// ToggleStatus godoc
// @Summary Cycle payment, measurement or invoice
// @Description A payment that turns ok opens a settlement prompt, returned alongside the lot.
// @Tags lots
// @Produce json
// @Param id path string true "Lot ID"
// @Param field path string true "payment|measurement|invoice"
// @Success 200 {object} response.ToggleResponse
// @Failure 403 {object} pkg.HTTPError
// @Router /lots/{id}/status/{field} [post]
func (h *LotHandler) ToggleStatus(c *gin.Context) {
	ctx := c.Request.Context()
	res, err := h.lots.ToggleStatus(ctx, c.Param("id"), entities.StatusField(c.Param("field")), actorRole(c))
	if err != nil {
		respondError(c, err)
		return
	}

	out := response.ToggleResponse{Lot: response.FromLot(res.Lot)}
	if res.Opportunity != nil && h.prompts != nil {
		prompt, err := h.prompts.Offer(ctx, *res.Opportunity)
		if err != nil {
			// toggle is already committed
			log.Warn().Str("lot_id", res.Lot.ID).Err(err).Msg("[lot][handler] settlement prompt not offered")
		} else {
			out.Prompt = &prompt
		}
	}
	c.JSON(http.StatusOK, out)
}

// Schedule godoc
// @Summary Place a lot in a station queue
// @Tags lots
// @Accept json
// @Produce json
// @Param id path string true "Lot ID"
// @Param body body request.ScheduleRequest true "Station"
// @Success 200 {object} response.LotResponse
// @Router /lots/{id}/schedule [put]
func (h *LotHandler) Schedule(c *gin.Context) {
	var payload request.ScheduleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, err)
		return
	}
	lot, err := h.scheduling.AssignStation(c.Request.Context(), c.Param("id"), payload.Station)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromLot(lot))
}

// Unschedule godoc
// @Summary Take a lot out of its station queue
// @Tags lots
// @Produce json
// @Param id path string true "Lot ID"
// @Success 200 {object} response.LotResponse
// @Router /lots/{id}/schedule [delete]
func (h *LotHandler) Unschedule(c *gin.Context) {
	lot, err := h.lots.SetScheduled(c.Request.Context(), c.Param("id"), false)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromLot(lot))
}

// SetPainted godoc
// @Summary Mark a lot painted or unpainted
// @Tags lots
// @Accept json
// @Produce json
// @Param id path string true "Lot ID"
// @Param body body request.FlagRequest true "Value"
// @Success 200 {object} response.LotResponse
// @Router /lots/{id}/painted [put]
func (h *LotHandler) SetPainted(c *gin.Context) {
	var payload request.FlagRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, err)
		return
	}
	lot, err := h.lots.SetPainted(c.Request.Context(), c.Param("id"), *payload.Value)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromLot(lot))
}

// ScanPainted godoc
// @Summary Mark a lot painted from a QR scan
// @Tags lots
// @Produce json
// @Param id path string true "Lot ID"
// @Success 200 {object} response.ScanResponse
// @Router /lots/{id}/scan [post]
func (h *LotHandler) ScanPainted(c *gin.Context) {
	lot, changed, err := h.lots.MarkPaintedByScan(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ScanResponse{Lot: response.FromLot(lot), Changed: changed})
}

// SetPromised godoc
// @Summary Flag a scheduled lot as promised to the client
// @Tags lots
// @Accept json
// @Produce json
// @Param id path string true "Lot ID"
// @Param body body request.FlagRequest true "Value"
// @Success 200 {object} response.LotResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /lots/{id}/promised [put]
func (h *LotHandler) SetPromised(c *gin.Context) {
	var payload request.FlagRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, err)
		return
	}
	lot, err := h.lots.SetPromised(c.Request.Context(), c.Param("id"), *payload.Value)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromLot(lot))
}

// CanDeliver godoc
// @Summary Whether the lot may leave the shop
// @Tags lots
// @Produce json
// @Param id path string true "Lot ID"
// @Success 200 {object} response.DeliverableResponse
// @Router /lots/{id}/deliverable [get]
func (h *LotHandler) CanDeliver(c *gin.Context) {
	id := c.Param("id")
	ok, err := h.lots.CanDeliver(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.DeliverableResponse{LotID: id, CanDeliver: ok})
}

// Deliver godoc
// @Summary Deliver a lot and move it to history
// @Tags lots
// @Produce json
// @Param id path string true "Lot ID"
// @Success 200 {object} response.HistoryEntryResponse
// @Failure 409 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError "PARTIAL_MOVE_FAILURE carries hint=reconcile"
// @Router /lots/{id}/deliver [post]
func (h *LotHandler) Deliver(c *gin.Context) {
	entry, err := h.lots.Deliver(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromHistoryEntry(entry))
}

func triStateQuery(c *gin.Context, key string) (entities.TriState, error) {
	v := strings.ToLower(strings.TrimSpace(c.Query(key)))
	switch entities.TriState(v) {
	case "", "any":
		return "", nil
	case entities.StatusUnanalysed, entities.StatusPending, entities.StatusOK:
		return entities.TriState(v), nil
	}
	return "", errInvalidTriState
}
