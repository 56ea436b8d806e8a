package handlers

import (
	"net/http"

	"paintshop_lots/internal/adapter/http/dto/response"
	"paintshop_lots/internal/usecase"

	"github.com/gin-gonic/gin"
)

type HistoryHandler struct {
	usecase usecase.IHistoryUseCase
}

func NewHistoryHandler(uc usecase.IHistoryUseCase) *HistoryHandler {
	return &HistoryHandler{usecase: uc}
}

// ListHistory godoc
// @Summary Delivered lots, newest first
// @Tags history
// @Produce json
// @Param search query string false "Client or color"
// @Success 200 {array} response.HistoryEntryResponse
// @Router /history [get]
func (h *HistoryHandler) ListHistory(c *gin.Context) {
	entries, err := h.usecase.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromHistoryEntries(entries))
}

// HistoryByMonth godoc
// @Summary Delivered lots grouped by delivery month
// @Tags history
// @Produce json
// @Param search query string false "Client or color"
// @Success 200 {array} response.HistoryMonthResponse
// @Router /history/by-month [get]
func (h *HistoryHandler) HistoryByMonth(c *gin.Context) {
	months, err := h.usecase.ByMonth(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromHistoryMonths(months))
}

// DeleteHistory godoc
// @Summary Remove a history entry (admin only)
// @Tags history
// @Param id path string true "Lot ID"
// @Success 204
// @Failure 403 {object} pkg.HTTPError
// @Router /history/{id} [delete]
func (h *HistoryHandler) DeleteHistory(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id"), actorRole(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListPartialDeliveries godoc
// @Summary Lots present both as active and delivered
// @Tags history
// @Produce json
// @Success 200 {array} response.LotResponse
// @Router /history/partial [get]
func (h *HistoryHandler) ListPartialDeliveries(c *gin.Context) {
	lots, err := h.usecase.FindPartialDeliveries(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromLots(lots))
}

// ResolvePartialDelivery godoc
// @Summary Finish a partially applied delivery
// @Tags history
// @Produce json
// @Param id path string true "Lot ID"
// @Success 200 {object} response.HistoryEntryResponse
// @Router /history/partial/{id}/resolve [post]
func (h *HistoryHandler) ResolvePartialDelivery(c *gin.Context) {
	entry, err := h.usecase.ResolvePartialDelivery(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromHistoryEntry(entry))
}
