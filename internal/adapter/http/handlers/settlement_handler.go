package handlers

import (
	"context"
	"net/http"

	"paintshop_lots/internal/domain/entities"
	"paintshop_lots/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SettlementHandler drives the "was this payment received?" prompt.
type SettlementHandler struct {
	usecase usecase.ISettlementPrompt
}

func NewSettlementHandler(uc usecase.ISettlementPrompt) *SettlementHandler {
	return &SettlementHandler{usecase: uc}
}

// GetPrompt godoc
// @Summary Current settlement prompt of a lot
// @Tags settlements
// @Produce json
// @Param lot_id path string true "Lot ID"
// @Success 200 {object} entities.SettlementPrompt
// @Router /settlements/{lot_id} [get]
func (h *SettlementHandler) GetPrompt(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Get(c.Param("lot_id")))
}

// Confirm godoc
// @Summary Payment received: open the finance entry flow
// @Tags settlements
// @Produce json
// @Param lot_id path string true "Lot ID"
// @Success 200 {object} entities.SettlementPrompt
// @Failure 404 {object} pkg.HTTPError
// @Router /settlements/{lot_id}/confirm [post]
func (h *SettlementHandler) Confirm(c *gin.Context) {
	h.resolve(c, h.usecase.Confirm)
}

// Cancel godoc
// @Summary Payment not received: revert the lot payment to pending
// @Tags settlements
// @Produce json
// @Param lot_id path string true "Lot ID"
// @Success 200 {object} entities.SettlementPrompt
// @Router /settlements/{lot_id}/cancel [post]
func (h *SettlementHandler) Cancel(c *gin.Context) {
	h.resolve(c, h.usecase.Cancel)
}

// Dismiss godoc
// @Summary Close the prompt without acting
// @Tags settlements
// @Produce json
// @Param lot_id path string true "Lot ID"
// @Success 200 {object} entities.SettlementPrompt
// @Router /settlements/{lot_id}/dismiss [post]
func (h *SettlementHandler) Dismiss(c *gin.Context) {
	h.resolve(c, h.usecase.Dismiss)
}

func (h *SettlementHandler) resolve(c *gin.Context, action func(ctx context.Context, lotID string) (entities.SettlementPrompt, error)) {
	prompt, err := action(c.Request.Context(), c.Param("lot_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prompt)
}
