package handlers

import (
	"net/http"
	"strings"

	"paintshop_lots/internal/adapter/http/dto/request"
	"paintshop_lots/internal/adapter/http/dto/response"
	"paintshop_lots/internal/domain/entities"
	"paintshop_lots/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ObligationHandler struct {
	usecase usecase.IObligationUseCase
}

func NewObligationHandler(uc usecase.IObligationUseCase) *ObligationHandler {
	return &ObligationHandler{usecase: uc}
}

// CreateObligation godoc
// @Summary Register an expected payment
// @Tags obligations
// @Accept json
// @Produce json
// @Param obligation body request.ObligationRequest true "Obligation"
// @Success 201 {object} response.ObligationResponse
// @Router /obligations [post]
func (h *ObligationHandler) CreateObligation(c *gin.Context) {
	var payload request.ObligationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, err)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		respondError(c, err)
		return
	}

	o, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromObligation(o))
}

// ListObligations godoc
// @Summary Obligations, newest first
// @Tags obligations
// @Produce json
// @Param status query string false "pending|settled"
// @Success 200 {array} response.ObligationResponse
// @Router /obligations [get]
func (h *ObligationHandler) ListObligations(c *gin.Context) {
	status := entities.ObligationStatus(strings.ToLower(strings.TrimSpace(c.Query("status"))))
	switch status {
	case "", entities.ObligationPending, entities.ObligationSettled:
	default:
		respondInvalid(c, errInvalidObligationStatus)
		return
	}

	list, err := h.usecase.List(c.Request.Context(), status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromObligations(list))
}

// GetObligation godoc
// @Summary Get an obligation
// @Tags obligations
// @Produce json
// @Param id path string true "Obligation ID"
// @Success 200 {object} response.ObligationResponse
// @Router /obligations/{id} [get]
func (h *ObligationHandler) GetObligation(c *gin.Context) {
	o, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromObligation(o))
}

// UpdateObligation godoc
// @Summary Edit a pending obligation
// @Tags obligations
// @Accept json
// @Produce json
// @Param id path string true "Obligation ID"
// @Param obligation body request.ObligationRequest true "Obligation"
// @Success 200 {object} response.ObligationResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /obligations/{id} [put]
func (h *ObligationHandler) UpdateObligation(c *gin.Context) {
	var payload request.ObligationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, err)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		respondError(c, err)
		return
	}

	o, err := h.usecase.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromObligation(o))
}

// SettleObligation godoc
// @Summary Settle an obligation into the converted ledger
// @Tags obligations
// @Produce json
// @Param id path string true "Obligation ID"
// @Success 200 {object} response.SettlementResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /obligations/{id}/settle [post]
func (h *ObligationHandler) SettleObligation(c *gin.Context) {
	res, err := h.usecase.Settle(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSettlement(res))
}

// DeleteObligation godoc
// @Summary Delete an obligation (admin only)
// @Tags obligations
// @Param id path string true "Obligation ID"
// @Success 204
// @Router /obligations/{id} [delete]
func (h *ObligationHandler) DeleteObligation(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id"), actorRole(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
