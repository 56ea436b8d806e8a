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

const defaultSummaryPeriodDays = 7

// FinanceHandler serves the unified ledger: direct entries, the
// converted records produced by settled obligations, and the reports over both.
type FinanceHandler struct {
	usecase usecase.ILedgerUseCase
}

func NewFinanceHandler(uc usecase.ILedgerUseCase) *FinanceHandler {
	return &FinanceHandler{usecase: uc}
}

// CreateRecord godoc
// @Summary Record a received payment
// @Description With provider_payment_id the payment is verified with Mercado Pago first.
// @Tags finance
// @Accept json
// @Produce json
// @Param record body request.DirectRecordRequest true "Record"
// @Success 201 {object} response.RecordCreatedResponse
// @Failure 422 {object} pkg.HTTPError
// @Router /finance/records [post]
func (h *FinanceHandler) CreateRecord(c *gin.Context) {
	var payload request.DirectRecordRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, err)
		return
	}
	entry, err := payload.ToEntry()
	if err != nil {
		respondError(c, err)
		return
	}

	rec, err := h.usecase.RecordDirect(c.Request.Context(), entry)
	if err != nil && rec.ID == "" {
		respondError(c, err)
		return
	}
	out := response.RecordCreatedResponse{FinancialRecordResponse: response.FromFinancialRecord(rec)}
	if err != nil {
		log.Warn().Str("record_id", rec.ID).Err(err).Msg("[finance][handler] record stored with failed lot write-back")
		out.Warning = mapDomainError(err).Code + ": lot payment status was not updated"
	}
	c.JSON(http.StatusCreated, out)
}

// ListRecords godoc
// @Summary Unified ledger, newest first
// @Tags finance
// @Produce json
// @Param source query string false "direct|converted"
// @Success 200 {array} response.FinancialRecordResponse
// @Router /finance/records [get]
func (h *FinanceHandler) ListRecords(c *gin.Context) {
	source := entities.RecordSource(strings.ToLower(strings.TrimSpace(c.Query("source"))))
	recs, err := h.usecase.List(c.Request.Context(), source)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromFinancialRecords(recs))
}

// DeleteRecord godoc
// @Summary Delete a financial record (admin only)
// @Tags finance
// @Param source path string true "direct|converted"
// @Param id path string true "Record ID"
// @Success 204
// @Failure 403 {object} pkg.HTTPError
// @Router /finance/records/{source}/{id} [delete]
func (h *FinanceHandler) DeleteRecord(c *gin.Context) {
	source := entities.RecordSource(strings.ToLower(c.Param("source")))
	if err := h.usecase.DeleteRecord(c.Request.Context(), source, c.Param("id"), actorRole(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Report godoc
// @Summary Per-client ranking over a window
// @Tags finance
// @Produce json
// @Param window query string false "7|30|365|all"
// @Success 200 {object} response.LedgerReportResponse
// @Router /finance/report [get]
func (h *FinanceHandler) Report(c *gin.Context) {
	days, err := request.ParseWindow(c.Query("window"))
	if err != nil {
		respondError(c, err)
		return
	}
	report, err := h.usecase.Aggregate(c.Request.Context(), days)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromLedgerReport(report))
}

// ExportReport godoc
// @Summary Download the per-client ranking
// @Tags finance
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param window query string false "7|30|365|all"
// @Param format query string false "csv|xlsx"
// @Success 200 {file} file
// @Router /finance/report/export [get]
func (h *FinanceHandler) ExportReport(c *gin.Context) {
	days, err := request.ParseWindow(c.Query("window"))
	if err != nil {
		respondError(c, err)
		return
	}
	format, err := usecase.ParseExportFormat(c.Query("format"))
	if err != nil {
		respondInvalid(c, err)
		return
	}

	file, err := h.usecase.Export(c.Request.Context(), days, format)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+file.Name+`"`)
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

// Summary godoc
// @Summary Finance header: totals and latest transactions
// @Tags finance
// @Produce json
// @Param period query int false "Period in days (default 7)"
// @Success 200 {object} response.LedgerSummaryResponse
// @Router /finance/summary [get]
func (h *FinanceHandler) Summary(c *gin.Context) {
	period := defaultSummaryPeriodDays
	if s := strings.TrimSpace(c.Query("period")); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			respondError(c, request.ErrInvalidWindow)
			return
		}
		period = n
	}

	summary, err := h.usecase.Summary(c.Request.Context(), period)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromLedgerSummary(summary))
}
