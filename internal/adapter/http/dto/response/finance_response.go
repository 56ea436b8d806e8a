package response

import (
	"strconv"
	"time"

	"paintshop_lots/internal/domain/entities"
	"paintshop_lots/internal/usecase"
)

// Amounts are rendered as fixed two-decimal strings.

type FinancialRecordResponse struct {
	ID                string    `json:"id"`
	Source            string    `json:"source"`
	Client            string    `json:"client"`
	Amount            string    `json:"amount"`
	Date              time.Time `json:"date"`
	LotID             string    `json:"lot_id,omitempty"`
	ObligationID      string    `json:"obligation_id,omitempty"`
	ProviderPaymentID string    `json:"provider_payment_id,omitempty"`
}

func FromFinancialRecord(r entities.FinancialRecord) FinancialRecordResponse {
	return FinancialRecordResponse{
		ID:                r.ID,
		Source:            string(r.Source),
		Client:            r.Client,
		Amount:            r.Amount.StringFixed(2),
		Date:              r.Date,
		LotID:             r.LotID,
		ObligationID:      r.ObligationID,
		ProviderPaymentID: r.ProviderPaymentID,
	}
}

func FromFinancialRecords(rs []entities.FinancialRecord) []FinancialRecordResponse {
	out := make([]FinancialRecordResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromFinancialRecord(r))
	}
	return out
}

type ClientRankingResponse struct {
	Client       string                    `json:"client"`
	Total        string                    `json:"total"`
	Count        int                       `json:"count"`
	Transactions []FinancialRecordResponse `json:"transactions"`
}

type LedgerReportResponse struct {
	Window      string                  `json:"window"`
	TotalAmount string                  `json:"total_amount"`
	Count       int                     `json:"count"`
	Ranking     []ClientRankingResponse `json:"ranking"`
}

func FromLedgerReport(r entities.LedgerReport) LedgerReportResponse {
	window := "all"
	if r.WindowDays > 0 {
		window = strconv.Itoa(r.WindowDays)
	}
	out := LedgerReportResponse{
		Window:      window,
		TotalAmount: r.TotalAmount.StringFixed(2),
		Count:       r.Count,
		Ranking:     make([]ClientRankingResponse, 0, len(r.Ranking)),
	}
	for _, c := range r.Ranking {
		out.Ranking = append(out.Ranking, ClientRankingResponse{
			Client:       c.Client,
			Total:        c.Total.StringFixed(2),
			Count:        c.Count,
			Transactions: FromFinancialRecords(c.Transactions),
		})
	}
	return out
}

type LedgerSummaryResponse struct {
	OverallTotal     string                    `json:"overall_total"`
	PeriodDays       int                       `json:"period_days"`
	PeriodTotal      string                    `json:"period_total"`
	LastTransactions []FinancialRecordResponse `json:"last_transactions"`
}

func FromLedgerSummary(s entities.LedgerSummary) LedgerSummaryResponse {
	return LedgerSummaryResponse{
		OverallTotal:     s.OverallTotal.StringFixed(2),
		PeriodDays:       s.PeriodDays,
		PeriodTotal:      s.PeriodTotal.StringFixed(2),
		LastTransactions: FromFinancialRecords(s.LastTransactions),
	}
}

type ObligationResponse struct {
	ID        string     `json:"id"`
	Client    string     `json:"client"`
	Amount    string     `json:"amount"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	LotID     string     `json:"lot_id,omitempty"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	SettledAt *time.Time `json:"settled_at,omitempty"`
}

func FromObligation(o entities.PendingObligation) ObligationResponse {
	return ObligationResponse{
		ID:        o.ID,
		Client:    o.Client,
		Amount:    o.Amount.StringFixed(2),
		DueDate:   o.DueDate,
		LotID:     o.LotID,
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt,
		SettledAt: o.SettledAt,
	}
}

func FromObligations(os []entities.PendingObligation) []ObligationResponse {
	out := make([]ObligationResponse, 0, len(os))
	for _, o := range os {
		out = append(out, FromObligation(o))
	}
	return out
}

type SettlementResponse struct {
	Obligation ObligationResponse      `json:"obligation"`
	Record     FinancialRecordResponse `json:"record"`
}

func FromSettlement(r usecase.SettlementResult) SettlementResponse {
	return SettlementResponse{Obligation: FromObligation(r.Obligation), Record: FromFinancialRecord(r.Record)}
}

// RecordCreatedResponse reports a stored record whose lot write-back failed
// through Warning; the record itself is durable.
type RecordCreatedResponse struct {
	FinancialRecordResponse
	Warning string `json:"warning,omitempty"`
}
