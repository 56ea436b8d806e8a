package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordSource tags which ledger a FinancialRecord came from.
//
// The two ledgers are disjoint, append-only stores. Reporting code reads them
// through the unified view and must keep the tag to tell them apart.
type RecordSource string

const (
	SourceDirect    RecordSource = "direct"
	SourceConverted RecordSource = "converted"
)

// Valid reports whether s is a known ledger source.
func (s RecordSource) Valid() bool {
	return s == SourceDirect || s == SourceConverted
}

// FinancialRecord is a settled payment observation.
//
// Storage model (DynamoDB), one table per source:
//   - PK: id
//
// Records are never updated once written; only deletion is supported.
type FinancialRecord struct {
	ID                string          `json:"id"`
	Source            RecordSource    `json:"source"`
	Client            string          `json:"client"`
	Amount            decimal.Decimal `json:"amount"`
	Date              time.Time       `json:"date"`
	LotID             string          `json:"lot_id,omitempty"`
	ObligationID      string          `json:"obligation_id,omitempty"`
	ProviderPaymentID string          `json:"provider_payment_id,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

// ClientRanking is one row of the per-client report.
type ClientRanking struct {
	Client       string            `json:"client"`
	Total        decimal.Decimal   `json:"total"`
	Count        int               `json:"count"`
	Transactions []FinancialRecord `json:"transactions"`
}

// LedgerReport is the aggregate of the unified ledger over a window.
// WindowDays is 0 for the "all" window.
type LedgerReport struct {
	WindowDays  int             `json:"window_days"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Count       int             `json:"count"`
	Ranking     []ClientRanking `json:"ranking"`
}

// LedgerSummary is the dashboard header of the finance screen.
type LedgerSummary struct {
	OverallTotal     decimal.Decimal   `json:"overall_total"`
	PeriodDays       int               `json:"period_days"`
	PeriodTotal      decimal.Decimal   `json:"period_total"`
	LastTransactions []FinancialRecord `json:"last_transactions"`
}
