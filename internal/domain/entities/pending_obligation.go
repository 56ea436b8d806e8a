package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type ObligationStatus string

const (
	ObligationPending ObligationStatus = "pending"
	ObligationSettled ObligationStatus = "settled"
)

// PendingObligation is an expected payment not yet received.
//
// Settlement flips Status to settled and appends exactly one converted
// FinancialRecord. The obligation itself is kept as an audit trail.
type PendingObligation struct {
	ID        string           `json:"id"`
	Client    string           `json:"client"`
	Amount    decimal.Decimal  `json:"amount"`
	DueDate   *time.Time       `json:"due_date,omitempty"`
	LotID     string           `json:"lot_id,omitempty"`
	Status    ObligationStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	SettledAt *time.Time       `json:"settled_at,omitempty"`
}

// ConvertedRecord builds the ledger row produced by settling o at the given instant.
func (o PendingObligation) ConvertedRecord(id string, at time.Time) FinancialRecord {
	at = at.UTC()
	return FinancialRecord{
		ID:           id,
		Source:       SourceConverted,
		Client:       o.Client,
		Amount:       o.Amount,
		Date:         at,
		LotID:        o.LotID,
		ObligationID: o.ID,
		CreatedAt:    at,
	}
}
