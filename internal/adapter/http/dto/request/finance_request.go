package request

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"paintshop_lots/internal/usecase"

	"github.com/shopspring/decimal"
)

var ErrInvalidWindow = errors.New("window must be a positive number of days or \"all\"")

// DirectRecordRequest is the finance-entry form. Amount accepts a JSON number
// or a decimal string.
type DirectRecordRequest struct {
	Client            string          `json:"client"`
	Amount            decimal.Decimal `json:"amount"`
	Date              string          `json:"date"`
	LotID             string          `json:"lot_id"`
	ProviderPaymentID string          `json:"provider_payment_id"`
	MarkLotPaid       bool            `json:"mark_lot_paid"`
}

func (r DirectRecordRequest) ToEntry() (usecase.DirectEntry, error) {
	d, err := ParseDate(r.Date)
	if err != nil {
		return usecase.DirectEntry{}, err
	}
	var date time.Time
	if d != nil {
		date = *d
	}
	return usecase.DirectEntry{
		Client:            r.Client,
		Amount:            r.Amount,
		Date:              date,
		LotID:             r.LotID,
		ProviderPaymentID: r.ProviderPaymentID,
		MarkLotPaid:       r.MarkLotPaid,
	}, nil
}

type ObligationRequest struct {
	Client  string          `json:"client" binding:"required"`
	Amount  decimal.Decimal `json:"amount"`
	DueDate string          `json:"due_date"`
	LotID   string          `json:"lot_id"`
}

func (r ObligationRequest) ToInput() (usecase.ObligationInput, error) {
	due, err := ParseDate(r.DueDate)
	if err != nil {
		return usecase.ObligationInput{}, err
	}
	return usecase.ObligationInput{
		Client:  r.Client,
		Amount:  r.Amount,
		DueDate: due,
		LotID:   r.LotID,
	}, nil
}

// ParseWindow maps the report window query value to days; "all" (or empty) is 0.
func ParseWindow(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "all" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, ErrInvalidWindow
	}
	return n, nil
}
