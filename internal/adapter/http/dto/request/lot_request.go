package request

import (
	"errors"
	"strings"
	"time"

	"paintshop_lots/internal/domain/entities"
)

var (
	ErrInvalidDate = errors.New("invalid date, use YYYY-MM-DD or RFC3339")
)

// LotRequest is the intake/edit form of a lot.
type LotRequest struct {
	Client          string `json:"client" binding:"required"`
	Color           string `json:"color"`
	Quantity        int    `json:"quantity" binding:"required"`
	Photo           string `json:"photo"`
	DeliveryDue     string `json:"delivery_due"`
	PaymentMethod   string `json:"payment_method"`
	Note            string `json:"note"`
	RequiresInvoice bool   `json:"requires_invoice"`
}

func (r LotRequest) ToDetails() (entities.LotDetails, error) {
	due, err := ParseDate(r.DeliveryDue)
	if err != nil {
		return entities.LotDetails{}, err
	}
	return entities.LotDetails{
		Client:          r.Client,
		Color:           r.Color,
		Quantity:        r.Quantity,
		Photo:           strings.TrimSpace(r.Photo),
		DeliveryDue:     due,
		PaymentMethod:   r.PaymentMethod,
		Note:            r.Note,
		RequiresInvoice: r.RequiresInvoice,
	}, nil
}

type ScheduleRequest struct {
	Station int `json:"station" binding:"required"`
}

// FlagRequest sets a boolean flag. Value is a pointer so false is not
// mistaken for a missing field.
type FlagRequest struct {
	Value *bool `json:"value" binding:"required"`
}

type ReorderRequest struct {
	LotIDs []string `json:"lot_ids" binding:"required"`
}

// ParseDate accepts a calendar date or a full RFC3339 timestamp. Empty means no date.
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, ErrInvalidDate
}
