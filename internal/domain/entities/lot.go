package entities

import "time"

// TriState is the three-valued status used for payment, measurement and invoice.
type TriState string

const (
	StatusUnanalysed TriState = "unanalysed"
	StatusPending    TriState = "pending"
	StatusOK         TriState = "ok"
)

// StatusField names one of the tri-state fields of a lot.
type StatusField string

const (
	FieldPayment     StatusField = "payment"
	FieldMeasurement StatusField = "measurement"
	FieldInvoice     StatusField = "invoice"
)

// Valid reports whether f is one of the known tri-state fields.
func (f StatusField) Valid() bool {
	switch f {
	case FieldPayment, FieldMeasurement, FieldInvoice:
		return true
	}
	return false
}

// Lot is a unit of production work moving through the paint shop.
//
// Storage model (DynamoDB):
//   - PK: id
//   - Version is bumped on every write and used as the optimistic-lock token.
//
// Invariants:
//   - Promised requires Scheduled.
//   - Painted implies !Scheduled, Station == nil and PaintOrder == nil.
//   - Station and PaintOrder are only present while Scheduled.
//   - PaintedAt is only present while Painted.
type Lot struct {
	ID string `json:"id"`

	Client          string     `json:"client"`
	Color           string     `json:"color"`
	Quantity        int        `json:"quantity"`
	Photo           string     `json:"photo,omitempty"`
	DeliveryDue     *time.Time `json:"delivery_due,omitempty"`
	PaymentMethod   string     `json:"payment_method,omitempty"`
	Note            string     `json:"note,omitempty"`
	RequiresInvoice bool       `json:"requires_invoice"`

	Payment     TriState `json:"payment"`
	Measurement TriState `json:"measurement"`
	Invoice     TriState `json:"invoice"`

	Scheduled bool `json:"scheduled"`
	Painted   bool `json:"painted"`
	Promised  bool `json:"promised"`

	Station    *int `json:"station,omitempty"`
	PaintOrder *int `json:"paint_order,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	PaintedAt *time.Time `json:"painted_at,omitempty"`

	Version int64 `json:"version"`
}

// LotDetails holds the descriptive, operator-editable part of a lot.
type LotDetails struct {
	Client          string
	Color           string
	Quantity        int
	Photo           string
	DeliveryDue     *time.Time
	PaymentMethod   string
	Note            string
	RequiresInvoice bool
}

// Stage is the board column a lot currently belongs to.
type Stage string

const (
	StageReceived  Stage = "received"
	StageScheduled Stage = "scheduled"
	StagePainted   Stage = "painted"
)

// Stage derives the board column from the lifecycle flags.
func (l Lot) Stage() Stage {
	switch {
	case l.Painted:
		return StagePainted
	case l.Scheduled:
		return StageScheduled
	default:
		return StageReceived
	}
}

// Status returns the value of a tri-state field.
func (l Lot) Status(f StatusField) TriState {
	switch f {
	case FieldPayment:
		return l.Payment
	case FieldMeasurement:
		return l.Measurement
	case FieldInvoice:
		return l.Invoice
	}
	return StatusUnanalysed
}

// HistoryEntry is the immutable snapshot of a delivered lot.
type HistoryEntry struct {
	Lot
	DeliveredAt time.Time `json:"delivered_at"`
}

// PaintOrderUpdate is one row of a station reorder batch.
type PaintOrderUpdate struct {
	LotID           string
	PaintOrder      int
	ExpectedVersion int64
}

// Role is the acting role supplied by the identity provider.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleOperator Role = "operator"
)

// Privileged reports whether the role may change restricted fields and delete records.
func (r Role) Privileged() bool {
	return r == RoleAdmin
}
