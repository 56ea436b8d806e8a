package entities

import (
	"errors"
	"time"
)

var ErrInvariantViolated = errors.New("lot invariant violated")

// statusCycle is the tri-state transition table:
// unanalysed -> pending -> ok -> unanalysed.
var statusCycle = map[TriState]TriState{
	StatusUnanalysed: StatusPending,
	StatusPending:    StatusOK,
	StatusOK:         StatusUnanalysed,
}

// Normalize maps any unrecognized value to StatusUnanalysed.
func (s TriState) Normalize() TriState {
	if _, ok := statusCycle[s]; ok {
		return s
	}
	return StatusUnanalysed
}

// NextStatus returns the value following current in the cycle.
func NextStatus(current TriState) TriState {
	return statusCycle[current.Normalize()]
}

// The methods below are the lot transition table. Each one returns a copy with
// every dependent field already cascaded, so callers never clear fields by hand.

// WithStatus sets one tri-state field.
func (l Lot) WithStatus(f StatusField, v TriState) Lot {
	v = v.Normalize()
	switch f {
	case FieldPayment:
		l.Payment = v
	case FieldMeasurement:
		l.Measurement = v
	case FieldInvoice:
		l.Invoice = v
	}
	return l
}

// AssignedTo schedules the lot at a station with the given paint order.
// Scheduling retracts a previous "painted" mark.
func (l Lot) AssignedTo(station, paintOrder int) Lot {
	l.Scheduled = true
	l.Painted = false
	l.PaintedAt = nil
	l.Station = intPtr(station)
	l.PaintOrder = intPtr(paintOrder)
	return l
}

// Unscheduled drops the lot from its station queue and retracts the promise.
func (l Lot) Unscheduled() Lot {
	l.Scheduled = false
	l.Promised = false
	l.Station = nil
	l.PaintOrder = nil
	return l
}

// MarkedPainted marks the lot painted at the given instant. Being painted
// ends the scheduling, so the unscheduling cascade applies too.
func (l Lot) MarkedPainted(at time.Time) Lot {
	l = l.Unscheduled()
	l.Painted = true
	t := at.UTC()
	l.PaintedAt = &t
	return l
}

// Unpainted clears the painted mark and its timestamp.
func (l Lot) Unpainted() Lot {
	l.Painted = false
	l.PaintedAt = nil
	return l
}

// WithPromise sets the promised flag. ok is false when promising an
// unscheduled lot, in which case l is returned unchanged.
func (l Lot) WithPromise(v bool) (out Lot, ok bool) {
	if v && !l.Scheduled {
		return l, false
	}
	l.Promised = v
	return l, true
}

// CanDeliver is the delivery gate: payment ok, measurement ok and painted.
// Invoice status is deliberately not part of it.
func (l Lot) CanDeliver() bool {
	return l.Payment == StatusOK && l.Measurement == StatusOK && l.Painted
}

// CheckInvariants validates the cross-field rules of a lot.
func (l Lot) CheckInvariants() error {
	switch {
	case l.Promised && !l.Scheduled:
		return errors.Join(ErrInvariantViolated, errors.New("promised lot must be scheduled"))
	case l.Painted && (l.Scheduled || l.Station != nil || l.PaintOrder != nil):
		return errors.Join(ErrInvariantViolated, errors.New("painted lot cannot hold a station slot"))
	case !l.Scheduled && (l.Station != nil || l.PaintOrder != nil):
		return errors.Join(ErrInvariantViolated, errors.New("station slot requires scheduling"))
	case !l.Painted && l.PaintedAt != nil:
		return errors.Join(ErrInvariantViolated, errors.New("painted_at requires painted"))
	}
	return nil
}

// ToHistory snapshots the lot as delivered at the given instant.
func (l Lot) ToHistory(deliveredAt time.Time) HistoryEntry {
	return HistoryEntry{Lot: l, DeliveredAt: deliveredAt.UTC()}
}

func intPtr(v int) *int {
	return &v
}
