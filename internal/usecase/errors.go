package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrPermissionDenied   = errors.New("permission denied")
	ErrInvalidTransition  = errors.New("invalid transition")
	ErrNotReady           = errors.New("lot not ready for delivery")
	ErrAlreadySettled     = errors.New("obligation already settled")
	ErrPartialMoveFailure = errors.New("delivery partially applied")
	ErrBatchWriteFailure  = errors.New("batch write failed")
	ErrStaleState         = errors.New("state changed since it was read")

	ErrInvalidLotID       = errors.New("invalid lot id")
	ErrLotNotFound        = errors.New("lot not found")
	ErrHistoryNotFound    = errors.New("history entry not found")
	ErrInvalidStation     = errors.New("invalid station")
	ErrInvalidStatusField = errors.New("invalid status field")
	ErrInvalidLotDetails  = errors.New("invalid lot details")

	ErrInvalidClient      = errors.New("invalid client")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidWindow      = errors.New("invalid window")
	ErrInvalidSource      = errors.New("invalid ledger source")
	ErrRecordNotFound     = errors.New("financial record not found")
	ErrObligationNotFound = errors.New("obligation not found")
	ErrPaymentNotVerified = errors.New("payment not verified")

	ErrPromptNotFound = errors.New("no active settlement prompt")
)

// PartialMoveError reports a delivery whose history write succeeded but whose
// active-lot removal failed. The caller must reconcile (see
// HistoryUseCase.ResolvePartialDelivery) instead of retrying the delivery.
type PartialMoveError struct {
	LotID string
	Err   error
}

func (e *PartialMoveError) Error() string {
	return fmt.Sprintf("delivery of lot %s left a history copy while the active lot remains: %v", e.LotID, e.Err)
}

func (e *PartialMoveError) Unwrap() []error {
	return []error{ErrPartialMoveFailure, e.Err}
}

// BatchWriteError reports a reorder whose batch could not be committed.
// Nothing was applied; the caller should re-fetch and recompute.
type BatchWriteError struct {
	Station int
	Err     error
}

func (e *BatchWriteError) Error() string {
	return fmt.Sprintf("paint order batch for station %d not applied: %v", e.Station, e.Err)
}

func (e *BatchWriteError) Unwrap() []error {
	return []error{ErrBatchWriteFailure, e.Err}
}
