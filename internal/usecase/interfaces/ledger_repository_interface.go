package interfaces

import (
	"context"
	"time"

	"paintshop_lots/internal/domain/entities"
)

//go:generate mockgen -source=ledger_repository_interface.go -destination=mocks/ledger_repository_mock.go -package=mock_interfaces

// IFinancialRecordRepository is one append-only ledger. The service holds two
// instances of it, one per RecordSource, backed by disjoint stores.
type IFinancialRecordRepository interface {
	Source() entities.RecordSource
	Append(ctx context.Context, r entities.FinancialRecord) error
	GetByID(ctx context.Context, id string) (entities.FinancialRecord, error)
	List(ctx context.Context) ([]entities.FinancialRecord, error)
	Delete(ctx context.Context, id string) error
}

// IObligationRepository abstracts persistence for pending obligations.
type IObligationRepository interface {
	Create(ctx context.Context, o entities.PendingObligation) error
	GetByID(ctx context.Context, id string) (entities.PendingObligation, error)
	List(ctx context.Context) ([]entities.PendingObligation, error)
	// UpdatePending rewrites client, amount and due date while the obligation is pending.
	UpdatePending(ctx context.Context, o entities.PendingObligation) (entities.PendingObligation, error)
	// MarkSettled flips a pending obligation to settled. ErrConditionFailed when it was not pending.
	MarkSettled(ctx context.Context, id string, settledAt time.Time) error
	// RevertSettled flips a settled obligation back to pending.
	RevertSettled(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// IAtomicSettler is implemented by stores that can flip the obligation and
// append the converted record in one transaction.
type IAtomicSettler interface {
	SettleObligation(ctx context.Context, obligationID string, record entities.FinancialRecord) error
}
