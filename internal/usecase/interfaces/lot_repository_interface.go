package interfaces

import (
	"context"
	"errors"

	"paintshop_lots/internal/domain/entities"
)

// ErrConditionFailed is returned by repositories when a conditional write
// lost against a concurrent change (version mismatch, item already present,
// item already gone).
var ErrConditionFailed = errors.New("storage condition failed")

//go:generate mockgen -source=lot_repository_interface.go -destination=mocks/lot_repository_mock.go -package=mock_interfaces

// ILotRepository abstracts persistence for active lots.
//
// Reads must reflect the latest server-held value. Update and Delete are
// conditional on the caller's expected version and report ErrConditionFailed
// when the stored lot moved on.
type ILotRepository interface {
	Create(ctx context.Context, l entities.Lot) (entities.Lot, error)
	GetByID(ctx context.Context, id string) (entities.Lot, error)
	List(ctx context.Context) ([]entities.Lot, error)
	ListByStation(ctx context.Context, station int) ([]entities.Lot, error)
	Update(ctx context.Context, l entities.Lot, expectedVersion int64) (entities.Lot, error)
	Delete(ctx context.Context, id string, expectedVersion int64) error

	// StationVersion is bumped whenever a lot joins a station or the station
	// is reordered. A station nobody wrote to yet is at version 0.
	StationVersion(ctx context.Context, station int) (int64, error)
	// PlaceAtStation writes a lot that joins l.Station. It is conditional on
	// the lot's expectedVersion and on the station still being at
	// stationVersion, and bumps the station version.
	PlaceAtStation(ctx context.Context, l entities.Lot, expectedVersion, stationVersion int64) (entities.Lot, error)
	// ApplyPaintOrder rewrites paint-order indexes as one all-or-nothing batch.
	// It fails if the station moved past stationVersion and bumps it on success.
	ApplyPaintOrder(ctx context.Context, station int, stationVersion int64, updates []entities.PaintOrderUpdate) error
}

// IHistoryRepository abstracts persistence for delivered lots.
type IHistoryRepository interface {
	Create(ctx context.Context, h entities.HistoryEntry) error
	GetByID(ctx context.Context, id string) (entities.HistoryEntry, error)
	List(ctx context.Context) ([]entities.HistoryEntry, error)
	Delete(ctx context.Context, id string) error
}

// IAtomicDeliverer is implemented by stores that can write the history entry
// and delete the active lot as one transaction. The delete is conditional on
// expectedVersion.
type IAtomicDeliverer interface {
	MoveToHistory(ctx context.Context, h entities.HistoryEntry, expectedVersion int64) error
}
