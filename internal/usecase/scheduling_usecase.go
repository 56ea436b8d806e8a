package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"paintshop_lots/internal/domain/entities"
	"paintshop_lots/internal/infrastructure/metrics"
	"paintshop_lots/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

//go:generate mockgen -source=scheduling_usecase.go -destination=../adapter/http/handlers/mocks/scheduling_usecase_mock.go -package=mocks

// ISchedulingUseCase places lots at stations and keeps each station's paint order.
type ISchedulingUseCase interface {
	Stations() int
	AssignStation(ctx context.Context, lotID string, station int) (entities.Lot, error)
	Reorder(ctx context.Context, station int, orderedLotIDs []string) ([]entities.Lot, error)
	StationQueue(ctx context.Context, station int) ([]entities.Lot, error)
}

type SchedulingUseCase struct {
	lotMutator
	stations int
}

var _ ISchedulingUseCase = (*SchedulingUseCase)(nil)

// NewSchedulingUseCase builds the orderer for stations numbered 1..stations.
func NewSchedulingUseCase(lots interfaces.ILotRepository, feed interfaces.IChangeFeed, stations int) *SchedulingUseCase {
	if stations < 1 {
		stations = 1
	}
	return &SchedulingUseCase{
		lotMutator: lotMutator{lots: lots, feed: feed, now: time.Now},
		stations:   stations,
	}
}

func (u *SchedulingUseCase) Stations() int {
	return u.stations
}

func (u *SchedulingUseCase) validStation(station int) error {
	if station < 1 || station > u.stations {
		return fmt.Errorf("%w: %d (stations are 1..%d)", ErrInvalidStation, station, u.stations)
	}
	return nil
}

// AssignStation schedules a lot at the end of the station's queue. Assigning
// a lot to the station it already sits in keeps its position. The write fails
// with ErrStaleState if another lot joined the station after the queue read.
func (u *SchedulingUseCase) AssignStation(ctx context.Context, lotID string, station int) (entities.Lot, error) {
	if err := u.validStation(station); err != nil {
		return entities.Lot{}, err
	}

	stationVersion, err := u.lots.StationVersion(ctx, station)
	if err != nil {
		return entities.Lot{}, err
	}
	queue, err := u.lots.ListByStation(ctx, station)
	if err != nil {
		return entities.Lot{}, err
	}
	next := nextPaintOrder(queue, strings.TrimSpace(lotID))

	place := func(ctx context.Context, l entities.Lot, expectedVersion int64) (entities.Lot, error) {
		return u.lots.PlaceAtStation(ctx, l, expectedVersion, stationVersion)
	}
	l, err := u.mutateWith(ctx, lotID, "schedule", func(l entities.Lot) (entities.Lot, error) {
		if l.Scheduled && l.Station != nil && *l.Station == station {
			return l, errUnchanged
		}
		return l.AssignedTo(station, next), nil
	}, place)
	if err != nil {
		return entities.Lot{}, err
	}
	log.Info().Str("lot_id", l.ID).Int("station", station).Msg("[scheduling][usecase] lot scheduled")
	return l, nil
}

// Reorder rewrites the paint order of a station from a caller-supplied total
// order. The order must name exactly the lots currently at the station; the
// batch is committed all-or-nothing, each row conditioned on the version read
// here and the whole batch on the station version read before the queue.
func (u *SchedulingUseCase) Reorder(ctx context.Context, station int, orderedLotIDs []string) ([]entities.Lot, error) {
	if err := u.validStation(station); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(orderedLotIDs))
	seen := make(map[string]struct{}, len(orderedLotIDs))
	for _, id := range orderedLotIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			return nil, ErrInvalidLotID
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: %s listed twice", ErrInvalidLotID, id)
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	stationVersion, err := u.lots.StationVersion(ctx, station)
	if err != nil {
		return nil, err
	}
	current, err := u.lots.ListByStation(ctx, station)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]entities.Lot, len(current))
	for _, l := range current {
		byID[l.ID] = l
	}
	if len(byID) != len(seen) {
		return nil, fmt.Errorf("%w: station %d holds %d lots, order names %d", ErrStaleState, station, len(byID), len(seen))
	}

	updates := make([]entities.PaintOrderUpdate, 0, len(ids))
	for i, id := range ids {
		l, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: lot %s is not at station %d", ErrStaleState, id, station)
		}
		updates = append(updates, entities.PaintOrderUpdate{LotID: id, PaintOrder: i, ExpectedVersion: l.Version})
	}

	if err := u.lots.ApplyPaintOrder(ctx, station, stationVersion, updates); err != nil {
		metrics.LotTransitions.WithLabelValues("reorder_failed").Inc()
		log.Error().Int("station", station).Int("lots", len(updates)).Err(err).Msg("[scheduling][usecase] reorder batch failed")
		if errors.Is(err, interfaces.ErrConditionFailed) {
			err = errors.Join(ErrStaleState, err)
		}
		return nil, &BatchWriteError{Station: station, Err: err}
	}
	metrics.LotTransitions.WithLabelValues("reorder").Inc()
	log.Info().Int("station", station).Int("lots", len(updates)).Msg("[scheduling][usecase] paint order saved")
	u.publish(ctx, entities.TopicLots, "reordered", fmt.Sprintf("station-%d", station), ids)

	return u.StationQueue(ctx, station)
}

// StationQueue returns the lots at a station in display order.
func (u *SchedulingUseCase) StationQueue(ctx context.Context, station int) ([]entities.Lot, error) {
	if err := u.validStation(station); err != nil {
		return nil, err
	}
	lots, err := u.lots.ListByStation(ctx, station)
	if err != nil {
		return nil, err
	}
	return SortForDisplay(lots), nil
}

// nextPaintOrder is max(existing index at the station) + 1, or 0 for an empty station.
func nextPaintOrder(queue []entities.Lot, exclude string) int {
	next := 0
	for _, l := range queue {
		if l.ID == exclude || l.PaintOrder == nil {
			continue
		}
		if *l.PaintOrder+1 > next {
			next = *l.PaintOrder + 1
		}
	}
	return next
}

// SortForDisplay orders lots by paint order. Lots without one come after all
// lots that have one, in arrival order.
func SortForDisplay(lots []entities.Lot) []entities.Lot {
	out := make([]entities.Lot, len(lots))
	copy(out, lots)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch {
		case a.PaintOrder != nil && b.PaintOrder != nil:
			if *a.PaintOrder != *b.PaintOrder {
				return *a.PaintOrder < *b.PaintOrder
			}
			return a.CreatedAt.Before(b.CreatedAt)
		case a.PaintOrder != nil:
			return true
		case b.PaintOrder != nil:
			return false
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	})
	return out
}
