package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"paintshop_lots/internal/domain/entities"
	"paintshop_lots/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

//go:generate mockgen -source=history_usecase.go -destination=../adapter/http/handlers/mocks/history_usecase_mock.go -package=mocks

// IHistoryUseCase reads and reconciles delivered lots.
type IHistoryUseCase interface {
	List(ctx context.Context, search string) ([]entities.HistoryEntry, error)
	ByMonth(ctx context.Context, search string) ([]HistoryMonth, error)
	Delete(ctx context.Context, id string, role entities.Role) error
	FindPartialDeliveries(ctx context.Context) ([]entities.Lot, error)
	ResolvePartialDelivery(ctx context.Context, id string) (entities.HistoryEntry, error)
}

// HistoryMonth groups history entries by the YYYY-MM of their delivery.
type HistoryMonth struct {
	Month   string                  `json:"month"`
	Entries []entities.HistoryEntry `json:"entries"`
}

type HistoryUseCase struct {
	lotMutator
	history interfaces.IHistoryRepository
}

var _ IHistoryUseCase = (*HistoryUseCase)(nil)

func NewHistoryUseCase(lots interfaces.ILotRepository, history interfaces.IHistoryRepository, feed interfaces.IChangeFeed) *HistoryUseCase {
	return &HistoryUseCase{
		lotMutator: lotMutator{lots: lots, feed: feed, now: time.Now},
		history:    history,
	}
}

// List returns delivered lots, most recent delivery first. search matches
// client or color, case-insensitive.
func (u *HistoryUseCase) List(ctx context.Context, search string) ([]entities.HistoryEntry, error) {
	all, err := u.history.List(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(search))
	out := make([]entities.HistoryEntry, 0, len(all))
	for _, h := range all {
		if q != "" && !strings.Contains(strings.ToLower(h.Client), q) && !strings.Contains(strings.ToLower(h.Color), q) {
			continue
		}
		out = append(out, h)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].DeliveredAt.Equal(out[j].DeliveredAt) {
			return out[i].DeliveredAt.After(out[j].DeliveredAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (u *HistoryUseCase) ByMonth(ctx context.Context, search string) ([]HistoryMonth, error) {
	entries, err := u.List(ctx, search)
	if err != nil {
		return nil, err
	}
	months := []HistoryMonth{}
	for _, h := range entries {
		key := h.DeliveredAt.UTC().Format("2006-01")
		if n := len(months); n > 0 && months[n-1].Month == key {
			months[n-1].Entries = append(months[n-1].Entries, h)
			continue
		}
		months = append(months, HistoryMonth{Month: key, Entries: []entities.HistoryEntry{h}})
	}
	return months, nil
}

func (u *HistoryUseCase) Delete(ctx context.Context, id string, role entities.Role) error {
	if !role.Privileged() {
		return fmt.Errorf("%w: deleting history requires a privileged role", ErrPermissionDenied)
	}
	h, err := u.getEntry(ctx, id)
	if err != nil {
		return err
	}
	if err := u.history.Delete(ctx, h.ID); err != nil {
		return err
	}
	log.Info().Str("lot_id", h.ID).Msg("[history][usecase] history entry deleted")
	u.publish(ctx, entities.TopicHistory, "deleted", h.ID, nil)
	return nil
}

// FindPartialDeliveries lists active lots that already have a history entry,
// i.e. deliveries whose second step never completed.
func (u *HistoryUseCase) FindPartialDeliveries(ctx context.Context) ([]entities.Lot, error) {
	active, err := u.lots.List(ctx)
	if err != nil {
		return nil, err
	}
	delivered, err := u.history.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]struct{}, len(delivered))
	for _, h := range delivered {
		ids[h.ID] = struct{}{}
	}
	out := []entities.Lot{}
	for _, l := range active {
		if _, ok := ids[l.ID]; ok {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ResolvePartialDelivery finishes a half-done delivery by removing the active
// lot. It refuses when no history twin exists.
func (u *HistoryUseCase) ResolvePartialDelivery(ctx context.Context, id string) (entities.HistoryEntry, error) {
	h, err := u.getEntry(ctx, id)
	if err != nil {
		return entities.HistoryEntry{}, err
	}
	cur, err := u.load(ctx, h.ID)
	if err != nil {
		return entities.HistoryEntry{}, err
	}
	if err := u.lots.Delete(ctx, cur.ID, cur.Version); err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.HistoryEntry{}, fmt.Errorf("%w: lot %s", ErrStaleState, cur.ID)
		}
		log.Error().Str("lot_id", cur.ID).Err(err).Msg("[history][usecase] partial delivery resolution failed")
		return entities.HistoryEntry{}, err
	}
	log.Warn().Str("lot_id", cur.ID).Msg("[history][usecase] partial delivery resolved")
	u.publish(ctx, entities.TopicLots, "delivered", cur.ID, nil)
	return h, nil
}

func (u *HistoryUseCase) getEntry(ctx context.Context, id string) (entities.HistoryEntry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.HistoryEntry{}, ErrInvalidLotID
	}
	h, err := u.history.GetByID(ctx, id)
	if err != nil {
		return entities.HistoryEntry{}, err
	}
	if h.ID == "" {
		return entities.HistoryEntry{}, ErrHistoryNotFound
	}
	return h, nil
}
