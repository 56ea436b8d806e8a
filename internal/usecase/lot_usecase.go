package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"paintshop_lots/internal/domain/entities"
	"paintshop_lots/internal/infrastructure/metrics"
	"paintshop_lots/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

//go:generate mockgen -source=lot_usecase.go -destination=../adapter/http/handlers/mocks/lot_usecase_mock.go -package=mocks

// ILotUseCase is the lot state machine.
//
// Every mutation is a read-modify-write against the latest stored lot and is
// committed conditionally on the version that was read, so two operators
// editing the same lot cannot overwrite each other silently (ErrStaleState).
type ILotUseCase interface {
	Create(ctx context.Context, d entities.LotDetails) (entities.Lot, error)
	GetByID(ctx context.Context, id string) (entities.Lot, error)
	UpdateDetails(ctx context.Context, id string, d entities.LotDetails) (entities.Lot, error)
	Delete(ctx context.Context, id string, role entities.Role) error

	ToggleStatus(ctx context.Context, id string, field entities.StatusField, role entities.Role) (ToggleResult, error)
	RevertSettlement(ctx context.Context, id string) (entities.Lot, error)
	MarkPaymentSettled(ctx context.Context, id string) (entities.Lot, error)

	SetScheduled(ctx context.Context, id string, value bool) (entities.Lot, error)
	SetPainted(ctx context.Context, id string, value bool) (entities.Lot, error)
	MarkPaintedByScan(ctx context.Context, id string) (entities.Lot, bool, error)
	SetPromised(ctx context.Context, id string, value bool) (entities.Lot, error)

	CanDeliver(ctx context.Context, id string) (bool, error)
	Deliver(ctx context.Context, id string) (entities.HistoryEntry, error)

	Board(ctx context.Context, f BoardFilter) (Board, error)
}

// ToggleResult carries the toggled lot and, when payment just became ok, the
// settlement opportunity the caller has to hand to the settlement prompt.
type ToggleResult struct {
	Lot         entities.Lot
	Opportunity *entities.SettlementOpportunity
}

// errUnchanged lets a transition report "nothing to write" to mutate.
var errUnchanged = errors.New("unchanged")

// lotMutator is the read-modify-write core shared by the lot and scheduling use cases.
type lotMutator struct {
	lots interfaces.ILotRepository
	feed interfaces.IChangeFeed
	now  func() time.Time
}

func (m lotMutator) load(ctx context.Context, id string) (entities.Lot, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lot{}, ErrInvalidLotID
	}
	l, err := m.lots.GetByID(ctx, id)
	if err != nil {
		return entities.Lot{}, err
	}
	if l.ID == "" {
		return entities.Lot{}, ErrLotNotFound
	}
	return l, nil
}

// lotWriter persists next over a lot read at expectedVersion.
type lotWriter func(ctx context.Context, next entities.Lot, expectedVersion int64) (entities.Lot, error)

func (m lotMutator) mutate(ctx context.Context, id, op string, apply func(entities.Lot) (entities.Lot, error)) (entities.Lot, error) {
	return m.mutateWith(ctx, id, op, apply, m.lots.Update)
}

func (m lotMutator) mutateWith(ctx context.Context, id, op string, apply func(entities.Lot) (entities.Lot, error), write lotWriter) (entities.Lot, error) {
	cur, err := m.load(ctx, id)
	if err != nil {
		return entities.Lot{}, err
	}

	next, err := apply(cur)
	if errors.Is(err, errUnchanged) {
		return cur, nil
	}
	if err != nil {
		log.Info().Str("lot_id", cur.ID).Str("op", op).Err(err).Msg("[lot][usecase] transition rejected")
		return entities.Lot{}, err
	}
	if err := next.CheckInvariants(); err != nil {
		return entities.Lot{}, fmt.Errorf("%w: %v", ErrInvalidTransition, err)
	}
	next.UpdatedAt = m.now().UTC()

	saved, err := write(ctx, next, cur.Version)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			log.Warn().Str("lot_id", cur.ID).Str("op", op).Int64("version", cur.Version).Msg("[lot][usecase] concurrent update detected")
			return entities.Lot{}, fmt.Errorf("%w: lot %s", ErrStaleState, cur.ID)
		}
		log.Error().Str("lot_id", cur.ID).Str("op", op).Err(err).Msg("[lot][usecase] update failed")
		return entities.Lot{}, err
	}
	metrics.LotTransitions.WithLabelValues(op).Inc()
	m.publish(ctx, entities.TopicLots, op, saved.ID, saved)
	return saved, nil
}

func (m lotMutator) publish(ctx context.Context, topic entities.Topic, action, id string, payload any) {
	if m.feed == nil {
		return
	}
	m.feed.Publish(ctx, entities.ChangeEvent{Topic: topic, Action: action, EntityID: id, At: m.now().UTC(), Payload: payload})
}

type LotUseCase struct {
	lotMutator
	history interfaces.IHistoryRepository
}

var _ ILotUseCase = (*LotUseCase)(nil)

func NewLotUseCase(lots interfaces.ILotRepository, history interfaces.IHistoryRepository, feed interfaces.IChangeFeed) *LotUseCase {
	return &LotUseCase{
		lotMutator: lotMutator{lots: lots, feed: feed, now: time.Now},
		history:    history,
	}
}

func (u *LotUseCase) Create(ctx context.Context, d entities.LotDetails) (entities.Lot, error) {
	d, err := normalizeDetails(d)
	if err != nil {
		return entities.Lot{}, err
	}

	now := u.now().UTC()
	l := entities.Lot{
		ID:          uuid.NewString(),
		Payment:     entities.StatusUnanalysed,
		Measurement: entities.StatusUnanalysed,
		Invoice:     entities.StatusUnanalysed,
		CreatedAt:   now,
		UpdatedAt:   now,
		Version:     1,
	}
	l = applyDetails(l, d)

	created, err := u.lots.Create(ctx, l)
	if err != nil {
		log.Error().Str("client", d.Client).Err(err).Msg("[lot][usecase] create failed")
		return entities.Lot{}, err
	}
	log.Info().Str("lot_id", created.ID).Str("client", created.Client).Msg("[lot][usecase] lot received")
	u.publish(ctx, entities.TopicLots, "created", created.ID, created)
	return created, nil
}

func (u *LotUseCase) GetByID(ctx context.Context, id string) (entities.Lot, error) {
	return u.load(ctx, id)
}

func (u *LotUseCase) UpdateDetails(ctx context.Context, id string, d entities.LotDetails) (entities.Lot, error) {
	d, err := normalizeDetails(d)
	if err != nil {
		return entities.Lot{}, err
	}
	return u.mutate(ctx, id, "update_details", func(l entities.Lot) (entities.Lot, error) {
		return applyDetails(l, d), nil
	})
}

func (u *LotUseCase) Delete(ctx context.Context, id string, role entities.Role) error {
	if !role.Privileged() {
		return fmt.Errorf("%w: deleting a lot requires a privileged role", ErrPermissionDenied)
	}
	cur, err := u.load(ctx, id)
	if err != nil {
		return err
	}
	if err := u.lots.Delete(ctx, cur.ID, cur.Version); err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return fmt.Errorf("%w: lot %s", ErrStaleState, cur.ID)
		}
		return err
	}
	log.Info().Str("lot_id", cur.ID).Msg("[lot][usecase] lot deleted")
	u.publish(ctx, entities.TopicLots, "deleted", cur.ID, nil)
	return nil
}

// ToggleStatus advances one tri-state field. When payment lands on ok the
// result carries a SettlementOpportunity; the transition is only final once
// the caller has driven the settlement prompt to an outcome.
func (u *LotUseCase) ToggleStatus(ctx context.Context, id string, field entities.StatusField, role entities.Role) (ToggleResult, error) {
	if !role.Privileged() {
		return ToggleResult{}, fmt.Errorf("%w: changing %s requires a privileged role", ErrPermissionDenied, field)
	}
	if !field.Valid() {
		return ToggleResult{}, ErrInvalidStatusField
	}

	l, err := u.mutate(ctx, id, "toggle_"+string(field), func(l entities.Lot) (entities.Lot, error) {
		return l.WithStatus(field, entities.NextStatus(l.Status(field))), nil
	})
	if err != nil {
		return ToggleResult{}, err
	}

	res := ToggleResult{Lot: l}
	if field == entities.FieldPayment && l.Payment == entities.StatusOK {
		res.Opportunity = &entities.SettlementOpportunity{LotID: l.ID, Client: l.Client, At: u.now().UTC()}
		log.Info().Str("lot_id", l.ID).Msg("[lot][usecase] settlement opportunity raised")
	}
	return res, nil
}

// RevertSettlement is the corrective transition of a cancelled settlement
// prompt: payment goes back to pending, not unanalysed. A lot whose payment
// already moved away from ok is left as is.
func (u *LotUseCase) RevertSettlement(ctx context.Context, id string) (entities.Lot, error) {
	return u.mutate(ctx, id, "revert_settlement", func(l entities.Lot) (entities.Lot, error) {
		if l.Payment != entities.StatusOK {
			return l, errUnchanged
		}
		return l.WithStatus(entities.FieldPayment, entities.StatusPending), nil
	})
}

// MarkPaymentSettled writes payment=ok without going through the prompt.
// It is used when the settlement itself is the finance entry.
func (u *LotUseCase) MarkPaymentSettled(ctx context.Context, id string) (entities.Lot, error) {
	return u.mutate(ctx, id, "payment_settled", func(l entities.Lot) (entities.Lot, error) {
		if l.Payment == entities.StatusOK {
			return l, errUnchanged
		}
		return l.WithStatus(entities.FieldPayment, entities.StatusOK), nil
	})
}

// SetScheduled(false) unschedules and retracts the promise. Scheduling needs a
// station, so SetScheduled(true) is refused here; use SchedulingUseCase.AssignStation.
func (u *LotUseCase) SetScheduled(ctx context.Context, id string, value bool) (entities.Lot, error) {
	if value {
		return entities.Lot{}, fmt.Errorf("%w: scheduling requires choosing a station", ErrInvalidTransition)
	}
	return u.mutate(ctx, id, "unschedule", func(l entities.Lot) (entities.Lot, error) {
		if !l.Scheduled {
			return l, errUnchanged
		}
		return l.Unscheduled(), nil
	})
}

func (u *LotUseCase) SetPainted(ctx context.Context, id string, value bool) (entities.Lot, error) {
	if !value {
		return u.mutate(ctx, id, "unpaint", func(l entities.Lot) (entities.Lot, error) {
			return l.Unpainted(), nil
		})
	}
	return u.mutate(ctx, id, "paint", func(l entities.Lot) (entities.Lot, error) {
		return l.MarkedPainted(u.now()), nil
	})
}

// MarkPaintedByScan is the QR-scan shortcut. changed is false when the lot
// was already painted.
func (u *LotUseCase) MarkPaintedByScan(ctx context.Context, id string) (entities.Lot, bool, error) {
	changed := false
	l, err := u.mutate(ctx, id, "paint_scan", func(l entities.Lot) (entities.Lot, error) {
		if l.Painted {
			return l, errUnchanged
		}
		changed = true
		return l.MarkedPainted(u.now()), nil
	})
	if err != nil {
		return entities.Lot{}, false, err
	}
	return l, changed, nil
}

func (u *LotUseCase) SetPromised(ctx context.Context, id string, value bool) (entities.Lot, error) {
	return u.mutate(ctx, id, "promise", func(l entities.Lot) (entities.Lot, error) {
		next, ok := l.WithPromise(value)
		if !ok {
			return l, fmt.Errorf("%w: only a scheduled lot can be promised", ErrInvalidTransition)
		}
		return next, nil
	})
}

func (u *LotUseCase) CanDeliver(ctx context.Context, id string) (bool, error) {
	l, err := u.load(ctx, id)
	if err != nil {
		return false, err
	}
	return l.CanDeliver(), nil
}

// Deliver moves a ready lot to history.
//
// When the store can do it, the history write and the active delete are one
// transaction conditioned on the version read here. Otherwise it is two steps;
// a failure of the second step is returned as *PartialMoveError.
func (u *LotUseCase) Deliver(ctx context.Context, id string) (entities.HistoryEntry, error) {
	cur, err := u.load(ctx, id)
	if err != nil {
		return entities.HistoryEntry{}, err
	}
	if !cur.CanDeliver() {
		metrics.LotDeliveries.WithLabelValues("not_ready").Inc()
		return entities.HistoryEntry{}, fmt.Errorf("%w: payment=%s measurement=%s painted=%t", ErrNotReady, cur.Payment, cur.Measurement, cur.Painted)
	}

	existing, err := u.history.GetByID(ctx, cur.ID)
	if err != nil {
		return entities.HistoryEntry{}, err
	}
	if existing.ID != "" {
		metrics.LotDeliveries.WithLabelValues("partial").Inc()
		return entities.HistoryEntry{}, &PartialMoveError{LotID: cur.ID, Err: errors.New("history entry already exists for an active lot")}
	}

	entry := cur.ToHistory(u.now())

	if mover, ok := u.lots.(interfaces.IAtomicDeliverer); ok {
		if err := mover.MoveToHistory(ctx, entry, cur.Version); err != nil {
			if errors.Is(err, interfaces.ErrConditionFailed) {
				metrics.LotDeliveries.WithLabelValues("stale").Inc()
				return entities.HistoryEntry{}, fmt.Errorf("%w: lot %s changed before delivery", ErrStaleState, cur.ID)
			}
			log.Error().Str("lot_id", cur.ID).Err(err).Msg("[lot][usecase] atomic delivery failed")
			return entities.HistoryEntry{}, err
		}
	} else {
		if err := u.history.Create(ctx, entry); err != nil {
			if errors.Is(err, interfaces.ErrConditionFailed) {
				metrics.LotDeliveries.WithLabelValues("stale").Inc()
				return entities.HistoryEntry{}, fmt.Errorf("%w: lot %s delivered concurrently", ErrStaleState, cur.ID)
			}
			log.Error().Str("lot_id", cur.ID).Err(err).Msg("[lot][usecase] history write failed")
			return entities.HistoryEntry{}, err
		}
		if err := u.lots.Delete(ctx, cur.ID, cur.Version); err != nil {
			metrics.LotDeliveries.WithLabelValues("partial").Inc()
			log.Error().Str("lot_id", cur.ID).Err(err).Msg("[lot][usecase] active lot removal failed after history write")
			u.publish(ctx, entities.TopicHistory, "created", entry.ID, entry)
			return entities.HistoryEntry{}, &PartialMoveError{LotID: cur.ID, Err: err}
		}
	}

	metrics.LotDeliveries.WithLabelValues("delivered").Inc()
	log.Info().Str("lot_id", cur.ID).Str("client", cur.Client).Msg("[lot][usecase] lot delivered")
	u.publish(ctx, entities.TopicLots, "delivered", cur.ID, nil)
	u.publish(ctx, entities.TopicHistory, "created", entry.ID, entry)
	return entry, nil
}

func normalizeDetails(d entities.LotDetails) (entities.LotDetails, error) {
	d.Client = strings.TrimSpace(d.Client)
	d.Color = strings.TrimSpace(d.Color)
	d.PaymentMethod = strings.TrimSpace(d.PaymentMethod)
	d.Note = strings.TrimSpace(d.Note)
	if d.Client == "" {
		return d, fmt.Errorf("%w: client is required", ErrInvalidLotDetails)
	}
	if d.Quantity <= 0 {
		return d, fmt.Errorf("%w: quantity must be positive", ErrInvalidLotDetails)
	}
	return d, nil
}

func applyDetails(l entities.Lot, d entities.LotDetails) entities.Lot {
	l.Client = d.Client
	l.Color = d.Color
	l.Quantity = d.Quantity
	l.Photo = d.Photo
	l.DeliveryDue = d.DeliveryDue
	l.PaymentMethod = d.PaymentMethod
	l.Note = d.Note
	l.RequiresInvoice = d.RequiresInvoice
	return l
}
