package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"paintshop_lots/internal/domain/entities"
	"paintshop_lots/internal/infrastructure/metrics"
	"paintshop_lots/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

const DefaultSettlementPromptTimeout = 8 * time.Second

//go:generate mockgen -source=settlement_prompt.go -destination=../adapter/http/handlers/mocks/settlement_prompt_mock.go -package=mocks

// ISettlementPrompt is the per-lot "was this payment received?" prompt that
// follows a payment toggle to ok.
//
//	idle -> offered -> {confirmed | cancelled | dismissed} -> idle
//
// Terminal states are reported to the caller and the lot returns to idle.
type ISettlementPrompt interface {
	Offer(ctx context.Context, opp entities.SettlementOpportunity) (entities.SettlementPrompt, error)
	Confirm(ctx context.Context, lotID string) (entities.SettlementPrompt, error)
	Cancel(ctx context.Context, lotID string) (entities.SettlementPrompt, error)
	Dismiss(ctx context.Context, lotID string) (entities.SettlementPrompt, error)
	Get(lotID string) entities.SettlementPrompt
}

// stopper is the part of *time.Timer the prompt needs.
type stopper interface {
	Stop() bool
}

type activePrompt struct {
	gen    uint64
	prompt entities.SettlementPrompt
	timer  stopper
}

type SettlementPromptUseCase struct {
	lots    ILotUseCase
	finance interfaces.IFinanceEntryFlow
	feed    interfaces.IChangeFeed
	timeout time.Duration

	now       func() time.Time
	afterFunc func(time.Duration, func()) stopper

	mu     sync.Mutex
	gen    uint64
	active map[string]*activePrompt
}

var _ ISettlementPrompt = (*SettlementPromptUseCase)(nil)

func NewSettlementPromptUseCase(lots ILotUseCase, finance interfaces.IFinanceEntryFlow, feed interfaces.IChangeFeed, timeout time.Duration) *SettlementPromptUseCase {
	if timeout <= 0 {
		timeout = DefaultSettlementPromptTimeout
	}
	return &SettlementPromptUseCase{
		lots:    lots,
		finance: finance,
		feed:    feed,
		timeout: timeout,
		now:     time.Now,
		afterFunc: func(d time.Duration, f func()) stopper {
			return time.AfterFunc(d, f)
		},
		active: make(map[string]*activePrompt),
	}
}

// Offer opens a prompt for the lot and starts its countdown. An active prompt
// for the same lot is superseded: its timer is stopped and it never fires.
func (u *SettlementPromptUseCase) Offer(ctx context.Context, opp entities.SettlementOpportunity) (entities.SettlementPrompt, error) {
	lotID := strings.TrimSpace(opp.LotID)
	if lotID == "" {
		return entities.SettlementPrompt{}, ErrInvalidLotID
	}

	now := u.now().UTC()
	p := entities.SettlementPrompt{
		LotID:     lotID,
		State:     entities.PromptOffered,
		OfferedAt: now,
		ExpiresAt: now.Add(u.timeout),
	}

	u.mu.Lock()
	if prev, ok := u.active[lotID]; ok {
		prev.timer.Stop()
		metrics.SettlementPrompts.WithLabelValues("superseded").Inc()
		log.Info().Str("lot_id", lotID).Msg("[settlement][prompt] previous prompt superseded")
	}
	u.gen++
	gen := u.gen
	entry := &activePrompt{gen: gen, prompt: p}
	entry.timer = u.afterFunc(u.timeout, func() { u.expire(lotID, gen) })
	u.active[lotID] = entry
	u.mu.Unlock()

	metrics.SettlementPrompts.WithLabelValues("offered").Inc()
	log.Info().Str("lot_id", lotID).Dur("timeout", u.timeout).Msg("[settlement][prompt] offered")
	u.publish(ctx, p)
	return p, nil
}

// Confirm hands the lot to the finance-entry flow. Payment stays ok.
func (u *SettlementPromptUseCase) Confirm(ctx context.Context, lotID string) (entities.SettlementPrompt, error) {
	p, err := u.finish(lotID, entities.PromptConfirmed)
	if err != nil {
		return entities.SettlementPrompt{}, err
	}
	u.publish(ctx, p)

	if u.finance != nil {
		l, err := u.lots.GetByID(ctx, p.LotID)
		if err != nil {
			return p, err
		}
		if err := u.finance.RequestEntry(ctx, l); err != nil {
			log.Error().Str("lot_id", p.LotID).Err(err).Msg("[settlement][prompt] finance entry request failed")
			return p, err
		}
	}
	log.Info().Str("lot_id", p.LotID).Msg("[settlement][prompt] confirmed")
	return p, nil
}

// Cancel rejects the settlement and moves the lot's payment back to pending.
func (u *SettlementPromptUseCase) Cancel(ctx context.Context, lotID string) (entities.SettlementPrompt, error) {
	p, err := u.finish(lotID, entities.PromptCancelled)
	if err != nil {
		return entities.SettlementPrompt{}, err
	}
	u.publish(ctx, p)

	if _, err := u.lots.RevertSettlement(ctx, p.LotID); err != nil {
		log.Error().Str("lot_id", p.LotID).Err(err).Msg("[settlement][prompt] payment revert failed")
		return p, err
	}
	log.Info().Str("lot_id", p.LotID).Msg("[settlement][prompt] cancelled, payment back to pending")
	return p, nil
}

// Dismiss closes the prompt without an answer. Payment stays ok and no
// financial record is created.
func (u *SettlementPromptUseCase) Dismiss(ctx context.Context, lotID string) (entities.SettlementPrompt, error) {
	p, err := u.finish(lotID, entities.PromptDismissed)
	if err != nil {
		return entities.SettlementPrompt{}, err
	}
	u.publish(ctx, p)
	log.Info().Str("lot_id", p.LotID).Msg("[settlement][prompt] dismissed")
	return p, nil
}

// Get returns the active prompt for the lot, or an idle one.
func (u *SettlementPromptUseCase) Get(lotID string) entities.SettlementPrompt {
	lotID = strings.TrimSpace(lotID)
	u.mu.Lock()
	defer u.mu.Unlock()
	if a, ok := u.active[lotID]; ok {
		return a.prompt
	}
	return entities.SettlementPrompt{LotID: lotID, State: entities.PromptIdle}
}

// Close stops every pending countdown.
func (u *SettlementPromptUseCase) Close() {
	u.mu.Lock()
	defer u.mu.Unlock()
	for id, a := range u.active {
		a.timer.Stop()
		delete(u.active, id)
	}
}

func (u *SettlementPromptUseCase) finish(lotID string, state entities.PromptState) (entities.SettlementPrompt, error) {
	lotID = strings.TrimSpace(lotID)
	if lotID == "" {
		return entities.SettlementPrompt{}, ErrInvalidLotID
	}

	u.mu.Lock()
	a, ok := u.active[lotID]
	if ok {
		delete(u.active, lotID)
		a.timer.Stop()
	}
	u.mu.Unlock()

	if !ok {
		return entities.SettlementPrompt{}, fmt.Errorf("%w: lot %s", ErrPromptNotFound, lotID)
	}
	metrics.SettlementPrompts.WithLabelValues(string(state)).Inc()
	p := a.prompt
	p.State = state
	return p, nil
}

// expire is the countdown callback. A superseded or already answered prompt
// has a different generation and is ignored.
func (u *SettlementPromptUseCase) expire(lotID string, gen uint64) {
	u.mu.Lock()
	a, ok := u.active[lotID]
	if !ok || a.gen != gen {
		u.mu.Unlock()
		return
	}
	delete(u.active, lotID)
	u.mu.Unlock()

	metrics.SettlementPrompts.WithLabelValues("expired").Inc()
	p := a.prompt
	p.State = entities.PromptDismissed
	log.Info().Str("lot_id", lotID).Msg("[settlement][prompt] countdown expired, dismissed")
	u.publish(context.Background(), p)
}

func (u *SettlementPromptUseCase) publish(ctx context.Context, p entities.SettlementPrompt) {
	if u.feed == nil {
		return
	}
	u.feed.Publish(ctx, entities.ChangeEvent{
		Topic:    entities.TopicSettlement,
		Action:   string(p.State),
		EntityID: p.LotID,
		At:       u.now().UTC(),
		Payload:  p,
	})
}
