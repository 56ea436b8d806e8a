package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"paintshop_lots/internal/domain/entities"
	"paintshop_lots/internal/usecase/interfaces"
	mock_interfaces "paintshop_lots/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type fakeTimer struct {
	d       time.Duration
	fire    func()
	stopped bool
}

func (f *fakeTimer) Stop() bool {
	was := !f.stopped
	f.stopped = true
	return was
}

type fakeClock struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

func (c *fakeClock) afterFunc(d time.Duration, f func()) stopper {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{d: d, fire: f}
	c.timers = append(c.timers, t)
	return t
}

func (c *fakeClock) last() *fakeTimer {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timers[len(c.timers)-1]
}

func newPromptFixture(t *testing.T, finance *mock_interfaces.MockIFinanceEntryFlow) (*SettlementPromptUseCase, *LotUseCase, *fakeClock) {
	t.Helper()
	lots, _, _ := newMemoryLots(t)
	var flow interfaces.IFinanceEntryFlow
	if finance != nil {
		flow = finance
	}
	p := NewSettlementPromptUseCase(lots, flow, nil, 0)
	clock := &fakeClock{}
	p.afterFunc = clock.afterFunc
	t.Cleanup(p.Close)
	return p, lots, clock
}

// paidLot drives a lot to payment=ok and opens the prompt for it the same way
// the toggle handler does.
func paidLot(t *testing.T, lots *LotUseCase, p *SettlementPromptUseCase) entities.Lot {
	t.Helper()
	ctx := context.Background()
	l := mustCreateLot(t, lots, "Acme")
	var res ToggleResult
	var err error
	for i := 0; i < 2; i++ {
		res, err = lots.ToggleStatus(ctx, l.ID, entities.FieldPayment, entities.RoleAdmin)
		if err != nil {
			t.Fatalf("toggle: %v", err)
		}
	}
	if res.Opportunity == nil {
		t.Fatalf("expected settlement opportunity")
	}
	if _, err := p.Offer(ctx, *res.Opportunity); err != nil {
		t.Fatalf("offer: %v", err)
	}
	return res.Lot
}

func TestSettlementPrompt_DefaultTimeout(t *testing.T) {
	p, _, clock := newPromptFixture(t, nil)
	got, err := p.Offer(context.Background(), entities.SettlementOpportunity{LotID: "lot-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clock.last().d != DefaultSettlementPromptTimeout {
		t.Fatalf("expected %s countdown, got %s", DefaultSettlementPromptTimeout, clock.last().d)
	}
	if got.State != entities.PromptOffered || !got.ExpiresAt.Equal(got.OfferedAt.Add(DefaultSettlementPromptTimeout)) {
		t.Fatalf("unexpected prompt: %+v", got)
	}
	if p.Get("lot-1").State != entities.PromptOffered {
		t.Fatalf("expected active prompt")
	}
}

func TestSettlementPrompt_Cancel(t *testing.T) {
	p, lots, _ := newPromptFixture(t, nil)
	l := paidLot(t, lots, p)

	got, err := p.Cancel(context.Background(), l.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.State != entities.PromptCancelled {
		t.Fatalf("expected cancelled, got %s", got.State)
	}
	after, _ := lots.GetByID(context.Background(), l.ID)
	if after.Payment != entities.StatusPending {
		t.Fatalf("expected payment pending after cancel, got %s", after.Payment)
	}
	if p.Get(l.ID).State != entities.PromptIdle {
		t.Fatalf("expected prompt back to idle")
	}
}

func TestSettlementPrompt_Confirm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	finance := mock_interfaces.NewMockIFinanceEntryFlow(ctrl)
	p, lots, _ := newPromptFixture(t, finance)
	l := paidLot(t, lots, p)

	finance.EXPECT().RequestEntry(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, got entities.Lot) error {
		if got.ID != l.ID {
			t.Fatalf("finance flow got lot %s", got.ID)
		}
		return nil
	})

	got, err := p.Confirm(context.Background(), l.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.State != entities.PromptConfirmed {
		t.Fatalf("expected confirmed, got %s", got.State)
	}
	after, _ := lots.GetByID(context.Background(), l.ID)
	if after.Payment != entities.StatusOK {
		t.Fatalf("confirm must keep payment ok, got %s", after.Payment)
	}
}

func TestSettlementPrompt_ConfirmFinanceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	finance := mock_interfaces.NewMockIFinanceEntryFlow(ctrl)
	p, lots, _ := newPromptFixture(t, finance)
	l := paidLot(t, lots, p)

	finance.EXPECT().RequestEntry(gomock.Any(), gomock.Any()).Return(errors.New("queue full"))

	got, err := p.Confirm(context.Background(), l.ID)
	if err == nil || err.Error() != "queue full" {
		t.Fatalf("expected queue full error, got %v", err)
	}
	if got.State != entities.PromptConfirmed {
		t.Fatalf("prompt still ends confirmed, got %s", got.State)
	}
}

func TestSettlementPrompt_DismissAndExpire(t *testing.T) {
	ctx := context.Background()

	t.Run("dismiss keeps payment ok", func(t *testing.T) {
		p, lots, _ := newPromptFixture(t, nil)
		l := paidLot(t, lots, p)
		got, err := p.Dismiss(ctx, l.ID)
		if err != nil || got.State != entities.PromptDismissed {
			t.Fatalf("unexpected dismiss result: %+v %v", got, err)
		}
		after, _ := lots.GetByID(ctx, l.ID)
		if after.Payment != entities.StatusOK {
			t.Fatalf("expected payment ok, got %s", after.Payment)
		}
	})

	t.Run("expiry dismisses", func(t *testing.T) {
		p, lots, clock := newPromptFixture(t, nil)
		l := paidLot(t, lots, p)
		clock.last().fire()
		if p.Get(l.ID).State != entities.PromptIdle {
			t.Fatalf("expected idle after expiry")
		}
		if _, err := p.Confirm(ctx, l.ID); !errors.Is(err, ErrPromptNotFound) {
			t.Fatalf("expected ErrPromptNotFound after expiry, got %v", err)
		}
		after, _ := lots.GetByID(ctx, l.ID)
		if after.Payment != entities.StatusOK {
			t.Fatalf("expiry must keep payment ok, got %s", after.Payment)
		}
	})

	t.Run("answer after stop ignores late timer", func(t *testing.T) {
		p, lots, clock := newPromptFixture(t, nil)
		l := paidLot(t, lots, p)
		timer := clock.last()
		if _, err := p.Dismiss(ctx, l.ID); err != nil {
			t.Fatalf("dismiss: %v", err)
		}
		if !timer.stopped {
			t.Fatalf("expected countdown stopped")
		}
		if _, err := p.Offer(ctx, entities.SettlementOpportunity{LotID: l.ID}); err != nil {
			t.Fatalf("offer: %v", err)
		}
		timer.fire()
		if p.Get(l.ID).State != entities.PromptOffered {
			t.Fatalf("stale timer must not close the new prompt")
		}
	})
}

func TestSettlementPrompt_Supersede(t *testing.T) {
	ctx := context.Background()
	p, _, clock := newPromptFixture(t, nil)

	if _, err := p.Offer(ctx, entities.SettlementOpportunity{LotID: "lot-1"}); err != nil {
		t.Fatalf("offer: %v", err)
	}
	first := clock.last()
	if _, err := p.Offer(ctx, entities.SettlementOpportunity{LotID: "lot-1"}); err != nil {
		t.Fatalf("offer: %v", err)
	}
	if !first.stopped {
		t.Fatalf("expected superseded timer to be stopped")
	}

	first.fire()
	if p.Get("lot-1").State != entities.PromptOffered {
		t.Fatalf("superseded countdown must not dismiss the current prompt")
	}

	clock.last().fire()
	if p.Get("lot-1").State != entities.PromptIdle {
		t.Fatalf("current countdown should dismiss")
	}
}

func TestSettlementPrompt_Errors(t *testing.T) {
	ctx := context.Background()
	p, _, _ := newPromptFixture(t, nil)

	if _, err := p.Offer(ctx, entities.SettlementOpportunity{LotID: " "}); !errors.Is(err, ErrInvalidLotID) {
		t.Fatalf("expected ErrInvalidLotID, got %v", err)
	}
	if _, err := p.Cancel(ctx, "lot-x"); !errors.Is(err, ErrPromptNotFound) {
		t.Fatalf("expected ErrPromptNotFound, got %v", err)
	}
	if _, err := p.Dismiss(ctx, ""); !errors.Is(err, ErrInvalidLotID) {
		t.Fatalf("expected ErrInvalidLotID, got %v", err)
	}
}

func TestSettlementPrompt_Close(t *testing.T) {
	p, _, clock := newPromptFixture(t, nil)
	for _, id := range []string{"a", "b"} {
		if _, err := p.Offer(context.Background(), entities.SettlementOpportunity{LotID: id}); err != nil {
			t.Fatalf("offer: %v", err)
		}
	}
	p.Close()
	for _, tm := range clock.timers {
		if !tm.stopped {
			t.Fatalf("expected every countdown stopped")
		}
	}
	if p.Get("a").State != entities.PromptIdle {
		t.Fatalf("expected no active prompt after close")
	}
}
