package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"paintshop_lots/internal/adapter/persistence/memory"
	"paintshop_lots/internal/domain/entities"
	"paintshop_lots/internal/usecase/interfaces"
	mock_interfaces "paintshop_lots/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newMemoryLots(t *testing.T) (*LotUseCase, *SchedulingUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	lots := NewLotUseCase(store.Lots(), store.History(), nil)
	sched := NewSchedulingUseCase(store.Lots(), nil, 4)
	return lots, sched, store
}

func mustCreateLot(t *testing.T, uc *LotUseCase, client string) entities.Lot {
	t.Helper()
	l, err := uc.Create(context.Background(), entities.LotDetails{Client: client, Color: "RAL 9005", Quantity: 10})
	if err != nil {
		t.Fatalf("create lot: %v", err)
	}
	return l
}

func toggleTo(t *testing.T, uc *LotUseCase, id string, field entities.StatusField, want entities.TriState) {
	t.Helper()
	for i := 0; i < 3; i++ {
		res, err := uc.ToggleStatus(context.Background(), id, field, entities.RoleAdmin)
		if err != nil {
			t.Fatalf("toggle %s: %v", field, err)
		}
		if res.Lot.Status(field) == want {
			return
		}
	}
	t.Fatalf("%s never reached %s", field, want)
}

func TestLotUseCase_Create(t *testing.T) {
	uc, _, _ := newMemoryLots(t)

	t.Run("new lot starts unanalysed and unscheduled", func(t *testing.T) {
		l := mustCreateLot(t, uc, "  Acme  ")
		if l.Client != "Acme" {
			t.Fatalf("expected trimmed client, got %q", l.Client)
		}
		if l.Payment != entities.StatusUnanalysed || l.Measurement != entities.StatusUnanalysed || l.Invoice != entities.StatusUnanalysed {
			t.Fatalf("unexpected statuses: %+v", l)
		}
		if l.Scheduled || l.Painted || l.Promised || l.Station != nil || l.PaintOrder != nil {
			t.Fatalf("expected a received lot, got %+v", l)
		}
		if l.Stage() != entities.StageReceived {
			t.Fatalf("expected received stage, got %s", l.Stage())
		}
	})

	t.Run("client is required", func(t *testing.T) {
		_, err := uc.Create(context.Background(), entities.LotDetails{Client: " "})
		if !errors.Is(err, ErrInvalidLotDetails) {
			t.Fatalf("expected ErrInvalidLotDetails, got %v", err)
		}
	})
}

func TestLotUseCase_ToggleStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("cycles unanalysed pending ok", func(t *testing.T) {
		uc, _, _ := newMemoryLots(t)
		l := mustCreateLot(t, uc, "Acme")
		want := []entities.TriState{entities.StatusPending, entities.StatusOK, entities.StatusUnanalysed}
		for _, w := range want {
			res, err := uc.ToggleStatus(ctx, l.ID, entities.FieldMeasurement, entities.RoleAdmin)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Lot.Measurement != w {
				t.Fatalf("expected %s, got %s", w, res.Lot.Measurement)
			}
			if res.Opportunity != nil {
				t.Fatalf("measurement must not raise a settlement opportunity")
			}
		}
	})

	t.Run("payment to ok raises exactly one opportunity", func(t *testing.T) {
		uc, _, _ := newMemoryLots(t)
		l := mustCreateLot(t, uc, "Acme")

		first, err := uc.ToggleStatus(ctx, l.ID, entities.FieldPayment, entities.RoleAdmin)
		if err != nil || first.Opportunity != nil {
			t.Fatalf("pending must not raise an opportunity: %+v %v", first, err)
		}
		second, err := uc.ToggleStatus(ctx, l.ID, entities.FieldPayment, entities.RoleAdmin)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if second.Opportunity == nil || second.Opportunity.LotID != l.ID || second.Opportunity.Client != "Acme" {
			t.Fatalf("expected opportunity for lot, got %+v", second.Opportunity)
		}
	})

	t.Run("operator is refused on every field", func(t *testing.T) {
		uc, _, _ := newMemoryLots(t)
		l := mustCreateLot(t, uc, "Acme")
		for _, f := range []entities.StatusField{entities.FieldPayment, entities.FieldMeasurement, entities.FieldInvoice} {
			_, err := uc.ToggleStatus(ctx, l.ID, f, entities.RoleOperator)
			if !errors.Is(err, ErrPermissionDenied) {
				t.Fatalf("%s: expected ErrPermissionDenied, got %v", f, err)
			}
		}
		got, _ := uc.GetByID(ctx, l.ID)
		if got.Version != l.Version {
			t.Fatalf("refused toggle must not write")
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		uc, _, _ := newMemoryLots(t)
		l := mustCreateLot(t, uc, "Acme")
		_, err := uc.ToggleStatus(ctx, l.ID, entities.StatusField("colour"), entities.RoleAdmin)
		if !errors.Is(err, ErrInvalidStatusField) {
			t.Fatalf("expected ErrInvalidStatusField, got %v", err)
		}
	})

	t.Run("missing lot", func(t *testing.T) {
		uc, _, _ := newMemoryLots(t)
		_, err := uc.ToggleStatus(ctx, "nope", entities.FieldPayment, entities.RoleAdmin)
		if !errors.Is(err, ErrLotNotFound) {
			t.Fatalf("expected ErrLotNotFound, got %v", err)
		}
	})
}

func TestLotUseCase_RevertAndMarkSettled(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newMemoryLots(t)
	l := mustCreateLot(t, uc, "Acme")
	toggleTo(t, uc, l.ID, entities.FieldPayment, entities.StatusOK)

	reverted, err := uc.RevertSettlement(ctx, l.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reverted.Payment != entities.StatusPending {
		t.Fatalf("expected pending after revert, got %s", reverted.Payment)
	}

	again, err := uc.RevertSettlement(ctx, l.ID)
	if err != nil || again.Version != reverted.Version {
		t.Fatalf("revert of a non-ok payment must be a no-op, got %+v %v", again, err)
	}

	settled, err := uc.MarkPaymentSettled(ctx, l.ID)
	if err != nil || settled.Payment != entities.StatusOK {
		t.Fatalf("expected ok, got %+v %v", settled, err)
	}
}

func TestLotUseCase_PaintingCascade(t *testing.T) {
	ctx := context.Background()
	uc, sched, _ := newMemoryLots(t)
	l := mustCreateLot(t, uc, "Acme")

	scheduled, err := sched.AssignStation(ctx, l.ID, 2)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if !scheduled.Scheduled || scheduled.Station == nil || *scheduled.Station != 2 || scheduled.PaintOrder == nil {
		t.Fatalf("expected lot at station 2, got %+v", scheduled)
	}
	if _, err := uc.SetPromised(ctx, l.ID, true); err != nil {
		t.Fatalf("promise: %v", err)
	}

	painted, err := uc.SetPainted(ctx, l.ID, true)
	if err != nil {
		t.Fatalf("paint: %v", err)
	}
	if !painted.Painted || painted.Scheduled || painted.Promised || painted.Station != nil || painted.PaintOrder != nil {
		t.Fatalf("painting must clear scheduling fields, got %+v", painted)
	}
	if painted.PaintedAt == nil {
		t.Fatalf("expected painted_at to be set")
	}
	if painted.Stage() != entities.StagePainted {
		t.Fatalf("expected painted stage, got %s", painted.Stage())
	}

	unpainted, err := uc.SetPainted(ctx, l.ID, false)
	if err != nil {
		t.Fatalf("unpaint: %v", err)
	}
	if unpainted.Painted || unpainted.Stage() != entities.StageReceived {
		t.Fatalf("expected lot back in received, got %+v", unpainted)
	}
}

func TestLotUseCase_ScanAndPromise(t *testing.T) {
	ctx := context.Background()
	uc, sched, _ := newMemoryLots(t)
	l := mustCreateLot(t, uc, "Acme")

	t.Run("promise needs scheduling", func(t *testing.T) {
		_, err := uc.SetPromised(ctx, l.ID, true)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("unschedule clears promise", func(t *testing.T) {
		if _, err := sched.AssignStation(ctx, l.ID, 1); err != nil {
			t.Fatalf("assign: %v", err)
		}
		if _, err := uc.SetPromised(ctx, l.ID, true); err != nil {
			t.Fatalf("promise: %v", err)
		}
		got, err := uc.SetScheduled(ctx, l.ID, false)
		if err != nil {
			t.Fatalf("unschedule: %v", err)
		}
		if got.Scheduled || got.Promised || got.Station != nil {
			t.Fatalf("expected unscheduled lot, got %+v", got)
		}
	})

	t.Run("scheduling without station is refused", func(t *testing.T) {
		_, err := uc.SetScheduled(ctx, l.ID, true)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("scan is idempotent", func(t *testing.T) {
		first, changed, err := uc.MarkPaintedByScan(ctx, l.ID)
		if err != nil || !changed || !first.Painted {
			t.Fatalf("first scan: %+v changed=%t err=%v", first, changed, err)
		}
		second, changed, err := uc.MarkPaintedByScan(ctx, l.ID)
		if err != nil || changed || second.Version != first.Version {
			t.Fatalf("second scan must not write: changed=%t err=%v", changed, err)
		}
	})
}

func TestLotUseCase_Deliver(t *testing.T) {
	ctx := context.Background()

	t.Run("ready lot moves to history", func(t *testing.T) {
		uc, _, store := newMemoryLots(t)
		l := mustCreateLot(t, uc, "Acme")
		toggleTo(t, uc, l.ID, entities.FieldPayment, entities.StatusOK)
		toggleTo(t, uc, l.ID, entities.FieldMeasurement, entities.StatusOK)
		if _, err := uc.SetPainted(ctx, l.ID, true); err != nil {
			t.Fatalf("paint: %v", err)
		}

		ok, err := uc.CanDeliver(ctx, l.ID)
		if err != nil || !ok {
			t.Fatalf("expected deliverable lot, got %t %v", ok, err)
		}

		entry, err := uc.Deliver(ctx, l.ID)
		if err != nil {
			t.Fatalf("deliver: %v", err)
		}
		if entry.ID != l.ID || entry.DeliveredAt.IsZero() {
			t.Fatalf("unexpected history entry: %+v", entry)
		}
		if _, err := uc.GetByID(ctx, l.ID); !errors.Is(err, ErrLotNotFound) {
			t.Fatalf("expected lot removed from active set, got %v", err)
		}
		h, _ := store.History().GetByID(ctx, l.ID)
		if h.ID != l.ID {
			t.Fatalf("expected history entry in store")
		}
	})

	t.Run("invoice does not gate delivery", func(t *testing.T) {
		uc, _, _ := newMemoryLots(t)
		l := mustCreateLot(t, uc, "Acme")
		toggleTo(t, uc, l.ID, entities.FieldPayment, entities.StatusOK)
		toggleTo(t, uc, l.ID, entities.FieldMeasurement, entities.StatusOK)
		toggleTo(t, uc, l.ID, entities.FieldInvoice, entities.StatusPending)
		if _, err := uc.SetPainted(ctx, l.ID, true); err != nil {
			t.Fatalf("paint: %v", err)
		}
		if _, err := uc.Deliver(ctx, l.ID); err != nil {
			t.Fatalf("expected delivery with pending invoice, got %v", err)
		}
	})

	t.Run("not ready", func(t *testing.T) {
		uc, _, _ := newMemoryLots(t)
		l := mustCreateLot(t, uc, "Acme")
		toggleTo(t, uc, l.ID, entities.FieldPayment, entities.StatusOK)
		_, err := uc.Deliver(ctx, l.ID)
		if !errors.Is(err, ErrNotReady) {
			t.Fatalf("expected ErrNotReady, got %v", err)
		}
		if _, err := uc.GetByID(ctx, l.ID); err != nil {
			t.Fatalf("lot must stay active: %v", err)
		}
	})
}

func readyLot() entities.Lot {
	return entities.Lot{
		ID:          "lot-1",
		Client:      "Acme",
		Payment:     entities.StatusOK,
		Measurement: entities.StatusOK,
		Invoice:     entities.StatusUnanalysed,
		Painted:     true,
		Version:     3,
	}
}

func TestLotUseCase_Deliver_TwoStep(t *testing.T) {
	ctx := context.Background()

	t.Run("delete failure after history write is a partial move", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lots := mock_interfaces.NewMockILotRepository(ctrl)
		history := mock_interfaces.NewMockIHistoryRepository(ctrl)
		uc := NewLotUseCase(lots, history, nil)

		lots.EXPECT().GetByID(gomock.Any(), "lot-1").Return(readyLot(), nil)
		history.EXPECT().GetByID(gomock.Any(), "lot-1").Return(entities.HistoryEntry{}, nil)
		history.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		lots.EXPECT().Delete(gomock.Any(), "lot-1", int64(3)).Return(errors.New("dynamo down"))

		_, err := uc.Deliver(ctx, "lot-1")
		var pm *PartialMoveError
		if !errors.As(err, &pm) || pm.LotID != "lot-1" {
			t.Fatalf("expected PartialMoveError, got %v", err)
		}
		if !errors.Is(err, ErrPartialMoveFailure) {
			t.Fatalf("expected ErrPartialMoveFailure in chain, got %v", err)
		}
	})

	t.Run("history write failure leaves lot untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lots := mock_interfaces.NewMockILotRepository(ctrl)
		history := mock_interfaces.NewMockIHistoryRepository(ctrl)
		uc := NewLotUseCase(lots, history, nil)

		lots.EXPECT().GetByID(gomock.Any(), "lot-1").Return(readyLot(), nil)
		history.EXPECT().GetByID(gomock.Any(), "lot-1").Return(entities.HistoryEntry{}, nil)
		history.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db"))

		_, err := uc.Deliver(ctx, "lot-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("existing history twin is reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lots := mock_interfaces.NewMockILotRepository(ctrl)
		history := mock_interfaces.NewMockIHistoryRepository(ctrl)
		uc := NewLotUseCase(lots, history, nil)

		lots.EXPECT().GetByID(gomock.Any(), "lot-1").Return(readyLot(), nil)
		history.EXPECT().GetByID(gomock.Any(), "lot-1").Return(entities.HistoryEntry{Lot: readyLot()}, nil)

		_, err := uc.Deliver(ctx, "lot-1")
		if !errors.Is(err, ErrPartialMoveFailure) {
			t.Fatalf("expected ErrPartialMoveFailure, got %v", err)
		}
	})
}

func TestLotUseCase_StaleWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	lots := mock_interfaces.NewMockILotRepository(ctrl)
	uc := NewLotUseCase(lots, nil, nil)

	lots.EXPECT().GetByID(gomock.Any(), "lot-1").Return(entities.Lot{ID: "lot-1", Client: "Acme", Payment: entities.StatusUnanalysed, Measurement: entities.StatusUnanalysed, Invoice: entities.StatusUnanalysed, Version: 4}, nil)
	lots.EXPECT().Update(gomock.Any(), gomock.Any(), int64(4)).Return(entities.Lot{}, interfaces.ErrConditionFailed)

	_, err := uc.ToggleStatus(context.Background(), "lot-1", entities.FieldPayment, entities.RoleAdmin)
	if !errors.Is(err, ErrStaleState) {
		t.Fatalf("expected ErrStaleState, got %v", err)
	}
}

func TestLotUseCase_Delete(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newMemoryLots(t)
	l := mustCreateLot(t, uc, "Acme")

	if err := uc.Delete(ctx, l.ID, entities.RoleOperator); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
	if err := uc.Delete(ctx, l.ID, entities.RoleAdmin); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.GetByID(ctx, l.ID); !errors.Is(err, ErrLotNotFound) {
		t.Fatalf("expected ErrLotNotFound, got %v", err)
	}
}

func TestLotUseCase_PublishesChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := memory.NewStore()
	feed := mock_interfaces.NewMockIChangeFeed(ctrl)
	uc := NewLotUseCase(store.Lots(), store.History(), feed)
	uc.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }

	feed.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ev entities.ChangeEvent) {
		if ev.Topic != entities.TopicLots || ev.Action != "created" {
			t.Fatalf("unexpected event: %+v", ev)
		}
	})

	if _, err := uc.Create(context.Background(), entities.LotDetails{Client: "Acme", Quantity: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
