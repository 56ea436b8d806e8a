package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"paintshop_lots/internal/adapter/persistence/memory"
	"paintshop_lots/internal/domain/entities"
)

func seedHistory(t *testing.T, store *memory.Store, id, client, color string, at time.Time) {
	t.Helper()
	h := entities.HistoryEntry{
		Lot:         entities.Lot{ID: id, Client: client, Color: color, Payment: entities.StatusOK, Measurement: entities.StatusOK, Invoice: entities.StatusOK, Painted: true},
		DeliveredAt: at,
	}
	if err := store.History().Create(context.Background(), h); err != nil {
		t.Fatalf("seed history: %v", err)
	}
}

func TestHistoryUseCase_ListAndByMonth(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	uc := NewHistoryUseCase(store.Lots(), store.History(), nil)

	seedHistory(t, store, "h1", "Acme", "Blue", time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC))
	seedHistory(t, store, "h2", "Beta", "Red", time.Date(2024, 6, 20, 10, 0, 0, 0, time.UTC))
	seedHistory(t, store, "h3", "acme tools", "Green", time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))

	all, err := uc.List(ctx, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 || all[0].ID != "h2" || all[2].ID != "h1" {
		t.Fatalf("expected newest delivery first, got %+v", all)
	}

	t.Run("search matches client or color", func(t *testing.T) {
		got, err := uc.List(ctx, "ACME")
		if err != nil || len(got) != 2 {
			t.Fatalf("expected 2 acme entries, got %d %v", len(got), err)
		}
		got, err = uc.List(ctx, "red")
		if err != nil || len(got) != 1 || got[0].ID != "h2" {
			t.Fatalf("expected red entry, got %+v %v", got, err)
		}
	})

	t.Run("grouped by month", func(t *testing.T) {
		months, err := uc.ByMonth(ctx, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(months) != 2 || months[0].Month != "2024-06" || months[1].Month != "2024-05" {
			t.Fatalf("unexpected months: %+v", months)
		}
		if len(months[0].Entries) != 2 {
			t.Fatalf("expected 2 june entries, got %d", len(months[0].Entries))
		}
	})

	t.Run("delete needs privilege", func(t *testing.T) {
		if err := uc.Delete(ctx, "h1", entities.RoleOperator); !errors.Is(err, ErrPermissionDenied) {
			t.Fatalf("expected ErrPermissionDenied, got %v", err)
		}
		if err := uc.Delete(ctx, "h1", entities.RoleAdmin); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := uc.Delete(ctx, "h1", entities.RoleAdmin); !errors.Is(err, ErrHistoryNotFound) {
			t.Fatalf("expected ErrHistoryNotFound, got %v", err)
		}
	})
}

func TestHistoryUseCase_PartialDelivery(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	lots := NewLotUseCase(store.Lots(), store.History(), nil)
	uc := NewHistoryUseCase(store.Lots(), store.History(), nil)

	stuck := mustCreateLot(t, lots, "Acme")
	other := mustCreateLot(t, lots, "Beta")
	seedHistory(t, store, stuck.ID, "Acme", "RAL 9005", time.Now())

	found, err := uc.FindPartialDeliveries(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(found) != 1 || found[0].ID != stuck.ID {
		t.Fatalf("expected the stuck lot, got %+v", found)
	}

	if _, err := lots.Deliver(ctx, stuck.ID); !errors.Is(err, ErrNotReady) && !errors.Is(err, ErrPartialMoveFailure) {
		t.Fatalf("unexpected deliver error: %v", err)
	}

	entry, err := uc.ResolvePartialDelivery(ctx, stuck.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.ID != stuck.ID {
		t.Fatalf("expected history entry for %s, got %s", stuck.ID, entry.ID)
	}
	if _, err := lots.GetByID(ctx, stuck.ID); !errors.Is(err, ErrLotNotFound) {
		t.Fatalf("expected active lot removed, got %v", err)
	}

	if _, err := uc.ResolvePartialDelivery(ctx, other.ID); !errors.Is(err, ErrHistoryNotFound) {
		t.Fatalf("expected ErrHistoryNotFound for a lot without history, got %v", err)
	}

	found, err = uc.FindPartialDeliveries(ctx)
	if err != nil || len(found) != 0 {
		t.Fatalf("expected no partial deliveries left, got %+v %v", found, err)
	}
}
