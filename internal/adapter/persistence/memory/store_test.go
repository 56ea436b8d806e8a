package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"paintshop_lots/internal/domain/entities"
	"paintshop_lots/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scheduledLot(id string, station, order int) entities.Lot {
	return entities.Lot{ID: id, Client: "Acme", Scheduled: true, Station: &station, PaintOrder: &order, CreatedAt: time.Now()}
}

func TestLotRepository_ConditionalWrites(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Lots()

	created, err := repo.Create(ctx, entities.Lot{ID: "a", Client: "Acme"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.Version)

	_, err = repo.Create(ctx, entities.Lot{ID: "a"})
	assert.ErrorIs(t, err, interfaces.ErrConditionFailed)

	updated, err := repo.Update(ctx, entities.Lot{ID: "a", Client: "Beta"}, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated.Version)

	_, err = repo.Update(ctx, entities.Lot{ID: "a", Client: "Gamma"}, 1)
	assert.ErrorIs(t, err, interfaces.ErrConditionFailed)

	assert.ErrorIs(t, repo.Delete(ctx, "a", 1), interfaces.ErrConditionFailed)
	require.NoError(t, repo.Delete(ctx, "a", 2))

	got, err := repo.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Empty(t, got.ID)
}

func TestLotRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Lots()
	_, err := repo.Create(ctx, scheduledLot("a", 1, 0))
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "a")
	require.NoError(t, err)
	*got.Station = 9

	again, err := repo.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 1, *again.Station)
}

func TestLotRepository_ApplyPaintOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Lots()
	for i, id := range []string{"a", "b"} {
		_, err := repo.Create(ctx, scheduledLot(id, 1, i))
		require.NoError(t, err)
	}

	t.Run("one stale row rejects the batch", func(t *testing.T) {
		err := repo.ApplyPaintOrder(ctx, 1, 0, []entities.PaintOrderUpdate{
			{LotID: "a", PaintOrder: 1, ExpectedVersion: 1},
			{LotID: "b", PaintOrder: 0, ExpectedVersion: 7},
		})
		assert.ErrorIs(t, err, interfaces.ErrConditionFailed)
		a, _ := repo.GetByID(ctx, "a")
		assert.Equal(t, 0, *a.PaintOrder)
		assert.Equal(t, int64(1), a.Version)
	})

	t.Run("wrong station rejects the batch", func(t *testing.T) {
		err := repo.ApplyPaintOrder(ctx, 2, 0, []entities.PaintOrderUpdate{{LotID: "a", PaintOrder: 0, ExpectedVersion: 1}})
		assert.ErrorIs(t, err, interfaces.ErrConditionFailed)
	})

	t.Run("rows must cover the whole station", func(t *testing.T) {
		err := repo.ApplyPaintOrder(ctx, 1, 0, []entities.PaintOrderUpdate{{LotID: "a", PaintOrder: 0, ExpectedVersion: 1}})
		assert.ErrorIs(t, err, interfaces.ErrConditionFailed)
	})

	t.Run("stale station version rejects the batch", func(t *testing.T) {
		err := repo.ApplyPaintOrder(ctx, 1, 3, []entities.PaintOrderUpdate{
			{LotID: "a", PaintOrder: 1, ExpectedVersion: 1},
			{LotID: "b", PaintOrder: 0, ExpectedVersion: 1},
		})
		assert.ErrorIs(t, err, interfaces.ErrConditionFailed)
	})

	t.Run("applies all rows", func(t *testing.T) {
		err := repo.ApplyPaintOrder(ctx, 1, 0, []entities.PaintOrderUpdate{
			{LotID: "a", PaintOrder: 1, ExpectedVersion: 1},
			{LotID: "b", PaintOrder: 0, ExpectedVersion: 1},
		})
		require.NoError(t, err)
		v, _ := repo.StationVersion(ctx, 1)
		assert.Equal(t, int64(1), v)
		q, err := repo.ListByStation(ctx, 1)
		require.NoError(t, err)
		require.Len(t, q, 2)
		for _, l := range q {
			assert.Equal(t, int64(2), l.Version)
		}
	})
}

func TestLotRepository_StationVersion(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Lots()
	a, err := repo.Create(ctx, entities.Lot{ID: "a", Client: "Acme"})
	require.NoError(t, err)
	b, err := repo.Create(ctx, entities.Lot{ID: "b", Client: "Acme"})
	require.NoError(t, err)

	v, err := repo.StationVersion(ctx, 2)
	require.NoError(t, err)
	assert.Zero(t, v)

	placed, err := repo.PlaceAtStation(ctx, a.AssignedTo(2, 0), a.Version, 0)
	require.NoError(t, err)
	assert.Equal(t, a.Version+1, placed.Version)

	_, err = repo.PlaceAtStation(ctx, b.AssignedTo(2, 0), b.Version, 0)
	assert.ErrorIs(t, err, interfaces.ErrConditionFailed, "station moved on after the first placement")

	t.Run("plain update joining a station bumps it", func(t *testing.T) {
		_, err := repo.Update(ctx, b.AssignedTo(2, 1), b.Version)
		require.NoError(t, err)
		v, _ := repo.StationVersion(ctx, 2)
		assert.Equal(t, int64(2), v)
	})

	t.Run("leaving a station does not bump it", func(t *testing.T) {
		cur, _ := repo.GetByID(ctx, "a")
		_, err := repo.Update(ctx, cur.Unscheduled(), cur.Version)
		require.NoError(t, err)
		v, _ := repo.StationVersion(ctx, 2)
		assert.Equal(t, int64(2), v)
	})
}

func TestLotRepository_MoveToHistory(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	lots, history := store.Lots(), store.History()
	l, err := lots.Create(ctx, entities.Lot{ID: "a", Client: "Acme", Painted: true})
	require.NoError(t, err)

	assert.ErrorIs(t, lots.MoveToHistory(ctx, l.ToHistory(time.Now()), 9), interfaces.ErrConditionFailed)
	require.NoError(t, lots.MoveToHistory(ctx, l.ToHistory(time.Now()), l.Version))

	active, _ := lots.GetByID(ctx, "a")
	assert.Empty(t, active.ID)
	h, _ := history.GetByID(ctx, "a")
	assert.Equal(t, "a", h.ID)
}

func TestObligationRepository_Settle(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	obligations := store.Obligations()
	converted := store.Records(entities.SourceConverted)

	require.NoError(t, obligations.Create(ctx, entities.PendingObligation{ID: "o1", Client: "Acme", Amount: decimal.NewFromInt(5), Status: entities.ObligationPending}))

	rec := entities.FinancialRecord{ID: "r1", Client: "Acme", Amount: decimal.NewFromInt(5), Date: time.Now(), ObligationID: "o1"}
	require.NoError(t, obligations.SettleObligation(ctx, "o1", rec))

	err := obligations.SettleObligation(ctx, "o1", entities.FinancialRecord{ID: "r2", Date: time.Now()})
	assert.True(t, errors.Is(err, interfaces.ErrConditionFailed))

	recs, err := converted.List(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, entities.SourceConverted, recs[0].Source)

	o, _ := obligations.GetByID(ctx, "o1")
	assert.Equal(t, entities.ObligationSettled, o.Status)
	_, err = obligations.UpdatePending(ctx, o)
	assert.ErrorIs(t, err, interfaces.ErrConditionFailed)

	require.NoError(t, obligations.RevertSettled(ctx, "o1"))
	o, _ = obligations.GetByID(ctx, "o1")
	assert.Equal(t, entities.ObligationPending, o.Status)
	assert.Nil(t, o.SettledAt)
}

func TestObligationRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Obligations()
	due := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, entities.PendingObligation{ID: "o1", Client: "Acme", DueDate: &due, Status: entities.ObligationPending}))
	due = due.AddDate(1, 0, 0)

	got, err := repo.GetByID(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, 2024, got.DueDate.Year())
	*got.DueDate = got.DueDate.AddDate(5, 0, 0)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 2024, list[0].DueDate.Year())

	require.NoError(t, repo.MarkSettled(ctx, "o1", due))
	settled, _ := repo.GetByID(ctx, "o1")
	*settled.SettledAt = time.Time{}
	again, _ := repo.GetByID(ctx, "o1")
	assert.True(t, due.Equal(*again.SettledAt))
}

func TestRecordRepository_SourcesAreDisjoint(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	direct := store.Records(entities.SourceDirect)
	converted := store.Records(entities.SourceConverted)

	require.NoError(t, direct.Append(ctx, entities.FinancialRecord{ID: "x", Source: entities.SourceConverted}))
	assert.ErrorIs(t, direct.Append(ctx, entities.FinancialRecord{ID: "x"}), interfaces.ErrConditionFailed)
	require.NoError(t, converted.Append(ctx, entities.FinancialRecord{ID: "x"}))

	d, _ := direct.GetByID(ctx, "x")
	assert.Equal(t, entities.SourceDirect, d.Source)
	assert.Equal(t, entities.SourceDirect, direct.Source())
}
