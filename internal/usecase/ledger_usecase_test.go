package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"paintshop_lots/internal/adapter/persistence/memory"
	"paintshop_lots/internal/domain/entities"
	"paintshop_lots/internal/usecase/interfaces"
	mock_interfaces "paintshop_lots/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

var ledgerNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func newLedgerFixture(t *testing.T, verifier interfaces.IPaymentVerifier) (*LedgerUseCase, *LotUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	lots := NewLotUseCase(store.Lots(), store.History(), nil)
	uc := NewLedgerUseCase(store.Records(entities.SourceDirect), store.Records(entities.SourceConverted), lots, verifier, nil)
	uc.now = func() time.Time { return ledgerNow }
	return uc, lots, store
}

func appendRecord(t *testing.T, store *memory.Store, src entities.RecordSource, id, client, amount string, daysAgo int) {
	t.Helper()
	err := store.Records(src).Append(context.Background(), entities.FinancialRecord{
		ID:     id,
		Source: src,
		Client: client,
		Amount: decimal.RequireFromString(amount),
		Date:   ledgerNow.AddDate(0, 0, -daysAgo),
	})
	require.NoError(t, err)
}

func TestLedgerUseCase_Unify(t *testing.T) {
	uc, _, store := newLedgerFixture(t, nil)
	appendRecord(t, store, entities.SourceDirect, "d1", "Acme", "10.00", 3)
	appendRecord(t, store, entities.SourceConverted, "c1", "Beta", "20.00", 1)
	appendRecord(t, store, entities.SourceDirect, "d2", "Acme", "5.00", 1)

	all, err := uc.Unify(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "c1", all[0].ID)
	assert.Equal(t, entities.SourceConverted, all[0].Source)
	assert.Equal(t, "d2", all[1].ID)
	assert.Equal(t, "d1", all[2].ID)

	direct, err := uc.List(context.Background(), entities.SourceDirect)
	require.NoError(t, err)
	assert.Len(t, direct, 2)

	_, err = uc.List(context.Background(), entities.RecordSource("cash"))
	assert.ErrorIs(t, err, ErrInvalidSource)
}

func TestLedgerUseCase_Aggregate(t *testing.T) {
	uc, _, store := newLedgerFixture(t, nil)
	appendRecord(t, store, entities.SourceDirect, "d1", "Acme", "0.10", 0)
	appendRecord(t, store, entities.SourceDirect, "d2", "Acme", "0.20", 7)
	appendRecord(t, store, entities.SourceConverted, "c1", "Beta", "0.25", 2)
	appendRecord(t, store, entities.SourceConverted, "c2", "Gamma", "100.00", 8)

	t.Run("seven day window is inclusive", func(t *testing.T) {
		report, err := uc.Aggregate(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, 3, report.Count)
		assert.True(t, report.TotalAmount.Equal(decimal.RequireFromString("0.55")), report.TotalAmount.String())
		require.Len(t, report.Ranking, 2)
		assert.Equal(t, "Acme", report.Ranking[0].Client)
		assert.True(t, report.Ranking[0].Total.Equal(decimal.RequireFromString("0.30")))
		assert.Equal(t, 2, report.Ranking[0].Count)
		assert.Equal(t, "d1", report.Ranking[0].Transactions[0].ID)
	})

	t.Run("all window", func(t *testing.T) {
		report, err := uc.Aggregate(context.Background(), 0)
		require.NoError(t, err)
		assert.Equal(t, 4, report.Count)
		assert.Equal(t, "Gamma", report.Ranking[0].Client)
		assert.Equal(t, "100.55", report.TotalAmount.StringFixed(2))
	})

	t.Run("negative window", func(t *testing.T) {
		_, err := uc.Aggregate(context.Background(), -1)
		assert.ErrorIs(t, err, ErrInvalidWindow)
	})
}

func TestAggregateRecords_TiesByClientName(t *testing.T) {
	recs := []entities.FinancialRecord{
		{ID: "1", Client: "Zeta", Amount: decimal.NewFromInt(5), Date: ledgerNow},
		{ID: "2", Client: "Alpha", Amount: decimal.NewFromInt(5), Date: ledgerNow},
	}
	report := AggregateRecords(recs, 0, ledgerNow)
	require.Len(t, report.Ranking, 2)
	assert.Equal(t, "Alpha", report.Ranking[0].Client)
	assert.Equal(t, "Zeta", report.Ranking[1].Client)
}

func TestLedgerUseCase_Summary(t *testing.T) {
	uc, _, store := newLedgerFixture(t, nil)
	for i := 0; i < 12; i++ {
		appendRecord(t, store, entities.SourceDirect, string(rune('a'+i)), "Acme", "1.00", i)
	}

	s, err := uc.Summary(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "12.00", s.OverallTotal.StringFixed(2))
	assert.Equal(t, "8.00", s.PeriodTotal.StringFixed(2))
	assert.Len(t, s.LastTransactions, lastTransactionsLimit)
	assert.Equal(t, "a", s.LastTransactions[0].ID)

	_, err = uc.Summary(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestLedgerUseCase_RecordDirect(t *testing.T) {
	ctx := context.Background()

	t.Run("plain entry", func(t *testing.T) {
		uc, _, store := newLedgerFixture(t, nil)
		rec, err := uc.RecordDirect(ctx, DirectEntry{Client: " Acme ", Amount: decimal.RequireFromString("49.90")})
		require.NoError(t, err)
		assert.Equal(t, "Acme", rec.Client)
		assert.Equal(t, entities.SourceDirect, rec.Source)
		assert.True(t, rec.Date.Equal(ledgerNow))

		got, err := store.Records(entities.SourceDirect).GetByID(ctx, rec.ID)
		require.NoError(t, err)
		assert.Equal(t, rec.ID, got.ID)
	})

	t.Run("client taken from lot and lot marked paid", func(t *testing.T) {
		uc, lots, _ := newLedgerFixture(t, nil)
		l := mustCreateLot(t, lots, "Acme")
		rec, err := uc.RecordDirect(ctx, DirectEntry{Amount: decimal.NewFromInt(10), LotID: l.ID, MarkLotPaid: true})
		require.NoError(t, err)
		assert.Equal(t, "Acme", rec.Client)

		after, err := lots.GetByID(ctx, l.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.StatusOK, after.Payment)
	})

	t.Run("validation", func(t *testing.T) {
		uc, _, _ := newLedgerFixture(t, nil)
		_, err := uc.RecordDirect(ctx, DirectEntry{Client: "Acme", Amount: decimal.Zero})
		assert.ErrorIs(t, err, ErrInvalidAmount)
		_, err = uc.RecordDirect(ctx, DirectEntry{Amount: decimal.NewFromInt(1)})
		assert.ErrorIs(t, err, ErrInvalidClient)
		_, err = uc.RecordDirect(ctx, DirectEntry{Client: "Acme", Amount: decimal.NewFromInt(1), MarkLotPaid: true})
		assert.ErrorIs(t, err, ErrInvalidLotID)
		_, err = uc.RecordDirect(ctx, DirectEntry{Client: "Acme", Amount: decimal.NewFromInt(1), LotID: "missing"})
		assert.ErrorIs(t, err, ErrLotNotFound)
	})

	t.Run("provider id without verifier", func(t *testing.T) {
		uc, _, _ := newLedgerFixture(t, nil)
		_, err := uc.RecordDirect(ctx, DirectEntry{Client: "Acme", Amount: decimal.NewFromInt(1), ProviderPaymentID: "mp-1"})
		assert.ErrorIs(t, err, ErrPaymentNotVerified)
	})
}

func TestLedgerUseCase_RecordDirect_Verification(t *testing.T) {
	ctx := context.Background()
	amount := decimal.RequireFromString("120.00")

	cases := []struct {
		name    string
		result  interfaces.PaymentVerification
		err     error
		wantErr bool
	}{
		{name: "approved with matching amount", result: interfaces.PaymentVerification{Status: "approved", Amount: amount}},
		{name: "pending at provider", result: interfaces.PaymentVerification{Status: "pending", Amount: amount}, wantErr: true},
		{name: "amount mismatch", result: interfaces.PaymentVerification{Status: "approved", Amount: decimal.RequireFromString("119.99")}, wantErr: true},
		{name: "lookup error", err: errors.New("timeout"), wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			verifier := mock_interfaces.NewMockIPaymentVerifier(ctrl)
			uc, _, store := newLedgerFixture(t, verifier)

			verifier.EXPECT().VerifyPayment(gomock.Any(), "mp-42", amount).Return(tc.result, tc.err)

			_, err := uc.RecordDirect(ctx, DirectEntry{Client: "Acme", Amount: amount, ProviderPaymentID: "mp-42"})
			recs, _ := store.Records(entities.SourceDirect).List(ctx)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrPaymentNotVerified)
				assert.Empty(t, recs)
				return
			}
			require.NoError(t, err)
			require.Len(t, recs, 1)
			assert.Equal(t, "mp-42", recs[0].ProviderPaymentID)
		})
	}
}

func TestLedgerUseCase_DeleteRecord(t *testing.T) {
	ctx := context.Background()
	uc, _, store := newLedgerFixture(t, nil)
	appendRecord(t, store, entities.SourceConverted, "c1", "Acme", "1.00", 0)

	assert.ErrorIs(t, uc.DeleteRecord(ctx, entities.SourceConverted, "c1", entities.RoleOperator), ErrPermissionDenied)
	assert.ErrorIs(t, uc.DeleteRecord(ctx, entities.SourceDirect, "c1", entities.RoleAdmin), ErrRecordNotFound)
	assert.ErrorIs(t, uc.DeleteRecord(ctx, entities.RecordSource("x"), "c1", entities.RoleAdmin), ErrInvalidSource)
	require.NoError(t, uc.DeleteRecord(ctx, entities.SourceConverted, "c1", entities.RoleAdmin))

	all, err := uc.Unify(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestExportRanking(t *testing.T) {
	report := entities.LedgerReport{
		WindowDays: 30,
		Ranking: []entities.ClientRanking{
			{Client: "Acme", Total: decimal.RequireFromString("1234.5"), Count: 3},
			{Client: "Beta, Ltd", Total: decimal.RequireFromString("10"), Count: 1},
		},
	}

	t.Run("csv", func(t *testing.T) {
		f, err := ExportRanking(report, ExportCSV, ledgerNow)
		require.NoError(t, err)
		assert.Equal(t, "ranking_30d_20240615_120000.csv", f.Name)
		rows, err := csv.NewReader(bytes.NewReader(f.Data)).ReadAll()
		require.NoError(t, err)
		assert.Equal(t, [][]string{
			{"Client", "Total Received", "Transactions"},
			{"Acme", "1234.50", "3"},
			{"Beta, Ltd", "10.00", "1"},
		}, rows)
	})

	t.Run("xlsx", func(t *testing.T) {
		f, err := ExportRanking(report, ExportXLSX, ledgerNow)
		require.NoError(t, err)
		assert.Equal(t, "ranking_30d_20240615_120000.xlsx", f.Name)

		book, err := excelize.OpenReader(bytes.NewReader(f.Data))
		require.NoError(t, err)
		defer book.Close()
		rows, err := book.GetRows(rankingSheet)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, rankingHeader, rows[0])
		assert.Equal(t, "Acme", rows[1][0])
		assert.Equal(t, "3", rows[1][2])
	})

	t.Run("xlsx cell errors are returned", func(t *testing.T) {
		book := excelize.NewFile()
		defer book.Close()
		assert.Error(t, setSheetRow(book, "Missing", 1, "Acme"))
		assert.Error(t, setSheetRow(book, "Sheet1", 0, "Acme"))
		require.NoError(t, setSheetRow(book, "Sheet1", 2, "Acme", 10.5, 3))
		got, err := book.GetCellValue("Sheet1", "C2")
		require.NoError(t, err)
		assert.Equal(t, "3", got)
	})

	t.Run("format parsing", func(t *testing.T) {
		f, err := ParseExportFormat("")
		require.NoError(t, err)
		assert.Equal(t, ExportCSV, f)
		f, err = ParseExportFormat(" XLSX ")
		require.NoError(t, err)
		assert.Equal(t, ExportXLSX, f)
		_, err = ParseExportFormat("pdf")
		assert.Error(t, err)
	})
}
