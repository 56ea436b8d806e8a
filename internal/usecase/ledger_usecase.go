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

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const lastTransactionsLimit = 5

//go:generate mockgen -source=ledger_usecase.go -destination=../adapter/http/handlers/mocks/ledger_usecase_mock.go -package=mocks

// ILedgerUseCase reconciles the two append-only ledgers into one view.
type ILedgerUseCase interface {
	Unify(ctx context.Context) ([]entities.FinancialRecord, error)
	List(ctx context.Context, source entities.RecordSource) ([]entities.FinancialRecord, error)
	Aggregate(ctx context.Context, windowDays int) (entities.LedgerReport, error)
	Export(ctx context.Context, windowDays int, format ExportFormat) (ExportFile, error)
	Summary(ctx context.Context, periodDays int) (entities.LedgerSummary, error)

	RecordDirect(ctx context.Context, in DirectEntry) (entities.FinancialRecord, error)
	DeleteRecord(ctx context.Context, source entities.RecordSource, id string, role entities.Role) error
}

// DirectEntry is a payment typed in by an operator.
type DirectEntry struct {
	Client            string
	Amount            decimal.Decimal
	Date              time.Time
	LotID             string
	ProviderPaymentID string
	// MarkLotPaid writes payment=ok to LotID once the record is stored.
	MarkLotPaid bool
}

type LedgerUseCase struct {
	sources  map[entities.RecordSource]interfaces.IFinancialRecordRepository
	lots     ILotUseCase
	verifier interfaces.IPaymentVerifier
	feed     interfaces.IChangeFeed
	now      func() time.Time
}

var _ ILedgerUseCase = (*LedgerUseCase)(nil)

func NewLedgerUseCase(direct, converted interfaces.IFinancialRecordRepository, lots ILotUseCase, verifier interfaces.IPaymentVerifier, feed interfaces.IChangeFeed) *LedgerUseCase {
	return &LedgerUseCase{
		sources: map[entities.RecordSource]interfaces.IFinancialRecordRepository{
			entities.SourceDirect:    direct,
			entities.SourceConverted: converted,
		},
		lots:     lots,
		verifier: verifier,
		feed:     feed,
		now:      time.Now,
	}
}

// Unify reads both ledgers on every call and returns them as one list, newest
// first. Records keep their source tag.
func (u *LedgerUseCase) Unify(ctx context.Context) ([]entities.FinancialRecord, error) {
	var out []entities.FinancialRecord
	for _, src := range []entities.RecordSource{entities.SourceDirect, entities.SourceConverted} {
		recs, err := u.sources[src].List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list %s records: %w", src, err)
		}
		for _, r := range recs {
			r.Source = src
			r.Date = r.Date.UTC()
			out = append(out, r)
		}
	}
	sortRecords(out)
	return out, nil
}

func (u *LedgerUseCase) List(ctx context.Context, source entities.RecordSource) ([]entities.FinancialRecord, error) {
	if source != "" && !source.Valid() {
		return nil, ErrInvalidSource
	}
	all, err := u.Unify(ctx)
	if err != nil {
		return nil, err
	}
	if source == "" {
		return all, nil
	}
	out := make([]entities.FinancialRecord, 0, len(all))
	for _, r := range all {
		if r.Source == source {
			out = append(out, r)
		}
	}
	return out, nil
}

// Aggregate totals the unified ledger over the last windowDays days
// (inclusive cutoff), or over everything when windowDays is 0.
func (u *LedgerUseCase) Aggregate(ctx context.Context, windowDays int) (entities.LedgerReport, error) {
	if windowDays < 0 {
		return entities.LedgerReport{}, fmt.Errorf("%w: %d days", ErrInvalidWindow, windowDays)
	}
	all, err := u.Unify(ctx)
	if err != nil {
		return entities.LedgerReport{}, err
	}
	return AggregateRecords(all, windowDays, u.now()), nil
}

// AggregateRecords is the pure part of Aggregate. records must be newest first
// for the per-client transaction lists to be too.
func AggregateRecords(records []entities.FinancialRecord, windowDays int, now time.Time) entities.LedgerReport {
	report := entities.LedgerReport{
		WindowDays:  windowDays,
		TotalAmount: decimal.Zero,
		Ranking:     []entities.ClientRanking{},
	}
	byClient := map[string]*entities.ClientRanking{}
	var order []string
	for _, r := range inWindow(records, windowDays, now) {
		report.TotalAmount = report.TotalAmount.Add(r.Amount)
		report.Count++

		c, ok := byClient[r.Client]
		if !ok {
			c = &entities.ClientRanking{Client: r.Client, Total: decimal.Zero}
			byClient[r.Client] = c
			order = append(order, r.Client)
		}
		c.Total = c.Total.Add(r.Amount)
		c.Count++
		c.Transactions = append(c.Transactions, r)
	}
	for _, name := range order {
		report.Ranking = append(report.Ranking, *byClient[name])
	}
	sort.SliceStable(report.Ranking, func(i, j int) bool {
		a, b := report.Ranking[i], report.Ranking[j]
		if cmp := a.Total.Cmp(b.Total); cmp != 0 {
			return cmp > 0
		}
		return a.Client < b.Client
	})
	return report
}

func (u *LedgerUseCase) Export(ctx context.Context, windowDays int, format ExportFormat) (ExportFile, error) {
	report, err := u.Aggregate(ctx, windowDays)
	if err != nil {
		return ExportFile{}, err
	}
	return ExportRanking(report, format, u.now())
}

// Summary is the finance header: all-time total, total for the last
// periodDays days and the latest transactions.
func (u *LedgerUseCase) Summary(ctx context.Context, periodDays int) (entities.LedgerSummary, error) {
	if periodDays <= 0 {
		return entities.LedgerSummary{}, fmt.Errorf("%w: %d days", ErrInvalidWindow, periodDays)
	}
	all, err := u.Unify(ctx)
	if err != nil {
		return entities.LedgerSummary{}, err
	}
	s := entities.LedgerSummary{
		OverallTotal: sumAmounts(all),
		PeriodDays:   periodDays,
		PeriodTotal:  sumAmounts(inWindow(all, periodDays, u.now())),
	}
	n := len(all)
	if n > lastTransactionsLimit {
		n = lastTransactionsLimit
	}
	s.LastTransactions = append([]entities.FinancialRecord{}, all[:n]...)
	return s, nil
}

// RecordDirect appends a directly entered payment. A provider payment id is
// checked with the payment provider first; a lot reference must point at an
// active lot.
func (u *LedgerUseCase) RecordDirect(ctx context.Context, in DirectEntry) (entities.FinancialRecord, error) {
	in.Client = strings.TrimSpace(in.Client)
	in.LotID = strings.TrimSpace(in.LotID)
	in.ProviderPaymentID = strings.TrimSpace(in.ProviderPaymentID)

	if !in.Amount.IsPositive() {
		return entities.FinancialRecord{}, fmt.Errorf("%w: amount must be positive", ErrInvalidAmount)
	}
	if in.LotID != "" {
		l, err := u.lots.GetByID(ctx, in.LotID)
		if err != nil {
			return entities.FinancialRecord{}, err
		}
		if in.Client == "" {
			in.Client = l.Client
		}
	}
	if in.Client == "" {
		return entities.FinancialRecord{}, fmt.Errorf("%w: client is required", ErrInvalidClient)
	}
	if in.MarkLotPaid && in.LotID == "" {
		return entities.FinancialRecord{}, fmt.Errorf("%w: marking a lot paid needs a lot reference", ErrInvalidLotID)
	}
	if in.ProviderPaymentID != "" {
		if err := u.verify(ctx, in); err != nil {
			return entities.FinancialRecord{}, err
		}
	}

	now := u.now().UTC()
	date := in.Date
	if date.IsZero() {
		date = now
	}
	rec := entities.FinancialRecord{
		ID:                uuid.NewString(),
		Source:            entities.SourceDirect,
		Client:            in.Client,
		Amount:            in.Amount,
		Date:              date.UTC(),
		LotID:             in.LotID,
		ProviderPaymentID: in.ProviderPaymentID,
		CreatedAt:         now,
	}
	if err := u.sources[entities.SourceDirect].Append(ctx, rec); err != nil {
		log.Error().Str("client", rec.Client).Err(err).Msg("[ledger][usecase] direct record append failed")
		return entities.FinancialRecord{}, err
	}
	metrics.LedgerRecords.WithLabelValues(string(entities.SourceDirect)).Inc()
	log.Info().Str("record_id", rec.ID).Str("client", rec.Client).Str("amount", rec.Amount.StringFixed(2)).Msg("[ledger][usecase] direct record appended")
	u.publish(ctx, "created", rec.ID, rec)

	if in.MarkLotPaid {
		if _, err := u.lots.MarkPaymentSettled(ctx, in.LotID); err != nil {
			log.Error().Str("record_id", rec.ID).Str("lot_id", in.LotID).Err(err).Msg("[ledger][usecase] lot payment write-back failed")
			return rec, fmt.Errorf("record %s stored but lot %s payment not updated: %w", rec.ID, in.LotID, err)
		}
	}
	return rec, nil
}

func (u *LedgerUseCase) verify(ctx context.Context, in DirectEntry) error {
	if u.verifier == nil {
		return fmt.Errorf("%w: no payment provider configured", ErrPaymentNotVerified)
	}
	v, err := u.verifier.VerifyPayment(ctx, in.ProviderPaymentID, in.Amount)
	if err != nil {
		log.Warn().Str("provider_payment_id", in.ProviderPaymentID).Err(err).Msg("[ledger][usecase] payment lookup failed")
		return errors.Join(ErrPaymentNotVerified, err)
	}
	if v.Status != "approved" {
		return fmt.Errorf("%w: provider status %q", ErrPaymentNotVerified, v.Status)
	}
	if !v.Amount.Equal(in.Amount) {
		return fmt.Errorf("%w: provider amount %s differs from %s", ErrPaymentNotVerified, v.Amount.StringFixed(2), in.Amount.StringFixed(2))
	}
	return nil
}

func (u *LedgerUseCase) DeleteRecord(ctx context.Context, source entities.RecordSource, id string, role entities.Role) error {
	if !role.Privileged() {
		return fmt.Errorf("%w: deleting a financial record requires a privileged role", ErrPermissionDenied)
	}
	if !source.Valid() {
		return ErrInvalidSource
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrRecordNotFound
	}
	repo := u.sources[source]
	r, err := repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if r.ID == "" {
		return ErrRecordNotFound
	}
	if err := repo.Delete(ctx, id); err != nil {
		return err
	}
	log.Info().Str("record_id", id).Str("source", string(source)).Msg("[ledger][usecase] record deleted")
	u.publish(ctx, "deleted", id, nil)
	return nil
}

func (u *LedgerUseCase) publish(ctx context.Context, action, id string, payload any) {
	if u.feed == nil {
		return
	}
	u.feed.Publish(ctx, entities.ChangeEvent{Topic: entities.TopicLedger, Action: action, EntityID: id, At: u.now().UTC(), Payload: payload})
}

// sortRecords orders by date descending; ties go by source then id so the
// merge is deterministic.
func sortRecords(recs []entities.FinancialRecord) {
	sort.SliceStable(recs, func(i, j int) bool {
		a, b := recs[i], recs[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		if a.Source != b.Source {
			return a.Source < b.Source
		}
		return a.ID < b.ID
	})
}

func inWindow(records []entities.FinancialRecord, windowDays int, now time.Time) []entities.FinancialRecord {
	if windowDays == 0 {
		return records
	}
	cutoff := now.UTC().AddDate(0, 0, -windowDays)
	out := make([]entities.FinancialRecord, 0, len(records))
	for _, r := range records {
		if !r.Date.Before(cutoff) {
			out = append(out, r)
		}
	}
	return out
}

func sumAmounts(records []entities.FinancialRecord) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Amount)
	}
	return total
}
