// Package memory is the in-process store used with STORAGE_DRIVER=memory and
// by tests. It honours the same conditional-write contract as the DynamoDB
// repositories.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"paintshop_lots/internal/domain/entities"
	"paintshop_lots/internal/usecase/interfaces"
)

// Store holds every collection behind one mutex so multi-collection writes
// are atomic.
type Store struct {
	mu          sync.RWMutex
	lots        map[string]entities.Lot
	history     map[string]entities.HistoryEntry
	records     map[entities.RecordSource]map[string]entities.FinancialRecord
	obligations map[string]entities.PendingObligation
	stations    map[int]int64
	now         func() time.Time
}

func NewStore() *Store {
	return &Store{
		lots:    map[string]entities.Lot{},
		history: map[string]entities.HistoryEntry{},
		records: map[entities.RecordSource]map[string]entities.FinancialRecord{
			entities.SourceDirect:    {},
			entities.SourceConverted: {},
		},
		obligations: map[string]entities.PendingObligation{},
		stations:    map[int]int64{},
		now:         time.Now,
	}
}

func (s *Store) Lots() *LotRepository               { return &LotRepository{s: s} }
func (s *Store) History() *HistoryRepository        { return &HistoryRepository{s: s} }
func (s *Store) Obligations() *ObligationRepository { return &ObligationRepository{s: s} }
func (s *Store) Records(src entities.RecordSource) *RecordRepository {
	return &RecordRepository{s: s, source: src}
}

type LotRepository struct{ s *Store }

var (
	_ interfaces.ILotRepository   = (*LotRepository)(nil)
	_ interfaces.IAtomicDeliverer = (*LotRepository)(nil)
)

func (r *LotRepository) Create(_ context.Context, l entities.Lot) (entities.Lot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.lots[l.ID]; ok {
		return entities.Lot{}, interfaces.ErrConditionFailed
	}
	if l.Version == 0 {
		l.Version = 1
	}
	r.s.lots[l.ID] = cloneLot(l)
	return cloneLot(l), nil
}

func (r *LotRepository) GetByID(_ context.Context, id string) (entities.Lot, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	l, ok := r.s.lots[id]
	if !ok {
		return entities.Lot{}, nil
	}
	return cloneLot(l), nil
}

func (r *LotRepository) List(_ context.Context) ([]entities.Lot, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.Lot, 0, len(r.s.lots))
	for _, l := range r.s.lots {
		out = append(out, cloneLot(l))
	}
	sortLots(out)
	return out, nil
}

func (r *LotRepository) ListByStation(_ context.Context, station int) ([]entities.Lot, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []entities.Lot{}
	for _, l := range r.s.lots {
		if atStation(l, station) {
			out = append(out, cloneLot(l))
		}
	}
	sortLots(out)
	return out, nil
}

func (r *LotRepository) Update(_ context.Context, l entities.Lot, expectedVersion int64) (entities.Lot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.lots[l.ID]
	if !ok || cur.Version != expectedVersion {
		return entities.Lot{}, interfaces.ErrConditionFailed
	}
	l.Version = expectedVersion + 1
	if joins(cur, l) {
		r.s.stations[*l.Station]++
	}
	r.s.lots[l.ID] = cloneLot(l)
	return cloneLot(l), nil
}

func (r *LotRepository) StationVersion(_ context.Context, station int) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.stations[station], nil
}

func (r *LotRepository) PlaceAtStation(_ context.Context, l entities.Lot, expectedVersion, stationVersion int64) (entities.Lot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.lots[l.ID]
	if !ok || cur.Version != expectedVersion || l.Station == nil || r.s.stations[*l.Station] != stationVersion {
		return entities.Lot{}, interfaces.ErrConditionFailed
	}
	l.Version = expectedVersion + 1
	r.s.stations[*l.Station]++
	r.s.lots[l.ID] = cloneLot(l)
	return cloneLot(l), nil
}

func (r *LotRepository) Delete(_ context.Context, id string, expectedVersion int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.lots[id]
	if !ok || cur.Version != expectedVersion {
		return interfaces.ErrConditionFailed
	}
	delete(r.s.lots, id)
	return nil
}

// ApplyPaintOrder validates every row, and that the rows cover the whole
// station, before touching any of them.
func (r *LotRepository) ApplyPaintOrder(_ context.Context, station int, stationVersion int64, updates []entities.PaintOrderUpdate) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.stations[station] != stationVersion || r.s.countAt(station) != len(updates) {
		return interfaces.ErrConditionFailed
	}
	for _, u := range updates {
		cur, ok := r.s.lots[u.LotID]
		if !ok || cur.Version != u.ExpectedVersion || !cur.Scheduled || cur.Station == nil || *cur.Station != station {
			return interfaces.ErrConditionFailed
		}
	}
	now := r.s.now().UTC()
	for _, u := range updates {
		l := r.s.lots[u.LotID]
		order := u.PaintOrder
		l.PaintOrder = &order
		l.Version++
		l.UpdatedAt = now
		r.s.lots[u.LotID] = l
	}
	r.s.stations[station]++
	return nil
}

// countAt expects s.mu to be held.
func (s *Store) countAt(station int) int {
	n := 0
	for _, l := range s.lots {
		if atStation(l, station) {
			n++
		}
	}
	return n
}

func atStation(l entities.Lot, station int) bool {
	return l.Scheduled && l.Station != nil && *l.Station == station
}

// joins reports whether next sits at a station cur was not at.
func joins(cur, next entities.Lot) bool {
	return next.Scheduled && next.Station != nil && !atStation(cur, *next.Station)
}

func (r *LotRepository) MoveToHistory(_ context.Context, h entities.HistoryEntry, expectedVersion int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.lots[h.ID]
	if !ok || cur.Version != expectedVersion {
		return interfaces.ErrConditionFailed
	}
	if _, exists := r.s.history[h.ID]; exists {
		return interfaces.ErrConditionFailed
	}
	h.Lot = cloneLot(h.Lot)
	r.s.history[h.ID] = h
	delete(r.s.lots, h.ID)
	return nil
}

type HistoryRepository struct{ s *Store }

var _ interfaces.IHistoryRepository = (*HistoryRepository)(nil)

func (r *HistoryRepository) Create(_ context.Context, h entities.HistoryEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.history[h.ID]; ok {
		return interfaces.ErrConditionFailed
	}
	h.Lot = cloneLot(h.Lot)
	r.s.history[h.ID] = h
	return nil
}

func (r *HistoryRepository) GetByID(_ context.Context, id string) (entities.HistoryEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	h, ok := r.s.history[id]
	if !ok {
		return entities.HistoryEntry{}, nil
	}
	h.Lot = cloneLot(h.Lot)
	return h, nil
}

func (r *HistoryRepository) List(_ context.Context) ([]entities.HistoryEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.HistoryEntry, 0, len(r.s.history))
	for _, h := range r.s.history {
		h.Lot = cloneLot(h.Lot)
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *HistoryRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.history, id)
	return nil
}

type RecordRepository struct {
	s      *Store
	source entities.RecordSource
}

var _ interfaces.IFinancialRecordRepository = (*RecordRepository)(nil)

func (r *RecordRepository) Source() entities.RecordSource { return r.source }

func (r *RecordRepository) Append(_ context.Context, rec entities.FinancialRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.appendRecord(r.source, rec)
}

func (r *RecordRepository) GetByID(_ context.Context, id string) (entities.FinancialRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.records[r.source][id], nil
}

func (r *RecordRepository) List(_ context.Context) ([]entities.FinancialRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.FinancialRecord, 0, len(r.s.records[r.source]))
	for _, rec := range r.s.records[r.source] {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *RecordRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.records[r.source], id)
	return nil
}

// appendRecord expects s.mu to be held.
func (s *Store) appendRecord(src entities.RecordSource, rec entities.FinancialRecord) error {
	if _, ok := s.records[src][rec.ID]; ok {
		return interfaces.ErrConditionFailed
	}
	rec.Source = src
	s.records[src][rec.ID] = rec
	return nil
}

type ObligationRepository struct{ s *Store }

var (
	_ interfaces.IObligationRepository = (*ObligationRepository)(nil)
	_ interfaces.IAtomicSettler        = (*ObligationRepository)(nil)
)

func (r *ObligationRepository) Create(_ context.Context, o entities.PendingObligation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.obligations[o.ID]; ok {
		return interfaces.ErrConditionFailed
	}
	r.s.obligations[o.ID] = cloneObligation(o)
	return nil
}

func (r *ObligationRepository) GetByID(_ context.Context, id string) (entities.PendingObligation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneObligation(r.s.obligations[id]), nil
}

func (r *ObligationRepository) List(_ context.Context) ([]entities.PendingObligation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.PendingObligation, 0, len(r.s.obligations))
	for _, o := range r.s.obligations {
		out = append(out, cloneObligation(o))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ObligationRepository) UpdatePending(_ context.Context, o entities.PendingObligation) (entities.PendingObligation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.obligations[o.ID]
	if !ok || cur.Status != entities.ObligationPending {
		return entities.PendingObligation{}, interfaces.ErrConditionFailed
	}
	cur.Client = o.Client
	cur.Amount = o.Amount
	cur.DueDate = cloneTime(o.DueDate)
	cur.LotID = o.LotID
	r.s.obligations[o.ID] = cur
	return cloneObligation(cur), nil
}

func (r *ObligationRepository) MarkSettled(_ context.Context, id string, settledAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.markSettled(id, settledAt)
}

func (r *ObligationRepository) RevertSettled(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.obligations[id]
	if !ok || cur.Status != entities.ObligationSettled {
		return interfaces.ErrConditionFailed
	}
	cur.Status = entities.ObligationPending
	cur.SettledAt = nil
	r.s.obligations[id] = cur
	return nil
}

func (r *ObligationRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.obligations, id)
	return nil
}

func (r *ObligationRepository) SettleObligation(_ context.Context, obligationID string, rec entities.FinancialRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.records[entities.SourceConverted][rec.ID]; ok {
		return interfaces.ErrConditionFailed
	}
	if err := r.s.markSettled(obligationID, rec.Date); err != nil {
		return err
	}
	return r.s.appendRecord(entities.SourceConverted, rec)
}

// markSettled expects s.mu to be held.
func (s *Store) markSettled(id string, at time.Time) error {
	cur, ok := s.obligations[id]
	if !ok || cur.Status != entities.ObligationPending {
		return interfaces.ErrConditionFailed
	}
	t := at.UTC()
	cur.Status = entities.ObligationSettled
	cur.SettledAt = &t
	s.obligations[id] = cur
	return nil
}

func sortLots(lots []entities.Lot) {
	sort.Slice(lots, func(i, j int) bool {
		if !lots[i].CreatedAt.Equal(lots[j].CreatedAt) {
			return lots[i].CreatedAt.Before(lots[j].CreatedAt)
		}
		return lots[i].ID < lots[j].ID
	})
}

// cloneLot copies the pointer fields so callers never alias stored state.
func cloneLot(l entities.Lot) entities.Lot {
	l.Station = cloneInt(l.Station)
	l.PaintOrder = cloneInt(l.PaintOrder)
	l.DeliveryDue = cloneTime(l.DeliveryDue)
	l.PaintedAt = cloneTime(l.PaintedAt)
	return l
}

func cloneObligation(o entities.PendingObligation) entities.PendingObligation {
	o.DueDate = cloneTime(o.DueDate)
	o.SettledAt = cloneTime(o.SettledAt)
	return o
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneTime(p *time.Time) *time.Time {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
