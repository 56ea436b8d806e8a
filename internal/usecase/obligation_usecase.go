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

//go:generate mockgen -source=obligation_usecase.go -destination=../adapter/http/handlers/mocks/obligation_usecase_mock.go -package=mocks

// IObligationUseCase manages expected payments and their settlement.
type IObligationUseCase interface {
	Create(ctx context.Context, in ObligationInput) (entities.PendingObligation, error)
	GetByID(ctx context.Context, id string) (entities.PendingObligation, error)
	List(ctx context.Context, status entities.ObligationStatus) ([]entities.PendingObligation, error)
	Update(ctx context.Context, id string, in ObligationInput) (entities.PendingObligation, error)
	Settle(ctx context.Context, id string) (SettlementResult, error)
	Delete(ctx context.Context, id string, role entities.Role) error
}

type ObligationInput struct {
	Client  string
	Amount  decimal.Decimal
	DueDate *time.Time
	LotID   string
}

// SettlementResult is the settled obligation and the converted record it produced.
type SettlementResult struct {
	Obligation entities.PendingObligation `json:"obligation"`
	Record     entities.FinancialRecord   `json:"record"`
}

type ObligationUseCase struct {
	obligations interfaces.IObligationRepository
	converted   interfaces.IFinancialRecordRepository
	lots        ILotUseCase
	feed        interfaces.IChangeFeed
	now         func() time.Time
}

var _ IObligationUseCase = (*ObligationUseCase)(nil)

func NewObligationUseCase(obligations interfaces.IObligationRepository, converted interfaces.IFinancialRecordRepository, lots ILotUseCase, feed interfaces.IChangeFeed) *ObligationUseCase {
	return &ObligationUseCase{
		obligations: obligations,
		converted:   converted,
		lots:        lots,
		feed:        feed,
		now:         time.Now,
	}
}

func validateObligation(in ObligationInput) (ObligationInput, error) {
	in.Client = strings.TrimSpace(in.Client)
	in.LotID = strings.TrimSpace(in.LotID)
	if in.Client == "" {
		return in, fmt.Errorf("%w: client is required", ErrInvalidClient)
	}
	if !in.Amount.IsPositive() {
		return in, fmt.Errorf("%w: amount must be positive", ErrInvalidAmount)
	}
	if in.DueDate != nil {
		d := in.DueDate.UTC()
		in.DueDate = &d
	}
	return in, nil
}

func (u *ObligationUseCase) Create(ctx context.Context, in ObligationInput) (entities.PendingObligation, error) {
	in, err := validateObligation(in)
	if err != nil {
		return entities.PendingObligation{}, err
	}
	o := entities.PendingObligation{
		ID:        uuid.NewString(),
		Client:    in.Client,
		Amount:    in.Amount,
		DueDate:   in.DueDate,
		LotID:     in.LotID,
		Status:    entities.ObligationPending,
		CreatedAt: u.now().UTC(),
	}
	if err := u.obligations.Create(ctx, o); err != nil {
		log.Error().Str("client", o.Client).Err(err).Msg("[obligation][usecase] create failed")
		return entities.PendingObligation{}, err
	}
	log.Info().Str("obligation_id", o.ID).Str("client", o.Client).Str("amount", o.Amount.StringFixed(2)).Msg("[obligation][usecase] obligation created")
	u.publish(ctx, entities.TopicObligations, "created", o.ID, o)
	return o, nil
}

func (u *ObligationUseCase) GetByID(ctx context.Context, id string) (entities.PendingObligation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PendingObligation{}, ErrObligationNotFound
	}
	o, err := u.obligations.GetByID(ctx, id)
	if err != nil {
		return entities.PendingObligation{}, err
	}
	if o.ID == "" {
		return entities.PendingObligation{}, ErrObligationNotFound
	}
	return o, nil
}

// List returns obligations newest first, optionally narrowed to one status.
func (u *ObligationUseCase) List(ctx context.Context, status entities.ObligationStatus) ([]entities.PendingObligation, error) {
	all, err := u.obligations.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.PendingObligation, 0, len(all))
	for _, o := range all {
		if status != "" && o.Status != status {
			continue
		}
		out = append(out, o)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Update edits a pending obligation. Settled ones are frozen.
func (u *ObligationUseCase) Update(ctx context.Context, id string, in ObligationInput) (entities.PendingObligation, error) {
	in, err := validateObligation(in)
	if err != nil {
		return entities.PendingObligation{}, err
	}
	cur, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.PendingObligation{}, err
	}
	if cur.Status == entities.ObligationSettled {
		return entities.PendingObligation{}, ErrAlreadySettled
	}
	cur.Client = in.Client
	cur.Amount = in.Amount
	cur.DueDate = in.DueDate
	cur.LotID = in.LotID

	saved, err := u.obligations.UpdatePending(ctx, cur)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.PendingObligation{}, ErrAlreadySettled
		}
		return entities.PendingObligation{}, err
	}
	log.Info().Str("obligation_id", saved.ID).Msg("[obligation][usecase] obligation updated")
	u.publish(ctx, entities.TopicObligations, "updated", saved.ID, saved)
	return saved, nil
}

// Settle flips the obligation to settled and appends exactly one converted
// record. A linked lot gets payment=ok directly, without a settlement prompt.
func (u *ObligationUseCase) Settle(ctx context.Context, id string) (SettlementResult, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return SettlementResult{}, err
	}
	if o.Status == entities.ObligationSettled {
		metrics.ObligationSettlements.WithLabelValues("already_settled").Inc()
		return SettlementResult{}, ErrAlreadySettled
	}

	now := u.now().UTC()
	rec := o.ConvertedRecord(uuid.NewString(), now)

	if settler, ok := u.obligations.(interfaces.IAtomicSettler); ok {
		if err := settler.SettleObligation(ctx, o.ID, rec); err != nil {
			return SettlementResult{}, u.settleFailed(o.ID, err)
		}
	} else {
		// Claim first so a concurrent settle cannot append a second record.
		if err := u.obligations.MarkSettled(ctx, o.ID, now); err != nil {
			return SettlementResult{}, u.settleFailed(o.ID, err)
		}
		if err := u.converted.Append(ctx, rec); err != nil {
			log.Error().Str("obligation_id", o.ID).Err(err).Msg("[obligation][usecase] converted record append failed, reverting")
			if rerr := u.obligations.RevertSettled(ctx, o.ID); rerr != nil {
				log.Error().Str("obligation_id", o.ID).Err(rerr).Msg("[obligation][usecase] revert after failed append failed")
				err = errors.Join(err, rerr)
			}
			metrics.ObligationSettlements.WithLabelValues("failed").Inc()
			return SettlementResult{}, err
		}
	}

	o.Status = entities.ObligationSettled
	o.SettledAt = &now
	metrics.ObligationSettlements.WithLabelValues("settled").Inc()
	metrics.LedgerRecords.WithLabelValues(string(entities.SourceConverted)).Inc()
	log.Info().Str("obligation_id", o.ID).Str("record_id", rec.ID).Str("amount", rec.Amount.StringFixed(2)).Msg("[obligation][usecase] obligation settled")
	u.publish(ctx, entities.TopicObligations, "settled", o.ID, o)
	u.publish(ctx, entities.TopicLedger, "created", rec.ID, rec)

	res := SettlementResult{Obligation: o, Record: rec}
	if o.LotID != "" && u.lots != nil {
		if _, err := u.lots.MarkPaymentSettled(ctx, o.LotID); err != nil {
			if errors.Is(err, ErrLotNotFound) {
				log.Warn().Str("obligation_id", o.ID).Str("lot_id", o.LotID).Msg("[obligation][usecase] linked lot no longer active")
				return res, nil
			}
			log.Error().Str("obligation_id", o.ID).Str("lot_id", o.LotID).Err(err).Msg("[obligation][usecase] lot payment write-back failed")
			return res, fmt.Errorf("obligation %s settled but lot %s payment not updated: %w", o.ID, o.LotID, err)
		}
	}
	return res, nil
}

func (u *ObligationUseCase) settleFailed(id string, err error) error {
	if errors.Is(err, interfaces.ErrConditionFailed) {
		metrics.ObligationSettlements.WithLabelValues("already_settled").Inc()
		log.Info().Str("obligation_id", id).Msg("[obligation][usecase] concurrent settlement lost")
		return ErrAlreadySettled
	}
	metrics.ObligationSettlements.WithLabelValues("failed").Inc()
	log.Error().Str("obligation_id", id).Err(err).Msg("[obligation][usecase] settlement failed")
	return err
}

// Delete removes the obligation whatever its status. Records appended by an
// earlier settlement stay in the ledger.
func (u *ObligationUseCase) Delete(ctx context.Context, id string, role entities.Role) error {
	if !role.Privileged() {
		return fmt.Errorf("%w: deleting an obligation requires a privileged role", ErrPermissionDenied)
	}
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.obligations.Delete(ctx, o.ID); err != nil {
		return err
	}
	log.Info().Str("obligation_id", o.ID).Str("status", string(o.Status)).Msg("[obligation][usecase] obligation deleted")
	u.publish(ctx, entities.TopicObligations, "deleted", o.ID, nil)
	return nil
}

func (u *ObligationUseCase) publish(ctx context.Context, topic entities.Topic, action, id string, payload any) {
	if u.feed == nil {
		return
	}
	u.feed.Publish(ctx, entities.ChangeEvent{Topic: topic, Action: action, EntityID: id, At: u.now().UTC(), Payload: payload})
}
