package payments

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"paintshop_lots/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
	ErrInvalidProviderPaymentID        = errors.New("invalid provider payment id")
)

// MercadoPagoGateway looks up PIX payments so a directly entered ledger
// record can be checked against what the provider actually received.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPaymentVerifier = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, mock bool) (*MercadoPagoGateway, error) {
	if mock {
		log.Info().Msg("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if strings.TrimSpace(accessToken) == "" {
		log.Warn().Msg("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Error().Err(err).Msg("[payment][gateway] failed creating sdk config")
		return nil, err
	}
	log.Info().Msg("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

// VerifyPayment fetches the payment by its Mercado Pago id. In mock mode every
// well-formed id is approved for the expected amount.
func (g *MercadoPagoGateway) VerifyPayment(ctx context.Context, providerPaymentID string, expected decimal.Decimal) (interfaces.PaymentVerification, error) {
	id, err := strconv.Atoi(strings.TrimSpace(providerPaymentID))
	if err != nil || id <= 0 {
		return interfaces.PaymentVerification{}, fmt.Errorf("%w: %q", ErrInvalidProviderPaymentID, providerPaymentID)
	}

	if g != nil && g.mockMode {
		log.Info().Int("provider_payment_id", id).Msg("[payment][gateway] mock verify approved")
		return interfaces.PaymentVerification{
			ProviderPaymentID: strconv.Itoa(id),
			Status:            "approved",
			Amount:            expected,
		}, nil
	}

	if g == nil || g.client == nil {
		log.Error().Msg("[payment][gateway] gateway not configured")
		return interfaces.PaymentVerification{}, ErrMercadoPagoGatewayNotConfigured
	}

	resp, err := g.client.Get(ctx, id)
	if err != nil {
		log.Error().Int("provider_payment_id", id).Err(err).Msg("[payment][gateway] sdk get failed")
		return interfaces.PaymentVerification{}, err
	}
	log.Info().Int("provider_payment_id", resp.ID).Str("status", resp.Status).Str("status_detail", resp.StatusDetail).Msg("[payment][gateway] payment fetched")

	return interfaces.PaymentVerification{
		ProviderPaymentID: strconv.Itoa(resp.ID),
		Status:            resp.Status,
		Amount:            decimal.NewFromFloat(resp.TransactionAmount).Round(2),
	}, nil
}
