package interfaces

import (
	"context"

	"github.com/shopspring/decimal"

	"paintshop_lots/internal/domain/entities"
)

//go:generate mockgen -source=collaborators_interface.go -destination=mocks/collaborators_mock.go -package=mock_interfaces

// IChangeFeed notifies realtime subscribers. Publishing is advisory.
type IChangeFeed interface {
	Publish(ctx context.Context, ev entities.ChangeEvent)
}

// IFinanceEntryFlow asks a human to enter the payment for a lot. It is the
// hand-off target of a confirmed settlement prompt.
type IFinanceEntryFlow interface {
	RequestEntry(ctx context.Context, lot entities.Lot) error
}

// PaymentVerification is what the payment provider reports for a payment id.
type PaymentVerification struct {
	ProviderPaymentID string
	Status            string
	Amount            decimal.Decimal
}

// IPaymentVerifier looks up a payment at an external provider (e.g. Mercado Pago).
// expected is the amount the operator typed; mock providers echo it back.
type IPaymentVerifier interface {
	VerifyPayment(ctx context.Context, providerPaymentID string, expected decimal.Decimal) (PaymentVerification, error)
}
