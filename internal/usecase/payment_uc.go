// File: internal/usecase/payment_uc.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/rs/zerolog"

	"checkout-payments/internal/domain"
	"checkout-payments/internal/domain/model"
	"checkout-payments/internal/domain/ports/adapter"
	"checkout-payments/internal/infra/logging"
)

// Compile-time check
var _ PaymentUseCase = (*paymentUC)(nil)

type PaymentUseCase interface {
	// CreateOrder opens a gateway order for an allow-listed amount given in base currency units.
	// Notes are attached to the order as given; nil or empty means none.
	CreateOrder(ctx context.Context, amount int64, notes map[string]string) (*model.Order, error)
	// VerifyPayment checks the signature the gateway attached to a checkout handoff.
	VerifyPayment(ctx context.Context, req model.VerificationRequest) (bool, error)
}

// SignatureVerifier checks a checkout handoff signature.
type SignatureVerifier interface {
	Verify(req model.VerificationRequest) (bool, error)
}

type paymentUC struct {
	gateway  adapter.PaymentGateway
	verifier SignatureVerifier
	allowed  []int64
	currency string
	log      *zerolog.Logger
	dev      bool
}

func NewPaymentUseCase(gateway adapter.PaymentGateway, verifier SignatureVerifier, allowed []int64, currency string, logger *zerolog.Logger, dev bool) *paymentUC {
	return &paymentUC{
		gateway:  gateway,
		verifier: verifier,
		allowed:  slices.Clone(allowed),
		currency: currency,
		log:      logger,
		dev:      dev,
	}
}

func (u *paymentUC) CreateOrder(ctx context.Context, amount int64, notes map[string]string) (*model.Order, error) {
	defer logging.TraceDuration(u.log, "PaymentUC.CreateOrder")()
	l := logging.With(ctx, u.log)

	if !slices.Contains(u.allowed, amount) {
		l.Warn().Int64("amount", amount).Msg("order amount not allowed")
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}

	req := model.OrderRequest{
		AmountMinor: amount * 100,
		Currency:    u.currency,
		Receipt:     fmt.Sprintf("order_%d", amount),
	}
	if len(notes) > 0 {
		req.Notes = maps.Clone(notes)
	}
	order, err := u.gateway.CreateOrder(ctx, req)
	if err != nil {
		l.Error().Err(err).Str("gateway", u.gateway.Name()).Int64("amount_minor", req.AmountMinor).Msg("create order failed")
		if errors.Is(err, domain.ErrNotConfigured) || errors.Is(err, domain.ErrUpstream) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}

	l.Info().Str("order_id", order.ID).Int64("amount_minor", order.Amount).Str("currency", order.Currency).Msg("order created")
	return order, nil
}

func (u *paymentUC) VerifyPayment(ctx context.Context, req model.VerificationRequest) (bool, error) {
	l := logging.With(logging.WithOrderID(ctx, req.OrderID), u.log)

	ok, err := u.verifier.Verify(req)
	switch {
	case errors.Is(err, domain.ErrMissingField):
		l.Warn().Msg("verify payment: missing field")
		return false, err
	case err != nil:
		l.Error().Err(err).Msg("verify payment failed")
		return false, err
	case !ok:
		l.Warn().
			Str("payment_id", req.PaymentID).
			Str("signature", logging.Redact(req.ClaimedSignature, u.dev)).
			Msg("payment signature mismatch")
		return false, nil
	}

	l.Info().Str("payment_id", req.PaymentID).Msg("payment verified")
	return true, nil
}
