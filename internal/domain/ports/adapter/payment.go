package adapter

import (
	"context"

	"checkout-payments/internal/domain/model"
)

// PaymentGateway is the hex port for payment providers.
type PaymentGateway interface {
	Name() string

	// CreateOrder opens an order on the provider side and returns the provider's order object.
	CreateOrder(ctx context.Context, req model.OrderRequest) (*model.Order, error)
}
