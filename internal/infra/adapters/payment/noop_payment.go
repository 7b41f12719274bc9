package payment

import (
	"context"
	"fmt"
	"sync"
	"time"

	"checkout-payments/internal/domain/model"
	"checkout-payments/internal/domain/ports/adapter"
)

var _ adapter.PaymentGateway = (*NoopPaymentGateway)(nil)

// NoopPaymentGateway is a simple in-memory gateway to use in tests and dev runs.
type NoopPaymentGateway struct {
	mu     sync.Mutex
	seq    int64
	orders map[string]model.OrderRequest // order id -> request we received
}

func NewNoopPaymentGateway() *NoopPaymentGateway {
	return &NoopPaymentGateway{
		orders: make(map[string]model.OrderRequest),
	}
}

func (g *NoopPaymentGateway) Name() string { return "noop" }

func (g *NoopPaymentGateway) next() string {
	g.seq++
	return fmt.Sprintf("order_noop%d", g.seq)
}

func (g *NoopPaymentGateway) CreateOrder(ctx context.Context, req model.OrderRequest) (*model.Order, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := g.next()
	g.orders[id] = req
	return &model.Order{
		ID:        id,
		Entity:    "order",
		Amount:    req.AmountMinor,
		AmountDue: req.AmountMinor,
		Currency:  req.Currency,
		Receipt:   req.Receipt,
		Status:    "created",
		CreatedAt: time.Now().Unix(),
	}, nil
}

// Order returns the request recorded for id.
func (g *NoopPaymentGateway) Order(id string) (model.OrderRequest, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	req, ok := g.orders[id]
	return req, ok
}
