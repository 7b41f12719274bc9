// File: internal/infra/adapters/payment/razorpay_gateway.go
package payment

import (
	"context"
	"encoding/json"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"

	"checkout-payments/internal/domain"
	"checkout-payments/internal/domain/model"
	"checkout-payments/internal/domain/ports/adapter"
)

var _ adapter.PaymentGateway = (*RazorpayGateway)(nil)

// orderCreator is the slice of the razorpay-go Order resource we use.
type orderCreator interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

// RazorpayGateway implements adapter.PaymentGateway on top of the official SDK.
type RazorpayGateway struct {
	keyID  string
	orders orderCreator
}

// NewRazorpayGateway builds a gateway for the given key pair. Empty keys are
// allowed here so the process can start; every call then fails with
// domain.ErrNotConfigured.
func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	g := &RazorpayGateway{keyID: keyID}
	if keyID != "" && keySecret != "" {
		g.orders = razorpay.NewClient(keyID, keySecret).Order
	}
	return g
}

func (g *RazorpayGateway) Name() string { return "razorpay" }

// CreateOrder calls POST /v1/orders and returns the order as Razorpay sent it.
func (g *RazorpayGateway) CreateOrder(ctx context.Context, req model.OrderRequest) (*model.Order, error) {
	if g.orders == nil {
		return nil, domain.ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	payload := map[string]interface{}{
		"amount":   req.AmountMinor,
		"currency": req.Currency,
		"receipt":  req.Receipt,
	}
	if len(req.Notes) > 0 {
		payload["notes"] = req.Notes
	}

	raw, err := g.orders.Create(payload, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	return decodeOrder(raw)
}

func decodeOrder(raw map[string]interface{}) (*model.Order, error) {
	b, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal order: %v", domain.ErrUpstream, err)
	}
	var o model.Order
	if err := json.Unmarshal(b, &o); err != nil {
		return nil, fmt.Errorf("%w: decode order: %v", domain.ErrUpstream, err)
	}
	if o.ID == "" {
		return nil, fmt.Errorf("%w: order without id", domain.ErrUpstream)
	}
	o.Raw = raw
	return &o, nil
}
