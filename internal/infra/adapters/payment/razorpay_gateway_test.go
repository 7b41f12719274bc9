//go:build !integration

package payment

import (
	"context"
	"errors"
	"testing"

	"checkout-payments/internal/domain"
	"checkout-payments/internal/domain/model"
)

type fakeOrders struct {
	got  map[string]interface{}
	resp map[string]interface{}
	err  error
}

func (f *fakeOrders) Create(data map[string]interface{}, _ map[string]string) (map[string]interface{}, error) {
	f.got = data
	return f.resp, f.err
}

func TestRazorpayGateway_CreateOrder(t *testing.T) {
	ctx := context.Background()
	req := model.OrderRequest{AmountMinor: 14900, Currency: "INR", Receipt: "order_149"}

	t.Run("forwards payload and keeps the raw order", func(t *testing.T) {
		fake := &fakeOrders{resp: map[string]interface{}{
			"id":         "order_Ab12",
			"entity":     "order",
			"amount":     float64(14900),
			"amount_due": float64(14900),
			"currency":   "INR",
			"receipt":    "order_149",
			"status":     "created",
			"created_at": float64(1700000000),
		}}
		g := &RazorpayGateway{keyID: "rzp_test", orders: fake}

		o, err := g.CreateOrder(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fake.got["amount"] != int64(14900) || fake.got["currency"] != "INR" || fake.got["receipt"] != "order_149" {
			t.Fatalf("unexpected payload: %#v", fake.got)
		}
		if _, ok := fake.got["notes"]; ok {
			t.Fatal("notes should be omitted when empty")
		}
		if o.ID != "order_Ab12" || o.Amount != 14900 || o.CreatedAt != 1700000000 {
			t.Fatalf("unexpected order: %+v", o)
		}
		if o.Payload().(map[string]interface{})["id"] != "order_Ab12" {
			t.Fatal("payload should be the raw gateway object")
		}
	})

	t.Run("notes are sent with the order", func(t *testing.T) {
		fake := &fakeOrders{resp: map[string]interface{}{"id": "order_Cd34", "amount": float64(49900)}}
		g := &RazorpayGateway{keyID: "rzp_test", orders: fake}
		withNotes := req
		withNotes.Notes = map[string]string{"uid": "u_42", "skillName": "go"}

		if _, err := g.CreateOrder(ctx, withNotes); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		notes, ok := fake.got["notes"].(map[string]string)
		if !ok {
			t.Fatalf("expected notes in payload, got %#v", fake.got["notes"])
		}
		if notes["uid"] != "u_42" || notes["skillName"] != "go" {
			t.Fatalf("unexpected notes: %v", notes)
		}
	})

	t.Run("sdk error is wrapped as upstream", func(t *testing.T) {
		g := &RazorpayGateway{orders: &fakeOrders{err: errors.New("BAD_REQUEST_ERROR")}}
		_, err := g.CreateOrder(ctx, req)
		if !errors.Is(err, domain.ErrUpstream) {
			t.Fatalf("expected ErrUpstream, got %v", err)
		}
	})

	t.Run("order without id is rejected", func(t *testing.T) {
		g := &RazorpayGateway{orders: &fakeOrders{resp: map[string]interface{}{"status": "created"}}}
		if _, err := g.CreateOrder(ctx, req); !errors.Is(err, domain.ErrUpstream) {
			t.Fatalf("expected ErrUpstream, got %v", err)
		}
	})

	t.Run("missing keys -> not configured", func(t *testing.T) {
		g := NewRazorpayGateway("", "")
		if _, err := g.CreateOrder(ctx, req); !errors.Is(err, domain.ErrNotConfigured) {
			t.Fatalf("expected ErrNotConfigured, got %v", err)
		}
	})

	t.Run("cancelled context skips the call", func(t *testing.T) {
		fake := &fakeOrders{}
		g := &RazorpayGateway{orders: fake}
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		if _, err := g.CreateOrder(cctx, req); !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
		if fake.got != nil {
			t.Fatal("gateway should not be called")
		}
	})
}

func TestNoopPaymentGateway_CreateOrder(t *testing.T) {
	g := NewNoopPaymentGateway()
	o1, _ := g.CreateOrder(context.Background(), model.OrderRequest{AmountMinor: 49900, Currency: "INR", Receipt: "order_499"})
	o2, _ := g.CreateOrder(context.Background(), model.OrderRequest{AmountMinor: 14900, Currency: "INR", Receipt: "order_149"})
	if o1.ID == o2.ID {
		t.Fatalf("expected distinct ids, got %s twice", o1.ID)
	}
	got, ok := g.Order(o1.ID)
	if !ok || got.AmountMinor != 49900 {
		t.Fatalf("expected recorded request for %s, got %+v ok=%v", o1.ID, got, ok)
	}
}
