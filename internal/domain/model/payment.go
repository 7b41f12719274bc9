package model

// VerificationRequest carries the identifiers the gateway hands to the checkout
// after a successful payment, plus the signature it computed over them.
type VerificationRequest struct {
	OrderID          string
	PaymentID        string
	ClaimedSignature string
}

// OrderRequest is what we send to the gateway when opening an order.
type OrderRequest struct {
	AmountMinor int64  // amount in the smallest currency subdivision (paise for INR)
	Currency    string // e.g. "INR"
	Receipt     string // our own reference, e.g. "order_149"
	Notes       map[string]string
}

// Order is the gateway's order object. Raw keeps the payload exactly as the
// gateway returned it so it can be handed back to the checkout untouched.
type Order struct {
	ID         string `json:"id"`
	Entity     string `json:"entity"`
	Amount     int64  `json:"amount"`
	AmountPaid int64  `json:"amount_paid"`
	AmountDue  int64  `json:"amount_due"`
	Currency   string `json:"currency"`
	Receipt    string `json:"receipt"`
	Status     string `json:"status"`
	Attempts   int    `json:"attempts"`
	CreatedAt  int64  `json:"created_at"`

	Raw map[string]any `json:"-"`
}

// Payload returns the body to hand back to the checkout.
func (o *Order) Payload() any {
	if o.Raw != nil {
		return o.Raw
	}
	return o
}
