package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"checkout-payments/internal/domain"
	"checkout-payments/internal/domain/model"
)

// ComputeSignature returns hex(HMAC-SHA256(secret, orderID + "|" + paymentID)),
// which is how Razorpay signs the checkout success handoff.
func ComputeSignature(secret, orderID, paymentID string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(h.Sum(nil))
}

// VerifyPaymentSignature reports whether signature matches the one computed for
// orderID and paymentID. The comparison is exact (lowercase hex) and constant-time.
func VerifyPaymentSignature(secret, orderID, paymentID, signature string) (bool, error) {
	if orderID == "" || paymentID == "" || signature == "" {
		return false, domain.ErrMissingField
	}
	expected := ComputeSignature(secret, orderID, paymentID)
	return hmac.Equal([]byte(expected), []byte(signature)), nil
}

// SignatureVerifier holds the key secret so handlers never touch it directly.
type SignatureVerifier struct {
	secret string
}

func NewSignatureVerifier(secret string) *SignatureVerifier {
	return &SignatureVerifier{secret: secret}
}

// Verify checks a checkout handoff. Missing fields are reported as
// domain.ErrMissingField, an unset secret as domain.ErrNotConfigured; a plain
// mismatch is (false, nil).
func (v *SignatureVerifier) Verify(req model.VerificationRequest) (bool, error) {
	if v == nil || v.secret == "" {
		return false, domain.ErrNotConfigured
	}
	return VerifyPaymentSignature(v.secret, req.OrderID, req.PaymentID, req.ClaimedSignature)
}
