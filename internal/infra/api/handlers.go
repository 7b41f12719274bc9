package api

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"time"

	"checkout-payments/internal/domain"
	"checkout-payments/internal/domain/model"
	"checkout-payments/internal/infra/logging"
	"checkout-payments/internal/infra/metrics"
)

const maxBodyBytes = 1 << 16

type errorResponse struct {
	Error string `json:"error"`
}

type successResponse struct {
	Success bool `json:"success"`
}

type createOrderRequest struct {
	Amount    json.RawMessage `json:"amount"`
	UID       string          `json:"uid"`
	Type      string          `json:"type"`
	SkillName string          `json:"skillName"`
}

// notes returns the optional order notes, nil when the caller sent none.
func (req createOrderRequest) notes() map[string]string {
	var out map[string]string
	for k, v := range map[string]string{"uid": req.UID, "type": req.Type, "skillName": req.SkillName} {
		if v == "" {
			continue
		}
		if out == nil {
			out = make(map[string]string, 3)
		}
		out[k] = v
	}
	return out
}

type verifyPaymentRequest struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	l := logging.With(r.Context(), s.log)

	var req createOrderRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		metrics.IncOrder("rejected")
		l.Debug().Err(err).Msg("create order: bad body")
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}

	amount, ok := parseAmount(req.Amount)
	if !ok {
		metrics.IncOrder("rejected")
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid amount"})
		return
	}

	order, err := s.payUC.CreateOrder(r.Context(), amount, req.notes())
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		metrics.IncOrder("rejected")
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid amount"})
		return
	case err != nil:
		metrics.IncOrder("failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Order creation failed"})
		return
	}

	metrics.IncOrder("created")
	metrics.AddOrderAmount(order.Currency, order.Amount)
	writeJSON(w, http.StatusOK, order.Payload())
}

func (s *Server) handleVerifyPayment(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	l := logging.With(r.Context(), s.log)

	var req verifyPaymentRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		l.Warn().Err(err).Msg("verify payment: bad body")
		metrics.ObserveVerify(false, "bad_json", time.Since(start))
		writeJSON(w, http.StatusInternalServerError, successResponse{Success: false})
		return
	}

	ok, err := s.payUC.VerifyPayment(r.Context(), model.VerificationRequest{
		OrderID:          req.OrderID,
		PaymentID:        req.PaymentID,
		ClaimedSignature: req.Signature,
	})
	switch {
	case errors.Is(err, domain.ErrMissingField):
		metrics.ObserveVerify(false, "missing_field", time.Since(start))
		writeJSON(w, http.StatusInternalServerError, successResponse{Success: false})
	case errors.Is(err, domain.ErrNotConfigured):
		metrics.ObserveVerify(false, "not_configured", time.Since(start))
		writeJSON(w, http.StatusInternalServerError, successResponse{Success: false})
	case err != nil:
		metrics.ObserveVerify(false, "error", time.Since(start))
		writeJSON(w, http.StatusInternalServerError, successResponse{Success: false})
	case !ok:
		metrics.ObserveVerify(false, "mismatch", time.Since(start))
		writeJSON(w, http.StatusBadRequest, successResponse{Success: false})
	default:
		metrics.ObserveVerify(true, "match", time.Since(start))
		writeJSON(w, http.StatusOK, successResponse{Success: true})
	}
}

var errTrailingData = errors.New("unexpected data after JSON body")

// decodeJSON reads exactly one JSON value from the body.
func decodeJSON(body io.Reader, v any) error {
	dec := json.NewDecoder(io.LimitReader(body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}

// parseAmount accepts integral JSON numbers only (149 and 149.0 alike).
// Strings, booleans, null and fractions are not amounts.
func parseAmount(raw json.RawMessage) (int64, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false
	}
	if f != math.Trunc(f) || math.Abs(f) > 1e15 {
		return 0, false
	}
	return int64(f), true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
