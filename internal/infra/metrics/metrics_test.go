//go:build !integration

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveVerify_CountsByResultAndReason(t *testing.T) {
	before := testutil.ToFloat64(PaymentVerifyRequests.WithLabelValues("fail", "mismatch"))
	ObserveVerify(false, " Mismatch ", time.Millisecond)
	after := testutil.ToFloat64(PaymentVerifyRequests.WithLabelValues("fail", "mismatch"))
	if after-before != 1 {
		t.Fatalf("expected counter to grow by 1, got %v -> %v", before, after)
	}
}

func TestIncOrder_NormalizesLabel(t *testing.T) {
	before := testutil.ToFloat64(ordersTotal.WithLabelValues("created"))
	IncOrder("Created")
	if got := testutil.ToFloat64(ordersTotal.WithLabelValues("created")); got-before != 1 {
		t.Fatalf("expected +1, got %v -> %v", before, got)
	}
}

func TestHandler_ExposesRegisteredCollectors(t *testing.T) {
	MustRegister()
	MustRegister() // idempotent
	SetBuildInfo("test", "abc123")
	IncRateLimited("/create-order")

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, name := range []string{"build_info", "rate_limit_rejections_total"} {
		if !strings.Contains(body, name) {
			t.Errorf("expected %s in exposition", name)
		}
	}
}
