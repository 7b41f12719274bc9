//go:build !integration

package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"checkout-payments/internal/config"
)

func TestRedact(t *testing.T) {
	tests := []struct {
		in   string
		dev  bool
		want string
	}{
		{"short", false, "***"},
		{"8ab882b69975648bd036", false, "8ab8...36"},
		{"8ab882b69975648bd036", true, "8ab882b69975648bd036"},
	}
	for _, tc := range tests {
		if got := Redact(tc.in, tc.dev); got != tc.want {
			t.Errorf("Redact(%q, %v) = %q, want %q", tc.in, tc.dev, got, tc.want)
		}
	}
}

func TestWith_AttachesContextFields(t *testing.T) {
	var buf bytes.Buffer
	base := newWithWriter(&buf, config.LogConfig{Level: "info", Format: "json"}, false)

	ctx := WithOrderID(WithTraceID(context.Background(), "tid-1"), "order_1")
	With(ctx, base).Info().Msg("hello")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected json log line, got %q: %v", buf.String(), err)
	}
	if line["trace_id"] != "tid-1" || line["order_id"] != "order_1" {
		t.Fatalf("missing context fields: %v", line)
	}
	if TraceID(ctx) != "tid-1" {
		t.Fatalf("TraceID = %q", TraceID(ctx))
	}
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(&buf, config.LogConfig{Level: "warn", Format: "json"}, false)
	l.Info().Msg("dropped")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered at warn level, got %q", buf.String())
	}
	l.Warn().Msg("kept")
	if buf.Len() == 0 {
		t.Fatal("warn should be written")
	}
}
