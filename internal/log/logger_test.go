package log

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
		ok   bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"", slog.LevelInfo, true},
		{"warn", slog.LevelWarn, true},
		{"warning", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"loud", slog.LevelInfo, false},
	}
	for _, tc := range cases {
		got, err := ParseLevel(tc.in)
		if tc.ok && (err != nil || got != tc.want) {
			t.Fatalf("%q: got %v (err=%v), want %v", tc.in, got, err, tc.want)
		}
		if !tc.ok && err == nil {
			t.Fatalf("%q: expected error", tc.in)
		}
	}
}

func TestLoggerAddsComponent(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Writer: &buf, Level: slog.LevelDebug, Component: ComponentLedger})
	l.Info("hello", FieldCategory, "Food")

	out := buf.String()
	if !strings.Contains(out, "component=ledger") || !strings.Contains(out, "category=Food") {
		t.Fatalf("unexpected log line %q", out)
	}

	buf.Reset()
	l.WithComponent(ComponentStorage).Warn("w")
	if !strings.Contains(buf.String(), "component=storage") {
		t.Fatalf("unexpected log line %q", buf.String())
	}
}

func TestLoggerJSONFormatAndLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Writer: &buf, Level: slog.LevelWarn, Format: "json"})
	l.Info("dropped")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered at warn level: %q", buf.String())
	}
	l.Warn("kept")
	if !strings.HasPrefix(buf.String(), "{") || !strings.Contains(buf.String(), `"msg":"kept"`) {
		t.Fatalf("unexpected json line %q", buf.String())
	}
}

func TestContextRoundTrip(t *testing.T) {
	l := Discard()
	ctx := NewContext(context.Background(), l)
	if FromContext(ctx) != l {
		t.Fatalf("expected the stored logger")
	}
	if got := FromContext(context.Background()); got == nil || got.Component() != "unknown" {
		t.Fatalf("expected fallback logger, got %+v", got)
	}
}

func TestFieldsBuilder(t *testing.T) {
	f := NewFields().
		WithTransaction("expense", "2024-01-15", "100.50", "Food").
		WithMonth(2024, 1).
		WithError(errors.New("boom")).
		WithError(nil)
	if f[FieldAmount] != "100.50" || f[FieldMonth] != 1 || f[FieldError] != "boom" {
		t.Fatalf("unexpected fields %v", f)
	}
	if len(f.ToSlice()) != len(f)*2 {
		t.Fatalf("unexpected slice length")
	}
}

func TestStructuredLogger(t *testing.T) {
	var buf bytes.Buffer
	sl := NewStructuredLogger(New(Config{Writer: &buf, Level: slog.LevelDebug, Component: ComponentLedger}))
	ctx := context.Background()

	sl.LogTransactionRecorded(ctx, "expense", "2024-01-15", "100.50", "Food", "mem:1")
	if out := buf.String(); !strings.Contains(out, "ref=mem:1") || !strings.Contains(out, "operation=append") {
		t.Fatalf("unexpected recorded line %q", out)
	}

	buf.Reset()
	sl.LogRejected(ctx, OpReport, errors.New("bad month"))
	if out := buf.String(); !strings.Contains(out, "level=DEBUG") || !strings.Contains(out, "error_type=validation_error") {
		t.Fatalf("unexpected rejected line %q", out)
	}

	buf.Reset()
	sl.LogStoreFailure(ctx, OpList, errors.New("disk gone"), nil)
	out := buf.String()
	if !strings.Contains(out, "level=ERROR") || !strings.Contains(out, "error_type=database_error") || !strings.Contains(out, `error="disk gone"`) {
		t.Fatalf("unexpected failure line %q", out)
	}
	if strings.Count(out, "component=") != 1 {
		t.Fatalf("component should appear once: %q", out)
	}
}
