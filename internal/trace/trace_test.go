package trace

import (
	"context"
	"strings"
	"testing"
)

func TestNewCommandID(t *testing.T) {
	a, b := NewCommandID(), NewCommandID()
	if !strings.HasPrefix(a, "cmd_") || len(a) != len("cmd_")+16 {
		t.Fatalf("unexpected id %q", a)
	}
	if a == b {
		t.Fatal("ids should differ")
	}
}

func TestCommandIDContext(t *testing.T) {
	if id := CommandID(context.Background()); id != "" {
		t.Fatalf("expected empty id, got %q", id)
	}

	ctx := WithCommandID(context.Background())
	if id := CommandID(ctx); !strings.HasPrefix(id, "cmd_") {
		t.Fatalf("expected id in context, got %q", id)
	}
}
