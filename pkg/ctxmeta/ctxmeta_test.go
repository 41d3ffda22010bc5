package ctxmeta_test

import (
	"context"
	"testing"

	"github.com/Gunvolt24/cafe_order/pkg/ctxmeta"
	"github.com/google/uuid"
)

func TestWithRequestID_PutAndGet(t *testing.T) {
	parent := context.Background()

	ctx := ctxmeta.WithRequestID(parent, "req-123")
	got, ok := ctxmeta.RequestIDFromContext(ctx)
	if !ok || got != "req-123" {
		t.Fatalf("want ok=true, id=req-123; got ok=%v id=%q", ok, got)
	}

	// Родитель не должен содержать request_id
	if _, parentOk := ctxmeta.RequestIDFromContext(parent); parentOk {
		t.Fatalf("parent context must not contain request_id")
	}
}

func TestWithRequestID_EmptyID_NoChange(t *testing.T) {
	parent := context.Background()
	ctx := ctxmeta.WithRequestID(parent, "")
	if ctx != parent {
		t.Fatalf("WithRequestID with empty id must return the same ctx")
	}
}

func TestRequestIDFromContext_EmptyStoredValue(t *testing.T) {
	// Даже если ключ верный, пустое значение считаем отсутствующим
	ctx := context.WithValue(context.Background(), ctxmeta.KeyRequestID, "")
	id, ok := ctxmeta.RequestIDFromContext(ctx)
	if ok || id != "" {
		t.Fatalf("empty stored value must be treated as absent, got id=%q ok=%v", id, ok)
	}
}

func TestEnsureRequestID_KeepsExisting(t *testing.T) {
	ctx := ctxmeta.WithRequestID(context.Background(), "given")

	got, id := ctxmeta.EnsureRequestID(ctx)
	if id != "given" || got != ctx {
		t.Fatalf("existing request_id must be kept, got id=%q", id)
	}
}

func TestEnsureRequestID_GeneratesUUID(t *testing.T) {
	ctx, id := ctxmeta.EnsureRequestID(context.Background())
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("generated id must be UUID, got %q: %v", id, err)
	}
	if got, ok := ctxmeta.RequestIDFromContext(ctx); !ok || got != id {
		t.Fatalf("generated id must be stored in ctx, got %q ok=%v", got, ok)
	}
}
