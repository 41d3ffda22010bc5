package logger

import (
	"context"
	"testing"

	"github.com/Gunvolt24/cafe_order/pkg/ctxmeta"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_AddsRequestID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := wrap(zap.New(core), false)

	ctx := ctxmeta.WithRequestID(context.Background(), "req-7")
	l.Infof(ctx, "added sku=%s", "A1")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("want 1 entry, got %d", len(entries))
	}
	if entries[0].Message != "added sku=A1" {
		t.Fatalf("unexpected message: %q", entries[0].Message)
	}
	if got := entries[0].ContextMap()["request_id"]; got != "req-7" {
		t.Fatalf("request_id field: want req-7, got %v", got)
	}
}

func TestZapLogger_NoMetaWithoutContextValues(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	l := wrap(zap.New(core), false).Named("widget")

	l.Infof(context.Background(), "below level")
	l.Warnf(context.Background(), "sync failed")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("want 1 entry (warn only), got %d", len(entries))
	}
	if _, ok := entries[0].ContextMap()["request_id"]; ok {
		t.Fatalf("request_id must be absent")
	}
	if entries[0].LoggerName != "widget" {
		t.Fatalf("logger name: want widget, got %q", entries[0].LoggerName)
	}
}
