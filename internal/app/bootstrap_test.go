package app_test

import (
	"context"
	"net/http"
	"path/filepath"
	"slices"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Gunvolt24/cafe_order/config"
	"github.com/Gunvolt24/cafe_order/internal/app"
)

// логгер-заглушка
type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

// фейковый консьюмер, который ждёт отмены контекста
type fakeConsumer struct {
	runCalls   int32
	closeCalls int32
}

func (f *fakeConsumer) Run(ctx context.Context) error {
	atomic.AddInt32(&f.runCalls, 1)
	<-ctx.Done()
	return ctx.Err()
}
func (f *fakeConsumer) Close() error {
	atomic.AddInt32(&f.closeCalls, 1)
	return nil
}

func TestAppRun_GracefulShutdown(t *testing.T) {
	// HTTP-сервер на случайном свободном порту
	srv := &http.Server{
		Addr:    "127.0.0.1:0",
		Handler: http.NewServeMux(),
	}

	fc := &fakeConsumer{}
	a := &app.App{
		Logger:        nopLogger{},
		HTTPServer:    srv,
		KafkaConsumer: fc,
	}

	// Запуск и быстрая остановка
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	if err := a.Run(ctx); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if atomic.LoadInt32(&fc.runCalls) == 0 {
		t.Fatalf("consumer.Run should be called")
	}
	if atomic.LoadInt32(&fc.closeCalls) == 0 {
		t.Fatalf("consumer.Close should be called")
	}
}

func TestAppRun_WithoutConsumer(t *testing.T) {
	srv := &http.Server{
		Addr:    "127.0.0.1:0",
		Handler: http.NewServeMux(),
	}
	a := &app.App{Logger: nopLogger{}, HTTPServer: srv}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	if err := a.Run(ctx); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
}

func TestEmailSettings_SplitsSignature(t *testing.T) {
	t.Parallel()

	got := app.EmailSettings(config.Email{
		Business:  "Redchurch Cafe",
		Greeting:  "Hello,",
		Signature: "Thank you,| Manager ||Redchurch Cafe",
	})

	want := []string{"Thank you,", "Manager", "Redchurch Cafe"}
	if !slices.Equal(got.Signature, want) {
		t.Fatalf("Signature: want %q, got %q", want, got.Signature)
	}
	if got.Business != "Redchurch Cafe" || got.Greeting != "Hello," {
		t.Fatalf("unexpected settings: %+v", got)
	}
}

func TestBootstrap_FileCatalog(t *testing.T) {
	cfg := testConfig(t)

	a, cleanup, err := app.Bootstrap(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	defer cleanup()

	if a.KafkaConsumer != nil {
		t.Fatalf("kafka is disabled, consumer must be nil")
	}
	if a.MetricsServer != nil {
		t.Fatalf("metrics addr is empty, metrics server must be nil")
	}
	if a.HTTPServer.Handler == nil || a.HTTPServer.ReadHeaderTimeout != cfg.HTTP.ReadHeaderTimeout {
		t.Fatalf("http server is not configured: %+v", a.HTTPServer)
	}
}

func TestBootstrap_MetricsListener(t *testing.T) {
	cfg := testConfig(t)
	cfg.Metrics.Addr = "127.0.0.1:0"

	a, cleanup, err := app.Bootstrap(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	defer cleanup()

	if a.MetricsServer == nil || a.MetricsServer.Addr != "127.0.0.1:0" {
		t.Fatalf("metrics server expected, got %+v", a.MetricsServer)
	}
}

func TestBootstrap_MetricsOnMainRouterWhenAddrMatches(t *testing.T) {
	cfg := testConfig(t)
	cfg.HTTP.Addr = "127.0.0.1:18080"
	cfg.Metrics.Addr = "127.0.0.1:18080"

	a, cleanup, err := app.Bootstrap(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	defer cleanup()

	if a.MetricsServer != nil {
		t.Fatalf("same fixed address: metrics must stay on the main router, got %+v", a.MetricsServer)
	}
}

func TestBootstrap_UnknownCatalogBackend(t *testing.T) {
	cfg := testConfig(t)
	cfg.Catalog.Backend = "sqlite"

	if _, _, err := app.Bootstrap(context.Background(), cfg); err == nil {
		t.Fatalf("want error for unknown backend")
	}
}

// testConfig — конфигурация по умолчанию с каталогом во временной директории.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadWithPrefix("APPTEST")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	cfg.HTTP.Addr = "127.0.0.1:0"
	cfg.HTTP.GinMode = "test"
	cfg.Metrics.Addr = ""
	cfg.Catalog.Backend = "file"
	cfg.Catalog.Path = filepath.Join(t.TempDir(), "catalog.json")
	return &cfg
}
