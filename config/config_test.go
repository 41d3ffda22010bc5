package config_test

import (
	"slices"
	"testing"
	"time"

	cfg "github.com/Gunvolt24/cafe_order/config"
)

// TestLoadWithPrefix_Defaults — проверка наличия значений по умолчанию.
func TestLoadWithPrefix_Defaults(t *testing.T) {
	t.Parallel()

	c, err := cfg.LoadWithPrefix("ORDER_TEST_DEFAULTS")
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	// HTTP
	if c.HTTP.Addr != ":8080" {
		t.Fatalf("HTTP.Addr: want :8080, got %q", c.HTTP.Addr)
	}
	if c.HTTP.GinMode != "debug" {
		t.Fatalf("HTTP.GinMode: want debug, got %q", c.HTTP.GinMode)
	}
	if c.HTTP.ReadTimeout != 10*time.Second || c.HTTP.WriteTimeout != 10*time.Second {
		t.Fatalf("HTTP timeouts wrong: %+v", c.HTTP)
	}
	if c.HTTP.ReadHeaderTimeout != 5*time.Second || c.HTTP.IdleTimeout != 60*time.Second {
		t.Fatalf("HTTP header/idle timeouts wrong: %+v", c.HTTP)
	}
	if c.HTTP.HandlerTimeout != 3*time.Second || c.HTTP.GracefulTimeout != 10*time.Second {
		t.Fatalf("HTTP handler/graceful timeouts wrong: %+v", c.HTTP)
	}

	// Metrics
	if c.Metrics.Addr != ":2112" {
		t.Fatalf("Metrics.Addr: want :2112, got %q", c.Metrics.Addr)
	}

	// Tracing
	if c.Tracing.Enabled {
		t.Fatalf("Tracing.Enabled: want false, got true")
	}
	if c.Tracing.ServiceName != "cafe-order" || c.Tracing.Endpoint != "jaeger:4318" || c.Tracing.SampleRatio != 1 {
		t.Fatalf("Tracing defaults wrong: %+v", c.Tracing)
	}

	// Catalog
	if c.Catalog.Backend != "file" || c.Catalog.Path != "catalog.json" ||
		c.Catalog.CacheSize != 128 || c.Catalog.CacheTTL != 30*time.Second {
		t.Fatalf("Catalog defaults wrong: %+v", c.Catalog)
	}

	// Postgres
	if c.Postgres.DSN == "" {
		t.Fatalf("Postgres.DSN should have default, got empty")
	}
	if c.Postgres.MaxConns != 10 {
		t.Fatalf("Postgres.MaxConns: want 10, got %d", c.Postgres.MaxConns)
	}

	// Kafka
	if c.Kafka.Enabled {
		t.Fatalf("Kafka.Enabled: want false")
	}
	if !slices.Equal(c.Kafka.Brokers, []string{"kafka:9092"}) {
		t.Fatalf("Kafka.Brokers: want [kafka:9092], got %v", c.Kafka.Brokers)
	}
	if c.Kafka.CatalogTopic != "catalog-items" || c.Kafka.EventsTopic != "order-events" ||
		c.Kafka.GroupID != "cafe-order" || c.Kafka.StartOffset != "last" {
		t.Fatalf("Kafka defaults wrong: %+v", c.Kafka)
	}
	if c.Kafka.ProcessTimeout != 5*time.Second || c.Kafka.RetryInitial != 1*time.Second || c.Kafka.RetryMax != 30*time.Second {
		t.Fatalf("Kafka timeouts wrong: %+v", c.Kafka)
	}

	// Email
	if c.Email.Business != "Redchurch Cafe" || c.Email.Greeting != "Hello," {
		t.Fatalf("Email defaults wrong: %+v", c.Email)
	}

	// Widget
	if c.Widget.ServerURL != "http://localhost:8080" || c.Widget.RequestTimeout != 5*time.Second {
		t.Fatalf("Widget defaults wrong: %+v", c.Widget)
	}

	// Logger
	if c.Logger.IsProd {
		t.Fatalf("Logger.IsProd: want false, got true")
	}
}

// Меняем окружение.
func TestLoadWithPrefix_Overrides(t *testing.T) {
	const p = "ORDER_TEST_OVR"

	// HTTP
	t.Setenv(p+"_HTTP_ADDR", ":9999")
	t.Setenv(p+"_HTTP_GIN_MODE", "release")
	t.Setenv(p+"_HTTP_READ_TIMEOUT", "2s")
	t.Setenv(p+"_HTTP_WRITE_TIMEOUT", "3s")
	t.Setenv(p+"_HTTP_READ_HEADER_TIMEOUT", "1s")
	t.Setenv(p+"_HTTP_IDLE_TIMEOUT", "15s")
	t.Setenv(p+"_HTTP_HANDLER_TIMEOUT", "4500ms")

	// Metrics
	t.Setenv(p+"_METRICS_ADDR", ":9998")

	// Tracing
	t.Setenv(p+"_TRACING_OTEL_ENABLED", "true")
	t.Setenv(p+"_TRACING_OTEL_SERVICE_NAME", "svc")
	t.Setenv(p+"_TRACING_OTEL_ENDPOINT", "collector:4318")
	t.Setenv(p+"_TRACING_OTEL_SAMPLE_RATIO", "0.25")

	// Catalog
	t.Setenv(p+"_CATALOG_BACKEND", "postgres")
	t.Setenv(p+"_CATALOG_FILE", "/data/catalog.json")
	t.Setenv(p+"_CATALOG_CACHE_SIZE", "0")
	t.Setenv(p+"_CATALOG_CACHE_TTL", "1m")

	// Postgres
	t.Setenv(p+"_POSTGRES_DSN", "postgres://u:p@h:5432/db?sslmode=disable")
	t.Setenv(p+"_POSTGRES_MAX_CONNS", "42")

	// Kafka
	t.Setenv(p+"_KAFKA_ENABLED", "true")
	t.Setenv(p+"_KAFKA_BROKERS", "k1:9092,k2:9093")
	t.Setenv(p+"_KAFKA_CATALOG_TOPIC", "catalog-test")
	t.Setenv(p+"_KAFKA_EVENTS_TOPIC", "events-test")
	t.Setenv(p+"_KAFKA_GROUP_ID", "g-test")
	t.Setenv(p+"_KAFKA_START_OFFSET", "first")
	t.Setenv(p+"_KAFKA_PROCESS_TIMEOUT", "7s")
	t.Setenv(p+"_KAFKA_RETRY_INITIAL", "250ms")
	t.Setenv(p+"_KAFKA_RETRY_MAX", "2m")

	// Email
	t.Setenv(p+"_EMAIL_BUSINESS", "Corner Bakery")
	t.Setenv(p+"_EMAIL_SIGNATURE", "Cheers,|Sam")

	// Widget
	t.Setenv(p+"_WIDGET_SERVER_URL", "http://orders:8080")
	t.Setenv(p+"_WIDGET_REQUEST_TIMEOUT", "750ms")

	// Logger
	t.Setenv(p+"_LOGGER_IS_PROD", "true")

	c, err := cfg.LoadWithPrefix(p)
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	// Проверки
	if c.HTTP.Addr != ":9999" || c.HTTP.GinMode != "release" {
		t.Fatalf("HTTP overrides wrong: %+v", c.HTTP)
	}
	if c.HTTP.ReadTimeout != 2*time.Second || c.HTTP.WriteTimeout != 3*time.Second ||
		c.HTTP.ReadHeaderTimeout != 1*time.Second || c.HTTP.IdleTimeout != 15*time.Second ||
		c.HTTP.HandlerTimeout != 4500*time.Millisecond {
		t.Fatalf("HTTP timeouts override wrong: %+v", c.HTTP)
	}
	if c.Metrics.Addr != ":9998" {
		t.Fatalf("Metrics.Addr override wrong: %q", c.Metrics.Addr)
	}
	if !c.Tracing.Enabled || c.Tracing.ServiceName != "svc" || c.Tracing.Endpoint != "collector:4318" || c.Tracing.SampleRatio != 0.25 {
		t.Fatalf("Tracing overrides wrong: %+v", c.Tracing)
	}
	if c.Catalog.Backend != "postgres" || c.Catalog.Path != "/data/catalog.json" ||
		c.Catalog.CacheSize != 0 || c.Catalog.CacheTTL != time.Minute {
		t.Fatalf("Catalog overrides wrong: %+v", c.Catalog)
	}
	if c.Postgres.DSN != "postgres://u:p@h:5432/db?sslmode=disable" || c.Postgres.MaxConns != 42 {
		t.Fatalf("Postgres overrides wrong: %+v", c.Postgres)
	}
	if !c.Kafka.Enabled || !slices.Equal(c.Kafka.Brokers, []string{"k1:9092", "k2:9093"}) ||
		c.Kafka.CatalogTopic != "catalog-test" || c.Kafka.EventsTopic != "events-test" ||
		c.Kafka.GroupID != "g-test" || c.Kafka.StartOffset != "first" {
		t.Fatalf("Kafka basic overrides wrong: %+v", c.Kafka)
	}
	if c.Kafka.ProcessTimeout != 7*time.Second || c.Kafka.RetryInitial != 250*time.Millisecond || c.Kafka.RetryMax != 2*time.Minute {
		t.Fatalf("Kafka timeouts override wrong: %+v", c.Kafka)
	}
	if c.Email.Business != "Corner Bakery" || c.Email.Signature != "Cheers,|Sam" {
		t.Fatalf("Email overrides wrong: %+v", c.Email)
	}
	if c.Widget.ServerURL != "http://orders:8080" || c.Widget.RequestTimeout != 750*time.Millisecond {
		t.Fatalf("Widget overrides wrong: %+v", c.Widget)
	}
	if !c.Logger.IsProd {
		t.Fatalf("Logger.IsProd override wrong: %+v", c.Logger)
	}
}

// Тоже меняем окружение — но с невалидным значением.
func TestLoadWithPrefix_InvalidValue_ReturnsError(t *testing.T) {
	const p = "ORDER_TEST_BAD"
	t.Setenv(p+"_HTTP_READ_TIMEOUT", "not-a-duration")

	if _, err := cfg.LoadWithPrefix(p); err == nil {
		t.Fatalf("expected error for invalid duration, got nil")
	}
}
