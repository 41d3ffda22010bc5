package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/cafe_order/config"
	cachemem "github.com/Gunvolt24/cafe_order/internal/cache/memory"
	"github.com/Gunvolt24/cafe_order/internal/kafka"
	"github.com/Gunvolt24/cafe_order/internal/ports"
	"github.com/Gunvolt24/cafe_order/internal/repo/file"
	"github.com/Gunvolt24/cafe_order/internal/repo/memory"
	"github.com/Gunvolt24/cafe_order/internal/repo/postgres"
	rest "github.com/Gunvolt24/cafe_order/internal/transport/http"
	"github.com/Gunvolt24/cafe_order/internal/usecase"
	"github.com/Gunvolt24/cafe_order/pkg/logger"
	"github.com/Gunvolt24/cafe_order/pkg/metrics"
	"github.com/Gunvolt24/cafe_order/pkg/telemetry"
	"github.com/Gunvolt24/cafe_order/pkg/validate"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// App — собранное приложение и его внешние интерфейсы (HTTP, consumer).
type App struct {
	Logger          ports.Logger          // логгер
	HTTPServer      *http.Server          // HTTP-сервер
	MetricsServer   *http.Server          // отдельный листенер /metrics, может быть nil
	KafkaConsumer   ports.MessageConsumer // импорт каталога, nil если Kafka выключена
	gracefulTimeout time.Duration         // время ожидания завершения HTTP-сервера
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// separateMetricsListener — нужен ли отдельный сервер /metrics. Совпадающий с HTTP адрес
// означает «только основной роутер»; порт 0 у каждого листенера свой, такие адреса не совпадают.
func separateMetricsListener(metricsAddr, httpAddr string) bool {
	if metricsAddr == "" {
		return false
	}
	if _, port, err := net.SplitHostPort(metricsAddr); err == nil && port == "0" {
		return true
	}
	return metricsAddr != httpAddr
}

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// EmailSettings — настройки черновика письма из конфигурации.
func EmailSettings(cfg config.Email) usecase.EmailSettings {
	var signature []string
	for _, line := range strings.Split(cfg.Signature, "|") {
		if line = strings.TrimSpace(line); line != "" {
			signature = append(signature, line)
		}
	}
	return usecase.EmailSettings{
		Business:  cfg.Business,
		Greeting:  cfg.Greeting,
		Signature: signature,
	}
}

// openCatalog — хранилище каталога по cfg.Catalog.Backend; closer освобождает пул.
func openCatalog(ctx context.Context, cfg *config.Config, log ports.Logger) (ports.CatalogRepository, func(), error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Catalog.Backend)) {
	case "", "file":
		log.Infof(ctx, "catalog backend=file path=%s", cfg.Catalog.Path)
		return file.NewCatalogRepository(cfg.Catalog.Path), func() {}, nil
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
		if err != nil {
			return nil, nil, err
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		log.Infof(ctx, "catalog backend=postgres max_conns=%d", cfg.Postgres.MaxConns)
		return postgres.NewCatalogRepository(pool), pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown catalog backend %q", cfg.Catalog.Backend)
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Каталог: файл или Postgres.
	catalog, closeCatalog, err := openCatalog(ctx, cfg, logg)
	if err != nil {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// События заказа в Kafka (опционально). Nil-интерфейс — публикация выключена.
	var events ports.EventPublisher
	if cfg.Kafka.Enabled {
		events = kafka.NewPublisher(&kafka.PublisherConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.EventsTopic,
		}, logg)
	}

	var opts []usecase.Option
	if cfg.Catalog.CacheSize > 0 {
		opts = append(opts, usecase.WithSearchCache(cachemem.NewSearchCache(cfg.Catalog.CacheSize, cfg.Catalog.CacheTTL)))
	}

	// Сборка зависимостей доменного слоя.
	orderService := usecase.NewOrderService(
		memory.NewOrderBook(),
		catalog,
		validate.NewCatalogValidator(),
		events,
		logg,
		EmailSettings(cfg.Email),
		opts...,
	)

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(orderService, logg, cfg.HTTP.HandlerTimeout)
	router := rest.NewRouter(httpHandler, cfg.HTTP.StaticDir, otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	var metricsSrv *http.Server
	if separateMetricsListener(cfg.Metrics.Addr, cfg.HTTP.Addr) {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsSrv = &http.Server{
			Addr:              cfg.Metrics.Addr,
			Handler:           mux,
			ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		}
	}

	// Консьюмер Kafka: импорт каталога.
	var consumer *kafka.Consumer
	if cfg.Kafka.Enabled {
		consumer = kafka.NewConsumer(&kafka.ConsumerConfig{
			Brokers:        cfg.Kafka.Brokers,
			GroupID:        cfg.Kafka.GroupID,
			Topic:          cfg.Kafka.CatalogTopic,
			StartOffset:    cfg.Kafka.StartOffset,
			ProcessTimeout: cfg.Kafka.ProcessTimeout,
			RetryInitial:   cfg.Kafka.RetryInitial,
			RetryMax:       cfg.Kafka.RetryMax,
		}, orderService, logg)
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		MetricsServer:   metricsSrv,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}
	if consumer != nil {
		app.KafkaConsumer = consumer
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if consumer != nil {
			if err := consumer.Close(); err != nil {
				logg.Warnf(ctx, "kafka consumer close error: %v", err)
			}
		}
		if events != nil {
			if err := events.Close(); err != nil {
				logg.Warnf(ctx, "kafka publisher close error: %v", err)
			}
		}

		closeCatalog()
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

// Run — запускает HTTP-сервер и консьюмера; ждёт отмены контекста или ошибки и останавливает их.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 3)

	// Запуск консьюмера.
	if a.KafkaConsumer != nil {
		go func() {
			a.Logger.Infof(ctx, "kafka consumer starting")
			if err := a.KafkaConsumer.Run(ctx); err != nil {
				errCh <- err
			}
		}()
	}

	// Запуск HTTP-сервера.
	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	if a.MetricsServer != nil {
		go func() {
			a.Logger.Infof(ctx, "metrics server starting (addr=%s)", a.MetricsServer.Addr)
			if err := a.MetricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()
	}

	// Ожидание сигнала остановки или фоновой ошибки.
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			a.Logger.Infof(ctx, "background component stopped: %v", err)
		} else {
			a.Logger.Warnf(ctx, "background error: %v", err)
		}
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-сервера.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}
	if a.MetricsServer != nil {
		if err := a.MetricsServer.Shutdown(shutdownCtx); err != nil {
			a.Logger.Warnf(ctx, "metrics server shutdown failed: %v", err)
		}
	}

	// Остановка Kafka-консьюмера
	if a.KafkaConsumer != nil {
		if err := a.KafkaConsumer.Close(); err != nil {
			a.Logger.Warnf(ctx, "kafka consumer close error: %v", err)
		}
	}

	a.Logger.Infof(ctx, "service stopped")
	return nil
}
