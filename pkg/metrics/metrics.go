package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Kafka: импорт каталога (consumer) и события заказа (publisher).
var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of messages processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of messages failed to process",
		},
		[]string{"topic"},
	)
	KafkaEventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_events_published_total",
			Help: "Order events written to Kafka",
		},
		[]string{"topic", "result"}, // ok|error
	)
)

// Заказ на сервере.
var (
	OrderOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_operations_total",
			Help: "Order mutations handled by the server",
		},
		[]string{"op"}, // add|merge|remove|remove_missing
	)
	OrderLines = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "order_lines",
			Help: "Number of lines currently in the order",
		},
	)
)

// Кэш поиска по каталогу.
var (
	CatalogCacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_search_cache_operations_total",
			Help: "Catalog search cache operations",
		},
		[]string{"op"}, // hit|miss|expired|evicted|purge
	)
	CatalogCacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_search_cache_size",
			Help: "Number of cached catalog queries",
		},
	)
)

// Виджет: вызовы Remote Sync Client.
var (
	SyncRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "widget_sync_requests_total",
			Help: "Widget calls to the order server",
		},
		[]string{"op", "result"}, // add|remove|summary|email ; ok|error
	)
)

func collectors() []prometheus.Collector {
	return []prometheus.Collector{
		KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed, KafkaEventsPublished,
		OrderOps, OrderLines, CatalogCacheOps, CatalogCacheSize, SyncRequests,
	}
}

// MustRegister — регистрирует метрики в глобальном реестре; повторный вызов не паникует.
func MustRegister() {
	for _, c := range collectors() {
		if err := prometheus.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			panic(err)
		}
	}
}
