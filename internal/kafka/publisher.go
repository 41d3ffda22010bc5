package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/Gunvolt24/cafe_order/internal/domain"
	"github.com/Gunvolt24/cafe_order/internal/ports"
	"github.com/Gunvolt24/cafe_order/pkg/ctxmeta"
	"github.com/Gunvolt24/cafe_order/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

var _ ports.EventPublisher = (*Publisher)(nil)

// messageWriter — минимальный контракт над kafka.Writer.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher — пишет события заказа в топик, ключ сообщения — SKU.
type Publisher struct {
	writer    messageWriter
	topic     string
	log       ports.Logger
	closeOnce sync.Once
}

// NewPublisher — конструктор поверх kafka.Writer из PublisherConfig.
func NewPublisher(cfg *PublisherConfig, log ports.Logger) *Publisher {
	return &Publisher{writer: cfg.Writer(), topic: cfg.Topic, log: log}
}

// Publish — синхронная запись одного события.
func (p *Publisher) Publish(ctx context.Context, event domain.OrderEvent) error {
	raw, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal order event: %w", err)
	}

	msg := kafka.Message{Key: []byte(event.SKU), Value: raw}
	if rid, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		msg.Headers = append(msg.Headers, kafka.Header{Key: "X-Request-ID", Value: []byte(rid)})
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		metrics.KafkaEventsPublished.WithLabelValues(p.topic, "error").Inc()
		return fmt.Errorf("write order event: %w", err)
	}
	metrics.KafkaEventsPublished.WithLabelValues(p.topic, "ok").Inc()
	p.log.Infof(ctx, "order event published type=%s sku=%s total=%d", event.Type, event.SKU, event.Total)
	return nil
}

// Close — сбрасывает буфер writer'а. Повторный вызов — no-op.
func (p *Publisher) Close() (retErr error) {
	p.closeOnce.Do(func() {
		retErr = p.writer.Close()
	})
	return retErr
}
