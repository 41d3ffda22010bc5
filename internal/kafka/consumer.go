package kafka

import (
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/cafe_order/internal/ports"
	"github.com/Gunvolt24/cafe_order/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

var _ ports.MessageConsumer = (*Consumer)(nil)

// reader — то, что Consumer использует от kafka.Reader (подменяется моком в тестах).
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Config() kafka.ReaderConfig
	Close() error
}

// itemImporter — импорт одного товара каталога из сырого JSON.
type itemImporter interface {
	ImportFromMessage(ctx context.Context, raw []byte) error
}

// Consumer — импорт каталога из топика. Оффсет коммитится только после того,
// как сообщение обработано или признано невалидным (at-least-once).
type Consumer struct {
	reader         reader
	service        itemImporter
	log            ports.Logger
	processTimeout time.Duration
	fetchRetry     *backoff
	closeOnce      sync.Once
}

func NewConsumer(cfg *ConsumerConfig, service itemImporter, log ports.Logger) *Consumer {
	return &Consumer{
		reader:         kafka.NewReader(cfg.ReaderConfig()),
		service:        service,
		log:            log,
		processTimeout: orDefault(cfg.ProcessTimeout, 5*time.Second),
		fetchRetry: newBackoff(
			orDefault(cfg.RetryInitial, time.Second),
			orDefault(cfg.RetryMax, 30*time.Second),
		),
	}
}

// Run — цикл чтения до отмены ctx. Ошибка FetchMessage повторяется с растущей паузой,
// временная ошибка обработки оставляет оффсет незакоммиченным.
func (c *Consumer) Run(ctx context.Context) error {
	rc := c.reader.Config()
	c.log.Infof(ctx, "catalog consumer started topic=%s group_id=%s brokers=%v", rc.Topic, rc.GroupID, rc.Brokers)

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			wait := c.fetchRetry.Next()
			c.log.Warnf(ctx, "fetch failed: %v (retry in %s)", err, wait)
			if !sleepCtx(ctx, wait) {
				return ctx.Err()
			}
			continue
		}
		c.fetchRetry.Reset()
		metrics.KafkaMessagesConsumed.WithLabelValues(rc.Topic).Inc()

		switch c.handleMessage(ctx, rc.Topic, &msg) {
		case outcomeDone, outcomeSkip:
			c.commit(ctx, &msg)
		case outcomeRetry:
			_ = sleepCtx(ctx, c.fetchRetry.Jitter(min(c.fetchRetry.initial, 500*time.Millisecond)))
		}
	}
}

// Close — закрывает reader; повторный вызов ничего не делает.
func (c *Consumer) Close() (err error) {
	c.closeOnce.Do(func() { err = c.reader.Close() })
	return err
}
