package kafka

import (
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// ConsumerConfig — параметры импорта каталога из Kafka.
type ConsumerConfig struct {
	Brokers     []string
	Topic       string
	GroupID     string
	StartOffset string // first|last, регистр и пробелы не важны

	ProcessTimeout time.Duration
	RetryInitial   time.Duration
	RetryMax       time.Duration
}

// ReaderConfig — kafka.ReaderConfig с ручным коммитом оффсетов.
func (c *ConsumerConfig) ReaderConfig() kafka.ReaderConfig {
	rc := kafka.ReaderConfig{
		Brokers:        c.Brokers,
		GroupID:        c.GroupID,
		Topic:          c.Topic,
		CommitInterval: 0,
	}

	switch strings.ToLower(strings.TrimSpace(c.StartOffset)) {
	case "first":
		rc.StartOffset = kafka.FirstOffset
	default:
		rc.StartOffset = kafka.LastOffset
	}

	return rc
}

// PublisherConfig — параметры публикации событий заказа.
type PublisherConfig struct {
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
}

// publishBatchTimeout — сколько writer ждёт наполнения пачки. Publish вызывается
// синхронно из HTTP-запроса, дефолт kafka-go (1s) добавлялся бы к каждому ответу.
const publishBatchTimeout = 10 * time.Millisecond

// Writer — kafka.Writer: ключ сообщения — SKU, поэтому Hash-балансировщик держит
// события одной позиции в одной партиции. Каждое событие уходит отдельной пачкой.
func (c *PublisherConfig) Writer() *kafka.Writer {
	wt := c.WriteTimeout
	if wt <= 0 {
		wt = 5 * time.Second
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(c.Brokers...),
		Topic:                  c.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchSize:              1,
		BatchTimeout:           publishBatchTimeout,
		WriteTimeout:           wt,
		AllowAutoTopicCreation: true,
	}
}
