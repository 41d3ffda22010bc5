package kafka

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/Gunvolt24/cafe_order/pkg/ctxmeta"
	"github.com/Gunvolt24/cafe_order/pkg/metrics"
	"github.com/Gunvolt24/cafe_order/pkg/validate"
	"github.com/segmentio/kafka-go"
)

type outcome int

const (
	outcomeDone  outcome = iota // сохранено, коммитим
	outcomeSkip                 // невалидно, коммитим и забываем
	outcomeRetry                // временная ошибка, без коммита
)

// handleMessage — импорт одного сообщения с таймаутом processTimeout.
// X-Request-ID из заголовков сообщения попадает в контекст и логи импорта.
func (c *Consumer) handleMessage(ctx context.Context, topic string, msg *kafka.Message) outcome {
	ctx = ctxmeta.WithRequestID(ctx, headerValue(msg.Headers, ctxmeta.HeaderRequestID))

	procCtx, cancel := context.WithTimeout(ctx, c.processTimeout)
	defer cancel()

	err := c.service.ImportFromMessage(procCtx, msg.Value)
	switch {
	case err == nil:
		metrics.KafkaMessagesProcessed.WithLabelValues(topic).Inc()
		return outcomeDone
	case errors.Is(err, validate.ErrInvalidItem):
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "skip invalid message partition=%d offset=%d: %v", msg.Partition, msg.Offset, err)
		return outcomeSkip
	default:
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "import failed partition=%d offset=%d: %v (left uncommitted)", msg.Partition, msg.Offset, err)
		return outcomeRetry
	}
}

func (c *Consumer) commit(ctx context.Context, msg *kafka.Message) {
	if err := c.reader.CommitMessages(ctx, *msg); err != nil {
		c.log.Warnf(ctx, "commit failed offset=%d: %v", msg.Offset, err)
	}
}

func headerValue(headers []kafka.Header, key string) string {
	for _, h := range headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

// backoff — экспоненциальная пауза (x2 до max) с equal-jitter: половина фиксирована,
// половина случайна. Не потокобезопасен, принадлежит одному циклу Run.
type backoff struct {
	initial, max time.Duration
	cur          time.Duration
	rnd          *rand.Rand
}

func newBackoff(initial, limit time.Duration) *backoff {
	return &backoff{
		initial: initial,
		max:     limit,
		cur:     initial,
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Next — пауза для текущей попытки; следующая будет вдвое длиннее.
func (b *backoff) Next() time.Duration {
	d := b.Jitter(b.cur)
	b.cur = min(b.cur*2, b.max)
	return d
}

func (b *backoff) Reset() { b.cur = b.initial }

func (b *backoff) Jitter(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2
	return half + time.Duration(b.rnd.Int63n(int64(d-half)+1))
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}
