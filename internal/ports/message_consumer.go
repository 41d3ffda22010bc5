package ports

import "context"

// MessageConsumer — фоновый потребитель сообщений (импорт каталога из Kafka).
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}
