package ports

import (
	"context"

	"github.com/Gunvolt24/cafe_order/internal/domain"
)

// EventPublisher — публикация событий изменения заказа (best effort).
type EventPublisher interface {
	Publish(ctx context.Context, event domain.OrderEvent) error
	Close() error
}
