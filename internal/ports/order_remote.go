package ports

import (
	"context"

	"github.com/Gunvolt24/cafe_order/internal/domain"
)

// OrderRemote — сетевые вызовы, от которых зависит виджет заказа.
// Ни один метод не делает повторов: одна попытка, ошибка видна вызывающему.
type OrderRemote interface {
	AddToOrder(ctx context.Context, sku string, qty int) error
	RemoveFromOrder(ctx context.Context, sku string) error
	OrderSummary(ctx context.Context) ([]domain.SummaryLine, error)
}
