package ports

import (
	"context"
	"time"

	"github.com/Gunvolt24/cafe_order/internal/domain"
)

// EmailDraft — ссылки на черновик письма с заказом.
type EmailDraft struct {
	Gmail  string `json:"gmail"`
	Mailto string `json:"mailto"`
}

// OrderService — сервис заказа, который обслуживает HTTP-слой.
type OrderService interface {
	AddToOrder(ctx context.Context, sku string, qty int) (int, error)
	RemoveFromOrder(ctx context.Context, sku string) error
	Summary(ctx context.Context) ([]domain.SummaryLine, error)
	EmailDraft(ctx context.Context, now time.Time) (EmailDraft, error)

	SearchCatalog(ctx context.Context, query string) ([]domain.CatalogItem, error)
	AddCatalogItem(ctx context.Context, item domain.CatalogItem) error
}
