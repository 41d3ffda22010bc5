package ports

import (
	"context"

	"github.com/Gunvolt24/cafe_order/internal/domain"
)

// CatalogRepository — хранилище каталога товаров. List возвращает товары в порядке добавления.
type CatalogRepository interface {
	List(ctx context.Context) ([]domain.CatalogItem, error)
	Add(ctx context.Context, item domain.CatalogItem) error
}
