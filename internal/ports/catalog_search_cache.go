package ports

import (
	"context"

	"github.com/Gunvolt24/cafe_order/internal/domain"
)

// CatalogSearchCache — кэш результатов поиска по каталогу. Purge вызывается при изменении каталога.
type CatalogSearchCache interface {
	Get(ctx context.Context, query string) ([]domain.CatalogItem, bool)
	Set(ctx context.Context, query string, items []domain.CatalogItem)
	Purge(ctx context.Context)
}
