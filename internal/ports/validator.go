package ports

import (
	"context"

	"github.com/Gunvolt24/cafe_order/internal/domain"
)

type CatalogValidator interface {
	Validate(ctx context.Context, item *domain.CatalogItem) error
}
