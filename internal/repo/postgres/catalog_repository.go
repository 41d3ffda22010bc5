package postgres

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/cafe_order/internal/domain"
	"github.com/Gunvolt24/cafe_order/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что CatalogRepository удовлетворяет интерфейсу CatalogRepository.
var _ ports.CatalogRepository = (*CatalogRepository)(nil)

// CatalogRepository — каталог товаров на Postgres (pgxpool).
type CatalogRepository struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository - конструктор CatalogRepository.
func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

// List — все товары в порядке добавления (position).
func (r *CatalogRepository) List(ctx context.Context) ([]domain.CatalogItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT sku, name, unit
		FROM catalog_items
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("select catalog: %w", err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByPos[domain.CatalogItem])
	if err != nil {
		return nil, fmt.Errorf("scan catalog: %w", err)
	}
	return items, nil
}

// Add — идемпотентный upsert по sku; позиция в каталоге при обновлении сохраняется.
func (r *CatalogRepository) Add(ctx context.Context, item domain.CatalogItem) error {
	if _, err := r.pool.Exec(ctx, `
		INSERT INTO catalog_items (sku, name, unit)
		VALUES ($1, $2, $3)
		ON CONFLICT (sku) DO UPDATE SET
			name = EXCLUDED.name,
			unit = EXCLUDED.unit,
			updated_at = now()
	`, item.SKU, item.Name, item.Unit); err != nil {
		return fmt.Errorf("upsert catalog item: %w", err)
	}
	return nil
}
