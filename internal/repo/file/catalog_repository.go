package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/Gunvolt24/cafe_order/internal/domain"
	"github.com/Gunvolt24/cafe_order/internal/ports"
)

// Проверка, что CatalogRepository удовлетворяет интерфейсу CatalogRepository.
var _ ports.CatalogRepository = (*CatalogRepository)(nil)

// CatalogRepository — каталог в JSON-файле (массив {sku,name,unit}).
// Файл читается на каждый List, так что ручные правки подхватываются без перезапуска.
// Отсутствующий файл — пустой каталог.
type CatalogRepository struct {
	path string
	mu   sync.Mutex
}

func NewCatalogRepository(path string) *CatalogRepository {
	return &CatalogRepository{path: path}
}

func (r *CatalogRepository) List(_ context.Context) ([]domain.CatalogItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// Add — добавляет товар в конец каталога; существующий SKU обновляется на месте.
func (r *CatalogRepository) Add(_ context.Context, item domain.CatalogItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load()
	if err != nil {
		return err
	}

	replaced := false
	for i := range items {
		if items[i].SKU == item.SKU {
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, item)
	}
	return r.save(items)
}

func (r *CatalogRepository) load() ([]domain.CatalogItem, error) {
	raw, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []domain.CatalogItem{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var items []domain.CatalogItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", r.path, err)
	}
	if items == nil {
		items = []domain.CatalogItem{}
	}
	return items, nil
}

// save — запись через временный файл и rename, чтобы не оставить обрезанный каталог.
func (r *CatalogRepository) save(items []domain.CatalogItem) error {
	raw, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".catalog-*.json")
	if err != nil {
		return fmt.Errorf("create temp catalog: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("write catalog: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close catalog: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("replace catalog: %w", err)
	}
	return nil
}
