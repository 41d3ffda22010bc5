//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/Gunvolt24/cafe_order/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// Мини-генератор валидного товара каталога
func MakeCatalogItem(opts ...func(*domain.CatalogItem)) domain.CatalogItem {
	suffix := UniqSuffix()
	item := domain.CatalogItem{
		SKU:  "SKU-" + strings.ToUpper(suffix),
		Name: "Item " + suffix,
		Unit: "case",
	}
	for _, opt := range opts {
		opt(&item)
	}
	return item
}

func WithSKU(sku string) func(*domain.CatalogItem) {
	return func(it *domain.CatalogItem) { it.SKU = sku }
}

func WithName(name string) func(*domain.CatalogItem) {
	return func(it *domain.CatalogItem) { it.Name = name }
}

func WithUnit(unit string) func(*domain.CatalogItem) {
	return func(it *domain.CatalogItem) { it.Unit = unit }
}
