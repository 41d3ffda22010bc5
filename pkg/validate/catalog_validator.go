package validate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Gunvolt24/cafe_order/internal/domain"
	"github.com/Gunvolt24/cafe_order/internal/ports"
)

// Проверка, что CatalogValidator удовлетворяет интерфейсу CatalogValidator.
var _ ports.CatalogValidator = (*CatalogValidator)(nil)

// ErrInvalidItem — базовая (sentinel error) ошибка валидации товара каталога.
var ErrInvalidItem = errors.New("catalog item validation failed")

const (
	maxSKULen  = 64
	maxNameLen = 200
	maxUnitLen = 32
)

// CatalogValidator — валидация товара каталога.
// SKU — ключ слияния позиций заказа, поэтому он обязан быть непустым и без пробелов.
type CatalogValidator struct{}

// NewCatalogValidator — конструктор CatalogValidator.
// Возвращает ErrInvalidItem (с обёрнутой причиной) при любой проблеме.
func NewCatalogValidator() *CatalogValidator { return &CatalogValidator{} }

// Validate — проверяет поля товара.
func (v *CatalogValidator) Validate(_ context.Context, item *domain.CatalogItem) error {
	if item == nil {
		return fmt.Errorf("%w: товар не может быть nil", ErrInvalidItem)
	}
	if err := v.validateSKU(item.SKU); err != nil {
		return err
	}
	if err := requiredText("name", item.Name, maxNameLen); err != nil {
		return err
	}
	return requiredText("unit", item.Unit, maxUnitLen)
}

// validateSKU — sku обязателен, без пробельных символов, ограниченной длины.
func (v *CatalogValidator) validateSKU(sku string) error {
	if sku == "" {
		return fmt.Errorf("%w: sku обязателен", ErrInvalidItem)
	}
	if utf8.RuneCountInString(sku) > maxSKULen {
		return fmt.Errorf("%w: sku длиннее %d символов", ErrInvalidItem, maxSKULen)
	}
	if strings.IndexFunc(sku, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: sku не должен содержать пробелы", ErrInvalidItem)
	}
	return nil
}

func requiredText(field, value string, maxLen int) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s обязателен", ErrInvalidItem, field)
	}
	if utf8.RuneCountInString(value) > maxLen {
		return fmt.Errorf("%w: %s длиннее %d символов", ErrInvalidItem, field, maxLen)
	}
	return nil
}
