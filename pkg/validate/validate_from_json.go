package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/cafe_order/internal/domain"
	"github.com/Gunvolt24/cafe_order/internal/ports"
)

// ItemFromJSON — строгий разбор товара каталога из JSON (без неизвестных полей и хвоста) и валидация.
// Используется CLI validate-catalog и импортом каталога из Kafka.
func ItemFromJSON(ctx context.Context, validator ports.CatalogValidator, raw []byte) (*domain.CatalogItem, error) {
	var item domain.CatalogItem
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&item); err != nil {
		return nil, fmt.Errorf("%w: invalid json: %v", ErrInvalidItem, err)
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("%w: invalid json: trailing data", ErrInvalidItem)
	}
	if err := validator.Validate(ctx, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// ItemsFromJSONArray — разбор файла каталога целиком (JSON-массив, формат catalog.json).
// Возвращает валидные товары и количество отброшенных.
func ItemsFromJSONArray(ctx context.Context, validator ports.CatalogValidator, raw []byte) ([]domain.CatalogItem, int, error) {
	var rawItems []json.RawMessage
	if err := json.Unmarshal(raw, &rawItems); err != nil {
		return nil, 0, fmt.Errorf("invalid json array: %w", err)
	}

	valid := make([]domain.CatalogItem, 0, len(rawItems))
	invalid := 0
	for _, r := range rawItems {
		item, err := ItemFromJSON(ctx, validator, r)
		if err != nil {
			invalid++
			continue
		}
		valid = append(valid, *item)
	}
	return valid, invalid, nil
}
