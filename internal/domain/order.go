package domain

import (
	"fmt"
	"time"
)

// OrderLine — одна объединённая позиция заказа (весь объём, добавленный под одним ключом).
// Label и Unit фиксируются первым добавлением и больше не пересчитываются.
type OrderLine struct {
	Key      string `json:"sku"`
	Quantity int    `json:"qty"`
	Label    string `json:"name"`
	Unit     string `json:"unit"`
}

// AddIntent — намерение «добавить в заказ», формируется отправкой формы.
type AddIntent struct {
	Key          string
	Label        string
	Unit         string
	RequestedQty int
}

// RemoveIntent — намерение «убрать позицию целиком».
type RemoveIntent struct {
	Key string
}

// SummaryLine — запись ответа GET /order_summary (авторитетное состояние заказа на сервере).
type SummaryLine struct {
	SKU  string `json:"sku"`
	Name string `json:"name"`
	Unit string `json:"unit"`
	Qty  int    `json:"qty"`
}

// Line — перевод записи сервера в позицию локального хранилища.
func (s SummaryLine) Line() OrderLine {
	return OrderLine{Key: s.SKU, Quantity: s.Qty, Label: s.Name, Unit: s.Unit}
}

// OrderEventType — тип события изменения заказа.
type OrderEventType string

const (
	// OrderEventLineAdded — количество позиции увеличено (или позиция создана).
	OrderEventLineAdded OrderEventType = "line_added"
	// OrderEventLineRemoved — позиция удалена целиком.
	OrderEventLineRemoved OrderEventType = "line_removed"
)

// OrderEvent — событие, публикуемое сервером после изменения заказа.
type OrderEvent struct {
	Type  OrderEventType `json:"type"`
	SKU   string         `json:"sku"`
	Qty   int            `json:"qty,omitempty"`
	Total int            `json:"total"`
	At    time.Time      `json:"at"`
}

// ExportLine — строка текстового экспорта заказа: "{qty} {unit}(s) – [{key}] – {label}".
func (l OrderLine) ExportLine() string {
	return fmt.Sprintf("%d %s(s) – [%s] – %s", l.Quantity, l.Unit, l.Key, l.Label)
}
