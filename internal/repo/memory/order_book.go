package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/Gunvolt24/cafe_order/internal/ports"
)

// Проверка, что OrderBook удовлетворяет интерфейсу OrderBook.
var _ ports.OrderBook = (*OrderBook)(nil)

// OrderBook — заказ в памяти процесса (sku → количество). Сохранение между перезапусками не требуется.
type OrderBook struct {
	mu   sync.RWMutex
	qtys map[string]int
}

func NewOrderBook() *OrderBook {
	return &OrderBook{qtys: make(map[string]int)}
}

func (b *OrderBook) Add(_ context.Context, sku string, qty int) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.qtys[sku] += qty
	return b.qtys[sku], nil
}

func (b *OrderBook) Remove(_ context.Context, sku string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.qtys[sku]; !ok {
		return false, nil
	}
	delete(b.qtys, sku)
	return true, nil
}

func (b *OrderBook) Quantities(_ context.Context) (map[string]int, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return maps.Clone(b.qtys), nil
}
