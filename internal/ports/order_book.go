package ports

import "context"

// OrderBook — авторитетное состояние заказа на сервере: sku → количество.
// Требования к реализации: потокобезопасность; Remove идемпотентен.
type OrderBook interface {
	// Add — увеличить количество позиции на qty; возвращает итоговое количество.
	Add(ctx context.Context, sku string, qty int) (int, error)

	// Remove — удалить позицию целиком; отсутствие позиции не ошибка (removed=false).
	Remove(ctx context.Context, sku string) (removed bool, err error)

	// Quantities — снимок заказа (копия).
	Quantities(ctx context.Context) (map[string]int, error)
}
