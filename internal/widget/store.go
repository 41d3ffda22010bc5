package widget

import (
	"container/list"
	"sync"

	"github.com/Gunvolt24/cafe_order/internal/domain"
)

// LineStore — упорядоченное отображение ключ → позиция заказа.
// Порядок — порядок первого добавления; изменение количества позицию не двигает.
// Все методы потокобезопасны и отдают копии.
type LineStore struct {
	mu sync.RWMutex

	ll    *list.List // *domain.OrderLine в порядке вставки
	index map[string]*list.Element
}

// NewLineStore — пустое хранилище.
func NewLineStore() *LineStore {
	return &LineStore{
		ll:    list.New(),
		index: make(map[string]*list.Element),
	}
}

// Upsert — слияние или вставка. Label и Unit берутся только при создании позиции.
// Возвращает итоговое количество.
func (s *LineStore) Upsert(key, label, unit string, delta int) (int, error) {
	if key == "" {
		return 0, &ValidationError{Field: "key", Value: key, Err: ErrEmptyKey}
	}
	if delta < 1 {
		return 0, &ValidationError{Field: "delta", Value: delta, Err: ErrInvalidDelta}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if elem, ok := s.index[key]; ok {
		line := elem.Value.(*domain.OrderLine)
		line.Quantity += delta
		return line.Quantity, nil
	}

	s.index[key] = s.ll.PushBack(&domain.OrderLine{Key: key, Quantity: delta, Label: label, Unit: unit})
	return delta, nil
}

// Remove — удаляет позицию; отсутствие ключа не ошибка. Возвращает, была ли позиция.
func (s *LineStore) Remove(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	elem, ok := s.index[key]
	if !ok {
		return false
	}
	delete(s.index, key)
	s.ll.Remove(elem)
	return true
}

// List — копия позиций в порядке вставки.
func (s *LineStore) List() []domain.OrderLine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.OrderLine, 0, s.ll.Len())
	for e := s.ll.Front(); e != nil; e = e.Next() {
		out = append(out, *e.Value.(*domain.OrderLine))
	}
	return out
}

func (s *LineStore) IsEmpty() bool { return s.Len() == 0 }

func (s *LineStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ll.Len()
}

func (s *LineStore) Get(key string) (domain.OrderLine, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	elem, ok := s.index[key]
	if !ok {
		return domain.OrderLine{}, false
	}
	return *elem.Value.(*domain.OrderLine), true
}

func (s *LineStore) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

// Replace — полная перезагрузка из авторитетного источника (GET /order_summary).
// Позиции с пустым ключом или количеством < 1 пропускаются, повторяющиеся ключи сливаются.
func (s *LineStore) Replace(lines []domain.OrderLine) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetLocked()
	for _, l := range lines {
		if l.Key == "" || l.Quantity < 1 {
			continue
		}
		if elem, ok := s.index[l.Key]; ok {
			elem.Value.(*domain.OrderLine).Quantity += l.Quantity
			continue
		}
		line := l
		s.index[l.Key] = s.ll.PushBack(&line)
	}
}

// Clear — очистка при разборе виджета.
func (s *LineStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

func (s *LineStore) resetLocked() {
	s.ll.Init()
	s.index = make(map[string]*list.Element)
}
