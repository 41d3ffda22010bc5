package widget

import (
	"errors"

	"github.com/Gunvolt24/cafe_order/internal/domain"
)

// PlaceholderText — текст пустого заказа.
const PlaceholderText = "No items in the order yet."

// View — то, во что проектор отрисовывает позиции (DOM, терминал, память).
// Вызовы приходят из одной критической секции конвейера; View не должна
// синхронно вызывать методы Pipeline изнутри этих методов.
type View interface {
	// InsertRow — новая строка в конце списка; onRemove привязывается к кнопке удаления.
	InsertRow(line domain.OrderLine, onRemove func()) error
	// UpdateQuantity — правка количества в существующей строке без её пересоздания.
	UpdateQuantity(key string, qty int) error
	DeleteRow(key string) error
	ShowPlaceholder() error
	HidePlaceholder() error
}

// Projector — применяет к View минимальную разницу между хранилищем и тем, что уже отрисовано.
// Сам хранилище не меняет: удаление строки пользователем уходит в onRemove.
type Projector struct {
	view     View
	onRemove func(domain.RemoveIntent)

	rendered    map[string]int // ключ → отрисованное количество
	placeholder bool
}

// NewProjector — проектор поверх view; onRemove получает RemoveIntent от кнопки удаления строки.
func NewProjector(view View, onRemove func(domain.RemoveIntent)) *Projector {
	return &Projector{
		view:     view,
		onRemove: onRemove,
		rendered: make(map[string]int),
	}
}

// Render — приводит view к lines. Ошибки отдельных строк собираются в одну (RenderError),
// остальные строки всё равно применяются.
func (p *Projector) Render(lines []domain.OrderLine) error {
	var errs []error

	present := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		present[l.Key] = struct{}{}
	}

	// удалённые позиции
	for key := range p.rendered {
		if _, ok := present[key]; ok {
			continue
		}
		if err := p.view.DeleteRow(key); err != nil {
			errs = append(errs, &RenderError{Op: "delete", Key: key, Err: err})
		}
		delete(p.rendered, key)
	}

	if len(lines) == 0 {
		if !p.placeholder {
			if err := p.view.ShowPlaceholder(); err != nil {
				errs = append(errs, &RenderError{Op: "show_placeholder", Err: err})
			} else {
				p.placeholder = true
			}
		}
		return errors.Join(errs...)
	}

	if p.placeholder {
		if err := p.view.HidePlaceholder(); err != nil {
			errs = append(errs, &RenderError{Op: "hide_placeholder", Err: err})
		} else {
			p.placeholder = false
		}
	}

	for _, l := range lines {
		qty, ok := p.rendered[l.Key]
		switch {
		case !ok:
			if err := p.view.InsertRow(l, p.removeHandler(l.Key)); err != nil {
				errs = append(errs, &RenderError{Op: "insert", Key: l.Key, Err: err})
				continue
			}
			p.rendered[l.Key] = l.Quantity
		case qty != l.Quantity:
			if err := p.view.UpdateQuantity(l.Key, l.Quantity); err != nil {
				// строки нет там, где она должна быть: при следующем Render вставим заново
				delete(p.rendered, l.Key)
				errs = append(errs, &RenderError{Op: "update", Key: l.Key, Err: err})
				continue
			}
			p.rendered[l.Key] = l.Quantity
		}
	}

	return errors.Join(errs...)
}

// Rebuild — перерисовать с нуля: все строки удаляются и вставляются заново в порядке lines.
// Нужен после полной замены хранилища, когда меняется порядок строк или их подписи,
// которые Render для существующих строк не трогает.
func (p *Projector) Rebuild(lines []domain.OrderLine) error {
	var errs []error
	for key := range p.rendered {
		if err := p.view.DeleteRow(key); err != nil && !errors.Is(err, ErrMissingRow) {
			errs = append(errs, &RenderError{Op: "delete", Key: key, Err: err})
		}
	}
	p.rendered = make(map[string]int)
	return errors.Join(append(errs, p.Render(lines))...)
}

// Reset — забыть отрисованное состояние (представление пересоздано снаружи).
func (p *Projector) Reset() {
	p.rendered = make(map[string]int)
	p.placeholder = false
}

func (p *Projector) removeHandler(key string) func() {
	return func() {
		if p.onRemove != nil {
			p.onRemove(domain.RemoveIntent{Key: key})
		}
	}
}
