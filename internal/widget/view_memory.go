package widget

import (
	"fmt"
	"strings"
	"sync"

	"github.com/Gunvolt24/cafe_order/internal/domain"
)

// Проверка, что MemoryView удовлетворяет интерфейсу View.
var _ View = (*MemoryView)(nil)

// Row — снимок строки MemoryView.
type Row struct {
	Key      string
	Label    string
	Unit     string
	Quantity int
}

// ViewStats — счётчики операций над MemoryView.
type ViewStats struct {
	Inserts           int
	Updates           int
	Deletes           int
	PlaceholderShown  int
	PlaceholderHidden int
}

type memRow struct {
	Row
	onRemove func()
}

// MemoryView — представление в памяти: используется orderctl и тестами.
type MemoryView struct {
	mu          sync.Mutex
	rows        []*memRow
	placeholder bool
	stats       ViewStats
}

func NewMemoryView() *MemoryView { return &MemoryView{} }

func (v *MemoryView) InsertRow(line domain.OrderLine, onRemove func()) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.find(line.Key) >= 0 {
		return fmt.Errorf("row %s already rendered", line.Key)
	}
	v.rows = append(v.rows, &memRow{
		Row:      Row{Key: line.Key, Label: line.Label, Unit: line.Unit, Quantity: line.Quantity},
		onRemove: onRemove,
	})
	v.stats.Inserts++
	return nil
}

func (v *MemoryView) UpdateQuantity(key string, qty int) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	i := v.find(key)
	if i < 0 {
		return ErrMissingRow
	}
	v.rows[i].Quantity = qty
	v.stats.Updates++
	return nil
}

func (v *MemoryView) DeleteRow(key string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	i := v.find(key)
	if i < 0 {
		return ErrMissingRow
	}
	v.rows = append(v.rows[:i], v.rows[i+1:]...)
	v.stats.Deletes++
	return nil
}

func (v *MemoryView) ShowPlaceholder() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.placeholder = true
	v.stats.PlaceholderShown++
	return nil
}

func (v *MemoryView) HidePlaceholder() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.placeholder = false
	v.stats.PlaceholderHidden++
	return nil
}

// ClickRemove — нажатие кнопки удаления в строке key.
func (v *MemoryView) ClickRemove(key string) error {
	v.mu.Lock()
	i := v.find(key)
	if i < 0 {
		v.mu.Unlock()
		return ErrMissingRow
	}
	onRemove := v.rows[i].onRemove
	v.mu.Unlock()

	if onRemove != nil {
		onRemove()
	}
	return nil
}

// Rows — снимок строк в порядке отображения.
func (v *MemoryView) Rows() []Row {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make([]Row, 0, len(v.rows))
	for _, r := range v.rows {
		out = append(out, r.Row)
	}
	return out
}

func (v *MemoryView) PlaceholderVisible() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.placeholder
}

func (v *MemoryView) Stats() ViewStats {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.stats
}

// String — текстовая отрисовка: плейсхолдер или строки "qty unit – [key] – label".
func (v *MemoryView) String() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.placeholder {
		return PlaceholderText
	}
	var b strings.Builder
	for i, r := range v.rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d %s – [%s] – %s", r.Quantity, r.Unit, r.Key, r.Label)
	}
	return b.String()
}

func (v *MemoryView) find(key string) int {
	for i, r := range v.rows {
		if r.Key == key {
			return i
		}
	}
	return -1
}
