package widget

import (
	"strings"

	"github.com/Gunvolt24/cafe_order/internal/domain"
)

// FormatExport — текстовый экспорт заказа: по строке на позицию, через "\n".
func FormatExport(lines []domain.OrderLine) string {
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		parts = append(parts, l.ExportLine())
	}
	return strings.Join(parts, "\n")
}
