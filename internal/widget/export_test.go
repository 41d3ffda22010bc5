package widget

import (
	"testing"

	"github.com/Gunvolt24/cafe_order/internal/domain"
)

func TestFormatExport(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		lines []domain.OrderLine
		want  string
	}{
		{"empty", nil, ""},
		{
			"two lines",
			[]domain.OrderLine{
				{Key: "A1", Quantity: 2, Unit: "unit", Label: "Widget"},
				{Key: "B2", Quantity: 1, Unit: "unit", Label: "Gadget"},
			},
			"2 unit(s) – [A1] – Widget\n1 unit(s) – [B2] – Gadget",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatExport(tc.lines); got != tc.want {
				t.Fatalf("want %q, got %q", tc.want, got)
			}
		})
	}
}
