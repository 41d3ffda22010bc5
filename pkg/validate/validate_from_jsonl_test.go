package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/Gunvolt24/cafe_order/internal/domain"
)

func TestValidateJSONLStream_Mixed(t *testing.T) {
	ctx := context.Background()
	validator := NewCatalogValidator()

	line1 := itemJSON("A1", "Oat milk", "case")
	line2 := itemJSON("B 2", "Bad sku", "bag") // пробел в sku
	line3 := "   "                             // пустая строка — ок
	line4 := itemJSON("C3", "Croissant", "tray")

	input := strings.Join([]string{line1, line2, line3, line4}, "\n")
	var out bytes.Buffer

	res, err := ValidateJSONLStream(ctx, validator, strings.NewReader(input), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ValidLinesCount != 2 || res.InvalidLinesCount != 1 {
		t.Fatalf("unexpected counters: %+v", res)
	}

	outLines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(outLines) != 2 {
		t.Fatalf("expected 2 output lines, got %d", len(outLines))
	}
	var i1, i2 domain.CatalogItem
	if err := json.Unmarshal([]byte(outLines[0]), &i1); err != nil {
		t.Fatalf("unmarshal line1: %v", err)
	}
	if err := json.Unmarshal([]byte(outLines[1]), &i2); err != nil {
		t.Fatalf("unmarshal line2: %v", err)
	}
	if i1.SKU != "A1" || i2.SKU != "C3" {
		t.Fatalf("unexpected skus in output: %s, %s", i1.SKU, i2.SKU)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestValidateJSONLStream_WriteError(t *testing.T) {
	_, err := ValidateJSONLStream(context.Background(), NewCatalogValidator(),
		strings.NewReader(itemJSON("A1", "Oat milk", "case")), failingWriter{})
	if err == nil || !strings.Contains(err.Error(), "write valid line") {
		t.Fatalf("expected write error, got %v", err)
	}
}
