package validate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gunvolt24/cafe_order/internal/ports"
)

// InputFormat допустимые значения.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatJSONL InputFormat = "jsonl"
)

// ValidateFile — валидирует файл каталога как JSON-массив (catalog.json) или JSONL
// и пишет валидные товары в writer по одному на строку. Возвращает сводку "N valid / M invalid".
func ValidateFile(ctx context.Context, validator ports.CatalogValidator, filePath string, format InputFormat, ow io.Writer) (string, error) {
	if format == FormatAuto {
		format = FormatJSON
		if strings.ToLower(filepath.Ext(filePath)) == ".jsonl" {
			format = FormatJSONL
		}
	}

	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	var res JSONLResult
	switch format {
	case FormatJSON:
		raw, err := io.ReadAll(file)
		if err != nil {
			return "", fmt.Errorf("read file: %w", err)
		}
		items, invalid, err := ItemsFromJSONArray(ctx, validator, raw)
		if err != nil {
			return "", err
		}
		for i := range items {
			line, _ := json.Marshal(&items[i])
			if _, err := ow.Write(append(line, '\n')); err != nil {
				return "", fmt.Errorf("write json: %w", err)
			}
		}
		res = JSONLResult{ValidLinesCount: len(items), InvalidLinesCount: invalid}

	case FormatJSONL:
		res, err = ValidateJSONLStream(ctx, validator, file, ow)
		if err != nil {
			return "", err
		}

	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}

	summary := fmt.Sprintf("%d valid / %d invalid", res.ValidLinesCount, res.InvalidLinesCount)
	if res.InvalidLinesCount > 0 {
		return summary, fmt.Errorf("%w: %d invalid item(s)", ErrInvalidItem, res.InvalidLinesCount)
	}
	return summary, nil
}
