package widget

import (
	"errors"
	"fmt"

	"github.com/Gunvolt24/cafe_order/internal/syncclient"
)

var (
	// ErrInvalidDelta — приращение количества меньше 1 (это удаление, а не upsert).
	ErrInvalidDelta = errors.New("quantity delta must be >= 1")
	// ErrEmptyKey — пустой ключ позиции.
	ErrEmptyKey = errors.New("empty line key")
	// ErrInvalidQty — пользователь ввёл количество меньше 1 (исправляется до 1).
	ErrInvalidQty = errors.New("requested quantity must be >= 1")
	// ErrMissingRow — в представлении нет строки, которую проектор считает отрисованной.
	ErrMissingRow = errors.New("row not found in view")
	// ErrClosed — конвейер уже разобран (Close).
	ErrClosed = errors.New("widget pipeline closed")
)

// ValidationError — некорректное значение на входе хранилища или конвейера.
type ValidationError struct {
	Field string
	Value any
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// RenderError — представление не смогло применить изменение проектора.
type RenderError struct {
	Op  string
	Key string
	Err error
}

func (e *RenderError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("render %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("render %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// IsSyncError — ошибка сетевого вызова к серверу (см. syncclient.SyncError).
func IsSyncError(err error) bool { return syncclient.IsSyncError(err) }

// asSyncError — приводит ошибку удалённого вызова к *syncclient.SyncError.
func asSyncError(op, key string, err error) error {
	if err == nil || IsSyncError(err) {
		return err
	}
	return &syncclient.SyncError{Op: op, Key: key, Err: err}
}
