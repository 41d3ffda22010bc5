package syncclient

import (
	"errors"
	"fmt"
)

// Операции клиента (метки SyncError.Op и метрик).
const (
	OpAdd     = "add"
	OpRemove  = "remove"
	OpSummary = "summary"
	OpEmail   = "email"
	OpCatalog = "catalog"
)

// ErrUnexpectedStatus — сервер ответил не 2xx.
var ErrUnexpectedStatus = errors.New("unexpected status")

// SyncError — сбой сетевого вызова к серверу заказа: транспорт или не-2xx ответ.
// StatusCode равен 0, если ответа не было.
type SyncError struct {
	Op         string
	Key        string
	StatusCode int
	Err        error
}

func (e *SyncError) Error() string {
	msg := "sync " + e.Op
	if e.Key != "" {
		msg += " " + e.Key
	}
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *SyncError) Unwrap() error { return e.Err }

// IsSyncError — есть ли в цепочке ошибок SyncError.
func IsSyncError(err error) bool {
	var se *SyncError
	return errors.As(err, &se)
}
