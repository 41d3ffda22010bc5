// Пакет ctxmeta — метаданные запроса, которые прокидываются через context.Context
// (request_id, trace_id). Им пользуются HTTP-слой сервера, логгер и клиент виджета:
// request_id, созданный действием пользователя в виджете, уходит на сервер заголовком
// X-Request-ID и попадает в его логи.
package ctxmeta

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	// KeyRequestID — ключ контекста для request_id.
	KeyRequestID ctxKey = "request_id"

	// HeaderRequestID — HTTP-заголовок, в котором request_id передаётся между виджетом и сервером.
	HeaderRequestID = "X-Request-ID"
)

// WithRequestID кладёт request_id в контекст (если пусто — ничего не делает).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(KeyRequestID).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// EnsureRequestID — возвращает контекст с request_id: существующий или новый UUID.
func EnsureRequestID(ctx context.Context) (context.Context, string) {
	if ctx == nil {
		ctx = context.Background()
	}
	if id, ok := RequestIDFromContext(ctx); ok {
		return ctx, id
	}
	id := uuid.NewString()
	return context.WithValue(ctx, KeyRequestID, id), id
}
