//go:build !otel || gopls

package ctxmeta

import "context"

// Без тега `otel` трассировки в логах нет: trace/span всегда пустые.
func TraceIDFromContext(context.Context) (string, bool) { return "", false }
func SpanIDFromContext(context.Context) (string, bool)  { return "", false }
