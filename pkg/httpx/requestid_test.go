package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Gunvolt24/cafe_order/pkg/ctxmeta"
	"github.com/Gunvolt24/cafe_order/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// serveWithRequestID — прогоняет запрос через middleware и возвращает
// заголовок ответа и request_id, который увидел обработчик.
func serveWithRequestID(t *testing.T, provided string) (header, fromCtx string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(httpx.RequestIDMiddleware())
	r.POST("/add_to_order", func(c *gin.Context) {
		fromCtx, _ = ctxmeta.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/add_to_order", http.NoBody)
	if provided != "" {
		req.Header.Set(ctxmeta.HeaderRequestID, provided)
	}
	r.ServeHTTP(w, req)

	return w.Header().Get(ctxmeta.HeaderRequestID), fromCtx
}

func TestRequestIDMiddleware_GeneratesWhenMissing(t *testing.T) {
	rid, gotID := serveWithRequestID(t, "")

	if _, err := uuid.Parse(rid); err != nil {
		t.Fatalf("сгенерированный X-Request-ID должен быть UUID, got=%q err=%v", rid, err)
	}
	if gotID != rid {
		t.Fatalf("request id в контексте должен совпадать с заголовком: ctx=%q header=%q", gotID, rid)
	}
}

func TestRequestIDMiddleware_UsesWidgetHeader(t *testing.T) {
	const provided = "widget-action-42"

	rid, gotID := serveWithRequestID(t, provided)
	if rid != provided || gotID != provided {
		t.Fatalf("middleware должен сохранять X-Request-ID виджета: header=%q ctx=%q want=%q", rid, gotID, provided)
	}
}
