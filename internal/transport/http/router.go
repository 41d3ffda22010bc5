package rest

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"time"

	"github.com/Gunvolt24/cafe_order/internal/domain"
	"github.com/Gunvolt24/cafe_order/internal/ports"
	"github.com/Gunvolt24/cafe_order/internal/usecase"
	"github.com/Gunvolt24/cafe_order/pkg/httpx"
	"github.com/Gunvolt24/cafe_order/pkg/validate"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Handler — HTTP-обработчики сервера заказа.
type Handler struct {
	service ports.OrderService
	log     ports.Logger
	timeout time.Duration
	now     func() time.Time
}

// NewHandler — timeout ограничивает один вызов сервиса; 0 — без ограничения.
func NewHandler(service ports.OrderService, log ports.Logger, timeout time.Duration) *Handler {
	return &Handler{service: service, log: log, timeout: timeout, now: time.Now}
}

// NewRouter — маршруты сервера. otelServiceName пустой — без otelgin.
func NewRouter(h *Handler, staticDir, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/catalog", h.searchCatalog)
	r.POST("/add_item", h.addItem)

	r.POST("/add_to_order", h.addToOrder)
	r.POST("/remove_from_order", h.removeFromOrder)
	r.GET("/order_summary", h.orderSummary)
	r.GET("/email", h.emailDraft)

	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	if staticDir != "" {
		r.Static("/static", staticDir)
		r.StaticFile("/", filepath.Join(staticDir, "index.html"))
	}

	return r
}

// Пагинация /catalog: limit по умолчанию и верхняя граница.
const (
	catalogDefaultLimit = 200
	catalogMaxLimit     = 1000
)

func (h *Handler) searchCatalog(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	limit, offset := httpx.ParseLimitOffset(c, catalogDefaultLimit, catalogMaxLimit)

	items, err := h.service.SearchCatalog(ctx, c.Query("q"))
	if err != nil {
		h.internalError(c, "SearchCatalog", err)
		return
	}

	if offset >= len(items) {
		items = []domain.CatalogItem{}
	} else {
		items = items[offset:min(offset+limit, len(items))]
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) addItem(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	item := domain.CatalogItem{
		SKU:  c.PostForm("sku"),
		Name: c.PostForm("name"),
		Unit: c.PostForm("unit"),
	}
	if err := h.service.AddCatalogItem(ctx, item); err != nil {
		if errors.Is(err, validate.ErrInvalidItem) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.internalError(c, "AddCatalogItem", err)
		return
	}
	h.acknowledge(c)
}

func (h *Handler) addToOrder(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	qty, err := httpx.ParseQty(c.PostForm("qty"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.service.AddToOrder(ctx, c.PostForm("sku"), qty); err != nil {
		if errors.Is(err, usecase.ErrEmptySKU) || errors.Is(err, usecase.ErrInvalidSKU) || errors.Is(err, usecase.ErrInvalidQty) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.internalError(c, "AddToOrder", err)
		return
	}
	h.acknowledge(c)
}

func (h *Handler) removeFromOrder(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	if err := h.service.RemoveFromOrder(ctx, c.PostForm("sku")); err != nil {
		if errors.Is(err, usecase.ErrEmptySKU) || errors.Is(err, usecase.ErrInvalidSKU) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.internalError(c, "RemoveFromOrder", err)
		return
	}
	h.acknowledge(c)
}

func (h *Handler) orderSummary(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	summary, err := h.service.Summary(ctx)
	if err != nil {
		h.internalError(c, "Summary", err)
		return
	}
	if summary == nil {
		summary = []domain.SummaryLine{}
	}
	c.JSON(http.StatusOK, summary)
}

func (h *Handler) emailDraft(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	draft, err := h.service.EmailDraft(ctx, h.now())
	if err != nil {
		h.internalError(c, "EmailDraft", err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// acknowledge — XHR получает {"success":true}, обычная отправка формы — редирект на главную.
func (h *Handler) acknowledge(c *gin.Context) {
	if httpx.IsXHR(c) {
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) internalError(c *gin.Context, op string, err error) {
	h.log.Errorf(c.Request.Context(), "%s failed err=%v", op, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

func (h *Handler) ctx(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return c.Request.Context(), func() {}
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}
