package syncclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Gunvolt24/cafe_order/internal/domain"
	"github.com/Gunvolt24/cafe_order/internal/ports"
	"github.com/Gunvolt24/cafe_order/pkg/ctxmeta"
	"github.com/Gunvolt24/cafe_order/pkg/metrics"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Проверка, что Client удовлетворяет интерфейсу OrderRemote.
var _ ports.OrderRemote = (*Client)(nil)

const (
	headerRequestedWith = "X-Requested-With"
	xmlHTTPRequest      = "XMLHttpRequest"

	// maxBodyBytes — ограничение на чтение тела ответа.
	maxBodyBytes = 1 << 20
)

// Client — Remote Sync Client виджета: одна попытка на вызов, без повторов.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
}

// Option — настройка клиента.
type Option func(*Client)

// WithHTTPClient — свой http.Client (тесты, особый транспорт).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout — таймаут одного запроса; 0 — без таймаута.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// New — клиент к серверу заказа. Транспорт по умолчанию обёрнут otelhttp.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AddToOrder — POST /add_to_order (sku, qty).
func (c *Client) AddToOrder(ctx context.Context, sku string, qty int) error {
	form := url.Values{"sku": {sku}, "qty": {strconv.Itoa(qty)}}
	return c.postForm(ctx, OpAdd, sku, "/add_to_order", form)
}

// RemoveFromOrder — POST /remove_from_order (sku).
func (c *Client) RemoveFromOrder(ctx context.Context, sku string) error {
	return c.postForm(ctx, OpRemove, sku, "/remove_from_order", url.Values{"sku": {sku}})
}

// OrderSummary — GET /order_summary, авторитетное состояние заказа.
func (c *Client) OrderSummary(ctx context.Context) ([]domain.SummaryLine, error) {
	var lines []domain.SummaryLine
	if err := c.getJSON(ctx, OpSummary, "/order_summary", &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// EmailDraft — GET /email, ссылки на черновик письма с заказом.
func (c *Client) EmailDraft(ctx context.Context) (ports.EmailDraft, error) {
	var draft ports.EmailDraft
	if err := c.getJSON(ctx, OpEmail, "/email", &draft); err != nil {
		return ports.EmailDraft{}, err
	}
	return draft, nil
}

// Catalog — GET /catalog?q=, поиск по каталогу (sku или название).
func (c *Client) Catalog(ctx context.Context, query string) ([]domain.CatalogItem, error) {
	path := "/catalog"
	if query != "" {
		path += "?" + url.Values{"q": {query}}.Encode()
	}
	var items []domain.CatalogItem
	if err := c.getJSON(ctx, OpCatalog, path, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) postForm(ctx context.Context, op, key, path string, form url.Values) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return c.fail(op, &SyncError{Op: op, Key: key, Err: err})
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.do(ctx, req)
	if err != nil {
		return c.fail(op, &SyncError{Op: op, Key: key, Err: err})
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.fail(op, &SyncError{Op: op, Key: key, StatusCode: resp.StatusCode, Err: ErrUnexpectedStatus})
	}
	metrics.SyncRequests.WithLabelValues(op, "ok").Inc()
	return nil
}

func (c *Client) getJSON(ctx context.Context, op, path string, dst any) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		return c.fail(op, &SyncError{Op: op, Err: err})
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.do(ctx, req)
	if err != nil {
		return c.fail(op, &SyncError{Op: op, Err: err})
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return c.fail(op, &SyncError{Op: op, StatusCode: resp.StatusCode, Err: ErrUnexpectedStatus})
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(dst); err != nil {
		return c.fail(op, &SyncError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)})
	}
	metrics.SyncRequests.WithLabelValues(op, "ok").Inc()
	return nil
}

// do — общие заголовки: XHR-маркер (сервер отвечает JSON вместо редиректа) и X-Request-ID.
func (c *Client) do(ctx context.Context, req *http.Request) (*http.Response, error) {
	req.Header.Set(headerRequestedWith, xmlHTTPRequest)
	_, rid := ctxmeta.EnsureRequestID(ctx)
	req.Header.Set(ctxmeta.HeaderRequestID, rid)
	return c.http.Do(req)
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.timeout)
}

func (c *Client) fail(op string, err *SyncError) error {
	metrics.SyncRequests.WithLabelValues(op, "error").Inc()
	return err
}
