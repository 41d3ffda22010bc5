package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/Gunvolt24/cafe_order/internal/domain"
	"github.com/Gunvolt24/cafe_order/internal/ports"
	"github.com/Gunvolt24/cafe_order/pkg/metrics"
	"github.com/Gunvolt24/cafe_order/pkg/validate"
)

// Проверка, что OrderService удовлетворяет интерфейсу OrderService.
var _ ports.OrderService = (*OrderService)(nil)

var (
	// ErrEmptySKU — пустой sku в запросе.
	ErrEmptySKU = errors.New("sku is required")
	// ErrInvalidSKU — sku с пробелами по краям. Ключи не нормализуются: " A1" и "A1" разные,
	// поэтому такой sku отклоняется, а не сливается с "A1".
	ErrInvalidSKU = errors.New("sku must not have leading or trailing spaces")
	// ErrInvalidQty — количество меньше 1.
	ErrInvalidQty = errors.New("qty must be a positive integer")
)

const crlf = "\r\n"

// EmailSettings — реквизиты черновика письма с заказом.
type EmailSettings struct {
	Business  string
	Greeting  string
	Signature []string
}

// OrderService — прикладная логика заказа и каталога (без знаний о транспорте).
type OrderService struct {
	book      ports.OrderBook         // авторитетный заказ
	catalog   ports.CatalogRepository // каталог товаров
	validator ports.CatalogValidator
	events    ports.EventPublisher // может быть nil — события не публикуются
	log       ports.Logger
	email     EmailSettings
	search    ports.CatalogSearchCache // может быть nil — поиск без кэша
}

// Option — необязательная зависимость сервиса.
type Option func(*OrderService)

// WithSearchCache — кэш результатов SearchCatalog; сбрасывается при изменении каталога.
func WithSearchCache(c ports.CatalogSearchCache) Option {
	return func(s *OrderService) { s.search = c }
}

// NewOrderService — DI-конструктор.
func NewOrderService(
	book ports.OrderBook,
	catalog ports.CatalogRepository,
	validator ports.CatalogValidator,
	events ports.EventPublisher,
	log ports.Logger,
	email EmailSettings,
	opts ...Option,
) *OrderService {
	s := &OrderService{
		book:      book,
		catalog:   catalog,
		validator: validator,
		events:    events,
		log:       log,
		email:     email,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddToOrder — увеличить количество позиции sku на qty. Возвращает итоговое количество.
func (s *OrderService) AddToOrder(ctx context.Context, sku string, qty int) (int, error) {
	if err := checkSKU(sku); err != nil {
		return 0, err
	}
	if qty < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidQty, qty)
	}

	total, err := s.book.Add(ctx, sku, qty)
	if err != nil {
		s.log.Errorf(ctx, "order add failed sku=%s err=%v", sku, err)
		return 0, fmt.Errorf("add to order: %w", err)
	}

	op := "add"
	if total > qty {
		op = "merge"
	}
	metrics.OrderOps.WithLabelValues(op).Inc()
	s.refreshLinesGauge(ctx)

	s.log.Infof(ctx, "order %s sku=%s qty=%d total=%d", op, sku, qty, total)
	s.publish(ctx, domain.OrderEvent{Type: domain.OrderEventLineAdded, SKU: sku, Qty: qty, Total: total})
	return total, nil
}

// RemoveFromOrder — удалить позицию целиком; повторное удаление не ошибка.
func (s *OrderService) RemoveFromOrder(ctx context.Context, sku string) error {
	if err := checkSKU(sku); err != nil {
		return err
	}

	removed, err := s.book.Remove(ctx, sku)
	if err != nil {
		s.log.Errorf(ctx, "order remove failed sku=%s err=%v", sku, err)
		return fmt.Errorf("remove from order: %w", err)
	}
	if !removed {
		metrics.OrderOps.WithLabelValues("remove_missing").Inc()
		s.log.Infof(ctx, "order remove sku=%s: not in order", sku)
		return nil
	}

	metrics.OrderOps.WithLabelValues("remove").Inc()
	s.refreshLinesGauge(ctx)
	s.log.Infof(ctx, "order remove sku=%s", sku)
	s.publish(ctx, domain.OrderEvent{Type: domain.OrderEventLineRemoved, SKU: sku})
	return nil
}

// Summary — позиции заказа в порядке каталога. SKU, которых нет в каталоге, не попадают в сводку.
func (s *OrderService) Summary(ctx context.Context) ([]domain.SummaryLine, error) {
	items, err := s.catalog.List(ctx)
	if err != nil {
		s.log.Errorf(ctx, "catalog list failed err=%v", err)
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	qtys, err := s.book.Quantities(ctx)
	if err != nil {
		return nil, fmt.Errorf("order quantities: %w", err)
	}

	summary := make([]domain.SummaryLine, 0, len(qtys))
	for _, item := range items {
		qty, ok := qtys[item.SKU]
		if !ok {
			continue
		}
		summary = append(summary, domain.SummaryLine{SKU: item.SKU, Name: item.Name, Unit: item.Unit, Qty: qty})
	}
	return summary, nil
}

// EmailDraft — ссылки Gmail и mailto: на письмо с текущим заказом.
func (s *OrderService) EmailDraft(ctx context.Context, now time.Time) (ports.EmailDraft, error) {
	summary, err := s.Summary(ctx)
	if err != nil {
		return ports.EmailDraft{}, err
	}

	subject, body := s.composeEmail(summary, now)

	return ports.EmailDraft{
		Gmail:  "https://mail.google.com/mail/?view=cm&fs=1&tf=1&su=" + escape(subject) + "&body=" + escape(body),
		Mailto: "mailto:?subject=" + escape(subject) + "&body=" + escape(body),
	}, nil
}

// escape — процентное кодирование для query; пробел как %20 (mailto не понимает "+").
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// composeEmail — тема и тело письма; строки разделяются CRLF.
func (s *OrderService) composeEmail(summary []domain.SummaryLine, now time.Time) (subject, body string) {
	day := now.Format("January 02")
	subject = fmt.Sprintf("%s Weekly Order – %s", s.email.Business, day)

	lines := make([]string, 0, len(summary))
	for _, l := range summary {
		lines = append(lines, l.Line().ExportLine())
	}

	parts := []string{
		s.email.Greeting,
		"",
		fmt.Sprintf("Here is the following order for %s for the week of %s.", s.email.Business, day),
		"",
		strings.Join(lines, crlf),
		"",
	}
	parts = append(parts, s.email.Signature...)
	return subject, strings.Join(parts, crlf)
}

// SearchCatalog — товары, у которых sku или name содержат query без учёта регистра.
// Пустой query — весь каталог.
func (s *OrderService) SearchCatalog(ctx context.Context, query string) ([]domain.CatalogItem, error) {
	if s.search != nil {
		if cached, ok := s.search.Get(ctx, query); ok {
			return cached, nil
		}
	}

	found, err := s.searchCatalog(ctx, query)
	if err != nil {
		return nil, err
	}
	if s.search != nil {
		s.search.Set(ctx, query, found)
	}
	return found, nil
}

func (s *OrderService) searchCatalog(ctx context.Context, query string) ([]domain.CatalogItem, error) {
	items, err := s.catalog.List(ctx)
	if err != nil {
		s.log.Errorf(ctx, "catalog list failed err=%v", err)
		return nil, fmt.Errorf("list catalog: %w", err)
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items, nil
	}

	found := make([]domain.CatalogItem, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.SKU), q) || strings.Contains(strings.ToLower(it.Name), q) {
			found = append(found, it)
		}
	}
	return found, nil
}

// AddCatalogItem — валидирует и добавляет товар в каталог (пробелы по краям обрезаются).
func (s *OrderService) AddCatalogItem(ctx context.Context, item domain.CatalogItem) error {
	item = domain.CatalogItem{
		SKU:  strings.TrimSpace(item.SKU),
		Name: strings.TrimSpace(item.Name),
		Unit: strings.TrimSpace(item.Unit),
	}
	if err := s.validator.Validate(ctx, &item); err != nil {
		s.log.Warnf(ctx, "catalog item rejected sku=%q err=%v", item.SKU, err)
		return err
	}
	if err := s.catalog.Add(ctx, item); err != nil {
		s.log.Errorf(ctx, "catalog add failed sku=%s err=%v", item.SKU, err)
		return fmt.Errorf("add catalog item: %w", err)
	}
	s.purgeSearch(ctx)
	s.log.Infof(ctx, "catalog item saved sku=%s", item.SKU)
	return nil
}

// ImportFromMessage — товар каталога из Kafka (raw JSON).
// Шаги:
//  1. строгий парсинг JSON (DisallowUnknownFields, без хвоста) и доменная валидация —
//     при проблемах validate.ErrInvalidItem, сообщение пропускается;
//  2. идемпотентный upsert в каталог — временные ошибки отдаются наверх для повтора.
func (s *OrderService) ImportFromMessage(ctx context.Context, raw []byte) error {
	item, err := validate.ItemFromJSON(ctx, s.validator, raw)
	if err != nil {
		s.log.Warnf(ctx, "catalog import: invalid message err=%v", err)
		return fmt.Errorf("validation failed: %w", err)
	}
	if err := s.catalog.Add(ctx, *item); err != nil {
		s.log.Errorf(ctx, "catalog import: save failed sku=%s err=%v", item.SKU, err)
		return fmt.Errorf("failed to save catalog item: %w", err)
	}
	s.purgeSearch(ctx)
	s.log.Infof(ctx, "catalog item imported sku=%s", item.SKU)
	return nil
}

func checkSKU(sku string) error {
	trimmed := strings.TrimSpace(sku)
	if trimmed == "" {
		return ErrEmptySKU
	}
	if trimmed != sku {
		return fmt.Errorf("%w: %q", ErrInvalidSKU, sku)
	}
	return nil
}

func (s *OrderService) purgeSearch(ctx context.Context) {
	if s.search != nil {
		s.search.Purge(ctx)
	}
}

func (s *OrderService) refreshLinesGauge(ctx context.Context) {
	if qtys, err := s.book.Quantities(ctx); err == nil {
		metrics.OrderLines.Set(float64(len(qtys)))
	}
}

// publish — best effort: ошибка публикации не ломает изменение заказа.
func (s *OrderService) publish(ctx context.Context, ev domain.OrderEvent) {
	if s.events == nil {
		return
	}
	ev.At = time.Now().UTC()
	if err := s.events.Publish(ctx, ev); err != nil {
		s.log.Warnf(ctx, "order event publish failed type=%s sku=%s err=%v", ev.Type, ev.SKU, err)
	}
}
