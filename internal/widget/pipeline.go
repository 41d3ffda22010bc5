package widget

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Gunvolt24/cafe_order/internal/domain"
	"github.com/Gunvolt24/cafe_order/internal/ports"
	"github.com/Gunvolt24/cafe_order/internal/syncclient"
	"github.com/Gunvolt24/cafe_order/pkg/logger"
)

// QuantityInput — поле количества, из которого пришло добавление.
type QuantityInput interface {
	// Reset — вернуть поле к 1 после подтверждённого добавления.
	Reset()
}

// QuantityInputFunc — адаптер функции к QuantityInput.
type QuantityInputFunc func()

func (f QuantityInputFunc) Reset() { f() }

// StatusSink — короткие статусные сообщения для пользователя.
type StatusSink interface {
	ShowStatus(msg string)
	ClearStatus()
}

type nopStatus struct{}

func (nopStatus) ShowStatus(string) {}
func (nopStatus) ClearStatus()      {}

// Pipeline — конвейер изменений заказа: локальное хранилище меняется сразу,
// сервер — асинхронно. Мьютекс mu играет роль единственного UI-потока: каждое действие
// пользователя и каждый обработчик завершения выполняются одной критической секцией.
//
// Неудачное добавление не откатывается: позиция остаётся, ошибка уходит в StatusSink
// и в Task. Неудачное удаление только логируется, строка остаётся удалённой.
type Pipeline struct {
	mu     sync.Mutex
	store  *LineStore
	proj   *Projector
	remote ports.OrderRemote
	status StatusSink
	log    ports.Logger

	timeout  time.Duration
	inflight sync.WaitGroup
	closed   bool
}

// Option — настройка конвейера.
type Option func(*Pipeline)

func WithStatusSink(s StatusSink) Option {
	return func(p *Pipeline) { p.status = s }
}

func WithLogger(l ports.Logger) Option {
	return func(p *Pipeline) { p.log = l }
}

// WithRequestTimeout — таймаут одного сетевого вызова; 0 — без таймаута.
func WithRequestTimeout(d time.Duration) Option {
	return func(p *Pipeline) { p.timeout = d }
}

// NewPipeline — конвейер, владеющий store. Сразу отрисовывает текущее содержимое store.
func NewPipeline(store *LineStore, view View, remote ports.OrderRemote, opts ...Option) *Pipeline {
	p := &Pipeline{
		store:  store,
		remote: remote,
		status: nopStatus{},
		log:    logger.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.proj = NewProjector(view, func(intent domain.RemoveIntent) {
		p.Remove(context.Background(), intent)
	})

	p.mu.Lock()
	p.renderLocked(context.Background())
	p.mu.Unlock()
	return p
}

// Add — добавление позиции. Количество < 1 исправляется до 1.
// Хранилище и представление обновляются до отправки запроса; input (может быть nil)
// сбрасывается к 1 только после успешного ответа сервера.
func (p *Pipeline) Add(ctx context.Context, intent domain.AddIntent, input QuantityInput) *Task {
	key := MergeKey(intent)
	qty := intent.RequestedQty
	if qty < 1 {
		verr := &ValidationError{Field: "qty", Value: qty, Err: ErrInvalidQty}
		p.log.Warnf(ctx, "widget: %v, using 1", verr)
		qty = 1
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return doneTask(syncclient.OpAdd, key, ErrClosed)
	}
	total, err := p.store.Upsert(key, intent.Label, intent.Unit, qty)
	if err != nil {
		p.mu.Unlock()
		p.log.Warnf(ctx, "widget: add rejected: %v", err)
		return doneTask(syncclient.OpAdd, key, err)
	}
	p.renderLocked(ctx)
	p.mu.Unlock()

	p.log.Infof(ctx, "widget: %s +%d (total %d), syncing", key, qty, total)

	task := newTask(syncclient.OpAdd, key)
	p.launch(ctx, task, func(ctx context.Context) error {
		return p.remote.AddToOrder(ctx, key, qty)
	}, func(err error) {
		p.completeAdd(ctx, key, input, err)
	})
	return task
}

// Remove — удаление позиции целиком. Локально удаляется сразу; ответ сервера
// на представление не влияет.
func (p *Pipeline) Remove(ctx context.Context, intent domain.RemoveIntent) *Task {
	key := intent.Key

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return doneTask(syncclient.OpRemove, key, ErrClosed)
	}
	p.store.Remove(key)
	p.renderLocked(ctx)
	p.mu.Unlock()

	task := newTask(syncclient.OpRemove, key)
	p.launch(ctx, task, func(ctx context.Context) error {
		return p.remote.RemoveFromOrder(ctx, key)
	}, func(err error) {
		if err != nil {
			p.log.Errorf(ctx, "widget: remove %s not synced: %v", key, err)
		}
	})
	return task
}

// Refresh — перезагрузка хранилища из GET /order_summary (первичная загрузка, полное обновление).
func (p *Pipeline) Refresh(ctx context.Context) error {
	lines, err := p.remote.OrderSummary(ctx)
	if err != nil {
		err = asSyncError(syncclient.OpSummary, "", err)
		p.log.Errorf(ctx, "widget: refresh failed: %v", err)
		return err
	}

	converted := make([]domain.OrderLine, 0, len(lines))
	for _, l := range lines {
		converted = append(converted, l.Line())
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrClosed
	}
	p.store.Replace(converted)
	if err := p.proj.Rebuild(p.store.List()); err != nil {
		p.log.Errorf(ctx, "widget: render after refresh: %v", err)
	}
	return nil
}

// Lines — текущие позиции в порядке вставки.
func (p *Pipeline) Lines() []domain.OrderLine { return p.store.List() }

// Line — позиция по ключу.
func (p *Pipeline) Line(key string) (domain.OrderLine, bool) { return p.store.Get(key) }

// Export — текстовый экспорт текущего заказа.
func (p *Pipeline) Export() string { return FormatExport(p.store.List()) }

// Wait — ждёт завершения всех запущенных сетевых вызовов.
func (p *Pipeline) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		p.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close — разбор виджета: хранилище очищается, завершения запросов после этого отбрасываются.
// Повторный вызов безопасен.
func (p *Pipeline) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	p.store.Clear()
}

// launch — сетевой вызов в отдельной горутине; onDone выполняется под мьютексом,
// если конвейер ещё не закрыт. Ошибка задачи приводится к *syncclient.SyncError.
func (p *Pipeline) launch(ctx context.Context, task *Task, call func(context.Context) error, onDone func(error)) {
	p.inflight.Add(1)
	go func() {
		defer p.inflight.Done()

		callCtx, cancel := p.callContext(ctx)
		err := asSyncError(task.Op, task.Key, call(callCtx))
		cancel()

		p.mu.Lock()
		defer p.mu.Unlock()
		if !p.closed {
			onDone(err)
		}
		task.finish(err)
	}()
}

// completeAdd — завершение добавления. Хранилище не меняет: поздний ответ на уже
// удалённую позицию её не воскрешает.
func (p *Pipeline) completeAdd(ctx context.Context, key string, input QuantityInput, err error) {
	if err != nil {
		p.log.Errorf(ctx, "widget: add %s not synced: %v", key, err)
		p.status.ShowStatus(fmt.Sprintf("Could not add %s to the order, please try again.", key))
	} else {
		p.status.ClearStatus()
		if input != nil {
			input.Reset()
		}
	}
	p.renderLocked(ctx)
}

func (p *Pipeline) renderLocked(ctx context.Context) {
	if err := p.proj.Render(p.store.List()); err != nil {
		p.log.Errorf(ctx, "widget: render: %v", err)
	}
}

func (p *Pipeline) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx = context.WithoutCancel(ctx)
	if p.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, p.timeout)
}
