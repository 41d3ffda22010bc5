package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Gunvolt24/cafe_order/internal/ports"
	"github.com/Gunvolt24/cafe_order/internal/syncclient"
	"github.com/Gunvolt24/cafe_order/internal/widget"
	"github.com/Gunvolt24/cafe_order/pkg/logger"
)

// session — виджет на время одной команды.
type session struct {
	opts     *RootOptions
	client   *syncclient.Client
	view     *widget.MemoryView
	pipeline *widget.Pipeline
	out      io.Writer
	cleanup  func()
}

// statusWriter — StatusSink поверх stderr.
type statusWriter struct{ w io.Writer }

func (s statusWriter) ShowStatus(msg string) { fmt.Fprintln(s.w, "status:", msg) }
func (statusWriter) ClearStatus()            {}

// openSession — клиент, представление и конвейер; хранилище сразу загружается с сервера.
func openSession(ctx context.Context, opts *RootOptions, cmd *cobra.Command) (*session, error) {
	var (
		log     ports.Logger = logger.NewNop()
		cleanup              = func() {}
	)
	if opts.Verbose {
		zl, closeLog, err := logger.NewZapLogger(false)
		if err != nil {
			return nil, fmt.Errorf("logger: %w", err)
		}
		log = zl.Named("orderctl")
		cleanup = func() { _ = closeLog() }
	}

	client := syncclient.New(opts.Server, syncclient.WithTimeout(opts.Timeout))
	view := widget.NewMemoryView()
	p := widget.NewPipeline(widget.NewLineStore(), view, client,
		widget.WithLogger(log),
		widget.WithStatusSink(statusWriter{w: cmd.ErrOrStderr()}),
		widget.WithRequestTimeout(opts.Timeout),
	)

	if err := p.Refresh(ctx); err != nil {
		p.Close()
		cleanup()
		return nil, err
	}

	return &session{
		opts:     opts,
		client:   client,
		view:     view,
		pipeline: p,
		out:      cmd.OutOrStdout(),
		cleanup:  cleanup,
	}, nil
}

// settle — дожидается сетевых вызовов; хранилище и представление остаются целыми.
func (s *session) settle(ctx context.Context) error {
	return s.pipeline.Wait(ctx)
}

// close — разбирает виджет (хранилище очищается). Вывод печатается до close.
func (s *session) close() {
	s.pipeline.Close()
	s.cleanup()
}

// printLines — текущие строки: отрисовка MemoryView или JSON.
func (s *session) printLines() error {
	if s.opts.Format == "json" {
		return writeJSON(s.out, s.pipeline.Lines())
	}
	_, err := fmt.Fprintln(s.out, s.view.String())
	return err
}

func writeJSON(w io.Writer, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(raw))
	return err
}
