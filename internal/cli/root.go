// Package cli — orderctl: виджет заказа без UI. Каждая команда загружает авторитетный
// заказ с сервера, выполняет одно действие через конвейер виджета и печатает строки.
package cli

import (
	"fmt"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/Gunvolt24/cafe_order/config"
)

// RootOptions — глобальные флаги всех команд.
type RootOptions struct {
	Server  string
	Timeout time.Duration
	Format  string // text|json
	Verbose bool
}

// ValidFormats — допустимые форматы вывода.
var ValidFormats = []string{"text", "json"}

// NewRootCommand — корневая команда; значения флагов по умолчанию берутся из defaults.
func NewRootCommand(defaults config.Widget) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "orderctl",
		Short:         "Cafe order widget for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Server, "server", defaults.ServerURL, "order server base URL")
	cmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", defaults.RequestTimeout, "per-request timeout")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log widget activity to stderr")

	cmd.AddCommand(newAddCommand(opts))
	cmd.AddCommand(newRemoveCommand(opts))
	cmd.AddCommand(newListCommand(opts))
	cmd.AddCommand(newExportCommand(opts))
	cmd.AddCommand(newEmailCommand(opts))

	return cmd
}
