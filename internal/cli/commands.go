package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Gunvolt24/cafe_order/internal/domain"
)

func newAddCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		qty        int
		name, unit string
	)

	cmd := &cobra.Command{
		Use:   "add <sku>",
		Short: "Add a quantity of a catalog item to the order",
		Long: `Add a quantity of an item to the order. Adding a SKU that is already in the
order increases its quantity. Name and unit are looked up in the catalog unless given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := openSession(ctx, rootOpts, cmd)
			if err != nil {
				return err
			}
			defer s.close()

			intent := domain.AddIntent{Key: args[0], Label: name, Unit: unit, RequestedQty: qty}
			if err := s.describe(cmd, &intent); err != nil {
				return err
			}

			addErr := s.pipeline.Add(ctx, intent, nil).Wait(ctx)
			if err := s.settle(ctx); err != nil && addErr == nil {
				addErr = err
			}
			if err := s.printLines(); err != nil {
				return err
			}
			return addErr
		},
	}

	cmd.Flags().IntVarP(&qty, "qty", "q", 1, "quantity to add (values below 1 become 1)")
	cmd.Flags().StringVar(&name, "name", "", "item name (default: from catalog)")
	cmd.Flags().StringVar(&unit, "unit", "", "item unit (default: from catalog)")

	return cmd
}

// describe — подставляет название и единицу из каталога, если позиции ещё нет в заказе.
func (s *session) describe(cmd *cobra.Command, intent *domain.AddIntent) error {
	if intent.Label != "" && intent.Unit != "" {
		return nil
	}
	if line, ok := s.pipeline.Line(intent.Key); ok {
		intent.Label, intent.Unit = line.Label, line.Unit
		return nil
	}

	items, err := s.client.Catalog(cmd.Context(), intent.Key)
	if err != nil {
		return err
	}
	for _, it := range items {
		if it.SKU == intent.Key {
			if intent.Label == "" {
				intent.Label = it.Name
			}
			if intent.Unit == "" {
				intent.Unit = it.Unit
			}
			return nil
		}
	}
	return fmt.Errorf("sku %s is not in the catalog, pass --name and --unit", intent.Key)
}

func newRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <sku>",
		Short: "Remove an item from the order entirely",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := openSession(ctx, rootOpts, cmd)
			if err != nil {
				return err
			}
			defer s.close()

			// ошибка синхронизации удаления не возвращает строку: только предупреждение
			if err := s.pipeline.Remove(ctx, domain.RemoveIntent{Key: args[0]}).Wait(ctx); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning:", err)
			}
			if err := s.settle(ctx); err != nil {
				return err
			}
			return s.printLines()
		},
	}
}

func newListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the current order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			s, err := openSession(ctx, rootOpts, cmd)
			if err != nil {
				return err
			}
			defer s.close()

			if err := s.settle(ctx); err != nil {
				return err
			}
			return s.printLines()
		},
	}
}

func newExportCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print the order as plain text for copying",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			s, err := openSession(ctx, rootOpts, cmd)
			if err != nil {
				return err
			}
			defer s.close()

			if err := s.settle(ctx); err != nil {
				return err
			}
			text := s.pipeline.Export()
			if text == "" {
				return nil
			}
			_, err = fmt.Fprintln(s.out, text)
			return err
		},
	}
}

func newEmailCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "email",
		Short: "Print Gmail and mailto links with the order draft",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			s, err := openSession(ctx, rootOpts, cmd)
			if err != nil {
				return err
			}
			defer s.close()

			draft, draftErr := s.client.EmailDraft(ctx)
			if err := s.settle(ctx); err != nil && draftErr == nil {
				draftErr = err
			}
			if draftErr != nil {
				return draftErr
			}
			if rootOpts.Format == "json" {
				return writeJSON(s.out, draft)
			}
			_, err = fmt.Fprintf(s.out, "gmail:  %s\nmailto: %s\n", draft.Gmail, draft.Mailto)
			return err
		},
	}
}
