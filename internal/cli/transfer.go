package cli

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Devesh-1988-Wan/z10triage/internal/transfer"
	"github.com/Devesh-1988-Wan/z10triage/internal/ui"
)

func newExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Write the full collection as pretty-printed JSON",
		Long:  "Writes a JSON array of every item. With no argument the file is " + transfer.DefaultExportName + "; use - for stdout.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := app.store.GetAll()
			if err != nil {
				return err
			}

			name := transfer.DefaultExportName
			if len(args) == 1 {
				name = args[0]
			}
			if name == "-" {
				return transfer.Export(items, os.Stdout)
			}

			f, err := os.Create(name)
			if err != nil {
				return errors.Wrap(err, "create export file")
			}
			if err := transfer.Export(items, f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return errors.Wrap(err, "close export file")
			}
			ui.OK(fmt.Sprintf("exported %d items to %s", len(items), name))
			return nil
		},
	}
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Bulk-upsert items from a JSON array",
		Long:  "Parses a JSON array of items, generates ids for records without one, and upserts the whole batch atomically. Existing items with matching ids are overwritten.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return errors.Wrap(err, "open import file")
			}
			defer f.Close()

			items, err := transfer.Import(f)
			if err != nil {
				return err
			}
			if err := app.store.BulkPut(items); err != nil {
				return err
			}
			ui.OK(fmt.Sprintf("imported %d items", len(items)))
			return nil
		},
	}
}
