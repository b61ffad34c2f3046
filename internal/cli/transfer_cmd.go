package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/recall/internal/importer"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import scheduled items from a JSON or YAML file",
		Long: `Import items from a file of the form

  users:
    - id: "1"
      items:
        - topic: Introduction
          date: "2025-06-17"

The whole file is validated first; nothing is stored if any entry is invalid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Transfer.ImportFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d item(s) for %d user(s).\n", result.ItemCount, result.UserCount)
			return nil
		},
	}
}

func newExportCmd(app *App) *cobra.Command {
	var users []string
	var format importer.Format
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export stored items as JSON or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = importer.FormatJSON
				if outPath != "" {
					format = importer.FormatForPath(outPath)
				}
			}

			ctx := cmd.Context()
			for _, id := range users {
				if err := app.Users.Validate(ctx, id); err != nil {
					return err
				}
			}

			if outPath == "" {
				return app.Transfer.Export(ctx, cmd.OutOrStdout(), users, format)
			}

			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("creating %s: %w", outPath, err)
			}
			if err := app.Transfer.Export(ctx, f, users, format); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("writing %s: %w", outPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&users, "user", "u", nil, "User ID to export (repeatable, default all users with items)")
	formatVar(cmd.Flags(), &format, "format", "Output format: json or yaml (default from --out extension, else json)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write to file instead of stdout")

	return cmd
}
