package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/hance08/statement/internal/logging"
	"github.com/hance08/statement/internal/service"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewExportCmd(d *deps) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the statement as JSON or YAML",
		Example: `  statement export > statement.json
  statement export --format yaml --output statement.yaml`,
		Args: cobra.NoArgs,
		RunE: d.wrap("Export", func(cmd *cobra.Command, args []string, logData *logging.LogData) error {
			logData.AddData("format", format)

			if output == "" {
				return d.app.Service.Transaction.Export(format, cmd.OutOrStdout())
			}

			if err := exportToFile(d.app.Service.Transaction, format, output); err != nil {
				return err
			}
			pterm.Success.Printf("Exported to %s\n", output)
			return nil
		}),
	}

	cmd.Flags().StringVarP(&format, "format", "f", service.FormatJSON, "Output format: json or yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")

	return cmd
}

type exporter interface {
	Export(format string, w io.Writer) error
}

// exportToFile writes the export to path.
func exportToFile(svc exporter, format, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := writeAndClose(f, func(w io.Writer) error { return svc.Export(format, w) }); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// writeAndClose always closes wc. A failed close is returned, since buffered
// data may not have reached the disk.
func writeAndClose(wc io.WriteCloser, write func(io.Writer) error) error {
	if err := write(wc); err != nil {
		_ = wc.Close()
		return err
	}
	return wc.Close()
}
