package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/renoworks/renoquote/internal/export"
	"github.com/renoworks/renoquote/internal/project"
)

var (
	flagExportFormat string
	flagExportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export <project-file.json>",
	Short: "Export the estimate as a PDF or Excel document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := project.Load(args[0])
		if err != nil {
			return err
		}
		settings, err := project.LoadSettings(flagSettingsPath)
		if err != nil {
			return fmt.Errorf("load settings: %w", err)
		}

		format := strings.ToLower(flagExportFormat)
		out := flagExportOut
		if out == "" {
			out = "estimate-" + p.ID + "." + format
		}

		switch format {
		case "pdf":
			err = export.ExportPDF(out, p, settings)
		case "xlsx":
			err = export.ExportXLSX(out, p, settings)
		default:
			return fmt.Errorf("unknown format %q (want pdf or xlsx)", flagExportFormat)
		}
		if err != nil {
			return fmt.Errorf("export %s: %w", format, err)
		}

		okColor.Printf("Wrote %s\n", out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportFormat, "format", "f", "pdf", "output format: pdf or xlsx")
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "output path (default estimate-<id>.<format>)")
	rootCmd.AddCommand(exportCmd)
}
