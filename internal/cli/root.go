// Package cli implements the renoquote command line interface. Project files
// are plain JSON documents; the serve command switches to the SQLite-backed
// HTTP API.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/renoworks/renoquote/internal/project"
	"github.com/renoworks/renoquote/pkg/logging"
)

var (
	flagVerbose      bool
	flagSettingsPath string
)

var rootCmd = &cobra.Command{
	Use:   "renoquote",
	Short: "Bathroom renovation estimating for contractors",
	Long: `RenoQuote derives labor hours and material quantities from job
measurements and selections, keeps hand-added items across recomputes, and
produces client-ready PDF and Excel estimates.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(flagVerbose)
		if flagSettingsPath == "" {
			flagSettingsPath = project.DefaultSettingsPath()
		}
	},
}

// Execute runs the CLI and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		errColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagSettingsPath, "settings", "", "path to the contractor profile (default ~/.renoquote/config.json)")
}
