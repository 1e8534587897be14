package cli

import (
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/renoworks/renoquote/internal/project"
	"github.com/renoworks/renoquote/internal/server"
	"github.com/renoworks/renoquote/internal/store"
)

var (
	flagServeAddr string
	flagServeDB   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the JSON HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath := flagServeDB
		if dbPath == "" {
			dbPath = filepath.Join(project.DefaultConfigDir(), "renoquote.db")
		}

		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		srv := server.New(st, flagSettingsPath, slog.Default())
		slog.Info("listening", "addr", flagServeAddr, "db", dbPath)
		return http.ListenAndServe(flagServeAddr, srv.Routes())
	},
}

func init() {
	serveCmd.Flags().StringVarP(&flagServeAddr, "addr", "a", ":8080", "listen address")
	serveCmd.Flags().StringVar(&flagServeDB, "db", "", "sqlite database path (default ~/.renoquote/renoquote.db)")
	rootCmd.AddCommand(serveCmd)
}
