package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/renoworks/renoquote/internal/model"
	"github.com/renoworks/renoquote/internal/project"
	"github.com/renoworks/renoquote/internal/store"
)

var flagBackupDB string

var backupCmd = &cobra.Command{
	Use:   "backup <backup-file.json>",
	Short: "Export the profile and every stored project to one JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := project.LoadSettings(flagSettingsPath)
		if err != nil {
			return err
		}

		st, err := store.Open(backupDBPath())
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		summaries, err := st.ListProjects(ctx)
		if err != nil {
			return err
		}
		projects := make([]*model.Project, 0, len(summaries))
		for _, ps := range summaries {
			p, err := st.GetProject(ctx, ps.ID)
			if err != nil {
				return err
			}
			projects = append(projects, p)
		}

		if err := project.ExportAllData(args[0], settings, projects); err != nil {
			return err
		}
		okColor.Printf("Backed up %d projects to %s\n", len(projects), args[0])
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore <backup-file.json>",
	Short: "Restore the profile and projects from a backup file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backup, err := project.ImportAllData(args[0])
		if err != nil {
			return err
		}

		if err := project.SaveSettings(flagSettingsPath, backup.Settings); err != nil {
			return fmt.Errorf("save settings: %w", err)
		}

		st, err := store.Open(backupDBPath())
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		for _, p := range backup.Projects {
			if err := st.SaveProject(ctx, p); err != nil {
				return fmt.Errorf("restore project %s: %w", p.ID, err)
			}
		}
		okColor.Printf("Restored %d projects from %s\n", len(backup.Projects), args[0])
		return nil
	},
}

func backupDBPath() string {
	if flagBackupDB != "" {
		return flagBackupDB
	}
	return filepath.Join(project.DefaultConfigDir(), "renoquote.db")
}

func init() {
	backupCmd.Flags().StringVar(&flagBackupDB, "db", "", "sqlite database path (default ~/.renoquote/renoquote.db)")
	restoreCmd.Flags().StringVar(&flagBackupDB, "db", "", "sqlite database path (default ~/.renoquote/renoquote.db)")
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
}
