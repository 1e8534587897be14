package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/renoworks/renoquote/internal/model"
	"github.com/renoworks/renoquote/internal/project"
)

var (
	flagProjectName string
	flagClientName  string
)

var newCmd = &cobra.Command{
	Use:   "new <project-file.json>",
	Short: "Create a new project file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		name := flagProjectName
		if name == "" {
			name = "Bathroom Renovation"
		}

		p := model.NewProject(name, flagClientName)
		if err := project.Save(path, p); err != nil {
			return fmt.Errorf("save project: %w", err)
		}

		okColor.Printf("Created project %s", p.Name)
		if p.Client != "" {
			okColor.Printf(" for %s", p.Client)
		}
		fmt.Printf(" (%s)\n", path)
		fmt.Println("Edit the design sections in the file, then run: renoquote estimate", path)
		return nil
	},
}

func init() {
	newCmd.Flags().StringVarP(&flagProjectName, "name", "n", "", "project name")
	newCmd.Flags().StringVarP(&flagClientName, "client", "c", "", "client name")
	rootCmd.AddCommand(newCmd)
}
