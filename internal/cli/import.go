package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/renoworks/renoquote/internal/importer"
	"github.com/renoworks/renoquote/internal/model"
	"github.com/renoworks/renoquote/internal/project"
)

var flagImportWorkflow string

var importCmd = &cobra.Command{
	Use:   "import <project-file.json> <items.csv|items.xlsx>",
	Short: "Import custom line items from a CSV or Excel file",
	Long: `Reads rows from a spreadsheet and appends them to one workflow as
hand-added items. Recognized columns: name, hours, rate (labor) and name,
quantity, unit, price (materials). Imported items survive recomputes.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		workflow := model.Workflow(flagImportWorkflow)
		if !workflowExists(workflow) {
			return fmt.Errorf("unknown workflow %q", flagImportWorkflow)
		}

		p, err := project.Load(args[0])
		if err != nil {
			return err
		}

		result := importer.ImportFile(args[1], workflow)
		if len(result.Errors) > 0 {
			for _, e := range result.Errors {
				errColor.Printf("  %s\n", e)
			}
			return fmt.Errorf("import failed")
		}
		for _, w := range result.Warnings {
			warnColor.Printf("  %s\n", w)
		}

		set := p.ItemsFor(workflow)
		set.Labor = append(set.Labor, result.Labor...)
		set.Materials = append(set.Materials, result.Materials...)
		p.Touch()

		if err := project.Save(args[0], p); err != nil {
			return fmt.Errorf("save project: %w", err)
		}

		okColor.Printf("Imported %d labor and %d material items into %s\n",
			len(result.Labor), len(result.Materials), workflow.Title())
		return nil
	},
}

func workflowExists(w model.Workflow) bool {
	for _, v := range model.AllWorkflows {
		if v == w {
			return true
		}
	}
	return false
}

func init() {
	importCmd.Flags().StringVarP(&flagImportWorkflow, "workflow", "w", "", "target workflow (demolition, shower-walls, shower-base, floors, finishings, structural, trades)")
	importCmd.MarkFlagRequired("workflow")
	rootCmd.AddCommand(importCmd)
}
