package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/renoworks/renoquote/internal/engine"
	"github.com/renoworks/renoquote/internal/model"
	"github.com/renoworks/renoquote/internal/project"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate <project-file.json>",
	Short: "Recompute the estimate from the project's design state",
	Long: `Derives labor and material items from every workflow's design,
merges them with the existing lists (hand-added items are preserved), saves
the project file, and prints the totals.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		p, err := project.Load(path)
		if err != nil {
			return err
		}
		settings, err := project.LoadSettings(flagSettingsPath)
		if err != nil {
			return fmt.Errorf("load settings: %w", err)
		}

		engine.Recompute(p, settings)
		if err := project.Save(path, p); err != nil {
			return fmt.Errorf("save project: %w", err)
		}

		printEstimate(p, settings)
		return nil
	},
}

// printEstimate writes the per-workflow breakdown and the priced total.
func printEstimate(p *model.Project, settings model.Settings) {
	cur := settings.Currency
	headColor.Printf("%s", p.Name)
	if p.Client != "" {
		fmt.Printf("  (%s)", p.Client)
	}
	fmt.Println()

	perWorkflow, grand := engine.ProjectTotals(p)
	for _, w := range model.AllWorkflows {
		t := perWorkflow[w]
		if t.Grand == 0 {
			continue
		}
		fmt.Printf("  %-22s labor %s%.2f   materials %s%.2f   ",
			w.Title(), cur, t.Labor, cur, t.Materials)
		totalColor.Printf("%s%.2f\n", cur, t.Grand)
	}

	b := engine.FinalPrice(grand.Grand, settings.MarkupPercent, settings.DiscountPercent, settings.TaxRate)
	fmt.Println()
	fmt.Printf("  %-22s %s%.2f\n", "Subtotal", cur, b.Subtotal)
	fmt.Printf("  %-22s %s%.2f\n", fmt.Sprintf("Markup (%.1f%%)", settings.MarkupPercent), cur, b.Markup)
	if b.Discount > 0 {
		fmt.Printf("  %-22s -%s%.2f\n", fmt.Sprintf("Discount (%.1f%%)", settings.DiscountPercent), cur, b.Discount)
	}
	fmt.Printf("  %-22s %s%.2f\n", fmt.Sprintf("Tax (%.2f)", settings.TaxRate), cur, b.Tax)
	totalColor.Printf("  %-22s %s%.2f\n", "Total", cur, b.Total)
}

func init() {
	rootCmd.AddCommand(estimateCmd)
}
