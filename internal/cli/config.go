package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/renoworks/renoquote/internal/project"
)

var (
	flagCfgCompany  string
	flagCfgPhone    string
	flagCfgEmail    string
	flagCfgRate     float64
	flagCfgMarkup   float64
	flagCfgDiscount float64
	flagCfgTax      float64
	flagCfgCurrency string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change the contractor profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return showConfig()
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := project.LoadSettings(flagSettingsPath)
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("company") {
			settings.CompanyName = flagCfgCompany
		}
		if cmd.Flags().Changed("phone") {
			settings.Phone = flagCfgPhone
		}
		if cmd.Flags().Changed("email") {
			settings.Email = flagCfgEmail
		}
		if cmd.Flags().Changed("rate") {
			settings.HourlyRate = flagCfgRate
		}
		if cmd.Flags().Changed("markup") {
			settings.MarkupPercent = flagCfgMarkup
		}
		if cmd.Flags().Changed("discount") {
			settings.DiscountPercent = flagCfgDiscount
		}
		if cmd.Flags().Changed("tax") {
			settings.TaxRate = flagCfgTax
		}
		if cmd.Flags().Changed("currency") {
			settings.Currency = flagCfgCurrency
		}

		if err := project.SaveSettings(flagSettingsPath, settings); err != nil {
			return fmt.Errorf("save settings: %w", err)
		}
		okColor.Println("Profile updated")
		return showConfig()
	},
}

func showConfig() error {
	settings, err := project.LoadSettings(flagSettingsPath)
	if err != nil {
		return err
	}
	headColor.Println("Contractor profile")
	fmt.Printf("  %-16s %s\n", "Company", settings.CompanyName)
	fmt.Printf("  %-16s %s\n", "Phone", settings.Phone)
	fmt.Printf("  %-16s %s\n", "Email", settings.Email)
	fmt.Printf("  %-16s %s%.2f/hr\n", "Hourly rate", settings.Currency, settings.HourlyRate)
	fmt.Printf("  %-16s %.1f%%\n", "Markup", settings.MarkupPercent)
	fmt.Printf("  %-16s %.1f%%\n", "Discount", settings.DiscountPercent)
	fmt.Printf("  %-16s %.2f\n", "Tax rate", settings.TaxRate)
	fmt.Printf("  %-16s %s\n", "Currency", settings.Currency)
	return nil
}

func init() {
	configSetCmd.Flags().StringVar(&flagCfgCompany, "company", "", "company name")
	configSetCmd.Flags().StringVar(&flagCfgPhone, "phone", "", "phone number")
	configSetCmd.Flags().StringVar(&flagCfgEmail, "email", "", "email address")
	configSetCmd.Flags().Float64Var(&flagCfgRate, "rate", 0, "default hourly labor rate")
	configSetCmd.Flags().Float64Var(&flagCfgMarkup, "markup", 0, "markup percent")
	configSetCmd.Flags().Float64Var(&flagCfgDiscount, "discount", 0, "discount percent")
	configSetCmd.Flags().Float64Var(&flagCfgTax, "tax", 0, "tax rate (e.g. 0.13)")
	configSetCmd.Flags().StringVar(&flagCfgCurrency, "currency", "", "currency symbol")
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
