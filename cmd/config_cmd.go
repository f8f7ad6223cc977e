package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tryny8/App-budget-flow/internal/cli"
	"github.com/Tryny8/App-budget-flow/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Database: %s\n", dbPath(cfg))
	fmt.Println()

	fmt.Println("  [Overdraft]")
	if cfg.Overdraft.Enabled {
		fmt.Println("    Enabled: yes")
		fmt.Printf("    Limit:   %s\n", cli.FormatAmount(cfg.Overdraft.Limit))
	} else {
		fmt.Println("    Enabled: no (negative budgets are shown as-is)")
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `budgetflow setup` to reconfigure.")
	return nil
}
