package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Tryny8/App-budget-flow/internal/cli"
	"github.com/Tryny8/App-budget-flow/internal/config"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to budgetflow!")
	fmt.Println()

	// 1. Overdraft
	fmt.Println("  1. Overdraft allowance")
	fmt.Println("     When enabled, a negative budget shows as 0 available")
	fmt.Println("     and eats into a credit buffer instead.")
	if cfg.Overdraft.Enabled {
		fmt.Printf("     Current: enabled, limit %s\n", cli.FormatAmount(cfg.Overdraft.Limit))
	}
	fmt.Print("     Enable overdraft? (y/N) > ")
	answer, _ := reader.ReadString('\n')
	cfg.Overdraft.Enabled = strings.EqualFold(strings.TrimSpace(answer), "y")

	if cfg.Overdraft.Enabled {
		fmt.Print("     Overdraft limit (e.g. 300.00) > ")
		raw, _ := reader.ReadString('\n')
		raw = strings.TrimSpace(raw)
		if raw != "" {
			limit, err := decimal.NewFromString(raw)
			if err != nil || limit.IsNegative() {
				fmt.Printf("     Ignoring invalid limit %q, keeping %s\n", raw, cli.FormatAmount(cfg.Overdraft.Limit))
			} else {
				cfg.Overdraft.Limit = limit
			}
		}
	}
	fmt.Println()

	// 2. Theme
	fmt.Println("  2. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Println("     (3) Tokyo Night")
	fmt.Println("     (4) Terminal (ANSI 16)")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(choice) {
	case "2":
		cfg.Appearance.Theme = "catppuccin-mocha"
	case "3":
		cfg.Appearance.Theme = "tokyo-night"
	case "4":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `budgetflow setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
