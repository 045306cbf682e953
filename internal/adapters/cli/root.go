package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath  string
	characterID int64
	regionID    int64
	verbose     bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "industry",
		Short: "Industry CLI - Resolve production plans and optimize invention",
		Long: `Industry CLI resolves full bills of materials for manufacturable items,
applying blueprint research, facility and rig bonuses, and produces a
costed, time-estimated production plan.

Examples:
  industry plan --item 603 --runs 10 --me 10 --te 20
  industry plan --item 603 --runs 10 --facility RAITARU-JITA --with-pricing
  industry plan --item 12042 --buy 11399 --max-depth 2
  industry invention --item 12042 --strategy cost
  industry invention --item 12042 --strategy volume --volume 1000`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: search ./config.yaml)")
	rootCmd.PersistentFlags().Int64Var(&characterID, "character", 0,
		"Character ID for skills and owned blueprints")
	rootCmd.PersistentFlags().Int64Var(&regionID, "region", 0,
		"Market region ID (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")

	rootCmd.AddCommand(NewPlanCommand())
	rootCmd.AddCommand(NewInventionCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
