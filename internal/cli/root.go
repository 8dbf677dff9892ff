// Package cli implements the regbook command-line interface.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "regbook",
	Short: "FCA compliance toolkit for small regulated firms",
	Long:  "Generates firm-specific policy documents from a tiered clause library,\nkeeps the gifts & hospitality register and validates approved-persons forms.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to config YAML (default ~/.regbook/config.yaml)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
