// Package cmd implements the CLI commands for allcascais.
package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "allcascais",
	Short: "Local services and real-estate directory for Cascais",
	Long: "An API server for the Cascais directory: service provider listings with " +
		"ratings and weekly schedules, promotional offers, real-estate listings, and " +
		"property search-request intake.",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		// Optional .env for local development; real deployments set the
		// environment directly.
		_ = godotenv.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
