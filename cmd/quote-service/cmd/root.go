// Package cmd implements the CLI commands for quote-service.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "quote-service",
	Short: "Procurement quotation backend",
	Long: "An API service that turns free-text procurement requests into English " +
		"quotation emails and distributor contact lists, backed by a supplier " +
		"directory with interchangeable storage backends.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
