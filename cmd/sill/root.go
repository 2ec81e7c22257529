package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sill",
	Short: "Sill validates process environments against a schema",
	Long: `Sill checks environment variables against a declarative schema:
required keys, typed coercion and custom rules, reported all at once.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("schema", "s", "sill.yaml", "Path to the schema file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}
