package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/sill/pkg/dotenv"
	"github.com/aretw0/sill/pkg/schemafile"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile env files with the schema",
	Long: `Rewrites each target env file to contain exactly the schema's fields.
Existing target values win, then source values, then defaults or
placeholders. Keys not in the schema are dropped.`,
	Run: func(cmd *cobra.Command, args []string) {
		schemaPath, _ := cmd.Flags().GetString("schema")
		sourcePath, _ := cmd.Flags().GetString("source")
		targets, _ := cmd.Flags().GetStringArray("target")

		if err := runSync(schemaPath, sourcePath, targets); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		for _, target := range targets {
			fmt.Printf("Synced %s ✅\n", target)
		}
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)

	syncCmd.Flags().String("source", ".env", "Source env file")
	syncCmd.Flags().StringArray("target", nil, "Target env file to reconcile (repeatable)")
}

func runSync(schemaPath, sourcePath string, targets []string) error {
	if len(targets) == 0 {
		return fmt.Errorf("at least one --target is required")
	}

	s, err := schemafile.Load(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to load schema: %w", err)
	}

	return dotenv.Sync(s, sourcePath, targets...)
}
