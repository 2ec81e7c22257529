package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/sill/pkg/dotenv"
	"github.com/aretw0/sill/pkg/schemafile"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write an example env file from the schema",
	Long: `Generates an annotated example env file with one entry per schema field,
using declared defaults where present and type placeholders otherwise.`,
	Run: func(cmd *cobra.Command, args []string) {
		schemaPath, _ := cmd.Flags().GetString("schema")
		outPath, _ := cmd.Flags().GetString("out")
		force, _ := cmd.Flags().GetBool("force")

		if err := runInit(schemaPath, outPath, force); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s ✅\n", outPath)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringP("out", "o", ".env.example", "Output path")
	initCmd.Flags().BoolP("force", "f", false, "Overwrite an existing file")
}

func runInit(schemaPath, outPath string, force bool) error {
	s, err := schemafile.Load(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to load schema: %w", err)
	}

	if !force {
		if _, err := os.Stat(outPath); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", outPath)
		}
	}

	return dotenv.WriteExample(s, outPath)
}
