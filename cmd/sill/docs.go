package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/sill/internal/cli"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Render the schema as a markdown reference",
	Long: `Prints a markdown table describing every schema field. On a terminal the
output is styled; piped output is raw markdown ready for a README.`,
	Run: func(cmd *cobra.Command, args []string) {
		schemaPath, _ := cmd.Flags().GetString("schema")
		raw, _ := cmd.Flags().GetBool("raw")

		if err := cli.RunDocs(cli.DocsOptions{SchemaPath: schemaPath, Raw: raw}); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)

	docsCmd.Flags().Bool("raw", false, "Print raw markdown even on a terminal")
}
