package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/sill/internal/cli"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the environment against the schema",
	Long: `Loads the schema, layers the process environment over any --env-file
sources and reports every problem at once. Exits 1 when validation fails.`,
	Run: func(cmd *cobra.Command, args []string) {
		schemaPath, _ := cmd.Flags().GetString("schema")
		envFiles, _ := cmd.Flags().GetStringArray("env-file")
		noEnviron, _ := cmd.Flags().GetBool("no-environ")
		jsonMode, _ := cmd.Flags().GetBool("json")
		watchMode, _ := cmd.Flags().GetBool("watch")
		debug, _ := cmd.Flags().GetBool("debug")

		opts := cli.CheckOptions{
			SchemaPath: schemaPath,
			EnvFiles:   envFiles,
			NoEnviron:  noEnviron,
			JSON:       jsonMode,
			Debug:      debug,
		}

		if watchMode {
			if err := cli.RunWatch(opts); err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			return
		}

		if err := cli.RunCheck(opts); err != nil {
			// The report already names every failure; only runtime
			// errors need printing here.
			if !errors.Is(err, cli.ErrEnvironmentInvalid) {
				fmt.Printf("Error: %v\n", err)
			}
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringArray("env-file", nil, "Env file to layer under the process environment (repeatable)")
	checkCmd.Flags().Bool("no-environ", false, "Ignore the process environment")
	checkCmd.Flags().Bool("json", false, "Print the report as JSON")
	checkCmd.Flags().BoolP("watch", "w", false, "Re-check whenever the schema or env files change")

	// Make 'check' the default if no command is provided
	rootCmd.Run = checkCmd.Run
}
