package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/sill"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of sill",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sill version %s\n", strings.TrimSpace(sill.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
