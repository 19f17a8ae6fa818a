package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/launchdeck"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of launchdeck",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("launchdeck version %s\n", strings.TrimSpace(launchdeck.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
