package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open [path]",
	Short: "Open a program or folder with the OS default handler",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp()
		if err != nil {
			fatal("Error initializing launchdeck", err)
		}
		defer app.Close()

		if err := app.Launcher.Open(context.Background(), args[0]); err != nil {
			fatal("Error launching", err)
		}
		fmt.Printf("Opened: %s\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}
