package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aretw0/launchdeck/pkg/core"
)

var (
	itemsJSON bool
	itemName  string
	itemType  string
	itemPath  string
)

var itemsCmd = &cobra.Command{
	Use:     "items",
	Aliases: []string{"launch-items"},
	Short:   "Manage launch items",
}

var itemsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all launch items",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp()
		if err != nil {
			fatal("Error initializing launchdeck", err)
		}
		defer app.Close()

		items, err := app.LaunchItems.List(context.Background())
		if err != nil {
			fatal("Error listing launch items", err)
		}

		if itemsJSON {
			printJSON(items)
			return
		}
		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tTYPE\tPATH")
		for _, i := range items {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", i.ID, i.Name, i.Type, i.Path)
		}
		tw.Flush()
	},
}

var itemsAddCmd = &cobra.Command{
	Use:   "add [id]",
	Short: "Create a launch item",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp()
		if err != nil {
			fatal("Error initializing launchdeck", err)
		}
		defer app.Close()

		item := core.LaunchItem{ID: args[0], Name: itemName, Type: itemType, Path: itemPath}
		if _, err := app.LaunchItems.Create(context.Background(), item); err != nil {
			fatal("Error creating launch item", err)
		}
		fmt.Printf("Launch item created: %s\n", item.ID)
	},
}

var itemsEditCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Update fields of a launch item",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp()
		if err != nil {
			fatal("Error initializing launchdeck", err)
		}
		defer app.Close()

		var patch core.LaunchItemPatch
		if cmd.Flags().Changed("name") {
			patch.Name = &itemName
		}
		if cmd.Flags().Changed("type") {
			patch.Type = &itemType
		}
		if cmd.Flags().Changed("path") {
			patch.Path = &itemPath
		}

		if _, err := app.LaunchItems.Update(context.Background(), args[0], patch); err != nil {
			fatal("Error updating launch item", err)
		}
		fmt.Printf("Launch item updated: %s\n", args[0])
	},
}

var itemsDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a launch item",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp()
		if err != nil {
			fatal("Error initializing launchdeck", err)
		}
		defer app.Close()

		if err := app.LaunchItems.Delete(context.Background(), args[0]); err != nil {
			fatal("Error deleting launch item", err)
		}
		fmt.Printf("Launch item deleted: %s\n", args[0])
	},
}

var itemsLaunchCmd = &cobra.Command{
	Use:   "launch [id]",
	Short: "Open the path of a saved launch item",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp()
		if err != nil {
			fatal("Error initializing launchdeck", err)
		}
		defer app.Close()

		ctx := context.Background()
		item, err := app.LaunchItems.Get(ctx, args[0])
		if err != nil {
			fatal("Error reading launch item", err)
		}
		if err := app.Launcher.Open(ctx, item.Path); err != nil {
			fatal("Error launching", err)
		}
		fmt.Printf("%s launched successfully\n", item.Name)
	},
}

func init() {
	itemsListCmd.Flags().BoolVar(&itemsJSON, "json", false, "Output in JSON format")
	for _, c := range []*cobra.Command{itemsAddCmd, itemsEditCmd} {
		c.Flags().StringVar(&itemName, "name", "", "Display name")
		c.Flags().StringVar(&itemType, "type", "", "Item type, e.g. app or folder")
		c.Flags().StringVar(&itemPath, "path", "", "Path to open")
	}

	itemsCmd.AddCommand(itemsListCmd, itemsAddCmd, itemsEditCmd, itemsDeleteCmd, itemsLaunchCmd)
	rootCmd.AddCommand(itemsCmd)
}
