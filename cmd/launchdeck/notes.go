package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/launchdeck/pkg/core"
)

var (
	notesJSON   bool
	noteTitle   string
	noteContent string
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Manage notes",
}

var notesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp()
		if err != nil {
			fatal("Error initializing launchdeck", err)
		}
		defer app.Close()

		notes, err := app.Notes.List(context.Background())
		if err != nil {
			fatal("Error listing notes", err)
		}

		if notesJSON {
			printJSON(notes)
			return
		}
		for _, n := range notes {
			fmt.Printf("%d %s - %s\n", n.ID, n.CreatedAt, n.Title)
		}
	},
}

var notesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a note",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp()
		if err != nil {
			fatal("Error initializing launchdeck", err)
		}
		defer app.Close()

		note, err := app.Notes.Create(context.Background(), core.Note{Title: noteTitle, Content: noteContent})
		if err != nil {
			fatal("Error creating note", err)
		}
		fmt.Printf("Note created: %d\n", note.ID)
	},
}

var notesEditCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Update the title and/or content of a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp()
		if err != nil {
			fatal("Error initializing launchdeck", err)
		}
		defer app.Close()

		id, err := app.Notes.ParseKey(args[0])
		if err != nil {
			fatal("Error parsing note id", err)
		}

		var patch core.NotePatch
		if cmd.Flags().Changed("title") {
			patch.Title = &noteTitle
		}
		if cmd.Flags().Changed("content") {
			patch.Content = &noteContent
		}

		note, err := app.Notes.Update(context.Background(), id, patch)
		if err != nil {
			fatal("Error updating note", err)
		}
		fmt.Printf("Note updated: %d\n", note.ID)
	},
}

var notesDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app, err := openApp()
		if err != nil {
			fatal("Error initializing launchdeck", err)
		}
		defer app.Close()

		id, err := app.Notes.ParseKey(args[0])
		if err != nil {
			fatal("Error parsing note id", err)
		}
		if err := app.Notes.Delete(context.Background(), id); err != nil {
			fatal("Error deleting note", err)
		}
		fmt.Printf("Note deleted: %d\n", id)
	},
}

func init() {
	notesListCmd.Flags().BoolVar(&notesJSON, "json", false, "Output in JSON format")
	for _, c := range []*cobra.Command{notesAddCmd, notesEditCmd} {
		c.Flags().StringVarP(&noteTitle, "title", "t", "", "Note title")
		c.Flags().StringVarP(&noteContent, "content", "c", "", "Note content")
	}

	notesCmd.AddCommand(notesListCmd, notesAddCmd, notesEditCmd, notesDeleteCmd)
	rootCmd.AddCommand(notesCmd)
}

func printJSON(v any) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		fatal("Error encoding JSON", err)
	}
}
