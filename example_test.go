package launchdeck_test

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aretw0/launchdeck"
)

// Example_basic demonstrates how to open a data directory, add a launch item
// and read it back.
func Example_basic() {
	tmpDir, err := os.MkdirTemp("", "launchdeck-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	app, err := launchdeck.New(tmpDir)
	if err != nil {
		log.Fatal(err)
	}
	defer app.Close()

	ctx := context.Background()

	_, err = app.LaunchItems.Create(ctx, launchdeck.LaunchItem{
		ID:   "docs",
		Name: "Documents",
		Type: "folder",
		Path: "/home/gopher/Documents",
	})
	if err != nil {
		log.Fatal(err)
	}

	item, err := app.LaunchItems.Get(ctx, "docs")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Found launch item: %s (%s)\n", item.Name, item.Path)
	// Output:
	// Found launch item: Documents (/home/gopher/Documents)
}
