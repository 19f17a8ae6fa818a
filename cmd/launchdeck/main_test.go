package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/launchdeck/internal/config"
	"github.com/aretw0/launchdeck/internal/platform"
)

func run(t *testing.T, args ...string) {
	t.Helper()
	configFile = ""
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
}

func TestItemsCommands(t *testing.T) {
	dir := t.TempDir()

	run(t, "--data-dir", dir, "items", "add", "docs", "--name", "Documents", "--type", "folder", "--path", "/home/gopher/Documents")
	run(t, "--data-dir", dir, "items", "edit", "docs", "--name", "Docs")

	data, err := os.ReadFile(filepath.Join(dir, "launch-items.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"docs","name":"Docs","type":"folder","path":"/home/gopher/Documents"}]`, string(data))

	run(t, "--data-dir", dir, "items", "delete", "docs")
	data, err = os.ReadFile(filepath.Join(dir, "launch-items.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestNotesCommandsYAML(t *testing.T) {
	dir := t.TempDir()

	run(t, "--data-dir", dir, "--backend", "yaml", "notes", "add", "--title", "Groceries", "--content", "milk")

	data, err := os.ReadFile(filepath.Join(dir, "notes.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "title: Groceries")
	assert.Contains(t, string(data), "createdAt:")
}

func TestServeShutsDown(t *testing.T) {
	var err error
	t.Chdir(t.TempDir())
	cfg, err = config.Load("", nil)
	require.NoError(t, err)
	cfg.Server.Addr = "127.0.0.1:0"

	app, err := platform.New(t.TempDir())
	require.NoError(t, err)
	defer app.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, app) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
}
