// Package launchdeck is the composition root for the launchdeck helper.
//
// launchdeck is a small local service that sits next to a browser dashboard.
// It opens programs and folders with the host's "open" command and keeps two
// collections on disk: launch items (shortcuts with caller-chosen ids) and
// notes (server-assigned numeric ids and creation timestamps).
//
// Each collection is loaded and saved whole. Every mutation runs under a
// per-collection lock as load, mutate, save, so concurrent requests in one
// process never lose writes. Saves are atomic: a crash leaves either the old
// file or the new one.
//
// Storage backends:
//
//   - json (default): data/notes.json and data/launch-items.json.
//   - yaml: the same collections as YAML documents.
//   - sqlite: one row per collection in data/launchdeck.db.
//
// Usage:
//
//	app, err := launchdeck.New("./data", launchdeck.WithBackend("json"))
//	if err != nil {
//		return err
//	}
//	defer app.Close()
//
//	note, err := app.Notes.Create(ctx, launchdeck.Note{Title: "Groceries", Content: "milk"})
package launchdeck
