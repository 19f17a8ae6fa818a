package core

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Collection names double as storage keys (file stem, SQLite row).
const (
	CollectionLaunchItems = "launch-items"
	CollectionNotes       = "notes"
)

// TimestampLayout renders creation times as UTC ISO-8601 with milliseconds.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// LaunchItem is a saved shortcut to a program or folder.
// Its ID is chosen by the caller.
type LaunchItem struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
	Path string `json:"path" yaml:"path"`
}

// LaunchItemPatch carries the fields of a partial launch item update.
// Nil fields are left untouched.
type LaunchItemPatch struct {
	Name *string `json:"name,omitempty"`
	Type *string `json:"type,omitempty"`
	Path *string `json:"path,omitempty"`
}

// Apply implements Patch.
func (p LaunchItemPatch) Apply(item LaunchItem) LaunchItem {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Type != nil {
		item.Type = *p.Type
	}
	if p.Path != nil {
		item.Path = *p.Path
	}
	return item
}

// Note is a free-form note. Its ID is assigned by the service from the
// creation time in milliseconds.
type Note struct {
	ID        int64  `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Content   string `json:"content" yaml:"content"`
	CreatedAt string `json:"createdAt" yaml:"createdAt"`
}

// NotePatch carries the fields of a partial note update.
type NotePatch struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// Apply implements Patch.
func (p NotePatch) Apply(n Note) Note {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
	return n
}

// LaunchItemSchema describes the launch item collection.
var LaunchItemSchema = Schema[LaunchItem, string]{
	Kind: "launch item",
	Key:  func(i LaunchItem) string { return i.ID },
	ParseKey: func(s string) (string, error) {
		if strings.TrimSpace(s) == "" {
			return "", fmt.Errorf("%w: launch item id is required", ErrValidation)
		}
		return s, nil
	},
	Validate: func(i LaunchItem) error {
		return requireFields("launch item",
			field{"id", i.ID},
			field{"name", i.Name},
			field{"type", i.Type},
			field{"path", i.Path},
		)
	},
}

// NoteSchema describes the note collection. IDs are server assigned.
var NoteSchema = Schema[Note, int64]{
	Kind: "note",
	Key:  func(n Note) int64 { return n.ID },
	ParseKey: func(s string) (int64, error) {
		id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: invalid note ID %q", ErrValidation, s)
		}
		return id, nil
	},
	Validate: func(n Note) error {
		return requireFields("note",
			field{"title", n.Title},
			field{"content", n.Content},
		)
	},
	Assign: func(n Note, existing []Note, now time.Time) Note {
		id := now.UnixMilli()
		for _, e := range existing {
			if e.ID >= id {
				id = e.ID + 1
			}
		}
		n.ID = id
		n.CreatedAt = now.UTC().Format(TimestampLayout)
		return n
	},
}

type field struct {
	name  string
	value string
}

func requireFields(kind string, fields ...field) error {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s requires %s", ErrValidation, kind, strings.Join(missing, ", "))
	}
	return nil
}

// EventType represents the type of change in a collection.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change observed on a collection's storage.
type Event struct {
	Type       EventType
	Collection string
	Timestamp  int64 // Unix timestamp
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Collection)
}
