package fs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Serializer defines how to read and write a collection in a specific file format.
type Serializer[R any] interface {
	// Parse decodes a whole collection.
	Parse(data []byte) ([]R, error)
	// Serialize encodes a whole collection.
	Serialize(records []R) ([]byte, error)
}

// DefaultSerializers returns the standard set of serializers keyed by extension.
func DefaultSerializers[R any](strict bool) map[string]Serializer[R] {
	return map[string]Serializer[R]{
		".json": NewJSONSerializer[R](strict),
		".yaml": NewYAMLSerializer[R](strict),
		".yml":  NewYAMLSerializer[R](strict),
	}
}

// --- JSON Serializer ---

// JSONSerializer handles reading and writing JSON arrays.
type JSONSerializer[R any] struct {
	// Strict rejects fields that the record type does not declare.
	Strict bool
}

// NewJSONSerializer creates a new JSON serializer.
func NewJSONSerializer[R any](strict bool) *JSONSerializer[R] {
	return &JSONSerializer[R]{Strict: strict}
}

func (s *JSONSerializer[R]) Parse(data []byte) ([]R, error) {
	records := []R{}
	if len(bytes.TrimSpace(data)) == 0 {
		return records, nil
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	if s.Strict {
		decoder.DisallowUnknownFields()
	}
	if err := decoder.Decode(&records); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	if decoder.More() {
		return nil, errors.New("invalid json: trailing data after collection")
	}
	if records == nil {
		// A literal null is treated as an empty collection.
		records = []R{}
	}
	return records, nil
}

func (s *JSONSerializer[R]) Serialize(records []R) ([]byte, error) {
	if records == nil {
		records = []R{}
	}
	// Text is stored as typed: no \u003c style escapes for <, > and &.
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// --- YAML Serializer ---

// YAMLSerializer handles reading and writing YAML sequences.
type YAMLSerializer[R any] struct {
	// Strict rejects fields that the record type does not declare.
	Strict bool
}

// NewYAMLSerializer creates a new YAML serializer.
func NewYAMLSerializer[R any](strict bool) *YAMLSerializer[R] {
	return &YAMLSerializer[R]{Strict: strict}
}

func (s *YAMLSerializer[R]) Parse(data []byte) ([]R, error) {
	records := []R{}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(s.Strict)
	if err := decoder.Decode(&records); err != nil {
		if errors.Is(err, io.EOF) {
			return []R{}, nil
		}
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	if records == nil {
		records = []R{}
	}
	return records, nil
}

func (s *YAMLSerializer[R]) Serialize(records []R) ([]byte, error) {
	if records == nil {
		records = []R{}
	}
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(records); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
