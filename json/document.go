// Package json persists documents in a versioned JSON envelope.
package json

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/docconv"
)

// envelope is the v1 wire format for a persisted document.
type envelope struct {
	Version int        `json:"version"`
	Title   string     `json:"title,omitempty"`
	Blocks  []blockDTO `json:"blocks"`
}

// MarshalDocument serializes a Document to JSON in v1 envelope format.
func MarshalDocument(doc docconv.Document, meta docconv.Meta) ([]byte, error) {
	env := envelope{
		Version: 1,
		Title:   meta.Title,
		Blocks:  make([]blockDTO, len(doc.Blocks)),
	}
	for i, b := range doc.Blocks {
		dto, err := marshalBlock(b)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		env.Blocks[i] = dto
	}
	return json.MarshalIndent(env, "", "  ")
}

// UnmarshalDocument deserializes a Document from JSON in v1 envelope format.
// The decoded document must satisfy docconv.Validate.
func UnmarshalDocument(data []byte) (docconv.Document, docconv.Meta, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return docconv.Document{}, docconv.Meta{}, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.Version != 1 {
		return docconv.Document{}, docconv.Meta{}, fmt.Errorf("unsupported envelope version: %d", env.Version)
	}
	blocks := make([]docconv.Block, len(env.Blocks))
	for i, dto := range env.Blocks {
		b, err := unmarshalBlock(dto)
		if err != nil {
			return docconv.Document{}, docconv.Meta{}, fmt.Errorf("block %d: %w", i, err)
		}
		blocks[i] = b
	}
	doc := docconv.Document{Blocks: blocks}
	if err := docconv.Validate(doc); err != nil {
		return docconv.Document{}, docconv.Meta{}, err
	}
	return doc, docconv.Meta{Title: env.Title}, nil
}

// Save writes a Document to a JSON file, creating parent directories as
// needed. The file is replaced atomically.
func Save(path string, doc docconv.Document, meta docconv.Meta) error {
	data, err := MarshalDocument(doc, meta)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp) // best-effort cleanup
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Load reads a Document from a JSON file.
func Load(path string) (docconv.Document, docconv.Meta, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return docconv.Document{}, docconv.Meta{}, fmt.Errorf("read file: %w", err)
	}
	return UnmarshalDocument(data)
}
