// Package store keeps named boards as JSON files in a directory,
// one file per board, keyed by a string identifier.
package store

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"aboard/internal/state"
)

const boardExt = ".json"

// Store manages the boards directory.
type Store struct {
	dir string
}

// New opens (creating if needed) a store over the given directory.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create boards dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory the store manages.
func (s *Store) Dir() string { return s.dir }

// List returns the stored board identifiers, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), boardExt) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), boardExt))
	}
	sort.Strings(ids)
	return ids, nil
}

// Save writes the document and palette under the given identifier. An
// empty identifier mints a fresh one. Returns the identifier used.
func (s *Store) Save(id string, doc *state.Document, pal *state.Palette) (string, error) {
	if id == "" {
		id = uuid.NewString()
	}
	data, err := state.Encode(doc, pal)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(s.path(id), data, 0o644); err != nil {
		return "", fmt.Errorf("save board %s: %w", id, err)
	}
	log.Printf("store: saved board %s (%d strokes, %d shapes, %d texts)",
		id, len(doc.Strokes), len(doc.Shapes), len(doc.Texts))
	return id, nil
}

// Load reads a board back. Missing or partial fields inside the file
// come back as defaults; only unreadable files or broken JSON fail.
func (s *Store) Load(id string) (*state.Document, *state.Palette, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		return nil, nil, fmt.Errorf("load board %s: %w", id, err)
	}
	doc, pal, err := state.Decode(data)
	if err != nil {
		return nil, nil, fmt.Errorf("load board %s: %w", id, err)
	}
	log.Printf("store: loaded board %s (%d strokes, %d shapes, %d texts)",
		id, len(doc.Strokes), len(doc.Shapes), len(doc.Texts))
	return doc, pal, nil
}

// Delete removes a stored board.
func (s *Store) Delete(id string) error {
	if err := os.Remove(s.path(id)); err != nil {
		return fmt.Errorf("delete board %s: %w", id, err)
	}
	log.Printf("store: deleted board %s", id)
	return nil
}

// path maps an identifier to its file, flattening anything that could
// escape the boards directory.
func (s *Store) path(id string) string {
	return filepath.Join(s.dir, filepath.Base(id)+boardExt)
}
