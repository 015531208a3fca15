// Package history keeps a bounded record of previously shown meme URLs so
// consecutive runs avoid repeats.
package history

import (
	"encoding/json"
	"fmt"
	"os"
)

// historyFile is the on-disk layout of the store.
type historyFile struct {
	ShownMemes []string `json:"shown_memes"`
}

// Store is a bounded, ordered record of shown image URLs, oldest first.
// It is not safe for concurrent use; the refresh pipeline is single threaded
// and overlapping program runs are held off by the run lock.
type Store struct {
	path string
	max  int

	urls  []string
	known map[string]bool
}

// NewStore creates a store persisting to path, keeping at most max entries.
func NewStore(path string, max int) *Store {
	return &Store{path: path, max: max, known: make(map[string]bool)}
}

// Load reads the history file. A missing file leaves the store empty. A
// record longer than the bound (a lowered max_history) is trimmed to the
// newest entries on load.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read history file: %w", err)
	}

	var f historyFile
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("failed to parse history file %s: %w", s.path, err)
	}

	s.urls = f.ShownMemes
	s.truncate()
	s.reindex()
	return nil
}

// Contains reports whether url has been shown before.
func (s *Store) Contains(url string) bool {
	return s.known[url]
}

// Add appends url and drops the oldest entries beyond the bound. The caller
// persists the change with Save.
func (s *Store) Add(url string) {
	s.urls = append(s.urls, url)
	s.truncate()
	s.reindex()
}

// Save writes the record atomically: encode to a sibling temp file, then
// rename it over the old one.
func (s *Store) Save() error {
	record := historyFile{ShownMemes: s.urls}
	if record.ShownMemes == nil {
		record.ShownMemes = []string{}
	}

	tmp := s.path + ".tmp"
	file, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create history file: %w", err)
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(record); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode history: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close history file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace history file: %w", err)
	}
	return nil
}

// Entries returns a copy of the stored URLs, oldest first.
func (s *Store) Entries() []string {
	res := make([]string, len(s.urls))
	copy(res, s.urls)
	return res
}

// Len returns the number of stored URLs.
func (s *Store) Len() int {
	return len(s.urls)
}

// Clear empties the store and persists the empty record.
func (s *Store) Clear() error {
	s.urls = nil
	s.known = make(map[string]bool)
	return s.Save()
}

func (s *Store) truncate() {
	if s.max > 0 && len(s.urls) > s.max {
		s.urls = s.urls[len(s.urls)-s.max:]
	}
}

func (s *Store) reindex() {
	s.known = make(map[string]bool, len(s.urls))
	for _, u := range s.urls {
		s.known[u] = true
	}
}
