package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/vedanth-raj/sectionize/internal/paper"
)

const fileSuffix = "_sections.json"

// Store keeps analyzed documents in memory and mirrors each one to a
// JSON file under the data directory, so a corpus survives restarts.
// The serialized form is the stable contract other collaborators read.
type Store struct {
	mu   sync.RWMutex
	dir  string
	docs map[string]*paper.DocumentSectionSet
	log  *slog.Logger
}

// Entry is a lightweight listing of one stored document.
type Entry struct {
	ID            string `json:"doc_id"`
	Title         string `json:"title"`
	TotalSections int    `json:"total_sections"`
	TotalWords    int    `json:"total_words"`
}

// Open creates the data directory if needed and loads every previously
// persisted document. Unreadable files are logged and skipped, never
// fatal.
func Open(dir string, log *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	s := &Store{
		dir:  dir,
		docs: make(map[string]*paper.DocumentSectionSet),
		log:  log,
	}
	if err := s.loadAll(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) loadAll() error {
	matches, err := filepath.Glob(filepath.Join(s.dir, "*"+fileSuffix))
	if err != nil {
		return err
	}
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			s.log.Warn("skipping unreadable document", "path", path, "error", err)
			continue
		}
		var set paper.DocumentSectionSet
		if err := json.Unmarshal(data, &set); err != nil {
			s.log.Warn("skipping malformed document", "path", path, "error", err)
			continue
		}
		id := strings.TrimSuffix(filepath.Base(path), fileSuffix)
		s.docs[id] = &set
	}
	s.log.Info("loaded document store", "dir", s.dir, "documents", len(s.docs))
	return nil
}

// Put stores a document under id and persists it to disk.
func (s *Store) Put(id string, set *paper.DocumentSectionSet) error {
	id = sanitizeID(id)
	if id == "" {
		return fmt.Errorf("empty document id")
	}

	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	path := filepath.Join(s.dir, id+fileSuffix)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}

	s.mu.Lock()
	s.docs[id] = set
	s.mu.Unlock()
	return nil
}

// Get returns the document stored under id.
func (s *Store) Get(id string) (*paper.DocumentSectionSet, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	set, ok := s.docs[sanitizeID(id)]
	return set, ok
}

// Delete removes a document from memory and disk.
func (s *Store) Delete(id string) error {
	id = sanitizeID(id)

	s.mu.Lock()
	_, ok := s.docs[id]
	delete(s.docs, id)
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("document not found: %s", id)
	}
	path := filepath.Join(s.dir, id+fileSuffix)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove document file: %w", err)
	}
	return nil
}

// List returns a summary of every stored document, sorted by id.
func (s *Store) List() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, 0, len(s.docs))
	for id, set := range s.docs {
		out = append(out, Entry{
			ID:            id,
			Title:         set.Metadata.Title,
			TotalSections: set.Summary.TotalSections,
			TotalWords:    set.Summary.TotalWords,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// All returns every stored document, sorted by id so callers see a
// stable corpus order.
func (s *Store) All() []paper.DocumentSectionSet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.docs))
	for id := range s.docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]paper.DocumentSectionSet, 0, len(ids))
	for _, id := range ids {
		out = append(out, *s.docs[id])
	}
	return out
}

// Len reports the number of stored documents.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

// sanitizeID keeps ids safe for use as file names.
func sanitizeID(id string) string {
	id = filepath.Base(strings.TrimSpace(id))
	id = strings.ReplaceAll(id, "..", "_")
	var b strings.Builder
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '-', r == '_', r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return strings.Trim(b.String(), "._")
}
