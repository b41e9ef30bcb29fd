package store

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/togetai/feedback-api/internal/models"
)

// FileStore persists entries as a single pretty-printed JSON array on disk.
// Every mutation is a whole-document read-modify-write; the mutex serializes
// them within this process. Multiple processes sharing the same file are not
// protected — use the Postgres store for concurrent deployments.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Init creates the data directory and an empty JSON array file if they
// don't exist yet. Safe to call on every start.
func (s *FileStore) Init(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		if err := s.write([]models.FeedbackEntry{}); err != nil {
			return err
		}
		log.Printf("Created %s", s.path)
	} else if err != nil {
		return err
	}
	return nil
}

// read returns the stored entries, degrading to an empty slice on any
// read or parse failure. Callers must tolerate the empty result.
func (s *FileStore) read() []models.FeedbackEntry {
	data, err := os.ReadFile(s.path)
	if err != nil {
		log.Printf("Error reading feedback data: %v", err)
		return []models.FeedbackEntry{}
	}
	var entries []models.FeedbackEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("Error parsing feedback data: %v", err)
		return []models.FeedbackEntry{}
	}
	return entries
}

func (s *FileStore) write(entries []models.FeedbackEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

func (s *FileStore) ListAll(ctx context.Context) ([]models.FeedbackEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(), nil
}

func (s *FileStore) FindByEmail(ctx context.Context, email string) (*models.FeedbackEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.read() {
		if strings.EqualFold(strings.TrimSpace(e.Email), email) {
			found := e
			return &found, nil
		}
	}
	return nil, nil
}

func (s *FileStore) Insert(ctx context.Context, entry models.FeedbackEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.read()
	for _, e := range entries {
		if strings.EqualFold(strings.TrimSpace(e.Email), entry.Email) {
			return ErrDuplicateEmail
		}
	}
	return s.write(append(entries, entry))
}

func (s *FileStore) DeleteByID(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.read()
	kept := make([]models.FeedbackEntry, 0, len(entries))
	found := false
	for _, e := range entries {
		if e.ID == id {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return false, nil
	}
	return true, s.write(kept)
}

func (s *FileStore) Close() error {
	return nil
}
