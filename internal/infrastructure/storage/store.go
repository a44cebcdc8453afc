package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"ynvbites/internal/domain"
)

// Store owns the on-disk JSON document. Every operation works on the
// complete document; the mutex serializes the load-mutate-save sequence
// so concurrent requests cannot lose each other's writes.
type Store struct {
	fs     afero.Fs
	path   string
	mu     sync.Mutex
	logger *zap.Logger
}

func New(fs afero.Fs, path string, logger *zap.Logger) *Store {
	return &Store{
		fs:     fs,
		path:   path,
		logger: logger,
	}
}

// Load returns the full document. An absent backing file yields an empty
// default document; malformed content is an error.
func (s *Store) Load() (*domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Update loads the document, applies fn, and persists the result. If fn
// returns an error nothing is written. The returned document is the
// persisted state.
func (s *Store) Update(fn func(doc *domain.Document) error) (*domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	if err := fn(doc); err != nil {
		return nil, err
	}
	if err := s.save(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// EnsureSeeded writes the seed document if no backing file exists yet.
// It reports whether seeding happened.
func (s *Store) EnsureSeeded(seed *domain.Document) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exists, err := afero.Exists(s.fs, s.path)
	if err != nil {
		return false, fmt.Errorf("checking data file: %w", err)
	}
	if exists {
		return false, nil
	}
	if err := s.save(seed); err != nil {
		return false, err
	}
	s.logger.Info("data file seeded", zap.String("path", s.path))
	return true, nil
}

func (s *Store) load() (*domain.Document, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.NewDocument(), nil
		}
		return nil, fmt.Errorf("reading data file: %w", err)
	}

	var doc domain.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing data file: %w", err)
	}
	return &doc, nil
}

// save writes the whole document through a temp file and rename so a
// reader never observes a partial write.
func (s *Store) save(doc *domain.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding data file: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing data file: %w", err)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing data file: %w", err)
	}
	return nil
}
