package testutil

import (
	"testing"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"ynvbites/internal/domain"
	"ynvbites/internal/infrastructure/storage"
)

// NewStore returns a document store backed by an in-memory filesystem.
func NewStore(t *testing.T) *storage.Store {
	t.Helper()
	return storage.New(afero.NewMemMapFs(), "database.json", zap.NewNop())
}

// NewSeededStore returns an in-memory store pre-populated with doc.
func NewSeededStore(t *testing.T, doc *domain.Document) *storage.Store {
	t.Helper()
	store := NewStore(t)
	if _, err := store.EnsureSeeded(doc); err != nil {
		t.Fatalf("seeding test store: %v", err)
	}
	return store
}
