package repository

import (
	"context"

	"ynvbites/internal/domain"
	"ynvbites/internal/infrastructure/storage"
)

// ContactRepository is append-only; messages are read back only through
// the admin dashboard.
type ContactRepository struct {
	store *storage.Store
}

func NewContactRepository(store *storage.Store) *ContactRepository {
	return &ContactRepository{store: store}
}

func (r *ContactRepository) Insert(ctx context.Context, contact domain.Contact) error {
	_, err := r.store.Update(func(doc *domain.Document) error {
		doc.Contacts = append(doc.Contacts, contact)
		return nil
	})
	return err
}
