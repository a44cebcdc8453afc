package repository

import (
	"context"

	"ynvbites/internal/domain"
	"ynvbites/internal/infrastructure/storage"
)

// ProductRepository is read-only; the catalog is seeded on first run.
type ProductRepository struct {
	store *storage.Store
}

func NewProductRepository(store *storage.Store) *ProductRepository {
	return &ProductRepository{store: store}
}

func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	doc, err := r.store.Load()
	if err != nil {
		return nil, err
	}
	if doc.Products == nil {
		return []domain.Product{}, nil
	}
	return doc.Products, nil
}
