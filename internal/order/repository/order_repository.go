package repository

import (
	"context"
	"time"

	"ynvbites/internal/domain"
	"ynvbites/internal/errors"
	"ynvbites/internal/infrastructure/storage"
)

type OrderRepository struct {
	store *storage.Store
}

func NewOrderRepository(store *storage.Store) *OrderRepository {
	return &OrderRepository{store: store}
}

func (r *OrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	doc, err := r.store.Load()
	if err != nil {
		return nil, err
	}
	if doc.Orders == nil {
		return []domain.Order{}, nil
	}
	return doc.Orders, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	doc, err := r.store.Load()
	if err != nil {
		return nil, err
	}
	for i := range doc.Orders {
		if doc.Orders[i].ID == id {
			return &doc.Orders[i], nil
		}
	}
	return nil, errors.NewNotFoundError("Order not found")
}

// Insert appends the order. The customer reference is not checked
// against the customer list.
func (r *OrderRepository) Insert(ctx context.Context, order domain.Order) error {
	_, err := r.store.Update(func(doc *domain.Document) error {
		doc.Orders = append(doc.Orders, order)
		return nil
	})
	return err
}

func (r *OrderRepository) Update(ctx context.Context, id string, patch domain.OrderPatch, now time.Time) (*domain.Order, error) {
	var updated domain.Order
	_, err := r.store.Update(func(doc *domain.Document) error {
		for i := range doc.Orders {
			if doc.Orders[i].ID == id {
				patch.Apply(&doc.Orders[i], now)
				updated = doc.Orders[i]
				return nil
			}
		}
		return errors.NewNotFoundError("Order not found")
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
