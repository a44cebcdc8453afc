package repository

import (
	"context"
	"time"

	"ynvbites/internal/domain"
	"ynvbites/internal/errors"
	"ynvbites/internal/infrastructure/storage"
)

type CustomerRepository struct {
	store *storage.Store
}

func NewCustomerRepository(store *storage.Store) *CustomerRepository {
	return &CustomerRepository{store: store}
}

func (r *CustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	doc, err := r.store.Load()
	if err != nil {
		return nil, err
	}
	if doc.Customers == nil {
		return []domain.Customer{}, nil
	}
	return doc.Customers, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*domain.Customer, error) {
	doc, err := r.store.Load()
	if err != nil {
		return nil, err
	}
	for i := range doc.Customers {
		if doc.Customers[i].ID == id {
			return &doc.Customers[i], nil
		}
	}
	return nil, errors.NewNotFoundError("Customer not found")
}

// Insert appends the customer after checking that no existing customer
// has the same email (case-sensitive exact match).
func (r *CustomerRepository) Insert(ctx context.Context, customer domain.Customer) error {
	_, err := r.store.Update(func(doc *domain.Document) error {
		for _, existing := range doc.Customers {
			if existing.Email == customer.Email {
				return errors.NewDuplicateError("Customer with this email already exists")
			}
		}
		doc.Customers = append(doc.Customers, customer)
		return nil
	})
	return err
}

// Update applies the patch to the customer with the given id and returns
// the updated record.
func (r *CustomerRepository) Update(ctx context.Context, id string, patch domain.CustomerPatch, now time.Time) (*domain.Customer, error) {
	var updated domain.Customer
	_, err := r.store.Update(func(doc *domain.Document) error {
		for i := range doc.Customers {
			if doc.Customers[i].ID == id {
				patch.Apply(&doc.Customers[i], now)
				updated = doc.Customers[i]
				return nil
			}
		}
		return errors.NewNotFoundError("Customer not found")
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the customer with the given id. Orders referencing the
// customer are left in place.
func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	_, err := r.store.Update(func(doc *domain.Document) error {
		for i := range doc.Customers {
			if doc.Customers[i].ID == id {
				doc.Customers = append(doc.Customers[:i], doc.Customers[i+1:]...)
				return nil
			}
		}
		return errors.NewNotFoundError("Customer not found")
	})
	return err
}
