package domain

import "time"

type OrderItem struct {
	ProductID int     `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type Order struct {
	ID              string      `json:"id"`
	CustomerID      string      `json:"customer_id"`
	Items           []OrderItem `json:"items"`
	TotalAmount     float64     `json:"total_amount"`
	Status          string      `json:"status"`
	Notes           string      `json:"notes"`
	DeliveryAddress string      `json:"delivery_address"`
	DeliveryDate    string      `json:"delivery_date"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
)

// OrderPatch is a partial update restricted to the mutable order fields.
// The customer reference, items and total are fixed at creation.
type OrderPatch struct {
	Status          *string `json:"status"`
	Notes           *string `json:"notes"`
	DeliveryAddress *string `json:"delivery_address"`
	DeliveryDate    *string `json:"delivery_date"`
}

func (p OrderPatch) Apply(o *Order, now time.Time) {
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.Notes != nil {
		o.Notes = *p.Notes
	}
	if p.DeliveryAddress != nil {
		o.DeliveryAddress = *p.DeliveryAddress
	}
	if p.DeliveryDate != nil {
		o.DeliveryDate = *p.DeliveryDate
	}
	o.UpdatedAt = now
}
