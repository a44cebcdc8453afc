package stats

import "ynvbites/internal/domain"

type Stats struct {
	TotalCustomers  int `json:"total_customers"`
	TotalOrders     int `json:"total_orders"`
	TotalProducts   int `json:"total_products"`
	PendingOrders   int `json:"pending_orders"`
	CompletedOrders int `json:"completed_orders"`
}

// Compute derives the dashboard counters from one loaded document.
// Pure read; orders in any other status only count toward the total.
func Compute(doc *domain.Document) Stats {
	s := Stats{
		TotalCustomers: len(doc.Customers),
		TotalOrders:    len(doc.Orders),
		TotalProducts:  len(doc.Products),
	}
	for _, o := range doc.Orders {
		switch o.Status {
		case domain.OrderStatusPending:
			s.PendingOrders++
		case domain.OrderStatusCompleted:
			s.CompletedOrders++
		}
	}
	return s
}
