package domain

import "time"

type Customer struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	City       string    `json:"city"`
	PostalCode string    `json:"postal_code"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CustomerPatch is a partial update restricted to the mutable customer
// fields. Nil pointers leave the current value untouched.
type CustomerPatch struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	Address    *string `json:"address"`
	City       *string `json:"city"`
	PostalCode *string `json:"postal_code"`
}

// Apply overwrites the fields present in the patch and stamps UpdatedAt.
func (p CustomerPatch) Apply(c *Customer, now time.Time) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
	if p.City != nil {
		c.City = *p.City
	}
	if p.PostalCode != nil {
		c.PostalCode = *p.PostalCode
	}
	c.UpdatedAt = now
}
