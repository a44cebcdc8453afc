package domain

import "time"

const ContactStatusNew = "new"

// Contact is a message submitted through the storefront contact form.
// Messages are append-only and only surfaced on the admin dashboard.
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	Status    string    `json:"status"`
}
