package domain

// Settings is the free-form company settings mapping (name, phone, email, address).
type Settings map[string]string

// Document is the full dataset as persisted on disk. Every storage
// operation reads or writes it as a whole.
type Document struct {
	Customers []Customer `json:"customers"`
	Orders    []Order    `json:"orders"`
	Products  []Product  `json:"products"`
	Contacts  []Contact  `json:"contacts"`
	Settings  Settings   `json:"settings"`
}

// NewDocument returns an empty document with all lists initialized.
func NewDocument() *Document {
	return &Document{
		Customers: []Customer{},
		Orders:    []Order{},
		Products:  []Product{},
		Contacts:  []Contact{},
		Settings:  Settings{},
	}
}
