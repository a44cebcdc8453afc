package storage

import "ynvbites/internal/domain"

// SeedDocument is the first-run dataset: an empty store with the sample
// catalog and company settings.
func SeedDocument() *domain.Document {
	doc := domain.NewDocument()
	doc.Products = []domain.Product{
		{
			ID:          1,
			Name:        "Custom Birthday Cake",
			Price:       150000,
			Category:    "cake",
			Description: "Kue ulang tahun custom dengan berbagai rasa dan desain sesuai keinginan Anda",
			Image:       "birthday-cake.jpg",
		},
		{
			ID:          2,
			Name:        "Premium Cookies",
			Price:       25000,
			Category:    "cookies",
			Description: "Koleksi cookies premium dengan berbagai varian rasa",
			Image:       "cookies.jpg",
		},
		{
			ID:          3,
			Name:        "Artisan Bread",
			Price:       35000,
			Category:    "bread",
			Description: "Roti artisan segar dengan berbagai varian",
			Image:       "bread.jpg",
		},
	}
	doc.Settings = domain.Settings{
		"company_name": "PT Y&V Bites",
		"phone":        "+62 812-3456-7890",
		"email":        "info@ynvbites.com",
		"address":      "Jl. Raya Bogor No. 123, Bogor, Jawa Barat 16111",
	}
	return doc
}
