package store

import "github.com/issa01818/ClickShop1/models"

// DefaultProducts is the starter catalog inserted on first run.
func DefaultProducts() []models.Product {
	return []models.Product{
		{Name: "Television", Price: 299.99, Description: "55-inch 4K LED television"},
		{Name: "Smartphone", Price: 599.99, Description: "Latest model smartphone"},
		{Name: "Laptop", Price: 899.99, Description: "Laptop with 16GB RAM"},
	}
}
