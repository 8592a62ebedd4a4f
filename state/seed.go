package state

import (
	"time"

	"github.com/G9140/E-commerce-website/models"
)

// seedProducts is the fixed demo catalog the store opens with.
func seedProducts() []models.Product {
	return []models.Product{
		{
			ID:          "1",
			Title:       "Wireless Bluetooth Headphones",
			Description: "High-quality wireless headphones with noise cancellation and 30-hour battery life. Perfect for music lovers and professionals.",
			Price:       199.99,
			Category:    "Electronics",
			Image:       "https://images.pexels.com/photos/3394650/pexels-photo-3394650.jpeg",
			Stock:       50,
			Rating:      4.5,
			Reviews:     128,
			CreatedAt:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "2",
			Title:       "Organic Cotton T-Shirt",
			Description: "Comfortable and sustainable organic cotton t-shirt. Available in multiple colors and sizes.",
			Price:       29.99,
			Category:    "Clothing",
			Image:       "https://images.pexels.com/photos/996329/pexels-photo-996329.jpeg",
			Stock:       100,
			Rating:      4.3,
			Reviews:     89,
			CreatedAt:   time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "3",
			Title:       "Smart Fitness Watch",
			Description: "Advanced fitness tracking watch with heart rate monitoring, GPS, and smartphone connectivity.",
			Price:       299.99,
			Category:    "Electronics",
			Image:       "https://images.pexels.com/photos/393047/pexels-photo-393047.jpeg",
			Stock:       30,
			Rating:      4.7,
			Reviews:     203,
			CreatedAt:   time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "4",
			Title:       "Leather Laptop Bag",
			Description: "Professional leather laptop bag with multiple compartments and ergonomic design.",
			Price:       149.99,
			Category:    "Accessories",
			Image:       "https://images.pexels.com/photos/2905238/pexels-photo-2905238.jpeg",
			Stock:       25,
			Rating:      4.4,
			Reviews:     67,
			CreatedAt:   time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "5",
			Title:       "Coffee Maker Pro",
			Description: "Professional-grade coffee maker with programmable settings and thermal carafe.",
			Price:       179.99,
			Category:    "Home & Kitchen",
			Image:       "https://images.pexels.com/photos/324028/pexels-photo-324028.jpeg",
			Stock:       40,
			Rating:      4.6,
			Reviews:     156,
			CreatedAt:   time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "6",
			Title:       "Running Shoes",
			Description: "Lightweight running shoes with advanced cushioning and breathable mesh upper.",
			Price:       119.99,
			Category:    "Sports",
			Image:       "https://images.pexels.com/photos/2529148/pexels-photo-2529148.jpeg",
			Stock:       75,
			Rating:      4.2,
			Reviews:     94,
			CreatedAt:   time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC),
		},
	}
}
