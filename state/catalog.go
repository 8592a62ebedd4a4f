package state

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/G9140/E-commerce-website/models"
)

// CatalogStore owns the product list. The catalog is append-only within
// a process: products are never updated or removed once added.
type CatalogStore struct {
	latency time.Duration

	mu       sync.RWMutex
	products []models.Product
	nextID   int
}

func NewCatalogStore(latency time.Duration) *CatalogStore {
	return &CatalogStore{latency: latency}
}

// Load installs the seed catalog after the simulated fetch delay.
func (s *CatalogStore) Load() {
	if s.latency > 0 {
		time.Sleep(s.latency)
	}
	seed := seedProducts()
	s.mu.Lock()
	s.products = seed
	// Ids keep counting up from the seed set, never reused.
	s.nextID = len(seed) + 1
	s.mu.Unlock()
}

func (s *CatalogStore) All() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *CatalogStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

func (s *CatalogStore) GetByID(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// GetByCategory matches the category exactly, ignoring case.
func (s *CatalogStore) GetByCategory(category string) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Product
	for _, p := range s.products {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

// Search returns every product whose title, description or category
// contains the query, ignoring case.
func (s *CatalogStore) Search(query string) []models.Product {
	q := strings.ToLower(query)
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Product
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
		}
	}
	return out
}

// Add appends a new product, assigning the next id and the current
// timestamp. The counter only ever moves forward, so ids stay unique
// regardless of call ordering.
func (s *CatalogStore) Add(input models.ProductInput) (models.Product, bool) {
	if s.latency > 0 {
		time.Sleep(s.latency)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	product := models.Product{
		ID:          strconv.Itoa(s.nextID),
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Image:       input.Image,
		Stock:       input.Stock,
		Rating:      input.Rating,
		Reviews:     input.Reviews,
		CreatedAt:   time.Now().UTC(),
	}
	s.nextID++
	s.products = append(s.products, product)
	return product, true
}
