package state

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/G9140/E-commerce-website/kvstore"
	"github.com/G9140/E-commerce-website/models"
)

// CartStore owns cart contents per user identity. Every mutation is
// written straight through to the key-value store under cart_<userId>,
// so a cart survives restarts; the in-memory map is just the working
// copy for users with a live session.
type CartStore struct {
	kv kvstore.Store

	mu      sync.Mutex
	carts   map[string][]models.CartLine
	current string
}

func NewCartStore(kv kvstore.Store) *CartStore {
	return &CartStore{kv: kv, carts: make(map[string][]models.CartLine)}
}

// SyncIdentity is the auth subscription hook. A new identity pulls its
// persisted cart into memory; a nil identity drops the working copy of
// whoever was signed in, leaving their persisted cart untouched.
func (s *CartStore) SyncIdentity(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user == nil {
		if s.current != "" {
			delete(s.carts, s.current)
			s.current = ""
		}
		return
	}
	s.current = user.ID
	s.loadLocked(user.ID)
}

func (s *CartStore) Items(userID string) []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.loadLocked(userID)
	out := make([]models.CartLine, len(lines))
	copy(out, lines)
	return out
}

// AddToCart inserts the snapshot with quantity 1, or bumps the existing
// line by one, capped at the line's stock snapshot. One line per
// product id, always.
func (s *CartStore) AddToCart(userID string, item models.CartLine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.loadLocked(userID)
	for i := range lines {
		if lines[i].ProductID == item.ProductID {
			lines[i].Quantity = clamp(lines[i].Quantity+1, lines[i].Stock)
			s.saveLocked(userID, lines)
			return
		}
	}
	if item.Stock < 1 {
		// Nothing to sell; a zero-quantity line is never stored.
		return
	}
	item.Quantity = 1
	s.saveLocked(userID, append(lines, item))
}

func (s *CartStore) RemoveFromCart(userID, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.loadLocked(userID)
	for i := range lines {
		if lines[i].ProductID == productID {
			s.saveLocked(userID, append(lines[:i:i], lines[i+1:]...))
			return
		}
	}
}

// UpdateQuantity sets a line's quantity, capped at its stock snapshot.
// A zero or negative quantity removes the line instead of keeping an
// empty one around.
func (s *CartStore) UpdateQuantity(userID, productID string, quantity int) {
	if quantity <= 0 {
		s.RemoveFromCart(userID, productID)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.loadLocked(userID)
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity = clamp(quantity, lines[i].Stock)
			s.saveLocked(userID, lines)
			return
		}
	}
}

func (s *CartStore) ClearCart(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveLocked(userID, nil)
}

func (s *CartStore) TotalItems(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, line := range s.loadLocked(userID) {
		total += line.Quantity
	}
	return total
}

func (s *CartStore) TotalPrice(userID string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0.0
	for _, line := range s.loadLocked(userID) {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// loadLocked returns the working copy for the user, reading it from the
// key-value store on first touch. A missing or unreadable value is an
// empty cart.
func (s *CartStore) loadLocked(userID string) []models.CartLine {
	if lines, ok := s.carts[userID]; ok {
		return lines
	}
	var lines []models.CartLine
	data, err := s.kv.Get(cartKey(userID))
	if err == nil {
		if jsonErr := json.Unmarshal(data, &lines); jsonErr != nil {
			log.Printf("⚠️ Discarding corrupt cart for %s: %v", userID, jsonErr)
			lines = nil
		}
	}
	s.carts[userID] = lines
	return lines
}

func (s *CartStore) saveLocked(userID string, lines []models.CartLine) {
	s.carts[userID] = lines
	data, err := json.Marshal(lines)
	if err != nil {
		log.Printf("❌ Failed to encode cart for %s: %v", userID, err)
		return
	}
	if err := s.kv.Set(cartKey(userID), data); err != nil {
		log.Printf("❌ Failed to persist cart for %s: %v", userID, err)
	}
}

func cartKey(userID string) string { return "cart_" + userID }

func clamp(quantity, stock int) int {
	if quantity > stock {
		return stock
	}
	return quantity
}
