package models

// CartLine is one product entry in a user's cart. Title, price, image
// and stock are copied from the catalog when the line is created, so a
// later catalog change never reaches into an existing cart.
type CartLine struct {
	ProductID string  `json:"id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Stock     int     `json:"stock"`
	Quantity  int     `json:"quantity"`
}

// Snapshot builds a cart line from a catalog product. Quantity is left
// at zero; the cart store sets it on insert.
func Snapshot(p Product) CartLine {
	return CartLine{
		ProductID: p.ID,
		Title:     p.Title,
		Price:     p.Price,
		Image:     p.Image,
		Stock:     p.Stock,
	}
}
