package models

import "time"

type ShippingInfo struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Address   string `json:"address" binding:"required"`
	City      string `json:"city" binding:"required"`
	State     string `json:"state" binding:"required"`
	ZipCode   string `json:"zip_code" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
}

// PaymentInfo holds the card details for a checkout request. The full
// card number only ever lives in the request; the stored order keeps
// the last four digits.
type PaymentInfo struct {
	CardNumber string `json:"card_number" binding:"required"`
	ExpiryDate string `json:"expiry_date" binding:"required"`
	CVV        string `json:"cvv" binding:"required"`
	CardName   string `json:"card_name" binding:"required"`
}

type Order struct {
	ID           string       `json:"id"`
	UserID       string       `json:"user_id"`
	Items        []CartLine   `json:"items"`
	ShippingInfo ShippingInfo `json:"shipping_info"`
	CardLast4    string       `json:"card_last4"`
	Subtotal     float64      `json:"subtotal"`
	Shipping     float64      `json:"shipping"`
	Tax          float64      `json:"tax"`
	Total        float64      `json:"total"`
	Status       string       `json:"status"`
	OrderDate    time.Time    `json:"order_date"`
}
