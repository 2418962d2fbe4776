package domain

import "time"

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	ImageHint   string  `json:"imageHint"`
}

type CartItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	ImageHint   string  `json:"imageHint"`
	Quantity    int     `json:"quantity"`
}

// Cart is derived from the current cart lines plus the applied discount on
// every read; it is never stored.
type Cart struct {
	Items               []CartItem `json:"items"`
	Subtotal            float64    `json:"subtotal"`
	DiscountAmount      float64    `json:"discountAmount"`
	Total               float64    `json:"total"`
	AppliedDiscountCode string     `json:"appliedDiscountCode"`
}

type DiscountCode struct {
	Code       string  `json:"code"`
	Percentage float64 `json:"percentage"`
	IsUsed     bool    `json:"isUsed"`
	Reason     string  `json:"reason,omitempty"`
}

type CustomerDetails struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	City       string `json:"city"`
	Zip        string `json:"zip"`
	CardNumber string `json:"cardNumber"`
	CardExpiry string `json:"cardExpiry"`
	CardCvc    string `json:"cardCvc"`
}

type Order struct {
	ID                  string          `json:"id"`
	Items               []CartItem      `json:"items"`
	Subtotal            float64         `json:"subtotal"`
	DiscountAmount      float64         `json:"discountAmount"`
	Total               float64         `json:"total"`
	AppliedDiscountCode string          `json:"appliedDiscountCode"`
	CreatedAt           time.Time       `json:"createdAt"`
	CustomerDetails     CustomerDetails `json:"customerDetails"`
}

// CheckoutResult bundles the created order with the discount code issued by
// the every-Nth-order rule, when that rule fired.
type CheckoutResult struct {
	Order       Order         `json:"order"`
	NewDiscount *DiscountCode `json:"newDiscount,omitempty"`
}

type AdminStats struct {
	ItemCount           int            `json:"itemCount"`
	TotalAmount         float64        `json:"totalAmount"`
	TotalDiscountAmount float64        `json:"totalDiscountAmount"`
	DiscountCodes       []DiscountCode `json:"discountCodes"`
}
