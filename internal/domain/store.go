// domain/store.go
package domain

type CatalogRepository interface {
	ListProducts() []Product
}

type CartRepository interface {
	GetCart() Cart
	AddToCart(productID string, quantity int) (Cart, error)
	RemoveFromCart(productID string) (Cart, error)
	ClearCart() Cart
	ApplyDiscount(code string) (Cart, error)
	RemoveDiscount() Cart
}

type OrderRepository interface {
	CreateOrder(details CustomerDetails) (*CheckoutResult, error)
	GetOrders() []Order
	GetOrderByID(id string) *Order
	GetAdminStats() AdminStats
	GenerateNthOrderDiscount(force bool) *DiscountCode
}
