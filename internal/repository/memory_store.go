package repository

import (
	"strings"
	"sync"
	"time"

	"storefront_service/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// nthOrder controls the automatic discount cadence: every nthOrder-th order
// placed (globally, not per customer) issues a fresh code.
const nthOrder = 2

const generatedCodePrefix = "SAVE10-"
const generatedCodePercentage = 10

// MemoryStore owns every mutable collection of the storefront: the seeded
// catalog, the single shared cart, the discount-code list and the placed
// orders. All access is serialized by the mutex because gin runs each request
// on its own goroutine.
type MemoryStore struct {
	mu sync.Mutex

	products        []domain.Product
	cart            map[string]*domain.CartItem
	cartOrder       []string // product ids in insertion order, for stable display
	appliedDiscount *domain.DiscountCode
	discountCodes   []domain.DiscountCode
	orders          []domain.Order

	log *logrus.Logger
}

var _ domain.CatalogRepository = (*MemoryStore)(nil)
var _ domain.CartRepository = (*MemoryStore)(nil)
var _ domain.OrderRepository = (*MemoryStore)(nil)

func NewMemoryStore(logger *logrus.Logger) *MemoryStore {
	return &MemoryStore{
		products: seedProducts(),
		cart:     make(map[string]*domain.CartItem),
		discountCodes: []domain.DiscountCode{
			{Code: "SAVE15", Percentage: 15, IsUsed: false},
		},
		log: logger,
	}
}

func seedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          "prod_1",
			Name:        "Quantum-Charged Mug",
			Description: "A mug that keeps your coffee at the perfect temperature using quantum entanglement.",
			Price:       42.00,
			ImageURL:    "https://picsum.photos/seed/storefront-mug/600/400",
			ImageHint:   "coffee mug",
		},
		{
			ID:          "prod_2",
			Name:        "Chrono-Shifting T-Shirt",
			Description: "This t-shirt subtly shifts its design based on the temporal flux. Never wear the same shirt twice.",
			Price:       55.00,
			ImageURL:    "https://picsum.photos/seed/storefront-tshirt/600/400",
			ImageHint:   "graphic t-shirt",
		},
		{
			ID:          "prod_3",
			Name:        "Aether-Infused Socks",
			Description: "Infused with aether, these socks provide unparalleled comfort and a slight, pleasant hum.",
			Price:       25.00,
			ImageURL:    "https://picsum.photos/seed/storefront-socks/600/400",
			ImageHint:   "wool socks",
		},
		{
			ID:          "prod_4",
			Name:        "Zero-Gravity Pen",
			Description: "A pen that floats slightly above the desk, for when you need a little space to think.",
			Price:       30.00,
			ImageURL:    "https://picsum.photos/seed/storefront-pen/600/400",
			ImageHint:   "silver pen",
		},
		{
			ID:          "prod_5",
			Name:        "Hyperspace Hoodie",
			Description: "A comfortable hoodie that gives you the feeling of gazing into the vastness of space.",
			Price:       95.00,
			ImageURL:    "https://picsum.photos/seed/storefront-hoodie/600/400",
			ImageHint:   "dark hoodie",
		},
		{
			ID:          "prod_6",
			Name:        "Singularity Smartwatch",
			Description: "A modern smartwatch that displays complex data with a touch of elegance and cosmic wonder.",
			Price:       250.00,
			ImageURL:    "https://picsum.photos/seed/storefront-watch/600/400",
			ImageHint:   "smart watch",
		},
	}
}

func (s *MemoryStore) ListProducts() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *MemoryStore) GetCart() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartState()
}

// cartState derives the cart view from the stored lines and the applied
// discount. Callers must hold the mutex. The applied code only contributes a
// discount while it is still unused in the code list.
func (s *MemoryStore) cartState() domain.Cart {
	items := make([]domain.CartItem, 0, len(s.cartOrder))
	subtotal := 0.0
	for _, id := range s.cartOrder {
		item := s.cart[id]
		items = append(items, *item)
		subtotal += item.Price * float64(item.Quantity)
	}

	discountAmount := 0.0
	appliedCode := ""
	if s.appliedDiscount != nil && !s.isCodeUsed(s.appliedDiscount.Code) {
		discountAmount = subtotal * (s.appliedDiscount.Percentage / 100)
		appliedCode = s.appliedDiscount.Code
	}

	return domain.Cart{
		Items:               items,
		Subtotal:            subtotal,
		DiscountAmount:      discountAmount,
		Total:               subtotal - discountAmount,
		AppliedDiscountCode: appliedCode,
	}
}

func (s *MemoryStore) isCodeUsed(code string) bool {
	for i := range s.discountCodes {
		if s.discountCodes[i].Code == code {
			return s.discountCodes[i].IsUsed
		}
	}
	return false
}

func (s *MemoryStore) AddToCart(productID string, quantity int) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var product *domain.Product
	for i := range s.products {
		if s.products[i].ID == productID {
			product = &s.products[i]
			break
		}
	}
	if product == nil {
		return domain.Cart{}, domain.ErrProductNotFound
	}

	if item, ok := s.cart[productID]; ok {
		item.Quantity += quantity
	} else {
		s.cart[productID] = &domain.CartItem{
			ID:          product.ID,
			Name:        product.Name,
			Description: product.Description,
			Price:       product.Price,
			ImageURL:    product.ImageURL,
			ImageHint:   product.ImageHint,
			Quantity:    quantity,
		}
		s.cartOrder = append(s.cartOrder, productID)
	}
	return s.cartState(), nil
}

// RemoveFromCart removes a single unit of the product, deleting the line when
// its quantity reaches zero. It is not a remove-the-line operation.
func (s *MemoryStore) RemoveFromCart(productID string) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.cart[productID]
	if !ok {
		return domain.Cart{}, domain.ErrItemNotInCart
	}
	if item.Quantity > 1 {
		item.Quantity--
	} else {
		delete(s.cart, productID)
		for i, id := range s.cartOrder {
			if id == productID {
				s.cartOrder = append(s.cartOrder[:i], s.cartOrder[i+1:]...)
				break
			}
		}
	}
	return s.cartState(), nil
}

func (s *MemoryStore) ClearCart() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = make(map[string]*domain.CartItem)
	s.cartOrder = nil
	s.appliedDiscount = nil
	return s.cartState()
}

// ApplyDiscount matches codes case-insensitively among unused codes and makes
// the match the single active discount, replacing any previous one.
func (s *MemoryStore) ApplyDiscount(code string) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.discountCodes {
		d := &s.discountCodes[i]
		if strings.EqualFold(d.Code, code) && !d.IsUsed {
			applied := *d
			s.appliedDiscount = &applied
			return s.cartState(), nil
		}
	}
	return domain.Cart{}, domain.ErrInvalidOrUsedCode
}

func (s *MemoryStore) RemoveDiscount() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.appliedDiscount = nil
	return s.cartState()
}

// CreateOrder snapshots the derived cart into an immutable order, marks the
// applied code used, and evaluates the every-Nth-order rule against the new
// order count. The cart is deliberately left intact: clearing it is the
// caller's responsibility.
func (s *MemoryStore) CreateOrder(details domain.CustomerDetails) (*domain.CheckoutResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.cartState()
	if len(state.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	order := domain.Order{
		ID:                  uuid.NewString(),
		Items:               state.Items,
		Subtotal:            state.Subtotal,
		DiscountAmount:      state.DiscountAmount,
		Total:               state.Total,
		AppliedDiscountCode: state.AppliedDiscountCode,
		CreatedAt:           time.Now(),
		CustomerDetails:     details,
	}
	s.orders = append(s.orders, order)

	if s.appliedDiscount != nil {
		for i := range s.discountCodes {
			if s.discountCodes[i].Code == s.appliedDiscount.Code {
				s.discountCodes[i].IsUsed = true
				break
			}
		}
	}

	result := &domain.CheckoutResult{Order: order}
	if len(s.orders)%nthOrder == 0 {
		result.NewDiscount = s.generateNthOrderDiscount(true)
	}

	s.log.WithFields(logrus.Fields{
		"order_id": order.ID,
		"total":    order.Total,
		"items":    len(order.Items),
	}).Info("Order created")
	return result, nil
}

func (s *MemoryStore) GenerateNthOrderDiscount(force bool) *domain.DiscountCode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generateNthOrderDiscount(force)
}

// generateNthOrderDiscount appends and returns a fresh unused code, or nil
// when not forced and the order count is not a positive multiple of nthOrder.
// Callers must hold the mutex.
func (s *MemoryStore) generateNthOrderDiscount(force bool) *domain.DiscountCode {
	if !force && (len(s.orders) == 0 || len(s.orders)%nthOrder != 0) {
		return nil
	}

	suffix := strings.ToUpper(uuid.NewString()[:8])
	newDiscount := domain.DiscountCode{
		Code:       generatedCodePrefix + suffix,
		Percentage: generatedCodePercentage,
		IsUsed:     false,
	}
	s.discountCodes = append(s.discountCodes, newDiscount)
	s.log.Infof("Generated discount code %s", newDiscount.Code)
	return &newDiscount
}

func (s *MemoryStore) GetOrders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Order, 0, len(s.orders))
	for i := len(s.orders) - 1; i >= 0; i-- {
		out = append(out, s.orders[i])
	}
	return out
}

func (s *MemoryStore) GetOrderByID(id string) *domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			order := s.orders[i]
			return &order
		}
	}
	return nil
}

func (s *MemoryStore) GetAdminStats() domain.AdminStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := domain.AdminStats{}
	for i := range s.orders {
		stats.TotalAmount += s.orders[i].Total
		stats.TotalDiscountAmount += s.orders[i].DiscountAmount
		for _, item := range s.orders[i].Items {
			stats.ItemCount += item.Quantity
		}
	}

	stats.DiscountCodes = make([]domain.DiscountCode, 0, len(s.discountCodes))
	for i := len(s.discountCodes) - 1; i >= 0; i-- {
		stats.DiscountCodes = append(stats.DiscountCodes, s.discountCodes[i])
	}
	return stats
}
