package usecase

import (
	"fmt"
	"strings"

	"storefront_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type CartUseCase interface {
	GetCart() domain.Cart
	AddToCart(productID string, quantity int) (domain.Cart, error)
	RemoveFromCart(productID string) (domain.Cart, error)
	ClearCart() domain.Cart
	ApplyDiscount(code string) (domain.Cart, error)
	RemoveDiscount() domain.Cart
}

type cartUseCase struct {
	cartRepo domain.CartRepository
	log      *logrus.Logger
}

var _ CartUseCase = (*cartUseCase)(nil)

func NewCartUseCase(repo domain.CartRepository, logger *logrus.Logger) CartUseCase {
	return &cartUseCase{
		cartRepo: repo,
		log:      logger,
	}
}

func (uc *cartUseCase) GetCart() domain.Cart {
	return uc.cartRepo.GetCart()
}

func (uc *cartUseCase) AddToCart(productID string, quantity int) (domain.Cart, error) {
	if productID == "" {
		uc.log.Warn("Use Case: Attempted to add to cart with empty product ID")
		return domain.Cart{}, fmt.Errorf("%w: product ID cannot be empty", domain.ErrInvalidInput)
	}
	if quantity < 1 {
		uc.log.Warnf("Use Case: Attempted to add product %s with invalid quantity %d", productID, quantity)
		return domain.Cart{}, fmt.Errorf("%w: quantity must be at least 1", domain.ErrInvalidInput)
	}

	cart, err := uc.cartRepo.AddToCart(productID, quantity)
	if err != nil {
		uc.log.Warnf("Use Case: Failed to add product %s to cart: %v", productID, err)
		return domain.Cart{}, err
	}
	uc.log.Infof("Use Case: Added product %s (quantity %d) to cart", productID, quantity)
	return cart, nil
}

func (uc *cartUseCase) RemoveFromCart(productID string) (domain.Cart, error) {
	if productID == "" {
		uc.log.Warn("Use Case: Attempted to remove from cart with empty product ID")
		return domain.Cart{}, fmt.Errorf("%w: product ID cannot be empty", domain.ErrInvalidInput)
	}

	cart, err := uc.cartRepo.RemoveFromCart(productID)
	if err != nil {
		uc.log.Warnf("Use Case: Failed to remove product %s from cart: %v", productID, err)
		return domain.Cart{}, err
	}
	uc.log.Infof("Use Case: Removed one unit of product %s from cart", productID)
	return cart, nil
}

func (uc *cartUseCase) ClearCart() domain.Cart {
	uc.log.Info("Use Case: Clearing cart")
	return uc.cartRepo.ClearCart()
}

func (uc *cartUseCase) ApplyDiscount(code string) (domain.Cart, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		uc.log.Warn("Use Case: Attempted to apply empty discount code")
		return domain.Cart{}, fmt.Errorf("%w: discount code is required", domain.ErrInvalidInput)
	}

	cart, err := uc.cartRepo.ApplyDiscount(code)
	if err != nil {
		uc.log.Warnf("Use Case: Failed to apply discount code %q: %v", code, err)
		return domain.Cart{}, err
	}
	uc.log.Infof("Use Case: Applied discount code %q", cart.AppliedDiscountCode)
	return cart, nil
}

func (uc *cartUseCase) RemoveDiscount() domain.Cart {
	uc.log.Info("Use Case: Removing applied discount")
	return uc.cartRepo.RemoveDiscount()
}
