package usecase

import (
	"fmt"

	"storefront_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type OrderUseCase interface {
	CreateOrder(details domain.CustomerDetails) (*domain.CheckoutResult, error)
	GetOrders() []domain.Order
	GetOrderByID(id string) (*domain.Order, error)
	GetAdminStats() domain.AdminStats
	GenerateDiscount() *domain.DiscountCode
}

type orderUseCase struct {
	orderRepo domain.OrderRepository
	log       *logrus.Logger
}

var _ OrderUseCase = (*orderUseCase)(nil)

func NewOrderUseCase(repo domain.OrderRepository, logger *logrus.Logger) OrderUseCase {
	return &orderUseCase{
		orderRepo: repo,
		log:       logger,
	}
}

func (uc *orderUseCase) CreateOrder(details domain.CustomerDetails) (*domain.CheckoutResult, error) {
	if details.Name == "" || details.Email == "" {
		uc.log.Warn("Use Case: Attempted checkout with missing customer details")
		return nil, fmt.Errorf("%w: customer name and email are required", domain.ErrInvalidInput)
	}

	uc.log.Infof("Use Case: Creating order for customer %s", details.Email)
	result, err := uc.orderRepo.CreateOrder(details)
	if err != nil {
		uc.log.Warnf("Use Case: Failed to create order for customer %s: %v", details.Email, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Order %s created successfully (total %.2f)", result.Order.ID, result.Order.Total)
	if result.NewDiscount != nil {
		uc.log.Infof("Use Case: Nth-order rule fired, issued discount code %s", result.NewDiscount.Code)
	}
	return result, nil
}

func (uc *orderUseCase) GetOrders() []domain.Order {
	orders := uc.orderRepo.GetOrders()
	uc.log.Infof("Use Case: Retrieved %d orders", len(orders))
	return orders
}

func (uc *orderUseCase) GetOrderByID(id string) (*domain.Order, error) {
	if id == "" {
		uc.log.Warn("Use Case: Attempted to get order with empty ID")
		return nil, domain.ErrOrderNotFound
	}

	order := uc.orderRepo.GetOrderByID(id)
	if order == nil {
		uc.log.Warnf("Use Case: Order %s not found", id)
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

func (uc *orderUseCase) GetAdminStats() domain.AdminStats {
	stats := uc.orderRepo.GetAdminStats()
	uc.log.Infof("Use Case: Computed admin stats (items: %d, total: %.2f)", stats.ItemCount, stats.TotalAmount)
	return stats
}

// GenerateDiscount evaluates the every-Nth-order rule without forcing it; nil
// means the condition is not met.
func (uc *orderUseCase) GenerateDiscount() *domain.DiscountCode {
	discount := uc.orderRepo.GenerateNthOrderDiscount(false)
	if discount == nil {
		uc.log.Info("Use Case: Discount generation condition not met")
		return nil
	}
	uc.log.Infof("Use Case: Generated discount code %s", discount.Code)
	return discount
}
