package usecase

import (
	"storefront_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type CatalogUseCase interface {
	ListProducts() []domain.Product
}

type catalogUseCase struct {
	catalogRepo domain.CatalogRepository
	log         *logrus.Logger
}

var _ CatalogUseCase = (*catalogUseCase)(nil)

func NewCatalogUseCase(repo domain.CatalogRepository, logger *logrus.Logger) CatalogUseCase {
	return &catalogUseCase{
		catalogRepo: repo,
		log:         logger,
	}
}

func (uc *catalogUseCase) ListProducts() []domain.Product {
	products := uc.catalogRepo.ListProducts()
	uc.log.Infof("Use Case: Retrieved %d products", len(products))
	return products
}
