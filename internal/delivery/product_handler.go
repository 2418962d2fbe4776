package delivery

import (
	"net/http"

	"storefront_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ProductHandler struct {
	useCase usecase.CatalogUseCase
	log     *logrus.Logger
}

func NewProductHandler(uc usecase.CatalogUseCase, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *ProductHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/products", h.ListProducts)
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.useCase.ListProducts())
}
