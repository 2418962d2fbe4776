package delivery

import (
	"net/http"

	"storefront_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type AdminHandler struct {
	useCase usecase.OrderUseCase
	log     *logrus.Logger
}

func NewAdminHandler(uc usecase.OrderUseCase, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *AdminHandler) RegisterRoutes(router gin.IRouter) {
	admin := router.Group("/admin")
	{
		admin.GET("/analytics", h.GetAnalytics)
		admin.POST("/generate-discount", h.GenerateDiscount)
	}
}

func (h *AdminHandler) GetAnalytics(c *gin.Context) {
	c.JSON(http.StatusOK, h.useCase.GetAdminStats())
}

// GenerateDiscount runs the every-Nth-order rule without forcing it; when the
// order count is not at a multiple of N there is nothing to issue.
func (h *AdminHandler) GenerateDiscount(c *gin.Context) {
	discount := h.useCase.GenerateDiscount()
	if discount == nil {
		ErrorResponse(c, http.StatusBadRequest, "Discount generation condition not met.")
		return
	}
	c.JSON(http.StatusOK, discount)
}
