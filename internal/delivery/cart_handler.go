package delivery

import (
	"net/http"

	"storefront_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CartHandler struct {
	useCase usecase.CartUseCase
	log     *logrus.Logger
}

func NewCartHandler(uc usecase.CartUseCase, logger *logrus.Logger) *CartHandler {
	return &CartHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *CartHandler) RegisterRoutes(router gin.IRouter) {
	cart := router.Group("/cart")
	{
		cart.GET("", h.GetCart)
		cart.POST("", h.AddToCart)
		cart.DELETE("", h.RemoveFromCart)
		cart.POST("/clear", h.ClearCart)
		cart.POST("/discount", h.ApplyDiscount)
		cart.DELETE("/discount", h.RemoveDiscount)
	}
}

type AddToCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type ApplyDiscountRequest struct {
	Code string `json:"code" binding:"required"`
}

func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.useCase.GetCart())
}

func (h *CartHandler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf("Failed to bind add-to-cart request: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	cart, err := h.useCase.AddToCart(req.ProductID, req.Quantity)
	if err != nil {
		h.log.Warnf("Failed to add product %s to cart: %v", req.ProductID, err)
		ErrorResponse(c, mapErrorToStatus(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, cart)
}

// RemoveFromCart removes one unit of the product given by the productId query
// parameter, matching the DELETE /api/cart?productId= surface.
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	productID := c.Query("productId")
	if productID == "" {
		ErrorResponse(c, http.StatusBadRequest, "Product ID is required")
		return
	}

	cart, err := h.useCase.RemoveFromCart(productID)
	if err != nil {
		h.log.Warnf("Failed to remove product %s from cart: %v", productID, err)
		ErrorResponse(c, mapErrorToStatus(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.useCase.ClearCart())
}

func (h *CartHandler) ApplyDiscount(c *gin.Context) {
	var req ApplyDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf("Failed to bind apply-discount request: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Discount code is required")
		return
	}

	cart, err := h.useCase.ApplyDiscount(req.Code)
	if err != nil {
		ErrorResponse(c, mapErrorToStatus(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) RemoveDiscount(c *gin.Context) {
	c.JSON(http.StatusOK, h.useCase.RemoveDiscount())
}
