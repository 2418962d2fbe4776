package delivery

import (
	"errors"
	"net/http"

	"storefront_service/internal/domain"
	"storefront_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

type OrderHandler struct {
	useCase usecase.OrderUseCase
	log     *logrus.Logger
}

func NewOrderHandler(uc usecase.OrderUseCase, logger *logrus.Logger) *OrderHandler {
	return &OrderHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *OrderHandler) RegisterRoutes(router gin.IRouter) {
	router.POST("/checkout", h.Checkout)
	orders := router.Group("/orders")
	{
		orders.GET("", h.ListOrders)
		orders.GET("/:id", h.GetOrderByID)
	}
}

type CheckoutRequest struct {
	Name       string `json:"name" binding:"required,min=2"`
	Email      string `json:"email" binding:"required,email"`
	Address    string `json:"address" binding:"required,min=5"`
	City       string `json:"city" binding:"required,min=2"`
	Zip        string `json:"zip" binding:"required,min=4"`
	CardNumber string `json:"cardNumber" binding:"required,cardnumber"`
	CardExpiry string `json:"cardExpiry" binding:"required,cardexpiry"`
	CardCvc    string `json:"cardCvc" binding:"required,cardcvc"`
}

// checkoutFieldMessages mirrors the storefront checkout form's per-field
// validation messages; the first violated field's message is returned.
var checkoutFieldMessages = map[string]string{
	"Name":       "Name must be at least 2 characters.",
	"Email":      "Please enter a valid email.",
	"Address":    "Address must be at least 5 characters.",
	"City":       "City must be at least 2 characters.",
	"Zip":        "Zip code must be at least 4 characters.",
	"CardNumber": "Card number must be 16 digits.",
	"CardExpiry": "Expiry must be in MM/YY format.",
	"CardCvc":    "CVC must be 3 or 4 digits.",
}

func checkoutErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if msg, ok := checkoutFieldMessages[verrs[0].Field()]; ok {
			return msg
		}
	}
	return "Invalid request body: " + err.Error()
}

func (h *OrderHandler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf("Checkout validation failed: %v", err)
		ErrorResponse(c, http.StatusBadRequest, checkoutErrorMessage(err))
		return
	}

	details := domain.CustomerDetails{
		Name:       req.Name,
		Email:      req.Email,
		Address:    req.Address,
		City:       req.City,
		Zip:        req.Zip,
		CardNumber: req.CardNumber,
		CardExpiry: req.CardExpiry,
		CardCvc:    req.CardCvc,
	}

	result, err := h.useCase.CreateOrder(details)
	if err != nil {
		h.log.Warnf("Checkout failed for customer %s: %v", req.Email, err)
		ErrorResponse(c, mapErrorToStatus(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListOrders serves both the order list and single-order lookups through the
// optional orderId query parameter.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	if orderID := c.Query("orderId"); orderID != "" {
		h.respondWithOrder(c, orderID)
		return
	}
	c.JSON(http.StatusOK, h.useCase.GetOrders())
}

func (h *OrderHandler) GetOrderByID(c *gin.Context) {
	h.respondWithOrder(c, c.Param("id"))
}

func (h *OrderHandler) respondWithOrder(c *gin.Context, orderID string) {
	order, err := h.useCase.GetOrderByID(orderID)
	if err != nil {
		ErrorResponse(c, mapErrorToStatus(err), "Order not found")
		return
	}
	c.JSON(http.StatusOK, order)
}
