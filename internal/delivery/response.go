package delivery

import (
	"errors"
	"net/http"

	"storefront_service/internal/domain"

	"github.com/gin-gonic/gin"
)

// Error bodies follow the storefront API shape: a single message field.
// Successful responses carry the resource itself.
type errorBody struct {
	Message string `json:"message"`
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, errorBody{Message: message})
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrItemNotInCart),
		errors.Is(err, domain.ErrInvalidOrUsedCode),
		errors.Is(err, domain.ErrEmptyCart):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
