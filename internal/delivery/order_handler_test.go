package delivery

import (
	"net/http"
	"strings"
	"testing"

	"storefront_service/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCheckoutBody() gin.H {
	return gin.H{
		"name":       "Test User",
		"email":      "test@example.com",
		"address":    "123 Test St",
		"city":       "Testville",
		"zip":        "12345",
		"cardNumber": "1111222233334444",
		"cardExpiry": "12/25",
		"cardCvc":    "123",
	}
}

func TestCheckoutRoute(t *testing.T) {
	router := setupRouter(t)

	doJSON(t, router, http.MethodPost, "/api/cart", gin.H{"productId": "prod_1", "quantity": 1})
	doJSON(t, router, http.MethodPost, "/api/cart/discount", gin.H{"code": "SAVE15"})

	w := doJSON(t, router, http.MethodPost, "/api/checkout", validCheckoutBody())
	require.Equal(t, http.StatusOK, w.Code)

	result := decodeBody[domain.CheckoutResult](t, w)
	assert.NotEmpty(t, result.Order.ID)
	assert.Equal(t, "SAVE15", result.Order.AppliedDiscountCode)
	assert.InDelta(t, 35.70, result.Order.Total, 1e-9)
	assert.Nil(t, result.NewDiscount)
}

func TestCheckoutRouteEmptyCart(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/checkout", validCheckoutBody())
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutValidationMessages(t *testing.T) {
	router := setupRouter(t)
	doJSON(t, router, http.MethodPost, "/api/cart", gin.H{"productId": "prod_1", "quantity": 1})

	cases := []struct {
		name    string
		field   string
		value   string
		message string
	}{
		{"short name", "name", "A", "Name must be at least 2 characters."},
		{"bad email", "email", "not-an-email", "Please enter a valid email."},
		{"short address", "address", "abc", "Address must be at least 5 characters."},
		{"short city", "city", "X", "City must be at least 2 characters."},
		{"short zip", "zip", "12", "Zip code must be at least 4 characters."},
		{"bad card number", "cardNumber", "1234", "Card number must be 16 digits."},
		{"bad expiry", "cardExpiry", "13/25", "Expiry must be in MM/YY format."},
		{"bad cvc", "cardCvc", "12", "CVC must be 3 or 4 digits."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := validCheckoutBody()
			body[tc.field] = tc.value

			w := doJSON(t, router, http.MethodPost, "/api/checkout", body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			resp := decodeBody[map[string]string](t, w)
			assert.Equal(t, tc.message, resp["message"])
		})
	}
}

func TestSecondCheckoutMintsDiscount(t *testing.T) {
	router := setupRouter(t)

	for i := 0; i < 2; i++ {
		doJSON(t, router, http.MethodPost, "/api/cart", gin.H{"productId": "prod_1", "quantity": 1})
		w := doJSON(t, router, http.MethodPost, "/api/checkout", validCheckoutBody())
		require.Equal(t, http.StatusOK, w.Code)

		result := decodeBody[domain.CheckoutResult](t, w)
		if i == 0 {
			assert.Nil(t, result.NewDiscount)
		} else {
			require.NotNil(t, result.NewDiscount)
			assert.True(t, strings.HasPrefix(result.NewDiscount.Code, "SAVE10-"))
			assert.Equal(t, float64(10), result.NewDiscount.Percentage)
		}
		doJSON(t, router, http.MethodPost, "/api/cart/clear", nil)
	}
}

func TestOrderLookupRoutes(t *testing.T) {
	router := setupRouter(t)

	doJSON(t, router, http.MethodPost, "/api/cart", gin.H{"productId": "prod_2", "quantity": 1})
	w := doJSON(t, router, http.MethodPost, "/api/checkout", validCheckoutBody())
	require.Equal(t, http.StatusOK, w.Code)
	placed := decodeBody[domain.CheckoutResult](t, w)

	w = doJSON(t, router, http.MethodGet, "/api/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	orders := decodeBody[[]domain.Order](t, w)
	require.Len(t, orders, 1)
	assert.Equal(t, placed.Order.ID, orders[0].ID)

	w = doJSON(t, router, http.MethodGet, "/api/orders/"+placed.Order.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	order := decodeBody[domain.Order](t, w)
	assert.Equal(t, placed.Order.ID, order.ID)

	w = doJSON(t, router, http.MethodGet, "/api/orders?orderId="+placed.Order.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/orders/no-such-order", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/orders?orderId=no-such-order", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminRoutes(t *testing.T) {
	router := setupRouter(t)

	// Condition not met before any orders exist.
	w := doJSON(t, router, http.MethodPost, "/api/admin/generate-discount", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	doJSON(t, router, http.MethodPost, "/api/cart", gin.H{"productId": "prod_1", "quantity": 2})
	doJSON(t, router, http.MethodPost, "/api/checkout", validCheckoutBody())
	doJSON(t, router, http.MethodPost, "/api/cart/clear", nil)

	doJSON(t, router, http.MethodPost, "/api/cart", gin.H{"productId": "prod_3", "quantity": 1})
	doJSON(t, router, http.MethodPost, "/api/checkout", validCheckoutBody())

	w = doJSON(t, router, http.MethodGet, "/api/admin/analytics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decodeBody[domain.AdminStats](t, w)
	assert.Equal(t, 3, stats.ItemCount)
	assert.InDelta(t, 84.00+25.00, stats.TotalAmount, 1e-9)
	assert.Zero(t, stats.TotalDiscountAmount)
	// Seed code plus the one minted by the second order.
	assert.Len(t, stats.DiscountCodes, 2)

	w = doJSON(t, router, http.MethodPost, "/api/admin/generate-discount", nil)
	require.Equal(t, http.StatusOK, w.Code)
	discount := decodeBody[domain.DiscountCode](t, w)
	assert.True(t, strings.HasPrefix(discount.Code, "SAVE10-"))
	assert.Equal(t, float64(10), discount.Percentage)
}
