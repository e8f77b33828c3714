// internal/handlers/cart_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terrazul/terrazul-backend/internal/cart"
	"github.com/terrazul/terrazul-backend/internal/config"
	"github.com/terrazul/terrazul-backend/internal/middleware"
	"github.com/terrazul/terrazul-backend/internal/models"
	"github.com/terrazul/terrazul-backend/internal/services"
)

type fixtureCatalog struct{}

func (fixtureCatalog) GetProduct(id string) (*models.Product, error) {
	if id != "kantutani-bolivia" {
		return nil, errors.New("product not found")
	}
	return &models.Product{
		ID:          "kantutani-bolivia",
		Name:        "Kantutani, Bolivia",
		PriceNumber: 14000,
		Prices:      models.PriceMap{"250g": 14000, "1kg": 42000},
	}, nil
}

type cartResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Items []cart.LineItem `json:"items"`
		Total int             `json:"total"`
		Count int             `json:"count"`
	} `json:"data"`
}

func setupCartRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	cartCfg := &config.CartConfig{
		KeyPrefix:  "cart:",
		TTLDays:    30,
		CookieName: "cart_session",
	}

	cartService := services.NewCartService(cart.NewMemoryStore(), fixtureCatalog{})
	handler := NewCartHandler(cartService)

	r := gin.New()
	group := r.Group("/v1/cart")
	group.Use(middleware.CartSession(cartCfg))
	{
		group.GET("", handler.GetCart)
		group.POST("/items", handler.AddItem)
		group.PUT("/items/:cartId", handler.UpdateQuantity)
		group.DELETE("/items/:cartId", handler.RemoveItem)
		group.DELETE("", handler.ClearCart)
	}
	return r
}

func doCartRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}, cookies []*http.Cookie) (*httptest.ResponseRecorder, cartResponse) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	r.ServeHTTP(w, req)

	var resp cartResponse
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func TestCartIssuesSessionCookie(t *testing.T) {
	r := setupCartRouter()

	w, resp := doCartRequest(t, r, http.MethodGet, "/v1/cart", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.True(t, resp.Success)
	assert.Empty(t, resp.Data.Items)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "cart_session", cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
}

func TestCartAddAndReload(t *testing.T) {
	r := setupCartRouter()

	w, resp := doCartRequest(t, r, http.MethodPost, "/v1/cart/items", gin.H{
		"product_id":      "kantutani-bolivia",
		"quantity":        2,
		"selected_weight": "250g",
		"selected_grind":  "Molido fino",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, resp.Data.Items, 1)
	assert.Equal(t, 28000, resp.Data.Total)
	assert.Equal(t, 2, resp.Data.Count)

	// The same session cookie sees the persisted cart on a later request
	cookies := w.Result().Cookies()
	w, resp = doCartRequest(t, r, http.MethodGet, "/v1/cart", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, resp.Data.Items, 1)
	assert.Equal(t, "kantutani-bolivia-250g-Molido fino", resp.Data.Items[0].CartID)
	assert.Equal(t, 2, resp.Data.Count)
}

func TestCartAddUnknownProduct(t *testing.T) {
	r := setupCartRouter()

	w, _ := doCartRequest(t, r, http.MethodPost, "/v1/cart/items", gin.H{
		"product_id": "no-such-coffee",
		"quantity":   1,
	}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartUpdateAndRemove(t *testing.T) {
	r := setupCartRouter()

	w, _ := doCartRequest(t, r, http.MethodPost, "/v1/cart/items", gin.H{
		"product_id":      "kantutani-bolivia",
		"quantity":        1,
		"selected_weight": "250g",
		"selected_grind":  "Molido fino",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()

	cartID := "kantutani-bolivia-250g-Molido fino"

	w, resp := doCartRequest(t, r, http.MethodPut, "/v1/cart/items/"+url.PathEscape(cartID), gin.H{"quantity": 5}, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, resp.Data.Count)

	w, resp = doCartRequest(t, r, http.MethodDelete, "/v1/cart/items/"+url.PathEscape(cartID), nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, resp.Data.Items)
}

func TestCartUpdateBelowOneIsNoOp(t *testing.T) {
	r := setupCartRouter()

	w, _ := doCartRequest(t, r, http.MethodPost, "/v1/cart/items", gin.H{
		"product_id":      "kantutani-bolivia",
		"quantity":        3,
		"selected_weight": "250g",
		"selected_grind":  "Molido fino",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()

	cartID := "kantutani-bolivia-250g-Molido fino"

	// Zero and negative quantities are accepted but change nothing
	for _, qty := range []int{0, -5} {
		w, resp := doCartRequest(t, r, http.MethodPut, "/v1/cart/items/"+url.PathEscape(cartID), gin.H{"quantity": qty}, cookies)
		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, resp.Data.Items, 1)
		assert.Equal(t, 3, resp.Data.Items[0].Quantity)
	}
}

func TestCartClear(t *testing.T) {
	r := setupCartRouter()

	w, _ := doCartRequest(t, r, http.MethodPost, "/v1/cart/items", gin.H{
		"product_id": "kantutani-bolivia",
		"quantity":   3,
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()

	w, resp := doCartRequest(t, r, http.MethodDelete, "/v1/cart", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, resp.Data.Items)
	assert.Equal(t, 0, resp.Data.Total)
	assert.Equal(t, 0, resp.Data.Count)
}

func TestCartSessionsAreIsolated(t *testing.T) {
	r := setupCartRouter()

	w, _ := doCartRequest(t, r, http.MethodPost, "/v1/cart/items", gin.H{
		"product_id": "kantutani-bolivia",
		"quantity":   1,
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// A request without the first session's cookie gets a fresh cart
	w, resp := doCartRequest(t, r, http.MethodGet, "/v1/cart", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, resp.Data.Items)
}
