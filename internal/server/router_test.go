package server_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ynvbites/internal/contact"
	"ynvbites/internal/customer"
	"ynvbites/internal/domain"
	"ynvbites/internal/infrastructure/storage"
	"ynvbites/internal/order"
	"ynvbites/internal/product"
	"ynvbites/internal/server"
	"ynvbites/internal/stats"
	"ynvbites/internal/testutil"
	"ynvbites/internal/web"
)

func newApp(t *testing.T) http.Handler {
	t.Helper()
	store := testutil.NewSeededStore(t, storage.SeedDocument())
	logger := zap.NewNop()

	webCtrl, err := web.NewController(store, logger)
	require.NoError(t, err)

	return server.NewRouter(server.Controllers{
		Customers: customer.NewModule(store, logger),
		Orders:    order.NewModule(store, logger),
		Products:  product.NewModule(store, logger),
		Contacts:  contact.NewModule(store, logger),
		Stats:     stats.NewController(store, logger),
		Web:       webCtrl,
	}, server.NewMetrics(), logger)
}

func do(t *testing.T, app http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	w := httptest.NewRecorder()
	app.ServeHTTP(w, req)
	return w
}

func TestRouter_SeededProducts(t *testing.T) {
	app := newApp(t)

	w := do(t, app, http.MethodGet, "/api/products", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var products []domain.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 3)
	assert.Equal(t, "Custom Birthday Cake", products[0].Name)
	assert.Equal(t, 150000.0, products[0].Price)
}

func TestRouter_StatsReflectOrderStatuses(t *testing.T) {
	app := newApp(t)

	createOrder := func(status string) {
		payload := map[string]any{
			"customer_id":  "cus-1",
			"items":        []map[string]any{{"product_id": 1, "quantity": 1, "price": 150000}},
			"total_amount": 150000,
		}
		if status != "" {
			payload["status"] = status
		}
		w := do(t, app, http.MethodPost, "/api/orders", payload)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	createOrder("")
	createOrder("")
	createOrder(domain.OrderStatusCompleted)
	createOrder("cancelled")

	w := do(t, app, http.MethodGet, "/api/stats", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var s stats.Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &s))
	assert.Equal(t, 0, s.TotalCustomers)
	assert.Equal(t, 4, s.TotalOrders)
	assert.Equal(t, 3, s.TotalProducts)
	assert.Equal(t, 2, s.PendingOrders)
	assert.Equal(t, 1, s.CompletedOrders)
}

func TestRouter_StorefrontView(t *testing.T) {
	app := newApp(t)

	w := do(t, app, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "PT Y&amp;V Bites")
	assert.Contains(t, w.Body.String(), "Custom Birthday Cake")
}

func TestRouter_AdminView(t *testing.T) {
	app := newApp(t)

	w := do(t, app, http.MethodPost, "/api/customers", map[string]string{
		"name": "Ana", "email": "ana@x.com", "phone": "555",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, app, http.MethodPost, "/api/contact", map[string]string{
		"name": "Bea", "email": "bea@x.com", "phone": "556",
		"subject": "Catering", "message": "Office event for 40 people",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, app, http.MethodGet, "/admin", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ana@x.com")
	assert.Contains(t, w.Body.String(), "Catering")
}

func TestRouter_UnmatchedMethodIs405(t *testing.T) {
	app := newApp(t)

	// Orders cannot be deleted.
	w := do(t, app, http.MethodDelete, "/api/orders/some-id", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestRouter_UnknownPathIs404(t *testing.T) {
	app := newApp(t)

	w := do(t, app, http.MethodGet, "/api/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	app := newApp(t)

	for i := 0; i < 3; i++ {
		w := do(t, app, http.MethodGet, fmt.Sprintf("/api/products?i=%d", i), nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := do(t, app, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
	assert.Contains(t, w.Body.String(), "http_request_duration_seconds")
}
