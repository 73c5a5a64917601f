package router

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang-jwt/jwt/v4"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pizza-pixel/ordering-service/internal/config"
	"github.com/pizza-pixel/ordering-service/internal/db"
	"github.com/pizza-pixel/ordering-service/internal/service"
	"github.com/pizza-pixel/ordering-service/internal/websockets"
)

func newRouter(t *testing.T) (*Router, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	cfg := &config.Config{
		Server: config.Server{
			Address:        ":5000",
			AllowedOrigins: []string{"http://localhost:5173"},
		},
		JWT: config.JWT{Secret: "test-secret", ExpiresIn: 1},
	}

	database := &db.Postgres{DB: sqlx.NewDb(mockDB, "sqlmock")}
	return New(database, websockets.NewHub(), cfg), mock
}

func TestRouter_PublicRoutes(t *testing.T) {
	r, mock := newRouter(t)

	mock.ExpectPing()
	mock.ExpectQuery(regexp.QuoteMeta("FROM categories")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "emoji", "description", "image_url"}).
			AddRow(1, "Pizza", "🍕", "", ""))

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	})

	t.Run("categories", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/categories", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"name":"Pizza"`)
	})
}

func TestRouter_AdminRoutesRequireToken(t *testing.T) {
	r, mock := newRouter(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/orders"},
		{http.MethodPost, "/api/categories"},
		{http.MethodDelete, "/api/items/1"},
		{http.MethodGet, "/api/orders/notifications"},
		{http.MethodGet, "/api/contact"},
	}

	for _, p := range paths {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(p.method, p.path, nil))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}

	// None of the rejected requests reached the database.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouter_WebSocketRequiresAdminToken(t *testing.T) {
	r, _ := newRouter(t)

	t.Run("no token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws?token=not-a-jwt", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRouter_CORSPreflight(t *testing.T) {
	r, _ := newRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/orders", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}

func adminToken(t *testing.T) string {
	t.Helper()

	claims := &service.Claims{
		UserID: 1,
		Email:  "admin@pizzapixel.com",
		Role:   "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

// Walks the admin flow end to end: create a category, put an item in it, take
// an order for that item, and complete the order.
func TestRouter_OrderLifecycle(t *testing.T) {
	r, mock := newRouter(t)
	token := adminToken(t)

	do := func(method, path, body string, withToken bool) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		if withToken {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	categoryColumns := []string{"id", "name", "emoji", "description", "image_url"}
	itemColumns := []string{"id", "name", "description", "price", "image_url", "is_available", "category"}
	orderColumns := []string{"id", "invoice_number", "customer_name", "customer_phone", "total_amount", "status", "created_at"}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO categories")).
		WillReturnRows(sqlmock.NewRows(categoryColumns).AddRow(4, "Dessert", "🍕", "", ""))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM categories WHERE name")).
		WithArgs("Dessert").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO menu_items")).
		WillReturnRows(sqlmock.NewRows(itemColumns).
			AddRow(7, "Tiramisu", "", 7.99, "", true, "Dessert"))

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO orders")).
		WillReturnRows(sqlmock.NewRows(orderColumns).
			AddRow(42, "", "Ada", "", 15.98, "pending", time.Now()))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE orders SET invoice_number")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM menu_items WHERE name")).
		WithArgs("Tiramisu").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO order_items")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO notifications")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE orders")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rec := do(http.MethodPost, "/api/categories", `{"name":"Dessert"}`, true)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(http.MethodPost, "/api/items", `{"name":"Tiramisu","price":"$7.99","category":"Dessert"}`, true)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"price":"$7.99"`)
	assert.NotContains(t, rec.Body.String(), "unresolved")

	rec = do(http.MethodPost, "/api/orders",
		`{"customer":"Ada","orderItems":[{"name":"Tiramisu","qty":2,"unitPrice":7.99}],"total":15.98}`, false)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"invoiceNumber":"INV-42"`)

	rec = do(http.MethodPatch, "/api/orders/42/status", `{"status":"completed"}`, true)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouter_CORSUnknownOrigin(t *testing.T) {
	r, _ := newRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/orders", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
