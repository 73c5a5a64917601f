package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pizza-pixel/ordering-service/internal/models"
	"github.com/pizza-pixel/ordering-service/internal/service"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret, email, role string, expiresAt time.Time) string {
	t.Helper()

	claims := &service.Claims{
		UserID: 1,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func okHandler(t *testing.T, wantEmail string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := GetClaims(r.Context())
		require.True(t, ok)
		assert.Equal(t, wantEmail, claims.Email)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuth(t *testing.T) {
	authService := service.NewAuthService(nil, service.JWTConfig{Secret: testSecret, ExpiresIn: 1})
	handler := Auth(authService)(okHandler(t, "ada@example.com"))

	token := signToken(t, testSecret, "ada@example.com", "customer", time.Now().Add(time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/api/profile/ada@example.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_Rejections(t *testing.T) {
	authService := service.NewAuthService(nil, service.JWTConfig{Secret: testSecret, ExpiresIn: 1})
	handler := Auth(authService)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"missing header", "", "Authorization header required"},
		{"not bearer", "Basic abc123", "Invalid Authorization header format"},
		{"garbage token", "Bearer not-a-jwt", "Invalid or expired token"},
		{
			"expired token",
			"Bearer " + signToken(t, testSecret, "ada@example.com", "customer", time.Now().Add(-time.Hour)),
			"Invalid or expired token",
		},
		{
			"wrong secret",
			"Bearer " + signToken(t, "other-secret", "ada@example.com", "customer", time.Now().Add(time.Hour)),
			"Invalid or expired token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}
}

func TestRequireRole(t *testing.T) {
	authService := service.NewAuthService(nil, service.JWTConfig{Secret: testSecret, ExpiresIn: 1})

	admin := signToken(t, testSecret, "admin@pizzapixel.com", "admin", time.Now().Add(time.Hour))
	customer := signToken(t, testSecret, "ada@example.com", "customer", time.Now().Add(time.Hour))

	handler := Auth(authService)(RequireRole(models.RoleAdmin)(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })))

	t.Run("admin allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		req.Header.Set("Authorization", "Bearer "+admin)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("customer forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		req.Header.Set("Authorization", "Bearer "+customer)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestCanAccessEmail(t *testing.T) {
	ownerCtx := httptest.NewRequest(http.MethodGet, "/", nil).Context()
	assert.False(t, CanAccessEmail(ownerCtx, "ada@example.com"), "no claims on context")

	authService := service.NewAuthService(nil, service.JWTConfig{Secret: testSecret, ExpiresIn: 1})
	token := signToken(t, testSecret, "Ada@Example.com", "customer", time.Now().Add(time.Hour))

	var got bool
	handler := Auth(authService)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = CanAccessEmail(r.Context(), "ada@example.com")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, got, "owner email comparison is case-insensitive")
}
