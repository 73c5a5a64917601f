// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/pizza-pixel/ordering-service/internal/api/handler"
	"github.com/pizza-pixel/ordering-service/internal/config"
	"github.com/pizza-pixel/ordering-service/internal/db"
	"github.com/pizza-pixel/ordering-service/internal/db/repository"
	"github.com/pizza-pixel/ordering-service/internal/middleware"
	"github.com/pizza-pixel/ordering-service/internal/models"
	"github.com/pizza-pixel/ordering-service/internal/service"
	"github.com/pizza-pixel/ordering-service/internal/websockets"
)

// Router handles HTTP routing
type Router struct {
	mux      *http.ServeMux
	handler  http.Handler
	auth     *service.AuthService
	hub      *websockets.Hub
	upgrader websocket.Upgrader

	authHandler    *handler.AuthHandler
	catalogHandler *handler.CatalogHandler
	orderHandler   *handler.OrderHandler
	profileHandler *handler.ProfileHandler
	contactHandler *handler.ContactHandler
	healthHandler  *handler.HealthHandler
}

// New creates a new router with all services wired up
func New(database *db.Postgres, hub *websockets.Hub, cfg *config.Config) *Router {
	repos := repository.NewRepositories(database.DB)

	auth := service.NewAuthService(repos, service.JWTConfig{
		Secret:    cfg.JWT.Secret,
		ExpiresIn: cfg.JWT.ExpiresIn,
	})
	catalog := service.NewCatalogService(repos)
	orders := service.NewOrderService(repos, hub)
	contact := service.NewContactService(repos, hub)

	r := &Router{
		mux:      http.NewServeMux(),
		auth:     auth,
		hub:      hub,
		upgrader: websockets.NewUpgrader(cfg.Server.AllowedOrigins),

		authHandler:    handler.NewAuthHandler(auth),
		catalogHandler: handler.NewCatalogHandler(catalog),
		orderHandler:   handler.NewOrderHandler(orders),
		profileHandler: handler.NewProfileHandler(auth),
		contactHandler: handler.NewContactHandler(contact),
		healthHandler:  handler.NewHealthHandler(database),
	}

	r.setupRoutes()

	// CORS answers preflights before the mux can reject the method.
	r.handler = middleware.CORS(cfg.Server.AllowedOrigins)(middleware.Logger(r.mux))

	return r
}

// ServeHTTP implements the http.Handler interface
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.handler.ServeHTTP(w, req)
}

// setupRoutes sets up the routes for the router
func (r *Router) setupRoutes() {
	// Public routes
	r.mux.HandleFunc("POST /api/auth/register", r.authHandler.Register)
	r.mux.HandleFunc("POST /api/auth/login", r.authHandler.Login)
	r.mux.HandleFunc("GET /api/categories", r.catalogHandler.ListCategories)
	r.mux.HandleFunc("GET /api/items", r.catalogHandler.ListItems)
	r.mux.HandleFunc("POST /api/orders", r.orderHandler.Create)
	r.mux.HandleFunc("POST /api/contact", r.contactHandler.Submit)
	r.mux.HandleFunc("GET /api/health", r.healthHandler.Check)
	r.mux.HandleFunc("GET /ws", r.handleWebSocket)

	// Admin routes
	r.mux.Handle("POST /api/categories", r.admin(r.catalogHandler.CreateCategory))
	r.mux.Handle("PUT /api/categories/{id}", r.admin(r.catalogHandler.UpdateCategory))
	r.mux.Handle("DELETE /api/categories/{id}", r.admin(r.catalogHandler.DeleteCategory))
	r.mux.Handle("POST /api/items", r.admin(r.catalogHandler.CreateItem))
	r.mux.Handle("PUT /api/items/{id}", r.admin(r.catalogHandler.UpdateItem))
	r.mux.Handle("DELETE /api/items/{id}", r.admin(r.catalogHandler.DeleteItem))
	r.mux.Handle("GET /api/orders", r.admin(r.orderHandler.List))
	r.mux.Handle("PATCH /api/orders/{id}/status", r.admin(r.orderHandler.UpdateStatus))
	r.mux.Handle("GET /api/orders/{id}/invoice", r.admin(r.orderHandler.Invoice))
	r.mux.Handle("GET /api/orders/notifications", r.admin(r.orderHandler.Notifications))
	r.mux.Handle("POST /api/orders/notifications/mark-read", r.admin(r.orderHandler.MarkNotificationsRead))
	r.mux.Handle("GET /api/contact", r.admin(r.contactHandler.List))
	r.mux.Handle("PUT /api/contact/{id}/reply", r.admin(r.contactHandler.Reply))
	r.mux.Handle("PUT /api/contact/{id}/read", r.admin(r.contactHandler.MarkRead))

	// Token-scoped routes: the handler checks that the token may act on the
	// email in the path
	r.mux.Handle("GET /api/profile/{email}", r.authed(r.profileHandler.Get))
	r.mux.Handle("PUT /api/profile/{email}", r.authed(r.profileHandler.Update))
	r.mux.Handle("PUT /api/profile/{email}/password", r.authed(r.profileHandler.ChangePassword))
	r.mux.Handle("GET /api/contact/user/{email}", r.authed(r.contactHandler.ListByEmail))
}

// authed requires a valid token of any role
func (r *Router) authed(h http.HandlerFunc) http.Handler {
	return middleware.Auth(r.auth)(h)
}

// admin requires a valid token carrying the admin role
func (r *Router) admin(h http.HandlerFunc) http.Handler {
	return middleware.Auth(r.auth)(middleware.RequireRole(models.RoleAdmin)(h))
}

// handleWebSocket upgrades admin dashboard connections. Browsers cannot set
// headers on websocket handshakes, so the token rides in the query string.
func (r *Router) handleWebSocket(w http.ResponseWriter, req *http.Request) {
	token := req.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "token is required", http.StatusUnauthorized)
		return
	}

	claims, err := r.auth.ValidateToken(token)
	if err != nil {
		http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
		return
	}

	if models.UserRole(claims.Role) != models.RoleAdmin {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	conn, err := r.upgrader.Upgrade(w, req, nil)
	if err != nil {
		// The upgrader has already written the error to the response
		return
	}

	websockets.ServeWs(r.hub, conn, claims.Email)
}
