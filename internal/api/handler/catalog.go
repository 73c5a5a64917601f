package handler

import (
	"net/http"
	"strconv"

	"github.com/pizza-pixel/ordering-service/internal/api"
	"github.com/pizza-pixel/ordering-service/internal/models"
	"github.com/pizza-pixel/ordering-service/internal/service"
)

// CatalogHandler handles category and menu item requests
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// pathID parses the {id} path segment.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, api.BadRequest("Invalid id")
	}
	return id, nil
}

// ListCategories handles GET /api/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogService.ListCategories(r.Context())
	if err != nil {
		api.RespondError(w, r, err)
		return
	}
	api.Respond(w, http.StatusOK, categories)
}

// CreateCategory handles POST /api/categories
func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req models.CategoryRequest
	if err := api.Decode(r, &req); err != nil {
		api.RespondError(w, r, api.BadRequest("Name is required"))
		return
	}

	created, err := h.catalogService.CreateCategory(r.Context(), req)
	if err != nil {
		api.RespondError(w, r, err)
		return
	}
	api.Respond(w, http.StatusCreated, created)
}

// UpdateCategory handles PUT /api/categories/{id}
func (h *CatalogHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		api.RespondError(w, r, err)
		return
	}

	var req models.CategoryRequest
	if err := api.Decode(r, &req); err != nil {
		api.RespondError(w, r, api.BadRequest("Name is required"))
		return
	}

	updated, err := h.catalogService.UpdateCategory(r.Context(), id, req)
	if err != nil {
		api.RespondError(w, r, err)
		return
	}
	api.Respond(w, http.StatusOK, updated)
}

// DeleteCategory handles DELETE /api/categories/{id}
func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		api.RespondError(w, r, err)
		return
	}

	if err := h.catalogService.DeleteCategory(r.Context(), id); err != nil {
		api.RespondError(w, r, err)
		return
	}
	api.Respond(w, http.StatusOK, map[string]bool{"success": true})
}

// ListItems handles GET /api/items?category=
func (h *CatalogHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalogService.ListItems(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		api.RespondError(w, r, err)
		return
	}
	api.Respond(w, http.StatusOK, items)
}

// CreateItem handles POST /api/items
func (h *CatalogHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req models.MenuItemRequest
	if err := api.Decode(r, &req); err != nil {
		api.RespondError(w, r, api.BadRequest("Name and price are required"))
		return
	}

	created, err := h.catalogService.CreateItem(r.Context(), req)
	if err != nil {
		api.RespondError(w, r, err)
		return
	}
	api.Respond(w, http.StatusCreated, created)
}

// UpdateItem handles PUT /api/items/{id}
func (h *CatalogHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		api.RespondError(w, r, err)
		return
	}

	var req models.MenuItemRequest
	if err := api.Decode(r, &req); err != nil {
		api.RespondError(w, r, api.BadRequest("Name and price are required"))
		return
	}

	updated, err := h.catalogService.UpdateItem(r.Context(), id, req)
	if err != nil {
		api.RespondError(w, r, err)
		return
	}
	api.Respond(w, http.StatusOK, updated)
}

// DeleteItem handles DELETE /api/items/{id}
func (h *CatalogHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		api.RespondError(w, r, err)
		return
	}

	if err := h.catalogService.DeleteItem(r.Context(), id); err != nil {
		api.RespondError(w, r, err)
		return
	}
	api.Respond(w, http.StatusOK, map[string]bool{"success": true})
}
