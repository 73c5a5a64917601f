package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pizza-pixel/ordering-service/internal/api"
	"github.com/pizza-pixel/ordering-service/internal/db/repository"
	"github.com/pizza-pixel/ordering-service/internal/models"
)

const defaultEmoji = "🍕"

// CatalogService handles category and menu item business logic
type CatalogService struct {
	repos *repository.Repositories
}

// NewCatalogService creates a new catalog service
func NewCatalogService(repos *repository.Repositories) *CatalogService {
	return &CatalogService{
		repos: repos,
	}
}

// ListCategories retrieves all categories
func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.repos.Catalog.ListCategories(ctx)
}

// CreateCategory creates a new category
func (s *CatalogService) CreateCategory(ctx context.Context, req models.CategoryRequest) (*models.Category, error) {
	emoji := req.Emoji
	if emoji == "" {
		emoji = defaultEmoji
	}

	return s.repos.Catalog.CreateCategory(ctx, models.Category{
		Name:        req.Name,
		Emoji:       emoji,
		Description: req.Description,
		Image:       req.Image,
	})
}

// UpdateCategory updates a category
func (s *CatalogService) UpdateCategory(ctx context.Context, id int64, req models.CategoryRequest) (*models.Category, error) {
	emoji := req.Emoji
	if emoji == "" {
		emoji = defaultEmoji
	}

	updated, err := s.repos.Catalog.UpdateCategory(ctx, id, models.Category{
		Name:        req.Name,
		Emoji:       emoji,
		Description: req.Description,
		Image:       req.Image,
	})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, api.NotFound("Category not found")
	}
	return updated, err
}

// DeleteCategory deletes a category
func (s *CatalogService) DeleteCategory(ctx context.Context, id int64) error {
	err := s.repos.Catalog.DeleteCategory(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return api.NotFound("Category not found")
	}
	return err
}

// ListItems retrieves menu items, optionally filtered by category name
func (s *CatalogService) ListItems(ctx context.Context, category string) ([]models.MenuItem, error) {
	return s.repos.Catalog.ListItems(ctx, category)
}

// CreateItem creates a menu item. The category is submitted by display name;
// a name that matches nothing is reported back as unresolved instead of
// silently attributing the item to an arbitrary category.
func (s *CatalogService) CreateItem(ctx context.Context, req models.MenuItemRequest) (*models.MenuItemResponse, error) {
	categoryID, unresolved, err := s.resolveCategory(ctx, req.Category)
	if err != nil {
		return nil, err
	}

	created, err := s.repos.Catalog.CreateItem(ctx, categoryID, models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Image:       req.Image,
	})
	if err != nil {
		return nil, err
	}

	return &models.MenuItemResponse{MenuItem: *created, Unresolved: unresolved}, nil
}

// UpdateItem updates a menu item
func (s *CatalogService) UpdateItem(ctx context.Context, id int64, req models.MenuItemRequest) (*models.MenuItemResponse, error) {
	categoryID, unresolved, err := s.resolveCategory(ctx, req.Category)
	if err != nil {
		return nil, err
	}

	updated, err := s.repos.Catalog.UpdateItem(ctx, id, categoryID, models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Image:       req.Image,
	})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, api.NotFound("Menu item not found")
	}
	if err != nil {
		return nil, err
	}

	return &models.MenuItemResponse{MenuItem: *updated, Unresolved: unresolved}, nil
}

// DeleteItem deletes a menu item
func (s *CatalogService) DeleteItem(ctx context.Context, id int64) error {
	err := s.repos.Catalog.DeleteItem(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return api.NotFound("Menu item not found")
	}
	return err
}

func (s *CatalogService) resolveCategory(ctx context.Context, name string) (*int64, []string, error) {
	if name == "" {
		return nil, nil, nil
	}

	categoryID, err := s.repos.Catalog.ResolveCategory(ctx, name)
	if err != nil {
		return nil, nil, err
	}
	if categoryID == nil {
		return nil, []string{fmt.Sprintf("unknown category %q", name)}, nil
	}
	return categoryID, nil, nil
}
