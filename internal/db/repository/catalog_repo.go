package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pizza-pixel/ordering-service/internal/models"
)

// CatalogRepository handles category and menu item data access
type CatalogRepository struct {
	db *sqlx.DB
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// ListCategories retrieves all categories
func (r *CatalogRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	query := `
		SELECT id, name, emoji, description, image_url
		FROM categories
		ORDER BY id ASC
	`

	categories := []models.Category{}
	err := r.db.SelectContext(ctx, &categories, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}

// CreateCategory creates a new category
func (r *CatalogRepository) CreateCategory(ctx context.Context, category models.Category) (*models.Category, error) {
	query := `
		INSERT INTO categories (name, emoji, description, image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, emoji, description, image_url
	`

	var created models.Category
	err := r.db.GetContext(ctx, &created, query,
		category.Name, category.Emoji, category.Description, category.Image)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &created, nil
}

// UpdateCategory updates a category
func (r *CatalogRepository) UpdateCategory(ctx context.Context, id int64, category models.Category) (*models.Category, error) {
	query := `
		UPDATE categories
		SET name = $1, emoji = $2, description = $3, image_url = $4
		WHERE id = $5
		RETURNING id, name, emoji, description, image_url
	`

	var updated models.Category
	err := r.db.GetContext(ctx, &updated, query,
		category.Name, category.Emoji, category.Description, category.Image, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &updated, nil
}

// DeleteCategory deletes a category. Hard delete; items referencing it fall
// back to no category via the FK's ON DELETE SET NULL.
func (r *CatalogRepository) DeleteCategory(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM categories WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// ResolveCategory looks up a category id by exact name. A nil result with a
// nil error means the name matched nothing.
func (r *CatalogRepository) ResolveCategory(ctx context.Context, name string) (*int64, error) {
	var id int64
	err := r.db.GetContext(ctx, &id, "SELECT id FROM categories WHERE name = $1 LIMIT 1", name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve category: %w", err)
	}
	return &id, nil
}

// ListItems retrieves menu items, optionally filtered by category name.
func (r *CatalogRepository) ListItems(ctx context.Context, category string) ([]models.MenuItem, error) {
	query := `
		SELECT mi.id, mi.name, mi.description, mi.price, mi.image_url, mi.is_available,
		       COALESCE(c.name, '') AS category
		FROM menu_items mi
		LEFT JOIN categories c ON c.id = mi.category_id
	`
	var args []interface{}

	if category != "" {
		query += " WHERE c.name = $1"
		args = append(args, category)
	}
	query += " ORDER BY mi.id ASC"

	items := []models.MenuItem{}
	err := r.db.SelectContext(ctx, &items, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}

	return items, nil
}

// CreateItem creates a menu item. categoryID may be nil when the submitted
// category name resolved to nothing.
func (r *CatalogRepository) CreateItem(ctx context.Context, categoryID *int64, item models.MenuItem) (*models.MenuItem, error) {
	query := `
		INSERT INTO menu_items (category_id, name, description, price, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, description, price, image_url, is_available,
		          COALESCE((SELECT name FROM categories WHERE id = menu_items.category_id), '') AS category
	`

	var created models.MenuItem
	err := r.db.GetContext(ctx, &created, query,
		categoryID, item.Name, item.Description, item.Price, item.Image)
	if err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}

	return &created, nil
}

// UpdateItem updates a menu item
func (r *CatalogRepository) UpdateItem(ctx context.Context, id int64, categoryID *int64, item models.MenuItem) (*models.MenuItem, error) {
	query := `
		UPDATE menu_items
		SET category_id = $1, name = $2, description = $3, price = $4, image_url = $5
		WHERE id = $6
		RETURNING id, name, description, price, image_url, is_available,
		          COALESCE((SELECT name FROM categories WHERE id = menu_items.category_id), '') AS category
	`

	var updated models.MenuItem
	err := r.db.GetContext(ctx, &updated, query,
		categoryID, item.Name, item.Description, item.Price, item.Image, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}

	return &updated, nil
}

// DeleteItem deletes a menu item. Historical order lines keep the name they
// denormalized at insert time.
func (r *CatalogRepository) DeleteItem(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM menu_items WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
