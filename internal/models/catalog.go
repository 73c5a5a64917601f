package models

// Category represents a menu category
type Category struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Emoji       string `db:"emoji" json:"emoji"`
	Description string `db:"description" json:"description"`
	Image       string `db:"image_url" json:"image"`
}

// MenuItem represents a menu item. Category is the denormalized category
// name (joined at read time); it is empty when the item has no category.
type MenuItem struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
	Price       Price  `db:"price" json:"price"`
	Image       string `db:"image_url" json:"image"`
	Category    string `db:"category" json:"category"`
	IsAvailable bool   `db:"is_available" json:"is_available"`
}

// CategoryRequest is used for category creation/update
type CategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// MenuItemRequest is used for menu item creation/update. Price is a pointer
// so "price missing" and "price 0" stay distinguishable.
type MenuItemRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=150"`
	Description string `json:"description"`
	Price       *Price `json:"price" validate:"required"`
	Image       string `json:"image"`
	Category    string `json:"category"`
}

// MenuItemResponse is a menu item plus any unresolved-reference warnings
// produced while saving it.
type MenuItemResponse struct {
	MenuItem
	Unresolved []string `json:"unresolved,omitempty"`
}
