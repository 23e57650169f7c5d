package cart

import "time"

// CartItem is one row of a user's cart. The cart itself is just the set of a
// user's items; there is no separate cart entity.
type CartItem struct {
	ID        string
	UserID    uint
	ProductID string
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Line is a cart item joined with the current catalog projection. Price,
// discount and stock are live values, unlike an order's frozen snapshot.
type Line struct {
	ItemID          string
	ProductID       string
	Name            string
	Price           int64
	DiscountPercent int
	InStock         bool
	Images          []string
	Quantity        int
}

// View is the full cart read model with its live computed total.
type View struct {
	Items []Line
	Total int64
}

type AddParams struct {
	UserID    uint
	ProductID string
	Quantity  int
}

type UpdateParams struct {
	UserID   uint
	ItemID   string
	Quantity int
}

type CreateItemParams struct {
	UserID    uint
	ProductID string
	Quantity  int
}
