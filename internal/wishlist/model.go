package wishlist

import "time"

// Item marks a product a user has liked. Presence-only; no quantity exists.
type Item struct {
	ID        string
	UserID    uint
	ProductID string
	CreatedAt time.Time
}

// Line is a wishlist item joined with the current catalog projection.
type Line struct {
	ItemID          string
	ProductID       string
	Name            string
	Price           int64
	DiscountPercent int
	InStock         bool
	Images          []string
}
