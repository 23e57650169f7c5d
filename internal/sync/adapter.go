package sync

import (
	"context"

	"belanja-be/internal/cart"
	"belanja-be/internal/wishlist"
)

// CartAdapter exposes the cart service as a CartStore.
type CartAdapter struct {
	Service cart.Service
}

func (a CartAdapter) Lines(ctx context.Context, userID uint) ([]Line, error) {
	view, err := a.Service.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	lines := make([]Line, 0, len(view.Items))
	for _, item := range view.Items {
		lines = append(lines, Line{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return lines, nil
}

func (a CartAdapter) Put(ctx context.Context, userID uint, productID string, quantity int) error {
	return a.Service.Put(ctx, userID, productID, quantity)
}

// WishlistAdapter exposes the wishlist service as a WishlistStore.
type WishlistAdapter struct {
	Service wishlist.Service
}

func (a WishlistAdapter) Products(ctx context.Context, userID uint) ([]string, error) {
	lines, err := a.Service.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ProductID)
	}
	return ids, nil
}

func (a WishlistAdapter) Add(ctx context.Context, userID uint, productID string) error {
	_, err := a.Service.Add(ctx, userID, productID)
	return err
}
