package cart

import (
	"context"

	"belanja-be/internal/logger"
	"belanja-be/internal/product"

	"go.uber.org/zap"
)

// Service defines the business logic for carts.
type Service interface {
	Add(ctx context.Context, params AddParams) (*Line, error)
	Update(ctx context.Context, params UpdateParams) error
	Remove(ctx context.Context, userID uint, itemID string) error
	Clear(ctx context.Context, userID uint) error
	Get(ctx context.Context, userID uint) (*View, error)
	Put(ctx context.Context, userID uint, productID string, quantity int) error
}

type service struct {
	repo        Repository
	productRepo product.Repository
}

func NewService(repo Repository, productRepo product.Repository) Service {
	return &service{repo: repo, productRepo: productRepo}
}

// Add puts a product in the cart. A second add for the same product
// increments the stored quantity; adding is not idempotent.
func (s *service) Add(ctx context.Context, params AddParams) (*Line, error) {
	if params.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	p, err := s.productRepo.GetByID(ctx, params.ProductID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	if !p.InStock() {
		return nil, ErrProductUnavailable
	}

	existing, err := s.repo.GetItemByUserAndProduct(ctx, params.UserID, params.ProductID)
	if err != nil {
		return nil, err
	}

	var item *CartItem
	if existing == nil {
		item, err = s.repo.CreateItem(ctx, CreateItemParams{
			UserID:    params.UserID,
			ProductID: params.ProductID,
			Quantity:  params.Quantity,
		})
	} else {
		item, err = s.repo.SetItemQuantity(ctx, existing.ID, existing.Quantity+params.Quantity)
	}
	if err != nil {
		return nil, err
	}

	return &Line{
		ItemID:          item.ID,
		ProductID:       p.ID,
		Name:            p.Name,
		Price:           p.Price,
		DiscountPercent: p.DiscountPercent,
		InStock:         p.InStock(),
		Images:          p.Images,
		Quantity:        item.Quantity,
	}, nil
}

// Update sets (not adds) the quantity of an owned cart item.
func (s *service) Update(ctx context.Context, params UpdateParams) error {
	if params.Quantity < 1 {
		return ErrInvalidQuantity
	}

	affected, err := s.repo.SetItemQuantityOwned(ctx, params.UserID, params.ItemID, params.Quantity)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}

func (s *service) Remove(ctx context.Context, userID uint, itemID string) error {
	return s.repo.RemoveItem(ctx, userID, itemID)
}

func (s *service) Clear(ctx context.Context, userID uint) error {
	return s.repo.Clear(ctx, userID)
}

// Get returns the cart joined with current catalog data and a live total.
func (s *service) Get(ctx context.Context, userID uint) (*View, error) {
	lines, err := s.repo.GetLines(ctx, userID)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, l := range lines {
		total += product.LineTotal(l.Price, l.DiscountPercent, l.Quantity)
	}

	return &View{Items: lines, Total: total}, nil
}

// Put is the reconciliation path: an idempotent quantity-set upsert that
// bypasses Add's increment semantics.
func (s *service) Put(ctx context.Context, userID uint, productID string, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	if err := s.repo.UpsertQuantity(ctx, userID, productID, quantity); err != nil {
		logger.FromCtx(ctx).Warn("cart upsert failed",
			zap.Uint("user_id", userID),
			zap.String("product_id", productID),
			zap.Error(err),
		)
		return err
	}

	return nil
}
