package wishlist

import (
	"context"

	"belanja-be/internal/apperr"
	"belanja-be/internal/product"
)

var ErrProductNotFound = apperr.NotFound("product not found")

// Service mirrors the cart but as a set: Add is idempotent and there is no
// quantity to reconcile.
type Service interface {
	Add(ctx context.Context, userID uint, productID string) (*Item, error)
	Remove(ctx context.Context, userID uint, productID string) error
	Clear(ctx context.Context, userID uint) error
	Get(ctx context.Context, userID uint) ([]Line, error)
}

type service struct {
	repo        Repository
	productRepo product.Repository
}

func NewService(repo Repository, productRepo product.Repository) Service {
	return &service{repo: repo, productRepo: productRepo}
}

func (s *service) Add(ctx context.Context, userID uint, productID string) (*Item, error) {
	p, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}

	return s.repo.Add(ctx, userID, productID)
}

func (s *service) Remove(ctx context.Context, userID uint, productID string) error {
	return s.repo.Remove(ctx, userID, productID)
}

func (s *service) Clear(ctx context.Context, userID uint) error {
	return s.repo.Clear(ctx, userID)
}

func (s *service) Get(ctx context.Context, userID uint) ([]Line, error) {
	return s.repo.GetLines(ctx, userID)
}
