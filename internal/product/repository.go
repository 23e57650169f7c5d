package product

import (
	"context"
	"database/sql"

	"belanja-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	GetByID(ctx context.Context, productID string) (*Product, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// GetByID returns the catalog projection for a product, or nil when the
// product does not exist.
func (r *repository) GetByID(ctx context.Context, productID string) (*Product, error) {
	query := `
	SELECT
		id,
		name,
		price,
		discount_percent,
		stock,
		category,
		images,
		created_at,
		updated_at
	FROM products
	WHERE id = $1
	`

	var p Product
	err := r.db.QueryRowContext(ctx, query, productID).Scan(
		&p.ID,
		&p.Name,
		&p.Price,
		&p.DiscountPercent,
		&p.Stock,
		&p.Category,
		pq.Array(&p.Images),
		&p.CreatedAt,
		&p.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to get product",
			zap.String("product_id", productID),
			zap.Error(err),
		)
		return nil, err
	}

	return &p, nil
}
