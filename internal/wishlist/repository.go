package wishlist

import (
	"context"
	"database/sql"

	"belanja-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	Add(ctx context.Context, userID uint, productID string) (*Item, error)
	GetByUserAndProduct(ctx context.Context, userID uint, productID string) (*Item, error)
	Remove(ctx context.Context, userID uint, productID string) error
	Clear(ctx context.Context, userID uint) error
	GetLines(ctx context.Context, userID uint) ([]Line, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// Add inserts the (user, product) pair if absent. On conflict the existing
// row is returned unchanged; duplicate adds are not errors.
func (r *repository) Add(ctx context.Context, userID uint, productID string) (*Item, error) {
	query := `
	INSERT INTO wishlist_items (user_id, product_id)
	VALUES ($1, $2)
	ON CONFLICT (user_id, product_id) DO NOTHING
	RETURNING id, user_id, product_id, created_at
	`

	var item Item
	err := r.db.QueryRowContext(ctx, query, userID, productID).Scan(
		&item.ID,
		&item.UserID,
		&item.ProductID,
		&item.CreatedAt,
	)

	if err == sql.ErrNoRows {
		// Conflict path: the row already existed.
		return r.GetByUserAndProduct(ctx, userID, productID)
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to add wishlist item",
			zap.Uint("user_id", userID),
			zap.String("product_id", productID),
			zap.Error(err),
		)
		return nil, err
	}

	return &item, nil
}

func (r *repository) GetByUserAndProduct(
	ctx context.Context,
	userID uint,
	productID string,
) (*Item, error) {

	query := `
	SELECT id, user_id, product_id, created_at
	FROM wishlist_items
	WHERE user_id = $1 AND product_id = $2
	`

	var item Item
	err := r.db.QueryRowContext(ctx, query, userID, productID).Scan(
		&item.ID,
		&item.UserID,
		&item.ProductID,
		&item.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *repository) Remove(ctx context.Context, userID uint, productID string) error {
	// Removing an absent item is a no-op.
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM wishlist_items
		WHERE user_id = $1 AND product_id = $2
	`, userID, productID)

	return err
}

func (r *repository) Clear(ctx context.Context, userID uint) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM wishlist_items
		WHERE user_id = $1
	`, userID)

	return err
}

func (r *repository) GetLines(ctx context.Context, userID uint) ([]Line, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetLines"),
		zap.Uint("user_id", userID),
	)

	query := `
	SELECT
		w.id,
		w.product_id,

		p.name,
		p.price,
		p.discount_percent,
		p.stock > 0,
		p.images
	FROM wishlist_items w
	JOIN products p ON p.id = w.product_id
	WHERE w.user_id = $1
	ORDER BY w.created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var lines []Line
	for rows.Next() {
		var l Line
		if err := rows.Scan(
			&l.ItemID,
			&l.ProductID,
			&l.Name,
			&l.Price,
			&l.DiscountPercent,
			&l.InStock,
			pq.Array(&l.Images),
		); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		lines = append(lines, l)
	}

	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, err
	}

	return lines, nil
}
