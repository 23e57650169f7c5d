package cart

import (
	"context"
	"database/sql"

	"belanja-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	GetItemByUserAndProduct(ctx context.Context, userID uint, productID string) (*CartItem, error)
	CreateItem(ctx context.Context, params CreateItemParams) (*CartItem, error)
	SetItemQuantity(ctx context.Context, itemID string, quantity int) (*CartItem, error)
	SetItemQuantityOwned(ctx context.Context, userID uint, itemID string, quantity int) (int64, error)
	UpsertQuantity(ctx context.Context, userID uint, productID string, quantity int) error
	RemoveItem(ctx context.Context, userID uint, itemID string) error
	Clear(ctx context.Context, userID uint) error
	GetLines(ctx context.Context, userID uint) ([]Line, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetItemByUserAndProduct(
	ctx context.Context,
	userID uint,
	productID string,
) (*CartItem, error) {

	query := `
	SELECT
		id,
		user_id,
		product_id,
		quantity,
		created_at,
		updated_at
	FROM cart_items
	WHERE user_id = $1 AND product_id = $2
	`

	var item CartItem
	err := r.db.QueryRowContext(ctx, query, userID, productID).Scan(
		&item.ID,
		&item.UserID,
		&item.ProductID,
		&item.Quantity,
		&item.CreatedAt,
		&item.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *repository) CreateItem(
	ctx context.Context,
	params CreateItemParams,
) (*CartItem, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateItem"),
		zap.Uint("user_id", params.UserID),
		zap.String("product_id", params.ProductID),
	)

	query := `
	INSERT INTO cart_items (
		user_id,
		product_id,
		quantity
	)
	VALUES ($1, $2, $3)
	RETURNING
		id,
		user_id,
		product_id,
		quantity,
		created_at,
		updated_at
	`

	var item CartItem
	err := r.db.QueryRowContext(
		ctx,
		query,
		params.UserID,
		params.ProductID,
		params.Quantity,
	).Scan(
		&item.ID,
		&item.UserID,
		&item.ProductID,
		&item.Quantity,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to create cart item", zap.Error(err))
		return nil, err
	}

	log.Debug("cart item created", zap.String("cart_item_id", item.ID))

	return &item, nil
}

func (r *repository) SetItemQuantity(
	ctx context.Context,
	itemID string,
	quantity int,
) (*CartItem, error) {

	query := `
	UPDATE cart_items
	SET quantity = $1,
	    updated_at = NOW()
	WHERE id = $2
	RETURNING
		id,
		user_id,
		product_id,
		quantity,
		created_at,
		updated_at
	`

	var item CartItem
	err := r.db.QueryRowContext(ctx, query, quantity, itemID).Scan(
		&item.ID,
		&item.UserID,
		&item.ProductID,
		&item.Quantity,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &item, nil
}

// SetItemQuantityOwned sets the quantity only when the item belongs to the
// caller, returning the number of rows touched.
func (r *repository) SetItemQuantityOwned(
	ctx context.Context,
	userID uint,
	itemID string,
	quantity int,
) (int64, error) {

	res, err := r.db.ExecContext(ctx, `
		UPDATE cart_items
		SET quantity = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3
	`, quantity, itemID, userID)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

// UpsertQuantity sets (never adds) the quantity for (user, product). The sync
// engine pushes merged carts through this path so replays stay idempotent.
func (r *repository) UpsertQuantity(
	ctx context.Context,
	userID uint,
	productID string,
	quantity int,
) error {

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cart_items (user_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = NOW()
	`, userID, productID, quantity)

	return err
}

func (r *repository) RemoveItem(ctx context.Context, userID uint, itemID string) error {
	// Removing an absent item is a no-op.
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM cart_items
		WHERE id = $1 AND user_id = $2
	`, itemID, userID)

	return err
}

func (r *repository) Clear(ctx context.Context, userID uint) error {
	// Clearing an empty cart succeeds trivially.
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM cart_items
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
		c.id,
		c.product_id,
		c.quantity,

		p.name,
		p.price,
		p.discount_percent,
		p.stock > 0,
		p.images
	FROM cart_items c
	JOIN products p ON p.id = c.product_id
	WHERE c.user_id = $1
	ORDER BY c.created_at ASC
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
			&l.Quantity,
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
