package order

import (
	"context"
	"database/sql"
	"encoding/json"

	"belanja-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	// CreateOrderTx runs the whole checkout inside one transaction: it reads
	// the cart joined with current product data, hands the lines to plan,
	// persists the returned order, decrements stock conditionally, and clears
	// the cart. Any failure rolls everything back, the cart included.
	CreateOrderTx(ctx context.Context, userID uint, plan func(lines []CheckoutLine) (*Order, error)) (*Order, error)

	GetByID(ctx context.Context, orderID string) (*Order, error)
	GetByIntentID(ctx context.Context, intentID string) (*Order, error)
	List(ctx context.Context, userID uint, isAdmin bool, page, limit int32) ([]*Order, error)

	// UpdateStatusFrom moves the order status only when the current status
	// still matches from, returning the rows touched.
	UpdateStatusFrom(ctx context.Context, orderID string, from, to Status) (int64, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateOrderTx(
	ctx context.Context,
	userID uint,
	plan func(lines []CheckoutLine) (*Order, error),
) (*Order, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateOrderTx"),
		zap.Uint("user_id", userID),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return nil, err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("failed to rollback transaction", zap.Error(rbErr))
			}
		}
	}()

	lines, err := loadCheckoutLines(ctx, tx, userID)
	if err != nil {
		log.Error("failed to load cart for checkout", zap.Error(err))
		return nil, err
	}

	order, err := plan(lines)
	if err != nil {
		return nil, err
	}

	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return nil, err
	}
	addressJSON, err := json.Marshal(order.ShippingAddress)
	if err != nil {
		return nil, err
	}
	paymentJSON, err := json.Marshal(order.PaymentDetails)
	if err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (
			id, number, user_id, items,
			subtotal, shipping_cost, total, shipping_method,
			shipping_address, payment_details, payment_intent_id,
			status, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
	`,
		order.ID,
		order.Number,
		order.UserID,
		itemsJSON,
		order.Subtotal,
		order.ShippingCost,
		order.Total,
		order.ShippingMethod,
		addressJSON,
		paymentJSON,
		order.PaymentIntentID,
		order.Status,
		order.CreatedAt,
	)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return nil, err
	}

	// Conditional decrement: the database's compare-and-swap is what keeps
	// two concurrent checkouts from both taking the last unit.
	for _, item := range order.Items {
		res, err := tx.ExecContext(ctx, `
			UPDATE products
			SET stock = stock - $1
			WHERE id = $2 AND stock >= $1
		`, item.Quantity, item.ProductID)
		if err != nil {
			return nil, err
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return nil, err
		}
		if affected == 0 {
			log.Warn("stock ran out during checkout",
				zap.String("product_id", item.ProductID),
				zap.Int("quantity", item.Quantity),
			)
			return nil, ErrItemsUnavailable
		}
	}

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM cart_items WHERE user_id = $1
	`, userID); err != nil {
		log.Error("failed to clear cart", zap.Error(err))
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit checkout transaction", zap.Error(err))
		return nil, err
	}

	committed = true
	log.Info("checkout transaction committed",
		zap.String("order_id", order.ID),
		zap.Int64("total", order.Total),
	)

	return order, nil
}

func loadCheckoutLines(ctx context.Context, tx *sql.Tx, userID uint) ([]CheckoutLine, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT
			c.product_id,
			c.quantity,
			p.name,
			p.price,
			p.discount_percent,
			p.stock,
			p.images
		FROM cart_items c
		JOIN products p ON p.id = c.product_id
		WHERE c.user_id = $1
		ORDER BY c.created_at ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []CheckoutLine
	for rows.Next() {
		var l CheckoutLine
		if err := rows.Scan(
			&l.ProductID,
			&l.Quantity,
			&l.Name,
			&l.Price,
			&l.DiscountPercent,
			&l.Stock,
			pq.Array(&l.Images),
		); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}

	return lines, rows.Err()
}

const orderColumns = `
	id, number, user_id, items,
	subtotal, shipping_cost, total, shipping_method,
	shipping_address, payment_details, payment_intent_id,
	status, created_at, updated_at
`

func (r *repository) GetByID(ctx context.Context, orderID string) (*Order, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = $1
	`, orderID)

	return scanOrder(row)
}

func (r *repository) GetByIntentID(ctx context.Context, intentID string) (*Order, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE payment_intent_id = $1
	`, intentID)

	return scanOrder(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*Order, error) {
	var (
		o           Order
		itemsJSON   []byte
		addressJSON []byte
		paymentJSON []byte
	)

	err := row.Scan(
		&o.ID,
		&o.Number,
		&o.UserID,
		&itemsJSON,
		&o.Subtotal,
		&o.ShippingCost,
		&o.Total,
		&o.ShippingMethod,
		&addressJSON,
		&paymentJSON,
		&o.PaymentIntentID,
		&o.Status,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(addressJSON, &o.ShippingAddress); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(paymentJSON, &o.PaymentDetails); err != nil {
		return nil, err
	}

	return &o, nil
}

func (r *repository) List(
	ctx context.Context,
	userID uint,
	isAdmin bool,
	page, limit int32,
) ([]*Order, error) {

	finalLimit := int32(20)
	if limit > 0 {
		finalLimit = limit
	}
	if finalLimit > 100 {
		finalLimit = 100
	}

	finalPage := int32(1)
	if page > 0 {
		finalPage = page
	}

	offset := (finalPage - 1) * finalLimit

	log := logger.FromCtx(ctx).With(
		zap.String("method", "List"),
		zap.Uint("user_id", userID),
		zap.Bool("is_admin", isAdmin),
		zap.Int32("limit", finalLimit),
		zap.Int32("page", finalPage),
	)

	query := `
		SELECT ` + orderColumns + `
		FROM orders
	`
	args := []any{}

	if !isAdmin {
		query += ` WHERE user_id = $1`
		args = append(args, userID)
	}

	query += ` ORDER BY created_at DESC`

	if isAdmin {
		query += ` LIMIT $1 OFFSET $2`
	} else {
		query += ` LIMIT $2 OFFSET $3`
	}
	args = append(args, finalLimit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			log.Error("failed to scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		log.Error("rows iteration error", zap.Error(err))
		return nil, err
	}

	log.Debug("orders listed", zap.Int("count", len(orders)))

	return orders, nil
}

func (r *repository) UpdateStatusFrom(
	ctx context.Context,
	orderID string,
	from, to Status,
) (int64, error) {

	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`, to, orderID, from)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}
