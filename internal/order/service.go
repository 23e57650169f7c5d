package order

import (
	"context"
	"strconv"
	"time"

	"belanja-be/internal/apperr"
	"belanja-be/internal/events"
	"belanja-be/internal/logger"
	"belanja-be/internal/metrics"
	"belanja-be/internal/payment"
	"belanja-be/internal/product"
	"belanja-be/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, userID uint, input CreateInput) (*CreateResult, error)
	GetByID(ctx context.Context, userID uint, isAdmin bool, orderID string) (*Order, error)
	List(ctx context.Context, userID uint, isAdmin bool, page, limit int32) ([]*Order, error)
	Cancel(ctx context.Context, userID uint, isAdmin bool, orderID string) (*Order, error)
	UpdateStatus(ctx context.Context, isAdmin bool, orderID, status string) (*Order, error)

	// MarkPaid moves the order tied to a payment intent from pending to
	// processing. Called from the payment webhook; repeated deliveries of the
	// same intent are no-ops.
	MarkPaid(ctx context.Context, intentID string) error
}

type service struct {
	repo      Repository
	gateway   payment.Gateway
	publisher events.Publisher
	metrics   *metrics.Set
	currency  string
}

func NewService(
	repo Repository,
	gateway payment.Gateway,
	publisher events.Publisher,
	m *metrics.Set,
	currency string,
) Service {
	return &service{
		repo:      repo,
		gateway:   gateway,
		publisher: publisher,
		metrics:   m,
		currency:  currency,
	}
}

func (s *service) Create(ctx context.Context, userID uint, input CreateInput) (*CreateResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Create"),
		zap.Uint("user_id", userID),
	)
	timer := metrics.StartTimer()

	var clientSecret string

	created, err := s.repo.CreateOrderTx(ctx, userID, func(lines []CheckoutLine) (*Order, error) {
		if len(lines) == 0 {
			return nil, ErrCartEmpty
		}

		items := make([]OrderItem, 0, len(lines))
		var subtotal int64
		for _, line := range lines {
			if line.Quantity > line.Stock {
				log.Warn("insufficient stock at checkout",
					zap.String("product_id", line.ProductID),
					zap.Int("requested", line.Quantity),
					zap.Int("stock", line.Stock),
				)
				return nil, ErrItemsUnavailable
			}

			lineTotal := product.LineTotal(line.Price, line.DiscountPercent, line.Quantity)
			items = append(items, OrderItem{
				ProductID:       line.ProductID,
				Name:            line.Name,
				UnitPrice:       line.Price,
				DiscountPercent: line.DiscountPercent,
				Quantity:        line.Quantity,
				Images:          line.Images,
				LineTotal:       lineTotal,
			})
			subtotal += lineTotal
		}

		shippingCost := ShippingCost(input.ShippingMethod)
		total := subtotal + shippingCost

		o := &Order{
			ID:              uuid.NewString(),
			Number:          utils.GenerateOrderNumber(),
			UserID:          userID,
			Items:           items,
			Subtotal:        subtotal,
			ShippingCost:    shippingCost,
			Total:           total,
			ShippingMethod:  input.ShippingMethod,
			ShippingAddress: input.ShippingAddress,
			PaymentDetails:  payment.Sanitize(input.PaymentDetails),
			Status:          StatusPending,
			CreatedAt:       time.Now().UTC(),
		}

		if input.PaymentDetails.RequiresAuthorization() {
			intent, err := s.gateway.CreateIntent(ctx, total, s.currency, map[string]string{
				"order_id": o.ID,
				"user_id":  strconv.FormatUint(uint64(userID), 10),
			})
			if err != nil {
				log.Error("payment intent creation failed", zap.Error(err))
				return nil, apperr.Gateway("payment authorization failed", err)
			}
			o.PaymentIntentID = &intent.ID
			clientSecret = intent.ClientSecret
		}

		return o, nil
	})
	if err != nil {
		s.metrics.CheckoutFailures.Inc()
		return nil, err
	}

	s.metrics.OrdersCreated.Inc()
	s.publish(ctx, events.TypeOrderCreated, created)

	log.Info("order created",
		zap.String("order_id", created.ID),
		zap.String("order_number", created.Number),
		zap.Int64("total", created.Total),
		zap.Duration("checkout_duration", timer.Duration()),
	)

	return &CreateResult{Order: created, ClientSecret: clientSecret}, nil
}

func (s *service) GetByID(ctx context.Context, userID uint, isAdmin bool, orderID string) (*Order, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	if !isAdmin && o.UserID != userID {
		return nil, ErrForbidden
	}
	return o, nil
}

func (s *service) List(ctx context.Context, userID uint, isAdmin bool, page, limit int32) ([]*Order, error) {
	return s.repo.List(ctx, userID, isAdmin, page, limit)
}

func (s *service) Cancel(ctx context.Context, userID uint, isAdmin bool, orderID string) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Cancel"),
		zap.String("order_id", orderID),
	)

	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	if !isAdmin && o.UserID != userID {
		return nil, ErrForbidden
	}
	if !o.Status.Cancellable() {
		return nil, ErrCannotCancel
	}

	affected, err := s.repo.UpdateStatusFrom(ctx, orderID, o.Status, StatusCancelled)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		// Lost the race to a concurrent status change.
		return nil, ErrCannotCancel
	}

	// Refund is best-effort. The order is already cancelled; a gateway
	// failure here is reported for manual follow-up, never surfaced.
	if o.PaymentIntentID != nil {
		if err := s.gateway.Refund(ctx, *o.PaymentIntentID); err != nil {
			s.metrics.RefundFailures.Inc()
			log.Error("refund failed for cancelled order",
				zap.String("payment_intent_id", *o.PaymentIntentID),
				zap.Error(err),
			)
		}
	}

	o.Status = StatusCancelled
	s.metrics.OrdersCancelled.Inc()
	s.publish(ctx, events.TypeOrderCancelled, o)

	log.Info("order cancelled", zap.Uint("user_id", o.UserID))

	return o, nil
}

func (s *service) UpdateStatus(ctx context.Context, isAdmin bool, orderID, status string) (*Order, error) {
	if !isAdmin {
		return nil, ErrAdminOnly
	}

	to, ok := ParseStatus(status)
	if !ok {
		return nil, ErrInvalidStatus
	}

	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	if !CanTransition(o.Status, to) {
		return nil, ErrInvalidTransition
	}

	affected, err := s.repo.UpdateStatusFrom(ctx, orderID, o.Status, to)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrInvalidTransition
	}

	o.Status = to
	s.publish(ctx, events.TypeOrderStatusChanged, o)

	logger.FromCtx(ctx).Info("order status updated",
		zap.String("order_id", orderID),
		zap.String("status", string(to)),
	)

	return o, nil
}

func (s *service) MarkPaid(ctx context.Context, intentID string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "MarkPaid"),
		zap.String("payment_intent_id", intentID),
	)

	o, err := s.repo.GetByIntentID(ctx, intentID)
	if err != nil {
		return err
	}
	if o == nil {
		return ErrOrderNotFound
	}
	if o.Status != StatusPending {
		// Duplicate or late delivery; already handled.
		log.Debug("payment confirmation ignored", zap.String("status", string(o.Status)))
		return nil
	}

	affected, err := s.repo.UpdateStatusFrom(ctx, o.ID, StatusPending, StatusProcessing)
	if err != nil {
		return err
	}
	if affected == 0 {
		return nil
	}

	o.Status = StatusProcessing
	s.publish(ctx, events.TypeOrderStatusChanged, o)

	log.Info("order marked paid", zap.String("order_id", o.ID))

	return nil
}

func (s *service) publish(ctx context.Context, eventType string, o *Order) {
	event := events.OrderEvent{
		Type:       eventType,
		OrderID:    o.ID,
		UserID:     o.UserID,
		Status:     string(o.Status),
		Total:      o.Total,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, o.ID, event); err != nil {
		logger.FromCtx(ctx).Warn("event publish failed",
			zap.String("event_type", eventType),
			zap.String("order_id", o.ID),
			zap.Error(err),
		)
	}
}
