package payment

import "context"

// Gateway is the injected payment capability. Checkout owns when it is
// called; tests substitute a fake and assert on the calls made.
type Gateway interface {
	CreateIntent(ctx context.Context, amountMinorUnits int64, currency string, metadata map[string]string) (*Intent, error)
	RetrieveIntent(ctx context.Context, intentID string) (*Intent, error)
	Refund(ctx context.Context, intentID string) error
}
