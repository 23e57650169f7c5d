package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"belanja-be/internal/logger"

	"go.uber.org/zap"
)

const stripeBaseURL = "https://api.stripe.com"

type stripeGateway struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewStripeGateway builds the production gateway. The HTTP client carries the
// only timeout checkout relies on.
func NewStripeGateway(apiKey string) Gateway {
	if apiKey == "" {
		logger.L().Warn("Stripe API key is empty")
	}

	return &stripeGateway{
		apiKey:  apiKey,
		baseURL: stripeBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type stripeIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

func (g *stripeGateway) CreateIntent(
	ctx context.Context,
	amountMinorUnits int64,
	currency string,
	metadata map[string]string,
) (*Intent, error) {

	log := logger.FromCtx(ctx).With(
		zap.Int64("amount", amountMinorUnits),
		zap.String("currency", currency),
	)

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountMinorUnits, 10))
	form.Set("currency", currency)
	for k, v := range metadata {
		form.Set(fmt.Sprintf("metadata[%s]", k), v)
	}

	log.Info("creating payment intent")

	var res stripeIntentResponse
	if err := g.do(ctx, http.MethodPost, "/v1/payment_intents", form, &res); err != nil {
		log.Error("payment intent creation failed", zap.Error(err))
		return nil, err
	}

	log.Info("payment intent created",
		zap.String("intent_id", res.ID),
		zap.String("status", res.Status),
	)

	return &Intent{
		ID:           res.ID,
		ClientSecret: res.ClientSecret,
		Amount:       res.Amount,
		Currency:     res.Currency,
		Status:       res.Status,
	}, nil
}

func (g *stripeGateway) RetrieveIntent(ctx context.Context, intentID string) (*Intent, error) {
	log := logger.FromCtx(ctx).With(zap.String("intent_id", intentID))

	var res stripeIntentResponse
	if err := g.do(ctx, http.MethodGet, "/v1/payment_intents/"+intentID, nil, &res); err != nil {
		log.Error("failed to retrieve payment intent", zap.Error(err))
		return nil, err
	}

	return &Intent{
		ID:           res.ID,
		ClientSecret: res.ClientSecret,
		Amount:       res.Amount,
		Currency:     res.Currency,
		Status:       res.Status,
	}, nil
}

func (g *stripeGateway) Refund(ctx context.Context, intentID string) error {
	log := logger.FromCtx(ctx).With(zap.String("intent_id", intentID))

	form := url.Values{}
	form.Set("payment_intent", intentID)

	var res struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := g.do(ctx, http.MethodPost, "/v1/refunds", form, &res); err != nil {
		log.Error("refund request failed", zap.Error(err))
		return err
	}

	log.Info("refund created",
		zap.String("refund_id", res.ID),
		zap.String("status", res.Status),
	)
	return nil
}

func (g *stripeGateway) do(
	ctx context.Context,
	method, path string,
	form url.Values,
	out any,
) error {

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, body)
	if err != nil {
		return err
	}

	req.SetBasicAuth(g.apiKey, "")
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read stripe response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("stripe error: %s", string(bodyBytes))
	}

	return json.Unmarshal(bodyBytes, out)
}
