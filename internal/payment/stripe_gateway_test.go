package payment

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockRoundTripper lets tests stub HTTP responses.
type MockRoundTripper func(req *http.Request) *http.Response

func (f MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req), nil
}

type MockRoundTripperWithError func(req *http.Request) (*http.Response, error)

func (f MockRoundTripperWithError) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     make(http.Header),
	}
}

func TestStripeGateway_CreateIntent(t *testing.T) {
	apiKey := "sk_test_123"
	gw := NewStripeGateway(apiKey).(*stripeGateway)

	t.Run("Success", func(t *testing.T) {
		gw.httpClient.Transport = MockRoundTripper(func(req *http.Request) *http.Response {
			assert.Equal(t, "POST", req.Method)
			assert.Equal(t, "https://api.stripe.com/v1/payment_intents", req.URL.String())

			user, _, ok := req.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, apiKey, user)

			body, _ := io.ReadAll(req.Body)
			assert.Contains(t, string(body), "amount=680")
			assert.Contains(t, string(body), "currency=usd")
			assert.Contains(t, string(body), "order_id")

			return jsonResponse(http.StatusOK, `{
				"id": "pi_123",
				"client_secret": "pi_123_secret_abc",
				"amount": 680,
				"currency": "usd",
				"status": "requires_payment_method"
			}`)
		})

		intent, err := gw.CreateIntent(context.Background(), 680, "usd", map[string]string{"order_id": "ord-1"})

		require.NoError(t, err)
		assert.Equal(t, "pi_123", intent.ID)
		assert.Equal(t, "pi_123_secret_abc", intent.ClientSecret)
		assert.Equal(t, int64(680), intent.Amount)
	})

	t.Run("Error - Non-200 status", func(t *testing.T) {
		gw.httpClient.Transport = MockRoundTripper(func(req *http.Request) *http.Response {
			return jsonResponse(http.StatusPaymentRequired, `{"error": {"message": "card declined"}}`)
		})

		_, err := gw.CreateIntent(context.Background(), 100, "usd", nil)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "stripe error")
	})

	t.Run("Error - Transport failure", func(t *testing.T) {
		gw.httpClient.Transport = MockRoundTripperWithError(func(req *http.Request) (*http.Response, error) {
			return nil, errors.New("connection refused")
		})

		_, err := gw.CreateIntent(context.Background(), 100, "usd", nil)
		assert.Error(t, err)
	})
}

func TestStripeGateway_RetrieveIntent(t *testing.T) {
	gw := NewStripeGateway("sk_test_123").(*stripeGateway)

	gw.httpClient.Transport = MockRoundTripper(func(req *http.Request) *http.Response {
		assert.Equal(t, "GET", req.Method)
		assert.Equal(t, "https://api.stripe.com/v1/payment_intents/pi_123", req.URL.String())

		return jsonResponse(http.StatusOK, `{
			"id": "pi_123",
			"client_secret": "pi_123_secret_abc",
			"status": "succeeded"
		}`)
	})

	intent, err := gw.RetrieveIntent(context.Background(), "pi_123")

	require.NoError(t, err)
	assert.Equal(t, "succeeded", intent.Status)
	assert.Equal(t, "pi_123_secret_abc", intent.ClientSecret)
}

func TestStripeGateway_Refund(t *testing.T) {
	gw := NewStripeGateway("sk_test_123").(*stripeGateway)

	t.Run("Success", func(t *testing.T) {
		gw.httpClient.Transport = MockRoundTripper(func(req *http.Request) *http.Response {
			assert.Equal(t, "POST", req.Method)
			assert.Equal(t, "https://api.stripe.com/v1/refunds", req.URL.String())

			body, _ := io.ReadAll(req.Body)
			assert.Contains(t, string(body), "payment_intent=pi_123")

			return jsonResponse(http.StatusOK, `{"id": "re_1", "status": "succeeded"}`)
		})

		assert.NoError(t, gw.Refund(context.Background(), "pi_123"))
	})

	t.Run("Error", func(t *testing.T) {
		gw.httpClient.Transport = MockRoundTripper(func(req *http.Request) *http.Response {
			return jsonResponse(http.StatusBadRequest, `{"error": {"message": "already refunded"}}`)
		})

		assert.Error(t, gw.Refund(context.Background(), "pi_123"))
	})
}

func TestSanitize(t *testing.T) {
	t.Run("Card reduced to last 4, CVV dropped", func(t *testing.T) {
		s := Sanitize(Details{
			Method:     "card",
			CardNumber: "4242 4242 4242 4242",
			CVV:        "123",
			ExpMonth:   12,
			ExpYear:    2027,
			Holder:     "Ayu Lestari",
		})

		assert.Equal(t, "4242", s.CardLast4)
		assert.Equal(t, 12, s.ExpMonth)
		assert.Equal(t, "Ayu Lestari", s.Holder)
	})

	t.Run("Short number kept as-is", func(t *testing.T) {
		s := Sanitize(Details{Method: "card", CardNumber: "42"})
		assert.Equal(t, "42", s.CardLast4)
	})

	t.Run("Requires authorization", func(t *testing.T) {
		assert.True(t, Details{Method: "card"}.RequiresAuthorization())
		assert.False(t, Details{Method: MethodCashOnDelivery}.RequiresAuthorization())
	})
}
