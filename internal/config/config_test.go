package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "belanja")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "belanja")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("APP_PORT", "8080")
	t.Setenv("APP_ENV", "test")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("KAFKA_BROKERS", "broker-1:9092,broker-2:9092")
	t.Setenv("KAFKA_TOPIC", "order-events")
	t.Setenv("CURRENCY", "")

	cfg := LoadConfig()

	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "belanja", cfg.DBUser)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "sk_test_123", cfg.StripeSecretKey)
	assert.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "order-events", cfg.KafkaTopic)
	assert.Equal(t, "usd", cfg.Currency, "currency defaults to usd")
}
