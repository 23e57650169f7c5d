package api

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"

	"belanja-be/internal/logger"
	"belanja-be/internal/order"

	"go.uber.org/zap"
)

const callbackTokenHeader = "X-Callback-Token"

// WebhookHandler receives payment gateway callbacks. Events that do not
// match a known order or arrive more than once are acknowledged and ignored
// so the gateway stops retrying them.
type WebhookHandler struct {
	svc           order.Service
	callbackToken string
}

func NewWebhookHandler(svc order.Service, callbackToken string) *WebhookHandler {
	return &WebhookHandler{svc: svc, callbackToken: callbackToken}
}

type webhookPayload struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID string `json:"id"`
		} `json:"object"`
	} `json:"data"`
}

func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(callbackTokenHeader)
	if subtle.ConstantTimeCompare([]byte(token), []byte(h.callbackToken)) != 1 {
		http.Error(w, "invalid callback token", http.StatusUnauthorized)
		return
	}

	var payload webhookPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid JSON payload", http.StatusBadRequest)
		return
	}

	log := logger.FromCtx(r.Context()).With(
		zap.String("event_type", payload.Type),
		zap.String("payment_intent_id", payload.Data.Object.ID),
	)

	switch payload.Type {
	case "payment_intent.succeeded":
		if err := h.svc.MarkPaid(r.Context(), payload.Data.Object.ID); err != nil {
			if errors.Is(err, order.ErrOrderNotFound) {
				log.Warn("webhook for unknown payment intent ignored")
				break
			}
			log.Error("failed to process payment webhook", zap.Error(err))
			http.Error(w, "failed to update order", http.StatusInternalServerError)
			return
		}
		log.Info("payment confirmed via webhook")
	default:
		log.Debug("ignoring webhook event type")
	}

	w.WriteHeader(http.StatusOK)
}
