package api

import (
	"net/http"

	"belanja-be/internal/logger"
	"belanja-be/internal/middleware"

	"github.com/gorilla/mux"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Cart     *CartHandler
	Wishlist *WishlistHandler
	Order    *OrderHandler
	Webhook  *WebhookHandler
	Session  *SessionHandler
}

func NewRouter(h Handlers) *mux.Router {
	r := mux.NewRouter()

	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(middleware.AuthMiddleware)
	r.Use(middleware.RateLimitMiddleware)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	r.HandleFunc("/cart", h.Cart.Get).Methods(http.MethodGet)
	r.HandleFunc("/cart", h.Cart.Add).Methods(http.MethodPost)
	r.HandleFunc("/cart", h.Cart.Clear).Methods(http.MethodDelete)
	r.HandleFunc("/cart/items/{id}", h.Cart.Update).Methods(http.MethodPut)
	r.HandleFunc("/cart/items/{id}", h.Cart.Remove).Methods(http.MethodDelete)

	r.HandleFunc("/wishlist", h.Wishlist.Get).Methods(http.MethodGet)
	r.HandleFunc("/wishlist", h.Wishlist.Add).Methods(http.MethodPost)
	r.HandleFunc("/wishlist", h.Wishlist.Clear).Methods(http.MethodDelete)
	r.HandleFunc("/wishlist/{productId}", h.Wishlist.Remove).Methods(http.MethodDelete)

	r.HandleFunc("/orders", h.Order.Create).Methods(http.MethodPost)
	r.HandleFunc("/orders", h.Order.List).Methods(http.MethodGet)
	r.HandleFunc("/orders/{id}", h.Order.Get).Methods(http.MethodGet)
	r.HandleFunc("/orders/{id}/cancel", h.Order.Cancel).Methods(http.MethodPost)
	r.HandleFunc("/orders/{id}/status", h.Order.UpdateStatus).Methods(http.MethodPut)

	r.HandleFunc("/session/start", h.Session.Start).Methods(http.MethodPost)
	r.HandleFunc("/session/login", h.Session.Login).Methods(http.MethodPost)

	r.HandleFunc("/webhook/payment", h.Webhook.Handle).Methods(http.MethodPost)

	return r
}
