package main

import (
	"net/http"

	"belanja-be/internal/api"
	"belanja-be/internal/cart"
	"belanja-be/internal/config"
	"belanja-be/internal/db"
	"belanja-be/internal/events"
	"belanja-be/internal/logger"
	"belanja-be/internal/metrics"
	"belanja-be/internal/order"
	"belanja-be/internal/payment"
	"belanja-be/internal/product"
	syncengine "belanja-be/internal/sync"
	"belanja-be/internal/wishlist"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	m := metrics.NewSet()

	var publisher events.Publisher = events.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPub := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer kafkaPub.Close()
		publisher = kafkaPub
	}

	gateway := payment.NewStripeGateway(cfg.StripeSecretKey)

	productRepo := product.NewRepository(database)

	cartRepo := cart.NewRepository(database)
	cartSvc := cart.NewService(cartRepo, productRepo)

	wishlistRepo := wishlist.NewRepository(database)
	wishlistSvc := wishlist.NewService(wishlistRepo, productRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, gateway, publisher, m, cfg.Currency)

	engine := syncengine.NewEngine(
		syncengine.CartAdapter{Service: cartSvc},
		syncengine.WishlistAdapter{Service: wishlistSvc},
		m,
	)

	router := api.NewRouter(api.Handlers{
		Cart:     api.NewCartHandler(cartSvc, engine),
		Wishlist: api.NewWishlistHandler(wishlistSvc),
		Order:    api.NewOrderHandler(orderSvc),
		Webhook:  api.NewWebhookHandler(orderSvc, cfg.PaymentCallbackToken),
		Session:  api.NewSessionHandler(engine),
	})

	logger.L().Info("server listening", zap.String("port", cfg.AppPort))
	if err := http.ListenAndServe(":"+cfg.AppPort, router); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
