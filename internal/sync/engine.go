package sync

import (
	"context"
	stdsync "sync"

	"belanja-be/internal/logger"
	"belanja-be/internal/metrics"

	"go.uber.org/zap"
)

// CartStore is the slice of the cart service the engine pushes through. Put
// is an idempotent quantity-set, deliberately not the additive Add.
type CartStore interface {
	Lines(ctx context.Context, userID uint) ([]Line, error)
	Put(ctx context.Context, userID uint, productID string, quantity int) error
}

// WishlistStore is the wishlist slice the engine reconciles as a set union.
type WishlistStore interface {
	Products(ctx context.Context, userID uint) ([]string, error)
	Add(ctx context.Context, userID uint, productID string) error
}

// Engine reconciles per-session anonymous caches with the server stores.
// Caches are keyed by the client session id and dirty retry state by the
// user id captured when the push failed, so state from one session or user
// can never land in another user's account. Push failures never surface to
// the caller: the cache already holds the merged truth, failed lines stay
// dirty and are retried on that user's next cart mutation.
type Engine struct {
	cart     CartStore
	wishlist WishlistStore
	metrics  *metrics.Set

	mu            stdsync.Mutex
	sessions      map[string]*LocalCache
	dirtyCart     map[uint]map[string]int
	dirtyWishlist map[uint]map[string]bool
}

func NewEngine(cart CartStore, wishlist WishlistStore, m *metrics.Set) *Engine {
	return &Engine{
		cart:          cart,
		wishlist:      wishlist,
		metrics:       m,
		sessions:      make(map[string]*LocalCache),
		dirtyCart:     make(map[uint]map[string]int),
		dirtyWishlist: make(map[uint]map[string]bool),
	}
}

// Session returns the cache for a client session, creating it on first use.
func (e *Engine) Session(sessionID string) *LocalCache {
	e.mu.Lock()
	defer e.mu.Unlock()

	cache, ok := e.sessions[sessionID]
	if !ok {
		cache = NewLocalCache()
		e.sessions[sessionID] = cache
	}
	return cache
}

// OnStart refreshes the session's cache from the server for an authenticated
// session. Anonymous sessions keep whatever their cache holds.
func (e *Engine) OnStart(ctx context.Context, sessionID string, userID uint, authenticated bool) {
	if !authenticated {
		return
	}

	log := logger.FromCtx(ctx).With(zap.String("trigger", "start"), zap.Uint("user_id", userID))
	cache := e.Session(sessionID)

	if lines, err := e.cart.Lines(ctx, userID); err != nil {
		log.Warn("cart refresh failed", zap.Error(err))
	} else {
		cache.SetCart(lines)
	}

	if ids, err := e.wishlist.Products(ctx, userID); err != nil {
		log.Warn("wishlist refresh failed", zap.Error(err))
	} else {
		cache.SetWishlist(ids)
	}
}

// OnLogin merges one session's anonymous cache into the logging-in user's
// server stores: quantities merge by max, wishlists union. The merged result
// lands in that session's cache immediately; server pushes happen after and
// may partially fail.
func (e *Engine) OnLogin(ctx context.Context, sessionID string, userID uint) {
	log := logger.FromCtx(ctx).With(zap.String("trigger", "login"), zap.Uint("user_id", userID))
	cache := e.Session(sessionID)

	localCart := cache.Cart()
	serverCart, err := e.cart.Lines(ctx, userID)
	if err != nil {
		log.Warn("server cart fetch failed, keeping local cart", zap.Error(err))
		serverCart = nil
	}

	mergedCart := MergeByMax(localCart, serverCart)
	cache.SetCart(mergedCart)

	serverQty := make(map[string]int, len(serverCart))
	for _, l := range serverCart {
		serverQty[l.ProductID] = l.Quantity
	}
	for _, line := range mergedCart {
		if serverQty[line.ProductID] == line.Quantity {
			continue
		}
		e.pushCartLine(ctx, userID, line.ProductID, line.Quantity)
	}

	localWishlist := cache.Wishlist()
	serverWishlist, err := e.wishlist.Products(ctx, userID)
	if err != nil {
		log.Warn("server wishlist fetch failed, keeping local wishlist", zap.Error(err))
		serverWishlist = nil
	}

	serverSet := make(map[string]bool, len(serverWishlist))
	for _, id := range serverWishlist {
		serverSet[id] = true
	}

	merged := UnionProducts(localWishlist, serverWishlist)
	cache.SetWishlist(merged)

	for _, id := range merged {
		if serverSet[id] {
			continue
		}
		e.pushWishlistAdd(ctx, userID, id)
	}

	log.Info("login sync complete",
		zap.Int("cart_lines", len(mergedCart)),
		zap.Int("wishlist_items", len(merged)),
	)
}

// Flush retries the lines whose push failed for this user, and only this
// user. Called opportunistically on the user's next cart mutation, never on
// a timer.
func (e *Engine) Flush(ctx context.Context, userID uint) {
	e.mu.Lock()
	cartRetries := e.dirtyCart[userID]
	wishlistRetries := e.dirtyWishlist[userID]
	delete(e.dirtyCart, userID)
	delete(e.dirtyWishlist, userID)
	e.mu.Unlock()

	for productID, qty := range cartRetries {
		e.pushCartLine(ctx, userID, productID, qty)
	}
	for productID := range wishlistRetries {
		e.pushWishlistAdd(ctx, userID, productID)
	}
}

// Dirty reports whether this user has lines waiting for a retry.
func (e *Engine) Dirty(userID uint) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.dirtyCart[userID]) > 0 || len(e.dirtyWishlist[userID]) > 0
}

func (e *Engine) pushCartLine(ctx context.Context, userID uint, productID string, quantity int) {
	if err := e.cart.Put(ctx, userID, productID, quantity); err != nil {
		e.metrics.SyncPushFailures.Inc()
		logger.FromCtx(ctx).Warn("cart line push failed",
			zap.Uint("user_id", userID),
			zap.String("product_id", productID),
			zap.Int("quantity", quantity),
			zap.Error(err),
		)
		e.mu.Lock()
		if e.dirtyCart[userID] == nil {
			e.dirtyCart[userID] = make(map[string]int)
		}
		e.dirtyCart[userID][productID] = quantity
		e.mu.Unlock()
	}
}

func (e *Engine) pushWishlistAdd(ctx context.Context, userID uint, productID string) {
	if err := e.wishlist.Add(ctx, userID, productID); err != nil {
		e.metrics.SyncPushFailures.Inc()
		logger.FromCtx(ctx).Warn("wishlist push failed",
			zap.Uint("user_id", userID),
			zap.String("product_id", productID),
			zap.Error(err),
		)
		e.mu.Lock()
		if e.dirtyWishlist[userID] == nil {
			e.dirtyWishlist[userID] = make(map[string]bool)
		}
		e.dirtyWishlist[userID][productID] = true
		e.mu.Unlock()
	}
}
