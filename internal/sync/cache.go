package sync

import stdsync "sync"

// LocalCache holds the anonymous-session cart and wishlist in process until
// the user authenticates. It is safe for concurrent use.
type LocalCache struct {
	mu       stdsync.Mutex
	cart     []Line
	wishlist []string
}

func NewLocalCache() *LocalCache {
	return &LocalCache{}
}

func (c *LocalCache) Cart() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Line, len(c.cart))
	copy(out, c.cart)
	return out
}

func (c *LocalCache) SetCart(lines []Line) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cart = make([]Line, len(lines))
	copy(c.cart, lines)
}

// PutCartLine sets a quantity in the cached cart, appending when the product
// is not yet present.
func (c *LocalCache) PutCartLine(productID string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.cart {
		if c.cart[i].ProductID == productID {
			c.cart[i].Quantity = quantity
			return
		}
	}
	c.cart = append(c.cart, Line{ProductID: productID, Quantity: quantity})
}

func (c *LocalCache) RemoveCartLine(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.cart {
		if c.cart[i].ProductID == productID {
			c.cart = append(c.cart[:i], c.cart[i+1:]...)
			return
		}
	}
}

func (c *LocalCache) Wishlist() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.wishlist))
	copy(out, c.wishlist)
	return out
}

func (c *LocalCache) SetWishlist(ids []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.wishlist = make([]string, len(ids))
	copy(c.wishlist, ids)
}
