package product

import "time"

// Product is the read-only catalog projection this core consumes. Prices are
// integer minor units; stock is a decrementing counter owned by checkout.
type Product struct {
	ID              string
	Name            string
	Price           int64
	DiscountPercent int
	Stock           int
	Category        string
	Images          []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (p *Product) InStock() bool {
	return p.Stock > 0
}
