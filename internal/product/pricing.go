package product

// DiscountedUnitPrice applies discountPercent to a minor-unit price, rounding
// half up. Rounding happens per unit price before any quantity multiplication.
func DiscountedUnitPrice(price int64, discountPercent int) int64 {
	if discountPercent <= 0 {
		return price
	}
	if discountPercent >= 100 {
		return 0
	}
	return (price*int64(100-discountPercent) + 50) / 100
}

// LineTotal is the rounded discounted unit price times the quantity. Order
// subtotals sum these line totals; the rounding order is load-bearing for
// numeric parity with stored orders.
func LineTotal(price int64, discountPercent, quantity int) int64 {
	return DiscountedUnitPrice(price, discountPercent) * int64(quantity)
}
