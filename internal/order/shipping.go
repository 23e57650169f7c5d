package order

const (
	ShippingStandard = "standard"
	ShippingExpress  = "express"
	ShippingFree     = "free"
)

// Fixed per-method shipping charges in minor units.
var shippingCosts = map[string]int64{
	ShippingStandard: 500,
	ShippingExpress:  1500,
	ShippingFree:     0,
}

// ShippingCost resolves the charge for a method. Unrecognized methods fall
// open to the standard cost rather than failing.
func ShippingCost(method string) int64 {
	if cost, ok := shippingCosts[method]; ok {
		return cost
	}
	return shippingCosts[ShippingStandard]
}
