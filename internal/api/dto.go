package api

import (
	"time"

	"belanja-be/internal/cart"
	"belanja-be/internal/order"
	"belanja-be/internal/wishlist"
)

type cartLineDTO struct {
	ItemID          string   `json:"itemId"`
	ProductID       string   `json:"productId"`
	Name            string   `json:"name"`
	Price           int64    `json:"price"`
	DiscountPercent int      `json:"discountPercent"`
	InStock         bool     `json:"inStock"`
	Images          []string `json:"images"`
	Quantity        int      `json:"quantity"`
}

type cartViewDTO struct {
	Items     []cartLineDTO `json:"items"`
	CartTotal int64         `json:"cartTotal"`
}

func toCartLineDTO(l cart.Line) cartLineDTO {
	return cartLineDTO{
		ItemID:          l.ItemID,
		ProductID:       l.ProductID,
		Name:            l.Name,
		Price:           l.Price,
		DiscountPercent: l.DiscountPercent,
		InStock:         l.InStock,
		Images:          l.Images,
		Quantity:        l.Quantity,
	}
}

func toCartViewDTO(v *cart.View) cartViewDTO {
	items := make([]cartLineDTO, 0, len(v.Items))
	for _, l := range v.Items {
		items = append(items, toCartLineDTO(l))
	}
	return cartViewDTO{Items: items, CartTotal: v.Total}
}

type wishlistLineDTO struct {
	ItemID          string   `json:"itemId"`
	ProductID       string   `json:"productId"`
	Name            string   `json:"name"`
	Price           int64    `json:"price"`
	DiscountPercent int      `json:"discountPercent"`
	InStock         bool     `json:"inStock"`
	Images          []string `json:"images"`
}

func toWishlistDTO(lines []wishlist.Line) []wishlistLineDTO {
	out := make([]wishlistLineDTO, 0, len(lines))
	for _, l := range lines {
		out = append(out, wishlistLineDTO{
			ItemID:          l.ItemID,
			ProductID:       l.ProductID,
			Name:            l.Name,
			Price:           l.Price,
			DiscountPercent: l.DiscountPercent,
			InStock:         l.InStock,
			Images:          l.Images,
		})
	}
	return out
}

type orderItemDTO struct {
	ProductID       string   `json:"productId"`
	Name            string   `json:"name"`
	UnitPrice       int64    `json:"unitPrice"`
	DiscountPercent int      `json:"discountPercent"`
	Quantity        int      `json:"quantity"`
	Images          []string `json:"images"`
	LineTotal       int64    `json:"lineTotal"`
}

type orderDTO struct {
	ID              string            `json:"id"`
	Number          string            `json:"number"`
	Items           []orderItemDTO    `json:"items"`
	Subtotal        int64             `json:"subtotal"`
	ShippingCost    int64             `json:"shippingCost"`
	Total           int64             `json:"total"`
	ShippingMethod  string            `json:"shippingMethod"`
	ShippingAddress order.Address     `json:"shippingAddress"`
	PaymentDetails  paymentDetailsDTO `json:"paymentDetails"`
	Status          string            `json:"status"`
	CreatedAt       time.Time         `json:"createdAt"`
}

type paymentDetailsDTO struct {
	Method    string `json:"method"`
	CardLast4 string `json:"cardLast4,omitempty"`
	ExpMonth  int    `json:"expMonth,omitempty"`
	ExpYear   int    `json:"expYear,omitempty"`
	Holder    string `json:"holder,omitempty"`
}

type createOrderResponse struct {
	Order        orderDTO `json:"order"`
	ClientSecret string   `json:"clientSecret,omitempty"`
}

func toOrderDTO(o *order.Order) orderDTO {
	items := make([]orderItemDTO, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemDTO{
			ProductID:       it.ProductID,
			Name:            it.Name,
			UnitPrice:       it.UnitPrice,
			DiscountPercent: it.DiscountPercent,
			Quantity:        it.Quantity,
			Images:          it.Images,
			LineTotal:       it.LineTotal,
		})
	}
	return orderDTO{
		ID:              o.ID,
		Number:          o.Number,
		Items:           items,
		Subtotal:        o.Subtotal,
		ShippingCost:    o.ShippingCost,
		Total:           o.Total,
		ShippingMethod:  o.ShippingMethod,
		ShippingAddress: o.ShippingAddress,
		PaymentDetails: paymentDetailsDTO{
			Method:    o.PaymentDetails.Method,
			CardLast4: o.PaymentDetails.CardLast4,
			ExpMonth:  o.PaymentDetails.ExpMonth,
			ExpYear:   o.PaymentDetails.ExpYear,
			Holder:    o.PaymentDetails.Holder,
		},
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt,
	}
}

func toOrderDTOs(orders []*order.Order) []orderDTO {
	out := make([]orderDTO, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderDTO(o))
	}
	return out
}
