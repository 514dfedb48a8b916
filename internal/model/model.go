package model

import (
	"github.com/shopspring/decimal"
)

// Anonymous is the identity sentinel for unauthenticated sessions. All
// anonymous sessions share one cart/wishlist scope.
const Anonymous = "anonymous"

// Product is a sellable catalog record. Image is an opaque display handle
// (filename or data-URI); it is re-resolved through the asset registry on
// every load because handles are not durable, only titles are.
type Product struct {
	ID              int64            `json:"id"`
	Title           string           `json:"title"`
	Brand           string           `json:"brand"`
	Category        string           `json:"category"`
	Image           string           `json:"image"`
	Price           decimal.Decimal  `json:"price"`
	OriginalPrice   *decimal.Decimal `json:"originalPrice,omitempty"`
	DiscountPercent decimal.Decimal  `json:"discountPercent"`
	Stock           int              `json:"stock"`
	Rating          decimal.Decimal  `json:"rating"`
	Description     string           `json:"description"`
}

// CartItem is a product line in a cart. Quantity is always >= 1; driving it
// to 0 removes the item.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// WishlistItem is a product reference without quantity.
type WishlistItem struct {
	Product
}

type OrderStatus string

const (
	StatusProcessing OrderStatus = "Processing"
	StatusShipped    OrderStatus = "Shipped"
	StatusDelivered  OrderStatus = "Delivered"
	StatusCancelled  OrderStatus = "Cancelled"
)

// Order is an immutable checkout snapshot. Items are deep copies of the cart
// at placement time; only Status may change afterwards, driven by external
// fulfillment events.
type Order struct {
	ID       string          `json:"id"`
	Date     string          `json:"date"`
	Total    decimal.Decimal `json:"total"`
	Status   OrderStatus     `json:"status"`
	Items    []CartItem      `json:"items"`
	Shipping Address         `json:"shippingDetails"`
}

// Address is the shipping record for one identity. Saved wholesale; there is
// no partial merge.
type Address struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Zip       string `json:"zip"`
}

// User is a registered credential record. Passwords are stored and compared
// in plaintext; hardening is out of scope for this engine.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CopyItems deep-copies a cart item slice so order history never aliases the
// live cart.
func CopyItems(items []CartItem) []CartItem {
	out := make([]CartItem, len(items))
	for i, it := range items {
		out[i] = it
		if it.OriginalPrice != nil {
			op := *it.OriginalPrice
			out[i].OriginalPrice = &op
		}
	}
	return out
}
