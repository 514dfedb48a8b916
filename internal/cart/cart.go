// Package cart owns the cart and wishlist line items for one identity scope.
// Every mutation re-serializes the whole collection; a persistence failure
// leaves the in-memory state unchanged so the caller can retry.
package cart

import (
	"github.com/shopspring/decimal"

	"shopcore/internal/asset"
	"shopcore/internal/metrics"
	"shopcore/internal/model"
	"shopcore/internal/persist"
	"shopcore/internal/pricing"
)

// Engine drives the per-line-item state machine:
// Absent -> Present(qty=1) -> Present(qty=n) -> Absent. Quantities are never
// negative and never observable at zero.
type Engine struct {
	adapter  *persist.Adapter
	registry asset.Registry
	metrics  *metrics.Registry
	identity string

	items    []model.CartItem
	wishlist []model.WishlistItem
}

func NewEngine(adapter *persist.Adapter, registry asset.Registry, m *metrics.Registry, identity string) *Engine {
	if identity == "" {
		identity = model.Anonymous
	}
	return &Engine{adapter: adapter, registry: registry, metrics: m, identity: identity}
}

// Load rehydrates the cart and wishlist from the store. Missing or corrupt
// records fall back to empty collections; image handles are re-resolved on
// every load.
func (e *Engine) Load() {
	var items []model.CartItem
	if e.adapter.ReadJSON(persist.CartKey(e.identity), &items) {
		e.items = items
	} else {
		e.items = nil
	}
	for i := range e.items {
		e.items[i].Image = asset.Rehydrate(e.registry, e.items[i].Title, e.items[i].Image)
	}

	var wish []model.WishlistItem
	if e.adapter.ReadJSON(persist.WishlistKey(e.identity), &wish) {
		e.wishlist = wish
	} else {
		e.wishlist = nil
	}
	for i := range e.wishlist {
		e.wishlist[i].Image = asset.Rehydrate(e.registry, e.wishlist[i].Title, e.wishlist[i].Image)
	}
}

// Items returns a deep copy of the current cart lines in insertion order.
func (e *Engine) Items() []model.CartItem {
	return model.CopyItems(e.items)
}

func (e *Engine) Wishlist() []model.WishlistItem {
	out := make([]model.WishlistItem, len(e.wishlist))
	copy(out, e.wishlist)
	return out
}

// Subtotal is the pricing passthrough used by summary views.
func (e *Engine) Subtotal() decimal.Decimal {
	return pricing.CartTotal(e.items)
}

// AddToCart increments the quantity of an existing line or appends a new one
// with quantity 1. Insertion order is preserved, never re-sorted.
func (e *Engine) AddToCart(p model.Product) error {
	next := model.CopyItems(e.items)
	found := false
	for i := range next {
		if next[i].ID == p.ID {
			next[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		next = append(next, model.CartItem{Product: p, Quantity: 1})
	}
	return e.commitCart(next)
}

// DecreaseQuantity decrements a line by 1, removing it when the quantity
// reaches 0. Unknown ids are a no-op.
func (e *Engine) DecreaseQuantity(id int64) error {
	next := model.CopyItems(e.items)
	for i := range next {
		if next[i].ID != id {
			continue
		}
		next[i].Quantity--
		if next[i].Quantity <= 0 {
			next = append(next[:i], next[i+1:]...)
		}
		return e.commitCart(next)
	}
	return nil
}

// RemoveFromCart drops the line regardless of quantity.
func (e *Engine) RemoveFromCart(id int64) error {
	next := make([]model.CartItem, 0, len(e.items))
	for _, it := range e.items {
		if it.ID != id {
			next = append(next, it)
		}
	}
	if len(next) == len(e.items) {
		return nil
	}
	return e.commitCart(next)
}

// ClearCart empties the cart and removes the persisted record entirely.
func (e *Engine) ClearCart() error {
	if err := e.adapter.Remove(persist.CartKey(e.identity)); err != nil {
		e.metrics.IncPersistFailure()
		return err
	}
	e.items = nil
	e.metrics.IncCartMutation()
	return nil
}

// ToggleWishlist adds the product when absent and removes it when present.
// The returned boolean is the new membership state.
func (e *Engine) ToggleWishlist(p model.Product) (bool, error) {
	next := make([]model.WishlistItem, 0, len(e.wishlist)+1)
	removed := false
	for _, w := range e.wishlist {
		if w.ID == p.ID {
			removed = true
			continue
		}
		next = append(next, w)
	}
	member := false
	if !removed {
		next = append(next, model.WishlistItem{Product: p})
		member = true
	}
	if err := e.adapter.WriteJSON(persist.WishlistKey(e.identity), next); err != nil {
		e.metrics.IncPersistFailure()
		return !member, err
	}
	e.wishlist = next
	e.metrics.IncWishlistToggle()
	return member, nil
}

// IsInWishlist reports current membership without touching the store.
func (e *Engine) IsInWishlist(id int64) bool {
	for _, w := range e.wishlist {
		if w.ID == id {
			return true
		}
	}
	return false
}

func (e *Engine) commitCart(next []model.CartItem) error {
	if err := e.adapter.WriteJSON(persist.CartKey(e.identity), next); err != nil {
		e.metrics.IncPersistFailure()
		return err
	}
	e.items = next
	e.metrics.IncCartMutation()
	return nil
}
