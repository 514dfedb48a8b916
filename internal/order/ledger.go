// Package order keeps the append-mostly history of placed orders for one
// identity. Orders are immutable snapshots; later cart mutations never reach
// them, and only Status may change after creation.
package order

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"shopcore/internal/metrics"
	"shopcore/internal/model"
	"shopcore/internal/persist"
	"shopcore/internal/pricing"
)

const idLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Ledger stores orders newest-first per identity.
type Ledger struct {
	adapter  *persist.Adapter
	metrics  *metrics.Registry
	identity string

	orders []model.Order

	// now and randInt are split out for deterministic tests.
	now     func() time.Time
	randInt func(n int) int
}

func NewLedger(adapter *persist.Adapter, m *metrics.Registry, identity string) *Ledger {
	if identity == "" {
		identity = model.Anonymous
	}
	return &Ledger{
		adapter:  adapter,
		metrics:  m,
		identity: identity,
		now:      time.Now,
		randInt:  rand.Intn,
	}
}

// Load reads the persisted history. Missing or corrupt records fall back to
// an empty ledger.
func (l *Ledger) Load() {
	var orders []model.Order
	if l.adapter.ReadJSON(persist.OrdersKey(l.identity), &orders) {
		l.orders = orders
	} else {
		l.orders = nil
	}
}

// PlaceOrder validates the cart snapshot and shipping details, then prepends
// a new immutable order to the history. The caller is expected to clear the
// cart afterwards; the ledger never touches cart state.
func (l *Ledger) PlaceOrder(items []model.CartItem, shipping model.Address) (model.Order, error) {
	var errs model.ValidationErrors
	if len(items) == 0 {
		errs = append(errs, model.ValidationError{Field: "cart", Message: "cart is empty"})
	}
	if strings.TrimSpace(shipping.Address) == "" {
		errs = append(errs, model.ValidationError{Field: "address", Message: "address is required"})
	}
	if strings.TrimSpace(shipping.City) == "" {
		errs = append(errs, model.ValidationError{Field: "city", Message: "city is required"})
	}
	if strings.TrimSpace(shipping.Zip) == "" {
		errs = append(errs, model.ValidationError{Field: "zip", Message: "zip is required"})
	}
	if len(errs) > 0 {
		return model.Order{}, errs
	}

	ord := model.Order{
		ID:       l.newID(),
		Date:     l.now().Format("2006-01-02"),
		Total:    pricing.OrderTotal(items),
		Status:   model.StatusProcessing,
		Items:    model.CopyItems(items),
		Shipping: shipping,
	}

	next := append([]model.Order{ord}, l.orders...)
	if err := l.adapter.WriteJSON(persist.OrdersKey(l.identity), next); err != nil {
		l.metrics.IncPersistFailure()
		return model.Order{}, err
	}
	l.orders = next
	l.metrics.IncOrderPlaced()
	return ord, nil
}

// Orders returns the history newest-first. Insertion order is the storage
// order; no sort happens on read.
func (l *Ledger) Orders() []model.Order {
	out := make([]model.Order, len(l.orders))
	copy(out, l.orders)
	return out
}

// Find filters orders by case-insensitive substring match on the id. An
// empty query returns the full list.
func (l *Ledger) Find(query string) []model.Order {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return l.Orders()
	}
	var out []model.Order
	for _, o := range l.orders {
		if strings.Contains(strings.ToLower(o.ID), q) {
			out = append(out, o)
		}
	}
	return out
}

// SetStatus applies an externally driven fulfillment transition.
func (l *Ledger) SetStatus(id string, status model.OrderStatus) error {
	idx := -1
	for i, o := range l.orders {
		if o.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("order %s: %w", id, model.ErrNotFound)
	}
	next := make([]model.Order, len(l.orders))
	copy(next, l.orders)
	next[idx].Status = status
	if err := l.adapter.WriteJSON(persist.OrdersKey(l.identity), next); err != nil {
		l.metrics.IncPersistFailure()
		return err
	}
	l.orders = next
	return nil
}

// newID produces the cosmetic ORD-####-XYZ id. The 4-digit block is random
// and collisions are not checked; the id is a display handle, not a key.
func (l *Ledger) newID() string {
	digits := l.randInt(9000) + 1000
	suffix := make([]byte, 3)
	for i := range suffix {
		suffix[i] = idLetters[l.randInt(len(idLetters))]
	}
	return fmt.Sprintf("ORD-%d-%s", digits, suffix)
}
