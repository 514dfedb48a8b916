// Package persist provides typed JSON read/write/remove over the key-value
// store and owns the key-naming scheme. Malformed stored JSON is treated as
// absent so corruption can never crash a caller; a failed write leaves the
// previously stored value intact.
package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"shopcore/internal/kv"
	"shopcore/internal/model"
)

type FailureReason string

const (
	ReasonQuota         FailureReason = "quota_exceeded"
	ReasonSerialization FailureReason = "serialization"
	ReasonBackend       FailureReason = "backend"
)

// Failure wraps a write that could not be applied. In-memory state of the
// calling engine must be left unchanged so the UI can retry.
type Failure struct {
	Reason FailureReason
	Err    error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("persist failure (%s): %v", f.Reason, f.Err)
}

func (f *Failure) Unwrap() error { return f.Err }

// Adapter is the single choke point between the engines and the store.
type Adapter struct {
	store kv.Store
}

func NewAdapter(store kv.Store) *Adapter {
	return &Adapter{store: store}
}

// ReadJSON unmarshals the value at key into v. Absent keys and malformed
// JSON both report false with v untouched; callers fall back to defaults.
func (a *Adapter) ReadJSON(key string, v any) bool {
	raw, ok, err := a.store.Get(key)
	if err != nil {
		slog.Warn("persist: read failed, treating as absent", "key", key, "error", err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		slog.Warn("persist: malformed stored data, treating as absent", "key", key, "error", err)
		return false
	}
	return true
}

// WriteJSON marshals v and stores it under key. The write is all-or-nothing
// from the caller's point of view.
func (a *Adapter) WriteJSON(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return &Failure{Reason: ReasonSerialization, Err: err}
	}
	if err := a.store.Set(key, string(raw)); err != nil {
		reason := ReasonBackend
		if errors.Is(err, kv.ErrQuotaExceeded) {
			reason = ReasonQuota
		}
		return &Failure{Reason: reason, Err: err}
	}
	return nil
}

func (a *Adapter) Remove(key string) error {
	if err := a.store.Delete(key); err != nil {
		return &Failure{Reason: ReasonBackend, Err: err}
	}
	return nil
}

// Key scheme. Cart and wishlist keys are bare for the shared anonymous scope
// and identity-suffixed for signed-in users; orders and address are always
// per-identity; the seller inventory and credential records are global.

func scoped(domain, identity string) string {
	if identity == "" || identity == model.Anonymous {
		return domain
	}
	return domain + "_" + identity
}

func CartKey(identity string) string     { return scoped("cart_items", identity) }
func WishlistKey(identity string) string { return scoped("wishlist_items", identity) }
func OrdersKey(identity string) string   { return "orders_" + identity }
func AddressKey(identity string) string  { return "address_" + identity }

const (
	CatalogKey = "seller_inventory"
	UsersKey   = "users"
)
