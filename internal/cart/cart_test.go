package cart

import (
	"testing"

	"github.com/shopspring/decimal"

	"shopcore/internal/asset"
	"shopcore/internal/kv"
	"shopcore/internal/model"
	"shopcore/internal/persist"
)

func product(id int64, title string, price string) model.Product {
	return model.Product{
		ID:    id,
		Title: title,
		Price: decimal.RequireFromString(price),
	}
}

func newTestEngine() (*Engine, *persist.Adapter) {
	a := persist.NewAdapter(kv.NewMemoryStore())
	e := NewEngine(a, nil, nil, model.Anonymous)
	e.Load()
	return e, a
}

func TestAddToCart_SameProductTwiceIncrementsQuantity(t *testing.T) {
	e, _ := newTestEngine()
	p := product(1, "Headphones", "80")

	if err := e.AddToCart(p); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := e.AddToCart(p); err != nil {
		t.Fatalf("add again: %v", err)
	}

	items := e.Items()
	if len(items) != 1 {
		t.Fatalf("expected one line, got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", items[0].Quantity)
	}
}

func TestAddToCart_PreservesInsertionOrder(t *testing.T) {
	e, _ := newTestEngine()

	_ = e.AddToCart(product(2, "B", "5"))
	_ = e.AddToCart(product(1, "A", "10"))
	_ = e.AddToCart(product(2, "B", "5"))

	items := e.Items()
	if len(items) != 2 || items[0].ID != 2 || items[1].ID != 1 {
		t.Fatalf("insertion order not preserved: %+v", items)
	}
}

func TestDecreaseQuantity(t *testing.T) {
	e, _ := newTestEngine()
	p := product(1, "Headphones", "80")
	_ = e.AddToCart(p)
	_ = e.AddToCart(p)

	if err := e.DecreaseQuantity(1); err != nil {
		t.Fatalf("decrease: %v", err)
	}
	if got := e.Items()[0].Quantity; got != 1 {
		t.Fatalf("expected quantity 1, got %d", got)
	}

	// Quantity 1 -> removal.
	if err := e.DecreaseQuantity(1); err != nil {
		t.Fatalf("decrease to zero: %v", err)
	}
	if len(e.Items()) != 0 {
		t.Fatalf("item should be removed at quantity 0")
	}

	// Unknown id is a no-op.
	if err := e.DecreaseQuantity(42); err != nil {
		t.Fatalf("no-op decrease errored: %v", err)
	}
}

func TestRemoveFromCart_IgnoresQuantity(t *testing.T) {
	e, _ := newTestEngine()
	p := product(1, "Headphones", "80")
	_ = e.AddToCart(p)
	_ = e.AddToCart(p)
	_ = e.AddToCart(product(2, "Kettle", "40"))

	if err := e.RemoveFromCart(1); err != nil {
		t.Fatalf("remove: %v", err)
	}
	items := e.Items()
	if len(items) != 1 || items[0].ID != 2 {
		t.Fatalf("unexpected cart after remove: %+v", items)
	}
}

func TestClearCart_RemovesPersistedRecord(t *testing.T) {
	store := kv.NewMemoryStore()
	e := NewEngine(persist.NewAdapter(store), nil, nil, model.Anonymous)
	e.Load()
	_ = e.AddToCart(product(1, "Headphones", "80"))

	if _, ok, _ := store.Get("cart_items"); !ok {
		t.Fatalf("cart should be persisted before clear")
	}
	if err := e.ClearCart(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if len(e.Items()) != 0 {
		t.Fatalf("cart not emptied")
	}
	if _, ok, _ := store.Get("cart_items"); ok {
		t.Fatalf("persisted record should be removed")
	}
}

func TestCart_RoundTripWithRehydration(t *testing.T) {
	adapter := persist.NewAdapter(kv.NewMemoryStore())
	e := NewEngine(adapter, nil, nil, model.Anonymous)
	e.Load()
	p := product(1, "Headphones", "80")
	p.Image = "stored.jpg"
	_ = e.AddToCart(p)
	_ = e.AddToCart(p)
	_ = e.AddToCart(product(2, "Kettle", "39.95"))

	reg := asset.StaticRegistry{"Headphones": "handle-headphones"}
	e2 := NewEngine(adapter, reg, nil, model.Anonymous)
	e2.Load()

	items := e2.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 lines after reload, got %d", len(items))
	}
	if items[0].ID != 1 || items[0].Quantity != 2 || !items[0].Price.Equal(decimal.RequireFromString("80")) {
		t.Fatalf("line 0 did not round-trip: %+v", items[0])
	}
	if items[0].Image != "handle-headphones" {
		t.Fatalf("image not re-resolved: %q", items[0].Image)
	}
	if items[1].ID != 2 || items[1].Quantity != 1 {
		t.Fatalf("line 1 did not round-trip: %+v", items[1])
	}
}

func TestToggleWishlist_Involutive(t *testing.T) {
	e, _ := newTestEngine()
	p := product(1, "Headphones", "80")

	member, err := e.ToggleWishlist(p)
	if err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	if !member || !e.IsInWishlist(1) {
		t.Fatalf("product should be a member after first toggle")
	}

	member, err = e.ToggleWishlist(p)
	if err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	if member || e.IsInWishlist(1) {
		t.Fatalf("second toggle must restore original membership")
	}
	if len(e.Wishlist()) != 0 {
		t.Fatalf("wishlist not empty: %+v", e.Wishlist())
	}
}

func TestWishlist_AtMostOneEntryPerProduct(t *testing.T) {
	e, _ := newTestEngine()
	p := product(1, "Headphones", "80")

	_, _ = e.ToggleWishlist(p)
	_, _ = e.ToggleWishlist(product(2, "Kettle", "40"))
	if len(e.Wishlist()) != 2 {
		t.Fatalf("expected 2 wishlist entries, got %d", len(e.Wishlist()))
	}
}

func TestPersistFailure_LeavesMemoryStateUnchanged(t *testing.T) {
	// Quota fits the first line but not a second one.
	store := kv.NewBoundedMemoryStore(300)
	e := NewEngine(persist.NewAdapter(store), nil, nil, model.Anonymous)
	e.Load()

	big := product(1, "Headphones", "80")
	big.Description = "a reasonably sized description that still fits"
	if err := e.AddToCart(big); err != nil {
		t.Fatalf("first add should fit: %v", err)
	}

	huge := product(2, "Kettle", "40")
	for i := 0; i < 20; i++ {
		huge.Description += "far too much descriptive text to fit in the quota "
	}
	if err := e.AddToCart(huge); err == nil {
		t.Fatalf("expected quota failure")
	}
	items := e.Items()
	if len(items) != 1 || items[0].ID != 1 {
		t.Fatalf("failed write must leave in-memory cart unchanged: %+v", items)
	}
}

func TestIdentityScopedCartsAreDisjoint(t *testing.T) {
	adapter := persist.NewAdapter(kv.NewMemoryStore())

	anon := NewEngine(adapter, nil, nil, model.Anonymous)
	anon.Load()
	_ = anon.AddToCart(product(1, "Headphones", "80"))

	jane := NewEngine(adapter, nil, nil, "jane@example.com")
	jane.Load()
	if len(jane.Items()) != 0 {
		t.Fatalf("identity scopes must be disjoint: %+v", jane.Items())
	}
	_ = jane.AddToCart(product(2, "Kettle", "40"))

	anon2 := NewEngine(adapter, nil, nil, model.Anonymous)
	anon2.Load()
	if len(anon2.Items()) != 1 || anon2.Items()[0].ID != 1 {
		t.Fatalf("anonymous cart affected by other identity: %+v", anon2.Items())
	}
}
