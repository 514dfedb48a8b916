package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"

	"shopcore/internal/account"
	"shopcore/internal/asset"
	"shopcore/internal/audit"
	"shopcore/internal/cart"
	"shopcore/internal/catalog"
	"shopcore/internal/kv"
	"shopcore/internal/metrics"
	"shopcore/internal/model"
	"shopcore/internal/order"
	"shopcore/internal/persist"
	"shopcore/internal/profile"
)

func main() {
	var (
		backend  string
		dataDir  string
		identity string
		httpAddr string
		auditDir string
	)
	flag.StringVar(&backend, "backend", "pebble", "kv backend: memory|pebble|badger")
	flag.StringVar(&dataDir, "data-dir", "./data", "directory for durable backends")
	flag.StringVar(&identity, "identity", model.Anonymous, "identity scope (email or anonymous)")
	flag.StringVar(&httpAddr, "http", "", "listen address for /metrics (empty = off)")
	flag.StringVar(&auditDir, "audit-dir", "", "directory for the audit trail (empty = off)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	store, err := openStore(backend, dataDir)
	if err != nil {
		slog.Error("open store", "backend", backend, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	mreg := metrics.NewRegistry()
	if httpAddr != "" {
		go func() {
			http.Handle("/metrics", mreg.Handler())
			_ = http.ListenAndServe(httpAddr, nil)
		}()
	}

	var trail audit.Writer
	if auditDir != "" {
		trail, err = audit.NewFileWriter(auditDir, "storefront.jsonl")
		if err != nil {
			slog.Error("open audit trail", "error", err)
			os.Exit(1)
		}
	}

	adapter := persist.NewAdapter(store)
	registry := demoRegistry()

	cat := catalog.NewStore(adapter, registry, mreg)
	cat.Load()
	eng := cart.NewEngine(adapter, registry, mreg, identity)
	eng.Load()
	ledger := order.NewLedger(adapter, mreg, identity)
	ledger.Load()
	prof := profile.NewStore(adapter, mreg, identity)
	accounts := account.NewStore(adapter)
	accounts.Load()

	slog.Info("catalog loaded", "products", len(cat.Products()), "categories", cat.Categories())

	// Scripted demo session: browse, fill the cart, wishlist, checkout.
	products := cat.Products()
	if len(products) < 2 {
		slog.Error("catalog too small for demo session")
		os.Exit(1)
	}
	mustMutate := func(op string, subject string, err error) {
		if err != nil {
			slog.Error(op, "error", err)
			os.Exit(1)
		}
		record(trail, op, identity, subject)
	}

	mustMutate("add_to_cart", products[0].Title, eng.AddToCart(products[0]))
	mustMutate("add_to_cart", products[0].Title, eng.AddToCart(products[0]))
	mustMutate("add_to_cart", products[1].Title, eng.AddToCart(products[1]))
	member, err := eng.ToggleWishlist(products[1])
	mustMutate("toggle_wishlist", products[1].Title, err)
	slog.Info("wishlist toggled", "title", products[1].Title, "member", member)
	slog.Info("cart", "lines", len(eng.Items()), "subtotal", eng.Subtotal())

	addr := prof.Load()
	if addr.Address == "" {
		addr = model.Address{
			Email:     identity,
			FirstName: "Demo",
			LastName:  "Shopper",
			Address:   "1 Market St",
			City:      "Springfield",
			Zip:       "12345",
		}
		mustMutate("save_address", addr.City, prof.Save(addr))
	}

	ord, err := ledger.PlaceOrder(eng.Items(), addr)
	mustMutate("place_order", ord.ID, err)
	mustMutate("clear_cart", "", eng.ClearCart())
	slog.Info("order placed", "id", ord.ID, "total", ord.Total, "items", len(ord.Items))

	for _, o := range ledger.Orders() {
		slog.Info("order history", "id", o.ID, "date", o.Date, "status", o.Status, "total", o.Total)
	}
}

func openStore(backend, dataDir string) (kv.Store, error) {
	switch backend {
	case "memory":
		return kv.NewMemoryStore(), nil
	case "badger":
		return kv.NewBadgerStore(dataDir)
	default:
		return kv.NewPebbleStore(dataDir)
	}
}

func record(trail audit.Writer, op, identity, subject string) {
	if trail == nil {
		return
	}
	if err := trail.Append(audit.Event{Op: op, Identity: identity, Subject: subject}); err != nil {
		slog.Warn("audit append failed", "op", op, "error", err)
	}
}

// demoRegistry stands in for the asset registry the surrounding app would
// supply; titles not present here fall back to the stored filename.
func demoRegistry() asset.Registry {
	return asset.StaticRegistry{
		"Aurora Wireless Headphones": "assets/aurora-headphones.webp",
		"Trailstep Running Shoes":    "assets/trailstep-shoes.webp",
		"Ember Pour-Over Kettle":     "assets/ember-kettle.webp",
	}
}
