package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry collects engine-level counters. Every engine accepts a nil
// *Registry; the Inc helpers make nil a no-op so tests can skip metrics.
type Registry struct {
	reg *prometheus.Registry

	CartMutations      prometheus.Counter
	WishlistToggles    prometheus.Counter
	CatalogWrites      prometheus.Counter
	OrdersPlaced       prometheus.Counter
	PersistFailures    prometheus.Counter
	RehydrateFallbacks prometheus.Counter
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	cartMut := prometheus.NewCounter(prometheus.CounterOpts{Name: "shop_cart_mutations_total"})
	wishTog := prometheus.NewCounter(prometheus.CounterOpts{Name: "shop_wishlist_toggles_total"})
	catWrites := prometheus.NewCounter(prometheus.CounterOpts{Name: "shop_catalog_writes_total"})
	orders := prometheus.NewCounter(prometheus.CounterOpts{Name: "shop_orders_placed_total"})
	persistFail := prometheus.NewCounter(prometheus.CounterOpts{Name: "shop_persist_failures_total"})
	rehydrate := prometheus.NewCounter(prometheus.CounterOpts{Name: "shop_rehydrate_fallbacks_total"})

	r.MustRegister(cartMut, wishTog, catWrites, orders, persistFail, rehydrate)
	return &Registry{
		reg:                r,
		CartMutations:      cartMut,
		WishlistToggles:    wishTog,
		CatalogWrites:      catWrites,
		OrdersPlaced:       orders,
		PersistFailures:    persistFail,
		RehydrateFallbacks: rehydrate,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }

// IncCartMutation and friends tolerate a nil registry.

func (r *Registry) IncCartMutation() {
	if r != nil {
		r.CartMutations.Inc()
	}
}

func (r *Registry) IncWishlistToggle() {
	if r != nil {
		r.WishlistToggles.Inc()
	}
}

func (r *Registry) IncCatalogWrite() {
	if r != nil {
		r.CatalogWrites.Inc()
	}
}

func (r *Registry) IncOrderPlaced() {
	if r != nil {
		r.OrdersPlaced.Inc()
	}
}

func (r *Registry) IncPersistFailure() {
	if r != nil {
		r.PersistFailures.Inc()
	}
}

func (r *Registry) IncRehydrateFallback() {
	if r != nil {
		r.RehydrateFallbacks.Inc()
	}
}
