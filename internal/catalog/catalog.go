// Package catalog owns the seller-editable product list. The list is held in
// memory, seeded from the static dataset on first load, and persisted
// wholesale under the seller inventory key after every mutation.
package catalog

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"shopcore/internal/asset"
	"shopcore/internal/metrics"
	"shopcore/internal/model"
	"shopcore/internal/persist"
	"shopcore/internal/pricing"
)

// Input carries the seller-form fields for Create.
type Input struct {
	Title         string
	Brand         string
	Category      string
	Image         string
	Price         decimal.Decimal
	OriginalPrice *decimal.Decimal
	Stock         int
	Rating        decimal.Decimal
	Description   string
}

// Patch is a partial update; nil fields keep their current value.
type Patch struct {
	Title         *string
	Brand         *string
	Category      *string
	Image         *string
	Price         *decimal.Decimal
	OriginalPrice **decimal.Decimal
	Stock         *int
	Rating        *decimal.Decimal
	Description   *string
}

// Store is the product catalog. Not safe for concurrent use; callers run on
// a single cooperative event loop.
type Store struct {
	adapter  *persist.Adapter
	registry asset.Registry
	metrics  *metrics.Registry

	products []model.Product
	lastID   int64
}

func NewStore(adapter *persist.Adapter, registry asset.Registry, m *metrics.Registry) *Store {
	return &Store{adapter: adapter, registry: registry, metrics: m}
}

// Load reads the persisted seller inventory, seeding from the static dataset
// when nothing has been stored yet. Image handles are re-resolved through
// the asset registry on every call; the stored raw value is only a fallback.
func (s *Store) Load() {
	var stored []model.Product
	if s.adapter.ReadJSON(persist.CatalogKey, &stored) {
		s.products = stored
	} else {
		s.products = seedProducts()
	}
	for i := range s.products {
		p := &s.products[i]
		p.DiscountPercent = pricing.DiscountPercent(p.Price, p.OriginalPrice)
		if s.registry != nil {
			if _, ok := s.registry.Resolve(p.Title); !ok {
				s.metrics.IncRehydrateFallback()
			}
		}
		p.Image = asset.Rehydrate(s.registry, p.Title, p.Image)
		if p.ID > s.lastID {
			s.lastID = p.ID
		}
	}
}

// Products returns a copy of the current list, newest first.
func (s *Store) Products() []model.Product {
	out := make([]model.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Get returns the product with the given id.
func (s *Store) Get(id int64) (model.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Product{}, fmt.Errorf("product %d: %w", id, model.ErrNotFound)
}

// Create validates the input, assigns a fresh id and prepends the product.
func (s *Store) Create(in Input) (model.Product, error) {
	var errs model.ValidationErrors
	if in.Title == "" {
		errs = append(errs, model.ValidationError{Field: "title", Message: "title is required"})
	}
	if !in.Price.GreaterThan(decimal.Zero) {
		errs = append(errs, model.ValidationError{Field: "price", Message: "price must be greater than 0"})
	}
	if in.Stock < 0 {
		errs = append(errs, model.ValidationError{Field: "stock", Message: "stock cannot be negative"})
	}
	if len(errs) > 0 {
		return model.Product{}, errs
	}

	p := model.Product{
		ID:            s.nextID(),
		Title:         in.Title,
		Brand:         in.Brand,
		Category:      in.Category,
		Image:         asset.Rehydrate(s.registry, in.Title, in.Image),
		Price:         in.Price,
		OriginalPrice: in.OriginalPrice,
		Stock:         in.Stock,
		Rating:        in.Rating,
		Description:   in.Description,
	}
	p.DiscountPercent = pricing.DiscountPercent(p.Price, p.OriginalPrice)

	next := append([]model.Product{p}, s.products...)
	if err := s.persistList(next); err != nil {
		return model.Product{}, err
	}
	s.products = next
	s.metrics.IncCatalogWrite()
	return p, nil
}

// Update merges non-nil patch fields into the product with the given id and
// recomputes its discount. Absent ids are an error, unlike Delete.
func (s *Store) Update(id int64, patch Patch) (model.Product, error) {
	idx := -1
	for i, p := range s.products {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.Product{}, fmt.Errorf("product %d: %w", id, model.ErrNotFound)
	}

	p := s.products[idx]
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Brand != nil {
		p.Brand = *patch.Brand
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.OriginalPrice != nil {
		p.OriginalPrice = *patch.OriginalPrice
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.Rating != nil {
		p.Rating = *patch.Rating
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if p.Title == "" {
		return model.Product{}, model.ValidationErrors{{Field: "title", Message: "title is required"}}
	}
	if !p.Price.GreaterThan(decimal.Zero) {
		return model.Product{}, model.ValidationErrors{{Field: "price", Message: "price must be greater than 0"}}
	}
	p.DiscountPercent = pricing.DiscountPercent(p.Price, p.OriginalPrice)

	next := make([]model.Product, len(s.products))
	copy(next, s.products)
	next[idx] = p
	if err := s.persistList(next); err != nil {
		return model.Product{}, err
	}
	s.products = next
	s.metrics.IncCatalogWrite()
	return p, nil
}

// Delete removes the product with the given id. Deleting an absent id is a
// no-op, not an error.
func (s *Store) Delete(id int64) error {
	next := make([]model.Product, 0, len(s.products))
	for _, p := range s.products {
		if p.ID != id {
			next = append(next, p)
		}
	}
	if len(next) == len(s.products) {
		return nil
	}
	if err := s.persistList(next); err != nil {
		return err
	}
	s.products = next
	s.metrics.IncCatalogWrite()
	return nil
}

// Categories returns the distinct category values in first-seen order,
// recomputed from the current list on every call.
func (s *Store) Categories() []string {
	seen := make(map[string]struct{}, len(s.products))
	var out []string
	for _, p := range s.products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

func (s *Store) persistList(list []model.Product) error {
	if err := s.adapter.WriteJSON(persist.CatalogKey, list); err != nil {
		s.metrics.IncPersistFailure()
		return err
	}
	return nil
}

// nextID hands out unix-milli ids, bumped past the largest id seen so they
// stay distinct even when two creates land in the same millisecond or the
// clock steps backwards.
func (s *Store) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}
