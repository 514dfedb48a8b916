// Package profile owns the single shipping-address record per identity.
package profile

import (
	"shopcore/internal/metrics"
	"shopcore/internal/model"
	"shopcore/internal/persist"
)

type Store struct {
	adapter  *persist.Adapter
	metrics  *metrics.Registry
	identity string
}

func NewStore(adapter *persist.Adapter, m *metrics.Registry, identity string) *Store {
	if identity == "" {
		identity = model.Anonymous
	}
	return &Store{adapter: adapter, metrics: m, identity: identity}
}

// Save overwrites the stored address wholesale. There is no partial merge.
func (s *Store) Save(addr model.Address) error {
	if err := s.adapter.WriteJSON(persist.AddressKey(s.identity), addr); err != nil {
		s.metrics.IncPersistFailure()
		return err
	}
	return nil
}

// Load returns the stored address, or a default record with Email prefilled
// from the identity when nothing (or garbage) is stored.
func (s *Store) Load() model.Address {
	var addr model.Address
	if s.adapter.ReadJSON(persist.AddressKey(s.identity), &addr) {
		return addr
	}
	return model.Address{Email: s.identity}
}
