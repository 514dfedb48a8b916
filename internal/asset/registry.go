// Package asset maps product titles to display image handles. Handles are
// opaque to the engine and not durable; only the title survives a round trip
// through the store, so every collection read re-resolves through a Registry.
package asset

// Registry is supplied by the surrounding application.
type Registry interface {
	// Resolve returns the image handle registered for a product title.
	Resolve(title string) (string, bool)
}

// StaticRegistry is a map-backed Registry for the app shell and tests.
type StaticRegistry map[string]string

func (r StaticRegistry) Resolve(title string) (string, bool) {
	h, ok := r[title]
	return h, ok
}

// Rehydrate returns the registered handle for title, falling back to the
// previously stored raw value (filename or data-URI) when the registry has
// no entry.
func Rehydrate(reg Registry, title, stored string) string {
	if reg == nil {
		return stored
	}
	if h, ok := reg.Resolve(title); ok {
		return h
	}
	return stored
}
