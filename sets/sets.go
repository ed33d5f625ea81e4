// Package sets defines the capability a unique-element container exposes to
// the copy engine, together with Hash, the canonical map-backed
// implementation used when a source container cannot be reconstructed.
package sets

// Set is an unordered container of unique elements. Enumeration order is
// unspecified and may differ between calls.
type Set interface {
	Size() int
	Values() []any
	Add(value any)
	Contains(value any) bool
}

// NewEmptier is implemented by sets able to produce a fresh empty instance
// sharing the same duplicate-detection strategy as the receiver.
type NewEmptier interface {
	NewEmpty() Set
}

// Hash is the default Set implementation. Elements must be comparable; two
// elements are duplicates when they compare equal with ==.
type Hash struct {
	values map[any]struct{}
}

// NewHash returns a Hash holding the given values, duplicates collapsed.
func NewHash(values ...any) *Hash {
	h := &Hash{values: make(map[any]struct{}, len(values))}
	for _, v := range values {
		h.values[v] = struct{}{}
	}

	return h
}

func (h *Hash) Size() int { return len(h.values) }

func (h *Hash) Add(value any) {
	if h.values == nil {
		h.values = make(map[any]struct{})
	}

	h.values[value] = struct{}{}
}

func (h *Hash) Contains(value any) bool {
	_, ok := h.values[value]
	return ok
}

func (h *Hash) Values() []any {
	out := make([]any, 0, len(h.values))
	for v := range h.values {
		out = append(out, v)
	}

	return out
}

// NewEmpty returns a fresh empty Hash.
func (h *Hash) NewEmpty() Set { return NewHash() }
