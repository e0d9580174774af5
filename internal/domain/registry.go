package domain

import (
	"fmt"
	"slices"

	m "weppcloud.dev/pkg/wepprunner/internal/model"
)

// IdentifierRegistry tracks the wepp ids known to a project in registration
// order. It is not safe for concurrent use.
type IdentifierRegistry struct {
	order []m.WeppID
	seen  map[m.WeppID]struct{}
}

// NewIdentifierRegistry returns an empty registry.
func NewIdentifierRegistry() *IdentifierRegistry {
	return &IdentifierRegistry{seen: map[m.WeppID]struct{}{}}
}

// Register adds id, failing with ErrDuplicateID when it is already present.
func (r *IdentifierRegistry) Register(id m.WeppID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if _, ok := r.seen[id]; ok {
		return fmt.Errorf("wepp id %d: %w", int(id), m.ErrDuplicateID)
	}

	r.seen[id] = struct{}{}
	r.order = append(r.order, id)

	return nil
}

// RegisterAll registers ids in order and stops at the first failure.
func (r *IdentifierRegistry) RegisterAll(ids []m.WeppID) error {
	for _, id := range ids {
		if err := r.Register(id); err != nil {
			return err
		}
	}

	return nil
}

// AllIDs returns the registered ids in registration order.
func (r *IdentifierRegistry) AllIDs() []m.WeppID {
	return slices.Clone(r.order)
}

// Contains reports whether id is registered.
func (r *IdentifierRegistry) Contains(id m.WeppID) bool {
	_, ok := r.seen[id]
	return ok
}

// Len returns the number of registered ids.
func (r *IdentifierRegistry) Len() int {
	return len(r.order)
}
