// Package collision detects duplicate block names and name hash collisions in a block set.
package collision

import (
	"fmt"
	"slices"

	"github.com/arloliu/qint4/errs"
)

// Tracker records the names added to a block set by their 64-bit ID.
//
// Block sets store only IDs, so two names sharing an ID cannot be told apart on decode;
// the tracker rejects the second one.
type Tracker struct {
	names map[uint64]string // ID → name
	order []string          // names in the order they were tracked
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		names: make(map[uint64]string),
	}
}

// Track records name under id.
//
// Returns:
//   - errs.ErrInvalidArgument if name is empty
//   - errs.ErrDuplicateBlock if name was tracked before, or another name already has id
func (t *Tracker) Track(name string, id uint64) error {
	if name == "" {
		return fmt.Errorf("%w: block name must not be empty", errs.ErrInvalidArgument)
	}

	if existing, ok := t.names[id]; ok {
		if existing == name {
			return fmt.Errorf("%w: %q", errs.ErrDuplicateBlock, name)
		}

		return fmt.Errorf("%w: %q collides with %q (id %#x)", errs.ErrDuplicateBlock, name, existing, id)
	}

	t.names[id] = name
	t.order = append(t.order, name)

	return nil
}

// Names returns a copy of the tracked names in insertion order.
func (t *Tracker) Names() []string {
	return slices.Clone(t.order)
}

// Count returns the number of tracked names.
func (t *Tracker) Count() int {
	return len(t.order)
}
