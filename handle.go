package pairheap

import "github.com/hupe1980/pairheap/internal/arena"

// Handle is an opaque, copyable reference to one element stored in a
// PairingHeap. Handles are comparable with ==; two handles are equal iff
// they address the same slot occupancy.
//
// The zero Handle never addresses an element.
type Handle struct {
	ref arena.Ref
}

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool {
	return h.ref.IsZero()
}
