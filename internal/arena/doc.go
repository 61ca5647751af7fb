// Package arena implements the slot storage backing the pairing heap.
//
// The arena owns every node record and is the sole authority for node
// lifetime. Records live in fixed-size segments, so a pointer returned by
// Get stays valid for the lifetime of the slot no matter how much the arena
// grows afterwards.
//
// # Generational Refs
//
// Freed slots are recycled through a free list, so a raw slot index is only
// unique while the slot is live. Every slot carries a generation counter
// that is bumped on Free; a Ref matches only the occupancy it was issued
// for. Using a Ref after its slot was reclaimed yields ErrStaleRef instead
// of silently reading a different record.
package arena
