package arena

import (
	"errors"
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// ErrStaleRef is returned when a Ref's generation does not match its slot.
var ErrStaleRef = errors.New("arena: stale ref")

const (
	// segmentBits determines the size of each segment.
	// 10 bits = 1024 slots per segment.
	segmentBits = 10
	segmentSize = 1 << segmentBits
	segmentMask = segmentSize - 1
)

// Ref identifies one slot at one occupancy.
//
// Two Refs are equal iff they name the same slot and the same generation.
// The zero Ref is never issued; generations start at 1.
type Ref struct {
	Slot uint32
	Gen  uint32
}

// IsZero reports whether r is the zero Ref.
func (r Ref) IsZero() bool {
	return r.Gen == 0
}

type slot[T any] struct {
	gen   uint32
	value T
}

// segment is a fixed-size block of slots. Segments are never moved or
// resized once allocated, which keeps pointers returned by Get stable.
type segment[T any] struct {
	slots [segmentSize]slot[T]
}

// Stats tracks arena slot usage.
type Stats struct {
	Live     int    // Current: live slot count
	Capacity int    // Current: slots backed by segments
	Allocs   uint64 // Historical: total allocations
	Frees    uint64 // Historical: total frees
	Reuses   uint64 // Historical: allocations served from the free list
}

// Arena is a generational slot arena.
//
// It is a single-threaded value type; callers that share an arena across
// goroutines must synchronize externally.
type Arena[T any] struct {
	segments []*segment[T]
	next     uint32 // next never-used slot index
	free     []uint32
	live     *roaring.Bitmap

	allocs uint64
	frees  uint64
	reuses uint64
}

// New creates an empty arena with capacity for at least the given number of
// slots before the first segment allocation on Alloc.
func New[T any](capacity int) *Arena[T] {
	a := &Arena[T]{
		live: roaring.New(),
	}
	for capacity > 0 {
		a.segments = append(a.segments, &segment[T]{})
		capacity -= segmentSize
	}
	return a
}

// Len returns the number of live slots.
func (a *Arena[T]) Len() int {
	return int(a.live.GetCardinality())
}

func (a *Arena[T]) slotAt(idx uint32) *slot[T] {
	return &a.segments[idx>>segmentBits].slots[idx&segmentMask]
}

// Alloc places v in a slot and returns a Ref for it. Recycled slots keep
// their bumped generation, so Refs from the previous occupancy stay stale.
func (a *Arena[T]) Alloc(v T) Ref {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
		a.reuses++
	} else {
		idx = a.next
		a.next++
		if int(idx>>segmentBits) >= len(a.segments) {
			a.segments = append(a.segments, &segment[T]{})
		}
	}

	s := a.slotAt(idx)
	if s.gen == 0 {
		s.gen = 1
	}
	s.value = v
	a.live.Add(idx)
	a.allocs++

	return Ref{Slot: idx, Gen: s.gen}
}

// Get returns a pointer to the record named by ref. The pointer stays valid
// until the slot is freed; it fails with ErrStaleRef on generation mismatch.
func (a *Arena[T]) Get(ref Ref) (*T, error) {
	if ref.IsZero() || ref.Slot >= a.next || !a.live.Contains(ref.Slot) {
		return nil, ErrStaleRef
	}
	s := a.slotAt(ref.Slot)
	if s.gen != ref.Gen {
		return nil, ErrStaleRef
	}
	return &s.value, nil
}

// Free reclaims the slot named by ref and bumps its generation, invalidating
// every Ref issued for the current occupancy. It fails with ErrStaleRef if
// the ref is stale or was already freed.
func (a *Arena[T]) Free(ref Ref) error {
	if ref.IsZero() || ref.Slot >= a.next || !a.live.Contains(ref.Slot) {
		return ErrStaleRef
	}
	s := a.slotAt(ref.Slot)
	if s.gen != ref.Gen {
		return ErrStaleRef
	}

	var zero T
	s.value = zero // release references held by the record
	s.gen++
	a.live.Remove(ref.Slot)
	a.free = append(a.free, ref.Slot)
	a.frees++

	return nil
}

// Refs iterates over every live slot exactly once, in slot order.
func (a *Arena[T]) Refs() iter.Seq[Ref] {
	return func(yield func(Ref) bool) {
		it := a.live.Iterator()
		for it.HasNext() {
			idx := it.Next()
			if !yield(Ref{Slot: idx, Gen: a.slotAt(idx).gen}) {
				return
			}
		}
	}
}

// Stats returns the current arena statistics.
func (a *Arena[T]) Stats() Stats {
	return Stats{
		Live:     a.Len(),
		Capacity: len(a.segments) * segmentSize,
		Allocs:   a.allocs,
		Frees:    a.frees,
		Reuses:   a.reuses,
	}
}
