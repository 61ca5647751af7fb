package pairheap

import (
	"cmp"
	"fmt"

	"github.com/hupe1980/pairheap/internal/arena"
)

// node is one stored element plus its position in the heap forest.
type node[K, V any] struct {
	key   K
	value V
	seq   uint64 // insertion order, breaks key ties

	parent   arena.Ref // zero when the node is the root
	childIdx int       // index within parent's children, meaningful only when parent is set
	children []arena.Ref
}

// PairingHeap is an addressable min-heap over keys of type K with payloads
// of type V. See the package documentation for the operation contracts.
//
// The zero value is not usable; construct heaps with New or NewFunc.
type PairingHeap[K, V any] struct {
	less   func(a, b K) bool
	nodes  *arena.Arena[node[K, V]]
	root   arena.Ref
	size   int
	seq    uint64
	logger *Logger
}

// New creates an empty heap ordered by the natural order of K.
func New[K cmp.Ordered, V any](opts ...Option) *PairingHeap[K, V] {
	return NewFunc[K, V](cmp.Less[K], opts...)
}

// NewFunc creates an empty heap ordered by less, which must implement a
// strict weak ordering over K.
func NewFunc[K, V any](less func(a, b K) bool, opts ...Option) *PairingHeap[K, V] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &PairingHeap[K, V]{
		less:   less,
		nodes:  arena.New[node[K, V]](cfg.capacity),
		logger: cfg.logger,
	}
}

// Len returns the number of stored elements.
func (h *PairingHeap[K, V]) Len() int {
	return h.size
}

// IsEmpty reports whether the heap holds no elements.
func (h *PairingHeap[K, V]) IsEmpty() bool {
	return h.size == 0
}

// node resolves a ref the engine owns. Refs reachable from the root are
// live by construction, so a failed resolve is a corrupted heap.
func (h *PairingHeap[K, V]) node(ref arena.Ref) *node[K, V] {
	n, err := h.nodes.Get(ref)
	if err != nil {
		panic("pairheap: corrupt heap: " + err.Error())
	}
	return n
}

// ordersBefore reports whether a takes priority over b. Equal keys order by
// insertion sequence, so ties resolve to the earlier-inserted element.
func (h *PairingHeap[K, V]) ordersBefore(a, b *node[K, V]) bool {
	if h.less(a.key, b.key) {
		return true
	}
	if h.less(b.key, a.key) {
		return false
	}
	return a.seq < b.seq
}

// meld unites two tree roots and returns the surviving root. The root that
// orders after the other becomes a new child of the winner, appended to its
// children sequence: one parent link and one slice append, never a
// recursion.
func (h *PairingHeap[K, V]) meld(a, b arena.Ref) arena.Ref {
	na, nb := h.node(a), h.node(b)
	if h.ordersBefore(nb, na) {
		a, b = b, a
		na, nb = nb, na
	}

	nb.parent = a
	nb.childIdx = len(na.children)
	na.children = append(na.children, b)

	return a
}

// Insert stores value under key and returns a Handle addressing it.
// Amortized O(1).
func (h *PairingHeap[K, V]) Insert(key K, value V) Handle {
	h.seq++
	ref := h.nodes.Alloc(node[K, V]{key: key, value: value, seq: h.seq})

	if h.root.IsZero() {
		h.root = ref
	} else {
		h.root = h.meld(h.root, ref)
	}
	h.size++

	return Handle{ref: ref}
}

// Min returns the minimum key and its value without mutating the heap.
// It returns false when the heap is empty. O(1).
func (h *PairingHeap[K, V]) Min() (K, V, bool) {
	if h.root.IsZero() {
		var k K
		var v V
		return k, v, false
	}
	n := h.node(h.root)
	return n.key, n.value, true
}

// MinMut is Min with mutable access to the value. The returned pointer is
// valid until the element is removed; mutating the value never affects heap
// order.
func (h *PairingHeap[K, V]) MinMut() (K, *V, bool) {
	if h.root.IsZero() {
		var k K
		return k, nil, false
	}
	n := h.node(h.root)
	return n.key, &n.value, true
}

// MinHandle returns the handle of the minimum element, or false when empty.
func (h *PairingHeap[K, V]) MinHandle() (Handle, bool) {
	if h.root.IsZero() {
		return Handle{}, false
	}
	return Handle{ref: h.root}, true
}

// Get returns the value addressed by handle. It reports false for stale
// handles instead of failing hard; callers that consider a stale handle a
// programmer error may treat false as such.
func (h *PairingHeap[K, V]) Get(handle Handle) (V, bool) {
	n, err := h.nodes.Get(handle.ref)
	if err != nil {
		var v V
		return v, false
	}
	return n.value, true
}

// GetMut returns a pointer to the value addressed by handle, or false when
// the handle is stale. The pointer is valid until the element is removed.
func (h *PairingHeap[K, V]) GetMut(handle Handle) (*V, bool) {
	n, err := h.nodes.Get(handle.ref)
	if err != nil {
		return nil, false
	}
	return &n.value, true
}

// Key returns the current key of the element addressed by handle, or false
// when the handle is stale.
func (h *PairingHeap[K, V]) Key(handle Handle) (K, bool) {
	n, err := h.nodes.Get(handle.ref)
	if err != nil {
		var k K
		return k, false
	}
	return n.key, true
}

// DecreaseKey lowers the key of the element addressed by handle to newKey.
//
// It fails with ErrInvalidHandle when the handle is stale and with
// ErrKeyIncrease when newKey orders strictly after the current key; a failed
// call leaves the heap exactly as it was. Amortized O(1).
func (h *PairingHeap[K, V]) DecreaseKey(handle Handle, newKey K) error {
	n, err := h.nodes.Get(handle.ref)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidHandle, err)
	}
	if h.less(n.key, newKey) {
		return fmt.Errorf("%w: %v > %v", ErrKeyIncrease, newKey, n.key)
	}

	n.key = newKey
	if handle.ref == h.root {
		// Lowering the root's key preserves the heap property in place.
		return nil
	}

	h.cut(handle.ref, n)
	h.logger.Debug("decrease-key cut", "slot", handle.ref.Slot, "size", h.size)
	h.root = h.meld(h.root, handle.ref)

	return nil
}

// cut detaches a non-root node from its parent's children sequence.
// Swap-remove keeps the cut O(1); children order only influences the
// two-pass union fan-in, never correctness.
func (h *PairingHeap[K, V]) cut(ref arena.Ref, n *node[K, V]) {
	p := h.node(n.parent)
	last := len(p.children) - 1
	idx := n.childIdx

	moved := p.children[last]
	p.children[idx] = moved
	p.children[last] = arena.Ref{}
	p.children = p.children[:last]
	if moved != ref {
		h.node(moved).childIdx = idx
	}

	n.parent = arena.Ref{}
	n.childIdx = 0
}

// Pop extracts the minimum element. It returns false when the heap is
// empty. Amortized O(log n).
func (h *PairingHeap[K, V]) Pop() (K, V, bool) {
	if h.root.IsZero() {
		var k K
		var v V
		return k, v, false
	}

	ref := h.root
	n := h.node(ref)
	key, value := n.key, n.value
	children := n.children
	n.children = nil

	if err := h.nodes.Free(ref); err != nil {
		panic("pairheap: corrupt heap: " + err.Error())
	}
	h.size--

	h.logger.Debug("extract-min", "children", len(children), "remaining", h.size)

	h.root = h.mergePairs(children)
	if !h.root.IsZero() {
		r := h.node(h.root)
		r.parent = arena.Ref{}
		r.childIdx = 0
	}

	return key, value, true
}

// mergePairs recomputes a single root from the detached children of an
// extracted root using the two-pass pairwise union: pass 1 melds consecutive
// pairs left to right (an odd last child carries over unpaired), pass 2
// folds the survivors right to left. This discipline, rather than a single
// left-to-right fold, is what yields the amortized O(log n) extract-min
// bound.
func (h *PairingHeap[K, V]) mergePairs(children []arena.Ref) arena.Ref {
	if len(children) == 0 {
		return arena.Ref{}
	}

	// Pass 1: pairing. Survivors overwrite the prefix of the children
	// slice; the write index trails the read index, so no pair is read
	// after being clobbered.
	paired := children[:0]
	i := 0
	for ; i+1 < len(children); i += 2 {
		paired = append(paired, h.meld(children[i], children[i+1]))
	}
	if i < len(children) {
		paired = append(paired, children[i])
	}

	// Pass 2: fan-in, right to left.
	winner := paired[len(paired)-1]
	for j := len(paired) - 2; j >= 0; j-- {
		winner = h.meld(paired[j], winner)
	}

	return winner
}

// Stats reports storage counters for the heap's node arena.
type Stats struct {
	Live     int    // Current: live elements
	Capacity int    // Current: allocated slot capacity
	Allocs   uint64 // Historical: total node allocations
	Frees    uint64 // Historical: total node frees
	Reuses   uint64 // Historical: allocations served from recycled slots
}

// Stats returns the current heap statistics.
func (h *PairingHeap[K, V]) Stats() Stats {
	s := h.nodes.Stats()
	return Stats{
		Live:     s.Live,
		Capacity: s.Capacity,
		Allocs:   s.Allocs,
		Frees:    s.Frees,
		Reuses:   s.Reuses,
	}
}
