package pairheap

import "iter"

// All iterates over every live element exactly once in unspecified order.
// The sequence is lazy and safe to abandon early; a fresh call restarts from
// the beginning. The heap must not be mutated during iteration.
func (h *PairingHeap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for ref := range h.nodes.Refs() {
			n := h.node(ref)
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// Values iterates over every stored value exactly once in unspecified order.
func (h *PairingHeap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for ref := range h.nodes.Refs() {
			if !yield(h.node(ref).value) {
				return
			}
		}
	}
}

// ValuesMut iterates over pointers to every stored value exactly once in
// unspecified order. Mutating a value never affects heap order; keys change
// only through DecreaseKey.
func (h *PairingHeap[K, V]) ValuesMut() iter.Seq[*V] {
	return func(yield func(*V) bool) {
		for ref := range h.nodes.Refs() {
			if !yield(&h.node(ref).value) {
				return
			}
		}
	}
}

// DrainMin iterates over the heap's elements in ascending key order by
// repeatedly extracting the minimum. The sequence consumes the heap: every
// yielded element is removed, and exhausting the sequence leaves the heap
// empty. Breaking early leaves exactly the un-yielded elements, but the heap
// must not be accessed through handles or other iterators while a drain is
// in progress.
func (h *PairingHeap[K, V]) DrainMin() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for {
			k, v, ok := h.Pop()
			if !ok || !yield(k, v) {
				return
			}
		}
	}
}
