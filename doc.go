// Package pairheap provides an addressable pairing heap for Go.
//
// A pairing heap is a priority queue that exposes the minimum-key element in
// O(1), supports insertion and key decrease in amortized O(1), and
// minimum extraction in amortized O(log n). "Addressable" means every stored
// element is reachable through a stable Handle, so callers can read, mutate,
// and reprioritize arbitrary elements — not just the minimum — while the
// heap restructures its internal tree.
//
// # Quick Start
//
//	h := pairheap.New[int, string]()
//	a := h.Insert(3, "three")
//	h.Insert(1, "one")
//
//	k, v, _ := h.Min()          // 1, "one"
//	_ = h.DecreaseKey(a, 0)     // "three" is now the minimum
//	k, v, _ = h.Pop()           // 0, "three"
//	_, v, _ = h.Pop()           // 1, "one"
//
// # Handles
//
// Insert returns a Handle addressing the new element. Handles stay valid
// across any number of operations on other elements and become invalid the
// moment their element is extracted. Stale handles are always detected:
// lookups report absence and DecreaseKey fails with ErrInvalidHandle, never
// a silently wrong element. Handles are local to one heap instance and must
// not be exchanged between heaps.
//
// # Ordering
//
// New builds a heap over any cmp.Ordered key type; NewFunc accepts a custom
// total order. Elements with equal keys are yielded in insertion order
// (earlier insert wins).
//
// # Concurrency
//
// A PairingHeap is a single-threaded value type with no internal locking.
// Callers that share a heap across goroutines must serialize all access.
package pairheap
