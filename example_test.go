package pairheap_test

import (
	"fmt"

	"github.com/hupe1980/pairheap"
)

func Example() {
	h := pairheap.New[int, string]()

	h.Insert(3, "write docs")
	h.Insert(5, "refactor")
	urgent := h.Insert(2, "fix bug")

	// The bug turned out to be critical.
	if err := h.DecreaseKey(urgent, 0); err != nil {
		panic(err)
	}

	for priority, task := range h.DrainMin() {
		fmt.Println(priority, task)
	}
	// Output:
	// 0 fix bug
	// 3 write docs
	// 5 refactor
}

func ExamplePairingHeap_DecreaseKey() {
	h := pairheap.New[int, string]()

	h.Insert(10, "a")
	handle := h.Insert(20, "b")

	err := h.DecreaseKey(handle, 50)
	fmt.Println(err != nil) // increase is rejected

	if err := h.DecreaseKey(handle, 5); err != nil {
		panic(err)
	}

	key, value, _ := h.Min()
	fmt.Println(key, value)
	// Output:
	// true
	// 5 b
}

func ExamplePairingHeap_Get() {
	h := pairheap.New[int, string]()

	handle := h.Insert(1, "only")
	value, ok := h.Get(handle)
	fmt.Println(value, ok)

	h.Pop()
	_, ok = h.Get(handle)
	fmt.Println(ok)
	// Output:
	// only true
	// false
}
