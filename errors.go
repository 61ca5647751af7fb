package pairheap

import "errors"

var (
	// ErrInvalidHandle is returned when a handle does not address a live
	// element, either because it was never issued by this heap or because
	// its element has already been extracted.
	ErrInvalidHandle = errors.New("pairheap: invalid handle")

	// ErrKeyIncrease is returned by DecreaseKey when the new key orders
	// strictly after the element's current key. The heap provides no
	// increase-key operation; the structure is left unchanged.
	ErrKeyIncrease = errors.New("pairheap: new key orders after current key")
)
