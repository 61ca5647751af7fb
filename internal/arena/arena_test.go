package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocGet(t *testing.T) {
	a := New[string](0)

	ref := a.Alloc("hello")
	require.False(t, ref.IsZero())
	assert.Equal(t, 1, a.Len())

	v, err := a.Get(ref)
	require.NoError(t, err)
	assert.Equal(t, "hello", *v)

	// Writes through the pointer land in the slot.
	*v = "world"
	v2, err := a.Get(ref)
	require.NoError(t, err)
	assert.Equal(t, "world", *v2)
}

func TestZeroRefIsStale(t *testing.T) {
	a := New[int](0)

	_, err := a.Get(Ref{})
	assert.ErrorIs(t, err, ErrStaleRef)

	err = a.Free(Ref{})
	assert.ErrorIs(t, err, ErrStaleRef)
}

func TestFreeInvalidatesRef(t *testing.T) {
	a := New[int](0)

	ref := a.Alloc(42)
	require.NoError(t, a.Free(ref))
	assert.Equal(t, 0, a.Len())

	_, err := a.Get(ref)
	assert.ErrorIs(t, err, ErrStaleRef)

	// Double free is detected, not silently ignored.
	err = a.Free(ref)
	assert.ErrorIs(t, err, ErrStaleRef)
}

func TestSlotReuseBumpsGeneration(t *testing.T) {
	a := New[int](0)

	old := a.Alloc(1)
	require.NoError(t, a.Free(old))

	fresh := a.Alloc(2)
	assert.Equal(t, old.Slot, fresh.Slot, "freed slot should be recycled")
	assert.NotEqual(t, old.Gen, fresh.Gen)

	// The stale ref must not observe the new occupant.
	_, err := a.Get(old)
	assert.ErrorIs(t, err, ErrStaleRef)

	v, err := a.Get(fresh)
	require.NoError(t, err)
	assert.Equal(t, 2, *v)
}

func TestPointerStabilityAcrossGrowth(t *testing.T) {
	a := New[int](0)

	first := a.Alloc(7)
	p, err := a.Get(first)
	require.NoError(t, err)

	// Force several segment allocations.
	for i := 0; i < 3*segmentSize; i++ {
		a.Alloc(i)
	}

	q, err := a.Get(first)
	require.NoError(t, err)
	assert.Same(t, p, q, "slot address must survive growth")
	assert.Equal(t, 7, *q)
}

func TestRefsVisitsLiveSlotsOnce(t *testing.T) {
	a := New[int](0)

	refs := make([]Ref, 0, 10)
	for i := 0; i < 10; i++ {
		refs = append(refs, a.Alloc(i))
	}
	require.NoError(t, a.Free(refs[3]))
	require.NoError(t, a.Free(refs[7]))

	seen := make(map[Ref]bool)
	for ref := range a.Refs() {
		assert.False(t, seen[ref], "ref visited twice: %+v", ref)
		seen[ref] = true

		_, err := a.Get(ref)
		assert.NoError(t, err)
	}
	assert.Len(t, seen, 8)
	assert.NotContains(t, seen, refs[3])
	assert.NotContains(t, seen, refs[7])
}

func TestRefsEarlyBreak(t *testing.T) {
	a := New[int](0)
	for i := 0; i < 5; i++ {
		a.Alloc(i)
	}

	count := 0
	for range a.Refs() {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
	assert.Equal(t, 5, a.Len(), "early break must not disturb the arena")
}

func TestStats(t *testing.T) {
	a := New[int](0)

	r1 := a.Alloc(1)
	a.Alloc(2)
	require.NoError(t, a.Free(r1))
	a.Alloc(3) // reuses r1's slot

	stats := a.Stats()
	assert.Equal(t, 2, stats.Live)
	assert.Equal(t, uint64(3), stats.Allocs)
	assert.Equal(t, uint64(1), stats.Frees)
	assert.Equal(t, uint64(1), stats.Reuses)
	assert.GreaterOrEqual(t, stats.Capacity, stats.Live)
}

func TestPreallocatedCapacity(t *testing.T) {
	a := New[int](segmentSize + 1)
	assert.Equal(t, 2*segmentSize, a.Stats().Capacity)
	assert.Equal(t, 0, a.Len())
}
