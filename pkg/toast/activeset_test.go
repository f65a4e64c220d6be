package toast

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(id string) *Notification {
	return &Notification{ID: id}
}

func TestActiveSet_InsertWithinCapacity(t *testing.T) {
	t.Parallel()

	s := newActiveSet(3)

	assert.Empty(t, s.insert(record("a")))
	assert.Empty(t, s.insert(record("b")))
	assert.Equal(t, 2, s.len())
	assert.NotNil(t, s.get("a"))
}

func TestActiveSet_CapacityInvariant(t *testing.T) {
	t.Parallel()

	s := newActiveSet(5)
	for i := 0; i < 50; i++ {
		s.insert(record(fmt.Sprintf("n%d", i)))
		assert.LessOrEqual(t, s.len(), 5)
	}
}

func TestActiveSet_FIFOEviction(t *testing.T) {
	t.Parallel()

	s := newActiveSet(5)
	for i := 1; i <= 6; i++ {
		s.insert(record(fmt.Sprintf("n%d", i)))
	}

	require.Equal(t, 5, s.len())
	assert.Nil(t, s.get("n1"), "oldest record should be evicted")

	var ids []string
	for _, n := range s.all() {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []string{"n2", "n3", "n4", "n5", "n6"}, ids)
}

func TestActiveSet_EvictedReturnedOldestFirst(t *testing.T) {
	t.Parallel()

	s := newActiveSet(2)
	s.insert(record("a"))
	s.insert(record("b"))

	evicted := s.insert(record("c"))
	require.Len(t, evicted, 1)
	assert.Equal(t, "a", evicted[0].ID)
}

func TestActiveSet_RemoveIdempotent(t *testing.T) {
	t.Parallel()

	s := newActiveSet(3)
	s.insert(record("a"))

	assert.NotNil(t, s.remove("a"))
	assert.Nil(t, s.remove("a"))
	assert.Nil(t, s.remove("never-existed"))
	assert.Equal(t, 0, s.len())
}

func TestActiveSet_InsertExistingIDReplacesInPlace(t *testing.T) {
	t.Parallel()

	s := newActiveSet(3)
	s.insert(record("a"))
	s.insert(record("b"))

	replacement := &Notification{ID: "a", Title: "updated"}
	assert.Empty(t, s.insert(replacement))

	assert.Equal(t, 2, s.len())
	assert.Equal(t, "updated", s.get("a").Title)
	// Position is preserved: "a" is still the oldest.
	assert.Equal(t, "a", s.all()[0].ID)
}

func TestActiveSet_SetCapacityEvicts(t *testing.T) {
	t.Parallel()

	s := newActiveSet(5)
	for i := 1; i <= 5; i++ {
		s.insert(record(fmt.Sprintf("n%d", i)))
	}

	evicted := s.setCapacity(2)
	require.Len(t, evicted, 3)
	assert.Equal(t, "n1", evicted[0].ID)
	assert.Equal(t, "n2", evicted[1].ID)
	assert.Equal(t, "n3", evicted[2].ID)
	assert.Equal(t, 2, s.len())
}

func TestActiveSet_MinimumCapacity(t *testing.T) {
	t.Parallel()

	s := newActiveSet(0)
	s.insert(record("a"))
	assert.Equal(t, 1, s.len())

	evicted := s.insert(record("b"))
	require.Len(t, evicted, 1)
	assert.Equal(t, "a", evicted[0].ID)
}
