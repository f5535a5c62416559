package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionAppendRemove(t *testing.T) {
	c := NewCollection()
	a, b, d := New(), New(), New()

	assert.Equal(t, 0, c.Append(a))
	assert.Equal(t, 1, c.Append(b))
	assert.Equal(t, 2, c.Append(d))

	assert.False(t, c.Remove(3))
	assert.True(t, c.Remove(1))
	require.Equal(t, 2, c.Len())

	got, ok := c.At(1)
	require.True(t, ok)
	assert.Same(t, d, got)

	_, ok = c.At(-1)
	assert.False(t, ok)
}

func TestCollectionRestore(t *testing.T) {
	c := NewCollection(New(pt(0, 0), pt(1, 1)))
	snapshot := c.Clone()

	s, _ := c.At(0)
	s.Points[0] = pt(5, 5)
	c.Append(New())

	c.Restore(snapshot)
	require.Equal(t, 1, c.Len())
	s, _ = c.At(0)
	assert.Equal(t, pt(0, 0), s.Points[0])

	// Restoring copies, later edits must not leak into the snapshot
	s.Points[0] = pt(7, 7)
	orig, _ := snapshot.At(0)
	assert.Equal(t, pt(0, 0), orig.Points[0])
}

func TestCollectionTotalPoints(t *testing.T) {
	c := NewCollection(New(pt(0, 0), pt(1, 1)), New(), New(pt(2, 2)))
	assert.Equal(t, 3, c.TotalPoints())
}
