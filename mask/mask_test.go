package mask_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ccalmels/volcano/mask"
)

func TestCheck(t *testing.T) {
	assert.NoError(t, mask.Check(0))
	assert.NoError(t, mask.Check(mask.Width))
	assert.ErrorIs(t, mask.Check(mask.Width+1), mask.ErrTooWide)
}

func TestMask_SetAndTest(t *testing.T) {
	var m mask.Mask
	assert.False(t, m.Has(0))
	assert.Equal(t, 0, m.Len())

	m = m.With(0).With(5).With(63)
	assert.True(t, m.Has(0))
	assert.True(t, m.Has(5))
	assert.True(t, m.Has(63))
	assert.False(t, m.Has(1))
	assert.Equal(t, 3, m.Len())
	assert.Equal(t, []int{0, 5, 63}, m.Positions())

	// With is idempotent.
	assert.Equal(t, m, m.With(5))
}

func TestMask_Disjoint(t *testing.T) {
	a := mask.Mask(0).With(1).With(3)
	b := mask.Mask(0).With(2)
	c := mask.Mask(0).With(3)

	assert.True(t, a.Disjoint(b))
	assert.False(t, a.Disjoint(c))
	assert.True(t, mask.Mask(0).Disjoint(mask.Mask(0)), "empty set is disjoint with itself")
}

func TestMask_Format(t *testing.T) {
	m := mask.Mask(0).With(0).With(2)
	assert.Equal(t, "0101", m.Format(4))
	assert.Equal(t, "01", m.Format(2))
	assert.Equal(t, "", m.Format(0))
	assert.Len(t, m.Format(100), mask.Width)
}
