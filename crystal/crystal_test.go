package crystal_test

import (
	"testing"

	"github.com/katalvlaran/riggings/cartan"
	"github.com/katalvlaran/riggings/crystal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewFactor_Validation checks the alphabet gate.
func TestNewFactor_Validation(t *testing.T) {
	d4 := cartan.MustNew(cartan.D, 4)

	_, err := crystal.NewFactor(d4, [][]int{{5}})
	assert.ErrorIs(t, err, crystal.ErrBadLetter)

	f, err := crystal.NewFactor(d4, [][]int{{2}, {-1}})
	require.NoError(t, err)
	assert.Equal(t, "[[2], [-1]]", f.String())
	assert.Equal(t, [][]int{{2}, {-1}}, f.Rows())
}

// TestTensorProduct_New covers count and rectangle checks.
func TestTensorProduct_New(t *testing.T) {
	d4 := cartan.MustNew(cartan.D, 4)
	tp := crystal.NewTensorProduct(d4, [][2]int{{1, 1}, {2, 2}})

	one, err := crystal.NewFactor(d4, [][]int{{-1}})
	require.NoError(t, err)
	two, err := crystal.NewFactor(d4, [][]int{{2}, {-1}})
	require.NoError(t, err)

	elt, err := tp.New(one, two)
	require.NoError(t, err)
	assert.Equal(t, "[[[-1]], [[2], [-1]]]", elt.String())
	assert.Equal(t, 2, elt.Len())

	_, err = tp.New(one)
	assert.ErrorIs(t, err, crystal.ErrFactorCount)

	tall, err := crystal.NewFactor(d4, [][]int{{1}, {2}})
	require.NoError(t, err)
	_, err = tp.New(tall, two)
	assert.ErrorIs(t, err, crystal.ErrOversized, "two rows cannot fit B^{1,1}")

	wide, err := crystal.NewFactor(d4, [][]int{{1, 1, 1}})
	require.NoError(t, err)
	_, err = tp.New(one, wide)
	assert.ErrorIs(t, err, crystal.ErrOversized, "three columns cannot fit B^{2,2}")
}

// TestElement_Equal is factorwise.
func TestElement_Equal(t *testing.T) {
	d4 := cartan.MustNew(cartan.D, 4)
	tp := crystal.NewTensorProduct(d4, [][2]int{{1, 1}})

	a, err := crystal.NewFactor(d4, [][]int{{-1}})
	require.NoError(t, err)
	b, err := crystal.NewFactor(d4, [][]int{{1}})
	require.NoError(t, err)

	x, err := tp.New(a)
	require.NoError(t, err)
	y, err := tp.New(b)
	require.NoError(t, err)

	assert.True(t, x.Equal(x))
	assert.False(t, x.Equal(y))
}

// TestFactor_SubRectangleShapes allows partition shapes strictly inside the
// rectangle — crystal factors are not forced to be full.
func TestFactor_SubRectangleShapes(t *testing.T) {
	d4 := cartan.MustNew(cartan.D, 4)
	tp := crystal.NewTensorProduct(d4, [][2]int{{2, 2}})

	f, err := crystal.NewFactor(d4, [][]int{{1, 2}, {3}})
	require.NoError(t, err)
	_, err = tp.New(f)
	assert.NoError(t, err)
}
