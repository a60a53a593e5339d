package bigobench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocateSizable_PrefersSliceable(t *testing.T) {
	args := []Arg{Opaque("tag"), Size(50), Seq([]int{1, 2, 3, 4})}

	index, size, ok := locateSizable(args)

	require.True(t, ok)
	assert.Equal(t, 2, index, "first sliceable argument wins over a bare size")
	assert.Equal(t, 4, size)
}

func TestLocateSizable_FallsBackToBareSize(t *testing.T) {
	args := []Arg{Opaque(3.14), Size(200)}

	index, size, ok := locateSizable(args)

	require.True(t, ok)
	assert.Equal(t, 1, index)
	assert.Equal(t, 200, size)
}

func TestLocateSizable_NoneFound(t *testing.T) {
	cases := [][]Arg{
		{Opaque(3.14)},
		{Opaque("a"), Opaque(struct{}{})},
		{Size(0)},
		{Size(-7)},
		{},
	}

	for _, args := range cases {
		_, _, ok := locateSizable(args)
		assert.False(t, ok, "args: %v", args)
	}
}

func TestResizeArgs_DoesNotMutateOriginal(t *testing.T) {
	data := []int{10, 20, 30, 40, 50}
	args := []Arg{Text("query"), Seq(data)}

	resized := resizeArgs(args, 1, 3)

	// The returned copy is independent: scribbling on it must not show
	// through to the caller's slice or the original arg list.
	cut := resized[1].Value().([]int)
	require.Len(t, cut, 3)
	cut[0] = 999

	assert.Equal(t, []int{10, 20, 30, 40, 50}, data)
	assert.Equal(t, []int{10, 20, 30, 40, 50}, args[1].Value())
	assert.Equal(t, "query", resized[0].Value())
}

func TestResizeArgs_FullSizeEqualsOriginal(t *testing.T) {
	data := []int{1, 2, 3}
	args := []Arg{Seq(data)}

	resized := resizeArgs(args, 0, len(data))

	assert.Equal(t, data, resized[0].Value())
}

func TestResizeArgs_TargetBeyondLengthClamps(t *testing.T) {
	args := []Arg{Seq([]byte{1, 2})}

	resized := resizeArgs(args, 0, 10)

	assert.Equal(t, []byte{1, 2}, resized[0].Value())
}

func TestResizeArgs_BareSizePassesThrough(t *testing.T) {
	args := []Arg{Size(500)}

	resized := resizeArgs(args, 0, 10)

	assert.Equal(t, 500, resized[0].Value(), "bare sizes are not scaled")
}

func TestText_Prefix(t *testing.T) {
	args := []Arg{Text("hello world")}

	resized := resizeArgs(args, 0, 5)

	assert.Equal(t, "hello", resized[0].Value())
	assert.Equal(t, "hello world", args[0].Value())
}

func TestArgValues_Unwraps(t *testing.T) {
	args := []Arg{Seq([]int{1}), Text("x"), Size(9), Opaque(nil)}

	vals := argValues(args)

	require.Len(t, vals, 4)
	assert.Equal(t, []int{1}, vals[0])
	assert.Equal(t, "x", vals[1])
	assert.Equal(t, 9, vals[2])
	assert.Nil(t, vals[3])
}
