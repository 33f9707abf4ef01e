package lists_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/on-the-ground/utilities_go/pure/lists"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplice(t *testing.T) {
	src := []int{0, 1, 2, 3, 4, 5}
	tests := []struct {
		name      string
		pre, post int
		want      []int
	}{
		{"no margins", 0, 0, []int{0, 1, 2, 3, 4, 5}},
		{"both", 1, 2, []int{1, 2, 3}},
		{"pre only", 4, 0, []int{4, 5}},
		{"touching", 3, 3, []int{}},
		{"overlap", 4, 4, []int{}},
		{"beyond", 10, 0, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := lists.Splice(src, tt.pre, tt.post)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplice_CopiesInput(t *testing.T) {
	src := []string{"a", "b", "c"}
	got, err := lists.Splice(src, 1, 0)
	require.NoError(t, err)
	got[0] = "z"
	assert.Equal(t, []string{"a", "b", "c"}, src)
}

func TestSplice_NegativeMargin(t *testing.T) {
	_, err := lists.Splice([]int{1}, -1, 0)
	assert.ErrorIs(t, err, lists.ErrNegativeMargin)
	_, err = lists.Splice([]int{1}, 0, -1)
	assert.ErrorIs(t, err, lists.ErrNegativeMargin)
}

func TestTakeRandom(t *testing.T) {
	src := []int{10, 20, 30, 40, 50}
	rnd := rand.New(rand.NewPCG(1, 2))

	for n := range len(src) + 1 {
		got, err := lists.TakeRandom(src, n, rnd)
		require.NoError(t, err)
		require.Len(t, got, n)

		seen := map[int]bool{}
		for _, v := range got {
			assert.Contains(t, src, v)
			assert.False(t, seen[v], "duplicate %d", v)
			seen[v] = true
		}
	}

	all, err := lists.TakeRandom(src, len(src), nil)
	require.NoError(t, err)
	slices.Sort(all)
	assert.Equal(t, src, all)
}

func TestTakeRandom_Deterministic(t *testing.T) {
	src := []string{"a", "b", "c", "d", "e", "f"}
	a, err := lists.TakeRandom(src, 3, rand.New(rand.NewPCG(7, 7)))
	require.NoError(t, err)
	b, err := lists.TakeRandom(src, 3, rand.New(rand.NewPCG(7, 7)))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestTakeRandom_Errors(t *testing.T) {
	_, err := lists.TakeRandom([]int{1, 2}, -1, nil)
	assert.ErrorIs(t, err, lists.ErrNegativeCount)

	_, err = lists.TakeRandom([]int{1, 2}, 3, nil)
	assert.ErrorIs(t, err, lists.ErrSampleTooLarge)
	assert.EqualError(t, err, "sample larger than source: 3 of 2")
}

func TestPartition(t *testing.T) {
	src := []int{1, 2, 3, 4, 5, 6, 7}
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7}}, slices.Collect(lists.Partition(src, 3)))
	assert.Equal(t, [][]int{{1, 2, 3, 4, 5, 6, 7}}, slices.Collect(lists.Partition(src, 10)))
	assert.Empty(t, slices.Collect(lists.Partition([]int{}, 2)))

	chunks := slices.Collect(lists.Partition(src, 2))
	chunks[0][0] = 100
	assert.Equal(t, 1, src[0])
}

func TestPartition_InvalidSize(t *testing.T) {
	assert.Panics(t, func() { lists.Partition([]int{1}, 0) })
}
