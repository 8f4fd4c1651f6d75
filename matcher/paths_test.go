package matcher_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqmatch/matcher"
)

func TestWidths_Descending(t *testing.T) {
	assert.Equal(t, []int{3, 2, 1}, matcher.Widths(cond(isNull, 1, 3)))
	assert.Equal(t, []int{1, 0}, matcher.Widths(cond(isNull, 0, 1)), "min 0 yields a zero width")
	assert.Equal(t, []int{2}, matcher.Widths(cond(isNull, 2, 2)))
}

func TestNewCombinations_Summary(t *testing.T) {
	c := matcher.NewCombinations(matcher.Pattern[any]{
		cond(isNull, 0, 1),
		cond(isNull, 1, 4),
		cond(isNull, 2, 2),
	})
	assert.Equal(t, [][]int{{1, 0}, {4, 3, 2, 1}, {2}}, c.Lists)
	assert.Equal(t, 8, c.Count)
	assert.Equal(t, 4, c.MaxWidth)
	assert.Equal(t, 3, c.MaxHeight)
}

func TestPaths_LexicographicOrder(t *testing.T) {
	got := matcher.Paths([][]int{{1, 0}, {2, 1, 0}})
	want := []matcher.Path{
		{1, 2}, {1, 1}, {1, 0},
		{0, 2}, {0, 1}, {0, 0},
	}
	assert.Equal(t, want, got, "first list varies slowest, last fastest")
}

func TestPaths_EmptyInputs(t *testing.T) {
	assert.Empty(t, matcher.Paths(nil))
	assert.Empty(t, matcher.Paths([][]int{{1}, {}}))
	assert.Equal(t, 0, matcher.PathCount(nil))
	assert.Equal(t, 0, matcher.PathCount([][]int{{1, 0}, {}}))
}

func TestPathCount_Saturates(t *testing.T) {
	big := make([]int, 1<<20)
	lists := [][]int{big, big, big, big}
	assert.Equal(t, math.MaxInt, matcher.PathCount(lists))
}

func TestEachPath_MatchesCountAndStops(t *testing.T) {
	lists := [][]int{{3, 2, 1}, {1, 0}, {4, 3, 2, 1, 0}}
	n := 0
	matcher.EachPath(lists, func(matcher.Path) bool { n++; return true })
	assert.Equal(t, matcher.PathCount(lists), n)

	n = 0
	matcher.EachPath(lists, func(matcher.Path) bool { n++; return n < 4 })
	assert.Equal(t, 4, n, "returning false stops the enumeration")
}

func TestEachPath_FreshSlices(t *testing.T) {
	var kept []matcher.Path
	matcher.EachPath([][]int{{1, 0}, {1, 0}}, func(p matcher.Path) bool {
		kept = append(kept, p)
		return true
	})
	require.Len(t, kept, 4)
	assert.Equal(t, matcher.Path{1, 1}, kept[0], "earlier paths are not overwritten")
	assert.Equal(t, matcher.Path{0, 0}, kept[3])
}

func TestEachPath_LongPatternNoRecursion(t *testing.T) {
	// 10k single-choice lists: one path, deep enough to hurt a recursive product.
	lists := make([][]int, 10_000)
	for i := range lists {
		lists[i] = []int{1}
	}
	n := 0
	matcher.EachPath(lists, func(p matcher.Path) bool {
		n++
		assert.Equal(t, 10_000, p.Len())
		return true
	})
	assert.Equal(t, 1, n)
}
