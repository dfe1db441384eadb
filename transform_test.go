package nonempty

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	s := New(1, 2, 3)

	got := Map(s, func(v int) string { return strconv.Itoa(v * 2) })

	assert.Equal(t, []string{"2", "4", "6"}, got.Slice())
	assert.Equal(t, s.Len(), got.Len(), "mapping preserves length")
}

func TestTryMap(t *testing.T) {
	s := New("1", "2", "3")

	got, err := TryMap(s, strconv.Atoi)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got.Slice())
}

func TestTryMap_PropagatesError(t *testing.T) {
	s := New("1", "nope", "3")

	calls := 0
	_, err := TryMap(s, func(v string) (int, error) {
		calls++
		return strconv.Atoi(v)
	})
	require.Error(t, err)
	assert.Equal(t, 2, calls, "stops at the first failing element")
}

func TestTryMap_CustomError(t *testing.T) {
	boom := errors.New("boom")
	s := New(1)

	_, err := TryMap(s, func(int) (int, error) { return 0, boom })
	require.ErrorIs(t, err, boom)
}

func TestEqual(t *testing.T) {
	a := New(1, 2, 3)
	b := New(1, 2, 3)
	c := New(1, 2)
	d := New(1, 2, 4)

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
	assert.False(t, Equal(a, d))
}

func TestEqualFunc(t *testing.T) {
	a := New("A", "B")
	b := New("a", "b")

	assert.True(t, EqualFunc(a, b, func(x, y string) bool {
		return len(x) == len(y)
	}))
}

func TestCompare(t *testing.T) {
	assert.Equal(t, 0, Compare(New(1, 2), New(1, 2)))
	assert.Equal(t, -1, Compare(New(1, 2), New(1, 3)))
	assert.Equal(t, 1, Compare(New(2), New(1, 9)))
	assert.Equal(t, -1, Compare(New(1), New(1, 0)), "shorter prefix orders first")
}

func TestCompareFunc(t *testing.T) {
	got := CompareFunc(New(1), New("10"), func(a int, b string) int {
		n, _ := strconv.Atoi(b)
		switch {
		case a < n:
			return -1
		case a > n:
			return 1
		}
		return 0
	})
	assert.Equal(t, -1, got)
}

func TestContains_Index(t *testing.T) {
	s := New("a", "b", "c")

	assert.True(t, Contains(s, "b"))
	assert.False(t, Contains(s, "z"))
	assert.Equal(t, 2, Index(s, "c"))
	assert.Equal(t, -1, Index(s, "z"))
}

func TestSort(t *testing.T) {
	s := New(3, 1, 2)
	Sort(&s)
	assert.Equal(t, []int{1, 2, 3}, s.Slice())
}

func TestSortFunc(t *testing.T) {
	s := New("bb", "a", "ccc")
	SortFunc(&s, func(a, b string) int { return len(a) - len(b) })
	assert.Equal(t, []string{"a", "bb", "ccc"}, s.Slice())
}
