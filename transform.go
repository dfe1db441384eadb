package nonempty

import (
	"cmp"
	"slices"
)

// Map returns a new sequence holding fn applied to every element of s,
// in order. Mapping cannot change the length, so the result carries the
// non-empty guarantee by construction.
func Map[T, U any](s Seq[T], fn func(T) U) Seq[U] {
	out := make([]U, len(s.items))
	for i, v := range s.items {
		out[i] = fn(v)
	}
	return Seq[U]{items: out}
}

// TryMap is like Map but stops at the first element for which fn returns
// an error, returning that error.
func TryMap[T, U any](s Seq[T], fn func(T) (U, error)) (Seq[U], error) {
	out := make([]U, 0, len(s.items))
	for _, v := range s.items {
		u, err := fn(v)
		if err != nil {
			return Seq[U]{}, err
		}
		out = append(out, u)
	}
	return Seq[U]{items: out}, nil
}

// Equal reports whether a and b have the same length and pairwise-equal
// elements in order.
func Equal[T comparable](a, b Seq[T]) bool {
	return slices.Equal(a.items, b.items)
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T, U any](a Seq[T], b Seq[U], eq func(T, U) bool) bool {
	return slices.EqualFunc(a.items, b.items, eq)
}

// Compare orders a and b element-wise, with the shorter prefix ordering
// first on a tie, matching slices.Compare.
func Compare[T cmp.Ordered](a, b Seq[T]) int {
	return slices.Compare(a.items, b.items)
}

// CompareFunc is like Compare but uses cmp for the element comparison.
func CompareFunc[T, U any](a Seq[T], b Seq[U], compare func(T, U) int) int {
	return slices.CompareFunc(a.items, b.items, compare)
}

// Contains reports whether v is present in s.
func Contains[T comparable](s Seq[T], v T) bool {
	return slices.Contains(s.items, v)
}

// Index returns the index of the first occurrence of v in s, or -1 if
// not present.
func Index[T comparable](s Seq[T], v T) int {
	return slices.Index(s.items, v)
}

// Sort sorts s in ascending order, in place. Sorting preserves length,
// so the guarantee is unaffected.
func Sort[T cmp.Ordered](s *Seq[T]) {
	slices.Sort(s.items)
}

// SortFunc sorts s in place using the comparison function cmp.
func SortFunc[T any](s *Seq[T], cmp func(a, b T) int) {
	slices.SortFunc(s.items, cmp)
}
