package nonempty

import (
	"fmt"
	"slices"
)

// Push appends v to the end of the sequence. Growth never violates the
// guarantee, so Push always succeeds.
func (s *Seq[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Append appends every element of items, in order. Appending zero
// elements is a no-op.
func (s *Seq[T]) Append(items ...T) {
	s.items = append(s.items, items...)
}

// Insert inserts v at index i, shifting later elements right. i may equal
// Len(), in which case Insert behaves like Push. It panics if i is out of
// range.
func (s *Seq[T]) Insert(i int, v T) {
	s.items = slices.Insert(s.items, i, v)
}

// InsertSlice inserts all of items at index i, preserving their order.
// It panics if i is out of range.
func (s *Seq[T]) InsertSlice(i int, items []T) {
	s.items = slices.Insert(s.items, i, items...)
}

// ExtendFromSeq appends every element of other. other is not modified.
func (s *Seq[T]) ExtendFromSeq(other Seq[T]) {
	s.items = append(s.items, other.items...)
}

// Pop removes and returns the last element if the sequence holds more
// than one. On a singleton it returns the zero value and ErrEmpty, and
// the sole element is NOT removed.
func (s *Seq[T]) Pop() (T, error) {
	if len(s.items) <= 1 {
		var zero T
		return zero, ErrEmpty
	}
	last := s.items[len(s.items)-1]
	// Zero the vacated slot so the backing array does not retain the
	// element past removal.
	var zero T
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]
	return last, nil
}

// Remove removes and returns the element at index i, shifting later
// elements left. On a singleton it returns ErrEmpty and removes nothing.
// It panics if i is out of range; an out-of-contract index is a
// programming error, never a recoverable one.
func (s *Seq[T]) Remove(i int) (T, error) {
	if i < 0 || i >= len(s.items) {
		panic(fmt.Sprintf("nonempty: Remove index %d out of range with length %d", i, len(s.items)))
	}
	if len(s.items) == 1 {
		var zero T
		return zero, ErrEmpty
	}
	v := s.items[i]
	s.items = slices.Delete(s.items, i, i+1)
	return v, nil
}

// SwapRemove removes and returns the element at index i by replacing it
// with the last element. It does not preserve order but runs in O(1).
// The singleton and out-of-range contracts match Remove.
func (s *Seq[T]) SwapRemove(i int) (T, error) {
	if i < 0 || i >= len(s.items) {
		panic(fmt.Sprintf("nonempty: SwapRemove index %d out of range with length %d", i, len(s.items)))
	}
	if len(s.items) == 1 {
		var zero T
		return zero, ErrEmpty
	}
	v := s.items[i]
	last := len(s.items) - 1
	s.items[i] = s.items[last]
	var zero T
	s.items[last] = zero
	s.items = s.items[:last]
	return v, nil
}

// Truncate shortens the sequence to at most n elements, keeping the
// first n. A target of zero (or below) is clamped to one, so the first
// element always survives. The clamp is deliberate: every other
// shrink-to-zero is an error, but Truncate(0) keeps compatibility with
// the behavior this package is modeled on. Targets at or above the
// current length are no-ops.
func (s *Seq[T]) Truncate(n int) {
	if n < 1 {
		n = 1
	}
	if n >= len(s.items) {
		return
	}
	s.items = slices.Delete(s.items, n, len(s.items))
}

// Resize changes the length to n, truncating or appending copies of fill
// as needed. It fails with ErrEmpty for n < 1 and leaves the sequence
// unchanged.
func (s *Seq[T]) Resize(n int, fill T) error {
	return s.ResizeWith(n, func() T { return fill })
}

// ResizeWith is like Resize but obtains each appended element from fill.
// fill is called once per new element, in index order.
func (s *Seq[T]) ResizeWith(n int, fill func() T) error {
	if n < 1 {
		return ErrEmpty
	}
	switch {
	case n < len(s.items):
		s.items = slices.Delete(s.items, n, len(s.items))
	case n > len(s.items):
		s.items = slices.Grow(s.items, n-len(s.items))
		for len(s.items) < n {
			s.items = append(s.items, fill())
		}
	}
	return nil
}

// Drain removes the elements in [i, j), returning them as a new slice.
// Draining the full range is rejected with ErrEmpty, leaving the
// sequence unchanged: at least one element must survive. An invalid
// range panics.
func (s *Seq[T]) Drain(i, j int) ([]T, error) {
	if i < 0 || j < i || j > len(s.items) {
		panic(fmt.Sprintf("nonempty: Drain range [%d:%d] out of range with length %d", i, j, len(s.items)))
	}
	if j-i == len(s.items) {
		return nil, ErrEmpty
	}
	removed := slices.Clone(s.items[i:j])
	s.items = slices.Delete(s.items, i, j)
	return removed, nil
}

// DedupBy collapses adjacent elements for which same reports true,
// keeping the first of each run. The first element always survives, so
// DedupBy never fails.
func (s *Seq[T]) DedupBy(same func(a, b T) bool) {
	s.items = slices.CompactFunc(s.items, same)
}

// TryRetain keeps only the elements for which keep reports true. If the
// predicate would retain zero elements the call fails with ErrEmpty and
// the sequence is unchanged; the caller may instead unwrap with
// IntoSlice, filter, and re-wrap with TryFromSlice.
func (s *Seq[T]) TryRetain(keep func(T) bool) error {
	kept := 0
	for _, v := range s.items {
		if keep(v) {
			kept++
		}
	}
	if kept == 0 {
		return ErrEmpty
	}
	s.items = slices.DeleteFunc(s.items, func(v T) bool { return !keep(v) })
	return nil
}

// Splice replaces the elements in [i, j) with repl, returning the
// removed segment. Replacing the full range with an empty repl is
// rejected with ErrEmpty. An invalid range panics.
func (s *Seq[T]) Splice(i, j int, repl []T) ([]T, error) {
	if i < 0 || j < i || j > len(s.items) {
		panic(fmt.Sprintf("nonempty: Splice range [%d:%d] out of range with length %d", i, j, len(s.items)))
	}
	if j-i == len(s.items) && len(repl) == 0 {
		return nil, ErrEmpty
	}
	removed := slices.Clone(s.items[i:j])
	s.items = slices.Replace(s.items, i, j, repl...)
	return removed, nil
}

// Dedup collapses adjacent equal elements of s, keeping the first of
// each run. Like DedupBy it never fails.
func Dedup[T comparable](s *Seq[T]) {
	s.items = slices.Compact(s.items)
}

// DedupByKey collapses adjacent elements whose keys are equal, keeping
// the first of each run.
func DedupByKey[T any, K comparable](s *Seq[T], key func(T) K) {
	s.items = slices.CompactFunc(s.items, func(a, b T) bool {
		return key(a) == key(b)
	})
}
