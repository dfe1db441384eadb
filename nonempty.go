package nonempty

import (
	"fmt"
	"iter"
	"slices"
)

// Seq is a growable, ordered sequence of T holding at least one element.
//
// The zero value of Seq does not satisfy the guarantee and must not be
// used; obtain instances through New, WithCapacity, TryFromSlice,
// FromSliceCopy, Repeat, or by deserializing a non-empty list form.
//
// Seq is not safe for concurrent mutation.
type Seq[T any] struct {
	items []T
}

// New returns a sequence of first followed by rest, in order.
// It always succeeds: the length is 1+len(rest).
func New[T any](first T, rest ...T) Seq[T] {
	items := make([]T, 0, 1+len(rest))
	items = append(items, first)
	items = append(items, rest...)
	return Seq[T]{items: items}
}

// WithCapacity returns a sequence holding only first, with backing
// capacity for at least capacity elements.
func WithCapacity[T any](first T, capacity int) Seq[T] {
	items := make([]T, 0, max(capacity, 1))
	items = append(items, first)
	return Seq[T]{items: items}
}

// TryFromSlice wraps items without copying. It fails with ErrEmpty iff
// items is empty. On success the slice is owned by the returned sequence;
// the caller must not retain or mutate it.
func TryFromSlice[T any](items []T) (Seq[T], error) {
	if len(items) == 0 {
		return Seq[T]{}, ErrEmpty
	}
	return Seq[T]{items: items}, nil
}

// FromSliceCopy is like TryFromSlice but copies items, leaving the
// caller's slice untouched.
func FromSliceCopy[T any](items []T) (Seq[T], error) {
	if len(items) == 0 {
		return Seq[T]{}, ErrEmpty
	}
	return Seq[T]{items: slices.Clone(items)}, nil
}

// Repeat returns a sequence of n copies of element.
// It fails with ErrEmpty when n < 1.
func Repeat[T any](element T, n int) (Seq[T], error) {
	if n < 1 {
		return Seq[T]{}, ErrEmpty
	}
	items := make([]T, n)
	for i := range items {
		items[i] = element
	}
	return Seq[T]{items: items}, nil
}

// Len returns the number of elements. It is always >= 1 for a sequence
// obtained from a constructor.
func (s *Seq[T]) Len() int {
	return len(s.items)
}

// Cap returns the capacity of the backing store.
func (s *Seq[T]) Cap() int {
	return cap(s.items)
}

// First returns the first element. The guarantee makes this total: no
// "ok" result is needed.
func (s *Seq[T]) First() T {
	return s.items[0]
}

// Last returns the last element.
func (s *Seq[T]) Last() T {
	return s.items[len(s.items)-1]
}

// At returns the element at index i. It panics if i is out of range,
// matching slice indexing.
func (s *Seq[T]) At(i int) T {
	return s.items[i]
}

// Set replaces the element at index i. It panics if i is out of range.
func (s *Seq[T]) Set(i int, v T) {
	s.items[i] = v
}

// Slice returns the backing slice as a shared view. Callers may read and
// overwrite elements through it but must not grow or reslice it; the
// length of the sequence cannot be changed through the view.
func (s *Seq[T]) Slice() []T {
	return s.items
}

// IntoSlice unwraps the sequence into a plain slice, discarding the
// non-empty guarantee. The sequence is consumed: after IntoSlice it is
// reset to the (invalid) zero value and must not be used again.
func (s *Seq[T]) IntoSlice() []T {
	out := s.items
	s.items = nil
	return out
}

// Clone returns a deep copy of the sequence's structure. Elements are
// copied with plain assignment.
func (s *Seq[T]) Clone() Seq[T] {
	return Seq[T]{items: slices.Clone(s.items)}
}

// Values returns an iterator over the elements, in order.
func (s *Seq[T]) Values() iter.Seq[T] {
	return slices.Values(s.items)
}

// All returns an iterator over index-element pairs, in order.
func (s *Seq[T]) All() iter.Seq2[int, T] {
	return slices.All(s.items)
}

// String implements fmt.Stringer using the slice formatting of the
// elements.
func (s Seq[T]) String() string {
	return fmt.Sprintf("%v", s.items)
}
