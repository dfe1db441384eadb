package nonempty

import (
	"fmt"
	"slices"
)

// SplitOff removes the tail [i, Len()) and returns it as a plain slice,
// which may be empty when i == Len(). The head keeps indices [0, i).
// i == 0 is rejected with ErrEmpty, since it would leave the head empty;
// the sequence is unchanged. i > Len() panics.
//
// The returned tail is a plain slice, not a Seq: only the head keeps the
// non-empty guarantee.
func (s *Seq[T]) SplitOff(i int) ([]T, error) {
	if i < 0 || i > len(s.items) {
		panic(fmt.Sprintf("nonempty: SplitOff index %d out of range with length %d", i, len(s.items)))
	}
	if i == 0 {
		return nil, ErrEmpty
	}
	tail := slices.Clone(s.items[i:])
	s.items = slices.Delete(s.items, i, len(s.items))
	return tail, nil
}

// SplitOffFirst removes and returns the first element. On a singleton it
// fails with ErrEmpty and the sequence is unchanged; removing the sole
// element would break the guarantee.
func (s *Seq[T]) SplitOffFirst() (T, error) {
	if len(s.items) <= 1 {
		var zero T
		return zero, ErrEmpty
	}
	first := s.items[0]
	s.items = slices.Delete(s.items, 0, 1)
	return first, nil
}

// SplitOffLast removes and returns the last element, with the same
// singleton contract as SplitOffFirst.
func (s *Seq[T]) SplitOffLast() (T, error) {
	if len(s.items) <= 1 {
		var zero T
		return zero, ErrEmpty
	}
	last := len(s.items) - 1
	v := s.items[last]
	var zero T
	s.items[last] = zero
	s.items = s.items[:last]
	return v, nil
}
