package nonempty

import "errors"

// ErrEmpty is returned by every fallible constructor and mutator whose
// requested operation would produce, or start from, a sequence with zero
// elements. It carries no payload; the caller already knows which input
// or operation was rejected. Test with errors.Is.
//
// When a mutator returns ErrEmpty the sequence is left valid and
// unchanged.
var ErrEmpty = errors.New("sequence would have zero elements")
