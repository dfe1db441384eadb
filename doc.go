// Package nonempty provides Seq, a growable sequence that is guaranteed to
// hold at least one element at every observable point.
//
// APIs that logically require "one or more" values (a list of server
// addresses, a non-empty batch) can accept or return a Seq instead of a
// plain slice plus an ad-hoc emptiness check. First, Last and Len never
// need an "ok" result because the guarantee makes them total.
//
// The backing slice is private. Every mutator that could drive the length
// to zero is re-specified under the guarantee:
//
//   - Growth operations (Push, Insert, Append, InsertSlice) always succeed.
//   - Pop, Remove, SwapRemove, SplitOffFirst and SplitOffLast return
//     ErrEmpty and leave the sequence unchanged when they would remove the
//     sole element.
//   - SplitOff(0), a full-range Drain, a zero-target Resize and a
//     keep-nothing TryRetain are rejected with ErrEmpty, also leaving the
//     sequence unchanged.
//   - Truncate clamps a target of zero to one instead of failing; this
//     mirrors the surprising but long-standing behavior of the interface
//     this package is modeled on and is pinned by tests.
//   - Dedup and its variants never fail: at least one run always survives.
//
// Out-of-bounds indexes and invalid ranges are programming errors and
// panic, exactly as they do on a plain slice. Only the would-become-empty
// cases are reported as recoverable errors.
//
// Seq serializes (JSON and YAML) as a plain list of its elements with no
// wrapper metadata. Deserialization re-validates the guarantee and fails
// on an empty list rather than constructing an invalid value.
//
// Seq has value semantics and no internal synchronization. Concurrent
// readers are safe under the usual shared-immutable discipline; concurrent
// mutation requires external locking.
package nonempty
