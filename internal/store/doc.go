// Package store persists named non-empty sequences in SQLite.
//
// Sequences are stored as immutable revisions: every Save writes a new
// revision (a time-ordered UUIDv7 token) with its elements in positional
// order, and Load returns the latest revision for a name. History is
// never rewritten, so a load can always be correlated with the revision
// token that produced it.
//
// The non-empty guarantee is enforced at both boundaries: Save rejects
// zero-element input, and Load re-validates what it reads, reporting a
// revision with no element rows as corruption rather than returning an
// empty sequence.
package store
