// Package model defines the plain-data records of an incremental
// optimization model: the full Model snapshot, the ModelUpdate delta, and
// the Summary of identifiers/names accepted so far.
//
// All records are parallel-slice views: a collection is a strictly
// increasing []int64 of identifiers plus aligned value slices. Sparse
// vectors and matrices are (ids, values) and (row ids, column ids, values)
// triples over those identifier spaces. The wire/storage encoding of these
// records belongs to external collaborators; this package is the in-memory
// shape they decode into and the validate package consumes.
//
// Records here carry no behavior beyond the Summary fold:
//
//   - NewSummary(m) builds the snapshot of a freshly accepted full model.
//   - (*Summary).Apply(u) folds an ACCEPTED update into the snapshot —
//     deleted identifiers (and their names) leave, new ones enter, and the
//     identifier sequences stay strictly increasing.
//
// Apply assumes the update was validated against this very summary
// (validate.ModelUpdateAndSummary); feeding it an unvalidated update breaks
// the Summary's invariants and is a caller bug.
//
// Determinism & concurrency:
//   - All types are plain values; nothing locks, logs or allocates hidden
//     state. A Summary must not be read concurrently with Apply on the same
//     value — the caller owns that discipline.
package model
