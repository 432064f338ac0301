// SPDX-License-Identifier: MIT
// Package validate: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors — one per failure
// kind the validators can report. All validators MUST return these
// sentinels and tests MUST check them via errors.Is. No validator panics on
// user-triggered conditions.
//
// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "optmodel: ..." for consistency and easy
// grepping. Sentinels are never stringified with parameters at definition
// site; call sites attach context with fmt.Errorf("ctx: %w", ...), and the
// orchestrators stack further frames the same way, producing a dotted
// causal chain (field path + root cause) while errors.Is still matches.

package validate

import "errors"

var (
	// ErrNilRecord indicates a nil *Model, *ModelUpdate or *Summary argument.
	ErrNilRecord = errors.New("optmodel: nil record")

	// ErrInvalidValue indicates a NaN where a numeric value is required.
	// NaN is rejected unconditionally, whatever the infinity policy.
	ErrInvalidValue = errors.New("optmodel: invalid value (NaN)")

	// ErrInfinity indicates an infinite value where the domain forbids it
	// (e.g. +Inf in a lower bound, any infinity in a coefficient).
	ErrInfinity = errors.New("optmodel: disallowed infinity")

	// ErrLengthMismatch indicates parallel sequences of differing lengths
	// (ids vs values, or the three arrays of a sparse matrix).
	ErrLengthMismatch = errors.New("optmodel: length mismatch")

	// ErrIDOrder indicates an identifier sequence that is negative,
	// duplicated or not strictly increasing. Out-of-order input is
	// rejected, never sorted on the caller's behalf.
	ErrIDOrder = errors.New("optmodel: ids not non-negative and strictly increasing")

	// ErrDuplicateID indicates an identifier created twice: already present
	// in the snapshot, or both deleted and re-added within one update.
	ErrDuplicateID = errors.New("optmodel: duplicate id")

	// ErrUnknownID indicates a reference that resolves to nothing in the
	// relevant identifier view (collection, not-deleted, or final).
	ErrUnknownID = errors.New("optmodel: unknown id")

	// ErrLowerTriangle indicates a quadratic entry with row id > column id;
	// symmetric matrices store the upper triangle only.
	ErrLowerTriangle = errors.New("optmodel: lower-triangle entry in symmetric matrix")

	// ErrDuplicateName indicates a name reused within one batch or
	// colliding with a name already accepted in the snapshot.
	ErrDuplicateName = errors.New("optmodel: duplicate name")
)
