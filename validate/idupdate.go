// SPDX-License-Identifier: MIT
// Package validate: identifier-lifecycle reconciliation.
//
// An IDUpdateValidator reconciles one collection's proposed deletion and
// addition sets against the snapshot of identifiers accepted so far, and
// derives the two identifier views every downstream reference check needs:
//
//   - not-deleted — snapshot − deleted. Field UPDATES (bounds, integrality)
//     must target ids that still exist after deletion but need not be new.
//   - final — snapshot − deleted + new. Objective and matrix REFERENCES may
//     legitimately point at ids created by the same update.
//
// Both views are ephemeral: computed once per validation call inside
// IsValid, owned by this value, never persisted. Folding an accepted update
// into the next snapshot is model.(*Summary).Apply, strictly afterwards.

package validate

import "fmt"

// IDUpdateValidator reconciles deletions and additions for ONE collection
// (variables, or linear constraints) against its snapshot id sequence.
// Construct with NewIDUpdateValidator, call IsValid exactly once, then use
// the Check* queries; the value is immutable afterwards.
type IDUpdateValidator struct {
	snapshot []int64 // ids accepted so far, strictly increasing
	deleted  []int64 // proposed deletions
	added    []int64 // proposed additions

	notDeleted []int64 // snapshot − deleted, built by IsValid
	final      []int64 // notDeleted ∪ added, built by IsValid
}

// NewIDUpdateValidator captures the three id sequences of one collection's
// lifecycle delta. No checking happens here; call IsValid next.
func NewIDUpdateValidator(snapshotIDs, deletedIDs, newIDs []int64) *IDUpdateValidator {
	return &IDUpdateValidator{snapshot: snapshotIDs, deleted: deletedIDs, added: newIDs}
}

// IsValid proves the lifecycle delta well-formed and materializes the
// not-deleted and final views:
//
//  1. deleted and new sequences are non-negative and strictly increasing
//     (ErrIDOrder);
//  2. every deleted id exists in the snapshot (ErrUnknownID) — nothing
//     deletes what was never accepted;
//  3. no new id is already in the snapshot, and no id is both deleted and
//     re-added within this update (ErrDuplicateID) — delete-then-recreate
//     must span two updates.
//
// Time: O(snapshot + deleted + new). Space: O(snapshot + new) for the views.
func (v *IDUpdateValidator) IsValid() error {
	// 1) Both delta sequences must be well-formed member sequences.
	if err := CheckIDsRangeAndStrictlyIncreasing(v.deleted); err != nil {
		return fmt.Errorf("deleted ids: %w", err)
	}
	if err := CheckIDsRangeAndStrictlyIncreasing(v.added); err != nil {
		return fmt.Errorf("new ids: %w", err)
	}

	// 2) Deletions must resolve: deleted ⊆ snapshot, by merge-join.
	if err := CheckSortedIDsSubset(v.deleted, v.snapshot); err != nil {
		return fmt.Errorf("deleted id not in snapshot: %w", err)
	}

	// 3) Additions must be fresh: disjoint from the snapshot and from the
	//    deletion set, both by merge-join.
	if id, clash := firstCommonSorted(v.added, v.snapshot); clash {
		return fmt.Errorf("%w: new id %d already in snapshot", ErrDuplicateID, id)
	}
	if id, clash := firstCommonSorted(v.added, v.deleted); clash {
		return fmt.Errorf("%w: id %d both deleted and re-added", ErrDuplicateID, id)
	}

	// 4) Materialize the two derived views; both stay strictly increasing
	//    because the merged inputs are sorted and disjoint.
	v.notDeleted = differenceSorted(v.snapshot, v.deleted)
	v.final = unionSorted(v.notDeleted, v.added)

	return nil
}

// CheckSortedIDsSubsetOfNotDeleted validates ids ⊆ (snapshot − deleted) by
// merge-join; ids must already be strictly increasing. The first id outside
// the view fails with ErrUnknownID. Call after a successful IsValid.
// Time: O(ids + snapshot).
func (v *IDUpdateValidator) CheckSortedIDsSubsetOfNotDeleted(ids []int64) error {
	return CheckSortedIDsSubset(ids, v.notDeleted)
}

// CheckSortedIDsSubsetOfFinal validates ids ⊆ (snapshot − deleted + new) by
// merge-join; ids must already be sorted ascending (repeats allowed — row
// axes of matrices repeat row ids). Call after a successful IsValid.
// Time: O(ids + snapshot + new).
func (v *IDUpdateValidator) CheckSortedIDsSubsetOfFinal(ids []int64) error {
	return CheckSortedIDsSubset(ids, v.final)
}

// CheckIDsSubsetOfFinal validates ids ⊆ (snapshot − deleted + new) without
// assuming any order of ids — the column axis of a sparse matrix carries no
// ordering guarantee relative to its rows — by binary search per id.
// Call after a successful IsValid. Time: O(ids · log(final)).
func (v *IDUpdateValidator) CheckIDsSubsetOfFinal(ids []int64) error {
	for _, id := range ids {
		if !sortedContains(v.final, id) {
			return fmt.Errorf("%w: id %d", ErrUnknownID, id)
		}
	}

	return nil
}

// firstCommonSorted returns the first element present in both strictly
// increasing slices, if any.
func firstCommonSorted(a, b []int64) (int64, bool) {
	var i, j int
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			return a[i], true
		}
	}

	return 0, false
}

// differenceSorted returns a − b for strictly increasing slices, b ⊆ a.
func differenceSorted(a, b []int64) []int64 {
	out := make([]int64, 0, len(a))
	var j int
	for _, x := range a {
		if j < len(b) && b[j] == x {
			j++
			continue
		}
		out = append(out, x)
	}

	return out
}

// unionSorted merges two disjoint strictly increasing slices.
func unionSorted(a, b []int64) []int64 {
	out := make([]int64, 0, len(a)+len(b))
	var i, j int
	for i < len(a) && j < len(b) {
		if a[i] < b[j] {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return out
}
