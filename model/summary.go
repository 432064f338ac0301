// SPDX-License-Identifier: MIT
// Package model: Summary — the caller-owned snapshot of accepted history.
//
// A Summary records which identifiers (and names) have been accepted so far
// for each collection. The validate package treats it as a read-only input;
// folding an accepted ModelUpdate into the next Summary happens here, via
// Apply, strictly AFTER a successful validation.

package model

// Summary is the snapshot of identifiers and names accepted so far.
// Identifier slices are strictly increasing; name maps key accepted ids to
// their non-empty names (unnamed elements are absent).
type Summary struct {
	// VariableIDs are all accepted variable identifiers, strictly increasing.
	VariableIDs []int64

	// VariableNames maps accepted variable ids to their non-empty names.
	VariableNames map[int64]string

	// LinearConstraintIDs are all accepted constraint identifiers, strictly increasing.
	LinearConstraintIDs []int64

	// LinearConstraintNames maps accepted constraint ids to their non-empty names.
	LinearConstraintNames map[int64]string
}

// NewSummary builds the Summary of a freshly accepted full model m.
// Slices are copied, so later mutation of m does not alias the snapshot.
// Time: O(V + C). Space: O(V + C).
func NewSummary(m *Model) *Summary {
	s := &Summary{
		VariableIDs:           append([]int64(nil), m.Variables.IDs...),
		VariableNames:         namesByID(m.Variables.IDs, m.Variables.Names),
		LinearConstraintIDs:   append([]int64(nil), m.LinearConstraints.IDs...),
		LinearConstraintNames: namesByID(m.LinearConstraints.IDs, m.LinearConstraints.Names),
	}

	return s
}

// NewEmptySummary builds the Summary of "nothing accepted yet" — the
// baseline for a first ModelUpdate that creates the model incrementally.
func NewEmptySummary() *Summary {
	return &Summary{
		VariableNames:         make(map[int64]string),
		LinearConstraintNames: make(map[int64]string),
	}
}

// Apply folds the ACCEPTED update u into the summary: deleted identifiers
// (and their names) leave, newly added ones enter, and both identifier
// sequences remain strictly increasing.
//
// Apply assumes u passed validate.ModelUpdateAndSummary against this very
// summary; it performs no checking of its own.
// Time: O(V + C + |u|). Space: O(V + C).
func (s *Summary) Apply(u *ModelUpdate) {
	// 1) Variables: (accepted − deleted) ∪ new, both steps linear merges.
	s.VariableIDs = mergeSorted(
		subtractSorted(s.VariableIDs, u.DeletedVariableIDs),
		u.NewVariables.IDs,
	)

	// 2) Linear constraints: same fold.
	s.LinearConstraintIDs = mergeSorted(
		subtractSorted(s.LinearConstraintIDs, u.DeletedLinearConstraintIDs),
		u.NewLinearConstraints.IDs,
	)

	// 3) Names follow their identifiers out and in.
	if s.VariableNames == nil {
		s.VariableNames = make(map[int64]string)
	}
	if s.LinearConstraintNames == nil {
		s.LinearConstraintNames = make(map[int64]string)
	}
	var id int64
	for _, id = range u.DeletedVariableIDs {
		delete(s.VariableNames, id)
	}
	for _, id = range u.DeletedLinearConstraintIDs {
		delete(s.LinearConstraintNames, id)
	}
	insertNames(s.VariableNames, u.NewVariables.IDs, u.NewVariables.Names)
	insertNames(s.LinearConstraintNames, u.NewLinearConstraints.IDs, u.NewLinearConstraints.Names)
}

// namesByID builds an id->name map from an aligned names slice, skipping
// empty names. An empty names slice yields an empty (non-nil) map.
func namesByID(ids []int64, names []string) map[int64]string {
	out := make(map[int64]string, len(names))
	insertNames(out, ids, names)

	return out
}

// insertNames records each non-empty name under its identifier.
// The names slice may be empty (unnamed batch) or aligned with ids.
func insertNames(dst map[int64]string, ids []int64, names []string) {
	for i, name := range names {
		if name == "" {
			continue
		}
		dst[ids[i]] = name
	}
}

// subtractSorted returns a − b for strictly increasing slices, as a fresh
// slice. Elements of b not present in a are simply skipped.
func subtractSorted(a, b []int64) []int64 {
	out := make([]int64, 0, len(a))
	var j int
	for _, v := range a {
		for j < len(b) && b[j] < v {
			j++
		}
		if j < len(b) && b[j] == v {
			j++ // deleted: drop v
			continue
		}
		out = append(out, v)
	}

	return out
}

// mergeSorted merges two disjoint strictly increasing slices into one
// strictly increasing slice.
func mergeSorted(a, b []int64) []int64 {
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
