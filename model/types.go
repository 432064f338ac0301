// SPDX-License-Identifier: MIT
// Package model: record types shared by the validators and the caller.
//
// This file declares the sparse containers, the Variable / LinearConstraint
// collections, the Objective, the full Model, and the ModelUpdate delta.
// Invariants stated here are ENFORCED by the validate package, never
// assumed: a record fresh off the wire may violate any of them.

package model

// SparseVector is a partial assignment over an identifier space:
// Values[i] applies to the element identified by IDs[i].
//
// Well-formed when len(IDs) == len(Values) and IDs is strictly increasing
// with no negative entries.
type SparseVector struct {
	// IDs are the targeted identifiers, strictly increasing.
	IDs []int64

	// Values holds one value per entry of IDs.
	Values []float64
}

// SparseBoolVector is SparseVector with boolean payloads (integrality flags).
type SparseBoolVector struct {
	// IDs are the targeted identifiers, strictly increasing.
	IDs []int64

	// Values holds one flag per entry of IDs.
	Values []bool
}

// SparseMatrix is a partial two-dimensional assignment: entry i maps
// (RowIDs[i], ColumnIDs[i]) to Values[i].
//
// Well-formed when the three slices share one length and every identifier
// is non-negative. Symmetric matrices (quadratic objective terms) store the
// upper triangle only: RowIDs[i] <= ColumnIDs[i] for every entry.
type SparseMatrix struct {
	// RowIDs are the row identifiers of each entry.
	RowIDs []int64

	// ColumnIDs are the column identifiers of each entry.
	ColumnIDs []int64

	// Values holds the coefficient of each entry.
	Values []float64
}

// Variables is the decision-variable collection of a model.
//
// IDs is strictly increasing; LowerBounds, UpperBounds and Integers align
// with IDs. Lower bounds may be -Inf but never +Inf; upper bounds may be
// +Inf but never -Inf; NaN is never legal. Names may be empty (unnamed
// collection) or align with IDs.
type Variables struct {
	// IDs are the variable identifiers, strictly increasing.
	IDs []int64

	// LowerBounds holds one lower bound per variable (-Inf allowed).
	LowerBounds []float64

	// UpperBounds holds one upper bound per variable (+Inf allowed).
	UpperBounds []float64

	// Integers marks each variable as integral (true) or continuous.
	Integers []bool

	// Names holds one display name per variable; "" means unnamed.
	Names []string
}

// LinearConstraints is the linear-constraint collection of a model.
// Same shape and bound policy as Variables, minus integrality.
type LinearConstraints struct {
	// IDs are the constraint identifiers, strictly increasing.
	IDs []int64

	// LowerBounds holds one lower bound per constraint (-Inf allowed).
	LowerBounds []float64

	// UpperBounds holds one upper bound per constraint (+Inf allowed).
	UpperBounds []float64

	// Names holds one display name per constraint; "" means unnamed.
	Names []string
}

// Objective is the (possibly quadratic) objective of a model. All
// coefficients and the offset must be finite. QuadraticCoefficients is
// upper-triangular: the matrix is symmetric, and storing both triangles
// would be redundant and ambiguous.
type Objective struct {
	// Offset is the constant objective term.
	Offset float64

	// LinearCoefficients maps variable id -> linear coefficient.
	LinearCoefficients SparseVector

	// QuadraticCoefficients maps (variable id, variable id) -> coefficient,
	// upper triangle only (row id <= column id).
	QuadraticCoefficients SparseMatrix
}

// Model is a closed, self-referential snapshot of an optimization problem.
// Every variable id referenced by the Objective or the ConstraintMatrix
// must exist in Variables; every constraint id referenced by the
// ConstraintMatrix must exist in LinearConstraints.
type Model struct {
	// Variables is the decision-variable collection.
	Variables Variables

	// Objective is the objective function over Variables.
	Objective Objective

	// LinearConstraints is the linear-constraint collection.
	LinearConstraints LinearConstraints

	// ConstraintMatrix maps (constraint id, variable id) -> coefficient.
	ConstraintMatrix SparseMatrix
}

// VariableUpdates carries per-field overwrites for EXISTING variables,
// keyed by variable id. Targets must survive the update's deletions (the
// "not-deleted" view) but need not be newly created.
type VariableUpdates struct {
	// LowerBounds overwrites lower bounds (+Inf forbidden).
	LowerBounds SparseVector

	// UpperBounds overwrites upper bounds (-Inf forbidden).
	UpperBounds SparseVector

	// Integers overwrites integrality flags.
	Integers SparseBoolVector
}

// LinearConstraintUpdates carries per-field overwrites for EXISTING
// linear constraints, keyed by constraint id.
type LinearConstraintUpdates struct {
	// LowerBounds overwrites lower bounds (+Inf forbidden).
	LowerBounds SparseVector

	// UpperBounds overwrites upper bounds (-Inf forbidden).
	UpperBounds SparseVector
}

// ObjectiveUpdates carries objective overwrites. Referenced variable ids
// may legitimately be created by the same update (the "final" view).
type ObjectiveUpdates struct {
	// OffsetUpdate is the new constant term; must be finite.
	OffsetUpdate float64

	// LinearCoefficients overwrites linear terms, keyed by variable id.
	LinearCoefficients SparseVector

	// QuadraticCoefficients overwrites quadratic terms, upper triangle only.
	QuadraticCoefficients SparseMatrix
}

// ModelUpdate is a delta relative to a Summary: deletions, additions and
// field overwrites. A ModelUpdate is meaningless without the Summary it was
// produced against; validate.ModelUpdate checks it in isolation,
// validate.ModelUpdateAndSummary checks it in context.
type ModelUpdate struct {
	// DeletedVariableIDs lists variables to remove, strictly increasing.
	DeletedVariableIDs []int64

	// DeletedLinearConstraintIDs lists constraints to remove, strictly increasing.
	DeletedLinearConstraintIDs []int64

	// VariableUpdates overwrites fields of surviving variables.
	VariableUpdates VariableUpdates

	// LinearConstraintUpdates overwrites fields of surviving constraints.
	LinearConstraintUpdates LinearConstraintUpdates

	// NewVariables adds variables; ids must be unused in the Summary.
	NewVariables Variables

	// NewLinearConstraints adds constraints; ids must be unused in the Summary.
	NewLinearConstraints LinearConstraints

	// ObjectiveUpdates overwrites objective terms.
	ObjectiveUpdates ObjectiveUpdates

	// ConstraintMatrixUpdates overwrites constraint-matrix entries.
	ConstraintMatrixUpdates SparseMatrix
}
