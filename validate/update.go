// SPDX-License-Identifier: MIT
// Package validate: model-update orchestrators.
//
// ModelUpdate accepts or rejects a delta in isolation — every check that
// needs no history. ModelUpdateAndSummary layers the historical checks on
// top: it reconciles the delta's deletions/additions against the caller's
// model.Summary via one IDUpdateValidator per collection, then resolves
// every cross-reference against the correct derived view (field updates →
// not-deleted; objective/matrix references → final) and, when active,
// checks new names against accepted history.

package validate

import (
	"fmt"

	"github.com/katalvlaran/optmodel/model"
)

// ModelUpdate validates a delta in isolation, with no snapshot: deletion
// lists are well-formed member sequences, field-update vectors are
// well-formed sparse vectors under the bound infinity policy, new
// collections are valid standalone (names uniqueness is deferred to the
// snapshot-aware path, which owns the baseline), the objective update is
// finite and upper-triangular, and the constraint-matrix update is a valid
// general sparse matrix. Cross-references against history are NOT checked
// here — that is ModelUpdateAndSummary.
// Time: near-linear in the delta size.
func ModelUpdate(u *model.ModelUpdate) error {
	if u == nil {
		return fmt.Errorf("%w: ModelUpdate", ErrNilRecord)
	}

	// 1) Deletion sets are member sequences.
	if err := CheckIDsRangeAndStrictlyIncreasing(u.DeletedLinearConstraintIDs); err != nil {
		return fmt.Errorf("ModelUpdate.DeletedLinearConstraintIDs invalid: %w", err)
	}
	if err := CheckIDsRangeAndStrictlyIncreasing(u.DeletedVariableIDs); err != nil {
		return fmt.Errorf("ModelUpdate.DeletedVariableIDs invalid: %w", err)
	}

	// 2) Field overwrites are well-formed sparse vectors.
	if err := variableUpdatesValid(u.VariableUpdates); err != nil {
		return fmt.Errorf("ModelUpdate.VariableUpdates invalid: %w", err)
	}
	if err := linearConstraintUpdatesValid(u.LinearConstraintUpdates); err != nil {
		return fmt.Errorf("ModelUpdate.LinearConstraintUpdates invalid: %w", err)
	}

	// 3) Additions are valid standalone collections.
	if err := variablesValid(u.NewVariables, false); err != nil {
		return fmt.Errorf("ModelUpdate.NewVariables invalid: %w", err)
	}
	if err := linearConstraintsValid(u.NewLinearConstraints, false); err != nil {
		return fmt.Errorf("ModelUpdate.NewLinearConstraints invalid: %w", err)
	}

	// 4) Objective and constraint-matrix overwrites are structurally valid.
	if err := objectiveUpdatesValid(u.ObjectiveUpdates); err != nil {
		return fmt.Errorf("ModelUpdate.ObjectiveUpdates invalid: %w", err)
	}
	if err := CheckMatrix(u.ConstraintMatrixUpdates, false); err != nil {
		return fmt.Errorf("ModelUpdate.ConstraintMatrixUpdates invalid: %w", err)
	}

	return nil
}

// ModelUpdateAndSummary validates a delta in the context of the Summary it
// was produced against: first ModelUpdate(u), then the identifier
// lifecycle per collection, then every cross-reference against the correct
// derived view, and finally — when checkNames is set and new names are
// present — new names against the snapshot's accepted names, per
// collection independently. The caller folds an accepted delta into the
// next snapshot with s.Apply(u), never this function.
// Time: near-linear in delta + snapshot size.
func ModelUpdateAndSummary(u *model.ModelUpdate, s *model.Summary, checkNames bool) error {
	if s == nil {
		return fmt.Errorf("%w: Summary", ErrNilRecord)
	}

	// 1) Everything that needs no history.
	if err := ModelUpdate(u); err != nil {
		return err
	}

	// 2) Reconcile the identifier lifecycle of each collection.
	varIDs := NewIDUpdateValidator(s.VariableIDs, u.DeletedVariableIDs, u.NewVariables.IDs)
	if err := varIDs.IsValid(); err != nil {
		return fmt.Errorf("invalid new or deleted variable id: %w", err)
	}
	conIDs := NewIDUpdateValidator(s.LinearConstraintIDs, u.DeletedLinearConstraintIDs, u.NewLinearConstraints.IDs)
	if err := conIDs.IsValid(); err != nil {
		return fmt.Errorf("invalid new or deleted linear constraint id: %w", err)
	}

	// 3) Field updates target ids that survive deletion (not-deleted view).
	if err := variableUpdatesValidForState(u.VariableUpdates, varIDs); err != nil {
		return fmt.Errorf("invalid variable update: %w", err)
	}
	if err := linearConstraintUpdatesValidForState(u.LinearConstraintUpdates, conIDs); err != nil {
		return fmt.Errorf("invalid linear constraint update: %w", err)
	}

	// 4) Objective and matrix references may target ids created by this
	//    very update (final view).
	if err := objectiveUpdatesValidForState(u.ObjectiveUpdates, varIDs); err != nil {
		return fmt.Errorf("invalid objective update: %w", err)
	}
	if err := constraintMatrixUpdatesValidForState(u.ConstraintMatrixUpdates, conIDs, varIDs); err != nil {
		return fmt.Errorf("invalid constraint matrix update: %w", err)
	}

	// 5) New names must not collide with accepted history.
	if checkNames && len(u.NewVariables.Names) > 0 {
		if err := CheckNewNames(s.VariableNames, u.NewVariables.IDs, u.NewVariables.Names); err != nil {
			return fmt.Errorf("bad new variable names: %w", err)
		}
	}
	if checkNames && len(u.NewLinearConstraints.Names) > 0 {
		if err := CheckNewNames(s.LinearConstraintNames, u.NewLinearConstraints.IDs, u.NewLinearConstraints.Names); err != nil {
			return fmt.Errorf("bad new linear constraint names: %w", err)
		}
	}

	return nil
}

// variableUpdatesValid validates the variable field-overwrite vectors
// standalone, under the bound infinity policy.
func variableUpdatesValid(vu model.VariableUpdates) error {
	if err := CheckIDsAndValues(vu.LowerBounds, false, true); err != nil {
		return fmt.Errorf("bad lower bounds: %w", err)
	}
	if err := CheckIDsAndValues(vu.UpperBounds, true, false); err != nil {
		return fmt.Errorf("bad upper bounds: %w", err)
	}
	if err := CheckIDsAndBools(vu.Integers); err != nil {
		return fmt.Errorf("bad integers: %w", err)
	}

	return nil
}

// variableUpdatesValidForState resolves every variable field-overwrite id
// against the not-deleted view: the target must still exist after
// deletion, though it need not be newly created.
func variableUpdatesValidForState(vu model.VariableUpdates, ids *IDUpdateValidator) error {
	if err := ids.CheckSortedIDsSubsetOfNotDeleted(vu.LowerBounds.IDs); err != nil {
		return fmt.Errorf("lower bound update on invalid variable id: %w", err)
	}
	if err := ids.CheckSortedIDsSubsetOfNotDeleted(vu.UpperBounds.IDs); err != nil {
		return fmt.Errorf("upper bound update on invalid variable id: %w", err)
	}
	if err := ids.CheckSortedIDsSubsetOfNotDeleted(vu.Integers.IDs); err != nil {
		return fmt.Errorf("integer update on invalid variable id: %w", err)
	}

	return nil
}

// linearConstraintUpdatesValid validates the constraint field-overwrite
// vectors standalone, under the bound infinity policy.
func linearConstraintUpdatesValid(cu model.LinearConstraintUpdates) error {
	if err := CheckIDsAndValues(cu.LowerBounds, false, true); err != nil {
		return fmt.Errorf("bad lower bounds: %w", err)
	}
	if err := CheckIDsAndValues(cu.UpperBounds, true, false); err != nil {
		return fmt.Errorf("bad upper bounds: %w", err)
	}

	return nil
}

// linearConstraintUpdatesValidForState resolves every constraint
// field-overwrite id against the not-deleted view.
func linearConstraintUpdatesValidForState(cu model.LinearConstraintUpdates, ids *IDUpdateValidator) error {
	if err := ids.CheckSortedIDsSubsetOfNotDeleted(cu.LowerBounds.IDs); err != nil {
		return fmt.Errorf("lower bound update on invalid linear constraint id: %w", err)
	}
	if err := ids.CheckSortedIDsSubsetOfNotDeleted(cu.UpperBounds.IDs); err != nil {
		return fmt.Errorf("upper bound update on invalid linear constraint id: %w", err)
	}

	return nil
}

// objectiveUpdatesValid validates the objective overwrites standalone:
// finite offset, finite linear coefficients, upper-triangular quadratic
// storage. Id resolution belongs to the ForState variant.
func objectiveUpdatesValid(ou model.ObjectiveUpdates) error {
	if err := CheckFiniteScalar(ou.OffsetUpdate); err != nil {
		return fmt.Errorf("offset update invalid: %w", err)
	}
	if err := CheckIDsAndValues(ou.LinearCoefficients, false, false); err != nil {
		return fmt.Errorf("linear objective coefficients bad: %w", err)
	}
	if err := CheckMatrix(ou.QuadraticCoefficients, true); err != nil {
		return fmt.Errorf("quadratic objective coefficients bad: %w", err)
	}

	return nil
}

// objectiveUpdatesValidForState resolves objective overwrite ids against
// the final view. Linear ids and quadratic row ids arrive sorted and go
// through the merge-join; quadratic column ids carry no ordering guarantee
// relative to the rows and use the order-free membership check.
func objectiveUpdatesValidForState(ou model.ObjectiveUpdates, ids *IDUpdateValidator) error {
	if err := ids.CheckSortedIDsSubsetOfFinal(ou.LinearCoefficients.IDs); err != nil {
		return fmt.Errorf("linear coefficient id not found in variable ids: %w", err)
	}
	if err := ids.CheckSortedIDsSubsetOfFinal(ou.QuadraticCoefficients.RowIDs); err != nil {
		return fmt.Errorf("quadratic coefficient row id bad: %w", err)
	}
	if err := ids.CheckIDsSubsetOfFinal(ou.QuadraticCoefficients.ColumnIDs); err != nil {
		return fmt.Errorf("quadratic coefficient column id bad: %w", err)
	}

	return nil
}

// constraintMatrixUpdatesValidForState resolves constraint-matrix
// overwrite entries: row ids against the constraint final view (sorted),
// column ids against the variable final view (order-free).
func constraintMatrixUpdatesValidForState(m model.SparseMatrix, conIDs, varIDs *IDUpdateValidator) error {
	if err := conIDs.CheckSortedIDsSubsetOfFinal(m.RowIDs); err != nil {
		return fmt.Errorf("unknown linear constraint id: %w", err)
	}
	if err := varIDs.CheckIDsSubsetOfFinal(m.ColumnIDs); err != nil {
		return fmt.Errorf("unknown variable id: %w", err)
	}

	return nil
}
