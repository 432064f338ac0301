// Package validate proves optimization-model records internally consistent
// and consistent with accepted history, before a solver consumes them.
//
// Three entry points cover the whole surface:
//
//   - Model(m, checkNames) — accept/reject a complete, self-contained model.
//   - ModelUpdate(u) — accept/reject a delta in isolation (no history).
//   - ModelUpdateAndSummary(u, s, checkNames) — accept/reject a delta in the
//     context of the model.Summary it was produced against.
//
// Each is composed from primitive validators exported for reuse:
// CheckScalar (numeric domains), CheckIDsRangeAndStrictlyIncreasing and
// CheckSortedIDsSubset (identifier sequences), CheckIDsAndValues /
// CheckMatrix (sparse containers), CheckNameVector / CheckNewNames (name
// uniqueness), and the IDUpdateValidator that reconciles deletions and
// additions against a snapshot.
//
// Error policy (strict):
//   - Every failure wraps exactly one sentinel kind from errors.go; branch
//     with errors.Is, never by message.
//   - Orchestrators decorate sub-failures with the field under validation,
//     so a diagnostic reads as a causal chain, e.g.
//     "Model.Objective is invalid: linear objective coefficients bad:
//     optmodel: ids not non-negative and strictly increasing: ...".
//   - Fail-fast: validation stops at the first violation; nothing is
//     repaired, sorted or partially applied.
//
// Determinism & Performance:
//   - All functions are pure and synchronous; the same input always yields
//     the same decision and the same diagnostic, so calls may run
//     concurrently over independent records without locking.
//   - Cross-reference checks run as linear merge-joins over strictly
//     increasing identifier sequences; the only non-merge path is the
//     order-free quadratic/matrix column check, which binary-searches the
//     final view. Total cost is near-linear in ids + nonzero entries.
package validate
