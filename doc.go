// Package optmodel is the consistency-enforcement core for mutable
// mathematical-optimization models: decision variables, linear/quadratic
// objective terms and linear constraints, all addressed by stable integer
// identifiers and mutated incrementally over time.
//
// 🚀 What is optmodel?
//
//	A small, deterministic library that proves a model — or a delta applied
//	to a previously accepted model — internally consistent before a solver
//	ever sees it:
//		• Well-formed identifier sequences (strictly increasing, non-negative)
//		• Legal numeric domains (no NaN, infinities only where bounds allow)
//		• Structurally valid sparse vectors and matrices
//		• Every cross-reference resolved against the accumulated history
//
// ✨ Why choose optmodel?
//
//   - Pure decision functions – accept or reject with a causal diagnostic;
//     nothing is ever repaired, sorted or coerced on the caller's behalf
//   - Near-linear cost – all cross-checks run as sorted-merge joins over
//     strictly increasing identifier sequences
//   - Zero shared state – every call is reentrant; snapshots are read-only
//     inputs owned by the caller
//
// Everything is organized under two subpackages:
//
//	model/    — the plain-data records (Model, ModelUpdate, Summary) and the
//	            snapshot fold that turns an accepted update into history
//	validate/ — sentinel error kinds, primitive validators (scalar, ids,
//	            sparse vector/matrix, names), the identifier-lifecycle
//	            reconciler, and the three top-level entry points
//
// Typical flow:
//
//	if err := validate.Model(&m, true); err != nil { ... }      // full model
//	sum := model.NewSummary(&m)                                 // fold history
//	if err := validate.ModelUpdateAndSummary(&u, sum, true); err != nil { ... }
//	sum.Apply(&u)                                               // accept delta
//
//	go get github.com/katalvlaran/optmodel
package optmodel
