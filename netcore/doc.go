// Package netcore implements greedy, correlation-graph based feature reduction.
//
// Given a pairwise correlation matrix over named features and a threshold
// t ∈ [0, 1], netcore builds an undirected graph with one vertex per feature
// and an edge {a, b} whenever |corr(a, b)| ≥ t, then consumes the graph:
//
//  1. every degree-0 vertex is fixed (recorded) on its own;
//  2. among the vertices of maximum degree,
//  3. keep those whose removal together with their neighbors leaves the
//     largest maximum degree behind (SimulateRemainingDegree),
//  4. then those with the largest mean |correlation| to their neighbors,
//  5. then the first in canonical (column) order;
//
// the pick is recorded and removed together with all of its neighbors, which
// are treated as redundant and never recorded. The loop repeats until the graph
// is empty. The recorded features, in order, form the reduced vector.
//
// Entry points:
//
//	Run(raw, t, opts...)              ([]string, error)   // reduced vector only
//	Reduce(raw, t, opts...)           (*Result, error)    // with per-step trace
//	ReduceValidated(v, t, opts...)    (*Result, error)    // skip sanitization
//
// Components, usable on their own:
//
//	BuildGraph(v, t)                  // matrix → *core.Graph
//	MaxDegreeCandidates(g, order)     // round one
//	SimulateRemainingDegree(g, id)    // round two score, no mutation
//	MeanAbsCorrelation(g, id)         // round three score
//	KeepMax(cands, scores)            // candidate filtering
//	SelectCandidate(g, order)         // full cascade
//	Fix(g, id)                        // remove id and its neighbors
//
// Options:
//
//   - WithContext(ctx)        cancellation between iterations.
//   - WithLogger(l)           Debug records per iteration; silent by default.
//   - WithOnStep(fn)          hook after each recorded step; error aborts.
//   - WithMatrixOptions(...)  forwarded to matrix.Build.
//
// Errors:
//
//   - ErrThresholdOutOfRange  threshold NaN or outside [0, 1]; checked first.
//   - matrix.Err*             malformed matrix (label mismatch, residual NaN, ...).
//   - ErrInvariant            internal consistency violation (a defect).
//
// A run either completes or returns an error with no partial result. Each run
// owns its graph; concurrent runs on distinct inputs are independent.
package netcore
