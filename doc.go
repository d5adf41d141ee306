// Package netcore is an in-memory toolkit for correlation-based feature
// reduction on small data sets: it keeps a compact, representative subset of
// features and discards the ones that are redundant with them.
//
// 🚀 What does it do?
//
//	Given a table of observations with named numeric columns, it
//		• computes the pairwise Pearson correlation matrix
//		• drops features whose correlation is undefined (e.g. constant columns)
//		• links every pair of features with |corr| ≥ threshold
//		• greedily fixes the most connected feature and discards its neighbors,
//		  breaking ties by look-ahead degree, then mean |corr|, then column order
//
// ✨ Why netcore?
//
//   - Deterministic – same matrix and threshold, same reduced vector
//   - Explainable – every selection carries the tie-break round that decided it
//   - Fail-fast – malformed matrices and bad thresholds are rejected up front
//
// Everything is organized under these packages:
//
//	core/     — thread-safe undirected weighted Graph with vertex metadata
//	matrix/   — Dense, labeled correlation tables, sanitization, Pearson (gonum)
//	bfs/      — breadth-first search and correlation clusters
//	netcore/  — graph building, tie-break cascade, greedy reducer
//	dataset/  — CSV/TSV ingestion of column-named numeric tables
//	report/   — text summary, JSON document, correlation heatmap (gonum/plot)
//	cmd/netcore — batch command-line driver with optional HCL configuration
//
// Quick example:
//
//	    dose ─── mic
//	      \      /
//	       zone          ph
//
//	with threshold 0.6 reduces {ph, dose, mic, zone} to [ph dose].
//
//	go install github.com/katalvlaran/netcore/cmd/netcore@latest
package netcore
