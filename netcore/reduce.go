// SPDX-License-Identifier: MIT

package netcore

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/netcore/bfs"
	"github.com/katalvlaran/netcore/core"
	"github.com/katalvlaran/netcore/matrix"
)

// reducer owns the graph for the whole run and collects the result.
type reducer struct {
	graph *core.Graph // exclusively mutated by this run
	order []string    // canonical enumeration: column order of the matrix
	opts  Options
	log   *slog.Logger
	res   *Result
}

// Run is the programmatic entry point: it sanitizes raw, builds the graph at
// threshold and returns the reduced feature vector.
func Run(raw *matrix.Labeled, threshold float64, opts ...Option) ([]string, error) {
	res, err := Reduce(raw, threshold, opts...)
	if err != nil {
		return nil, err
	}

	return res.Features, nil
}

// Reduce is Run with the full trace.
func Reduce(raw *matrix.Labeled, threshold float64, opts ...Option) (*Result, error) {
	if raw == nil {
		return nil, ErrNilMatrix
	}
	if err := ValidateThreshold(threshold); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)
	v, err := matrix.Build(raw, o.Matrix...)
	if err != nil {
		return nil, err
	}

	return reduceValidated(v, threshold, o)
}

// ReduceValidated runs the reduction on an already sanitized matrix.
func ReduceValidated(v *matrix.Validated, threshold float64, opts ...Option) (*Result, error) {
	return reduceValidated(v, threshold, gatherOptions(opts...))
}

func reduceValidated(v *matrix.Validated, threshold float64, o Options) (*Result, error) {
	g, err := BuildGraph(v, threshold)
	if err != nil {
		return nil, err
	}
	// Clusters must be taken before the run consumes the graph.
	clusters, err := bfs.Components(g, v.Labels(), bfs.WithContext(o.Ctx))
	if err != nil {
		return nil, err
	}

	r := &reducer{
		graph: g,
		order: v.Labels(),
		opts:  o,
		log:   o.Logger,
		res: &Result{
			Features:  make([]string, 0, v.Len()),
			Steps:     make([]Step, 0, v.Len()),
			Initial:   v.Len(),
			Dropped:   v.Dropped(),
			Threshold: threshold,
			Clusters:  clusters,
		},
	}
	r.log.Debug("graph built", "features", v.Len(), "edges", g.EdgeCount(), "clusters", len(clusters), "threshold", threshold)
	if err = r.run(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// run drives the loop until the graph is empty. Every iteration removes at
// least one vertex, so it ends within Initial iterations.
func (r *reducer) run() error {
	var before int
	for iter := 1; r.graph.VertexCount() > 0; iter++ {
		// 1. Cancellation check
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}
		before = r.graph.VertexCount()

		// 2. Isolate sweep, canonical order
		if err := r.sweepIsolates(iter); err != nil {
			return err
		}
		if r.graph.VertexCount() == 0 {
			break
		}

		// 3. Tie-break cascade
		sel, err := SelectCandidate(r.graph, r.order)
		if err != nil {
			return err
		}
		r.logSelection(iter, sel)

		// 4. Fix the pick
		if err = r.fix(sel.Pick, StepFix, sel.Round); err != nil {
			return err
		}
		if after := r.graph.VertexCount(); after >= before {
			return invariantf("iteration %d: vertex count %d -> %d", iter, before, after)
		}
	}
	r.log.Debug("reduction done", "selected", len(r.res.Features), "initial", r.res.Initial)

	return nil
}

func (r *reducer) sweepIsolates(iter int) error {
	for _, id := range r.order {
		if !r.graph.HasVertex(id) {
			continue
		}
		d, err := r.graph.Degree(id)
		if err != nil {
			return err
		}
		if d != 0 {
			continue
		}
		r.log.Debug("isolate", "iteration", iter, "feature", id)
		if err = r.fix(id, StepIsolate, RoundIsolate); err != nil {
			return err
		}
	}

	return nil
}

// fix records id and removes it with its neighbors.
func (r *reducer) fix(id string, kind StepKind, round Round) error {
	feature, ok := FeatureOf(r.graph, id)
	if !ok {
		return invariantf("fix(%q): vertex carries no feature", id)
	}
	removed, err := Fix(r.graph, id)
	if err != nil {
		return err
	}
	step := Step{Feature: feature, Kind: kind, Round: round, Removed: removed}
	r.res.Features = append(r.res.Features, feature)
	r.res.Steps = append(r.res.Steps, step)
	if kind == StepFix {
		r.log.Debug("fixed", "feature", feature, "round", round.String(), "removed", removed)
	}
	if r.opts.OnStep != nil {
		if err = r.opts.OnStep(step); err != nil {
			return err
		}
	}

	return nil
}

func (r *reducer) logSelection(iter int, sel *Selection) {
	if !r.log.Enabled(r.opts.Ctx, slog.LevelDebug) {
		return
	}
	attrs := []any{"iteration", iter, "round1", sel.Candidates[0]}
	if sel.Simulated != nil {
		attrs = append(attrs, "simulated", sel.Simulated, "round2", sel.Candidates[1])
	}
	if sel.MeanCorr != nil {
		attrs = append(attrs, "mean_corr", sel.MeanCorr, "round3", sel.Candidates[2])
	}
	attrs = append(attrs, "pick", sel.Pick)
	r.log.Debug("selection", attrs...)
}

// Fix removes id and every vertex adjacent to it from g and returns the
// removed neighbors, sorted. The neighbor set is snapshotted before any
// deletion. Recording the feature is the caller's concern.
//
// Complexity: O(Σ deg) over the removed vertices.
func Fix(g *core.Graph, id string) ([]string, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	nbrs, err := g.NeighborIDs(id)
	if err != nil {
		return nil, fmt.Errorf("Fix(%q): %w", id, err)
	}
	for _, n := range nbrs {
		if err = g.RemoveVertex(n); err != nil {
			return nil, fmt.Errorf("Fix(%q): neighbor %q: %w", id, n, err)
		}
	}
	if err = g.RemoveVertex(id); err != nil {
		return nil, fmt.Errorf("Fix(%q): %w", id, err)
	}

	return nbrs, nil
}
