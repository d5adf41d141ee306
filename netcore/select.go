// SPDX-License-Identifier: MIT

package netcore

import (
	"fmt"
	"math"

	"github.com/katalvlaran/netcore/core"
)

// Round identifies the stage of the tie-break cascade that decided a step.
type Round int

const (
	RoundIsolate          Round = iota // degree-0 sweep
	RoundDegree                        // unique maximum degree
	RoundSimulatedDegree               // unique maximum simulated remaining degree
	RoundCorrelation                   // unique maximum mean |correlation|
	RoundCanonical                     // first remaining candidate in canonical order
)

var roundNames = [...]string{"isolate", "degree", "simulated-degree", "correlation", "canonical-order"}

// String returns the stable lowercase name of r.
func (r Round) String() string {
	if r < 0 || int(r) >= len(roundNames) {
		return fmt.Sprintf("round(%d)", int(r))
	}

	return roundNames[r]
}

// MarshalText renders r by name.
func (r Round) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// KeepMax retains the candidates whose score equals the maximum score present,
// preserving their relative order. Scores are compared exactly.
func KeepMax[S int | float64](candidates []string, score map[string]S) []string {
	if len(candidates) == 0 {
		return nil
	}
	best := score[candidates[0]]
	for _, id := range candidates[1:] {
		if s := score[id]; s > best {
			best = s
		}
	}
	out := make([]string, 0, len(candidates))
	for _, id := range candidates {
		if score[id] == best {
			out = append(out, id)
		}
	}

	return out
}

// MaxDegreeCandidates returns every vertex of order still present in g whose
// degree equals the maximum degree, in order.
func MaxDegreeCandidates(g *core.Graph, order []string) ([]string, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	present := make([]string, 0, len(order))
	degree := make(map[string]int, len(order))
	for _, id := range order {
		if !g.HasVertex(id) {
			continue
		}
		d, err := g.Degree(id)
		if err != nil {
			return nil, fmt.Errorf("MaxDegreeCandidates(%q): %w", id, err)
		}
		present = append(present, id)
		degree[id] = d
	}

	return KeepMax(present, degree), nil
}

// MeanAbsCorrelation returns the mean of |weight| over the edges incident to id.
// A vertex without edges, or an edge list that disagrees with the vertex
// degree, is an invariant violation: round three only sees vertices of
// maximum degree, which is at least one once isolates are swept.
func MeanAbsCorrelation(g *core.Graph, id string) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	edges, err := g.Neighbors(id)
	if err != nil {
		return 0, fmt.Errorf("MeanAbsCorrelation(%q): %w", id, err)
	}
	deg, err := g.Degree(id)
	if err != nil {
		return 0, fmt.Errorf("MeanAbsCorrelation(%q): %w", id, err)
	}
	if len(edges) == 0 || len(edges) != deg {
		return 0, invariantf("MeanAbsCorrelation(%q): %d incident edges, degree %d", id, len(edges), deg)
	}

	var sum float64
	for _, e := range edges {
		sum += math.Abs(e.Weight)
	}

	return sum / float64(len(edges)), nil
}

// Selection reports the outcome of one pass of the tie-break cascade.
type Selection struct {
	Pick       string             // chosen vertex
	Round      Round              // stage that made the choice
	Candidates [][]string         // candidate set after each executed round, starting with round one
	Simulated  map[string]int     // round-two scores, nil if not reached
	MeanCorr   map[string]float64 // round-three scores, nil if not reached
}

// SelectCandidate runs the cascade on g: maximum degree, then maximum simulated
// remaining degree, then maximum mean |correlation|, then the first remaining
// vertex in order. Enumeration follows order, restricted to vertices present
// in g; g must be non-empty and free of isolates.
func SelectCandidate(g *core.Graph, order []string) (*Selection, error) {
	cands, err := MaxDegreeCandidates(g, order)
	if err != nil {
		return nil, err
	}
	if len(cands) == 0 {
		return nil, invariantf("SelectCandidate: no candidates in a graph of %d vertices", g.VertexCount())
	}
	sel := &Selection{Candidates: [][]string{cands}}
	if len(cands) == 1 {
		sel.Pick, sel.Round = cands[0], RoundDegree
		return sel, nil
	}

	sel.Simulated = make(map[string]int, len(cands))
	for _, id := range cands {
		if sel.Simulated[id], err = SimulateRemainingDegree(g, id); err != nil {
			return nil, err
		}
	}
	cands = KeepMax(cands, sel.Simulated)
	sel.Candidates = append(sel.Candidates, cands)
	if len(cands) == 1 {
		sel.Pick, sel.Round = cands[0], RoundSimulatedDegree
		return sel, nil
	}

	sel.MeanCorr = make(map[string]float64, len(cands))
	for _, id := range cands {
		if sel.MeanCorr[id], err = MeanAbsCorrelation(g, id); err != nil {
			return nil, err
		}
	}
	cands = KeepMax(cands, sel.MeanCorr)
	sel.Candidates = append(sel.Candidates, cands)
	if len(cands) == 1 {
		sel.Pick, sel.Round = cands[0], RoundCorrelation
		return sel, nil
	}

	sel.Pick, sel.Round = cands[0], RoundCanonical

	return sel, nil
}
