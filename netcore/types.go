// SPDX-License-Identifier: MIT

package netcore

import "fmt"

// StepKind distinguishes how a feature entered the reduced vector.
type StepKind int

const (
	StepIsolate StepKind = iota // degree 0 when swept
	StepFix                     // chosen by the tie-break cascade
)

// String returns "isolate" or "fix".
func (k StepKind) String() string {
	switch k {
	case StepIsolate:
		return "isolate"
	case StepFix:
		return "fix"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// MarshalText renders k by name.
func (k StepKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Step records one append to the reduced vector.
type Step struct {
	Feature string   `json:"feature"`
	Kind    StepKind `json:"kind"`
	Round   Round    `json:"round"`
	// Removed lists the neighbors deleted with Feature, sorted; they never
	// appear in the reduced vector.
	Removed []string `json:"removed,omitempty"`
}

// Result is the outcome of a reduction run.
type Result struct {
	// Features is the reduced vector in selection order.
	Features []string `json:"features"`

	// Steps holds one entry per element of Features, same order.
	Steps []Step `json:"steps"`

	// Initial is the number of features in the validated matrix.
	Initial int `json:"initial"`

	// Dropped lists features removed by matrix sanitization.
	Dropped []string `json:"dropped,omitempty"`

	// Threshold is the correlation threshold the graph was built with.
	Threshold float64 `json:"threshold"`

	// Clusters are the connected components of the initial graph in
	// canonical order. Each non-isolated cluster contributes at least one
	// feature to the reduced vector.
	Clusters [][]string `json:"clusters"`
}

// LargestCluster returns the size of the biggest cluster, 0 when there is none.
func (r *Result) LargestCluster() int {
	m := 0
	for _, c := range r.Clusters {
		if len(c) > m {
			m = len(c)
		}
	}

	return m
}

// Removed returns every feature deleted as a neighbor, in step order.
func (r *Result) Removed() []string {
	var out []string
	for _, s := range r.Steps {
		out = append(out, s.Removed...)
	}

	return out
}
