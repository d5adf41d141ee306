// SPDX-License-Identifier: MIT

package netcore

import (
	"errors"
	"fmt"
)

var (
	// ErrThresholdOutOfRange is returned when the correlation threshold is NaN or
	// outside [0, 1]. It is checked before any graph work begins.
	ErrThresholdOutOfRange = errors.New("netcore: threshold must be within [0, 1]")

	// ErrNilMatrix is returned when a nil matrix is passed to an entry point.
	ErrNilMatrix = errors.New("netcore: matrix is nil")

	// ErrNilGraph is returned when a nil *core.Graph is passed to a component.
	ErrNilGraph = errors.New("netcore: graph is nil")

	// ErrInvariant marks an internal consistency violation: node count after
	// graph construction, neighbor count while averaging correlations, view size
	// during simulation, or a loop iteration that removed nothing. It indicates a
	// defect, never bad input.
	ErrInvariant = errors.New("netcore: internal invariant violated")
)

// invariantf wraps ErrInvariant with a formatted detail.
func invariantf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvariant)
}
