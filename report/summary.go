// SPDX-License-Identifier: MIT

package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/netcore/netcore"
)

// ErrNilResult is returned when a nil result is passed to a renderer.
var ErrNilResult = errors.New("report: nil result")

// Summary writes the human-readable outcome of one run:
//
//	analyzed dataset: NAME
//	final reduced feature vector: [a, b]
//	length of the final reduced feature vector: 2 (from initially 5)
//	correlation clusters: 2 (largest 4)
//
// followed by a line naming features removed by sanitization, if any.
func Summary(w io.Writer, name string, res *netcore.Result) error {
	if res == nil {
		return ErrNilResult
	}
	var sb strings.Builder
	if name != "" {
		fmt.Fprintf(&sb, "analyzed dataset: %s\n", name)
	}
	fmt.Fprintf(&sb, "final reduced feature vector: [%s]\n", strings.Join(res.Features, ", "))
	fmt.Fprintf(&sb, "length of the final reduced feature vector: %d (from initially %d)\n", len(res.Features), res.Initial)
	if len(res.Clusters) > 0 {
		fmt.Fprintf(&sb, "correlation clusters: %d (largest %d)\n", len(res.Clusters), res.LargestCluster())
	}
	if len(res.Dropped) > 0 {
		fmt.Fprintf(&sb, "dropped as undefined: [%s]\n", strings.Join(res.Dropped, ", "))
	}
	_, err := io.WriteString(w, sb.String())

	return err
}

// Document is the JSON shape of one dataset's result.
type Document struct {
	Dataset string `json:"dataset,omitempty"`
	*netcore.Result
}

// JSON writes res as an indented JSON document.
func JSON(w io.Writer, name string, res *netcore.Result) error {
	if res == nil {
		return ErrNilResult
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(Document{Dataset: name, Result: res})
}
