// Package stacktrace trims runtime stacks down to this module's frames.
package stacktrace

import "strings"

// InternalPaths returns "internal/<pkg>/<file>.go:<line>" for every frame
// located under an internal directory, innermost first.
func InternalPaths(stack []byte) []string {
	var out []string
	for line := range strings.Lines(string(stack)) {
		line = strings.TrimSpace(line)
		// file lines look like "/abs/path/internal/x/y.go:42 +0x1d"
		loc, _, _ := strings.Cut(line, " ")
		if !strings.Contains(loc, ".go:") {
			continue
		}
		if i := strings.Index(loc, "/internal/"); i >= 0 {
			out = append(out, loc[i+1:])
		}
	}
	return out
}
