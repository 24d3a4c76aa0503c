package manifest

import (
	"strings"

	"github.com/worldomonation/manifest-updater/internal/types"
)

// Outcome is the result of running a dialect pipeline over a manifest's
// lines. The caller owns all storage side effects: writing Lines back,
// deleting the file, or doing nothing.
type Outcome struct {
	Action types.Action
	Lines  []string // populated only for ActionRewrite
}

// SplitLines splits content into lines that keep their terminators, the
// representation both pipelines operate on. Joining the result with the
// empty string reproduces the input exactly.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// JoinLines is the inverse of SplitLines.
func JoinLines(lines []string) string {
	return strings.Join(lines, "")
}

func equalLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
