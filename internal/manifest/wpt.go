package manifest

import (
	"regexp"
	"strings"

	"github.com/worldomonation/manifest-updater/internal/types"
)

// FilterLines returns the lines that the caller-supplied expression does not
// match anywhere. It is structure-blind; CascadeOrphans must run on its
// output to clean up markers whose anchor it removed.
func FilterLines(lines []string, expr *regexp.Regexp) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if !expr.MatchString(line) {
			out = append(out, line)
		}
	}
	return out
}

// CascadeOrphans removes sub-statement markers left dangling by FilterLines.
// It walks the lines once, carrying the classification of the previously
// appended line:
//
//   - marker followed by a bracketed test-name line: the marker is replaced
//     by a blank line;
//   - marker followed by another marker: the earlier marker is dropped;
//   - marker followed by anything else (a conditional line, a value): kept.
//
// Every current line is always appended; removal only ever touches the line
// appended just before it. A run of consecutive markers therefore collapses
// to its last member as the scan proceeds, without any fixpoint iteration.
func (p *Patterns) CascadeOrphans(lines []string) []string {
	out := make([]string, 0, len(lines))
	prevClean := false

	for _, line := range lines {
		if prevClean {
			switch {
			case isTestName(line):
				out[len(out)-1] = "\n"
			case p.isCleanMarker(line):
				out = out[:len(out)-1]
			}
		}
		out = append(out, line)
		prevClean = p.isCleanMarker(line)
	}
	return out
}

// IsEmpty classifies a cascaded manifest as semantically empty: no
// conditional lines, no preference declarations, and no sub-statement label
// carrying a catch-all value (an all-caps token of length >= 3) on its own
// line or the line immediately after it.
func (p *Patterns) IsEmpty(lines []string) bool {
	for _, line := range lines {
		if p.condWord.MatchString(line) || strings.Contains(line, "prefs:") {
			return false
		}
	}
	for i, line := range lines {
		if !p.isMarkerLine(line) {
			continue
		}
		if p.catchAll.MatchString(line) {
			return false
		}
		if i+1 < len(lines) && p.catchAll.MatchString(lines[i+1]) {
			return false
		}
	}
	return true
}

// NormalizeEOF enforces the trailing-newline policy: a manifest ends with
// exactly one blank line. Two trailing blank lines collapse to one; a
// missing one is appended, which also terminates an unterminated final
// line. Zero- and one-line inputs are handled by the same rules.
func NormalizeEOF(lines []string) []string {
	if len(lines) == 0 {
		return lines
	}
	last := lines[len(lines)-1]
	if isBlankLine(last) {
		if len(lines) >= 2 && isBlankLine(lines[len(lines)-2]) {
			return lines[:len(lines)-1]
		}
		return lines
	}
	return append(lines, "\n")
}

func isBlankLine(line string) bool {
	return line == "\n" || line == "\r\n"
}

// RewriteWPT runs the full wpt pipeline: filter, cascade, then either
// report no change, request deletion of an empty manifest, or emit the
// normalized rewrite. Normalization runs only when the content actually
// changed, so an untouched file is never rewritten just to fix its tail.
func (p *Patterns) RewriteWPT(lines []string, expr *regexp.Regexp) Outcome {
	cascaded := p.CascadeOrphans(FilterLines(lines, expr))
	if equalLines(cascaded, lines) {
		return Outcome{Action: types.ActionNone}
	}
	if p.IsEmpty(cascaded) {
		return Outcome{Action: types.ActionDelete}
	}
	return Outcome{Action: types.ActionRewrite, Lines: NormalizeEOF(cascaded)}
}
