package manifest

import (
	"regexp"
	"strings"
)

// Fixed tokens of the two manifest dialects.
const (
	// SkipIfPrefix marks a conditional directive line in mochitest-style manifests.
	SkipIfPrefix = "skip-if = "

	orSeparator = `\s\|\|\s`
	orJoin      = " || "
)

// DefaultAndroidVersion is the platform version whose skip-if clauses are obsolete.
const DefaultAndroidVersion = "17"

// DefaultSubcategories are the wpt sub-statement labels that need a following
// test-name or conditional line to stay meaningful.
var DefaultSubcategories = []string{"expected:", "disabled:", "fuzzy:"}

// Patterns holds the compiled expressions used by both dialect processors.
// Build one per invocation and pass it explicitly; it carries no mutable
// state, so concurrent invocations with different versions do not interfere.
type Patterns struct {
	deprecated *regexp.Regexp // anchored at clause start
	orSplit    *regexp.Regexp
	markers    []*regexp.Regexp // label standing alone on its line
	labels     []string
	condWord   *regexp.Regexp // whole-word "if "
	catchAll   *regexp.Regexp // all-caps value of length >= 3
}

// NewPatterns compiles the pattern set for the given deprecated platform
// version and sub-statement labels. Empty arguments fall back to the defaults.
func NewPatterns(androidVersion string, subcategories []string) *Patterns {
	if androidVersion == "" {
		androidVersion = DefaultAndroidVersion
	}
	if len(subcategories) == 0 {
		subcategories = DefaultSubcategories
	}

	markers := make([]*regexp.Regexp, 0, len(subcategories))
	labels := make([]string, 0, len(subcategories))
	for _, label := range subcategories {
		markers = append(markers, regexp.MustCompile(`^[ \t]*`+regexp.QuoteMeta(label)+`[ \t]*\r?\n?$`))
		labels = append(labels, label)
	}

	return &Patterns{
		deprecated: regexp.MustCompile(`^[(]?android_version == '` + regexp.QuoteMeta(androidVersion) + `'[)]?`),
		orSplit:    regexp.MustCompile(orSeparator),
		markers:    markers,
		labels:     labels,
		condWord:   regexp.MustCompile(`\bif `),
		catchAll:   regexp.MustCompile(`\b[A-Z]{3,}\b`),
	}
}

// isCleanMarker reports whether the line is a sub-statement label standing
// alone, with nothing but optional whitespace before the terminator.
func (p *Patterns) isCleanMarker(line string) bool {
	for _, m := range p.markers {
		if m.MatchString(line) {
			return true
		}
	}
	return false
}

// isMarkerLine reports whether the line contains any sub-statement label,
// regardless of what follows it.
func (p *Patterns) isMarkerLine(line string) bool {
	for _, label := range p.labels {
		if strings.Contains(line, label) {
			return true
		}
	}
	return false
}

// isTestName reports whether the line is a bracketed test-name entry.
func isTestName(line string) bool {
	trimmed := strings.TrimSpace(line)
	return len(trimmed) >= 2 && strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]")
}
