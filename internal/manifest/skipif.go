package manifest

import (
	"strings"

	"github.com/worldomonation/manifest-updater/internal/types"
)

// RewriteSkipIf rewrites a single skip-if directive line, dropping every
// clause that matches the deprecated platform version. The line must start
// with SkipIfPrefix and carry no terminator. It returns the rewritten line
// and true, or "" and false when no clause survives and the whole line
// should be dropped.
func (p *Patterns) RewriteSkipIf(line string) (string, bool) {
	rest := strings.TrimPrefix(line, SkipIfPrefix)
	clauses := p.orSplit.Split(rest, -1)

	kept := make([]string, 0, len(clauses))
	for _, clause := range clauses {
		if !p.deprecated.MatchString(clause) {
			kept = append(kept, clause)
		}
	}

	if len(kept) == 0 {
		return "", false
	}
	return SkipIfPrefix + strings.Join(kept, orJoin), true
}

// RewriteManifest runs the skip-if pipeline over a whole manifest.
// Non-directive lines pass through byte-for-byte; directive lines are
// rewritten or dropped. Running it on its own output is a no-op.
func (p *Patterns) RewriteManifest(lines []string) Outcome {
	out := make([]string, 0, len(lines))
	changed := false

	for _, line := range lines {
		content, term := splitTerminator(line)
		if !strings.HasPrefix(content, SkipIfPrefix) {
			out = append(out, line)
			continue
		}

		rewritten, ok := p.RewriteSkipIf(strings.TrimRight(content, " \t"))
		if !ok {
			changed = true
			continue
		}
		if rewritten != content {
			changed = true
		}
		out = append(out, rewritten+term)
	}

	if !changed {
		return Outcome{Action: types.ActionNone}
	}
	return Outcome{Action: types.ActionRewrite, Lines: out}
}

// splitTerminator separates a line's content from its terminator so the
// terminator style survives a rewrite untouched.
func splitTerminator(line string) (content, term string) {
	if strings.HasSuffix(line, "\r\n") {
		return line[:len(line)-2], "\r\n"
	}
	if strings.HasSuffix(line, "\n") {
		return line[:len(line)-1], "\n"
	}
	return line, ""
}
