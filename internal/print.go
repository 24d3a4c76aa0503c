package internal

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/worldomonation/manifest-updater/internal/types"
)

var (
	rewriteStyle = color.New(color.FgGreen, color.Bold)
	deleteStyle  = color.New(color.FgRed, color.Bold)
	skipStyle    = color.New(color.FgYellow, color.Bold)
	failStyle    = color.New(color.FgRed, color.Bold)
	fileStyle    = color.New(color.FgCyan, color.Bold)
	noteStyle    = color.New(color.FgBlue)
)

// FormatResults renders per-file outcomes followed by a summary line.
// Unchanged files are counted but not listed.
func FormatResults(results []types.Result) string {
	var builder strings.Builder
	var rewritten, deleted, unchanged, skipped, failed int

	for _, r := range results {
		switch {
		case r.Err != nil:
			failed++
			builder.WriteString(failStyle.Sprint("failed:    "))
			builder.WriteString(fileStyle.Sprint(r.Path))
			builder.WriteString(fmt.Sprintf(" (%v)\n", r.Err))
		case r.Action == types.ActionRewrite:
			rewritten++
			builder.WriteString(rewriteStyle.Sprint("rewritten: "))
			builder.WriteString(fileStyle.Sprint(r.Path))
			if r.Backup != "" {
				builder.WriteString(noteStyle.Sprintf(" (backup: %s)", r.Backup))
			}
			builder.WriteString("\n")
		case r.Action == types.ActionDelete:
			deleted++
			builder.WriteString(deleteStyle.Sprint("deleted:   "))
			builder.WriteString(fileStyle.Sprint(r.Path))
			builder.WriteString("\n")
		case r.Action == types.ActionSkip:
			skipped++
			builder.WriteString(skipStyle.Sprint("skipped:   "))
			builder.WriteString(fileStyle.Sprint(r.Path))
			builder.WriteString("\n")
		default:
			unchanged++
		}
	}

	builder.WriteString(fmt.Sprintf("%d rewritten, %d deleted, %d unchanged, %d skipped, %d failed\n",
		rewritten, deleted, unchanged, skipped, failed))
	return builder.String()
}
