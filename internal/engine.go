package internal

import (
	"fmt"
	"os"
	"regexp"

	"go.uber.org/zap"

	"github.com/worldomonation/manifest-updater/internal/manifest"
	"github.com/worldomonation/manifest-updater/internal/types"
)

// BackupSuffix is appended to a rewritten skip-if manifest's name to form
// the path of its backup copy.
const BackupSuffix = ".bak"

// Engine applies a dialect pipeline to manifest files on disk.
type Engine struct {
	patterns *manifest.Patterns
	dryRun   bool
	logger   *zap.Logger
}

// NewEngine creates a new manifest engine. A nil logger disables diagnostics.
func NewEngine(patterns *manifest.Patterns, dryRun bool, logger *zap.Logger) *Engine {
	return &Engine{
		patterns: patterns,
		dryRun:   dryRun,
		logger:   logger,
	}
}

// RunSkipIf rewrites a mochitest-style manifest in place, removing obsolete
// skip-if clauses. When the content changes, a backup holding the original
// bytes is written beside the file; a byte-identical rewrite leaves no
// backup behind.
func (e *Engine) RunSkipIf(filePath string) (types.Result, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return types.Result{Path: filePath, Err: err}, fmt.Errorf("failed to read manifest: %w", err)
	}

	lines := manifest.SplitLines(string(content))
	if len(lines) == 0 {
		e.debug("skipping empty manifest", filePath)
		return types.Result{Path: filePath, Action: types.ActionSkip}, nil
	}

	outcome := e.patterns.RewriteManifest(lines)
	if outcome.Action != types.ActionRewrite {
		return types.Result{Path: filePath, Action: types.ActionNone}, nil
	}

	if e.dryRun {
		e.info("would rewrite manifest", filePath)
		return types.Result{Path: filePath, Action: types.ActionRewrite}, nil
	}

	backupPath := filePath + BackupSuffix
	if err := os.WriteFile(backupPath, content, 0o644); err != nil {
		return types.Result{Path: filePath, Err: err}, fmt.Errorf("failed to write backup: %w", err)
	}
	if err := os.WriteFile(filePath, []byte(manifest.JoinLines(outcome.Lines)), 0o644); err != nil {
		return types.Result{Path: filePath, Err: err}, fmt.Errorf("failed to write manifest: %w", err)
	}

	return types.Result{Path: filePath, Action: types.ActionRewrite, Backup: backupPath}, nil
}

// RunWPT rewrites a web-platform-tests manifest: lines matching expr are
// removed, orphaned sub-statement markers are cleaned up, and the file is
// deleted outright when nothing meaningful remains. No backup is kept.
func (e *Engine) RunWPT(filePath string, expr *regexp.Regexp) (types.Result, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return types.Result{Path: filePath, Err: err}, fmt.Errorf("failed to read manifest: %w", err)
	}

	lines := manifest.SplitLines(string(content))
	if len(lines) == 0 {
		e.debug("skipping empty manifest", filePath)
		return types.Result{Path: filePath, Action: types.ActionSkip}, nil
	}

	outcome := e.patterns.RewriteWPT(lines, expr)
	switch outcome.Action {
	case types.ActionDelete:
		if e.dryRun {
			e.info("would delete manifest", filePath)
			return types.Result{Path: filePath, Action: types.ActionDelete}, nil
		}
		if err := os.Remove(filePath); err != nil {
			return types.Result{Path: filePath, Err: err}, fmt.Errorf("failed to delete manifest: %w", err)
		}
		return types.Result{Path: filePath, Action: types.ActionDelete}, nil

	case types.ActionRewrite:
		if e.dryRun {
			e.info("would rewrite manifest", filePath)
			return types.Result{Path: filePath, Action: types.ActionRewrite}, nil
		}
		if err := os.WriteFile(filePath, []byte(manifest.JoinLines(outcome.Lines)), 0o644); err != nil {
			return types.Result{Path: filePath, Err: err}, fmt.Errorf("failed to write manifest: %w", err)
		}
		return types.Result{Path: filePath, Action: types.ActionRewrite}, nil

	default:
		return types.Result{Path: filePath, Action: types.ActionNone}, nil
	}
}

func (e *Engine) debug(msg, filePath string) {
	if e.logger != nil {
		e.logger.Debug(msg, zap.String("file", filePath))
	}
}

func (e *Engine) info(msg, filePath string) {
	if e.logger != nil {
		e.logger.Info(msg, zap.String("file", filePath))
	}
}
