// Package internal provides the per-file engine of the manifest updater.
//
// The engine reads a manifest file, runs one of the two dialect pipelines
// from internal/manifest over its lines, and applies the outcome to disk:
// rewriting the file in place, deleting it when it became semantically
// empty, or leaving it alone when nothing changed.
//
// Key components:
//
// Engine: owns the compiled pattern set and the storage side effects.
// RunSkipIf processes mochitest-style manifests and keeps a .bak sibling of
// every file it changes; RunWPT processes web-platform-tests manifests with
// a caller-supplied expression and keeps no backup.
//
// FormatResults: renders per-file outcomes and a run summary for the CLI.
//
// This package is intended for internal use within the updater and should
// not be imported by external packages.
package internal
