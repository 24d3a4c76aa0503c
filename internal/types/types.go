package types

// Action describes what happened (or would happen) to a manifest file.
type Action int

const (
	// ActionNone means the rewritten content was identical to the original.
	ActionNone Action = iota
	// ActionRewrite means the file content changed and was written back.
	ActionRewrite
	// ActionDelete means the manifest became semantically empty and was removed.
	ActionDelete
	// ActionSkip means the file was matched by name but could not be processed.
	ActionSkip
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "unchanged"
	case ActionRewrite:
		return "rewritten"
	case ActionDelete:
		return "deleted"
	case ActionSkip:
		return "skipped"
	default:
		return "unknown"
	}
}

// Result represents the outcome of processing a single manifest file.
type Result struct {
	Path   string
	Action Action
	Backup string // path of the retained backup file, if any
	Err    error  // non-nil when processing the file failed
}
