// Package input resolves where download ids come from: positional arguments,
// a conventional batch file, or standard input.
package input

import (
	"os"

	"tubefetch/internal/utils/logging"
)

// Workspace is the process-scoped scratch directory holding the normalized
// batch file. It is exclusive to the current invocation.
type Workspace struct {
	Dir  string
	keep bool
}

// NewWorkspace creates the scratch directory. With keep set (debug mode),
// Close leaves the directory behind for inspection.
func NewWorkspace(keep bool) (*Workspace, error) {
	dir, err := os.MkdirTemp("", "tubefetch-*")
	if err != nil {
		return nil, err
	}
	return &Workspace{Dir: dir, keep: keep}, nil
}

// Close removes the workspace unless it is being kept for inspection.
func (w *Workspace) Close() {
	if w.keep {
		logging.D(1, "keeping workspace %s for inspection", w.Dir)
		return
	}
	if err := os.RemoveAll(w.Dir); err != nil {
		logging.E("failed to remove workspace %s: %v", w.Dir, err)
	}
}
