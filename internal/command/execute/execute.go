// Package execute runs assembled downloader commands and reports their exit
// status.
package execute

import (
	"errors"
	"os/exec"

	"tubefetch/internal/utils/logging"
)

// Runner executes an external command and reports its exit code. The exit
// code of a completed process is forwarded, never interpreted.
type Runner interface {
	Run(cmd *exec.Cmd) (int, error)
}

// ProcRunner runs commands against the real process table, blocking until
// completion.
type ProcRunner struct{}

// Run starts cmd and waits. A non-zero exit from the external tool is not an
// error here: the code passes through for the caller to exit with.
func (ProcRunner) Run(cmd *exec.Cmd) (int, error) {
	logging.D(1, "executing: %s", cmd.String())

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 1, err
	}
	return 0, nil
}
