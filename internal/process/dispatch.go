// Package process routes a resolved invocation to its single sub-operation.
package process

import (
	"io"
	"os"
	"os/exec"

	"tubefetch/internal/command/builder"
	"tubefetch/internal/command/execute"
	"tubefetch/internal/domain/enums"
	"tubefetch/internal/input"
	"tubefetch/internal/models"
	"tubefetch/internal/utils/logging"
)

// Dispatch runs exactly one sub-operation for the resolved settings, writing
// result output to w, and returns the process exit code. The input source is
// only resolved on the branches that feed the external downloader, so the
// local operations never touch batch files or stdin.
func Dispatch(w io.Writer, s *models.Settings, ws *input.Workspace, run execute.Runner) (int, error) {
	switch s.Mode {
	case enums.ModeJavascript:
		return 0, EmitPlaylistScript(w, s)

	case enums.ModeFindIDs:
		return 0, FindIDs(w, s, s.IDs)

	case enums.ModeDuplicates:
		return 0, FindDuplicates(w, s)

	case enums.ModeListFormats:
		src, err := input.Resolve(s, ws)
		if err != nil {
			return 1, err
		}
		b := builder.NewListFormatsCommandBuilder(s, src)
		return runOrPrint(w, s, b.Args(), b.Command, run)

	default:
		// Download path. The target directory is created lazily here and
		// nowhere else; a failure surfaces through the downloader anyway.
		// Dry runs skip the creation so they leave no trace on disk.
		if !s.DryRun {
			if err := os.MkdirAll(s.OutDir, 0o755); err != nil {
				logging.W("could not create target directory %s: %v", s.OutDir, err)
			}
		}

		src, err := input.Resolve(s, ws)
		if err != nil {
			return 1, err
		}
		b := builder.NewDownloadCommandBuilder(s, src, ws.Dir)
		return runOrPrint(w, s, b.Args(), b.Command, run)
	}
}

// runOrPrint executes the assembled command, or just prints it in dry-run
// mode without ever invoking the external tool.
func runOrPrint(w io.Writer, s *models.Settings, args []string, command func() (*exec.Cmd, error), run execute.Runner) (int, error) {
	if s.DryRun {
		if _, err := io.WriteString(w, builder.CommandString(args)+"\n"); err != nil {
			return 1, err
		}
		return 0, nil
	}

	cmd, err := command()
	if err != nil {
		return 1, err
	}
	return run.Run(cmd)
}
