// Package builder assembles external downloader invocations as structured
// argument lists. Arguments are only serialized to a single string at the
// dry-run/debug printing boundary.
package builder

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	ytdlp "tubefetch/internal/domain/command"
	"tubefetch/internal/domain/consts"
	"tubefetch/internal/domain/enums"
	"tubefetch/internal/input"
	"tubefetch/internal/models"
)

// DownloadCommandBuilder assembles the downloader invocation for the
// download path.
type DownloadCommandBuilder struct {
	Settings  *models.Settings
	Source    *input.Source
	Workspace string
}

// NewDownloadCommandBuilder returns a builder for one download invocation.
func NewDownloadCommandBuilder(s *models.Settings, src *input.Source, workspace string) *DownloadCommandBuilder {
	return &DownloadCommandBuilder{
		Settings:  s,
		Source:    src,
		Workspace: workspace,
	}
}

// Args assembles the full argument list.
func (b *DownloadCommandBuilder) Args() []string {
	s := b.Settings
	var args []string

	if s.Cookies != "" {
		args = append(args, ytdlp.CookiesFromBrowser, s.Cookies)
	}

	args = append(args, verbosityArgs(s)...)
	args = append(args, ytdlp.RestrictFilenames)
	args = append(args, ytdlp.Output, consts.OutputTemplate)

	// Path bindings: scratch space, library base, then the resolved target
	// as the effective destination.
	args = append(args, ytdlp.Paths, ytdlp.PathTempPrefix+b.Workspace)
	args = append(args, ytdlp.Paths, ytdlp.PathHomePrefix+s.HomeBase)
	args = append(args, ytdlp.Paths, s.OutDir)

	args = append(args, ytdlp.Format, s.Format)
	args = append(args, ytdlp.ConcurrentFragments, strconv.Itoa(s.Fragments))

	if s.Mode == enums.ModeAudio {
		args = append(args, ytdlp.ExtractAudio, ytdlp.AudioFormat, ytdlp.DefaultAudioCodec)
	} else {
		args = append(args, ytdlp.EmbedMetadata, ytdlp.EmbedThumbnail, ytdlp.EmbedChapters)
		if s.Subtitles != "" {
			args = append(args, ytdlp.EmbedSubs, ytdlp.SubLangs, s.Subtitles)
		}
	}

	// Shuffle unless sequential order was explicitly requested.
	if s.Random || s.Order != "sequential" {
		args = append(args, ytdlp.PlaylistRandom)
	}

	if s.Extra != "" {
		args = append(args, strings.Fields(s.Extra)...)
	}

	return append(args, sourceArgs(b.Source)...)
}

// Command resolves the downloader binary and builds the executable command.
func (b *DownloadCommandBuilder) Command() (*exec.Cmd, error) {
	return newCommand(b.Args())
}

// verbosityArgs maps the resolved verbosity onto the downloader's flags:
// quiet and verbose are exclusive, the default shows plain progress.
func verbosityArgs(s *models.Settings) []string {
	switch {
	case s.Verbose:
		return []string{ytdlp.Verbose}
	case s.Quiet:
		return []string{ytdlp.Quiet}
	default:
		return []string{ytdlp.Progress}
	}
}

// sourceArgs appends the resolved input source: a batch file reference or the
// literal ids.
func sourceArgs(src *input.Source) []string {
	if src.IsBatch() {
		return []string{ytdlp.BatchFile, src.BatchFile}
	}
	return src.IDs
}

// newCommand looks up the downloader binary and wires the standard streams
// through.
func newCommand(args []string) (*exec.Cmd, error) {
	path, err := exec.LookPath(ytdlp.YTDLP)
	if err != nil {
		return nil, fmt.Errorf("%s not found in PATH: %w", ytdlp.YTDLP, err)
	}
	cmd := exec.Command(path, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd, nil
}

// CommandString serializes an argument list for display, quoting only tokens
// the shell would split.
func CommandString(args []string) string {
	var b strings.Builder
	b.WriteString(ytdlp.YTDLP)
	for _, arg := range args {
		b.WriteByte(' ')
		if strings.ContainsAny(arg, " \t'\"$&|;<>()*?[]") {
			b.WriteString("'" + strings.ReplaceAll(arg, "'", `'\''`) + "'")
		} else {
			b.WriteString(arg)
		}
	}
	return b.String()
}
