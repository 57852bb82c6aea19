package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"tubefetch/internal/domain/consts"
	"tubefetch/internal/models"
	"tubefetch/internal/utils/logging"
)

// Source is the resolved downloader input: either a literal id list or a
// normalized batch file. The two are mutually exclusive.
type Source struct {
	IDs       []string
	BatchFile string
}

// IsBatch reports whether the input comes from a batch file.
func (s *Source) IsBatch() bool {
	return s.BatchFile != ""
}

// Resolve determines the input source for this invocation. Positional ids win
// outright and pass through verbatim. Otherwise the conventional batch files
// are tried in priority order (mode-named file, generic file, playlist file),
// falling back to standard input. A missing or unreadable candidate is never
// fatal: the chain just moves on. The winning stream is normalized into a
// fresh file inside the workspace.
func Resolve(s *models.Settings, ws *Workspace) (*Source, error) {
	if len(s.IDs) > 0 {
		return &Source{IDs: s.IDs}, nil
	}

	r, name := openBatchInput(s)
	if c, ok := r.(io.Closer); ok && r != os.Stdin {
		defer c.Close()
	}
	logging.D(1, "reading batch input from %s", name)

	batch := filepath.Join(ws.Dir, "batch"+consts.BatchFileExt)
	if err := normalizeTo(r, batch); err != nil {
		return nil, fmt.Errorf("normalizing batch input from %s: %w", name, err)
	}

	return &Source{BatchFile: batch}, nil
}

// openBatchInput returns the first readable batch candidate, else stdin.
func openBatchInput(s *models.Settings) (io.Reader, string) {
	for _, cand := range candidates(s) {
		f, err := os.Open(cand)
		if err != nil {
			continue
		}
		if info, err := f.Stat(); err != nil || info.IsDir() {
			f.Close()
			continue
		}
		return f, cand
	}
	return os.Stdin, "stdin"
}

// candidates lists the conventional batch filenames in priority order:
// the mode-named file, then the generic file, then the explicit playlist
// file (or its default name). The mode-named file follows the content mode,
// so action flags do not change which batch file is read.
func candidates(s *models.Settings) []string {
	playlist := s.Playlist
	if playlist == "" {
		playlist = consts.DefaultPlaylistFile
	}

	names := []string{
		s.ContentMode.String() + consts.BatchFileExt,
		consts.GenericBatchFile,
		playlist,
	}

	paths := make([]string, 0, len(names))
	for _, n := range names {
		if !filepath.IsAbs(n) {
			n = filepath.Join(s.WorkDir, n)
		}
		paths = append(paths, n)
	}
	return paths
}

// normalizeTo strips trailing comments and surrounding whitespace from each
// line, drops lines left empty, and writes the result to dst.
func normalizeTo(r io.Reader, dst string) error {
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.Index(line, "#"); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if _, err := w.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return w.Flush()
}
