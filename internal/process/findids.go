package process

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"tubefetch/internal/models"
	"tubefetch/internal/utils/logging"
)

// FindIDs searches the home base for files whose names contain each id and
// prints the matching paths. When the home base is unreadable, the working
// directory is scanned instead.
func FindIDs(w io.Writer, s *models.Settings, ids []string) error {
	root := s.HomeBase
	if _, err := os.Stat(root); err != nil {
		logging.D(1, "home base %s not readable, scanning %s: %v", root, s.WorkDir, err)
		root = s.WorkDir
	}

	files, err := collectFiles(root)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", root, err)
	}

	for _, id := range ids {
		for _, path := range files {
			if strings.Contains(filepath.Base(path), id) {
				if _, err := fmt.Fprintln(w, path); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// collectFiles walks root and returns the path of every regular file under
// it. Unreadable subtrees are skipped rather than aborting the scan.
func collectFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logging.D(1, "skipping %s: %v", path, err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}
