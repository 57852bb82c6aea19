// Package paths resolves the library base and destination directory for an
// invocation.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"tubefetch/internal/domain/consts"
	"tubefetch/internal/domain/enums"
	"tubefetch/internal/models"
)

// Apply fills HomeBase and OutDir on s.
func Apply(s *models.Settings) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	s.HomeBase = HomeBase(s.Mode, s.Movies, s.Music, home)
	s.OutDir = ResolveTarget(s.Target, s.HomeBase, s.WorkDir, home)
	return nil
}

// HomeBase returns the library base directory for a mode: audio-like modes
// use the music base, everything else the video base. Explicit overrides win
// over the fixed defaults under the user home.
func HomeBase(mode enums.OperatingMode, movies, music, home string) string {
	if mode.AudioLike() {
		if music != "" {
			return filepath.Clean(music)
		}
		return filepath.Join(home, consts.DefaultMusicDir)
	}
	if movies != "" {
		return filepath.Clean(movies)
	}
	return filepath.Join(home, consts.DefaultMoviesDir)
}

// ResolveTarget computes the destination directory. An explicit target
// starting with '~' has the tilde expanded to the user home directory; one
// that is absolute or starts with '.' is used verbatim; anything else is
// taken relative to the home base. Without an explicit target, the working
// directory is kept when it already lives inside the home base ("already
// inside the library, stay here"), else the home base itself is used.
func ResolveTarget(target, homeBase, wd, home string) string {
	if target != "" {
		if strings.HasPrefix(target, "~") {
			return filepath.Join(home, strings.TrimPrefix(target[1:], string(filepath.Separator)))
		}
		if filepath.IsAbs(target) || strings.HasPrefix(target, ".") {
			return filepath.Clean(target)
		}
		return filepath.Join(homeBase, target)
	}

	if isWithin(homeBase, wd) {
		return filepath.Clean(wd)
	}
	return filepath.Clean(homeBase)
}

// isWithin reports whether path is base or a descendant of it.
func isWithin(base, path string) bool {
	rel, err := filepath.Rel(filepath.Clean(base), filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
