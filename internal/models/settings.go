// Package models holds shared data structures.
package models

import "tubefetch/internal/domain/enums"

// Settings is the fully resolved configuration for one invocation. Each field
// holds exactly one concrete value, collapsed from CLI flag, environment
// variable and built-in default before any component reads it.
type Settings struct {
	Mode enums.OperatingMode

	// ContentMode is the mode derived from the script override or invoked
	// name alone. It equals Mode unless an action-selecting flag forced the
	// operation, and keeps content decisions (mode-named batch files) stable
	// under action flags: `audio -L` still reads audio.txt.
	ContentMode enums.OperatingMode

	// Download settings.
	Format    string
	Quality   string
	Fragments int
	Order     string
	Random    bool
	Subtitles string
	Language  string
	Cookies   string
	Extra     string // passthrough string, split into tokens at assembly time

	// Files and directories.
	Script   string // explicit mode override, empty when derived from argv[0]
	Playlist string
	Target   string // raw target override, may be empty
	Movies   string // video base override from MOVIES
	Music    string // audio base override from MUSIC

	// Program behavior.
	DebugLevel int
	Quiet      bool
	Verbose    bool
	DryRun     bool

	// Derived paths, filled by the path resolver.
	HomeBase string // library base for the mode
	OutDir   string // resolved destination directory

	IDs []string // positional ids, passed through verbatim

	WorkDir string // caller's working directory at startup
}
