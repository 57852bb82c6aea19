// Package keys holds terminal input keys and internal Viper keys.
package keys

// Download settings.
const (
	Cookies   string = "cookies"
	Format    string = "format"
	Fragments string = "fragments"
	Language  string = "language"
	Order     string = "order"
	Quality   string = "quality"
	Random    string = "random"
	Subtitles string = "subtitles"
)

// Files and directories.
const (
	Movies   string = "movies"
	Music    string = "music"
	Playlist string = "playlist"
	Script   string = "script"
	Target   string = "target"
)

// Action-selecting flags. Each forces the operating mode directly.
const (
	Duplicates  string = "duplicates"
	FindIDs     string = "find-ids"
	Javascript  string = "javascript"
	ListFormats string = "list-formats"
)

// Program behavior.
const (
	Config  string = "config"
	Debug   string = "debug"
	DryRun  string = "dryrun"
	Quiet   string = "quiet"
	Trace   string = "trace"
	Verbose string = "verbose"
)
