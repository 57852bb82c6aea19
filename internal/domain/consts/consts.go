// Package consts holds program-wide constants.
package consts

// Conventional batch input filenames, searched in the working directory when
// no positional ids are given.
const (
	GenericBatchFile    string = "download.txt"
	DefaultPlaylistFile string = "playlist.txt"
	BatchFileExt        string = ".txt"
)

// Library base directory names, joined to the user home when the MOVIES or
// MUSIC environment overrides are unset.
const (
	DefaultMoviesDir string = "Movies"
	DefaultMusicDir  string = "Music"
)

// Default downloader format selectors per operating mode.
const (
	FormatYouTube    string = "bv*[height<=2160]+ba[language^=%s]/bv*+ba/b"
	FormatVideo      string = "bv*+ba/b"
	FormatAudio      string = "ba/b"
	FormatPodcast    string = "bv*[height<=480]+ba/b[height<=480]"
	FormatBest       string = "best"
	FormatQualityCap string = "bv*[height<=%s]+ba/b[height<=%s]"
)

// DefaultLanguage is the spoken-audio language preferred by the youtube mode.
const DefaultLanguage string = "en"

// OutputTemplate is the downloader's filename template. The bracketed id tag
// is what the duplicate scanner keys on, so it must stay in the template.
const OutputTemplate string = "%(title)s [%(id)s].%(ext)s"

// VideoIDLen is the length of the platform's video ids.
const VideoIDLen int = 11

// Browser is the default cookie source handed to the downloader.
const Browser string = "firefox"
