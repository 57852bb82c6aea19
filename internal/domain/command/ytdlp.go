// Package command holds argument constants for the external downloader.
package command

// YTDLP is the external downloader binary name.
const YTDLP = "yt-dlp"

// General
const (
	BatchFile           = "--batch-file"
	ConcurrentFragments = "--concurrent-fragments"
	CookiesFromBrowser  = "--cookies-from-browser"
	Format              = "-f"
	ListFormats         = "-F"
	Output              = "-o"
	Paths               = "-P"
	PlaylistRandom      = "--playlist-random"
	Progress            = "--progress"
	Quiet               = "-q"
	RestrictFilenames   = "--restrict-filenames"
	Verbose             = "-v"
)

// Audio extraction
const (
	ExtractAudio      = "-x"
	AudioFormat       = "--audio-format"
	DefaultAudioCodec = "mp3"
)

// Embedding
const (
	EmbedChapters  = "--embed-chapters"
	EmbedMetadata  = "--embed-metadata"
	EmbedSubs      = "--embed-subs"
	EmbedThumbnail = "--embed-thumbnail"
	SubLangs       = "--sub-langs"
)

// Path binding prefixes for the downloader's -P flag.
const (
	PathTempPrefix = "temp:"
	PathHomePrefix = "home:"
)
