// Package enums holds closed enumerations used across tubefetch.
package enums

// OperatingMode selects the single sub-operation performed per invocation.
// It is computed once at startup and immutable afterwards.
type OperatingMode int

const (
	ModeCustom OperatingMode = iota
	ModeYouTube
	ModePodcast
	ModeAudio
	ModeVideo
	ModeListFormats
	ModeDuplicates
	ModeFindIDs
	ModeJavascript
)

// String returns the mode's canonical name, matching the names accepted by
// ParseMode and the mode-specific batch filenames.
func (m OperatingMode) String() string {
	switch m {
	case ModeYouTube:
		return "youtube"
	case ModePodcast:
		return "podcast"
	case ModeAudio:
		return "audio"
	case ModeVideo:
		return "video"
	case ModeListFormats:
		return "list-formats"
	case ModeDuplicates:
		return "duplicates"
	case ModeFindIDs:
		return "find-ids"
	case ModeJavascript:
		return "javascript"
	default:
		return "custom"
	}
}

// ParseMode maps a mode name (script override or invoked program name, already
// lower-cased and suffix-stripped) onto an OperatingMode. Unrecognized names
// map to ModeCustom.
func ParseMode(name string) OperatingMode {
	switch name {
	case "youtube":
		return ModeYouTube
	case "podcast":
		return ModePodcast
	case "audio":
		return ModeAudio
	case "video":
		return ModeVideo
	case "list-formats":
		return ModeListFormats
	case "duplicates":
		return ModeDuplicates
	case "find-ids":
		return ModeFindIDs
	case "javascript":
		return ModeJavascript
	default:
		return ModeCustom
	}
}

// AudioLike reports whether the mode's content belongs in the music base
// rather than the video base.
func (m OperatingMode) AudioLike() bool {
	return m == ModeAudio || m == ModeJavascript
}

// Action reports whether the mode was forced by an action-selecting flag
// rather than derived from content type.
func (m OperatingMode) Action() bool {
	switch m {
	case ModeListFormats, ModeDuplicates, ModeFindIDs, ModeJavascript:
		return true
	default:
		return false
	}
}
