// Package formats selects the downloader format specification for an
// invocation.
package formats

import (
	"fmt"

	"tubefetch/internal/domain/consts"
	"tubefetch/internal/domain/enums"
	"tubefetch/internal/models"
)

// Apply fills s.Format with the selected specification when none was given
// explicitly.
func Apply(s *models.Settings) {
	s.Format = Select(s.Mode, s.Format, s.Quality, s.Language)
}

// Select picks the format specification. An explicit format string is used
// unmodified; the program never validates format-selector syntax, that is the
// downloader's job. Otherwise a quality height cap or the mode's canned
// default applies. Resolution is pure: the same inputs always yield the same
// string.
func Select(mode enums.OperatingMode, format, quality, language string) string {
	if format != "" {
		return format
	}
	if quality != "" {
		return fmt.Sprintf(consts.FormatQualityCap, quality, quality)
	}

	switch mode {
	case enums.ModeYouTube:
		if language == "" {
			language = consts.DefaultLanguage
		}
		return fmt.Sprintf(consts.FormatYouTube, language)
	case enums.ModeVideo:
		return consts.FormatVideo
	case enums.ModeAudio:
		return consts.FormatAudio
	case enums.ModePodcast:
		return consts.FormatPodcast
	default:
		return consts.FormatBest
	}
}
