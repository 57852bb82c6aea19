package logging

import (
	"strings"

	"tubefetch/internal/models"
)

// Snapshot emits every resolved settings field as one structured debug event,
// ahead of any external invocation.
func Snapshot(s *models.Settings) {
	Logger.Debug().
		Str("mode", s.Mode.String()).
		Str("content_mode", s.ContentMode.String()).
		Str("format", s.Format).
		Str("quality", s.Quality).
		Int("fragments", s.Fragments).
		Str("order", s.Order).
		Bool("random", s.Random).
		Str("subtitles", s.Subtitles).
		Str("language", s.Language).
		Str("cookies", s.Cookies).
		Str("extra", s.Extra).
		Str("script", s.Script).
		Str("playlist", s.Playlist).
		Str("target", s.Target).
		Str("home-base", s.HomeBase).
		Str("out-dir", s.OutDir).
		Int("debug-level", s.DebugLevel).
		Bool("quiet", s.Quiet).
		Bool("verbose", s.Verbose).
		Bool("dryrun", s.DryRun).
		Str("ids", strings.Join(s.IDs, ",")).
		Str("work-dir", s.WorkDir).
		Msg("resolved settings")
}
