package process

import (
	"fmt"
	"io"
	"path/filepath"

	"tubefetch/internal/domain/consts"
	"tubefetch/internal/models"
)

// playlistScript is the companion browser script for exporting playlist ids.
// The only parameter is the batch file the collected ids should be saved to.
const playlistScript = `// tubefetch playlist export
// Open the playlist page in a browser and paste this into the developer
// console, then save the printed ids to:
//   %s
// One id per line; lines may carry trailing '#' comments.
(function () {
	var ids = [];
	var seen = {};
	document.querySelectorAll('a[href*="watch?v="]').forEach(function (a) {
		var m = a.href.match(/[?&]v=([A-Za-z0-9_-]{11})/);
		if (m && !seen[m[1]]) {
			seen[m[1]] = true;
			ids.push(m[1]);
		}
	});
	console.log(ids.join('\n'));
})();
`

// EmitPlaylistScript writes the companion script, pointed at the resolved
// target directory and playlist filename. The external downloader is never
// involved on this path.
func EmitPlaylistScript(w io.Writer, s *models.Settings) error {
	playlist := s.Playlist
	if playlist == "" {
		playlist = consts.DefaultPlaylistFile
	}
	if !filepath.IsAbs(playlist) {
		playlist = filepath.Join(s.OutDir, playlist)
	}

	_, err := fmt.Fprintf(w, playlistScript, playlist)
	return err
}
