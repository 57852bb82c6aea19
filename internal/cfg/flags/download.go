package cfgflags

import (
	"tubefetch/internal/domain/consts"
	"tubefetch/internal/domain/keys"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// InitDownloadFlags registers the flags shaping the downloader invocation.
func InitDownloadFlags(rootCmd *cobra.Command, v *viper.Viper) error {
	f := rootCmd.Flags()

	f.StringP(keys.Format, "f", "", "Explicit downloader format string, passed through unmodified")
	f.StringP(keys.Quality, "q", "", "Height cap (e.g. 1080) applied when no format string is given")
	f.Int(keys.Fragments, 1, "Concurrent fragment count handed to the downloader")
	f.String(keys.Order, "", "Download order: 'sequential' or 'random'")
	f.Bool(keys.Random, false, "Shuffle the download order")
	f.String(keys.Subtitles, "", "Subtitle languages to embed (e.g. 'en.*,de')")
	f.String(keys.Language, "", "Preferred spoken-audio language for the youtube mode")
	f.String(keys.Cookies, consts.Browser, "Browser to source cookies from")

	return bindAll(v, f,
		keys.Format,
		keys.Quality,
		keys.Fragments,
		keys.Order,
		keys.Random,
		keys.Subtitles,
		keys.Language,
		keys.Cookies,
	)
}
