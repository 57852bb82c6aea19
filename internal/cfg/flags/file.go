package cfgflags

import (
	"tubefetch/internal/domain/keys"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// InitFileFlags registers the flags selecting input files and directories.
func InitFileFlags(rootCmd *cobra.Command, v *viper.Viper) error {
	f := rootCmd.Flags()

	f.StringP(keys.Script, "s", "", "Operating mode override (audio, video, podcast, youtube, ...)")
	f.StringP(keys.Playlist, "p", "", "Batch input file holding one id per line")
	f.StringP(keys.Target, "t", "", "Destination directory, absolute or relative to the library base")

	return bindAll(v, f, keys.Script, keys.Playlist, keys.Target)
}
