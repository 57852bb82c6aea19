// Package cfg provides configuration and command-line interface setup for
// tubefetch.
package cfg

import (
	"tubefetch/internal/domain/keys"

	cfgflags "tubefetch/internal/cfg/flags"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCommand builds the root command with every flag bound to v.
// Environment variables act as the fallback for unset flags: every key is a
// single word, so Viper's AutomaticEnv maps e.g. "format" onto FORMAT.
func NewRootCommand(v *viper.Viper, version string) (*cobra.Command, error) {
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:     "tubefetch [ids...]",
		Short:   "tubefetch assembles and runs downloader invocations.",
		Long:    "tubefetch resolves environment variables, flags and the invoked program\nname into a single yt-dlp invocation, or one of its companion operations\n(format listing, duplicate detection, id search, playlist-script export).",
		Version: version,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v.Set(keys.PositionalIDs, args)
			v.Set(keys.Execute, true)
			return nil
		},
	}

	if err := cfgflags.InitProgramFlags(rootCmd, v); err != nil {
		return nil, err
	}
	if err := cfgflags.InitDownloadFlags(rootCmd, v); err != nil {
		return nil, err
	}
	if err := cfgflags.InitFileFlags(rootCmd, v); err != nil {
		return nil, err
	}
	if err := cfgflags.InitActionFlags(rootCmd, v); err != nil {
		return nil, err
	}

	return rootCmd, nil
}
