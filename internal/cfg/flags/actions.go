package cfgflags

import (
	"tubefetch/internal/domain/keys"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// InitActionFlags registers the mutually exclusive action-selecting flags.
// When several are set, a fixed precedence picks one (see cfg.Resolve).
func InitActionFlags(rootCmd *cobra.Command, v *viper.Viper) error {
	f := rootCmd.Flags()

	f.BoolP(keys.ListFormats, "L", false, "List the downloader formats available for the input ids")
	f.Bool(keys.Duplicates, false, "Scan the target directory for duplicate ids")
	f.Bool(keys.FindIDs, false, "Search the library for files whose names contain the given ids")
	f.Bool(keys.Javascript, false, "Print the companion browser script for exporting playlist ids")

	return bindAll(v, f,
		keys.ListFormats,
		keys.Duplicates,
		keys.FindIDs,
		keys.Javascript,
	)
}
