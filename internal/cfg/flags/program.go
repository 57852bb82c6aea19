package cfgflags

import (
	"tubefetch/internal/domain/keys"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// InitProgramFlags registers flags related to the core program, e.g. logging
// verbosity and dry-run.
func InitProgramFlags(rootCmd *cobra.Command, v *viper.Viper) error {
	f := rootCmd.Flags()

	f.BoolP(keys.Debug, "D", false, "Debug output; keeps the scratch workspace for inspection")
	f.BoolP(keys.Trace, "T", false, "Trace output, more verbose than debug")
	f.BoolP(keys.Quiet, "Q", false, "Suppress non-error output")
	f.BoolP(keys.Verbose, "V", false, "Verbose downloader output")
	f.Bool(keys.DryRun, false, "Print the assembled command without executing it")

	return bindAll(v, f,
		keys.Debug,
		keys.Trace,
		keys.Quiet,
		keys.Verbose,
		keys.DryRun,
	)
}
