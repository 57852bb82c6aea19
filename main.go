// Package main is the entrypoint of tubefetch.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"tubefetch/internal/cfg"
	"tubefetch/internal/command/execute"
	"tubefetch/internal/domain/keys"
	"tubefetch/internal/formats"
	"tubefetch/internal/input"
	"tubefetch/internal/paths"
	"tubefetch/internal/process"
	"tubefetch/internal/utils/logging"

	"github.com/spf13/viper"
)

var version = "0.3.0"

func main() {
	os.Exit(run())
}

// run resolves configuration, dispatches the single sub-operation and
// returns the process exit code: 0 on success, 1 on usage or internal
// errors, otherwise the external downloader's own status.
func run() int {
	v := viper.New()

	rootCmd, err := cfg.NewRootCommand(v, version)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	rootCmd.SetArgs(normalizeHelpAliases(os.Args[1:]))

	if err := rootCmd.Execute(); err != nil {
		// Cobra already printed the usage message.
		return 1
	}
	if !v.GetBool(keys.Execute) {
		return 0 // --help or --version
	}

	s, err := cfg.Resolve(v, filepath.Base(os.Args[0]))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	logging.Setup(s.DebugLevel, s.Quiet)

	if err := paths.Apply(s); err != nil {
		logging.E("resolving directories: %v", err)
		return 1
	}
	formats.Apply(s)

	ws, err := input.NewWorkspace(s.DebugLevel > 0)
	if err != nil {
		logging.E("creating workspace: %v", err)
		return 1
	}
	defer ws.Close()

	if s.DebugLevel > 0 {
		logging.Snapshot(s)
	}

	code, err := process.Dispatch(os.Stdout, s, ws, execute.ProcRunner{})
	if err != nil {
		logging.E("%v", err)
		if code == 0 {
			code = 1
		}
	}
	return code
}

// normalizeHelpAliases maps the help spellings Cobra does not know onto
// --help before parsing.
func normalizeHelpAliases(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		if a == "-?" || a == "--usage" {
			a = "--help"
		}
		out[i] = a
	}
	return out
}
