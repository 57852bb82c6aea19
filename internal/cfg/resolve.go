package cfg

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"tubefetch/internal/domain/enums"
	"tubefetch/internal/domain/keys"
	"tubefetch/internal/models"

	"github.com/spf13/viper"
)

// Resolve collapses flag, environment and default values into one Settings
// record. It must run after the root command has parsed its arguments.
func Resolve(v *viper.Viper, invokedName string) (*models.Settings, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	s := &models.Settings{
		Format:    v.GetString(keys.Format),
		Quality:   v.GetString(keys.Quality),
		Fragments: v.GetInt(keys.Fragments),
		Order:     strings.ToLower(v.GetString(keys.Order)),
		Random:    v.GetBool(keys.Random),
		Subtitles: v.GetString(keys.Subtitles),
		Language:  v.GetString(keys.Language),
		Cookies:   v.GetString(keys.Cookies),
		Extra:     v.GetString(keys.Config),

		Script:   v.GetString(keys.Script),
		Playlist: v.GetString(keys.Playlist),
		Target:   v.GetString(keys.Target),
		Movies:   v.GetString(keys.Movies),
		Music:    v.GetString(keys.Music),

		DebugLevel: debugLevel(v),
		Quiet:      v.GetBool(keys.Quiet),
		Verbose:    v.GetBool(keys.Verbose),
		DryRun:     v.GetBool(keys.DryRun),

		IDs: v.GetStringSlice(keys.PositionalIDs),

		WorkDir: wd,
	}

	// Verbose wins when both verbosity flags are set.
	if s.Verbose {
		s.Quiet = false
	}
	if s.Fragments < 1 {
		s.Fragments = 1
	}

	s.ContentMode = contentMode(s.Script, invokedName)
	s.Mode = s.ContentMode
	if action, ok := actionMode(v); ok {
		s.Mode = action
	}

	return s, nil
}

// contentMode derives the mode from the explicit script override or, failing
// that, the invoked program name, lower-cased and stripped of any file-type
// suffix.
func contentMode(script, invokedName string) enums.OperatingMode {
	name := script
	if name == "" {
		name = invokedName
	}
	name = strings.ToLower(name)
	name = strings.TrimSuffix(name, filepath.Ext(name))

	return enums.ParseMode(name)
}

// actionMode reports the mode forced by an action-selecting flag, if any.
// These take the highest precedence; when several are set, a fixed order
// picks one: list-formats, then duplicates, then find-ids, then javascript.
func actionMode(v *viper.Viper) (enums.OperatingMode, bool) {
	switch {
	case v.GetBool(keys.ListFormats):
		return enums.ModeListFormats, true
	case v.GetBool(keys.Duplicates):
		return enums.ModeDuplicates, true
	case v.GetBool(keys.FindIDs):
		return enums.ModeFindIDs, true
	case v.GetBool(keys.Javascript):
		return enums.ModeJavascript, true
	default:
		return enums.ModeCustom, false
	}
}

// debugLevel merges the debug and trace toggles with a numeric DEBUG
// environment value: 0 off, 1 debug, 2 trace.
func debugLevel(v *viper.Viper) int {
	lvl := 0

	raw := strings.TrimSpace(v.GetString(keys.Debug))
	if raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			lvl = n
		} else if b, err := strconv.ParseBool(raw); err == nil && b {
			lvl = 1
		}
	}

	if v.GetBool(keys.Trace) && lvl < 2 {
		lvl = 2
	}
	if lvl < 0 {
		lvl = 0
	}
	return lvl
}
