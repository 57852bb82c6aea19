package builder

import (
	"strings"
	"testing"

	"tubefetch/internal/domain/enums"
	"tubefetch/internal/input"
	"tubefetch/internal/models"
)

func videoSettings() *models.Settings {
	return &models.Settings{
		Mode:      enums.ModeVideo,
		Format:    "bv*+ba/b",
		Fragments: 1,
		Cookies:   "firefox",
		HomeBase:  "/home/u/Movies",
		OutDir:    "/home/u/Movies/series",
	}
}

// hasPair reports whether flag is immediately followed by val in args.
func hasPair(args []string, flag, val string) bool {
	for i := 0; i < len(args)-1; i++ {
		if args[i] == flag && args[i+1] == val {
			return true
		}
	}
	return false
}

func has(args []string, tok string) bool {
	for _, a := range args {
		if a == tok {
			return true
		}
	}
	return false
}

func TestDownloadArgs(t *testing.T) {
	s := videoSettings()
	s.Fragments = 3
	s.Subtitles = "en.*"
	src := &input.Source{IDs: []string{"abc123def45"}}

	args := NewDownloadCommandBuilder(s, src, "/tmp/ws").Args()

	checks := []struct{ flag, val string }{
		{"--cookies-from-browser", "firefox"},
		{"-o", "%(title)s [%(id)s].%(ext)s"},
		{"-P", "temp:/tmp/ws"},
		{"-P", "home:/home/u/Movies"},
		{"-P", "/home/u/Movies/series"},
		{"-f", "bv*+ba/b"},
		{"--concurrent-fragments", "3"},
		{"--sub-langs", "en.*"},
	}
	for _, c := range checks {
		if !hasPair(args, c.flag, c.val) {
			t.Errorf("missing %q %q in %v", c.flag, c.val, args)
		}
	}

	for _, tok := range []string{"--restrict-filenames", "--embed-metadata", "--embed-thumbnail", "--embed-chapters", "--embed-subs"} {
		if !has(args, tok) {
			t.Errorf("missing %q in %v", tok, args)
		}
	}

	if args[len(args)-1] != "abc123def45" {
		t.Errorf("input source must come last, got %v", args)
	}
}

func TestAudioModeArgs(t *testing.T) {
	s := videoSettings()
	s.Mode = enums.ModeAudio
	s.Subtitles = "en"
	args := NewDownloadCommandBuilder(s, &input.Source{IDs: []string{"x"}}, "/tmp/ws").Args()

	if !has(args, "-x") || !hasPair(args, "--audio-format", "mp3") {
		t.Errorf("audio mode must extract and transcode, got %v", args)
	}
	for _, tok := range []string{"--embed-metadata", "--embed-thumbnail", "--embed-chapters", "--embed-subs"} {
		if has(args, tok) {
			t.Errorf("audio mode must not embed %q, got %v", tok, args)
		}
	}
}

func TestVerbosityArgs(t *testing.T) {
	src := &input.Source{IDs: []string{"x"}}

	s := videoSettings()
	if args := NewDownloadCommandBuilder(s, src, "/w").Args(); !has(args, "--progress") || has(args, "-q") || has(args, "-v") {
		t.Errorf("default verbosity: got %v, want --progress only", args)
	}

	s = videoSettings()
	s.Quiet = true
	if args := NewDownloadCommandBuilder(s, src, "/w").Args(); !has(args, "-q") || has(args, "-v") {
		t.Errorf("quiet: got %v, want -q", args)
	}

	s = videoSettings()
	s.Verbose = true
	if args := NewDownloadCommandBuilder(s, src, "/w").Args(); !has(args, "-v") || has(args, "-q") {
		t.Errorf("verbose: got %v, want -v", args)
	}
}

func TestOrderArgs(t *testing.T) {
	src := &input.Source{IDs: []string{"x"}}

	s := videoSettings()
	if args := NewDownloadCommandBuilder(s, src, "/w").Args(); !has(args, "--playlist-random") {
		t.Error("shuffle must be the default order")
	}

	s = videoSettings()
	s.Order = "sequential"
	if args := NewDownloadCommandBuilder(s, src, "/w").Args(); has(args, "--playlist-random") {
		t.Error("sequential order must disable the shuffle")
	}

	s = videoSettings()
	s.Order = "sequential"
	s.Random = true
	if args := NewDownloadCommandBuilder(s, src, "/w").Args(); !has(args, "--playlist-random") {
		t.Error("--random must force the shuffle back on")
	}
}

func TestExtraConfigPassthrough(t *testing.T) {
	s := videoSettings()
	s.Extra = "--no-mtime --retries 5"
	args := NewDownloadCommandBuilder(s, &input.Source{IDs: []string{"x"}}, "/w").Args()

	if !has(args, "--no-mtime") || !hasPair(args, "--retries", "5") {
		t.Errorf("extra config tokens missing from %v", args)
	}
}

func TestBatchFileSource(t *testing.T) {
	s := videoSettings()
	src := &input.Source{BatchFile: "/tmp/ws/batch.txt"}
	args := NewDownloadCommandBuilder(s, src, "/tmp/ws").Args()

	if !hasPair(args, "--batch-file", "/tmp/ws/batch.txt") {
		t.Errorf("batch source missing from %v", args)
	}
}

func TestListFormatsArgs(t *testing.T) {
	s := videoSettings()
	args := NewListFormatsCommandBuilder(s, &input.Source{IDs: []string{"abc"}}).Args()

	if !has(args, "-F") {
		t.Errorf("missing -F in %v", args)
	}
	if !hasPair(args, "--cookies-from-browser", "firefox") {
		t.Errorf("missing cookie source in %v", args)
	}
	if args[len(args)-1] != "abc" {
		t.Errorf("input source must come last, got %v", args)
	}
}

func TestCommandString(t *testing.T) {
	got := CommandString([]string{"-o", "%(title)s [%(id)s].%(ext)s", "-f", "bv*+ba/b"})

	if !strings.HasPrefix(got, "yt-dlp ") {
		t.Errorf("got %q, want the binary name first", got)
	}
	if !strings.Contains(got, "'%(title)s [%(id)s].%(ext)s'") {
		t.Errorf("tokens with shell metacharacters must be quoted, got %q", got)
	}
	if strings.Contains(got, "'-f'") {
		t.Errorf("plain tokens must stay unquoted, got %q", got)
	}
}
