package formats

import (
	"testing"

	"tubefetch/internal/domain/enums"
)

func TestExplicitFormatPassesThrough(t *testing.T) {
	// Format-selector syntax is never validated or rewritten here.
	weird := "bv[use-some-syntax-we-do-not-know]+ba/((("
	if got := Select(enums.ModeAudio, weird, "720", "de"); got != weird {
		t.Errorf("got %q, want the explicit string unmodified", got)
	}
}

func TestModeDefaults(t *testing.T) {
	tests := []struct {
		mode enums.OperatingMode
		want string
	}{
		{enums.ModeYouTube, "bv*[height<=2160]+ba[language^=en]/bv*+ba/b"},
		{enums.ModeVideo, "bv*+ba/b"},
		{enums.ModeAudio, "ba/b"},
		{enums.ModePodcast, "bv*[height<=480]+ba/b[height<=480]"},
		{enums.ModeCustom, "best"},
		{enums.ModeDuplicates, "best"},
	}

	for _, tt := range tests {
		if got := Select(tt.mode, "", "", ""); got != tt.want {
			t.Errorf("mode %v: got %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestYouTubeLanguageConstraint(t *testing.T) {
	if got := Select(enums.ModeYouTube, "", "", "de"); got != "bv*[height<=2160]+ba[language^=de]/bv*+ba/b" {
		t.Errorf("got %q, want the de language constraint", got)
	}
}

func TestQualityCap(t *testing.T) {
	want := "bv*[height<=1080]+ba/b[height<=1080]"
	if got := Select(enums.ModeVideo, "", "1080", ""); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// TestIdempotent checks that re-resolving with the same inputs yields the
// same string every time, including feeding a result back in as explicit.
func TestIdempotent(t *testing.T) {
	first := Select(enums.ModePodcast, "", "", "")
	for i := 0; i < 3; i++ {
		if got := Select(enums.ModePodcast, "", "", ""); got != first {
			t.Fatalf("resolution %d: got %q, want stable %q", i, got, first)
		}
	}
	if got := Select(enums.ModePodcast, first, "", ""); got != first {
		t.Errorf("re-resolving a resolved format changed it: %q -> %q", first, got)
	}
}
