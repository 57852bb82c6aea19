package builder

import (
	"os/exec"

	ytdlp "tubefetch/internal/domain/command"
	"tubefetch/internal/input"
	"tubefetch/internal/models"
)

// ListFormatsCommandBuilder assembles the downloader invocation for the
// format-listing path.
type ListFormatsCommandBuilder struct {
	Settings *models.Settings
	Source   *input.Source
}

// NewListFormatsCommandBuilder returns a builder for one format listing.
func NewListFormatsCommandBuilder(s *models.Settings, src *input.Source) *ListFormatsCommandBuilder {
	return &ListFormatsCommandBuilder{Settings: s, Source: src}
}

// Args assembles the argument list.
func (b *ListFormatsCommandBuilder) Args() []string {
	var args []string
	if b.Settings.Cookies != "" {
		args = append(args, ytdlp.CookiesFromBrowser, b.Settings.Cookies)
	}
	args = append(args, ytdlp.ListFormats)
	return append(args, sourceArgs(b.Source)...)
}

// Command resolves the downloader binary and builds the executable command.
func (b *ListFormatsCommandBuilder) Command() (*exec.Cmd, error) {
	return newCommand(b.Args())
}
