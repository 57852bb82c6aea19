package process

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"

	"tubefetch/internal/domain/consts"
	"tubefetch/internal/models"
)

// idTag matches the bracketed id embedded in downloaded filenames by the
// output template.
var idTag = regexp.MustCompile(fmt.Sprintf(`\[([^\[\]]{%d})\]`, consts.VideoIDLen))

// FindDuplicates scans the destination directory for bracketed id tags,
// reports each id carried by more than one file, then lists the files
// carrying those ids via the id search.
func FindDuplicates(w io.Writer, s *models.Settings) error {
	entries, err := os.ReadDir(s.OutDir)
	if err != nil {
		return fmt.Errorf("reading target directory %s: %w", s.OutDir, err)
	}

	counts := make(map[string]int)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if m := lastIDTag(e.Name()); m != "" {
			counts[m]++
		}
	}

	var dupes []string
	for id, n := range counts {
		if n > 1 {
			dupes = append(dupes, id)
		}
	}
	sort.Strings(dupes)

	for _, id := range dupes {
		if _, err := fmt.Fprintf(w, "duplicate id: %s\n", id); err != nil {
			return err
		}
	}
	if len(dupes) == 0 {
		return nil
	}
	return FindIDs(w, s, dupes)
}

// lastIDTag extracts the id from the final bracketed tag in a filename; the
// suffix position is where the output template puts it.
func lastIDTag(name string) string {
	matches := idTag.FindAllStringSubmatch(name, -1)
	if len(matches) == 0 {
		return ""
	}
	return matches[len(matches)-1][1]
}
