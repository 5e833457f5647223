package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"
)

// Render writes the summary as human-readable text or as a JSON document.
func Render(w io.Writer, s *Summary, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}

	fmt.Fprintf(w, "Entries: %d\n", s.Entries)
	fmt.Fprintf(w, "Total duration: %v\n",
		(time.Duration(s.TotalDuration * float64(time.Second))).Round(time.Second))

	renderCounts(w, "Projects", s.Projects)
	renderCounts(w, "Languages", s.Languages)
	renderCounts(w, "Commands", s.Commands)
	return nil
}

// renderCounts prints a section sorted by count descending, name ascending
// for ties, so output is deterministic.
func renderCounts(w io.Writer, title string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})

	fmt.Fprintf(w, "\n%s:\n", title)
	for _, name := range names {
		fmt.Fprintf(w, "  %4d  %s\n", counts[name], name)
	}
}
