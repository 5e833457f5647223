// Package stats summarizes recorded activity logs
package stats

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/bethropolis/termtrack/internal/tracker"
	"github.com/bethropolis/termtrack/internal/utils"
)

// Summary aggregates log entries by project, language and base command.
type Summary struct {
	Entries       int            `json:"entries"`
	TotalDuration float64        `json:"total_duration"`
	Projects      map[string]int `json:"projects"`
	Languages     map[string]int `json:"languages"`
	Commands      map[string]int `json:"commands"`
}

// Collect reads every day file in the log directory with entries recorded at
// or after the cutoff and aggregates them. Malformed lines are skipped; a
// partially written last line must not break reporting.
func Collect(logDir string, since time.Time, logger utils.Logger) (*Summary, error) {
	if logger == nil {
		logger = &utils.NoopLogger{}
	}

	s := &Summary{
		Projects:  make(map[string]int),
		Languages: make(map[string]int),
		Commands:  make(map[string]int),
	}

	matches, err := filepath.Glob(filepath.Join(logDir, "termtrack-*.jsonl"))
	if err != nil {
		return nil, err
	}

	cutoff := float64(since.Unix())

	for _, path := range matches {
		if err := s.collectFile(path, cutoff, logger); err != nil {
			logger.Debug("stats: skipping %s: %v", path, err)
		}
	}
	return s, nil
}

func (s *Summary) collectFile(path string, cutoff float64, logger utils.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e tracker.Entry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			logger.Debug("stats: malformed line in %s: %v", path, err)
			continue
		}
		if e.Timestamp < cutoff {
			continue
		}

		s.Entries++
		s.TotalDuration += e.Duration
		s.Projects[e.Project]++
		s.Languages[e.Language]++
		s.Commands[e.BaseCommand]++
	}
	return scanner.Err()
}
