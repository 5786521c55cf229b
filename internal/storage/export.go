package storage

import (
	"encoding/json"
	"os"
)

type runExport struct {
	Meta   RunMetadata          `json:"meta"`
	Times  []float64            `json:"times"`
	Series map[string][]float64 `json:"series"`
}

// ExportJSONStdout writes a run's metadata and metric series to stdout as
// indented JSON.
func (s *Store) ExportJSONStdout(runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	times, series, err := s.LoadSeries(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(runExport{Meta: *meta, Times: times, Series: series})
}
