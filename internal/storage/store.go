package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/wavelab/internal/sim"
	"github.com/san-kum/wavelab/internal/solver"
)

// Store keeps completed runs under a base directory, one subdirectory per
// run holding metadata.json, series.csv (per-step metric values) and
// field.csv (the final field). The kernel itself never touches disk; the
// store is driven only by the CLI.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Nx        int                `json:"nx"`
	Ny        int                `json:"ny"`
	Dx        float64            `json:"dx"`
	Dy        float64            `json:"dy"`
	WaveSpeed float64            `json:"wave_speed"`
	Dt        float64            `json:"dt"`
	Steps     int                `json:"steps"`
	Metrics   map[string]float64 `json:"metrics"`
}

func (s *Store) Save(cf solver.Coeffs, result *sim.Result) (string, error) {
	runID := fmt.Sprintf("wave_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		Nx:        cf.Nx,
		Ny:        cf.Ny,
		Dx:        cf.Dx,
		Dy:        cf.Dy,
		WaveSpeed: cf.C,
		Dt:        cf.Dt,
		Steps:     result.StepsTaken,
		Metrics:   result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := s.writeSeries(filepath.Join(runDir, "series.csv"), result); err != nil {
		return "", err
	}

	if err := s.writeField(filepath.Join(runDir, "field.csv"), result.Final); err != nil {
		return "", err
	}

	return runID, nil
}

func (s *Store) writeSeries(path string, result *sim.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	names := make([]string, 0, len(result.Series))
	for name := range result.Series {
		names = append(names, name)
	}
	sort.Strings(names)

	header := append([]string{"time"}, names...)
	if err := w.Write(header); err != nil {
		return err
	}

	for i, t := range result.Times {
		row := []string{strconv.FormatFloat(t, 'g', 12, 64)}
		for _, name := range names {
			series := result.Series[name]
			v := 0.0
			if i < len(series) {
				v = series[i]
			}
			row = append(row, strconv.FormatFloat(v, 'g', 12, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) writeField(path string, snap sim.Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	row := make([]string, snap.Ny)
	for i := 0; i < snap.Nx; i++ {
		for j := 0; j < snap.Ny; j++ {
			row[j] = strconv.FormatFloat(snap.At(i, j), 'g', 12, 64)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadSeries reads back the per-step metric series of a run.
func (s *Store) LoadSeries(runID string) (times []float64, series map[string][]float64, err error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "series.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 1 {
		return nil, nil, fmt.Errorf("storage: empty series for run %s", runID)
	}

	header := records[0]
	series = make(map[string][]float64, len(header)-1)

	for _, rec := range records[1:] {
		for col, cell := range rec {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, nil, err
			}
			if col == 0 {
				times = append(times, v)
			} else {
				series[header[col]] = append(series[header[col]], v)
			}
		}
	}
	return times, series, nil
}
