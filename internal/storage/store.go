// Package storage persists runs on disk: one directory per run holding a
// JSON metadata file and a CSV trajectory.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"
)

var ErrNotFound = errors.New("storage: run not found")

type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID             string             `json:"id"`
	Model          string             `json:"model"`
	Timestamp      time.Time          `json:"timestamp"`
	Seed           uint64             `json:"seed"`
	Dt             float64            `json:"dt"`
	Duration       float64            `json:"duration"`
	Steps          int                `json:"steps"`
	Stepper        string             `json:"stepper"`
	Representation string             `json:"representation"`
	Params         map[string]float64 `json:"params,omitempty"`
	Metrics        map[string]float64 `json:"metrics"`
}

// Trajectory is a sampled run: States[i] was taken at Times[i].
type Trajectory struct {
	Times  []float64   `json:"times"`
	States [][]float64 `json:"states"`
}

// Save writes meta and traj under a new run directory and returns the run
// ID. meta.ID and meta.Timestamp are assigned here.
func (s *Store) Save(meta RunMetadata, traj Trajectory) (string, error) {
	now := s.now()
	meta.ID = fmt.Sprintf("%s_%d", meta.Model, now.UnixNano())
	meta.Timestamp = now
	runDir := filepath.Join(s.baseDir, meta.ID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}
	if err := writeJSON(filepath.Join(runDir, "metadata.json"), meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "states.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()
	if err := WriteCSV(csvFile, traj); err != nil {
		return "", fmt.Errorf("storage: write states: %w", err)
	}
	return meta.ID, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteCSV writes a header row "time,x0,x1,..." followed by one row per
// sample. Values are written with full precision.
func WriteCSV(w io.Writer, traj Trajectory) error {
	cw := csv.NewWriter(w)
	if len(traj.States) == 0 {
		cw.Flush()
		return cw.Error()
	}
	header := []string{"time"}
	for i := range traj.States[0] {
		header = append(header, fmt.Sprintf("x%d", i))
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for i, state := range traj.States {
		row := make([]string, 0, len(state)+1)
		row = append(row, strconv.FormatFloat(traj.Times[i], 'g', -1, 64))
		for _, v := range state {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// List returns the metadata of every readable run, oldest first.
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
	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("storage: decode %s: %w", runID, err)
	}
	return &meta, nil
}

func (s *Store) LoadTrajectory(runID string) (Trajectory, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "states.csv"))
	if err != nil {
		if os.IsNotExist(err) {
			return Trajectory{}, fmt.Errorf("%w: %s", ErrNotFound, runID)
		}
		return Trajectory{}, err
	}
	defer file.Close()
	return ReadCSV(file)
}

// ReadCSV parses the format written by WriteCSV.
func ReadCSV(r io.Reader) (Trajectory, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return Trajectory{}, err
	}

	traj := Trajectory{Times: []float64{}, States: [][]float64{}}
	if len(records) < 2 {
		return traj, nil
	}
	for i, record := range records[1:] {
		if len(record) == 0 {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return Trajectory{}, fmt.Errorf("storage: row %d: %w", i+1, err)
		}
		state := make([]float64, 0, len(record)-1)
		for _, field := range record[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return Trajectory{}, fmt.Errorf("storage: row %d: %w", i+1, err)
			}
			state = append(state, v)
		}
		traj.Times = append(traj.Times, t)
		traj.States = append(traj.States, state)
	}
	return traj, nil
}

func (s *Store) Delete(runID string) error {
	dir := filepath.Join(s.baseDir, runID)
	if _, err := os.Stat(filepath.Join(dir, "metadata.json")); err != nil {
		return fmt.Errorf("%w: %s", ErrNotFound, runID)
	}
	return os.RemoveAll(dir)
}

// Export is the single-document JSON form of a run.
type Export struct {
	RunMetadata
	Trajectory
}

// ExportJSON writes meta and traj to w as one indented JSON document.
func ExportJSON(w io.Writer, meta RunMetadata, traj Trajectory) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Export{RunMetadata: meta, Trajectory: traj})
}
