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

	"github.com/google/uuid"
	"github.com/san-kum/moonsim/internal/dynamo"
	"github.com/san-kum/moonsim/internal/sim"
)

const (
	metadataFile = "metadata.json"
	statesFile   = "states.csv"
)

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
	ID         string           `json:"id"`
	Mode       string           `json:"mode"`
	Source     string           `json:"source"`
	Timestamp  time.Time        `json:"timestamp"`
	Bodies     []string         `json:"bodies"`
	Steps      int64            `json:"steps"`
	StepsTaken int64            `json:"steps_taken"`
	Energy     int64            `json:"energy"`
	Periods    [3]int64         `json:"periods"`
	Period     int64            `json:"period"`
	Metrics    map[string]int64 `json:"metrics"`
}

// NewMetadata fills the run summary from a finished result.
func NewMetadata(source string, bodies []string, cfg sim.Config, result *sim.Result) RunMetadata {
	return RunMetadata{
		Mode:       cfg.Mode.String(),
		Source:     source,
		Timestamp:  time.Now(),
		Bodies:     bodies,
		Steps:      cfg.Steps,
		StepsTaken: result.StepsTaken,
		Energy:     result.Energy,
		Periods:    result.Periods,
		Period:     result.Period,
		Metrics:    result.Metrics,
	}
}

// Save writes the metadata and any recorded states under a fresh run id.
func (s *Store) Save(meta RunMetadata, result *sim.Result) (string, error) {
	meta.ID = fmt.Sprintf("%s_%s", meta.Mode, uuid.NewString())
	runDir := filepath.Join(s.baseDir, meta.ID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, statesFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := writeStates(w, result.States, nil); err != nil {
		return "", err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return meta.ID, nil
}

var columns = [...]string{"px", "py", "pz", "vx", "vy", "vz"}

// writeStates writes one row per state; rows are numbered by index when
// steps is nil.
func writeStates(w *csv.Writer, states []dynamo.State, steps []int64) error {
	if len(states) == 0 {
		return nil
	}

	header := []string{"step"}
	for i := range states[0] {
		for _, c := range columns {
			header = append(header, fmt.Sprintf("b%d_%s", i, c))
		}
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, x := range states {
		step := int64(i)
		if i < len(steps) {
			step = steps[i]
		}
		row := make([]string, 0, len(header))
		row = append(row, strconv.FormatInt(step, 10))
		for _, b := range x {
			for _, a := range dynamo.Axes {
				row = append(row, strconv.FormatInt(b.Pos[a], 10))
			}
			for _, a := range dynamo.Axes {
				row = append(row, strconv.FormatInt(b.Vel[a], 10))
			}
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// List returns every stored run, newest first.
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

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadStates reads the recorded trajectory and the step of each row.
func (s *Store) LoadStates(runID string) ([]dynamo.State, []int64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, statesFile))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	if len(records) < 2 {
		return []dynamo.State{}, []int64{}, nil
	}

	n := (len(records[0]) - 1) / len(columns)
	states := make([]dynamo.State, 0, len(records)-1)
	steps := make([]int64, 0, len(records)-1)

	for i, record := range records[1:] {
		vals := make([]int64, len(record))
		for j, field := range record {
			v, err := strconv.ParseInt(field, 10, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("%s row %d: %w", statesFile, i+1, err)
			}
			vals[j] = v
		}
		steps = append(steps, vals[0])

		x := make(dynamo.State, n)
		for b := 0; b < n; b++ {
			off := 1 + b*len(columns)
			copy(x[b].Pos[:], vals[off:off+3])
			copy(x[b].Vel[:], vals[off+3:off+6])
		}
		states = append(states, x)
	}

	return states, steps, nil
}
