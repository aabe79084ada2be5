package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/cubegen/internal/model"
)

const indexFileName = "_index.yaml"

// RunStore persists and retrieves run records.
type RunStore interface {
	SaveRecord(dir m.Path, record m.RunRecord) error
	LoadRecords(dir m.Path) ([]m.RunRecord, error)
	RegenerateIndex(dir m.Path) error
}

// LocalRunStore keeps one YAML file per run plus an index in a directory.
type LocalRunStore struct{}

// NewRunStore constructs a RunStore implementation.
func NewRunStore() RunStore {
	return &LocalRunStore{}
}

type statsYAML struct {
	Min       float64 `yaml:"min"`
	Max       float64 `yaml:"max"`
	Sum       float64 `yaml:"sum"`
	NonFinite int     `yaml:"non_finite"`
}

type recordYAML struct {
	ID        string    `yaml:"id"`
	Kind      string    `yaml:"kind"`
	Job       string    `yaml:"job"`
	Output    string    `yaml:"output"`
	Grid      [3]int    `yaml:"grid,flow"`
	Atoms     int       `yaml:"atoms"`
	NAO       int       `yaml:"nao"`
	Stats     statsYAML `yaml:"stats"`
	StartedAt time.Time `yaml:"started_at"`
	Duration  string    `yaml:"duration"`
}

type indexEntry struct {
	TotalRuns int            `yaml:"total_runs"`
	ByKind    map[string]int `yaml:"by_kind"`
	Runs      []indexRun     `yaml:"runs"`
}

type indexRun struct {
	ID     string `yaml:"id"`
	Kind   string `yaml:"kind"`
	Output string `yaml:"output"`
	File   string `yaml:"file"`
}

// SaveRecord writes the record to <dir>/<id>.yaml, creating dir if needed.
func (rs *LocalRunStore) SaveRecord(dir m.Path, record m.RunRecord) error {
	if record.ID == "" {
		return fmt.Errorf("run record has no id")
	}

	if err := os.MkdirAll(string(dir), 0o755); err != nil {
		return &OpError{Op: "runs.save", Path: string(dir), Err: err}
	}

	data, err := yaml.Marshal(toRecordYAML(record))
	if err != nil {
		return &OpError{Op: "runs.save", Path: string(dir), Err: err}
	}

	path := filepath.Join(string(dir), record.ID+".yaml")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return &OpError{Op: "runs.save", Path: path, Err: err}
	}

	return nil
}

// LoadRecords reads every run record in dir ordered by start time.
func (rs *LocalRunStore) LoadRecords(dir m.Path) ([]m.RunRecord, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		return nil, &OpError{Op: "runs.load", Path: string(dir), Err: err}
	}

	var records []m.RunRecord

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name == indexFileName || !strings.HasSuffix(name, ".yaml") {
			continue
		}

		path := filepath.Join(string(dir), name)

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, &OpError{Op: "runs.load", Path: path, Err: err}
		}

		var dto recordYAML
		if err := yaml.Unmarshal(data, &dto); err != nil {
			return nil, &OpError{Op: "runs.load", Path: path, Err: err}
		}

		record, err := fromRecordYAML(dto)
		if err != nil {
			return nil, &OpError{Op: "runs.load", Path: path, Err: err}
		}

		records = append(records, record)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].StartedAt.Before(records[j].StartedAt)
	})

	return records, nil
}

// RegenerateIndex rewrites <dir>/_index.yaml from the records in dir.
func (rs *LocalRunStore) RegenerateIndex(dir m.Path) error {
	records, err := rs.LoadRecords(dir)
	if err != nil {
		return err
	}

	idx := indexEntry{TotalRuns: len(records), ByKind: map[string]int{}}
	for _, r := range records {
		idx.ByKind[string(r.Kind)]++
		idx.Runs = append(idx.Runs, indexRun{
			ID:     r.ID,
			Kind:   string(r.Kind),
			Output: string(r.Output),
			File:   r.ID + ".yaml",
		})
	}

	data, err := yaml.Marshal(idx)
	if err != nil {
		return &OpError{Op: "runs.index", Path: string(dir), Err: err}
	}

	path := filepath.Join(string(dir), indexFileName)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return &OpError{Op: "runs.index", Path: path, Err: err}
	}

	return nil
}

func toRecordYAML(r m.RunRecord) recordYAML {
	return recordYAML{
		ID:     r.ID,
		Kind:   string(r.Kind),
		Job:    string(r.Job),
		Output: string(r.Output),
		Grid:   [3]int{r.Nx, r.Ny, r.Nz},
		Atoms:  r.Atoms,
		NAO:    r.NAO,
		Stats: statsYAML{
			Min:       r.Stats.Min,
			Max:       r.Stats.Max,
			Sum:       r.Stats.Sum,
			NonFinite: r.Stats.NonFinite,
		},
		StartedAt: r.StartedAt.UTC(),
		Duration:  r.Duration.String(),
	}
}

func fromRecordYAML(dto recordYAML) (m.RunRecord, error) {
	var d time.Duration

	if dto.Duration != "" {
		var err error
		if d, err = time.ParseDuration(dto.Duration); err != nil {
			return m.RunRecord{}, err
		}
	}

	return m.RunRecord{
		ID:     dto.ID,
		Kind:   m.FieldKind(dto.Kind),
		Job:    m.Path(dto.Job),
		Output: m.Path(dto.Output),
		Nx:     dto.Grid[0],
		Ny:     dto.Grid[1],
		Nz:     dto.Grid[2],
		Atoms:  dto.Atoms,
		NAO:    dto.NAO,
		Stats: m.FieldStats{
			Min:       dto.Stats.Min,
			Max:       dto.Stats.Max,
			Sum:       dto.Stats.Sum,
			NonFinite: dto.Stats.NonFinite,
		},
		StartedAt: dto.StartedAt,
		Duration:  d,
	}, nil
}
