package adapter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/mouse-blink/cubegen/internal/engine"
	m "github.com/mouse-blink/cubegen/internal/model"
)

// JobLoader reads molecule job descriptions.
type JobLoader interface {
	Load(path m.Path) (m.Job, error)
}

// LocalJobLoader reads YAML, TOML and JSON job files from disk.
type LocalJobLoader struct{}

// NewJobLoader constructs a JobLoader implementation.
func NewJobLoader() JobLoader {
	return &LocalJobLoader{}
}

type atomFile struct {
	Symbol   string     `yaml:"symbol" toml:"symbol" json:"symbol"`
	Charge   *float64   `yaml:"charge,omitempty" toml:"charge,omitempty" json:"charge,omitempty"`
	Position [3]float64 `yaml:"position" toml:"position" json:"position"`
}

type shellFile struct {
	Atom         int       `yaml:"atom" toml:"atom" json:"atom"`
	L            int       `yaml:"l" toml:"l" json:"l"`
	Exponents    []float64 `yaml:"exponents" toml:"exponents" json:"exponents"`
	Coefficients []float64 `yaml:"coefficients" toml:"coefficients" json:"coefficients"`
}

type gridFile struct {
	Nx         *int     `yaml:"nx,omitempty" toml:"nx,omitempty" json:"nx,omitempty"`
	Ny         *int     `yaml:"ny,omitempty" toml:"ny,omitempty" json:"ny,omitempty"`
	Nz         *int     `yaml:"nz,omitempty" toml:"nz,omitempty" json:"nz,omitempty"`
	Margin     *float64 `yaml:"margin,omitempty" toml:"margin,omitempty" json:"margin,omitempty"`
	Resolution *float64 `yaml:"resolution,omitempty" toml:"resolution,omitempty" json:"resolution,omitempty"`
}

type jobFile struct {
	Name          string      `yaml:"name" toml:"name" json:"name"`
	Units         string      `yaml:"units" toml:"units" json:"units"`
	Basis         string      `yaml:"basis" toml:"basis" json:"basis"`
	Atoms         []atomFile  `yaml:"atoms" toml:"atoms" json:"atoms"`
	Shells        []shellFile `yaml:"shells" toml:"shells" json:"shells"`
	DensityMatrix [][]float64 `yaml:"density_matrix" toml:"density_matrix" json:"density_matrix"`
	MOCoeffs      [][]float64 `yaml:"mo_coeffs" toml:"mo_coeffs" json:"mo_coeffs"`
	Grid          gridFile    `yaml:"grid" toml:"grid" json:"grid"`
}

// Load decodes the job file at path, choosing the decoder by extension.
func (l *LocalJobLoader) Load(path m.Path) (m.Job, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Job{}, &OpError{Op: "job.load", Path: string(path), Err: err}
	}

	var dto jobFile

	switch ext := strings.ToLower(filepath.Ext(string(path))); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &dto)
	case ".toml":
		err = toml.Unmarshal(data, &dto)
	case ".json":
		err = json.Unmarshal(data, &dto)
	default:
		err = fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if err != nil {
		return m.Job{}, &OpError{Op: "job.load", Path: string(path), Err: err}
	}

	job, err := mapJob(dto)
	if err != nil {
		return m.Job{}, &OpError{Op: "job.load", Path: string(path), Err: err}
	}

	if job.Name == "" {
		job.Name = strings.TrimSuffix(filepath.Base(string(path)), filepath.Ext(string(path)))
	}

	return job, nil
}

func mapJob(dto jobFile) (m.Job, error) {
	units := m.Units(strings.ToLower(strings.TrimSpace(dto.Units)))

	scale := 1.0

	switch units {
	case "", m.UnitsAngstrom:
		units = m.UnitsAngstrom
		scale = 1 / m.BohrRadius
	case m.UnitsBohr:
	default:
		return m.Job{}, fmt.Errorf("%w: units %q", ErrInvalidJob, dto.Units)
	}

	if len(dto.Atoms) == 0 {
		return m.Job{}, fmt.Errorf("%w: no atoms", ErrInvalidJob)
	}

	if dto.Basis == "" && len(dto.Shells) == 0 {
		return m.Job{}, fmt.Errorf("%w: neither basis nor shells given", ErrInvalidJob)
	}

	job := m.Job{
		Name:          dto.Name,
		Units:         units,
		Basis:         dto.Basis,
		DensityMatrix: dto.DensityMatrix,
		MOCoeffs:      dto.MOCoeffs,
		Grid: m.GridOverride{
			Nx:         dto.Grid.Nx,
			Ny:         dto.Grid.Ny,
			Nz:         dto.Grid.Nz,
			Margin:     dto.Grid.Margin,
			Resolution: dto.Grid.Resolution,
		},
	}

	for i, a := range dto.Atoms {
		z, err := engine.AtomicNumber(a.Symbol)
		if err != nil {
			return m.Job{}, fmt.Errorf("atom %d: %w", i, err)
		}

		charge := float64(z)
		if a.Charge != nil {
			charge = *a.Charge
		}

		job.Atoms = append(job.Atoms, m.Atom{
			Symbol:   a.Symbol,
			Z:        z,
			Charge:   charge,
			Position: m.Vec3(a.Position).Scale(scale),
		})
	}

	for _, s := range dto.Shells {
		job.Shells = append(job.Shells, m.ShellSpec{
			Atom:         s.Atom,
			L:            s.L,
			Exponents:    s.Exponents,
			Coefficients: s.Coefficients,
		})
	}

	return job, nil
}
