package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/cubegen/internal/model"
)

const h2YAML = `name: h2
units: bohr
basis: sto-3g
atoms:
  - {symbol: H, position: [0, 0, 0]}
  - {symbol: H, position: [1.4, 0, 0]}
density_matrix:
  - [0.6, 0.6]
  - [0.6, 0.6]
`

const h2TOML = `units = "angstrom"
basis = "sto-3g"
density_matrix = [[0.6, 0.6], [0.6, 0.6]]

[[atoms]]
symbol = "H"
position = [0.0, 0.0, 0.0]

[[atoms]]
symbol = "H"
position = [0.74, 0.0, 0.0]
charge = 0.5
`

const h2JSON = `{"units": "bohr", "atoms": [{"symbol": "he", "position": [0, 0, 0]}],
 "shells": [{"atom": 0, "l": 0, "exponents": [1.0], "coefficients": [1.0]}],
 "density_matrix": [[2.0]], "mo_coeffs": [[1.0]]}`

func writeJob(t *testing.T, name, content string) m.Path {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return m.Path(path)
}

func TestLocalJobLoader_YAML(t *testing.T) {
	t.Parallel()

	job, err := NewJobLoader().Load(writeJob(t, "h2.yaml", h2YAML))
	require.NoError(t, err)

	assert.Equal(t, "h2", job.Name)
	assert.Equal(t, m.UnitsBohr, job.Units)
	require.Len(t, job.Atoms, 2)
	assert.Equal(t, 1, job.Atoms[1].Z)
	assert.Equal(t, 1.0, job.Atoms[1].Charge)
	assert.Equal(t, m.Vec3{1.4, 0, 0}, job.Atoms[1].Position)
	assert.Len(t, job.DensityMatrix, 2)
	assert.Equal(t, m.GridOverride{}, job.Grid)
}

func TestLocalJobLoader_GridBlock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"yaml", "h2.yaml", h2YAML + "grid:\n  nx: 20\n  margin: 4.5\n"},
		{"toml", "h2.toml", "basis = \"sto-3g\"\n\n[[atoms]]\nsymbol = \"H\"\nposition = [0.0, 0.0, 0.0]\n\n[grid]\nnx = 20\nmargin = 4.5\n"},
		{"json", "h2.json", `{"basis": "sto-3g", "atoms": [{"symbol": "H", "position": [0, 0, 0]}], "grid": {"nx": 20, "margin": 4.5}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			job, err := NewJobLoader().Load(writeJob(t, tt.file, tt.content))
			require.NoError(t, err)

			require.NotNil(t, job.Grid.Nx)
			assert.Equal(t, 20, *job.Grid.Nx)
			require.NotNil(t, job.Grid.Margin)
			assert.InDelta(t, 4.5, *job.Grid.Margin, 1e-12)
			assert.Nil(t, job.Grid.Ny)
			assert.Nil(t, job.Grid.Nz)
			assert.Nil(t, job.Grid.Resolution)
		})
	}
}

func TestLocalJobLoader_TOMLConvertsAngstrom(t *testing.T) {
	t.Parallel()

	job, err := NewJobLoader().Load(writeJob(t, "h2.toml", h2TOML))
	require.NoError(t, err)

	assert.Equal(t, "h2", job.Name)
	assert.Equal(t, m.UnitsAngstrom, job.Units)
	assert.InDelta(t, 0.74/m.BohrRadius, job.Atoms[1].Position[0], 1e-12)
	assert.Equal(t, 0.5, job.Atoms[1].Charge)
}

func TestLocalJobLoader_JSONShells(t *testing.T) {
	t.Parallel()

	job, err := NewJobLoader().Load(writeJob(t, "he.json", h2JSON))
	require.NoError(t, err)

	assert.Equal(t, 2, job.Atoms[0].Z)
	require.Len(t, job.Shells, 1)
	assert.Equal(t, []float64{1.0}, job.Shells[0].Exponents)
	assert.Equal(t, [][]float64{{1.0}}, job.MOCoeffs)
}

func TestLocalJobLoader_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		content string
		target  error
	}{
		{"unsupported extension", "job.ini", "x=1", ErrUnsupportedFormat},
		{"no atoms", "job.yaml", "basis: sto-3g\n", ErrInvalidJob},
		{"no basis", "job.yaml", "atoms:\n  - {symbol: H, position: [0,0,0]}\n", ErrInvalidJob},
		{"bad units", "job.yaml", "units: furlong\nbasis: sto-3g\natoms:\n  - {symbol: H, position: [0,0,0]}\n", ErrInvalidJob},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewJobLoader().Load(writeJob(t, tt.file, tt.content))
			require.ErrorIs(t, err, tt.target)
		})
	}

	_, err := NewJobLoader().Load(m.Path(filepath.Join(t.TempDir(), "absent.yaml")))
	require.Error(t, err)
}
