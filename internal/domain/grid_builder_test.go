package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/cubegen/internal/model"
)

func TestGridBuilder_Build_Layout(t *testing.T) {
	geom := h2Job().Geometry()

	grid, err := NewGridBuilder().Build(geom, GridOptions{Nx: 3, Ny: 4, Nz: 5, Margin: DefaultMargin})
	require.NoError(t, err)

	assert.Equal(t, 60, grid.NGrid())
	require.Len(t, grid.Coords, 60)
	assert.Equal(t, m.Vec3{-3, -3, -3}, grid.Origin)

	// extent = max - min + 2*margin
	assert.InDelta(t, 6.0/3, grid.Voxel[0][0], 1e-12)
	assert.InDelta(t, 6.0/4, grid.Voxel[1][1], 1e-12)
	assert.InDelta(t, 7.4/5, grid.Voxel[2][2], 1e-12)
	assert.Zero(t, grid.Voxel[0][1])
	assert.Zero(t, grid.Voxel[2][0])

	for ix := range grid.Nx {
		for iy := range grid.Ny {
			for iz := range grid.Nz {
				want := m.Vec3{
					grid.Origin[0] + float64(ix)*grid.Voxel[0][0],
					grid.Origin[1] + float64(iy)*grid.Voxel[1][1],
					grid.Origin[2] + float64(iz)*grid.Voxel[2][2],
				}
				got := grid.Coords[grid.Index(ix, iy, iz)]
				assert.InDeltaSlice(t, want[:], got[:], 1e-12, "point (%d,%d,%d)", ix, iy, iz)
			}
		}
	}

	// z varies fastest
	assert.Equal(t, grid.Coords[0][0], grid.Coords[1][0])
	assert.NotEqual(t, grid.Coords[0][2], grid.Coords[1][2])
}

func TestGridBuilder_Build_Deterministic(t *testing.T) {
	geom := h2Job().Geometry()
	opts := GridOptions{Nx: 7, Ny: 6, Nz: 5, Margin: 2.5}

	first, err := NewGridBuilder().Build(geom, opts)
	require.NoError(t, err)

	second, err := NewGridBuilder().Build(geom, opts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGridBuilder_Build_Resolution(t *testing.T) {
	grid, err := NewGridBuilder().Build(h2Job().Geometry(), GridOptions{Nx: 80, Ny: 80, Nz: 80, Margin: 3, Resolution: 0.5})
	require.NoError(t, err)

	assert.Equal(t, 12, grid.Nx)
	assert.Equal(t, 12, grid.Ny)
	assert.Equal(t, 15, grid.Nz)
	assert.Len(t, grid.Coords, 12*12*15)
}

func TestGridBuilder_Build_SingleAtomNoMargin(t *testing.T) {
	grid, err := NewGridBuilder().Build(hydrogenJob().Geometry(), GridOptions{Nx: 2, Ny: 2, Nz: 2})
	require.NoError(t, err)

	for _, c := range grid.Coords {
		assert.Equal(t, m.Vec3{}, c)
	}
}

func TestGridOptions_Override(t *testing.T) {
	nx, res := 10, 0.25

	opts := DefaultGridOptions().Override(m.GridOverride{Nx: &nx, Resolution: &res})

	assert.Equal(t, GridOptions{Nx: 10, Ny: DefaultPoints, Nz: DefaultPoints, Margin: DefaultMargin, Resolution: 0.25}, opts)
	assert.Equal(t, DefaultGridOptions(), DefaultGridOptions().Override(m.GridOverride{}))
}

func TestGridBuilder_Build_Errors(t *testing.T) {
	tests := []struct {
		name string
		geom m.Geometry
		opts GridOptions
		want error
	}{
		{"zero nx", h2Job().Geometry(), GridOptions{Nx: 0, Ny: 4, Nz: 4, Margin: 3}, ErrInvalidDimensions},
		{"negative nz", h2Job().Geometry(), GridOptions{Nx: 4, Ny: 4, Nz: -1, Margin: 3}, ErrInvalidDimensions},
		{"negative margin", h2Job().Geometry(), GridOptions{Nx: 4, Ny: 4, Nz: 4, Margin: -1}, ErrInvalidDimensions},
		{"negative resolution", h2Job().Geometry(), GridOptions{Nx: 4, Ny: 4, Nz: 4, Resolution: -0.1}, ErrInvalidDimensions},
		{"zero nx with resolution", h2Job().Geometry(), GridOptions{Nx: 0, Ny: 4, Nz: 4, Margin: 3, Resolution: 0.5}, ErrInvalidDimensions},
		{"resolution too fine", h2Job().Geometry(), GridOptions{Nx: 4, Ny: 4, Nz: 4, Margin: 3, Resolution: 1e-300}, ErrInvalidDimensions},
		{"axis too long", h2Job().Geometry(), GridOptions{Nx: MaxAxisPoints + 1, Ny: 4, Nz: 4, Margin: 3}, ErrInvalidDimensions},
		{"too many points", h2Job().Geometry(), GridOptions{Nx: 3_000_000, Ny: 3_000_000, Nz: 3_000_000, Margin: 3}, ErrInvalidDimensions},
		{"product over limit", h2Job().Geometry(), GridOptions{Nx: MaxAxisPoints, Ny: MaxAxisPoints, Nz: 2, Margin: 3}, ErrInvalidDimensions},
		{"no atoms", m.Geometry{}, DefaultGridOptions(), ErrNoAtoms},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGridBuilder().Build(tt.geom, tt.opts)
			require.ErrorIs(t, err, tt.want)
		})
	}
}
