package domain

import (
	"fmt"
	"math"

	m "github.com/mouse-blink/cubegen/internal/model"
)

const (
	// DefaultMargin is the padding added on each side of the molecule, in Bohr.
	DefaultMargin = 3.0
	// DefaultPoints is the default number of points along each axis.
	DefaultPoints = 80
	// MaxAxisPoints bounds the number of points along a single axis.
	MaxAxisPoints = 1 << 14
	// MaxGridPoints bounds nx*ny*nz.
	MaxGridPoints = 1 << 28
)

// GridOptions controls the size and resolution of a cube grid.
// A positive Resolution (Bohr per voxel) overrides the point counts, which
// must still be positive.
type GridOptions struct {
	Nx, Ny, Nz int
	Margin     float64
	Resolution float64
}

// DefaultGridOptions returns an 80x80x80 grid with a 3 Bohr margin.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Nx:     DefaultPoints,
		Ny:     DefaultPoints,
		Nz:     DefaultPoints,
		Margin: DefaultMargin,
	}
}

// Override returns opts with every field set in o replaced.
func (opts GridOptions) Override(o m.GridOverride) GridOptions {
	if o.Nx != nil {
		opts.Nx = *o.Nx
	}

	if o.Ny != nil {
		opts.Ny = *o.Ny
	}

	if o.Nz != nil {
		opts.Nz = *o.Nz
	}

	if o.Margin != nil {
		opts.Margin = *o.Margin
	}

	if o.Resolution != nil {
		opts.Resolution = *o.Resolution
	}

	return opts
}

// GridBuilder lays out the sampling points around a molecule.
type GridBuilder interface {
	Build(geom m.Geometry, opts GridOptions) (m.Grid, error)
}

type gridBuilder struct{}

// NewGridBuilder creates a GridBuilder.
func NewGridBuilder() GridBuilder {
	return gridBuilder{}
}

// Build encloses the molecule in an axis aligned box padded by Margin on
// every side and samples it at origin + i*step with step = extent/n.
// Points are ordered x outer, y middle, z inner.
func (gridBuilder) Build(geom m.Geometry, opts GridOptions) (m.Grid, error) {
	if geom.NumAtoms() == 0 {
		return m.Grid{}, ErrNoAtoms
	}

	if opts.Margin < 0 || math.IsNaN(opts.Margin) || math.IsInf(opts.Margin, 0) {
		return m.Grid{}, fmt.Errorf("%w: margin %g", ErrInvalidDimensions, opts.Margin)
	}

	if opts.Resolution < 0 || math.IsNaN(opts.Resolution) || math.IsInf(opts.Resolution, 0) {
		return m.Grid{}, fmt.Errorf("%w: resolution %g", ErrInvalidDimensions, opts.Resolution)
	}

	lo, hi := geom.Bounds()

	var extent m.Vec3
	for a := range 3 {
		extent[a] = hi[a] - lo[a] + 2*opts.Margin
	}

	counts := [3]int{opts.Nx, opts.Ny, opts.Nz}
	if err := checkCounts(counts); err != nil {
		return m.Grid{}, err
	}

	if opts.Resolution > 0 {
		for a := range 3 {
			n := math.Ceil(extent[a] / opts.Resolution)
			if n > MaxAxisPoints {
				return m.Grid{}, fmt.Errorf("%w: resolution %g needs %g points along axis %d",
					ErrInvalidDimensions, opts.Resolution, n, a)
			}

			counts[a] = max(1, int(n))
		}

		if err := checkCounts(counts); err != nil {
			return m.Grid{}, err
		}
	}

	grid := m.Grid{
		Nx:     counts[0],
		Ny:     counts[1],
		Nz:     counts[2],
		Origin: lo.Sub(m.Vec3{opts.Margin, opts.Margin, opts.Margin}),
	}

	var step m.Vec3
	for a := range 3 {
		step[a] = extent[a] / float64(counts[a])
		grid.Voxel[a][a] = step[a]
	}

	grid.Coords = make([]m.Vec3, 0, grid.NGrid())

	for ix := range grid.Nx {
		x := grid.Origin[0] + float64(ix)*step[0]

		for iy := range grid.Ny {
			y := grid.Origin[1] + float64(iy)*step[1]

			for iz := range grid.Nz {
				grid.Coords = append(grid.Coords, m.Vec3{x, y, grid.Origin[2] + float64(iz)*step[2]})
			}
		}
	}

	return grid, nil
}

func checkCounts(counts [3]int) error {
	total := 1

	for _, n := range counts {
		if n <= 0 || n > MaxAxisPoints {
			return fmt.Errorf("%w: %dx%dx%d", ErrInvalidDimensions, counts[0], counts[1], counts[2])
		}

		total *= n
	}

	if total > MaxGridPoints {
		return fmt.Errorf("%w: %dx%dx%d exceeds %d points",
			ErrInvalidDimensions, counts[0], counts[1], counts[2], MaxGridPoints)
	}

	return nil
}
