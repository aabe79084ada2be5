package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"

	"github.com/mouse-blink/cubegen/internal/adapter"
	m "github.com/mouse-blink/cubegen/internal/model"
)

// Density samples the electron density of mol on an nx x ny x nz grid with
// the default margin, writes it to outfile and returns the field.
func Density(ctx context.Context, mol Molecule, outfile m.Path, dm mat.Matrix, nx, ny, nz int, opts ...EvalOption) (m.Field, error) {
	return writeField(ctx, mol, outfile, DensityComment, nx, ny, nz, func(eval *FieldEvaluator, coords []m.Vec3) ([]float64, error) {
		return eval.Density(ctx, mol, dm, coords)
	}, opts)
}

// MEP samples the molecular electrostatic potential of mol on an
// nx x ny x nz grid, writes it to outfile and returns the field.
func MEP(ctx context.Context, mol Molecule, outfile m.Path, dm mat.Matrix, nx, ny, nz int, opts ...EvalOption) (m.Field, error) {
	return writeField(ctx, mol, outfile, PotentialComment, nx, ny, nz, func(eval *FieldEvaluator, coords []m.Vec3) ([]float64, error) {
		return eval.Potential(ctx, mol, dm, coords)
	}, opts)
}

func writeField(
	ctx context.Context,
	mol Molecule,
	outfile m.Path,
	comment string,
	nx, ny, nz int,
	evaluate func(*FieldEvaluator, []m.Vec3) ([]float64, error),
	opts []EvalOption,
) (m.Field, error) {
	geom := m.Geometry{Atoms: mol.Atoms()}

	grid, err := NewGridBuilder().Build(geom, GridOptions{Nx: nx, Ny: ny, Nz: nz, Margin: DefaultMargin})
	if err != nil {
		return m.Field{}, err
	}

	values, err := evaluate(NewFieldEvaluator(opts...), grid.Coords)
	if err != nil {
		return m.Field{}, err
	}

	field, err := m.Reshape(values, nx, ny, nz)
	if err != nil {
		return m.Field{}, err
	}

	header := m.NewCubeHeader(grid, geom.Atoms, comment)
	header.Identifier = identifier(uuid.NewString(), time.Now())

	if err := adapter.NewCubeStore().Write(outfile, m.Cube{Header: header, Values: field.Data}); err != nil {
		return m.Field{}, err
	}

	return field, nil
}
