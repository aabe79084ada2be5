package domain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mouse-blink/cubegen/internal/adapter"
	"github.com/mouse-blink/cubegen/internal/controller"
	"github.com/mouse-blink/cubegen/internal/logger"
	m "github.com/mouse-blink/cubegen/internal/model"
)

// Version is written into the identifier line of every cube.
const Version = "0.3.0"

// Cube comment lines, one per field kind.
const (
	DensityComment   = "Electron density in real space (e/Bohr^3)"
	PotentialComment = "Molecular electrostatic potential in real space"
	OrbitalComment   = "Orbital value in real space (1/Bohr^3)"
)

// FieldArgs describes one cube generation run. Zero ChunkSize or Workers
// keep the workflow's evaluator settings.
//
// The grid is Grid, then the job's own grid block, then GridOverride.
type FieldArgs struct {
	Job          m.Path
	Output       m.Path
	Grid         GridOptions
	GridOverride m.GridOverride
	Records      m.Path // optional run record directory
	ChunkSize    int
	Workers      int
}

// OrbitalArgs selects one molecular orbital, counted from zero.
type OrbitalArgs struct {
	FieldArgs
	Orbital int
}

// Workflow defines the cube generation operations offered by the CLI.
type Workflow interface {
	Density(ctx context.Context, args FieldArgs) (m.RunRecord, error)
	MEP(ctx context.Context, args FieldArgs) (m.RunRecord, error)
	Orbital(ctx context.Context, args OrbitalArgs) (m.RunRecord, error)
	View(path m.Path) error
	History(dir m.Path) error
}

// WorkflowOption configures a Workflow.
type WorkflowOption func(*workflow)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) WorkflowOption {
	return func(w *workflow) {
		w.logger = logger
	}
}

// WithEvalOptions sets the evaluator options applied to every run.
func WithEvalOptions(opts ...EvalOption) WorkflowOption {
	return func(w *workflow) {
		w.evalOpts = append(w.evalOpts, opts...)
	}
}

type workflow struct {
	jobs        adapter.JobLoader
	cubes       adapter.CubeStore
	runs        adapter.RunStore
	ui          controller.UI
	grids       GridBuilder
	newMolecule MoleculeFactory
	evalOpts    []EvalOption
	logger      *slog.Logger
	newID       func() string
	now         func() time.Time
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	jobs adapter.JobLoader,
	cubes adapter.CubeStore,
	runs adapter.RunStore,
	ui controller.UI,
	newMolecule MoleculeFactory,
	opts ...WorkflowOption,
) Workflow {
	w := &workflow{
		jobs:        jobs,
		cubes:       cubes,
		runs:        runs,
		ui:          ui,
		grids:       NewGridBuilder(),
		newMolecule: newMolecule,
		logger:      logger.Discard(),
		newID:       uuid.NewString,
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// evaluateFunc samples one field kind for a loaded job.
type evaluateFunc func(ctx context.Context, eval *FieldEvaluator, mol Molecule, coords []m.Vec3) ([]float64, error)

// Density writes the electron density of a job to a cube file.
func (w *workflow) Density(ctx context.Context, args FieldArgs) (m.RunRecord, error) {
	return w.generate(ctx, m.FieldDensity, args, DensityComment, func(job m.Job, mol Molecule) (evaluateFunc, error) {
		dm, err := DensityMatrix(job.DensityMatrix, mol.NAO())
		if err != nil {
			return nil, err
		}

		return func(ctx context.Context, eval *FieldEvaluator, mol Molecule, coords []m.Vec3) ([]float64, error) {
			return eval.Density(ctx, mol, dm, coords)
		}, nil
	})
}

// MEP writes the molecular electrostatic potential of a job to a cube file.
func (w *workflow) MEP(ctx context.Context, args FieldArgs) (m.RunRecord, error) {
	return w.generate(ctx, m.FieldPotential, args, PotentialComment, func(job m.Job, mol Molecule) (evaluateFunc, error) {
		dm, err := DensityMatrix(job.DensityMatrix, mol.NAO())
		if err != nil {
			return nil, err
		}

		return func(ctx context.Context, eval *FieldEvaluator, mol Molecule, coords []m.Vec3) ([]float64, error) {
			return eval.Potential(ctx, mol, dm, coords)
		}, nil
	})
}

// Orbital writes one molecular orbital of a job to a cube file.
func (w *workflow) Orbital(ctx context.Context, args OrbitalArgs) (m.RunRecord, error) {
	return w.generate(ctx, m.FieldOrbital, args.FieldArgs, OrbitalComment, func(job m.Job, mol Molecule) (evaluateFunc, error) {
		coeff, err := OrbitalCoefficients(job.MOCoeffs, mol.NAO(), args.Orbital)
		if err != nil {
			return nil, err
		}

		return func(ctx context.Context, eval *FieldEvaluator, mol Molecule, coords []m.Vec3) ([]float64, error) {
			return eval.Orbital(ctx, mol, coeff, coords)
		}, nil
	})
}

// generate runs load, grid, evaluate, write and record in that order.
// Everything that can be validated is checked before the UI starts or a
// file is touched.
func (w *workflow) generate(
	ctx context.Context,
	kind m.FieldKind,
	args FieldArgs,
	comment string,
	prepare func(job m.Job, mol Molecule) (evaluateFunc, error),
) (m.RunRecord, error) {
	started := w.now()
	log := w.logger.With(slog.String("kind", string(kind)), slog.String("job", string(args.Job)))

	job, err := w.jobs.Load(args.Job)
	if err != nil {
		return m.RunRecord{}, fmt.Errorf("load job: %w", err)
	}

	mol, err := w.newMolecule(job)
	if err != nil {
		return m.RunRecord{}, fmt.Errorf("build molecule: %w", err)
	}

	grid, err := w.grids.Build(job.Geometry(), args.Grid.Override(job.Grid).Override(args.GridOverride))
	if err != nil {
		return m.RunRecord{}, fmt.Errorf("build grid: %w", err)
	}

	log.Info("grid.built",
		slog.Int("nx", grid.Nx), slog.Int("ny", grid.Ny), slog.Int("nz", grid.Nz),
		slog.Int("nao", mol.NAO()))

	evaluate, err := prepare(job, mol)
	if err != nil {
		return m.RunRecord{}, err
	}

	if err := w.ui.Start(controller.WithComputeMode()); err != nil {
		return m.RunRecord{}, fmt.Errorf("start ui: %w", err)
	}

	defer func() {
		w.ui.Close()
		w.ui.Wait()
	}()

	w.ui.DisplayGrid(kind, grid, mol.NAO())

	opts := append([]EvalOption{}, w.evalOpts...)
	if args.ChunkSize > 0 {
		opts = append(opts, WithChunkSize(args.ChunkSize))
	}

	if args.Workers > 0 {
		opts = append(opts, WithWorkers(args.Workers))
	}

	opts = append(opts, WithProgress(w.ui.DisplayProgress), WithEvalLogger(log))

	values, err := evaluate(ctx, NewFieldEvaluator(opts...), mol, grid.Coords)
	if err != nil {
		return m.RunRecord{}, fmt.Errorf("evaluate %s: %w", kind, err)
	}

	field, err := m.Reshape(values, grid.Nx, grid.Ny, grid.Nz)
	if err != nil {
		return m.RunRecord{}, err
	}

	stats := Stats(field.Data)
	log.Info("field.evaluated", slog.Float64("min", stats.Min), slog.Float64("max", stats.Max))

	if stats.NonFinite > 0 {
		log.Warn("field has non-finite values", slog.Int("count", stats.NonFinite))
	}

	id := w.newID()
	header := m.NewCubeHeader(grid, mol.Atoms(), comment)
	header.Identifier = identifier(id, started)

	if err := w.cubes.Write(args.Output, m.Cube{Header: header, Values: field.Data}); err != nil {
		return m.RunRecord{}, err
	}

	log.Info("cube.written", slog.String("output", string(args.Output)))

	record := m.RunRecord{
		ID:        id,
		Kind:      kind,
		Job:       args.Job,
		Output:    args.Output,
		Nx:        grid.Nx,
		Ny:        grid.Ny,
		Nz:        grid.Nz,
		Atoms:     mol.NumAtoms(),
		NAO:       mol.NAO(),
		Stats:     stats,
		StartedAt: started,
		Duration:  w.now().Sub(started),
	}

	if args.Records != "" {
		if err := w.runs.SaveRecord(args.Records, record); err != nil {
			return record, fmt.Errorf("save run record: %w", err)
		}

		if err := w.runs.RegenerateIndex(args.Records); err != nil {
			return record, fmt.Errorf("regenerate run index: %w", err)
		}
	}

	w.ui.DisplayRun(record)

	return record, nil
}

// View displays the header of an existing cube file.
func (w *workflow) View(path m.Path) error {
	header, err := w.cubes.ReadHeader(path)
	if err != nil {
		return err
	}

	if err := w.ui.Start(controller.WithViewMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}

	defer func() {
		w.ui.Close()
		w.ui.Wait()
	}()

	return w.ui.DisplayCubeHeader(path, header)
}

// History displays the run records stored in dir.
func (w *workflow) History(dir m.Path) error {
	records, err := w.runs.LoadRecords(dir)
	if err != nil {
		return err
	}

	if err := w.ui.Start(controller.WithViewMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}

	defer func() {
		w.ui.Close()
		w.ui.Wait()
	}()

	return w.ui.DisplayHistory(records)
}

func identifier(id string, at time.Time) string {
	return fmt.Sprintf("cubegen %s run %s date %s", Version, id, at.Format(time.RFC3339))
}
