package domain

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/mouse-blink/cubegen/internal/logger"
	m "github.com/mouse-blink/cubegen/internal/model"
)

// DefaultChunkSize is the number of grid points evaluated per AO block.
const DefaultChunkSize = 8000

// ProgressFunc receives the number of finished points. It may be called
// from several goroutines.
type ProgressFunc func(done, total int)

type evalConfig struct {
	chunkSize int
	workers   int
	progress  ProgressFunc
	logger    *slog.Logger
}

// EvalOption configures a FieldEvaluator.
type EvalOption func(*evalConfig)

// WithChunkSize sets how many points share one AO buffer. Values <= 0 select the default.
func WithChunkSize(n int) EvalOption {
	return func(c *evalConfig) {
		c.chunkSize = n
	}
}

// WithWorkers bounds the potential worker pool. Values <= 0 select GOMAXPROCS.
func WithWorkers(n int) EvalOption {
	return func(c *evalConfig) {
		c.workers = n
	}
}

// WithProgress reports finished points.
func WithProgress(fn ProgressFunc) EvalOption {
	return func(c *evalConfig) {
		c.progress = fn
	}
}

// WithEvalLogger sets the logger used for per-block debug events.
func WithEvalLogger(logger *slog.Logger) EvalOption {
	return func(c *evalConfig) {
		c.logger = logger
	}
}

// FieldEvaluator samples density, potential and orbital fields on grid points.
type FieldEvaluator struct {
	cfg evalConfig
}

// NewFieldEvaluator creates a FieldEvaluator.
func NewFieldEvaluator(opts ...EvalOption) *FieldEvaluator {
	cfg := evalConfig{
		chunkSize: DefaultChunkSize,
		logger:    logger.Discard(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.chunkSize <= 0 {
		cfg.chunkSize = DefaultChunkSize
	}

	if cfg.workers <= 0 {
		cfg.workers = runtime.GOMAXPROCS(0)
	}

	return &FieldEvaluator{cfg: cfg}
}

// Density evaluates rho(r) = sum_uv ao_u(r) D_uv ao_v(r) at every point.
// Values are stored as computed, small negative noise included.
func (e *FieldEvaluator) Density(ctx context.Context, mol Molecule, dm mat.Matrix, coords []m.Vec3) ([]float64, error) {
	nao := mol.NAO()
	if r, c := dm.Dims(); r != nao || c != nao {
		return nil, fmt.Errorf("%w: density matrix is %dx%d, basis has %d functions", m.ErrBasisMismatch, r, c, nao)
	}

	return e.blocks(ctx, mol, coords, func(ao *mat.Dense) ([]float64, error) {
		return mol.EvalRho(ao, dm)
	})
}

// Orbital evaluates sum_u c_u ao_u(r) at every point.
func (e *FieldEvaluator) Orbital(ctx context.Context, mol Molecule, coeff []float64, coords []m.Vec3) ([]float64, error) {
	if len(coeff) != mol.NAO() {
		return nil, fmt.Errorf("%w: %d coefficients, basis has %d functions", m.ErrBasisMismatch, len(coeff), mol.NAO())
	}

	return e.blocks(ctx, mol, coords, func(ao *mat.Dense) ([]float64, error) {
		return mol.EvalOrbital(ao, coeff)
	})
}

// blocks walks disjoint chunks covering coords, reusing one AO buffer.
func (e *FieldEvaluator) blocks(ctx context.Context, mol Molecule, coords []m.Vec3, contract func(*mat.Dense) ([]float64, error)) ([]float64, error) {
	ngrid := len(coords)
	out := make([]float64, ngrid)
	blk := min(e.cfg.chunkSize, ngrid)

	var ao *mat.Dense

	for p0 := 0; p0 < ngrid; p0 += blk {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p1 := min(p0+blk, ngrid)

		var err error

		ao, err = mol.EvalAO(coords[p0:p1], ao)
		if err != nil {
			return nil, fmt.Errorf("evaluate AO block [%d, %d): %w", p0, p1, err)
		}

		vals, err := contract(ao)
		if err != nil {
			return nil, fmt.Errorf("contract AO block [%d, %d): %w", p0, p1, err)
		}

		copy(out[p0:p1], vals)
		e.cfg.logger.Debug("block.evaluated", slog.Int("start", p0), slog.Int("end", p1))
		e.report(p1, ngrid)
	}

	return out, nil
}

// Potential evaluates the molecular electrostatic potential
// V(p) = sum_i Z_i/|R_i - p| - sum_uv D_uv <u|1/|r-p||v>.
// Points are distributed over a bounded worker pool; each worker owns its
// integral buffer and writes only its own indices, so output order is by point.
func (e *FieldEvaluator) Potential(ctx context.Context, mol Molecule, dm mat.Matrix, coords []m.Vec3) ([]float64, error) {
	nao := mol.NAO()
	if r, c := dm.Dims(); r != nao || c != nao {
		return nil, fmt.Errorf("%w: density matrix is %dx%d, basis has %d functions", m.ErrBasisMismatch, r, c, nao)
	}

	ngrid := len(coords)
	out := NuclearPotential(mol, coords)
	weights := pairWeights(dm)
	step := max(1, ngrid/100)

	var next, done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)

	for range min(e.cfg.workers, max(1, ngrid)) {
		g.Go(func() error {
			var v *mat.SymDense

			for {
				idx := int(next.Add(1) - 1)
				if idx >= ngrid {
					return nil
				}

				if err := gctx.Err(); err != nil {
					return err
				}

				var err error

				v, err = mol.RinvIntegrals(coords[idx], v)
				if err != nil {
					return fmt.Errorf("rinv integrals at point %d: %w", idx, err)
				}

				out[idx] -= contractUpper(v, weights)

				if d := int(done.Add(1)); d%step == 0 || d == ngrid {
					e.report(d, ngrid)
				}
			}
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// NuclearPotential returns sum_i Z_i/|R_i - p| for every point. A point on a
// nucleus yields an infinity carrying the sign of that nucleus' charge.
func NuclearPotential(mol Molecule, coords []m.Vec3) []float64 {
	out := make([]float64, len(coords))

	for i := range mol.NumAtoms() {
		z := mol.AtomCharge(i)
		if z == 0 {
			continue
		}

		center := mol.AtomCoord(i)

		for p, r := range coords {
			out[p] += z / center.Dist(r)
		}
	}

	return out
}

// pairWeights folds D into the upper triangle: w_ii = D_ii, w_ij = D_ij + D_ji.
func pairWeights(dm mat.Matrix) *mat.Dense {
	n, _ := dm.Dims()
	w := mat.NewDense(n, n, nil)

	for i := range n {
		w.Set(i, i, dm.At(i, i))

		for j := i + 1; j < n; j++ {
			w.Set(i, j, dm.At(i, j)+dm.At(j, i))
		}
	}

	return w
}

// contractUpper returns sum_uv V_uv D_uv using the folded weights.
func contractUpper(v *mat.SymDense, w *mat.Dense) float64 {
	raw := v.RawSymmetric()
	n := raw.N

	var s float64

	for i := range n {
		vrow := raw.Data[i*raw.Stride : i*raw.Stride+n]
		wrow := w.RawRowView(i)

		for j := i; j < n; j++ {
			s += vrow[j] * wrow[j]
		}
	}

	return s
}

func (e *FieldEvaluator) report(done, total int) {
	if e.cfg.progress != nil {
		e.cfg.progress(done, total)
	}
}

// Stats summarizes the finite values of a field and counts the rest.
func Stats(values []float64) m.FieldStats {
	var stats m.FieldStats

	first := true

	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			stats.NonFinite++
			continue
		}

		if first {
			stats.Min, stats.Max = v, v
			first = false
		}

		stats.Min = math.Min(stats.Min, v)
		stats.Max = math.Max(stats.Max, v)
		stats.Sum += v
	}

	return stats
}
