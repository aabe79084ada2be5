package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/cubegen/internal/domain"
	m "github.com/mouse-blink/cubegen/internal/model"
)

// fieldFlags are shared by the density, mep and orbital commands.
type fieldFlags struct {
	output     string
	nx, ny, nz int
	margin     float64
	resolution float64
	chunk      int
	workers    int
	records    string
}

func (f *fieldFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "cube file to write (.gz compresses)")
	cmd.Flags().IntVar(&f.nx, "nx", 0, "grid points along x (default from config)")
	cmd.Flags().IntVar(&f.ny, "ny", 0, "grid points along y (default from config)")
	cmd.Flags().IntVar(&f.nz, "nz", 0, "grid points along z (default from config)")
	cmd.Flags().Float64Var(&f.margin, "margin", 0, "padding around the molecule in Bohr (default from config)")
	cmd.Flags().Float64Var(&f.resolution, "resolution", 0, "voxel size in Bohr, overrides point counts")
	cmd.Flags().IntVar(&f.chunk, "chunk", 0, "grid points per AO block (default from config)")
	cmd.Flags().IntVarP(&f.workers, "workers", "w", 0, "potential workers (default from config, 0 = all CPUs)")
	cmd.Flags().StringVar(&f.records, "records", "", "directory for run records (default from config)")
	_ = cmd.MarkFlagRequired("output")
}

// args merges explicitly set flags over the loaded configuration.
func (f *fieldFlags) args(cmd *cobra.Command, job string) domain.FieldArgs {
	grid := domain.GridOptions{
		Nx:         cfg.Grid.Nx,
		Ny:         cfg.Grid.Ny,
		Nz:         cfg.Grid.Nz,
		Margin:     cfg.Grid.Margin,
		Resolution: cfg.Grid.Resolution,
	}

	// Explicit flags win over the job file's grid block, which the workflow
	// applies on top of the configuration.
	var override m.GridOverride

	flags := cmd.Flags()
	if flags.Changed("nx") {
		override.Nx = &f.nx
	}

	if flags.Changed("ny") {
		override.Ny = &f.ny
	}

	if flags.Changed("nz") {
		override.Nz = &f.nz
	}

	if flags.Changed("margin") {
		override.Margin = &f.margin
	}

	if flags.Changed("resolution") {
		override.Resolution = &f.resolution
	}

	args := domain.FieldArgs{
		Job:          m.Path(job),
		Output:       m.Path(f.output),
		Grid:         grid,
		GridOverride: override,
		Records:      m.Path(cfg.Records),
		ChunkSize:    cfg.Eval.ChunkSize,
		Workers:      cfg.Eval.Workers,
	}

	if flags.Changed("records") {
		args.Records = m.Path(f.records)
	}

	if flags.Changed("chunk") {
		args.ChunkSize = f.chunk
	}

	if flags.Changed("workers") {
		args.Workers = f.workers
	}

	return args
}
