package cmd

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/cubegen/internal/domain"
	m "github.com/mouse-blink/cubegen/internal/model"
)

func TestDensityCmd_UsesConfigDefaults(t *testing.T) {
	cmd, mockWorkflow := newTestRoot(t, newDensityCmd())

	mockWorkflow.On("Density", mock.Anything, mock.MatchedBy(func(args domain.FieldArgs) bool {
		return args.Job == m.Path("h2o.yaml") &&
			args.Output == m.Path("h2o_den.cube") &&
			args.Grid == domain.DefaultGridOptions() &&
			args.GridOverride == m.GridOverride{} &&
			args.ChunkSize == 8000 &&
			args.Workers == 0 &&
			args.Records == ""
	})).Return(m.RunRecord{}, nil)

	cmd.SetArgs([]string{"density", "h2o.yaml", "-o", "h2o_den.cube"})
	require.NoError(t, cmd.Execute())
}

func TestDensityCmd_FlagsOverride(t *testing.T) {
	cmd, mockWorkflow := newTestRoot(t, newDensityCmd())

	mockWorkflow.On("Density", mock.Anything, mock.MatchedBy(func(args domain.FieldArgs) bool {
		grid := args.Grid.Override(args.GridOverride)

		return args.Grid == domain.DefaultGridOptions() &&
			grid.Nx == 4 && grid.Ny == 5 && grid.Nz == 6 &&
			grid.Margin == 1.5 &&
			grid.Resolution == 0.2 &&
			args.ChunkSize == 100 &&
			args.Workers == 3 &&
			args.Records == m.Path("runs")
	})).Return(m.RunRecord{}, nil)

	cmd.SetArgs([]string{
		"density", "h2o.yaml", "-o", "out.cube",
		"--nx", "4", "--ny", "5", "--nz", "6",
		"--margin", "1.5", "--resolution", "0.2",
		"--chunk", "100", "-w", "3", "--records", "runs",
	})
	require.NoError(t, cmd.Execute())
}

func TestDensityCmd_UnsetFlagsLeaveJobGrid(t *testing.T) {
	cmd, mockWorkflow := newTestRoot(t, newDensityCmd())

	mockWorkflow.On("Density", mock.Anything, mock.MatchedBy(func(args domain.FieldArgs) bool {
		o := args.GridOverride

		return o.Nx == nil && o.Ny == nil && o.Margin == nil && o.Resolution == nil &&
			o.Nz != nil && *o.Nz == 12
	})).Return(m.RunRecord{}, nil)

	cmd.SetArgs([]string{"density", "h2o.yaml", "-o", "out.cube", "--nz", "12"})
	require.NoError(t, cmd.Execute())
}

func TestDensityCmd_ZeroPointsPassedThrough(t *testing.T) {
	cmd, mockWorkflow := newTestRoot(t, newDensityCmd())

	mockWorkflow.On("Density", mock.Anything, mock.MatchedBy(func(args domain.FieldArgs) bool {
		return args.GridOverride.Nx != nil && *args.GridOverride.Nx == 0
	})).Return(m.RunRecord{}, domain.ErrInvalidDimensions)

	cmd.SetArgs([]string{"density", "h2o.yaml", "-o", "out.cube", "--nx", "0"})
	require.ErrorIs(t, cmd.Execute(), domain.ErrInvalidDimensions)
}

func TestDensityCmd_RequiresOutput(t *testing.T) {
	cmd, _ := newTestRoot(t, newDensityCmd())

	cmd.SetArgs([]string{"density", "h2o.yaml"})
	require.Error(t, cmd.Execute())
}

func TestDensityCmd_RequiresJob(t *testing.T) {
	cmd, _ := newTestRoot(t, newDensityCmd())

	cmd.SetArgs([]string{"density", "-o", "x.cube"})
	require.Error(t, cmd.Execute())
}

func TestMEPCmd(t *testing.T) {
	cmd, mockWorkflow := newTestRoot(t, newMEPCmd())

	mockWorkflow.On("MEP", mock.Anything, mock.MatchedBy(func(args domain.FieldArgs) bool {
		return args.Job == m.Path("h2o.yaml") && args.Grid.Override(args.GridOverride).Nx == 40
	})).Return(m.RunRecord{}, nil)

	cmd.SetArgs([]string{"mep", "h2o.yaml", "-o", "pot.cube", "--nx", "40"})
	require.NoError(t, cmd.Execute())
}

func TestMEPCmd_PropagatesError(t *testing.T) {
	cmd, mockWorkflow := newTestRoot(t, newMEPCmd())
	boom := errors.New("boom")

	mockWorkflow.On("MEP", mock.Anything, mock.Anything).Return(m.RunRecord{}, boom)

	cmd.SetArgs([]string{"mep", "h2o.yaml", "-o", "pot.cube"})
	require.ErrorIs(t, cmd.Execute(), boom)
}

func TestMEPCmd_PassesContext(t *testing.T) {
	cmd, mockWorkflow := newTestRoot(t, newMEPCmd())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mockWorkflow.On("MEP", ctx, mock.Anything).Return(m.RunRecord{}, nil)

	cmd.SetArgs([]string{"mep", "h2o.yaml", "-o", "pot.cube"})
	require.NoError(t, cmd.ExecuteContext(ctx))
}

func TestOrbitalCmd(t *testing.T) {
	cmd, mockWorkflow := newTestRoot(t, newOrbitalCmd())

	mockWorkflow.On("Orbital", mock.Anything, mock.MatchedBy(func(args domain.OrbitalArgs) bool {
		return args.Orbital == 4 && args.Output == m.Path("homo.cube")
	})).Return(m.RunRecord{}, nil)

	cmd.SetArgs([]string{"orbital", "h2o.yaml", "-o", "homo.cube", "--mo", "4"})
	require.NoError(t, cmd.Execute())
}
