package controller

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/cubegen/internal/model"
)

func TestProgressModel_TracksGridAndProgress(t *testing.T) {
	pm := newProgressModel()

	updated, _ := pm.Update(gridMsg{kind: m.FieldPotential, grid: m.Grid{Nx: 2, Ny: 2, Nz: 2}, nao: 4})
	pm = updated.(progressModel)
	assert.Equal(t, 8, pm.total)
	assert.Equal(t, 0, pm.done)

	updated, _ = pm.Update(progressMsg{done: 6, total: 8})
	pm = updated.(progressModel)
	assert.Equal(t, 6, pm.done)

	// Late reports from slower workers must not move the bar back.
	updated, _ = pm.Update(progressMsg{done: 3, total: 8})
	pm = updated.(progressModel)
	assert.Equal(t, 6, pm.done)
	assert.InDelta(t, 0.75, pm.percent(), 1e-12)

	view := pm.View()
	assert.Contains(t, view, "Electrostatic potential")
	assert.Contains(t, view, "2x2x2")
}

func TestProgressModel_RunAndFinish(t *testing.T) {
	pm := newProgressModel()

	updated, _ := pm.Update(gridMsg{kind: m.FieldDensity, grid: m.Grid{Nx: 1, Ny: 1, Nz: 4}})
	pm = updated.(progressModel)

	updated, _ = pm.Update(runMsg{record: m.RunRecord{Output: "out.cube", Stats: m.FieldStats{NonFinite: 1}, Duration: time.Second}})
	pm = updated.(progressModel)
	require.NotNil(t, pm.record)
	assert.Equal(t, pm.total, pm.done)
	assert.Contains(t, pm.View(), "out.cube")
	assert.Contains(t, pm.View(), "1 non-finite")

	updated, cmd := pm.Update(finishedMsg{})
	pm = updated.(progressModel)
	assert.True(t, pm.finished)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestProgressModel_EmptyView(t *testing.T) {
	pm := newProgressModel()

	assert.Contains(t, pm.View(), "Preparing grid")
	assert.Zero(t, pm.percent())
}

func TestTUI_ViewModeRendersStatically(t *testing.T) {
	var buf bytes.Buffer
	ui := NewTUI(&buf)

	require.NoError(t, ui.Start(WithViewMode()))

	// Without a running program these are no-ops.
	ui.DisplayProgress(1, 2)
	ui.Close()
	ui.Wait()

	header := m.CubeHeader{
		Comment: "Molecular electrostatic potential in real space",
		Nx:      3, Ny: 3, Nz: 3,
		Atoms: []m.Atom{{Z: 8, Charge: 8}},
	}
	require.NoError(t, ui.DisplayCubeHeader("water.cube", header))
	require.NoError(t, ui.DisplayHistory(nil))

	out := buf.String()
	assert.Contains(t, out, "water.cube")
	assert.Contains(t, out, "3x3x3")
	assert.Contains(t, out, "Z=8")
	assert.Contains(t, out, "No runs recorded")
}

func TestTUI_ComputeModeLifecycle(t *testing.T) {
	var buf bytes.Buffer
	ui := NewTUI(&buf)

	require.NoError(t, ui.Start(WithComputeMode()))

	ui.DisplayGrid(m.FieldDensity, m.Grid{Nx: 2, Ny: 1, Nz: 1}, 1)
	ui.DisplayProgress(2, 2)
	ui.DisplayRun(m.RunRecord{Output: "x.cube"})
	ui.Close()
	ui.Wait()

	assert.NoError(t, ui.Err())
}
