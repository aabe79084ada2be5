package controller

import (
	"bytes"
	"fmt"
	"sync"

	m "github.com/mouse-blink/cubegen/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using plain text on the command's output.
type SimpleUI struct {
	cmd *cobra.Command

	mu          sync.Mutex
	lastPercent int
	nextPercent int
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd, lastPercent: -1}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	s.mu.Lock()
	s.lastPercent = -1
	s.nextPercent = 0
	s.mu.Unlock()

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// Wait returns immediately; plain output needs no teardown.
func (s *SimpleUI) Wait() {}

// DisplayGrid announces the grid about to be evaluated.
func (s *SimpleUI) DisplayGrid(kind m.FieldKind, grid m.Grid, nao int) {
	s.printf("%s on a %s grid (%d points, %d basis functions)\n",
		kindTitle(kind), formatGrid(grid.Nx, grid.Ny, grid.Nz), grid.NGrid(), nao)
}

// DisplayProgress prints progress in steps of ten percent.
func (s *SimpleUI) DisplayProgress(done, total int) {
	if total <= 0 {
		return
	}

	percent := done * 100 / total

	s.mu.Lock()
	defer s.mu.Unlock()

	if done < total && percent < s.nextPercent {
		return
	}

	if percent <= s.lastPercent {
		return
	}

	s.lastPercent = percent
	s.nextPercent = (percent/10 + 1) * 10
	s.printf("  %3d%% (%d/%d)\n", percent, done, total)
}

// DisplayRun prints the summary of a finished run.
func (s *SimpleUI) DisplayRun(record m.RunRecord) {
	s.printf("wrote %s: min %.6g, max %.6g", record.Output, record.Stats.Min, record.Stats.Max)

	if record.Stats.NonFinite > 0 {
		s.printf(", %d non-finite", record.Stats.NonFinite)
	}

	s.printf(" (%s)\n", record.Duration)
}

// DisplayCubeHeader prints the header of a cube file as tables.
func (s *SimpleUI) DisplayCubeHeader(path m.Path, header m.CubeHeader) error {
	s.printf("%s\n  %s\n  %s\n", path, header.Comment, header.Identifier)

	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Axis", "Points", "Voxel"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})

	counts := [3]int{header.Nx, header.Ny, header.Nz}
	for axis, name := range []string{"x", "y", "z"} {
		table.Append([]string{name, fmt.Sprintf("%d", counts[axis]), formatVec(header.Voxel[axis])})
	}

	table.SetFooter([]string{"Origin", fmt.Sprintf("%d", header.Nx*header.Ny*header.Nz), formatVec(header.Origin)})
	table.Render()

	atoms := tablewriter.NewWriter(&buf)
	atoms.SetHeader([]string{"#", "Z", "Charge", "Position"})
	atoms.SetBorder(false)
	atoms.SetCenterSeparator("")

	for i, atom := range header.Atoms {
		atoms.Append([]string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%d", atom.Z),
			fmt.Sprintf("%.3f", atom.Charge),
			formatVec(atom.Position),
		})
	}

	atoms.SetFooter([]string{"", "", "Total Atoms", fmt.Sprintf("%d", len(header.Atoms))})
	atoms.Render()

	s.printf("\n%s", buf.String())

	return nil
}

// DisplayHistory prints stored run records as a table.
func (s *SimpleUI) DisplayHistory(records []m.RunRecord) error {
	if len(records) == 0 {
		s.printf("No runs recorded\n")
		return nil
	}

	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Started", "Kind", "Grid", "Output", "Duration"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, r := range records {
		table.Append([]string{
			r.StartedAt.Format("2006-01-02 15:04:05"),
			string(r.Kind),
			formatGrid(r.Nx, r.Ny, r.Nz),
			string(r.Output),
			r.Duration.String(),
		})
	}

	table.SetFooter([]string{"", "", "", "Total Runs", fmt.Sprintf("%d", len(records))})
	table.Render()
	s.printf("\n%s", buf.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
