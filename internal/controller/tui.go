package controller

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/cubegen/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	program *tea.Program
	done    chan struct{}
	err     error
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the progress program in compute mode. View mode renders
// statically and needs no program.
func (t *TUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options...)
	if cfg.mode != ModeCompute {
		return nil
	}

	t.program = tea.NewProgram(newProgressModel(), tea.WithOutput(t.output), tea.WithInput(nil))
	t.done = make(chan struct{})

	go func() {
		defer close(t.done)

		_, t.err = t.program.Run()
	}()

	return nil
}

// Close asks the running program to render its final frame and exit.
func (t *TUI) Close() {
	if t.program != nil {
		t.program.Send(finishedMsg{})
	}
}

// Wait blocks until the program has exited.
func (t *TUI) Wait() {
	if t.done != nil {
		<-t.done
	}

	t.program = nil
	t.done = nil
}

// Err returns the error the program exited with, if any.
func (t *TUI) Err() error {
	return t.err
}

// DisplayGrid shows the grid about to be evaluated.
func (t *TUI) DisplayGrid(kind m.FieldKind, grid m.Grid, nao int) {
	t.send(gridMsg{kind: kind, grid: grid, nao: nao})
}

// DisplayProgress updates the progress bar.
func (t *TUI) DisplayProgress(done, total int) {
	t.send(progressMsg{done: done, total: total})
}

// DisplayRun shows the summary of a finished run.
func (t *TUI) DisplayRun(record m.RunRecord) {
	t.send(runMsg{record: record})
}

func (t *TUI) send(msg tea.Msg) {
	if t.program != nil {
		t.program.Send(msg)
	}
}

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(10)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(0, 1)
	headingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
)

func row(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}

// DisplayCubeHeader renders the header of a cube file.
func (t *TUI) DisplayCubeHeader(path m.Path, header m.CubeHeader) error {
	rows := []string{
		headingStyle.Render(string(path)),
		row("comment", header.Comment),
		row("id", header.Identifier),
		row("grid", formatGrid(header.Nx, header.Ny, header.Nz)),
		row("origin", formatVec(header.Origin)),
	}

	for axis, name := range []string{"x", "y", "z"} {
		rows = append(rows, row("voxel "+name, formatVec(header.Voxel[axis])))
	}

	atomLines := make([]string, 0, len(header.Atoms))
	for i, atom := range header.Atoms {
		atomLines = append(atomLines, fmt.Sprintf("%3d  Z=%-3d q=%-8.3f %s", i, atom.Z, atom.Charge, formatVec(atom.Position)))
	}

	rows = append(rows, row("atoms", fmt.Sprintf("%d", len(header.Atoms))))
	if len(atomLines) > 0 {
		rows = append(rows, strings.Join(atomLines, "\n"))
	}

	_, err := fmt.Fprintln(t.output, boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))

	return err
}

// DisplayHistory renders stored run records.
func (t *TUI) DisplayHistory(records []m.RunRecord) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(t.output, labelStyle.Render("No runs recorded"))
		return err
	}

	lines := []string{headingStyle.Render(fmt.Sprintf("%d runs", len(records)))}
	for _, r := range records {
		lines = append(lines, fmt.Sprintf("%s  %-9s %-11s %s  %s",
			r.StartedAt.Format("2006-01-02 15:04"),
			r.Kind,
			formatGrid(r.Nx, r.Ny, r.Nz),
			valueStyle.Render(string(r.Output)),
			r.Duration))
	}

	_, err := fmt.Fprintln(t.output, boxStyle.Render(strings.Join(lines, "\n")))

	return err
}
