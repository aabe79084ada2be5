package controller

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/cubegen/internal/model"
)

// progressModel follows one field evaluation.
type progressModel struct {
	width       int
	progressBar progress.Model
	kind        m.FieldKind
	grid        m.Grid
	nao         int
	done        int
	total       int
	startedAt   time.Time
	record      *m.RunRecord
	finished    bool
}

func newProgressModel() progressModel {
	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	return progressModel{
		progressBar: prog,
		width:       80,
		startedAt:   time.Now(),
	}
}

func (pm progressModel) Init() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (pm progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.width = msg.Width

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return pm, tea.Quit
		}

	case tickMsg:
		if pm.finished {
			return pm, nil
		}

		return pm, tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case gridMsg:
		pm.kind = msg.kind
		pm.grid = msg.grid
		pm.nao = msg.nao
		pm.total = msg.grid.NGrid()
		pm.done = 0

	case progressMsg:
		// Workers report out of order; never move backwards.
		if msg.done > pm.done {
			pm.done = msg.done
		}

		pm.total = msg.total

	case runMsg:
		record := msg.record
		pm.record = &record
		pm.done = pm.total

	case finishedMsg:
		pm.finished = true
		return pm, tea.Quit
	}

	return pm, nil
}

func (pm progressModel) percent() float64 {
	if pm.total <= 0 {
		return 0
	}

	return float64(pm.done) / float64(pm.total)
}

func (pm progressModel) View() string {
	accentColor := lipgloss.Color("6") // Cyan

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(accentColor)

	if pm.total == 0 {
		return titleStyle.Render("Preparing grid…") + "\n"
	}

	title := titleStyle.Render("cubegen · " + kindTitle(pm.kind))

	summary := summaryStyle.Render(fmt.Sprintf(
		"Grid: %s  •  Points: %s / %s  •  Basis functions: %s",
		accentStyle.Render(formatGrid(pm.grid.Nx, pm.grid.Ny, pm.grid.Nz)),
		accentStyle.Render(fmt.Sprintf("%d", pm.done)),
		accentStyle.Render(fmt.Sprintf("%d", pm.total)),
		accentStyle.Render(fmt.Sprintf("%d", pm.nao)),
	))

	bar := lipgloss.NewStyle().Padding(0, 2).Render(pm.progressBar.ViewAs(pm.percent()))

	sections := []string{title, summary, bar}

	if pm.record != nil {
		resultStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1).
			Margin(1, 1, 0, 1)

		lines := fmt.Sprintf("Wrote %s\nmin %.6g  max %.6g  in %s",
			pm.record.Output, pm.record.Stats.Min, pm.record.Stats.Max, pm.record.Duration.Round(time.Millisecond))
		if pm.record.Stats.NonFinite > 0 {
			lines += fmt.Sprintf("\n%d non-finite values (grid point on a nucleus)", pm.record.Stats.NonFinite)
		}

		sections = append(sections, resultStyle.Render(lines))
	} else {
		elapsed := time.Since(pm.startedAt).Round(time.Second)
		sections = append(sections, lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Padding(1, 2, 0, 2).
			Render(fmt.Sprintf("Elapsed %s  •  Press q to hide", elapsed)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}
