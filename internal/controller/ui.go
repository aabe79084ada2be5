// Package controller provides output adapters for displaying cube generation progress and results.
package controller

import (
	m "github.com/mouse-blink/cubegen/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeView StartMode = iota
	ModeCompute
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithViewMode sets the UI to display stored results only.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

// WithComputeMode sets the UI to follow a field evaluation.
func WithComputeMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeCompute
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	cfg := StartConfig{mode: ModeView}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines how cube generation reports to the user.
// Implementations can use different output methods (simple text, TUI, etc).
// DisplayProgress may be called from several goroutines at once.
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish
	DisplayGrid(kind m.FieldKind, grid m.Grid, nao int)
	DisplayProgress(done, total int)
	DisplayRun(record m.RunRecord)
	DisplayCubeHeader(path m.Path, header m.CubeHeader) error
	DisplayHistory(records []m.RunRecord) error
}
