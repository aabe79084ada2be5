package controller

import (
	"time"

	m "github.com/mouse-blink/cubegen/internal/model"
)

// Message types.
type tickMsg time.Time

type gridMsg struct {
	kind m.FieldKind
	grid m.Grid
	nao  int
}

type progressMsg struct {
	done  int
	total int
}

type runMsg struct {
	record m.RunRecord
}

type finishedMsg struct{}
