package model

import "time"

// FieldStats summarizes the values written to a cube.
type FieldStats struct {
	Min       float64
	Max       float64
	Sum       float64
	NonFinite int
}

// RunRecord describes a finished cube generation run.
type RunRecord struct {
	ID        string
	Kind      FieldKind
	Job       Path
	Output    Path
	Nx        int
	Ny        int
	Nz        int
	Atoms     int
	NAO       int
	Stats     FieldStats
	StartedAt time.Time
	Duration  time.Duration
}
