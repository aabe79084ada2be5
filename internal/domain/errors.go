package domain

import "errors"

var (
	// ErrInvalidDimensions is returned for non-positive grid counts or negative spacing.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrNoAtoms is returned when a grid is requested around an empty molecule.
	ErrNoAtoms = errors.New("molecule has no atoms")
	// ErrNoDensityMatrix is returned when a job carries no density matrix.
	ErrNoDensityMatrix = errors.New("job has no density matrix")
	// ErrNoOrbital is returned when the requested orbital is not in the job.
	ErrNoOrbital = errors.New("orbital not available")
)
