package model

import "errors"

// ErrBasisMismatch is returned when a matrix or vector does not match the
// number of basis functions of a molecule.
var ErrBasisMismatch = errors.New("basis size mismatch")
