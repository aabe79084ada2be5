package engine

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownElement is returned for element symbols outside the table.
var ErrUnknownElement = errors.New("unknown element")

var elementSymbols = []string{
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr",
}

// AtomicNumber returns the nuclear charge for an element symbol, case-insensitive.
func AtomicNumber(symbol string) (int, error) {
	s := strings.TrimSpace(symbol)
	for i, sym := range elementSymbols {
		if strings.EqualFold(sym, s) {
			return i + 1, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownElement, symbol)
}

// ElementSymbol returns the symbol for an atomic number.
func ElementSymbol(z int) (string, error) {
	if z < 1 || z > len(elementSymbols) {
		return "", fmt.Errorf("%w: Z=%d", ErrUnknownElement, z)
	}

	return elementSymbols[z-1], nil
}
