package controller

import (
	"fmt"

	m "github.com/mouse-blink/cubegen/internal/model"
)

func formatGrid(nx, ny, nz int) string {
	return fmt.Sprintf("%dx%dx%d", nx, ny, nz)
}

func formatVec(v m.Vec3) string {
	return fmt.Sprintf("%.6f %.6f %.6f", v[0], v[1], v[2])
}

func kindTitle(kind m.FieldKind) string {
	switch kind {
	case m.FieldDensity:
		return "Electron density"
	case m.FieldPotential:
		return "Electrostatic potential"
	case m.FieldOrbital:
		return "Orbital"
	default:
		return string(kind)
	}
}
