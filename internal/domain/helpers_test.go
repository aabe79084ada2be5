package domain

import (
	"github.com/mouse-blink/cubegen/internal/engine"
	m "github.com/mouse-blink/cubegen/internal/model"
)

func h2Job() m.Job {
	return m.Job{
		Name:  "h2",
		Units: m.UnitsBohr,
		Basis: "sto-3g",
		Atoms: []m.Atom{
			{Symbol: "H", Z: 1, Charge: 1, Position: m.Vec3{0, 0, 0}},
			{Symbol: "H", Z: 1, Charge: 1, Position: m.Vec3{0, 0, 1.4}},
		},
		DensityMatrix: [][]float64{{0.6, 0.6}, {0.6, 0.6}},
		MOCoeffs:      [][]float64{{0.55, 1.21}, {0.55, -1.21}},
	}
}

func hydrogenJob() m.Job {
	return m.Job{
		Name:          "h",
		Basis:         "sto-3g",
		Atoms:         []m.Atom{{Symbol: "H", Z: 1, Charge: 1}},
		DensityMatrix: [][]float64{{1}},
	}
}

func buildMolecule(job m.Job) (Molecule, error) {
	mol, err := engine.NewMoleculeFromJob(job)
	if err != nil {
		return nil, err
	}

	return mol, nil
}

func mustMolecule(job m.Job) Molecule {
	mol, err := buildMolecule(job)
	if err != nil {
		panic(err)
	}

	return mol
}
