package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mouse-blink/cubegen/internal/model"
)

// ErrUnknownBasis is returned when a named basis set is not built in.
var ErrUnknownBasis = errors.New("unknown basis set")

type contraction struct {
	l     int
	exps  []float64
	coefs []float64
}

var (
	sto3g1s = []float64{0.15432897, 0.53532814, 0.44463454}
	sto3g2s = []float64{-0.09996723, 0.39951283, 0.70011547}
	sto3g2p = []float64{0.15591627, 0.60768372, 0.39195739}
)

func sto3gSecondRow(core, valence []float64) []contraction {
	return []contraction{
		{l: 0, exps: core, coefs: sto3g1s},
		{l: 0, exps: valence, coefs: sto3g2s},
		{l: 1, exps: valence, coefs: sto3g2p},
	}
}

var builtinSets = map[string]map[int][]contraction{
	"sto-3g": {
		1: {{l: 0, exps: []float64{3.42525091, 0.62391373, 0.16885540}, coefs: sto3g1s}},
		2: {{l: 0, exps: []float64{6.36242139, 1.15892300, 0.31364979}, coefs: sto3g1s}},
		6: sto3gSecondRow(
			[]float64{71.6168370, 13.0450960, 3.5305122},
			[]float64{2.9412494, 0.6834831, 0.2222899}),
		7: sto3gSecondRow(
			[]float64{99.1061690, 18.0523120, 4.8856602},
			[]float64{3.7804559, 0.8784966, 0.2857144}),
		8: sto3gSecondRow(
			[]float64{130.7093200, 23.8088610, 6.4436083},
			[]float64{5.0331513, 1.1695961, 0.3803890}),
		9: sto3gSecondRow(
			[]float64{166.6791300, 30.3608120, 8.2168207},
			[]float64{6.4648032, 1.5022812, 0.4885885}),
	},
}

// BuiltinBasis returns the shells of a named basis set for the given atoms.
func BuiltinBasis(name string, atoms []model.Atom) ([]Shell, error) {
	set, ok := builtinSets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBasis, name)
	}

	var shells []Shell

	for i, atom := range atoms {
		contractions, ok := set[atom.Z]
		if !ok {
			return nil, fmt.Errorf("%w: no %s functions for Z=%d", ErrUnknownBasis, name, atom.Z)
		}

		for _, c := range contractions {
			shells = append(shells, Shell{
				AtomIndex:    i,
				Center:       atom.Position,
				L:            c.l,
				Exponents:    c.exps,
				Coefficients: c.coefs,
			})
		}
	}

	return shells, nil
}
