package enigma

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func cycles(groups ...string) CycleSpec {
	cs := make(CycleSpec, len(groups))
	for i, g := range groups {
		cs[i] = Cycle(g)
	}
	return cs
}

var wirings = map[string]CycleSpec{
	"I":   cycles("AELTPHQXRU", "BKNW", "CMOY", "DFG", "IV", "JZ", "S"),
	"II":  cycles("A", "BJ", "CDKLHUP", "ESZ", "FIXVYOMW", "GR", "NT", "Q"),
	"III": cycles("ABDHPEJT", "CFLVMZOYQIRWUKXSG", "N"),
	"IV":  cycles("AEPLIYWCOXMRFZBSTGJQNH", "DV", "KU"),
	"V":   cycles("AVOLDRWFIUQ", "BZKSMNHYC", "EGTJPX"),
	"B":   cycles("AY", "BR", "CU", "DH", "EQ", "FS", "GL", "IP", "JX", "KN", "MO", "TZ", "VW"),
	"C":   cycles("AF", "BV", "CP", "DJ", "EI", "GO", "HY", "KR", "LZ", "MX", "NW", "QT", "SU"),
}

var notches = map[string]string{"I": "Q", "II": "E", "III": "V", "IV": "J", "V": "Z"}

func perm(t *testing.T, alpha *Alphabet, cs CycleSpec) *Permutation {
	t.Helper()
	p, err := NewPermutation(cs, alpha)
	require.NoError(t, err)
	return p
}

// catalogue returns the Enigma I rotors, reflectors B and C, and a fixed
// rotor "F" wired like rotor I.
func catalogue(t *testing.T, alpha *Alphabet) []Rotor {
	t.Helper()
	var rs []Rotor
	for _, name := range []string{"B", "C"} {
		r, err := NewReflector(name, perm(t, alpha, wirings[name]))
		require.NoError(t, err)
		rs = append(rs, r)
	}
	for _, name := range []string{"I", "II", "III", "IV", "V"} {
		r, err := NewMovingRotor(name, perm(t, alpha, wirings[name]), notches[name])
		require.NoError(t, err)
		rs = append(rs, r)
	}
	rs = append(rs, NewFixedRotor("F", perm(t, alpha, wirings["I"])))
	return rs
}

func enigmaI(t *testing.T, names ...string) *Machine {
	t.Helper()
	alpha := DefaultAlphabet()
	m, err := NewMachine(alpha, 4, 3, catalogue(t, alpha))
	require.NoError(t, err)
	if len(names) > 0 {
		require.NoError(t, m.InsertRotors(names))
	}
	return m
}
