// Package config reads machine descriptions and builds enigma.Machines
// from them. Two formats are supported: the line-oriented text format
// (LoadClassic) and YAML (LoadYAML). Builtin describes the Enigma I.
package config

import (
	"fmt"
	"strings"

	"github.com/706f6c6c7578/enigma/internal/enigma"
)

// Kind is the variant of a rotor.
type Kind string

const (
	KindMoving    Kind = "moving"
	KindFixed     Kind = "fixed"
	KindReflector Kind = "reflector"
)

// AlphabetSpec gives the alphabet either as explicit symbols or as a
// code point range written "A-Z".
type AlphabetSpec struct {
	Symbols string `yaml:"symbols,omitempty"`
	Range   string `yaml:"range,omitempty"`
}

// RotorDescriptor describes one rotor of the catalogue. The wiring is
// given either as Cycles ("(AE) (BN)") or as a Wiring table listing the
// image of each alphabet symbol in order.
type RotorDescriptor struct {
	Name    string `yaml:"name"`
	Kind    Kind   `yaml:"kind"`
	Notches string `yaml:"notches,omitempty"`
	Cycles  string `yaml:"cycles,omitempty"`
	Wiring  string `yaml:"wiring,omitempty"`
}

// MachineSpec is a complete machine description.
type MachineSpec struct {
	Version   string            `yaml:"version,omitempty"`
	Alphabet  AlphabetSpec      `yaml:"alphabet"`
	NumRotors int               `yaml:"slots"`
	NumPawls  int               `yaml:"pawls"`
	Rotors    []RotorDescriptor `yaml:"rotors"`
}

// Build returns the alphabet described by s.
func (s AlphabetSpec) Build() (*enigma.Alphabet, error) {
	if s.Range == "" {
		return enigma.NewAlphabet(s.Symbols)
	}
	lo, hi, ok := splitRange(s.Range)
	if !ok {
		return nil, fmt.Errorf("alphabet range %q: %w", s.Range, ErrSyntax)
	}
	return enigma.NewRangeAlphabet(lo, hi)
}

// parseAlphabet reads an alphabet line: "X-Y" is a range, anything else
// is the list of symbols.
func parseAlphabet(line string) AlphabetSpec {
	if _, _, ok := splitRange(line); ok {
		return AlphabetSpec{Range: line}
	}
	return AlphabetSpec{Symbols: line}
}

func splitRange(s string) (lo, hi rune, ok bool) {
	rs := []rune(s)
	if len(rs) != 3 || rs[1] != '-' {
		return 0, 0, false
	}
	return rs[0], rs[2], true
}

// Build returns the rotor d describes, over alpha.
func (d RotorDescriptor) Build(alpha *enigma.Alphabet) (enigma.Rotor, error) {
	perm, err := d.permutation(alpha)
	if err != nil {
		return nil, fmt.Errorf("rotor %s: %w", d.Name, err)
	}
	var r enigma.Rotor
	switch d.Kind {
	case KindMoving:
		r, err = enigma.NewMovingRotor(d.Name, perm, d.Notches)
	case KindFixed:
		r = enigma.NewFixedRotor(d.Name, perm)
	case KindReflector:
		r, err = enigma.NewReflector(d.Name, perm)
	default:
		err = fmt.Errorf("rotor %s: kind %q: %w", d.Name, d.Kind, ErrSyntax)
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (d RotorDescriptor) permutation(alpha *enigma.Alphabet) (*enigma.Permutation, error) {
	if d.Wiring != "" {
		if strings.TrimSpace(d.Cycles) != "" {
			return nil, fmt.Errorf("both cycles and wiring given: %w", ErrSyntax)
		}
		return enigma.PermutationFromMapping(d.Wiring, alpha)
	}
	cs, err := ParseCycles(d.Cycles)
	if err != nil {
		return nil, err
	}
	return enigma.NewPermutation(cs, alpha)
}

// Build returns a machine with no rotors inserted.
func (s *MachineSpec) Build() (*enigma.Machine, error) {
	alpha, err := s.Alphabet.Build()
	if err != nil {
		return nil, err
	}
	rotors := make([]enigma.Rotor, 0, len(s.Rotors))
	for _, d := range s.Rotors {
		r, err := d.Build(alpha)
		if err != nil {
			return nil, err
		}
		rotors = append(rotors, r)
	}
	return enigma.NewMachine(alpha, s.NumRotors, s.NumPawls, rotors)
}

// Describe returns the descriptor of an existing rotor, wiring in cycle
// form.
func Describe(r enigma.Rotor) RotorDescriptor {
	return RotorDescriptor{
		Name:    r.Name(),
		Kind:    Kind(enigma.Kind(r)),
		Notches: r.Notches(),
		Cycles:  r.Permutation().String(),
	}
}

// Export describes m's catalogue in the form LoadYAML reads, wiring as
// tables.
func Export(m *enigma.Machine) *MachineSpec {
	spec := &MachineSpec{
		Version:   "1.0.0",
		Alphabet:  AlphabetSpec{Symbols: m.Alphabet().String()},
		NumRotors: m.NumRotors(),
		NumPawls:  m.NumPawls(),
	}
	for _, r := range m.Catalogue() {
		d := Describe(r)
		d.Cycles = ""
		d.Wiring = wiringTable(r.Permutation())
		spec.Rotors = append(spec.Rotors, d)
	}
	return spec
}

func wiringTable(p *enigma.Permutation) string {
	alpha := p.Alphabet()
	var b strings.Builder
	for i := 0; i < p.Size(); i++ {
		j, _ := p.Apply(i)
		s, _ := alpha.Symbol(j)
		b.WriteRune(s)
	}
	return b.String()
}
