package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LoadClassic reads a machine description in the line-oriented text
// format:
//
//	A-Z
//	5 3
//	I MQ (AELTPHQXRU) (BKNW) (CMOY) (DFG) (IV) (JZ) (S)
//	Beta N (ALBEVFCYODJWUGNMQTZSKPR) (HIX)
//	B R (AE) (BN) (CK) (DQ) (FU) (GY) (HW) (IJ) (LO) (MP)
//	     (RX) (SZ) (TV)
//
// The first line is the alphabet, the second the slot and pawl counts.
// Each rotor line holds a name, a kind (M followed by the notch symbols,
// N or R) and cycles. A line starting with '(' continues the cycles of
// the rotor above it. Blank lines are ignored.
func LoadClassic(r io.Reader) (*MachineSpec, error) {
	sc := bufio.NewScanner(r)
	spec := &MachineSpec{}
	stage := 0
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		var err error
		switch stage {
		case 0:
			spec.Alphabet = parseAlphabet(text)
			stage++
		case 1:
			spec.NumRotors, spec.NumPawls, err = parseGeometry(text)
			stage++
		default:
			err = spec.addRotorLine(text)
		}
		if err != nil {
			return nil, &LineError{Line: line, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read machine description: %w", err)
	}
	if stage < 2 {
		return nil, &LineError{Line: line, Err: fmt.Errorf("missing slot and pawl counts: %w", ErrSyntax)}
	}
	return spec, nil
}

func parseGeometry(text string) (rotors, pawls int, err error) {
	f := strings.Fields(text)
	if len(f) != 2 {
		return 0, 0, fmt.Errorf("want slot and pawl counts, got %q: %w", text, ErrSyntax)
	}
	if rotors, err = strconv.Atoi(f[0]); err != nil {
		return 0, 0, fmt.Errorf("slot count %q: %w", f[0], ErrSyntax)
	}
	if pawls, err = strconv.Atoi(f[1]); err != nil {
		return 0, 0, fmt.Errorf("pawl count %q: %w", f[1], ErrSyntax)
	}
	return rotors, pawls, nil
}

func (s *MachineSpec) addRotorLine(text string) error {
	if strings.HasPrefix(text, "(") {
		if len(s.Rotors) == 0 {
			return fmt.Errorf("cycles before any rotor: %w", ErrSyntax)
		}
		last := &s.Rotors[len(s.Rotors)-1]
		last.Cycles = strings.TrimSpace(last.Cycles + " " + text)
		return nil
	}
	f := strings.Fields(text)
	if len(f) < 2 {
		return fmt.Errorf("rotor %q: want name and kind: %w", text, ErrSyntax)
	}
	d := RotorDescriptor{Name: f[0]}
	kind := []rune(f[1])
	switch kind[0] {
	case 'M':
		d.Kind = KindMoving
		d.Notches = string(kind[1:])
	case 'N':
		d.Kind = KindFixed
	case 'R':
		d.Kind = KindReflector
	default:
		return fmt.Errorf("rotor %s: kind %q: %w", d.Name, f[1], ErrSyntax)
	}
	if d.Kind != KindMoving && len(kind) > 1 {
		return fmt.Errorf("rotor %s: only moving rotors have notches: %w", d.Name, ErrSyntax)
	}
	d.Cycles = strings.Join(f[2:], " ")
	s.Rotors = append(s.Rotors, d)
	return nil
}
