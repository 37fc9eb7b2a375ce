package enigma

import (
	"fmt"
	"strings"
)

// Rotor is one wheel of the machine. Implementations are MovingRotor,
// FixedRotor and Reflector; the set is closed.
type Rotor interface {
	Name() string
	Permutation() *Permutation
	Size() int

	// Offset is the current rotational position, 0 being the first symbol.
	Offset() int
	SetOffset(i int) error
	// Ring is the ring setting; the wiring is shifted by Offset()-Ring().
	Ring() int
	SetRing(i int) error

	// ConvertForward passes signal p from the right-hand contacts to the
	// left-hand contacts, taking the current position into account.
	ConvertForward(p int) int
	// ConvertBackward is ConvertForward in the opposite direction.
	ConvertBackward(p int) int

	Rotates() bool
	Reflects() bool
	// AtNotch reports whether the rotor sits at one of its notches.
	AtNotch() bool
	Advance() error
	Notches() string

	reset()
	clone() Rotor
}

// wheel carries what every rotor kind has in common: its wiring and
// position.
type wheel struct {
	name   string
	perm   *Permutation
	offset int
	ring   int
}

func (w *wheel) Name() string              { return w.name }
func (w *wheel) Permutation() *Permutation { return w.perm }
func (w *wheel) Size() int                 { return w.perm.Size() }
func (w *wheel) Offset() int               { return w.offset }
func (w *wheel) Ring() int                 { return w.ring }

func (w *wheel) SetOffset(i int) error {
	if i < 0 || i >= w.Size() {
		return fmt.Errorf("rotor %s: offset %d: %w", w.name, i, ErrIndexOutOfRange)
	}
	w.offset = i
	return nil
}

func (w *wheel) SetRing(i int) error {
	if i < 0 || i >= w.Size() {
		return fmt.Errorf("rotor %s: ring %d: %w", w.name, i, ErrIndexOutOfRange)
	}
	w.ring = i
	return nil
}

func (w *wheel) ConvertForward(p int) int {
	a := w.perm.alpha
	shift := w.offset - w.ring
	return a.wrap(w.perm.forward[a.wrap(p+shift)] - shift)
}

func (w *wheel) ConvertBackward(p int) int {
	a := w.perm.alpha
	shift := w.offset - w.ring
	return a.wrap(w.perm.inverse[a.wrap(p+shift)] - shift)
}

func (w *wheel) reset() {
	w.offset = 0
	w.ring = 0
}

// MovingRotor is a rotor driven by a pawl. Its notches trigger the
// neighbouring rotor on the left.
type MovingRotor struct {
	wheel
	notches []bool
}

// NewMovingRotor returns a rotor named name wired by perm, with a notch at
// each symbol of notches. The rotor starts at offset 0.
func NewMovingRotor(name string, perm *Permutation, notches string) (*MovingRotor, error) {
	r := &MovingRotor{
		wheel:   wheel{name: name, perm: perm},
		notches: make([]bool, perm.Size()),
	}
	for _, s := range notches {
		i, err := perm.alpha.Index(s)
		if err != nil {
			return nil, fmt.Errorf("rotor %s: notch: %w", name, err)
		}
		r.notches[i] = true
	}
	return r, nil
}

func (r *MovingRotor) Rotates() bool  { return true }
func (r *MovingRotor) Reflects() bool { return false }
func (r *MovingRotor) AtNotch() bool  { return r.notches[r.offset] }

// Advance moves the rotor one position, wrapping at the alphabet size.
func (r *MovingRotor) Advance() error {
	r.offset = r.perm.alpha.wrap(r.offset + 1)
	return nil
}

func (r *MovingRotor) clone() Rotor {
	c := *r
	return &c
}

func (r *MovingRotor) Notches() string {
	var b strings.Builder
	for i, ok := range r.notches {
		if ok {
			b.WriteRune(r.perm.alpha.symbol(i))
		}
	}
	return b.String()
}

// FixedRotor never moves on its own, though it may be set by hand.
type FixedRotor struct {
	wheel
}

// NewFixedRotor returns a non-moving rotor named name wired by perm.
func NewFixedRotor(name string, perm *Permutation) *FixedRotor {
	return &FixedRotor{wheel: wheel{name: name, perm: perm}}
}

func (r *FixedRotor) Rotates() bool   { return false }
func (r *FixedRotor) Reflects() bool  { return false }
func (r *FixedRotor) AtNotch() bool   { return false }
func (r *FixedRotor) Notches() string { return "" }

func (r *FixedRotor) clone() Rotor {
	c := *r
	return &c
}

func (r *FixedRotor) Advance() error {
	return fmt.Errorf("rotor %s: %w", r.name, ErrNotRotatable)
}

// Reflector sits in slot 0 and returns the signal through the rotors.
// Its wiring pairs every contact with a different one, and it stays at
// offset 0.
type Reflector struct {
	wheel
}

// NewReflector returns a reflector named name wired by perm. perm must be
// a derangement.
func NewReflector(name string, perm *Permutation) (*Reflector, error) {
	if !perm.Derangement() {
		return nil, fmt.Errorf("reflector %s: %w", name, ErrNotDerangement)
	}
	return &Reflector{wheel: wheel{name: name, perm: perm}}, nil
}

func (r *Reflector) Rotates() bool   { return false }
func (r *Reflector) Reflects() bool  { return true }
func (r *Reflector) AtNotch() bool   { return false }
func (r *Reflector) Notches() string { return "" }

func (r *Reflector) clone() Rotor {
	c := *r
	return &c
}

func (r *Reflector) Advance() error {
	return fmt.Errorf("reflector %s: %w", r.name, ErrNotRotatable)
}

// SetOffset accepts only 0.
func (r *Reflector) SetOffset(i int) error {
	if i != 0 {
		return fmt.Errorf("reflector %s: offset %d: %w", r.name, i, ErrNotRotatable)
	}
	return nil
}

// SetRing accepts only 0.
func (r *Reflector) SetRing(i int) error {
	if i != 0 {
		return fmt.Errorf("reflector %s: ring %d: %w", r.name, i, ErrNotRotatable)
	}
	return nil
}

// Kind names the rotor's variant: "moving", "fixed" or "reflector".
func Kind(r Rotor) string {
	switch {
	case r.Reflects():
		return "reflector"
	case r.Rotates():
		return "moving"
	default:
		return "fixed"
	}
}
