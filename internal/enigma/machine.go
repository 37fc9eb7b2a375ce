package enigma

import (
	"fmt"
	"strings"
)

// Machine is a rotor machine: numRotors slots (slot 0 holds the
// reflector, the last slot the fast rotor), a plugboard, and a catalogue
// of rotors that may be inserted.
type Machine struct {
	alpha     *Alphabet
	numRotors int
	numPawls  int
	catalogue map[string]Rotor
	order     []Rotor // catalogue in the order given

	slots     []Rotor
	plugboard *Permutation
	notched   []bool // scratch for Convert
}

// NewMachine returns a machine over alpha with numRotors slots and
// numPawls pawls, able to use any rotor of catalogue. Names are matched
// without regard to case.
func NewMachine(alpha *Alphabet, numRotors, numPawls int, catalogue []Rotor) (*Machine, error) {
	if numRotors < 1 || numPawls < 0 || numPawls >= numRotors {
		return nil, fmt.Errorf("%d rotors, %d pawls: %w", numRotors, numPawls, ErrInvalidGeometry)
	}
	m := &Machine{
		alpha:     alpha,
		numRotors: numRotors,
		numPawls:  numPawls,
		catalogue: make(map[string]Rotor, len(catalogue)),
		order:     make([]Rotor, 0, len(catalogue)),
		plugboard: IdentityPermutation(alpha),
		notched:   make([]bool, numRotors),
	}
	for _, r := range catalogue {
		key := strings.ToUpper(r.Name())
		if _, dup := m.catalogue[key]; dup {
			return nil, fmt.Errorf("catalogue: %s: %w", r.Name(), ErrDuplicateRotor)
		}
		if r.Permutation().Alphabet() != alpha {
			return nil, fmt.Errorf("catalogue: %s: %w", r.Name(), ErrAlphabetMismatch)
		}
		m.catalogue[key] = r
		m.order = append(m.order, r)
	}
	return m, nil
}

// Alphabet returns the machine's alphabet.
func (m *Machine) Alphabet() *Alphabet { return m.alpha }

// NumRotors returns the number of rotor slots.
func (m *Machine) NumRotors() int { return m.numRotors }

// NumPawls returns the number of pawls, and so of rotating rotors.
func (m *Machine) NumPawls() int { return m.numPawls }

// Catalogue returns copies of the available rotors in the order given to
// NewMachine. Changing their positions does not affect the machine.
func (m *Machine) Catalogue() []Rotor {
	out := make([]Rotor, len(m.order))
	for i, r := range m.order {
		out[i] = r.clone()
	}
	return out
}

// Plugboard returns the current plugboard.
func (m *Machine) Plugboard() *Permutation { return m.plugboard }

// InsertRotors fills the slots with the catalogue rotors named by names,
// names[0] being the reflector. All inserted rotors are reset to offset 0
// and ring 0. On error the slots are left as they were.
func (m *Machine) InsertRotors(names []string) error {
	picked, err := m.pick(names)
	if err != nil {
		return err
	}
	m.install(picked)
	return nil
}

// Configure inserts the rotors named by names, sets their offsets from
// setting and their rings from rings (all at the first symbol when empty)
// and replaces the plugboard. Everything is checked before the machine is
// touched, so on error it keeps its previous configuration.
func (m *Machine) Configure(names []string, setting, rings string, plugboard *Permutation) error {
	picked, err := m.pick(names)
	if err != nil {
		return err
	}
	pos, err := m.parseSetting("setting", setting)
	if err != nil {
		return err
	}
	var ringPos []int
	if rings != "" {
		if ringPos, err = m.parseSetting("rings", rings); err != nil {
			return err
		}
	}
	if plugboard != nil && plugboard.Alphabet() != m.alpha {
		return fmt.Errorf("plugboard: %w", ErrAlphabetMismatch)
	}

	m.install(picked)
	for i, p := range pos {
		_ = m.slots[i+1].SetOffset(p)
	}
	for i, p := range ringPos {
		_ = m.slots[i+1].SetRing(p)
	}
	return m.SetPlugboard(plugboard)
}

// pick resolves names against the catalogue and checks that they form a
// valid rotor order: a reflector in slot 0 only, and moving rotors in
// exactly the slots that have pawls.
func (m *Machine) pick(names []string) ([]Rotor, error) {
	picked := make([]Rotor, len(names))
	for i, name := range names {
		r, ok := m.catalogue[strings.ToUpper(name)]
		if !ok {
			return nil, fmt.Errorf("%s: %w", name, ErrUnknownRotor)
		}
		picked[i] = r
	}
	used := make(map[Rotor]bool, len(picked))
	moving := 0
	for i, r := range picked {
		if used[r] {
			return nil, fmt.Errorf("%s: %w", names[i], ErrDuplicateRotor)
		}
		used[r] = true
		if r.Rotates() {
			moving++
		}
	}
	if len(picked) == 0 {
		return nil, fmt.Errorf("got 0 rotors, want %d: %w", m.numRotors, ErrSlotCountMismatch)
	}
	if !picked[0].Reflects() {
		return nil, fmt.Errorf("%s: %w", picked[0].Name(), ErrReflectorExpected)
	}
	if moving != m.numPawls {
		return nil, fmt.Errorf("got %d moving rotors, want %d: %w", moving, m.numPawls, ErrPawlMismatch)
	}
	if len(picked) != m.numRotors {
		return nil, fmt.Errorf("got %d rotors, want %d: %w", len(picked), m.numRotors, ErrSlotCountMismatch)
	}
	for i, r := range picked[1:] {
		slot := i + 1
		if r.Reflects() {
			return nil, fmt.Errorf("%s in slot %d: reflector only fits slot 0: %w", r.Name(), slot, ErrReflectorExpected)
		}
		if r.Rotates() != (slot >= m.numRotors-m.numPawls) {
			return nil, fmt.Errorf("%s in slot %d: moving rotors go in slots %d..%d: %w",
				r.Name(), slot, m.numRotors-m.numPawls, m.numRotors-1, ErrPawlMismatch)
		}
	}
	return picked, nil
}

func (m *Machine) install(picked []Rotor) {
	for _, r := range picked {
		r.reset()
	}
	m.slots = picked
}

// SetRotors sets the offsets of slots 1 onwards from setting, whose first
// symbol is for the leftmost non-reflector rotor.
func (m *Machine) SetRotors(setting string) error {
	if m.slots == nil {
		return ErrNotConfigured
	}
	pos, err := m.parseSetting("setting", setting)
	if err != nil {
		return err
	}
	for i, p := range pos {
		_ = m.slots[i+1].SetOffset(p)
	}
	return nil
}

// SetRings sets the ring settings of slots 1 onwards, in the same layout
// as SetRotors.
func (m *Machine) SetRings(setting string) error {
	if m.slots == nil {
		return ErrNotConfigured
	}
	pos, err := m.parseSetting("rings", setting)
	if err != nil {
		return err
	}
	for i, p := range pos {
		_ = m.slots[i+1].SetRing(p)
	}
	return nil
}

// parseSetting validates a per-slot setting string completely before
// anything is changed.
func (m *Machine) parseSetting(what, setting string) ([]int, error) {
	syms := []rune(setting)
	if len(syms) != m.numRotors-1 {
		return nil, fmt.Errorf("%s %q has %d symbols, want %d: %w", what, setting, len(syms), m.numRotors-1, ErrSettingLengthMismatch)
	}
	pos := make([]int, len(syms))
	for i, s := range syms {
		p, err := m.alpha.Index(s)
		if err != nil {
			return nil, fmt.Errorf("%s %q: %q: %w", what, setting, s, ErrSymbolNotInAlphabet)
		}
		pos[i] = p
	}
	return pos, nil
}

// SetPlugboard replaces the plugboard. A nil plugboard connects nothing.
func (m *Machine) SetPlugboard(p *Permutation) error {
	if p == nil {
		m.plugboard = IdentityPermutation(m.alpha)
		return nil
	}
	if p.Alphabet() != m.alpha {
		return fmt.Errorf("plugboard: %w", ErrAlphabetMismatch)
	}
	m.plugboard = p
	return nil
}

// Slots returns the names of the inserted rotors, reflector first.
func (m *Machine) Slots() []string {
	names := make([]string, len(m.slots))
	for i, r := range m.slots {
		names[i] = r.Name()
	}
	return names
}

// Offsets returns the offset of every slot, reflector included.
func (m *Machine) Offsets() []int {
	offs := make([]int, len(m.slots))
	for i, r := range m.slots {
		offs[i] = r.Offset()
	}
	return offs
}

// Setting returns the current positions of slots 1 onwards as symbols,
// the form SetRotors accepts.
func (m *Machine) Setting() string {
	if len(m.slots) < 2 {
		return ""
	}
	var b strings.Builder
	for _, r := range m.slots[1:] {
		b.WriteRune(m.alpha.symbol(r.Offset()))
	}
	return b.String()
}

// Convert advances the rotors, then returns the encoding of the symbol
// with index c.
func (m *Machine) Convert(c int) (int, error) {
	if m.slots == nil {
		return 0, ErrNotConfigured
	}
	if c < 0 || c >= m.alpha.Size() {
		return 0, fmt.Errorf("convert %d: %w", c, ErrIndexOutOfRange)
	}
	m.advance()
	return m.signal(c), nil
}

// advance steps the rotors for one keypress. Every decision is taken from
// the notch positions before any rotor moves, and each rotor moves at most
// once. A rotor moves when it is the fast rotor, when its right neighbour
// is at a notch, or when it is itself at a notch and its left neighbour is
// driven too (double stepping).
func (m *Machine) advance() {
	last := len(m.slots) - 1
	for i, r := range m.slots {
		m.notched[i] = r.AtNotch()
	}
	step := func(i int) bool {
		switch {
		case !m.driven(i):
			return false
		case i == last:
			return true
		case m.notched[i+1]:
			return true
		default:
			return m.notched[i] && m.driven(i-1)
		}
	}
	for i := last; i >= 1; i-- {
		if step(i) {
			_ = m.slots[i].Advance()
		}
	}
}

// driven reports whether slot i has a pawl and a rotor that can use it.
func (m *Machine) driven(i int) bool {
	return i >= 1 && i >= m.numRotors-m.numPawls && m.slots[i].Rotates()
}

// signal runs c through the plugboard, the rotors, the reflector and back.
func (m *Machine) signal(c int) int {
	c = m.plugboard.forward[c]
	for i := len(m.slots) - 1; i >= 1; i-- {
		c = m.slots[i].ConvertForward(c)
	}
	c = m.slots[0].ConvertForward(c)
	for i := 1; i < len(m.slots); i++ {
		c = m.slots[i].ConvertBackward(c)
	}
	return m.plugboard.inverse[c]
}

// ConvertString encodes msg one symbol at a time. If a symbol is not in
// the alphabet an error is returned and the rotors keep the positions
// reached by the symbols before it, as they would on the real machine.
func (m *Machine) ConvertString(msg string) (string, error) {
	if m.slots == nil {
		return "", ErrNotConfigured
	}
	var b strings.Builder
	b.Grow(len(msg))
	for i, s := range []rune(msg) {
		c, err := m.alpha.Index(s)
		if err != nil {
			return b.String(), fmt.Errorf("position %d: %q: %w", i, s, ErrSymbolNotInAlphabet)
		}
		out, _ := m.Convert(c)
		b.WriteRune(m.alpha.symbol(out))
	}
	return b.String(), nil
}
