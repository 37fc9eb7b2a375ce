package enigma

import (
	"fmt"
	"unicode/utf8"
)

// defaultSymbols is the alphabet of the historical machines.
const defaultSymbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Alphabet is an ordered set of distinct runes. Symbol k has index k.
// An Alphabet is immutable and may be shared by any number of rotors.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}

// NewAlphabet returns the alphabet whose symbols are the runes of symbols,
// in order.
func NewAlphabet(symbols string) (*Alphabet, error) {
	if symbols == "" {
		return nil, ErrEmptyAlphabet
	}
	a := &Alphabet{
		symbols: make([]rune, 0, utf8.RuneCountInString(symbols)),
		index:   make(map[rune]int),
	}
	for _, r := range symbols {
		if _, dup := a.index[r]; dup {
			return nil, fmt.Errorf("%q: %w", r, ErrDuplicateSymbol)
		}
		a.index[r] = len(a.symbols)
		a.symbols = append(a.symbols, r)
	}
	return a, nil
}

// NewRangeAlphabet returns the alphabet of the contiguous code points
// low..high inclusive.
func NewRangeAlphabet(low, high rune) (*Alphabet, error) {
	if high < low {
		return nil, fmt.Errorf("range %q-%q: %w", low, high, ErrEmptyAlphabet)
	}
	a := &Alphabet{
		symbols: make([]rune, 0, high-low+1),
		index:   make(map[rune]int, high-low+1),
	}
	for r := low; r <= high; r++ {
		a.index[r] = len(a.symbols)
		a.symbols = append(a.symbols, r)
	}
	return a, nil
}

// DefaultAlphabet returns A-Z.
func DefaultAlphabet() *Alphabet {
	a, _ := NewAlphabet(defaultSymbols)
	return a
}

// Size returns the number of symbols.
func (a *Alphabet) Size() int {
	return len(a.symbols)
}

// Contains reports whether r is one of the symbols.
func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

// Symbol returns symbol number i.
func (a *Alphabet) Symbol(i int) (rune, error) {
	if i < 0 || i >= len(a.symbols) {
		return 0, fmt.Errorf("symbol %d of %d: %w", i, len(a.symbols), ErrIndexOutOfRange)
	}
	return a.symbols[i], nil
}

// Index returns the index of r. It is the inverse of Symbol.
func (a *Alphabet) Index(r rune) (int, error) {
	i, ok := a.index[r]
	if !ok {
		return 0, fmt.Errorf("%q: %w", r, ErrNotInAlphabet)
	}
	return i, nil
}

// String returns the symbols in order.
func (a *Alphabet) String() string {
	return string(a.symbols)
}

// symbol is Symbol for indices already known to be valid.
func (a *Alphabet) symbol(i int) rune {
	return a.symbols[i]
}

// wrap reduces p into [0, Size()).
func (a *Alphabet) wrap(p int) int {
	n := len(a.symbols)
	r := p % n
	if r < 0 {
		r += n
	}
	return r
}
