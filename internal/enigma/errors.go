package enigma

import "errors"

var (
	// ErrNotInAlphabet indicates a symbol lookup for a rune outside the alphabet.
	ErrNotInAlphabet = errors.New("enigma: symbol not in alphabet")
	// ErrIndexOutOfRange indicates an index outside [0, size).
	ErrIndexOutOfRange = errors.New("enigma: index out of range")
	// ErrMalformedCycle indicates an invalid cycle specification.
	ErrMalformedCycle = errors.New("enigma: malformed cycle")
	// ErrUnknownRotor indicates a rotor name missing from the catalogue.
	ErrUnknownRotor = errors.New("enigma: unknown rotor")
	// ErrDuplicateRotor indicates a rotor name used twice.
	ErrDuplicateRotor = errors.New("enigma: duplicate rotor")
	// ErrReflectorExpected indicates slot 0 was given a non-reflector.
	ErrReflectorExpected = errors.New("enigma: first rotor must be a reflector")
	// ErrPawlMismatch indicates the number of moving rotors differs from the pawl count.
	ErrPawlMismatch = errors.New("enigma: moving rotor count does not match pawls")
	// ErrSlotCountMismatch indicates the number of rotors differs from the slot count.
	ErrSlotCountMismatch = errors.New("enigma: rotor count does not match slots")
	// ErrSettingLengthMismatch indicates a setting string of the wrong length.
	ErrSettingLengthMismatch = errors.New("enigma: setting length mismatch")
	// ErrSymbolNotInAlphabet indicates a setting or message symbol outside the alphabet.
	ErrSymbolNotInAlphabet = errors.New("enigma: symbol not in alphabet")
	// ErrNotRotatable indicates an attempt to move a rotor that cannot move.
	ErrNotRotatable = errors.New("enigma: rotor cannot rotate")

	ErrEmptyAlphabet    = errors.New("enigma: alphabet must have at least one symbol")
	ErrDuplicateSymbol  = errors.New("enigma: duplicate symbol in alphabet")
	ErrNotDerangement   = errors.New("enigma: reflector wiring has a fixed point")
	ErrInvalidGeometry  = errors.New("enigma: need numRotors > numPawls >= 0")
	ErrAlphabetMismatch = errors.New("enigma: component built over a different alphabet")
	ErrNotConfigured    = errors.New("enigma: no rotors inserted")
)
