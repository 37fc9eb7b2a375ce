package config

// Wiring tables and turnover notches of the Enigma I rotors and
// reflectors, listed as the image of A..Z.
var builtinRotors = []RotorDescriptor{
	{Name: "A", Kind: KindReflector, Wiring: "EJMZALYXVBWFCRQUONTSPIKHGD"},
	{Name: "B", Kind: KindReflector, Wiring: "YRUHQSLDPXNGOKMIEBFZCWVJAT"},
	{Name: "C", Kind: KindReflector, Wiring: "FVPJIAOYEDRZXWGCTKUQSBNMHL"},
	{Name: "I", Kind: KindMoving, Notches: "Q", Wiring: "EKMFLGDQVZNTOWYHXUSPAIBRCJ"},
	{Name: "II", Kind: KindMoving, Notches: "E", Wiring: "AJDKSIRUXBLHWTMCQGZNPYFVOE"},
	{Name: "III", Kind: KindMoving, Notches: "V", Wiring: "BDFHJLCPRTXVZNYEIWGAKMUSQO"},
	{Name: "IV", Kind: KindMoving, Notches: "J", Wiring: "ESOVPZJAYQUIRHXLNFTGKDCMWB"},
	{Name: "V", Kind: KindMoving, Notches: "Z", Wiring: "VZBRGITYUPSDNHLXAWMJQOFECK"},
}

// BuiltinName selects Builtin wherever a description path is accepted.
const BuiltinName = "builtin"

// Builtin describes the three-rotor Enigma I: A-Z, a reflector and three
// moving rotors chosen from I..V.
func Builtin() *MachineSpec {
	return &MachineSpec{
		Version:   "1.0.0",
		Alphabet:  AlphabetSpec{Range: "A-Z"},
		NumRotors: 4,
		NumPawls:  3,
		Rotors:    append([]RotorDescriptor(nil), builtinRotors...),
	}
}

// DefaultRotors is the rotor order used when none is given.
var DefaultRotors = []string{"B", "I", "II", "III"}
