// Package enigma simulates rotor cipher machines of the Enigma family.
//
// A Machine owns a catalogue of rotors, a row of slots and a plugboard.
// Slot 0 always holds a Reflector and the rightmost NumPawls slots hold
// the MovingRotors, which are driven by pawls and carry notches. Each call to
// Convert first steps the rotors (including the double step of a rotor
// sitting on its notch) and then passes the signal through plugboard,
// rotors, reflector, rotors and plugboard again. The cipher is reciprocal:
// resetting the rotors and feeding the ciphertext back yields the
// plaintext.
//
// The package does no I/O and keeps no global state. Alphabets and
// Permutations are immutable; only rotor positions change, and only
// through the Machine that holds them.
package enigma
