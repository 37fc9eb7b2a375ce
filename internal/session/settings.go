package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/706f6c6c7578/enigma/internal/config"
	"github.com/706f6c6c7578/enigma/internal/enigma"
)

var (
	// ErrMissingSettings indicates a message before the first settings line.
	ErrMissingSettings = errors.New("session: message before any settings line")
	// ErrSettingsSyntax indicates a malformed settings line.
	ErrSettingsSyntax = errors.New("session: malformed settings line")
)

// Settings is one keying of the machine.
type Settings struct {
	Rotors    []string // reflector first
	Position  string   // initial offsets of slots 1..n-1
	Rings     string   // ring settings, empty for none
	Plugboard enigma.CycleSpec
}

// IsSettingsLine reports whether line starts a new session.
func IsSettingsLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "*")
}

// ParseSettings parses a settings line for a machine with numRotors
// slots: a '*', the rotor names reflector first, the setting, optional
// ring settings and plugboard cycles, e.g. "* B Beta III IV I AXLE (HQ) (EX)".
func ParseSettings(line string, numRotors int) (Settings, error) {
	text := strings.TrimSpace(line)
	if !strings.HasPrefix(text, "*") {
		return Settings{}, fmt.Errorf("%q does not start with '*': %w", line, ErrSettingsSyntax)
	}
	f := strings.Fields(text[1:])
	if len(f) < numRotors+1 {
		return Settings{}, fmt.Errorf("want %d rotor names and a setting, got %d fields: %w", numRotors, len(f), ErrSettingsSyntax)
	}
	s := Settings{
		Rotors:   f[:numRotors],
		Position: f[numRotors],
	}
	for _, name := range s.Rotors {
		if strings.HasPrefix(name, "(") {
			return Settings{}, fmt.Errorf("rotor name %q: %w", name, ErrSettingsSyntax)
		}
	}
	if strings.HasPrefix(s.Position, "(") {
		return Settings{}, fmt.Errorf("setting %q: %w", s.Position, ErrSettingsSyntax)
	}
	rest := f[numRotors+1:]
	if len(rest) > 0 && !strings.HasPrefix(rest[0], "(") {
		s.Rings, rest = rest[0], rest[1:]
	}
	plugs, err := config.ParseCycles(strings.Join(rest, " "))
	if err != nil {
		return Settings{}, fmt.Errorf("plugboard: %w", err)
	}
	s.Plugboard = plugs
	return s, nil
}

// Apply keys m with s. The plugboard is cleared when s has none. On error
// m keeps its previous keying.
func (s Settings) Apply(m *enigma.Machine) error {
	pb, err := enigma.NewPermutation(s.Plugboard, m.Alphabet())
	if err != nil {
		return fmt.Errorf("plugboard: %w", err)
	}
	return m.Configure(s.Rotors, s.Position, s.Rings, pb)
}
