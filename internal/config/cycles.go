package config

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/706f6c6c7578/enigma/internal/enigma"
)

// ParseCycles parses cycles written as parenthesized groups, e.g.
// "(AELTPHQXRU) (BKNW)". Whitespace between groups is optional; inside a
// group it is not allowed.
func ParseCycles(text string) (enigma.CycleSpec, error) {
	var (
		spec enigma.CycleSpec
		cur  enigma.Cycle
		open bool
	)
	for i, r := range text {
		switch {
		case r == '(':
			if open {
				return nil, fmt.Errorf("cycles %q: nested '(' at %d: %w", text, i, ErrSyntax)
			}
			open, cur = true, enigma.Cycle{}
		case r == ')':
			if !open {
				return nil, fmt.Errorf("cycles %q: unmatched ')' at %d: %w", text, i, ErrSyntax)
			}
			open = false
			spec = append(spec, cur)
		case unicode.IsSpace(r):
			if open {
				return nil, fmt.Errorf("cycles %q: space inside cycle at %d: %w", text, i, ErrSyntax)
			}
		default:
			if !open {
				return nil, fmt.Errorf("cycles %q: %q outside parentheses: %w", text, r, ErrSyntax)
			}
			cur = append(cur, r)
		}
	}
	if open {
		return nil, fmt.Errorf("cycles %q: unclosed '(': %w", text, ErrSyntax)
	}
	return spec, nil
}

// ParsePairs parses plugboard cables written as space-separated pairs,
// e.g. "AB CD EF", into two-element cycles.
func ParsePairs(text string) (enigma.CycleSpec, error) {
	var spec enigma.CycleSpec
	for _, pair := range strings.Fields(text) {
		rs := []rune(pair)
		if len(rs) != 2 {
			return nil, fmt.Errorf("plugboard pair %q: %w", pair, ErrSyntax)
		}
		spec = append(spec, enigma.Cycle(rs))
	}
	return spec, nil
}
