package enigma

import (
	"fmt"
	"strings"
)

// Cycle is an ordered list of symbols; each maps to the next and the last
// maps to the first.
type Cycle []rune

// CycleSpec is a sequence of disjoint cycles.
type CycleSpec []Cycle

// Permutation is a bijection on the indices of an Alphabet.
type Permutation struct {
	alpha   *Alphabet
	forward []int
	inverse []int
}

// NewPermutation builds the permutation described by cycles. Symbols that
// appear in no cycle are fixed points.
func NewPermutation(cycles CycleSpec, alpha *Alphabet) (*Permutation, error) {
	n := alpha.Size()
	p := newIdentity(alpha)
	seen := make([]bool, n)
	for ci, c := range cycles {
		if len(c) == 0 {
			return nil, fmt.Errorf("cycle %d is empty: %w", ci, ErrMalformedCycle)
		}
		idx := make([]int, len(c))
		for k, r := range c {
			i, err := alpha.Index(r)
			if err != nil {
				return nil, fmt.Errorf("cycle %d: %q not in alphabet: %w", ci, r, ErrMalformedCycle)
			}
			if seen[i] {
				return nil, fmt.Errorf("cycle %d: %q appears twice: %w", ci, r, ErrMalformedCycle)
			}
			seen[i] = true
			idx[k] = i
		}
		for k, i := range idx {
			next := idx[(k+1)%len(idx)]
			p.forward[i] = next
			p.inverse[next] = i
		}
	}
	return p, nil
}

// IdentityPermutation returns the permutation that fixes every symbol.
func IdentityPermutation(alpha *Alphabet) *Permutation {
	return newIdentity(alpha)
}

// PermutationFromMapping builds a permutation from the images of the
// alphabet in order, so that symbol k maps to the k-th rune of mapping.
// This is how rotor wiring tables are usually printed.
func PermutationFromMapping(mapping string, alpha *Alphabet) (*Permutation, error) {
	images := []rune(mapping)
	if len(images) != alpha.Size() {
		return nil, fmt.Errorf("mapping has %d symbols, alphabet %d: %w", len(images), alpha.Size(), ErrMalformedCycle)
	}
	p := newIdentity(alpha)
	hit := make([]bool, alpha.Size())
	for i, r := range images {
		j, err := alpha.Index(r)
		if err != nil {
			return nil, fmt.Errorf("mapping: %q not in alphabet: %w", r, ErrMalformedCycle)
		}
		if hit[j] {
			return nil, fmt.Errorf("mapping: %q used twice: %w", r, ErrMalformedCycle)
		}
		hit[j] = true
		p.forward[i] = j
		p.inverse[j] = i
	}
	return p, nil
}

func newIdentity(alpha *Alphabet) *Permutation {
	n := alpha.Size()
	p := &Permutation{
		alpha:   alpha,
		forward: make([]int, n),
		inverse: make([]int, n),
	}
	for i := 0; i < n; i++ {
		p.forward[i] = i
		p.inverse[i] = i
	}
	return p
}

// Size returns the size of the alphabet the permutation acts on.
func (p *Permutation) Size() int {
	return len(p.forward)
}

// Alphabet returns the alphabet the permutation acts on.
func (p *Permutation) Alphabet() *Alphabet {
	return p.alpha
}

// Apply returns the image of i.
func (p *Permutation) Apply(i int) (int, error) {
	if i < 0 || i >= len(p.forward) {
		return 0, fmt.Errorf("apply %d: %w", i, ErrIndexOutOfRange)
	}
	return p.forward[i], nil
}

// Invert returns the preimage of i.
func (p *Permutation) Invert(i int) (int, error) {
	if i < 0 || i >= len(p.inverse) {
		return 0, fmt.Errorf("invert %d: %w", i, ErrIndexOutOfRange)
	}
	return p.inverse[i], nil
}

// Derangement reports whether no symbol maps to itself.
func (p *Permutation) Derangement() bool {
	for i, j := range p.forward {
		if i == j {
			return false
		}
	}
	return true
}

// Cycles returns the permutation's cycles, each starting at its lowest
// index, ordered by that index. Fixed points are omitted.
func (p *Permutation) Cycles() CycleSpec {
	var out CycleSpec
	seen := make([]bool, len(p.forward))
	for start := range p.forward {
		if seen[start] || p.forward[start] == start {
			continue
		}
		var c Cycle
		for i := start; !seen[i]; i = p.forward[i] {
			seen[i] = true
			c = append(c, p.alpha.symbol(i))
		}
		out = append(out, c)
	}
	return out
}

// String returns the cycles in parenthesized form, e.g. "(AELT) (BK)".
func (p *Permutation) String() string {
	return p.Cycles().String()
}

// String returns the cycles in parenthesized form.
func (cs CycleSpec) String() string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = "(" + string(c) + ")"
	}
	return strings.Join(parts, " ")
}
