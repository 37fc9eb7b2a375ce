// Package output formats converted messages for printing.
package output

import "strings"

// DefaultGroupSize is the block width traditionally used for ciphertext.
const DefaultGroupSize = 5

// Group splits msg into blocks of size runes separated by single spaces.
// The last block may be shorter. A size of zero or less returns msg
// unchanged.
func Group(msg string, size int) string {
	rs := []rune(msg)
	if size <= 0 || len(rs) <= size {
		return msg
	}
	var b strings.Builder
	b.Grow(len(msg) + len(rs)/size)
	for i := 0; i < len(rs); i += size {
		if i > 0 {
			b.WriteByte(' ')
		}
		end := min(i+size, len(rs))
		b.WriteString(string(rs[i:end]))
	}
	return b.String()
}
