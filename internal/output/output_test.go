package output

import (
	"fmt"
	"io"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroup(t *testing.T) {
	tests := []struct {
		msg  string
		size int
		want string
	}{
		{"", 5, ""},
		{"ABC", 5, "ABC"},
		{"ABCDE", 5, "ABCDE"},
		{"ABCDEF", 5, "ABCDE F"},
		{"QVPQSOKOILPUBKJZPISFXDW", 5, "QVPQS OKOIL PUBKJ ZPISF XDW"},
		{"ABCDEFGHIJ", 5, "ABCDE FGHIJ"},
		{"ÄÖÜßÄÖ", 2, "ÄÖ Üß ÄÖ"},
		{"ABCDEF", 0, "ABCDEF"},
		{"ABCDEF", -1, "ABCDEF"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%d", tt.msg, tt.size), func(t *testing.T) {
			assert.Equal(t, tt.want, Group(tt.msg, tt.size))
		})
	}
}

func TestIsBrokenPipe(t *testing.T) {
	assert.True(t, IsBrokenPipe(fmt.Errorf("write: %w", syscall.EPIPE)))
	assert.True(t, IsBrokenPipe(io.ErrClosedPipe))
	assert.False(t, IsBrokenPipe(io.EOF))
	assert.False(t, IsBrokenPipe(nil))
}
