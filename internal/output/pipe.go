package output

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether err means the reader of the output went
// away, as when ciphertext is piped into a pager that quits early. Such
// errors end a conversion without failing it.
func IsBrokenPipe(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe)
}
