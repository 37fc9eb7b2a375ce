package config

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax indicates text that does not follow the description format.
	ErrSyntax = errors.New("config: syntax error")
	// ErrSchema indicates a YAML description rejected by the schema.
	ErrSchema = errors.New("config: schema violation")
	// ErrUnsupportedVersion indicates a YAML description of an unknown format version.
	ErrUnsupportedVersion = errors.New("config: unsupported format version")
)

// LineError ties a failure to the line of input that caused it.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
