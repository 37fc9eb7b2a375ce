// Package session runs message streams through a machine. A stream is a
// sequence of settings lines, each starting with '*', and message lines.
// Each settings line rekeys the machine; each message line is converted
// with its whitespace removed and printed in fixed-width groups.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/706f6c6c7578/enigma/internal/config"
	"github.com/706f6c6c7578/enigma/internal/enigma"
	"github.com/706f6c6c7578/enigma/internal/output"
)

// Config configures a Processor.
type Config struct {
	// GroupSize is the width of output blocks; 0 prints messages ungrouped.
	GroupSize int
	// Initial, when set, keys the machine before the first line so that
	// input without a settings line can be processed.
	Initial *Settings
	// Upper converts messages to upper case before encoding.
	Upper  bool
	Logger *slog.Logger
}

// DefaultConfig returns the configuration used by the command line.
func DefaultConfig() Config {
	return Config{
		GroupSize: output.DefaultGroupSize,
		Logger:    slog.Default(),
	}
}

// Processor feeds an input stream through one machine.
type Processor struct {
	machine *enigma.Machine
	cfg     Config
	keyed   bool
}

// NewProcessor returns a processor for m.
func NewProcessor(m *enigma.Machine, cfg Config) *Processor {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Processor{machine: m, cfg: cfg}
}

// Run processes in line by line, writing converted messages to out. It
// stops at the first error, which is a *config.LineError for problems in
// the input. Messages converted before the error are still written.
func (p *Processor) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	if p.cfg.Initial != nil {
		if err := p.rekey(*p.cfg.Initial, 0); err != nil {
			return fmt.Errorf("initial settings: %w", err)
		}
	}

	w := bufio.NewWriter(out)
	err := p.process(ctx, in, w)
	if ferr := w.Flush(); ferr != nil && err == nil {
		err = fmt.Errorf("error writing output: %w", ferr)
	}
	return err
}

func (p *Processor) process(ctx context.Context, in io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(in)
	line, messages := 0, 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line++
		text := sc.Text()

		if IsSettingsLine(text) {
			s, err := ParseSettings(text, p.machine.NumRotors())
			if err == nil {
				err = p.rekey(s, line)
			}
			if err != nil {
				return &config.LineError{Line: line, Err: err}
			}
			continue
		}

		msg := strings.Join(strings.Fields(text), "")
		if p.cfg.Upper {
			msg = strings.ToUpper(msg)
		}
		if !p.keyed {
			if msg == "" {
				continue
			}
			return &config.LineError{Line: line, Err: ErrMissingSettings}
		}
		converted, err := p.machine.ConvertString(msg)
		if err != nil {
			return &config.LineError{Line: line, Err: err}
		}
		messages++
		if _, err := fmt.Fprintln(w, output.Group(converted, p.cfg.GroupSize)); err != nil {
			return fmt.Errorf("error writing output: %w", err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}
	p.cfg.Logger.Debug("input processed", "lines", line, "messages", messages)
	return nil
}

func (p *Processor) rekey(s Settings, line int) error {
	if err := s.Apply(p.machine); err != nil {
		return err
	}
	p.keyed = true
	p.cfg.Logger.Debug("session started",
		"session", uuid.New().String(),
		"line", line,
		"rotors", strings.Join(s.Rotors, " "),
		"setting", s.Position,
		"rings", s.Rings,
		"plugboard", s.Plugboard.String(),
	)
	return nil
}
