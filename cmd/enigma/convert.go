package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/706f6c6c7578/enigma/internal/config"
	"github.com/706f6c6c7578/enigma/internal/enigma"
	"github.com/706f6c6c7578/enigma/internal/output"
	"github.com/706f6c6c7578/enigma/internal/session"
)

func newConvertCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [MACHINE] [INPUT] [OUTPUT]",
		Short: "Encrypt or decrypt messages",
		Long: `Read messages from INPUT (default stdin) and write the converted messages to
OUTPUT (default stdout) in groups of five.

MACHINE is a machine description (.conf text or .yaml); "builtin" or no
argument selects the Enigma I. Lines starting with '*' key the machine:

  * B Beta III IV I AXLE [RINGS] [(HQ) (EX) ...]

names the rotors (reflector first), their starting positions, optional
ring settings and plugboard cables. Input that starts without such a line
is keyed from the flags below. Conversion is its own inverse: feeding the
output back with the same settings gives the original message.`,
		Example: `  echo "HELLO WORLD" | enigma convert
  enigma convert --rotors B,II,IV,I --setting QEV --plugboard "AZ TH" < msg.txt
  enigma convert machine.conf messages.in messages.out`,
		Args: cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, v, args)
		},
	}

	f := cmd.Flags()
	f.String("rotors", "", "rotor order for input without a settings line, reflector first (e.g. B,I,II,III)")
	f.String("setting", "", "starting positions, one symbol per non-reflector rotor (default all first symbol)")
	f.String("rings", "", "ring settings, one symbol per non-reflector rotor")
	f.String("plugboard", "", "plugboard cables as pairs (e.g. \"AB CD EF\")")
	f.Int("group", output.DefaultGroupSize, "output group width, 0 for none")
	f.Bool("upper", false, "convert messages to upper case first")
	for _, name := range []string{"rotors", "setting", "rings", "plugboard", "group", "upper"} {
		_ = v.BindPFlag(name, f.Lookup(name))
	}
	return cmd
}

func runConvert(cmd *cobra.Command, v *viper.Viper, args []string) error {
	path := v.GetString("machine")
	if len(args) > 0 {
		path = args[0]
	}
	slog.Debug("loading machine", "path", path)
	spec, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load machine: %w", err)
	}
	m, err := spec.Build()
	if err != nil {
		return fmt.Errorf("failed to build machine: %w", err)
	}

	cfg := session.DefaultConfig()
	cfg.GroupSize = v.GetInt("group")
	cfg.Upper = v.GetBool("upper")
	cfg.Initial, err = initialSettings(v, m, path)
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	if len(args) > 1 {
		f, err := os.Open(args[1])
		if err != nil {
			return fmt.Errorf("could not open %s: %w", args[1], err)
		}
		defer f.Close()
		in = f
	}

	run := func(out io.Writer) error {
		err := session.NewProcessor(m, cfg).Run(cmd.Context(), in, out)
		if output.IsBrokenPipe(err) {
			return nil
		}
		return err
	}
	if len(args) < 3 {
		return run(cmd.OutOrStdout())
	}
	f, err := os.Create(args[2])
	if err != nil {
		return fmt.Errorf("could not open %s: %w", args[2], err)
	}
	return writeAndClose(f, run)
}

// writeAndClose runs write on w and closes it, reporting a failed close
// when write succeeded.
func writeAndClose(w io.WriteCloser, write func(io.Writer) error) error {
	err := write(w)
	if cerr := w.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("error closing output: %w", cerr)
	}
	return err
}

// initialSettings keys the machine from flags. Without --rotors only the
// built-in machine has a default rotor order; other machines must be keyed
// by the input.
func initialSettings(v *viper.Viper, m *enigma.Machine, path string) (*session.Settings, error) {
	var rotors []string
	if r := v.GetString("rotors"); r != "" {
		rotors = strings.Split(r, ",")
	} else if path == config.BuiltinName || path == "" {
		rotors = config.DefaultRotors
	} else {
		return nil, nil
	}

	setting := v.GetString("setting")
	if setting == "" {
		first, _ := m.Alphabet().Symbol(0)
		setting = strings.Repeat(string(first), m.NumRotors()-1)
	}
	plugs, err := config.ParsePairs(v.GetString("plugboard"))
	if err != nil {
		return nil, fmt.Errorf("--plugboard: %w", err)
	}
	return &session.Settings{
		Rotors:    rotors,
		Position:  setting,
		Rings:     v.GetString("rings"),
		Plugboard: plugs,
	}, nil
}
