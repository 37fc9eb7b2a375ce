package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/706f6c6c7578/enigma/internal/config"
	"github.com/706f6c6c7578/enigma/internal/enigma"
	"github.com/706f6c6c7578/enigma/internal/session"
)

// run executes the command tree with args and stdin, away from any
// config file in the user's home.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestConvertBuiltin(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		input string
		want  string
	}{
		{
			name:  "defaults",
			args:  []string{"convert"},
			input: "HELLO WORLD\n",
			want:  "ILBDA AMTAZ\n",
		},
		{
			name:  "ungrouped",
			args:  []string{"convert", "--group", "0"},
			input: "HELLO WORLD\n",
			want:  "ILBDAAMTAZ\n",
		},
		{
			name:  "rings",
			args:  []string{"convert", "--rotors", "B,I,II,III", "--setting", "AAA", "--rings", "BBB"},
			input: "AAAAA\n",
			want:  "EWTYX\n",
		},
		{
			name:  "plugboard",
			args:  []string{"convert", "--rotors", "B,IV,II,V", "--setting", "XDY", "--plugboard", "AB CD EF"},
			input: "FROM HIS SHOULDER HIAWATHA\n",
			want:  "OYGLE PNEVP TNUCZ ZPHUV WRJ\n",
		},
		{
			name:  "upper",
			args:  []string{"convert", "--upper"},
			input: "Hello World\n",
			want:  "ILBDA AMTAZ\n",
		},
		{
			name:  "settings line overrides flags",
			args:  []string{"convert", "--setting", "QQQ"},
			input: "* B I II III AAA\nHELLO WORLD\n",
			want:  "ILBDA AMTAZ\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, tt.input, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertReciprocal(t *testing.T) {
	args := []string{"convert", "--rotors", "C,V,III,I", "--setting", "MCK", "--plugboard", "QW ER TY", "--group", "0"}
	const msg = "THEQUICKBROWNFOXJUMPSOVERTHELAZYDOG"

	enc, err := run(t, msg+"\n", args...)
	require.NoError(t, err)
	dec, err := run(t, enc, args...)
	require.NoError(t, err)
	assert.Equal(t, msg+"\n", dec)
}

func TestConvertEnvironment(t *testing.T) {
	t.Setenv("ENIGMA_GROUP", "0")
	got, err := run(t, "HELLO WORLD\n", "convert")
	require.NoError(t, err)
	assert.Equal(t, "ILBDAAMTAZ\n", got)
}

func TestConvertFiles(t *testing.T) {
	out := filepath.Join(t.TempDir(), "messages.out")
	stdout, err := run(t, "",
		"convert",
		"../../internal/session/testdata/enigma.conf",
		"../../internal/session/testdata/messages.in",
		out,
	)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	want, err := os.ReadFile("../../internal/session/testdata/messages.out")
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))
}

func TestConvertMachineFlag(t *testing.T) {
	got, err := run(t, "* B Beta I II III AAAA\nHELLO WORLD\n",
		"convert", "--machine", "../../internal/session/testdata/enigma.conf")
	require.NoError(t, err)
	assert.Equal(t, "ILBDA AMTAZ\n", got)
}

func TestConvertErrors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		input string
		want  error
	}{
		{
			name:  "unkeyed description",
			args:  []string{"convert", "../../internal/session/testdata/enigma.conf"},
			input: "HELLO\n",
			want:  session.ErrMissingSettings,
		},
		{
			name: "unknown rotor",
			args: []string{"convert", "--rotors", "B,I,II,VI"},
			want: enigma.ErrUnknownRotor,
		},
		{
			name: "short setting",
			args: []string{"convert", "--setting", "AA"},
			want: enigma.ErrSettingLengthMismatch,
		},
		{
			name: "bad plugboard",
			args: []string{"convert", "--plugboard", "ABC"},
			want: config.ErrSyntax,
		},
		{
			name:  "symbol outside alphabet",
			args:  []string{"convert"},
			input: "HELLO 1\n",
			want:  enigma.ErrSymbolNotInAlphabet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.input, tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestConvertMissingMachine(t *testing.T) {
	_, err := run(t, "", "convert", filepath.Join(t.TempDir(), "nope.conf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load machine")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCatalogueTable(t *testing.T) {
	got, err := run(t, "", "catalogue")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(got), "\n")
	require.Len(t, lines, 2+1+8)
	assert.Equal(t, "alphabet ABCDEFGHIJKLMNOPQRSTUVWXYZ, 4 slots, 3 pawls", lines[0])
	assert.Equal(t, []string{"NAME", "KIND", "NOTCHES", "CYCLES"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"A", "reflector"}, strings.Fields(lines[3])[:2])
	assert.Equal(t, []string{"I", "moving", "Q", "(AELTPHQXRU)"}, strings.Fields(lines[6])[:4])
}

func TestCatalogueYAML(t *testing.T) {
	got, err := run(t, "", "catalogue", "--format", "yaml", "../../internal/session/testdata/enigma.conf")
	require.NoError(t, err)

	spec, err := config.LoadYAML(strings.NewReader(got))
	require.NoError(t, err)
	assert.Equal(t, 5, spec.NumRotors)
	assert.Equal(t, 3, spec.NumPawls)
	assert.Len(t, spec.Rotors, 9)

	m, err := spec.Build()
	require.NoError(t, err)
	require.NoError(t, m.InsertRotors([]string{"B", "Beta", "III", "IV", "I"}))
	require.NoError(t, m.SetRotors("AXLE"))
	plugs, err := config.ParsePairs("HQ EX IP TR BY")
	require.NoError(t, err)
	pb, err := enigma.NewPermutation(plugs, m.Alphabet())
	require.NoError(t, err)
	require.NoError(t, m.SetPlugboard(pb))
	enc, err := m.ConvertString("FROMHISSHOULDERHIAWATHA")
	require.NoError(t, err)
	assert.Equal(t, "QVPQSOKOILPUBKJZPISFXDW", enc)
}

func TestCatalogueUnknownFormat(t *testing.T) {
	_, err := run(t, "", "catalogue", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestVersion(t *testing.T) {
	got, err := run(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "enigma version "))
}

func TestConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "enigma.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("group: 2\nsetting: AAA\n"), 0o600))

	got, err := run(t, "HELLO WORLD\n", "--config", cfg, "convert")
	require.NoError(t, err)
	assert.Equal(t, "IL BD AA MT AZ\n", got)

	_, err = run(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "version")
	require.Error(t, err)
}

type closeFailer struct {
	bytes.Buffer
	err error
}

func (c *closeFailer) Close() error { return c.err }

func TestWriteAndClose(t *testing.T) {
	errDisk := errors.New("disk full")
	write := func(w io.Writer) error {
		_, err := io.WriteString(w, "ILBDA AMTAZ\n")
		return err
	}

	w := &closeFailer{err: errDisk}
	err := writeAndClose(w, write)
	assert.ErrorIs(t, err, errDisk)
	assert.Equal(t, "ILBDA AMTAZ\n", w.String())

	errWrite := errors.New("bad input")
	err = writeAndClose(&closeFailer{err: errDisk}, func(io.Writer) error { return errWrite })
	assert.ErrorIs(t, err, errWrite, "the write error wins over the close error")

	assert.NoError(t, writeAndClose(&closeFailer{}, write))
}
