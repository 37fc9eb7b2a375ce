package config

import (
	"bytes"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportRoundTrip(t *testing.T) {
	spec, err := Load("testdata/enigma.conf")
	require.NoError(t, err)
	m, err := spec.Build()
	require.NoError(t, err)

	exported := Export(m)
	assert.Equal(t, "ABCDEFGHIJKLMNOPQRSTUVWXYZ", exported.Alphabet.Symbols)
	assert.Equal(t, "EKMFLGDQVZNTOWYHXUSPAIBRCJ", exported.Rotors[0].Wiring)

	data, err := yaml.Marshal(exported)
	require.NoError(t, err)
	back, err := LoadYAML(bytes.NewReader(data))
	require.NoError(t, err)
	m2, err := back.Build()
	require.NoError(t, err)

	require.Len(t, m2.Catalogue(), len(m.Catalogue()))
	for i, r := range m.Catalogue() {
		assert.Equal(t, Describe(r), Describe(m2.Catalogue()[i]))
	}
}
