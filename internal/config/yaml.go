package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/goccy/go-yaml"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaJSON []byte

// SupportedVersions is the range of YAML format versions LoadYAML reads.
const SupportedVersions = "^1.0.0"

var machineSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("machine.json", bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("failed to add machine schema: %w", err)
	}
	return compiler.Compile("machine.json")
})

// LoadYAML reads a machine description in YAML:
//
//	version: 1.0.0
//	alphabet:
//	  range: A-Z
//	slots: 4
//	pawls: 3
//	rotors:
//	  - name: I
//	    kind: moving
//	    notches: Q
//	    cycles: (AELTPHQXRU) (BKNW) (CMOY) (DFG) (IV) (JZ) (S)
//	  - name: B
//	    kind: reflector
//	    wiring: YRUHQSLDPXNGOKMIEBFZCWVJAT
//
// The document is checked against the embedded JSON Schema and its
// version against SupportedVersions before it is decoded.
func LoadYAML(r io.Reader) (*MachineSpec, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read machine description: %w", err)
	}
	if err := validateYAML(data); err != nil {
		return nil, err
	}

	var spec MachineSpec
	if err := yaml.UnmarshalWithOptions(data, &spec, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("failed to decode machine YAML: %w", err)
	}
	if err := checkVersion(spec.Version); err != nil {
		return nil, err
	}
	return &spec, nil
}

func validateYAML(data []byte) error {
	js, err := yaml.YAMLToJSON(data)
	if err != nil {
		return fmt.Errorf("failed to decode machine YAML: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(js))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("failed to decode machine YAML: %w", err)
	}

	schema, err := machineSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(doc); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return formatSchemaError(verr)
		}
		return fmt.Errorf("machine validation failed: %w", err)
	}
	return nil
}

// formatSchemaError flattens a schema error into one line per cause.
func formatSchemaError(err *jsonschema.ValidationError) error {
	var messages []string
	var collect func(*jsonschema.ValidationError)
	collect = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 && e.Message != "" {
			location := e.InstanceLocation
			if location == "" {
				location = "(root)"
			}
			messages = append(messages, fmt.Sprintf("%s: %s", location, e.Message))
		}
		for _, cause := range e.Causes {
			collect(cause)
		}
	}
	collect(err)
	if len(messages) == 0 {
		return ErrSchema
	}
	return fmt.Errorf("%w:\n    - %s", ErrSchema, strings.Join(messages, "\n    - "))
}

func checkVersion(v string) error {
	version, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("version %q: %w", v, ErrUnsupportedVersion)
	}
	constraint, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return err
	}
	if !constraint.Check(version) {
		return fmt.Errorf("version %s, want %s: %w", v, SupportedVersions, ErrUnsupportedVersion)
	}
	return nil
}
