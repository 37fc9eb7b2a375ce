package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads the machine description at path. Files ending in .yaml or
// .yml are read with LoadYAML, others with LoadClassic. An empty path or
// BuiltinName yields Builtin.
func Load(path string) (*MachineSpec, error) {
	if path == "" || path == BuiltinName {
		return Builtin(), nil
	}

	root, err := os.OpenRoot(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open description directory: %w", err)
	}
	defer func() {
		_ = root.Close()
	}()

	f, err := root.Open(filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open machine description: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(f)
	default:
		return LoadClassic(f)
	}
}
