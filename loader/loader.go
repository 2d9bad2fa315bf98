// SPDX-License-Identifier: MIT

package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/pathsearch/core"
)

// Sentinel errors for loading.
var (
	// ErrUnknownFormat indicates a file extension Load does not handle.
	ErrUnknownFormat = errors.New("loader: unknown graph file format")

	// ErrFormat indicates malformed graph content.
	ErrFormat = errors.New("loader: malformed graph")
)

// Load opens path and decodes it according to its extension.
func Load(path string) (*core.Graph, error) {
	var read func(io.Reader) (*core.Graph, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		read = ReadYAML
	case ".graph", ".adj", ".txt":
		read = ReadAdjacency
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Save writes g to path as YAML.
func Save(path string, g *core.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("loader: create %s: %w", path, err)
	}
	if err = WriteYAML(f, g); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
