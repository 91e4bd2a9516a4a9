package graphfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/lvpath/core"
)

// LoadFile opens path and picks the decoder from its extension:
// .yaml/.yml or .csv.
func LoadFile(path string) (*core.WeightedGraph[string], error) {
	var load func(*os.File) (*core.WeightedGraph[string], error)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		load = func(f *os.File) (*core.WeightedGraph[string], error) { return LoadYAML(f) }
	case ".csv":
		load = func(f *os.File) (*core.WeightedGraph[string], error) { return LoadCSV(f) }
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: open: %w", err)
	}
	defer f.Close()

	g, err := load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}
