package graphfile

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvpath/core"
)

// DecodeYAML reads a Document from r. Unknown keys are rejected so typos
// such as "wieght" do not silently drop data.
func DecodeYAML(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyGraph)
		}

		return nil, fmt.Errorf("%w: yaml: %w", ErrInvalidDocument, err)
	}

	return &doc, nil
}

// LoadYAML decodes a YAML document from r and builds its graph.
func LoadYAML(r io.Reader) (*core.WeightedGraph[string], error) {
	doc, err := DecodeYAML(r)
	if err != nil {
		return nil, err
	}

	return doc.Build()
}
