package graphfile

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/lvpath/core"
)

// Sentinel errors for graph documents.
var (
	// ErrInvalidDocument indicates input that cannot be turned into a graph.
	ErrInvalidDocument = errors.New("graphfile: invalid document")

	// ErrEmptyGraph indicates a document without any node.
	ErrEmptyGraph = errors.New("graphfile: document has no nodes")

	// ErrUnsupportedFormat indicates a file extension LoadFile does not know.
	ErrUnsupportedFormat = errors.New("graphfile: unsupported file format")
)

// Document is the decoded, not yet validated, form of a graph file.
type Document struct {
	Name  string     `yaml:"name"`
	Nodes []string   `yaml:"nodes" validate:"omitempty,unique,dive,required"`
	Edges []EdgeSpec `yaml:"edges" validate:"dive"`
}

// EdgeSpec describes one edge of a Document.
type EdgeSpec struct {
	From          string   `yaml:"from" validate:"required"`
	To            string   `yaml:"to" validate:"required"`
	Weight        *float64 `yaml:"weight" validate:"required"`
	Bidirectional bool     `yaml:"bidirectional"`
}

// validate is a singleton validator reporting fields by their yaml names.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// Validate checks the structural rules of the document: unique non-empty
// node labels, and a source, destination and weight on every edge. Weight
// signs are left to core.NewEdge.
func (d *Document) Validate() error {
	if d == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	}
	if err := validate.Struct(d); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// formatValidationError reports the first failed rule as
// "<field path>: <reason>", wrapped in ErrInvalidDocument.
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	e := validationErrs[0]
	field := e.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:] // drop the struct type name
	}

	switch e.Tag() {
	case "required":
		return fmt.Errorf("%w: %s: field is required", ErrInvalidDocument, field)
	case "unique":
		return fmt.Errorf("%w: %s: labels must be unique", ErrInvalidDocument, field)
	default:
		return fmt.Errorf("%w: %s: validation failed (%s)", ErrInvalidDocument, field, e.Tag())
	}
}

// Build validates d and assembles the graph. Node order is the declared
// node list followed by labels first seen in edges; edge order follows the
// document, with the reverse of a bidirectional edge right after it.
func (d *Document) Build() (*core.WeightedGraph[string], error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	var (
		nodes []*core.Node[string]
		edges []*core.Edge[string]
		byID  = make(map[string]*core.Node[string], len(d.Nodes))
	)
	node := func(label string) *core.Node[string] {
		if n, ok := byID[label]; ok {
			return n
		}
		n := core.NewNode(label)
		byID[label] = n
		nodes = append(nodes, n)

		return n
	}
	for _, label := range d.Nodes {
		node(label)
	}

	for i, spec := range d.Edges {
		from, to := node(spec.From), node(spec.To)
		e, err := core.NewEdge(from, to, *spec.Weight)
		if err != nil {
			return nil, fmt.Errorf("%w: edges[%d]: %w", ErrInvalidDocument, i, err)
		}
		edges = append(edges, e)
		if spec.Bidirectional && from != to {
			back, err := core.NewEdge(to, from, *spec.Weight)
			if err != nil {
				return nil, fmt.Errorf("%w: edges[%d] reverse: %w", ErrInvalidDocument, i, err)
			}
			edges = append(edges, back)
		}
	}

	if len(nodes) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyGraph)
	}

	return core.NewWeightedGraph(nodes, edges)
}
