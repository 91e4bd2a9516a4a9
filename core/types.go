package core

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument is matched (via errors.Is) by every error this module
// returns for a contract violation: nil references, negative weights,
// nodes that do not belong to a graph.
var ErrInvalidArgument = errors.New("invalid argument")

// argError is an argument error whose text is exactly msg and which unwraps
// to ErrInvalidArgument.
type argError struct {
	msg string
}

func (e *argError) Error() string { return e.msg }

func (e *argError) Unwrap() error { return ErrInvalidArgument }

// NewArgumentError returns an error with the given text that matches
// ErrInvalidArgument. Packages built on core use it for their own sentinels.
func NewArgumentError(msg string) error {
	return &argError{msg: msg}
}

// Sentinel errors for node, edge and graph construction.
var (
	// ErrNilEndpoint indicates an edge was built with a nil source or destination.
	ErrNilEndpoint = NewArgumentError("Source and destination nodes cannot be null")

	// ErrNegativeWeight indicates an edge was built with a weight below zero.
	ErrNegativeWeight = NewArgumentError("Weight can't be a negative number")

	// ErrInvalidWeight indicates an edge weight that is not a number.
	ErrInvalidWeight = NewArgumentError("Weight must be a number")

	// ErrNilNode indicates a nil node where a node is required.
	ErrNilNode = NewArgumentError("core: node is nil")

	// ErrNilEdge indicates a nil entry in an edge list.
	ErrNilEdge = NewArgumentError("core: edge is nil")

	// ErrDuplicateNode indicates that the same node appears twice in a node list.
	ErrDuplicateNode = NewArgumentError("core: node listed more than once")

	// ErrUnknownNode indicates a node that is not part of the graph.
	ErrUnknownNode = NewArgumentError("core: node is not part of the graph")
)

// Node is a labeled vertex. Label may be any comparable value; the graph
// identifies nodes by pointer, not by label.
type Node[T comparable] struct {
	label T
}

// NewNode returns a node carrying label.
func NewNode[T comparable](label T) *Node[T] {
	return &Node[T]{label: label}
}

// Label returns the value the node was created with.
func (n *Node[T]) Label() T { return n.label }

// String implements fmt.Stringer.
func (n *Node[T]) String() string { return fmt.Sprint(n.label) }

// Edge is an immutable directed connection Source → Destination.
type Edge[T comparable] struct {
	source      *Node[T]
	destination *Node[T]
	weight      float64
}

// NewEdge validates its arguments and returns the edge source → destination.
//
// Errors (all match ErrInvalidArgument):
//   - ErrNilEndpoint    if source or destination is nil.
//   - ErrInvalidWeight  if weight is NaN.
//   - ErrNegativeWeight if weight < 0.
//
// Self-loops (source == destination) and +Inf weights are accepted.
func NewEdge[T comparable](source, destination *Node[T], weight float64) (*Edge[T], error) {
	if source == nil || destination == nil {
		return nil, ErrNilEndpoint
	}
	if math.IsNaN(weight) {
		return nil, ErrInvalidWeight
	}
	if weight < 0 {
		return nil, ErrNegativeWeight
	}

	return &Edge[T]{source: source, destination: destination, weight: weight}, nil
}

// Source returns the tail of the edge.
func (e *Edge[T]) Source() *Node[T] { return e.source }

// Destination returns the head of the edge.
func (e *Edge[T]) Destination() *Node[T] { return e.destination }

// Weight returns the non-negative cost of traversing the edge.
func (e *Edge[T]) Weight() float64 { return e.weight }

// IsLoop reports whether the edge starts and ends at the same node.
func (e *Edge[T]) IsLoop() bool { return e.source == e.destination }

// String renders the edge as "src→dst(w)".
func (e *Edge[T]) String() string {
	return fmt.Sprintf("%v→%v(%g)", e.source, e.destination, e.weight)
}
