// Package graphfile loads string-labelled weighted digraphs from YAML
// documents and CSV edge lists.
//
// YAML layout:
//
//	name: city
//	nodes: [A, B, C]          # optional; fixes node order
//	edges:
//	  - {from: A, to: B, weight: 5}
//	  - {from: B, to: C, weight: 1, bidirectional: true}
//
// Nodes referenced only by edges are appended in order of first appearance.
// A bidirectional edge becomes two directed edges with the same weight.
//
// CSV layout: one edge per record, "from,to,weight". A first record whose
// weight column is not a number is treated as a header and skipped. Lines
// starting with '#' are comments.
//
// Every error returned for malformed input matches ErrInvalidDocument;
// weight violations additionally match the core sentinels
// (core.ErrNegativeWeight, core.ErrInvalidWeight) and therefore
// core.ErrInvalidArgument.
package graphfile
