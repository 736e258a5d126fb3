// Package vcgraph defines the compact, int-indexed adjacency graph that the
// vcover solver operates on, distinct from a string-keyed domain graph: a
// solver walks vertex indices 0..n-1, not external vertex identities.
//
// Errors:
//
//	ErrNegativeVertexCount - NewGraph called with n < 0.
//	ErrVertexOutOfRange    - AddEdge referenced a vertex outside [0,n).
//	ErrSelfLoop            - AddEdge was given u == v.
package vcgraph

import "errors"

// Sentinel errors for vcgraph operations.
var (
	// ErrNegativeVertexCount indicates NewGraph was called with n < 0.
	ErrNegativeVertexCount = errors.New("vcgraph: vertex count must be non-negative")

	// ErrVertexOutOfRange indicates an operation referenced an index outside [0,n).
	ErrVertexOutOfRange = errors.New("vcgraph: vertex index out of range")

	// ErrSelfLoop indicates an attempt to add an edge from a vertex to itself.
	ErrSelfLoop = errors.New("vcgraph: self-loops are not allowed")
)
