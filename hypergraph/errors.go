package hypergraph

import "errors"

// Sentinel errors for hypergraph operations. Callers branch on these
// with errors.Is; messages are prefixed "hypergraph: " for consistent
// grepping, following the same convention as core.ErrVertexNotFound and
// flow.ErrSourceNotFound.
var (
	// ErrInvalidEdge indicates AddEdge was called with fewer than two
	// vertices; a hyperedge touching 0 or 1 vertices cannot cross a cut.
	ErrInvalidEdge = errors.New("hypergraph: edge must span at least two vertices")

	// ErrInvalidWeight indicates AddEdge was called with a non-positive
	// weight. Edge weights must always be positive integers.
	ErrInvalidWeight = errors.New("hypergraph: edge weight must be positive")

	// ErrDuplicateEdge indicates AddEdge reused an EID already present
	// in the graph. EIDs are assigned once by the caller and never
	// reused.
	ErrDuplicateEdge = errors.New("hypergraph: edge id already present")

	// ErrUnknownVertex indicates Cut or Merge referenced a VID that is
	// not currently a vertex of the graph (never added, or already
	// absorbed by a prior Merge).
	ErrUnknownVertex = errors.New("hypergraph: unknown vertex id")

	// ErrUnknownEdge indicates an operation referenced an EID not
	// present in the graph.
	ErrUnknownEdge = errors.New("hypergraph: unknown edge id")

	// ErrEmptyPartition indicates Cut was called with a left set that
	// is empty or equal to the full vertex set — a cut must leave both
	// sides non-empty.
	ErrEmptyPartition = errors.New("hypergraph: cut requires both sides non-empty")

	// ErrSameVertex indicates Merge was called with a == b; a vertex
	// cannot be merged into itself.
	ErrSameVertex = errors.New("hypergraph: cannot merge a vertex into itself")
)
