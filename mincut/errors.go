package mincut

import "errors"

// ErrEmptyGraph indicates Run was called on a graph with fewer than two
// vertices — there is no non-trivial bipartition to compute.
var ErrEmptyGraph = errors.New("mincut: graph must have at least two vertices")
