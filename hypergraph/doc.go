// Package hypergraph defines the mutable hypergraph HyperGraph stores and
// mutates, and the Cut value it can be asked to evaluate.
//
// A hyperedge differs from an ordinary graph edge only in how many
// vertices it may touch: two or more, not exactly two. Everything else —
// incidence bookkeeping, weighted cuts, vertex contraction — follows the
// same shape the core package uses for ordinary graphs (bidirectional
// Vertex↔Edge adjacency guarded by a mutex, a thin constructor,
// deterministic sorted iteration for reproducible output), generalized
// from pairs of vertices to arbitrary sets of two or more.
//
// # Identifiers
//
// VID and EID are caller-assigned, never reused within one HyperGraph's
// lifetime. AddEdge sets an EID's initial membership, which Merge later
// rewires (or deletes the edge once it collapses); Merge retires a
// VID by folding it into the survivor's MergedWith history rather than
// deleting it outright, so a Cut computed against a contracted graph can
// always be expanded back (Cut.Unmerge) into vertices of the original.
//
// # Concurrency
//
// Every exported HyperGraph method takes the same sync.RWMutex the
// teacher's core.Graph uses, for the same reason: a caller is free to
// build the hypergraph from multiple goroutines before handing it to
// package mincut. Once mincut.Run takes ownership of a HyperGraph it
// mutates it directly and exclusively for the duration of the run — see
// package mincut's documentation for that boundary.
package hypergraph
