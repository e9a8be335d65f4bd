// Package mincut drives the Klimmek–Wagner hypergraph minimum-cut
// algorithm ("A simple hypergraph min cut algorithm", Klimmek & Wagner,
// 1996) over a *hypergraph.HyperGraph.
//
// Run repeatedly performs one phase of maximum-adjacency ordering over
// the current graph (package heap supplies the increase-key max-heap
// that makes a phase cheap), extracts the cut that isolates the last
// vertex added by that ordering, keeps it if it strictly improves the
// best cut seen so far, and contracts the last two vertices the
// ordering added. The Klimmek–Wagner theorem guarantees the cut of each
// phase is a minimum cut between those two vertices in the current
// graph, so contracting them preserves the graph's global minimum cut;
// iterating until one vertex remains enumerates a family of cuts that
// includes a global minimum.
//
// # Ownership
//
// Run takes exclusive, destructive ownership of g for the duration of
// the call: every phase merges two vertices, so the graph handed in is
// not the graph left over when Run returns. A caller who still needs
// the original should call g.Clone() first (hypergraph.HyperGraph's
// mutators are otherwise safe to call concurrently with each other, but
// never concurrently with a running Run — see package hypergraph).
//
// # Scheduling
//
// Single-threaded and synchronous: no goroutines, no cancellation
// protocol, no suspension points. The whole computation is CPU-bound and
// the one place this module spends memory beyond the graph itself is
// the heap and VID→handle map scoped to a single phase, discarded when
// the phase ends.
package mincut
