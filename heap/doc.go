// Package heap implements an addressable max-priority queue with an
// amortized O(1) increase-key operation: a Fibonacci heap with the
// comparator flipped so the root chain tracks the maximum key instead
// of the minimum.
//
// Unlike container/heap, every inserted element is handed back a stable
// Handle that remains valid for the lifetime of the element (until it is
// popped or removed), so a caller holding a map of payload → Handle can
// raise an element's key without searching for it first. That is the
// property the hypergraph min-cut driver in package mincut needs: each
// phase of the Klimmek–Wagner algorithm repeatedly bumps the tightness
// score of vertices still outside the "added" set, and a binary heap can
// only do that in O(log n) per bump.
//
// # Complexity
//
//   - Push, Top, IncreaseKey: amortized O(1).
//   - PopMax, Remove:         amortized O(log n).
//
// # Representation
//
// Nodes live in a flat arena (a []fibNode) and reference each other by
// integer Handle rather than pointer, so the root list and every child
// list are circular doubly-linked lists over slice indices. This avoids
// the raw-pointer aliasing the algorithm's original C++ source relies on
// while keeping the same amortized bounds. A MaxHeap is meant to be
// built fresh for a single use (one phase of the driver) and discarded;
// popped or removed slots are tombstoned, not reclaimed.
//
// # Concurrency
//
// A MaxHeap carries no internal locking. It is built, used, and
// discarded by a single goroutine within one phase of the driver; it has
// no value as a shared, concurrently-mutated structure.
package heap
