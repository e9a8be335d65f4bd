// Package hypercut computes the minimum-weight cut of a weighted
// hypergraph using the Klimmek–Wagner algorithm.
//
// 🚀 What is hypercut?
//
//	A small, thread-safe, zero-cgo library that brings together:
//		• Heap primitive: an addressable Fibonacci max-heap with O(1)
//		  amortized increase-key (package heap)
//		• Graph primitive: a mutable hyperedge graph with add/cut/merge
//		  (package hypergraph)
//		• The algorithm: maximum-adjacency phase ordering driving
//		  repeated contraction down to the global minimum cut
//		  (package mincut)
//
// ✨ Why choose hypercut?
//
//   - Beginner-friendly – three packages, each with one job
//   - Rock-solid guarantees – R/W locks on the mutable graph, deterministic
//     iteration order, sentinel errors checked with errors.Is
//   - Pure Go – no cgo; the one non-stdlib dependency beyond logging and
//     ordering helpers is the test suite's testify
//
// Under the hood, everything is organized under three subpackages:
//
//	heap/       — addressable Fibonacci max-heap
//	hypergraph/ — HyperGraph, Cut: the mutable graph and its bipartitions
//	mincut/     — Run: the Klimmek–Wagner driver
//
// Quick ASCII example — a bridge joining two clusters, minimum cut
// severs only the bridge:
//
//	  1═══2───3═══4
//	     (light link between 2 and 3 is the bridge; ═══ marks stronger
//	      intra-cluster links)
//
//	go get github.com/katalvlaran/hypercut
package hypercut
