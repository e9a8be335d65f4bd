package hypergraph

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// NumVertices reports how many vertices currently exist.
// Complexity: O(1).
func (g *HyperGraph) NumVertices() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// NumEdges reports how many hyperedges currently exist.
// Complexity: O(1).
func (g *HyperGraph) NumEdges() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// HasVertex reports whether v is currently a vertex of the graph.
// Complexity: O(1).
func (g *HyperGraph) HasVertex(v VID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[v]

	return ok
}

// VertexIDs returns every current VID in ascending order. Sorted output
// keeps the graph's iteration order reproducible across runs with
// identical input, the same determinism contract core.Graph.Vertices()
// makes for string IDs.
// Complexity: O(V log V).
func (g *HyperGraph) VertexIDs() []VID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := maps.Keys(g.vertices)
	slices.Sort(ids)

	return ids
}

// EdgeIDs returns every current EID in ascending order.
// Complexity: O(E log E).
func (g *HyperGraph) EdgeIDs() []EID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := maps.Keys(g.edges)
	slices.Sort(ids)

	return ids
}

// AddEdge registers hyperedge e spanning vs with weight w, creating any
// vertex in vs that does not yet exist.
//
// Errors:
//   - ErrInvalidEdge if len(vs) < 2.
//   - ErrInvalidWeight if w <= 0.
//   - ErrDuplicateEdge if e is already present.
//
// Complexity: O(|vs|).
func (g *HyperGraph) AddEdge(e EID, vs map[VID]struct{}, w int64) error {
	if len(vs) < 2 {
		return ErrInvalidEdge
	}
	if w <= 0 {
		return ErrInvalidWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.edges[e]; exists {
		return ErrDuplicateEdge
	}

	vertices := make(map[VID]struct{}, len(vs))
	for v := range vs {
		vertices[v] = struct{}{}
		vtx, ok := g.vertices[v]
		if !ok {
			vtx = newVertex()
			g.vertices[v] = vtx
		}
		vtx.Edges[e] = struct{}{}
	}
	g.edges[e] = &Edge{Vertices: vertices, Weight: w}

	return nil
}

// IncidentEdges returns, in ascending order, every EID currently
// incident to v. Used by package mincut to drive the maximum-adjacency
// ordering without reaching into HyperGraph's private fields.
//
// Errors:
//   - ErrUnknownVertex if v is not currently present.
//
// Complexity: O(deg(v) log deg(v)).
func (g *HyperGraph) IncidentEdges(v VID) ([]EID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	V, ok := g.vertices[v]
	if !ok {
		return nil, ErrUnknownVertex
	}

	ids := maps.Keys(V.Edges)
	slices.Sort(ids)

	return ids, nil
}

// EdgeEndpoints returns the current, sorted vertex set and weight of
// edge e.
//
// Errors:
//   - ErrUnknownEdge if e is not currently present.
//
// Complexity: O(D log D) where D is the edge's arity.
func (g *HyperGraph) EdgeEndpoints(e EID) ([]VID, int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	E, ok := g.edges[e]
	if !ok {
		return nil, 0, ErrUnknownEdge
	}

	vs := maps.Keys(E.Vertices)
	slices.Sort(vs)

	return vs, E.Weight, nil
}

// GetEdges returns a read-only snapshot mapping each EID to its current
// vertex set, each rendered as a sorted slice for deterministic output.
// Complexity: O(E log D) where D is the max edge arity.
func (g *HyperGraph) GetEdges() map[EID][]VID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[EID][]VID, len(g.edges))
	for e, E := range g.edges {
		vs := maps.Keys(E.Vertices)
		slices.Sort(vs)
		out[e] = vs
	}

	return out
}

// Cut computes the bipartition (left, all_vertices \ left) and the
// total weight of hyperedges crossing it.
//
// Errors:
//   - ErrUnknownVertex if left references a VID not currently present.
//   - ErrEmptyPartition if left is empty or equal to the full vertex
//     set (both sides of a cut must be non-empty).
//
// Complexity: O(V + E·D) where D is the max edge arity.
func (g *HyperGraph) Cut(left map[VID]struct{}) (Cut, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for v := range left {
		if _, ok := g.vertices[v]; !ok {
			return Cut{}, ErrUnknownVertex
		}
	}

	right := make(map[VID]struct{}, len(g.vertices)-len(left))
	for v := range g.vertices {
		if _, inLeft := left[v]; !inLeft {
			right[v] = struct{}{}
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return Cut{}, ErrEmptyPartition
	}

	var value int64
	for _, E := range g.edges {
		if intersects(E.Vertices, left) && intersects(E.Vertices, right) {
			value += E.Weight
		}
	}

	leftCopy := make(map[VID]struct{}, len(left))
	for v := range left {
		leftCopy[v] = struct{}{}
	}

	return Cut{Value: value, Left: leftCopy, Right: right}, nil
}

// Merge absorbs b into a: a survives, b is retired into a's MergedWith
// history, and every hyperedge incident to b is rewired to a. A
// hyperedge that would collapse to a single vertex (its other endpoints
// were exactly {a, b}) is deleted instead of kept degenerate — every
// edge must touch at least two vertices. Parallel hyperedges produced by
// the contraction are kept distinct; each still contributes its own
// weight to any later Cut.
//
// Errors:
//   - ErrSameVertex if a == b.
//   - ErrUnknownVertex if either a or b is not currently present.
//
// Complexity: O(deg(b)) plus O(|merged_with|) to append history.
func (g *HyperGraph) Merge(a, b VID) error {
	if a == b {
		return ErrSameVertex
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	A, ok := g.vertices[a]
	if !ok {
		return ErrUnknownVertex
	}
	B, ok := g.vertices[b]
	if !ok {
		return ErrUnknownVertex
	}

	A.MergedWith = append(A.MergedWith, b)
	A.MergedWith = append(A.MergedWith, B.MergedWith...)

	for e := range B.Edges {
		E := g.edges[e]
		delete(E.Vertices, b)
		E.Vertices[a] = struct{}{}
		if len(E.Vertices) <= 1 {
			delete(g.edges, e)
			delete(A.Edges, e)
		} else {
			A.Edges[e] = struct{}{}
		}
	}

	delete(g.vertices, b)

	return nil
}

// Clone returns a deep copy of the graph: every vertex and edge, fully
// independent of the receiver. mincut.Run consumes a HyperGraph
// destructively; callers who need to reuse their graph must Clone it
// first, mirroring core.Graph.Clone.
// Complexity: O(V + E·D).
func (g *HyperGraph) Clone() *HyperGraph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := New()
	for v, V := range g.vertices {
		nv := newVertex()
		for e := range V.Edges {
			nv.Edges[e] = struct{}{}
		}
		nv.MergedWith = append([]VID(nil), V.MergedWith...)
		clone.vertices[v] = nv
	}
	for e, E := range g.edges {
		vs := make(map[VID]struct{}, len(E.Vertices))
		for v := range E.Vertices {
			vs[v] = struct{}{}
		}
		clone.edges[e] = &Edge{Vertices: vs, Weight: E.Weight}
	}

	return clone
}

// intersects reports whether a and b share at least one key, iterating
// whichever set is smaller.
func intersects(a, b map[VID]struct{}) bool {
	if len(a) > len(b) {
		a, b = b, a
	}
	for v := range a {
		if _, ok := b[v]; ok {
			return true
		}
	}

	return false
}
