package mincut

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/hypercut/heap"
	"github.com/katalvlaran/hypercut/hypergraph"
)

// Run computes the minimum-weight cut of g, consuming g destructively
// (see package doc). It is the package-level equivalent of a
// HyperGraph.Mincut() convenience method, kept out of hypergraph itself
// to avoid an import cycle (mincut depends on hypergraph, not the
// reverse).
//
// Errors:
//   - ErrEmptyGraph if g has fewer than two vertices.
//
// Complexity: O(V) phases, each O(V + E·D·log V) for the heap-driven
// ordering (D = max edge arity), so O(V·(V + E·D·log V)) overall.
func Run(g *hypergraph.HyperGraph, opts ...Option) (hypergraph.Cut, error) {
	o := resolveOptions(opts)

	if g.NumVertices() < 2 {
		return hypergraph.Cut{}, ErrEmptyGraph
	}

	best := hypergraph.InfiniteCut()
	for g.NumVertices() > 1 {
		var err error
		best, err = phase(g, best, o)
		if err != nil {
			return hypergraph.Cut{}, err
		}
	}

	o.Logger.Info("mincut finished",
		zap.Int64("value", best.Value),
		zap.Int("balance", best.CountBalance()),
	)

	return best, nil
}

// phase performs one round of maximum-adjacency ordering over g's
// current vertices, extracts the cut of the phase, folds it into best
// if it is an improvement, and contracts the last two vertices the
// ordering added.
func phase(g *hypergraph.HyperGraph, best hypergraph.Cut, o Options) (hypergraph.Cut, error) {
	ids := g.VertexIDs() // ascending, so ids[0] is the deterministic default seed

	h := heap.New()
	handles := make(map[hypergraph.VID]heap.Handle, len(ids))
	for _, v := range ids {
		handles[v] = h.Push(0, uint64(v))
	}

	marked := make(map[hypergraph.EID]struct{})

	// Re-deriving the seed as the current smallest VID every phase
	// (rather than tracking one fixed `a` across phases, which may be
	// absorbed by the very first merge) avoids the stale-`a` read a
	// literal transcription of the original algorithm would carry over.
	seed := ids[0]
	if o.StartVertex != nil {
		if _, ok := handles[*o.StartVertex]; ok {
			seed = *o.StartVertex
		}
	}

	if err := addVertexToA(g, seed, h, handles, marked); err != nil {
		return best, err
	}
	h.Remove(handles[seed])
	delete(handles, seed)

	addedBefore, addedLast := seed, seed
	for i := 0; i < len(ids)-1; i++ {
		_, payload, ok := h.PopMax()
		if !ok {
			break
		}
		mtc := hypergraph.VID(payload)
		delete(handles, mtc)

		if err := addVertexToA(g, mtc, h, handles, marked); err != nil {
			return best, err
		}

		addedBefore, addedLast = addedLast, mtc
	}

	cut, err := g.Cut(hypergraph.VIDSet(addedLast))
	if err != nil {
		return best, err
	}

	o.Logger.Debug("phase complete",
		zap.Int("vertices", len(ids)),
		zap.Uint64("added_last", uint64(addedLast)),
		zap.Uint64("added_before", uint64(addedBefore)),
		zap.Int64("cut_value", cut.Value),
	)

	if cut.Value <= best.Value {
		if um := cut.Unmerge(g); um.Less(best) {
			best = um
			o.Logger.Info("new best cut",
				zap.Int64("value", best.Value),
				zap.Int("balance", best.CountBalance()),
			)
		}
	}

	if err := g.Merge(addedBefore, addedLast); err != nil {
		return best, err
	}

	return best, nil
}

// addVertexToA folds v into the virtual "added" set A: every incident
// edge of v not yet marked this phase contributes its weight, exactly
// once, to the heap key of every other endpoint still outside A. The
// once-per-edge rule is what keeps hyperedges of arity > 2 from being
// double-counted.
func addVertexToA(
	g *hypergraph.HyperGraph,
	v hypergraph.VID,
	h *heap.MaxHeap,
	handles map[hypergraph.VID]heap.Handle,
	marked map[hypergraph.EID]struct{},
) error {
	edges, err := g.IncidentEdges(v)
	if err != nil {
		return err
	}

	for _, e := range edges {
		if _, seen := marked[e]; seen {
			continue
		}
		marked[e] = struct{}{}

		vs, weight, err := g.EdgeEndpoints(e)
		if err != nil {
			return err
		}

		for _, u := range vs {
			if u == v {
				continue
			}
			handle, stillOutsideA := handles[u]
			if !stillOutsideA {
				continue
			}
			key, ok := h.Key(handle)
			if !ok {
				continue
			}
			h.IncreaseKey(handle, key+weight)
		}
	}

	return nil
}
