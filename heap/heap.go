package heap

import "math"

// Push inserts (key, payload) and returns a Handle that stays valid
// until the element is popped or removed.
// Complexity: amortized O(1).
func (h *MaxHeap) Push(key int64, payload uint64) Handle {
	x := h.alloc(key, payload)
	h.insertRoot(x)
	h.n++

	return x
}

// Top returns the maximum (key, payload) pair without removing it.
// ok is false iff the heap is empty.
// Complexity: O(1).
func (h *MaxHeap) Top() (key int64, payload uint64, ok bool) {
	if h.max == Nil {
		return 0, 0, false
	}

	m := &h.nodes[h.max]

	return m.key, m.payload, true
}

// PopMax removes and returns the maximum (key, payload) pair.
// ok is false iff the heap was empty.
// Complexity: amortized O(log n).
func (h *MaxHeap) PopMax() (key int64, payload uint64, ok bool) {
	z := h.extractMax()
	if z == Nil {
		return 0, 0, false
	}

	zn := &h.nodes[z]

	return zn.key, zn.payload, true
}

// Key returns handle's current key. ok is false if handle has already
// been popped or removed. Used by callers (package mincut's addVertexToA)
// that need to read a node's current score before deciding the amount
// to raise it by — the addressable equivalent of dereferencing the
// node pointer the algorithm's C++ source keeps around for the same
// purpose.
// Complexity: O(1).
func (h *MaxHeap) Key(handle Handle) (key int64, ok bool) {
	if int(handle) < 0 || int(handle) >= len(h.nodes) || !h.nodes[handle].alive {
		return 0, false
	}

	return h.nodes[handle].key, true
}

// IncreaseKey raises handle's key to newKey. Per the algorithm's source
// policy, a newKey smaller than the current key is a silent no-op
// rather than an error — the driver in package mincut only ever moves
// keys upward, so this never masks a real bug in that caller.
// Complexity: amortized O(1).
func (h *MaxHeap) IncreaseKey(handle Handle, newKey int64) {
	x := &h.nodes[handle]
	if newKey < x.key {
		return
	}
	x.key = newKey

	y := x.parent
	if y != Nil && h.nodes[handle].key > h.nodes[y].key {
		h.cut(handle, y)
		h.cascadingCut(y)
	}
	if h.nodes[handle].key > h.nodes[h.max].key {
		h.max = handle
	}
}

// Remove deletes handle from the heap regardless of its current key.
// Implemented as IncreaseKey to +infinity followed by PopMax, exactly
// as the algorithm's source does.
// Complexity: amortized O(log n).
func (h *MaxHeap) Remove(handle Handle) {
	h.IncreaseKey(handle, math.MaxInt64)
	h.extractMax()
}

// alloc appends a fresh, isolated node to the arena and returns its
// Handle. The node is not yet linked into any list.
func (h *MaxHeap) alloc(key int64, payload uint64) Handle {
	h.nodes = append(h.nodes, fibNode{
		key:     key,
		payload: payload,
		alive:   true,
		parent:  Nil,
		left:    Nil,
		right:   Nil,
		child:   Nil,
		degree:  0,
	})

	return Handle(len(h.nodes) - 1)
}

// insertRoot splices x into the root list and updates max if x is now
// the largest root.
func (h *MaxHeap) insertRoot(x Handle) {
	xn := &h.nodes[x]
	xn.degree = 0
	xn.parent = Nil
	xn.child = Nil
	xn.mark = false

	if h.max == Nil {
		xn.left, xn.right = x, x
		h.max = x

		return
	}

	m := &h.nodes[h.max]
	left := m.left
	h.nodes[left].right = x
	xn.left = left
	m.left = x
	xn.right = h.max

	if xn.key > m.key {
		h.max = x
	}
}

// extractMax removes the maximum node from the root list, promotes its
// children to the root list, consolidates same-degree roots, and
// returns the removed Handle (Nil if the heap was empty).
func (h *MaxHeap) extractMax() Handle {
	z := h.max
	if z == Nil {
		return Nil
	}

	zn := &h.nodes[z]
	if zn.child != Nil {
		// Walk the child list once to collect it, then splice each
		// child into the root list; walking and splicing in the same
		// pass would corrupt the list being walked.
		first := zn.child
		children := make([]Handle, 0, zn.degree)
		c := first
		for {
			children = append(children, c)
			c = h.nodes[c].right
			if c == first {
				break
			}
		}
		for _, c := range children {
			cn := &h.nodes[c]
			cn.parent = Nil
			h.insertRootLinked(c)
		}
	}

	// Unlink z from the root list.
	h.nodes[zn.left].right = zn.right
	h.nodes[zn.right].left = zn.left

	if z == zn.right {
		h.max = Nil
	} else {
		h.max = zn.right
		h.consolidate()
	}
	h.n--
	zn.alive = false

	return z
}

// consolidate merges root-list trees of equal degree until every degree
// appears at most once, restoring the amortized bounds.
func (h *MaxHeap) consolidate() {
	maxDegree := degreeBound(h.n)
	table := make([]Handle, maxDegree+2)
	for i := range table {
		table[i] = Nil
	}

	roots := h.collectRootList()
	for _, w := range roots {
		x := w
		d := h.nodes[x].degree
		for table[d] != Nil {
			y := table[d]
			if h.nodes[y].key > h.nodes[x].key {
				x, y = y, x
			}
			h.link(y, x)
			table[d] = Nil
			d++
		}
		table[d] = x
	}

	h.max = Nil
	for _, x := range table {
		if x == Nil {
			continue
		}
		xn := &h.nodes[x]
		if h.max == Nil {
			xn.left, xn.right = x, x
			h.max = x

			continue
		}
		m := &h.nodes[h.max]
		left := m.left
		h.nodes[left].right = x
		xn.left = left
		m.left = x
		xn.right = h.max
		if xn.key > m.key {
			h.max = x
		}
	}
}

// collectRootList returns every Handle currently in the root list,
// starting from max, in right-ward traversal order.
func (h *MaxHeap) collectRootList() []Handle {
	if h.max == Nil {
		return nil
	}

	roots := make([]Handle, 0, h.n)
	w := h.max
	for {
		roots = append(roots, w)
		w = h.nodes[w].right
		if w == h.max {
			break
		}
	}

	return roots
}

// link makes y a child of x, used only when y and x have equal degree
// during consolidate.
func (h *MaxHeap) link(y, x Handle) {
	yn := &h.nodes[y]

	// Unlink y from its current list.
	h.nodes[yn.left].right = yn.right
	h.nodes[yn.right].left = yn.left

	xn := &h.nodes[x]
	if xn.child != Nil {
		c := xn.child
		left := h.nodes[c].left
		h.nodes[left].right = y
		yn.left = left
		h.nodes[c].left = y
		yn.right = c
	} else {
		xn.child = y
		yn.left, yn.right = y, y
	}
	yn.parent = x
	xn.degree++
	yn.mark = false
}

// cut detaches x from its parent y's child list and splices x into the
// root list, used when x's key rises above its parent's.
func (h *MaxHeap) cut(x, y Handle) {
	xn := &h.nodes[x]
	yn := &h.nodes[y]

	if xn.right == x {
		yn.child = Nil
	} else {
		h.nodes[xn.right].left = xn.left
		h.nodes[xn.left].right = xn.right
		if yn.child == x {
			yn.child = xn.right
		}
	}
	yn.degree--

	h.insertRootLinked(x)
	xn.parent = Nil
	xn.mark = false
}

// insertRootLinked splices an already-initialized node x into the root
// list without resetting its child/degree, used by cut (x keeps its own
// subtree) unlike insertRoot (used for fresh or child-promoted nodes).
func (h *MaxHeap) insertRootLinked(x Handle) {
	xn := &h.nodes[x]
	m := &h.nodes[h.max]
	left := m.left
	h.nodes[left].right = x
	xn.left = left
	m.left = x
	xn.right = h.max
	if xn.key > m.key {
		h.max = x
	}
}

// cascadingCut propagates cut()s up the tree: a once-cut child marks its
// parent; a twice-cut parent is itself cut and the process continues.
func (h *MaxHeap) cascadingCut(y Handle) {
	yn := &h.nodes[y]
	z := yn.parent
	if z == Nil {
		return
	}
	if !yn.mark {
		yn.mark = true

		return
	}
	h.cut(y, z)
	h.cascadingCut(z)
}

// degreeBound returns the maximum root degree a valid Fibonacci heap of
// n elements can exhibit, ⌊log_φ(n)⌋, used to size the consolidate
// table. n<=1 returns 0.
func degreeBound(n int) int {
	if n <= 1 {
		return 0
	}

	const phi = 1.6180339887498949
	return int(math.Floor(math.Log(float64(n)) / math.Log(phi)))
}
