package heap

// Handle addresses a single element stored in a MaxHeap. It stays valid
// from Push until the element is popped (via PopMax) or removed (via
// Remove); using a stale Handle afterwards is a programmer error. Only
// Key checks for it (reporting ok == false); IncreaseKey and Remove do
// not, matching the rest of this module's "container, not a safety net"
// philosophy.
type Handle int32

// Nil is the null Handle: no element, no parent, no child, no sibling.
const Nil Handle = -1

// fibNode is one slot of the heap's arena. left/right form the circular
// doubly-linked list the node currently belongs to (the root list, or
// some other node's child list); parent and child link the tree itself.
type fibNode struct {
	key     int64
	payload uint64
	mark    bool
	alive   bool
	degree  int
	parent  Handle
	left    Handle
	right   Handle
	child   Handle
}

// MaxHeap is an addressable Fibonacci max-heap over (int64 key, uint64
// payload) pairs. The zero value is not usable; construct with New.
type MaxHeap struct {
	nodes []fibNode
	max   Handle
	n     int
}

// New returns an empty MaxHeap ready for use.
func New() *MaxHeap {
	return &MaxHeap{max: Nil}
}

// Len reports the number of elements currently stored.
// Complexity: O(1).
func (h *MaxHeap) Len() int { return h.n }

// Empty reports whether the heap holds no elements.
// Complexity: O(1).
func (h *MaxHeap) Empty() bool { return h.n == 0 }
