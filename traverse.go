package xoz

// EventState discriminates the three visitation states Traverse reports
// for a node: a node with ordinary children is visited twice (its open and
// its matching close), any other node once (Empty).
type EventState uint8

const (
	// Open is reported when entering a node that has children.
	Open EventState = iota
	// Close is reported when leaving a node that has children.
	Close
	// Empty is reported, once, for a node with no ordinary children
	// (attributes and namespace declarations do not count).
	Empty
)

func (s EventState) String() string {
	switch s {
	case Open:
		return "open"
	case Close:
		return "close"
	case Empty:
		return "empty"
	default:
		return "unknown"
	}
}

// TraverseEvent is one step of a document-order walk (§4.G "traverse").
type TraverseEvent struct {
	Node  NodeID
	State EventState
}

// Traverse walks n and its ordinary descendants (Attributes/Namespaces
// containers and their children are not visited, matching every other
// axis in this package) and returns the resulting Open/Close/Empty event
// sequence in document order. Grounded on the same recursive
// visit-then-descend shape moznion-helium's SAX-style walker uses, minus
// the callback indirection: the whole module is already navigable in
// memory, so a caller can just range over the returned slice.
func (d *Document) Traverse(n NodeID) []TraverseEvent {
	var out []TraverseEvent
	d.traverse(n, &out)
	return out
}

func (d *Document) traverse(n NodeID, out *[]TraverseEvent) {
	first, hasChildren := d.FirstChild(n)
	if !hasChildren {
		*out = append(*out, TraverseEvent{Node: n, State: Empty})
		return
	}
	*out = append(*out, TraverseEvent{Node: n, State: Open})
	for c, ok := first, true; ok; c, ok = d.NextSibling(c) {
		d.traverse(c, out)
	}
	*out = append(*out, TraverseEvent{Node: n, State: Close})
}
