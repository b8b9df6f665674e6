package xoz

// NodeID is a node's identity: the BP position of its opening
// parenthesis (§3). It is stable for the lifetime of the Document it was
// obtained from and meaningless against any other Document.
type NodeID int32

// NoNode is the zero-value sentinel for "no such node", used internally;
// public APIs return (NodeID, bool) rather than relying on callers to
// check against this constant.
const NoNode NodeID = -1

func (n NodeID) valid() bool { return n >= 0 }
