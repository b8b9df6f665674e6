// Package bptree implements Component D: the balanced-parentheses tree
// over the topology, exposing parent/first-child/last-child/next-sibling/
// previous-sibling/close/subtree-size/is-ancestor/node-index.
//
// See DESIGN.md for why this is flat precomputed int32 arrays (built in
// one linear pass while the Builder walks the event stream) rather than a
// bit-packed min-excess/pioneer structure: no rank/select succinct-tree
// library appears anywhere in the retrieval pack, and a from-scratch
// min-excess RMQ cannot be validated without running the Go toolchain.
// The public contract (§4.D) is unaffected either way.
package bptree

import "github.com/Paligo/xoz-sub000/internal/bitvec"

const noNode int32 = -1

// Builder walks the open/close event stream exactly once, in lockstep
// with the rest of the Builder (component F), maintaining a stack of open
// ancestors to fill in parent/sibling/close relationships as they become
// known.
//
// The six relationship arrays are indexed directly by BP bit position (a
// node's ID), not by open-call order: every Open and every Close appends
// one (mostly unused) slot to each array, so a position's slot always
// exists by the time anything references it. Indexing by a dense
// open-order counter instead would desync from BP position as soon as any
// node had a sibling that closed before it opened.
type Builder struct {
	bp *bitvec.DenseBitVectorBuilder

	parent      []int32
	closePos    []int32
	firstChild  []int32
	lastChild   []int32
	nextSibling []int32
	prevSibling []int32

	nodeCount int
	stack     []frame
}

type frame struct {
	nodePos    int32
	firstChild int32
	lastChild  int32
}

func NewBuilder() *Builder {
	return &Builder{bp: bitvec.NewDenseBitVectorBuilder()}
}

func (b *Builder) growSlot() {
	b.parent = append(b.parent, noNode)
	b.closePos = append(b.closePos, noNode)
	b.firstChild = append(b.firstChild, noNode)
	b.lastChild = append(b.lastChild, noNode)
	b.nextSibling = append(b.nextSibling, noNode)
	b.prevSibling = append(b.prevSibling, noNode)
}

// Open records an opening parenthesis, returning the new node's ID (its
// BP position, per §3's identity rule).
func (b *Builder) Open() int32 {
	pos := int32(b.bp.Len())
	b.bp.Append(true)
	b.growSlot()
	b.nodeCount++

	if len(b.stack) > 0 {
		top := &b.stack[len(b.stack)-1]
		b.parent[pos] = top.nodePos
		b.prevSibling[pos] = top.lastChild
		if top.lastChild != noNode {
			b.nextSibling[top.lastChild] = pos
		}
		if top.firstChild == noNode {
			top.firstChild = pos
		}
		top.lastChild = pos
	}

	b.stack = append(b.stack, frame{nodePos: pos, firstChild: noNode, lastChild: noNode})
	return pos
}

// Close records the matching closing parenthesis for the most recently
// opened, not-yet-closed node.
func (b *Builder) Close() {
	closePos := int32(b.bp.Len())
	b.bp.Append(false)
	b.growSlot()

	top := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]

	b.closePos[top.nodePos] = closePos
	b.firstChild[top.nodePos] = top.firstChild
	b.lastChild[top.nodePos] = top.lastChild
}

// Finish materializes the immutable Tree. The builder's open/close calls
// must be balanced (enforced by the surrounding Builder's frame stack,
// per §4.F; this package does not re-validate it).
func (b *Builder) Finish() *Tree {
	return &Tree{
		bp:          b.bp.Finish(),
		parent:      b.parent,
		closePos:    b.closePos,
		firstChild:  b.firstChild,
		lastChild:   b.lastChild,
		nextSibling: b.nextSibling,
		prevSibling: b.prevSibling,
		nodeCount:   b.nodeCount,
	}
}

// Tree is the immutable, finalized BP structure.
type Tree struct {
	bp *bitvec.DenseBitVector

	parent      []int32
	closePos    []int32
	firstChild  []int32
	lastChild   []int32
	nextSibling []int32
	prevSibling []int32

	nodeCount int
}

// NodeCount returns the number of nodes (opening parentheses) in the tree.
func (t *Tree) NodeCount() int { return t.nodeCount }

// BPLen returns the length of the underlying BP bitvector (2 * NodeCount).
func (t *Tree) BPLen() int { return t.bp.Len() }

// IsOpen reports whether BP position i is an opening parenthesis.
func (t *Tree) IsOpen(i int) bool { return t.bp.Get(i) }

// Root returns the BP root position, always 0 for a non-empty tree.
func (t *Tree) Root() int { return 0 }

// Parent returns the primitive (BP-level, container-unaware) parent of
// node n, or -1 if n is the root.
func (t *Tree) Parent(n int) int { return int(t.parent[n]) }

// FirstChild returns the primitive first child of n, or -1.
func (t *Tree) FirstChild(n int) int { return int(t.firstChild[n]) }

// LastChild returns the primitive last child of n, or -1.
func (t *Tree) LastChild(n int) int { return int(t.lastChild[n]) }

// NextSibling returns the primitive next sibling of n, or -1.
func (t *Tree) NextSibling(n int) int { return int(t.nextSibling[n]) }

// PreviousSibling returns the primitive previous sibling of n, or -1.
func (t *Tree) PreviousSibling(n int) int { return int(t.prevSibling[n]) }

// Close returns the BP position of n's matching close parenthesis.
func (t *Tree) Close(n int) int { return int(t.closePos[n]) }

// SubtreeSize returns the number of nodes in the subtree rooted at n,
// including n itself (§8 invariant 1: (close(n) - n + 1) / 2).
func (t *Tree) SubtreeSize(n int) int {
	return (t.Close(n) - n + 1) / 2
}

// IsAncestor reports whether a is a strict ancestor of d.
func (t *Tree) IsAncestor(a, d int) bool {
	if a == d {
		return false
	}
	return a < d && d <= t.Close(a)
}

// IsAncestorOrSelf reports whether a is a is an ancestor of, or equal to, d.
func (t *Tree) IsAncestorOrSelf(a, d int) bool {
	if a == d {
		return true
	}
	return t.IsAncestor(a, d)
}

// NodeIndex returns the 0-based preorder number of node n: the count of
// opening parentheses strictly before position n.
func (t *Tree) NodeIndex(n int) int {
	return t.bp.Rank1(n + 1) - 1
}

// HeapSize reports an approximate byte size.
func (t *Tree) HeapSize() int {
	return t.bp.HeapSize() + 6*len(t.parent)*4
}
