// Package xoz is an immutable, succinct in-memory representation of XML
// documents supporting the full XPath navigation model — thirteen axes,
// typed descendant/following jumps, string-value extraction, attribute
// and namespace lookup — over data structures that stay compact because
// the topology, the per-node labels, and the text payloads are each
// stored in their own flat, rank/select-capable structure rather than as
// a graph of heap-allocated node objects.
//
// A Document is built once, from a finite event stream (see the builder
// package and xmladapter for the concrete XML-to-event lowering), and is
// immutable and freely shareable across goroutines from that point on.
package xoz

import (
	"github.com/Paligo/xoz-sub000/internal/bitvec"
	"github.com/Paligo/xoz-sub000/internal/bptree"
	"github.com/Paligo/xoz-sub000/internal/labels"
	"github.com/Paligo/xoz-sub000/internal/labelseq"
	"github.com/Paligo/xoz-sub000/internal/textarena"
)

// Document is the immutable, succinct index produced by a single build
// call. It collaborates five structures (§2): the label registry, the
// text arena, the label sequence, the BP tree, and the text-anchor
// bitvector.
type Document struct {
	labels     *labels.Registry
	text       *textarena.Arena
	seq        *labelseq.Sequence
	tree       *bptree.Tree
	textAnchor *bitvec.DenseBitVector
}

func newDocument(
	reg *labels.Registry,
	text *textarena.Arena,
	seq *labelseq.Sequence,
	tree *bptree.Tree,
	textAnchor *bitvec.DenseBitVector,
) *Document {
	return &Document{labels: reg, text: text, seq: seq, tree: tree, textAnchor: textAnchor}
}

// NewDocument assembles a Document from its five already-finalized
// collaborating structures. It exists for the builder package (and any
// other future event-stream producer such as xmladapter): a Document's
// fields are otherwise unexported, since ordinary callers only ever
// obtain one from a completed build.
func NewDocument(
	reg *labels.Registry,
	text *textarena.Arena,
	seq *labelseq.Sequence,
	tree *bptree.Tree,
	textAnchor *bitvec.DenseBitVector,
) *Document {
	return newDocument(reg, text, seq, tree, textAnchor)
}

// Root returns the BP root position: the sole Document node (§4.G).
func (d *Document) Root() NodeID { return NodeID(d.tree.Root()) }

// NodeCount returns the number of nodes in the document, including
// Attributes/Namespaces containers and attribute/namespace nodes.
func (d *Document) NodeCount() int { return d.tree.NodeCount() }

func (d *Document) labelAt(n NodeID) labels.LabelID { return d.seq.Get(int(n)) }

// NodeType returns the fully-specified kind of node n.
func (d *Document) NodeType(n NodeID) NodeType {
	id := d.labelAt(n)
	lbl, ok := d.labels.Resolve(id)
	if !ok {
		panic("xoz: node has unregistered label")
	}
	return nodeTypeFromLabel(lbl)
}

// Kind is a convenience accessor equivalent to NodeType(n).Kind.
func (d *Document) Kind(n NodeID) Kind { return d.NodeType(n).Kind }

func (d *Document) isKind(n NodeID, k Kind) bool { return d.Kind(n) == k }

// IsDocument, IsElement, ... are the fast-path predicates the reserved
// label IDs exist to support (§4.A): they never touch the label hash map.
func (d *Document) IsDocument(n NodeID) bool { return labels.IsDocumentOpen(d.labelAt(n)) }
func (d *Document) IsText(n NodeID) bool     { return labels.IsTextOpen(d.labelAt(n)) }
func (d *Document) IsElement(n NodeID) bool  { return d.isKind(n, KindElement) }
func (d *Document) IsAttribute(n NodeID) bool {
	return d.isKind(n, KindAttribute)
}
func (d *Document) IsComment(n NodeID) bool { return d.isKind(n, KindComment) }
func (d *Document) IsProcessingInstruction(n NodeID) bool {
	return d.isKind(n, KindProcessingInstruction)
}
func (d *Document) IsNamespace(n NodeID) bool { return d.isKind(n, KindNamespace) }

func (d *Document) isContainer(n NodeID) bool {
	return labels.IsAttributesOpen(d.labelAt(n)) || labels.IsNamespacesOpen(d.labelAt(n))
}

// DocumentElement returns the first child of root whose kind is Element.
// Absence means a malformed build (every well-formed XML document has
// exactly one root element), so this returns false only for a document
// the adapter should never have produced.
func (d *Document) DocumentElement() (NodeID, bool) {
	for c, ok := d.primitiveFirstChild(d.Root()); ok; c, ok = d.NextSibling(c) {
		if d.IsElement(c) {
			return c, true
		}
	}
	return NoNode, false
}

// TopElement returns the outermost element ancestor of n, or the document
// element if n is the document itself. Supplemented from
// original_source/src/document/nav.rs.
func (d *Document) TopElement(n NodeID) NodeID {
	if d.IsDocument(n) {
		el, _ := d.DocumentElement()
		return el
	}
	top := n
	for _, a := range d.AncestorsOrSelf(n) {
		if d.IsElement(a) {
			top = a
		}
	}
	return top
}

// IsDirectlyUnderDocument reports whether n's parent is the root.
func (d *Document) IsDirectlyUnderDocument(n NodeID) bool {
	p, ok := d.Parent(n)
	return ok && p == d.Root()
}

// IsDocumentElement reports whether n is an element directly under the
// document root.
func (d *Document) IsDocumentElement(n NodeID) bool {
	return d.IsElement(n) && d.IsDirectlyUnderDocument(n)
}

// HeapSize reports an approximate byte size across all five collaborating
// structures (§4.C).
func (d *Document) HeapSize() int {
	return d.labels.HeapSize() + d.text.HeapSize() + d.seq.HeapSize() +
		d.tree.HeapSize() + d.textAnchor.HeapSize()
}
