package xoz

import (
	"bytes"
	"strings"

	"github.com/Paligo/xoz-sub000/internal/labels"
	"github.com/Paligo/xoz-sub000/internal/textarena"
)

// primitiveParent/primitiveFirstChild/primitiveLastChild/
// primitivePreviousSibling are the raw BP-level operations, with no
// awareness of the Attributes/Namespaces hiding rules (§4.G); Document's
// public Parent/FirstChild/LastChild/PreviousSibling layer those rules on
// top, grounded on original_source/src/document/nav.rs's identical split.

func (d *Document) primitiveParent(n NodeID) (NodeID, bool) {
	p := d.tree.Parent(int(n))
	if p < 0 {
		return NoNode, false
	}
	return NodeID(p), true
}

func (d *Document) primitiveFirstChild(n NodeID) (NodeID, bool) {
	c := d.tree.FirstChild(int(n))
	if c < 0 {
		return NoNode, false
	}
	return NodeID(c), true
}

func (d *Document) primitiveLastChild(n NodeID) (NodeID, bool) {
	c := d.tree.LastChild(int(n))
	if c < 0 {
		return NoNode, false
	}
	return NodeID(c), true
}

func (d *Document) primitivePreviousSibling(n NodeID) (NodeID, bool) {
	p := d.tree.PreviousSibling(int(n))
	if p < 0 {
		return NoNode, false
	}
	return NodeID(p), true
}

// Parent returns n's parent, skipping the hidden Attributes/Namespaces
// container if the primitive parent is one: the parent of an attribute or
// namespace node is the owning element, not its container (§4.G rule 4).
func (d *Document) Parent(n NodeID) (NodeID, bool) {
	p, ok := d.primitiveParent(n)
	if !ok {
		return NoNode, false
	}
	if d.isContainer(p) {
		return d.primitiveParent(p)
	}
	return p, true
}

// FirstChild returns n's first ordinary child, skipping a leading
// Namespaces container, then a leading Attributes container, in that
// order (§3 rule 2-3, §4.G).
func (d *Document) FirstChild(n NodeID) (NodeID, bool) {
	c, ok := d.primitiveFirstChild(n)
	if !ok {
		return NoNode, false
	}
	id := d.labelAt(c)
	switch {
	case labels.IsAttributesOpen(id):
		return d.NextSibling(c)
	case labels.IsNamespacesOpen(id):
		next, ok := d.NextSibling(c)
		if !ok {
			return NoNode, false
		}
		if labels.IsAttributesOpen(d.labelAt(next)) {
			return d.NextSibling(next)
		}
		return next, true
	default:
		return c, true
	}
}

// LastChild returns n's last child, or false if that child is a
// Namespaces or Attributes container (meaning n has no ordinary
// children).
func (d *Document) LastChild(n NodeID) (NodeID, bool) {
	c, ok := d.primitiveLastChild(n)
	if !ok {
		return NoNode, false
	}
	if labels.IsSpecial(d.labelAt(c)) {
		return NoNode, false
	}
	return c, true
}

// NextSibling returns n's next sibling, unchanged from the primitive
// operation: attribute/namespace nodes use this too, to walk siblings
// inside their own container.
func (d *Document) NextSibling(n NodeID) (NodeID, bool) {
	s := d.tree.NextSibling(int(n))
	if s < 0 {
		return NoNode, false
	}
	return NodeID(s), true
}

// PreviousSibling returns n's previous sibling, but hides a Namespaces or
// Attributes container: ordinary children never appear to have a
// container as a preceding sibling (§4.G).
func (d *Document) PreviousSibling(n NodeID) (NodeID, bool) {
	p, ok := d.primitivePreviousSibling(n)
	if !ok {
		return NoNode, false
	}
	if labels.IsSpecial(d.labelAt(p)) {
		return NoNode, false
	}
	return p, true
}

// AttributesChild returns the Attributes container node of n, if present.
// It is always the first child, or the second if n also has a Namespaces
// container (§3 rule 2-3).
func (d *Document) AttributesChild(n NodeID) (NodeID, bool) {
	c, ok := d.primitiveFirstChild(n)
	if !ok {
		return NoNode, false
	}
	if labels.IsNamespacesOpen(d.labelAt(c)) {
		c, ok = d.primitiveNextSibling(c)
		if !ok {
			return NoNode, false
		}
	}
	if labels.IsAttributesOpen(d.labelAt(c)) {
		return c, true
	}
	return NoNode, false
}

// primitiveNextSibling is the raw BP-level next-sibling operation, used
// here to step from a Namespaces container to a possible Attributes
// container: both are containers, so the ordinary container-hiding rules
// don't apply between them.
func (d *Document) primitiveNextSibling(n NodeID) (NodeID, bool) {
	s := d.tree.NextSibling(int(n))
	if s < 0 {
		return NoNode, false
	}
	return NodeID(s), true
}

// NamespacesChild returns the Namespaces container node of n, if present.
func (d *Document) NamespacesChild(n NodeID) (NodeID, bool) {
	c, ok := d.primitiveFirstChild(n)
	if !ok {
		return NoNode, false
	}
	if labels.IsNamespacesOpen(d.labelAt(c)) {
		return c, true
	}
	return NoNode, false
}

// AttributeNode linearly scans the children of n's Attributes container
// for one whose name matches.
func (d *Document) AttributeNode(n NodeID, name NodeName) (NodeID, bool) {
	container, ok := d.AttributesChild(n)
	if !ok {
		return NoNode, false
	}
	for c, ok := d.primitiveFirstChild(container); ok; c, ok = d.NextSibling(c) {
		nt := d.NodeType(c)
		if nt.Kind == KindAttribute && nt.Name == name {
			return c, true
		}
	}
	return NoNode, false
}

// AttributeValue looks up the attribute named name on n and returns its
// text-arena payload.
func (d *Document) AttributeValue(n NodeID, name NodeName) (string, bool) {
	attr, ok := d.AttributeNode(n, name)
	if !ok {
		return "", false
	}
	return d.nodeText(attr), true
}

// Close returns the BP position of n's matching close parenthesis.
func (d *Document) Close(n NodeID) int { return d.tree.Close(int(n)) }

// SubtreeSize returns the number of nodes in the subtree rooted at n,
// including n itself (§8 invariant 1).
func (d *Document) SubtreeSize(n NodeID) int { return d.tree.SubtreeSize(int(n)) }

// Preorder returns n's preorder index: its rank among all nodes when
// visited in document order. Distinct from the NodeID itself, which is a
// raw BP bit position and so has gaps at every close parenthesis.
func (d *Document) Preorder(n NodeID) int { return d.tree.NodeIndex(int(n)) }

// IsAncestor reports whether a is a strict ancestor of b. Neither relation
// is reflexive (§8 invariant 8).
func (d *Document) IsAncestor(a, b NodeID) bool { return d.tree.IsAncestor(int(a), int(b)) }

// IsAncestorOrSelf reports whether a is an ancestor of b, or a equals b.
func (d *Document) IsAncestorOrSelf(a, b NodeID) bool { return d.tree.IsAncestorOrSelf(int(a), int(b)) }

// ChildIndex returns the 0-based position of node within children(parent),
// or false if it is not one of them. Supplemented from
// original_source/src/document/nav.rs.
func (d *Document) ChildIndex(parent, node NodeID) (int, bool) {
	i := 0
	for c, ok := d.FirstChild(parent); ok; c, ok = d.NextSibling(c) {
		if c == node {
			return i, true
		}
		i++
	}
	return 0, false
}

func (k Kind) isTextBearing() bool {
	switch k {
	case KindText, KindComment, KindProcessingInstruction, KindAttribute:
		return true
	default:
		return false
	}
}

// nodeText returns the raw arena payload for a text-bearing node or a
// Namespace node (whose URI the builder stores in the arena the same way).
// Calling this on any other kind is a programming error (§4.E): the anchor
// bitvector is only ever set at those opens, so the rank computed here
// would silently alias a different payload.
func (d *Document) nodeText(n NodeID) string {
	if k := d.Kind(n); !k.isTextBearing() && k != KindNamespace {
		panic("xoz: nodeText called on a non-text-bearing node")
	}
	id := textarena.TextID(d.textAnchor.Rank1(int(n)+1) - 1)
	return string(d.text.Value(id))
}

// TypedDescendant returns the nearest descendant of n whose kind matches
// nodeType, in document order, or false if there is none.
//
// Formula (§4.G, corrected from the published "Fast in-memory XPath
// search using compressed trees" paper, which has an off-by-one in this
// combination): d = select(rank(n+1, id), id); valid iff d <= close(n).
// The +1 on the rank and the lack of any offset on the select is the only
// combination that is correct.
func (d *Document) TypedDescendant(n NodeID, nodeType NodeType) (NodeID, bool) {
	id, err := d.labels.Lookup(nodeType.toLabel(true))
	if err != nil {
		return NoNode, false
	}
	r := d.seq.Rank(int(n)+1, id)
	pos := d.seq.Select(r, id)
	if pos < 0 {
		return NoNode, false
	}
	if pos <= d.tree.Close(int(n)) {
		return NodeID(pos), true
	}
	return NoNode, false
}

// TypedFollowing returns the first node of kind nodeType whose open
// position lies strictly after close(n) — i.e. outside n's subtree — or
// false if there is none.
//
// Formula (§4.G, also corrected): select(rank(close(n), id), id), with no
// +1 on the rank this time.
func (d *Document) TypedFollowing(n NodeID, nodeType NodeType) (NodeID, bool) {
	id, err := d.labels.Lookup(nodeType.toLabel(true))
	if err != nil {
		return NoNode, false
	}
	r := d.seq.Rank(d.tree.Close(int(n)), id)
	pos := d.seq.Select(r, id)
	if pos < 0 {
		return NoNode, false
	}
	return NodeID(pos), true
}

// TypedFollowingSibling is TypedFollowing gated on sharing n's parent.
// Supplemented from original_source/src/structure.rs, which defines this
// but leaves it unwired ("TODO: wire up to iterator").
func (d *Document) TypedFollowingSibling(n NodeID, nodeType NodeType) (NodeID, bool) {
	sibling, ok := d.TypedFollowing(n, nodeType)
	if !ok {
		return NoNode, false
	}
	np, nOk := d.primitiveParent(n)
	sp, sOk := d.primitiveParent(sibling)
	if nOk != sOk || np != sp {
		return NoNode, false
	}
	return sibling, true
}

// SubtreeCount returns the number of opens of nodeType strictly within
// [n, close(n)] (§4.G).
func (d *Document) SubtreeCount(n NodeID, nodeType NodeType) int {
	id, err := d.labels.Lookup(nodeType.toLabel(true))
	if err != nil {
		return 0
	}
	close := d.tree.Close(int(n))
	if n == 0 {
		return d.seq.Rank(close+1, id)
	}
	return d.seq.Rank(close+1, id) - d.seq.Rank(int(n), id)
}

// typedDescendantsSlice collects every descendant of n matching nodeType,
// in document order, by chaining TypedDescendant/TypedFollowing jumps
// bounded to n's subtree. Text nodes never occur inside an Attributes or
// Namespaces container, so this needs no container-awareness of its own.
func (d *Document) typedDescendantsSlice(n NodeID, nodeType NodeType) []NodeID {
	limit := d.tree.Close(int(n))
	var result []NodeID
	cur, ok := d.TypedDescendant(n, nodeType)
	for ok {
		result = append(result, cur)
		cur, ok = d.TypedFollowing(cur, nodeType)
		if ok && int(cur) > limit {
			ok = false
		}
	}
	return result
}

// StringValue implements the XPath 3.1 string-value function (§4.G).
func (d *Document) StringValue(n NodeID) (string, error) {
	switch d.Kind(n) {
	case KindDocument, KindElement:
		var buf bytes.Buffer
		for _, t := range d.typedDescendantsSlice(n, Text) {
			buf.WriteString(d.nodeText(t))
		}
		return buf.String(), nil
	case KindText, KindComment, KindAttribute:
		return d.nodeText(n), nil
	case KindProcessingInstruction:
		return d.PIData(n), nil
	case KindNamespace:
		return d.namespaceURI(n), nil
	default:
		return "", ErrInvalidTarget
	}
}

// PITarget and PIData split a stored processing-instruction payload into
// its target and content, the way encoding/xml.ProcInst itself splits
// Target/Inst. Re-parsed on every call: §9's open question about caching
// this is left undecided upstream, so this module doesn't cache either.
func (d *Document) PITarget(n NodeID) string {
	target, _ := splitPI(d.nodeText(n))
	return target
}

func (d *Document) PIData(n NodeID) string {
	_, data := splitPI(d.nodeText(n))
	return data
}

func splitPI(payload string) (target, data string) {
	i := strings.IndexAny(payload, " \t\n\r")
	if i < 0 {
		return payload, ""
	}
	return payload[:i], strings.TrimLeft(payload[i:], " \t\n\r")
}

// namespaceURI returns the URI payload of a Namespace node (its "value",
// per §3).
func (d *Document) namespaceURI(n NodeID) string {
	return d.nodeText(n)
}

// PrefixForNamespace and NamespaceForPrefix resolve namespace bindings by
// walking the namespaces_child of each ancestor, inner-to-outer (nearer
// declarations shadow farther ones), matching XML's scoping rules.
// Supplemented from original_source's document/ns.rs.
func (d *Document) PrefixForNamespace(n NodeID, uri string) (string, bool) {
	if uri == xmlNamespaceURI {
		return "xml", true
	}
	for _, a := range d.AncestorsOrSelf(n) {
		container, ok := d.NamespacesChild(a)
		if !ok {
			continue
		}
		for c, ok := d.primitiveFirstChild(container); ok; c, ok = d.NextSibling(c) {
			nt := d.NodeType(c)
			if d.namespaceURI(c) == uri {
				return nt.Prefix, true
			}
		}
	}
	return "", false
}

func (d *Document) NamespaceForPrefix(n NodeID, prefix string) (string, bool) {
	if prefix == "xml" {
		return xmlNamespaceURI, true
	}
	for _, a := range d.AncestorsOrSelf(n) {
		container, ok := d.NamespacesChild(a)
		if !ok {
			continue
		}
		for c, ok := d.primitiveFirstChild(container); ok; c, ok = d.NextSibling(c) {
			nt := d.NodeType(c)
			if nt.Prefix == prefix {
				return d.namespaceURI(c), true
			}
		}
	}
	return "", false
}

const xmlNamespaceURI = "http://www.w3.org/XML/1998/namespace"
