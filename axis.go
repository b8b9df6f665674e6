package xoz

// This file implements the thirteen XPath axes (§4.G) as plain slice-
// returning walks over the navigation primitives in navigator.go. Real
// streaming iterators would avoid the allocation, but every axis here is
// already a bounded walk over an immutable structure, and a []NodeID
// return keeps callers (cmd/xozdump, tests) simple — grounded on the same
// "collect into a slice, let the caller range over it" style
// moznion-helium's tree walks use.

// Children returns n's ordinary children, left to right.
func (d *Document) Children(n NodeID) []NodeID {
	var out []NodeID
	for c, ok := d.FirstChild(n); ok; c, ok = d.NextSibling(c) {
		out = append(out, c)
	}
	return out
}

// Descendants returns every ordinary descendant of n, in document order.
// Attributes/Namespaces containers and their children are excluded, per
// the axis definition in §4.G.
func (d *Document) Descendants(n NodeID) []NodeID {
	var out []NodeID
	d.walkDescendants(n, &out)
	return out
}

func (d *Document) walkDescendants(n NodeID, out *[]NodeID) {
	for c, ok := d.FirstChild(n); ok; c, ok = d.NextSibling(c) {
		*out = append(*out, c)
		d.walkDescendants(c, out)
	}
}

// DescendantsOrSelf returns n itself followed by Descendants(n).
func (d *Document) DescendantsOrSelf(n NodeID) []NodeID {
	return append([]NodeID{n}, d.Descendants(n)...)
}

// Ancestors returns n's ancestors, nearest first, ending at the document
// root.
func (d *Document) Ancestors(n NodeID) []NodeID {
	var out []NodeID
	for p, ok := d.Parent(n); ok; p, ok = d.Parent(p) {
		out = append(out, p)
	}
	return out
}

// AncestorsOrSelf returns n followed by Ancestors(n).
func (d *Document) AncestorsOrSelf(n NodeID) []NodeID {
	return append([]NodeID{n}, d.Ancestors(n)...)
}

// FollowingSiblings returns n's siblings after it, in document order.
func (d *Document) FollowingSiblings(n NodeID) []NodeID {
	var out []NodeID
	for s, ok := d.NextSibling(n); ok; s, ok = d.NextSibling(s) {
		out = append(out, s)
	}
	return out
}

// PrecedingSiblings returns n's siblings before it, nearest first.
func (d *Document) PrecedingSiblings(n NodeID) []NodeID {
	var out []NodeID
	for s, ok := d.PreviousSibling(n); ok; s, ok = d.PreviousSibling(s) {
		out = append(out, s)
	}
	return out
}

// Following returns every node after n in document order that is not a
// descendant of n, skipping into Attributes/Namespaces containers the same
// way ordinary navigation does (i.e. not at all: this only ever walks
// ordinary structure).
func (d *Document) Following(n NodeID) []NodeID {
	var out []NodeID
	cur := n
	for {
		if s, ok := d.NextSibling(cur); ok {
			out = append(out, s)
			d.walkDescendants(s, &out)
			cur = s
			continue
		}
		p, ok := d.Parent(cur)
		if !ok {
			break
		}
		cur = p
	}
	return out
}

// Preceding returns every node before n in document order that is not an
// ancestor of n.
func (d *Document) Preceding(n NodeID) []NodeID {
	excluded := make(map[NodeID]bool)
	for _, a := range d.Ancestors(n) {
		excluded[a] = true
	}
	var out []NodeID
	d.walkPreceding(d.Root(), n, excluded, &out)
	return out
}

func (d *Document) walkPreceding(cur, stop NodeID, excluded map[NodeID]bool, out *[]NodeID) bool {
	if cur == stop {
		return true
	}
	for c, ok := d.FirstChild(cur); ok; c, ok = d.NextSibling(c) {
		if c == stop {
			return true
		}
		if !excluded[c] {
			*out = append(*out, c)
		}
		if d.walkPreceding(c, stop, excluded, out) {
			return true
		}
	}
	return false
}

// Attributes returns n's attribute nodes, in declaration order.
func (d *Document) Attributes(n NodeID) []NodeID {
	container, ok := d.AttributesChild(n)
	if !ok {
		return nil
	}
	var out []NodeID
	for c, ok := d.primitiveFirstChild(container); ok; c, ok = d.NextSibling(c) {
		out = append(out, c)
	}
	return out
}

// NamespaceNodes returns the namespace nodes declared directly on n, in
// declaration order. Declarations inherited from ancestors are not
// included; PrefixForNamespace and NamespaceForPrefix are the lookups that
// walk the ancestor chain.
func (d *Document) NamespaceNodes(n NodeID) []NodeID {
	container, ok := d.NamespacesChild(n)
	if !ok {
		return nil
	}
	var out []NodeID
	for c, ok := d.primitiveFirstChild(container); ok; c, ok = d.NextSibling(c) {
		out = append(out, c)
	}
	return out
}

// Self returns the single-element slice [n], for axis uniformity.
func (d *Document) Self(n NodeID) []NodeID { return []NodeID{n} }

// TypedDescendants returns every descendant of n matching nodeType, in
// document order (the axis-level form of TypedDescendant/TypedFollowing
// chaining in navigator.go).
func (d *Document) TypedDescendants(n NodeID, nodeType NodeType) []NodeID {
	return d.typedDescendantsSlice(n, nodeType)
}

// TypedDescendantsOrSelf returns n itself (if it matches nodeType)
// followed by TypedDescendants(n, nodeType).
func (d *Document) TypedDescendantsOrSelf(n NodeID, nodeType NodeType) []NodeID {
	out := d.typedDescendantsSlice(n, nodeType)
	if d.NodeType(n) == nodeType {
		out = append([]NodeID{n}, out...)
	}
	return out
}
