package xoz_test

// Property-based checks (§8 "Invariants to verify") run against a handful
// of representative fixtures rather than a single canonical document, so
// each invariant is exercised under plain, attribute-bearing, and
// namespaced shapes alike.

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xoz "github.com/Paligo/xoz-sub000"
)

var invariantFixtures = []string{
	`<doc><a/><b/></doc>`,
	`<doc a="A" b="B"><c/></doc>`,
	`<doc><a><b><c/></b><d><e/><f/></d></a></doc>`,
	`<ex:doc xmlns:ex="http://example.com" ex:a="A"><p/><q/></ex:doc>`,
	`<doc>hello<b>world</b>!</doc>`,
}

// 1. Tree shape: for every non-leaf node, close(n) > n and
// subtree_size(n) = (close(n) - n + 1) / 2.
func TestInvariantTreeShape(t *testing.T) {
	for _, src := range invariantFixtures {
		doc := parseDoc(t, src)
		docEl, ok := doc.DocumentElement()
		require.True(t, ok)

		for _, n := range append([]xoz.NodeID{docEl}, doc.Descendants(docEl)...) {
			close := doc.Close(n)
			_, hasChild := doc.FirstChild(n)
			_, hasAttrs := doc.AttributesChild(n)
			_, hasNS := doc.NamespacesChild(n)
			if hasChild || hasAttrs || hasNS {
				assert.Greater(t, close, int(n), "non-leaf node %d must close strictly after it opens", n)
			}
			assert.Equal(t, (close-int(n)+1)/2, doc.SubtreeSize(n))
		}
	}
}

// 2. Navigation duality: siblings agree in both directions, and a child
// appears exactly once in its parent's children() iterator.
func TestInvariantNavigationDuality(t *testing.T) {
	for _, src := range invariantFixtures {
		doc := parseDoc(t, src)
		root, ok := doc.DocumentElement()
		require.True(t, ok)
		for _, p := range append([]xoz.NodeID{root}, doc.Descendants(root)...) {
			if !doc.IsElement(p) {
				continue
			}
			children := doc.Children(p)
			seen := make(map[xoz.NodeID]int)
			for _, c := range children {
				seen[c]++
				pp, ok := doc.Parent(c)
				require.True(t, ok)
				assert.Equal(t, p, pp)
			}
			for c, count := range seen {
				assert.Equal(t, 1, count, "child %d must appear exactly once in children(%d)", c, p)
			}
			for i := 1; i < len(children); i++ {
				prev, ok := doc.PreviousSibling(children[i])
				require.True(t, ok)
				assert.Equal(t, children[i-1], prev)
			}
		}
	}
}

// 3. Attribute/namespace hiding.
func TestInvariantAttributeNamespaceHiding(t *testing.T) {
	doc := parseDoc(t, `<doc a="A" b="B"><c/></doc>`)
	docEl, ok := doc.DocumentElement()
	require.True(t, ok)

	first, ok := doc.FirstChild(docEl)
	require.True(t, ok)
	assert.True(t, doc.IsElement(first), "first_child must skip the Attributes container")
	assert.Equal(t, "c", doc.NodeType(first).Name.Local)

	_, ok = doc.PreviousSibling(first)
	assert.False(t, ok)

	for _, attr := range doc.Attributes(docEl) {
		p, ok := doc.Parent(attr)
		require.True(t, ok)
		assert.Equal(t, docEl, p)
	}

	for _, c := range doc.Children(docEl) {
		assert.False(t, doc.IsAttribute(c))
		assert.False(t, doc.Kind(c) == xoz.KindNamespace)
	}
}

// 4. Typed-descendant correctness: typed_descendants(n, k) equals the
// filtered set {d in descendants(n) : label(d) = k}, in document order.
func TestInvariantTypedDescendantCorrectness(t *testing.T) {
	for _, src := range invariantFixtures {
		doc := parseDoc(t, src)
		docEl, ok := doc.DocumentElement()
		require.True(t, ok)

		kinds := []xoz.NodeType{xoz.Element("", "a"), xoz.Element("", "b"), xoz.Element("", "c"), xoz.Text}
		for _, k := range kinds {
			var expect []xoz.NodeID
			for _, d := range doc.Descendants(docEl) {
				if doc.NodeType(d) == k {
					expect = append(expect, d)
				}
			}
			got := doc.TypedDescendants(docEl, k)
			assert.Equal(t, expect, got, "typed_descendants(doc_el, %v)", k)
		}
	}
}

// 5. subtree_count law: subtree_count(n, k) = |typed_descendants_or_self(n, k)|.
func TestInvariantSubtreeCountLaw(t *testing.T) {
	for _, src := range invariantFixtures {
		doc := parseDoc(t, src)
		docEl, ok := doc.DocumentElement()
		require.True(t, ok)

		for _, k := range []xoz.NodeType{xoz.Element("", "a"), xoz.Element("", "b"), xoz.Text} {
			assert.Equal(t, len(doc.TypedDescendantsOrSelf(docEl, k)), doc.SubtreeCount(docEl, k))
		}
	}
}

// 6. Text round-trip: node_str(t) returns exactly the bytes the source
// document held for that payload.
func TestInvariantTextRoundTrip(t *testing.T) {
	doc := parseDoc(t, `<doc a="A"><b>hello world</b><!--a comment--><?pi some data?></doc>`)
	docEl, ok := doc.DocumentElement()
	require.True(t, ok)

	val, ok := doc.AttributeValue(docEl, xoz.NodeName{Local: "a"})
	require.True(t, ok)
	assert.Equal(t, "A", val)

	for _, d := range doc.Descendants(docEl) {
		switch doc.Kind(d) {
		case xoz.KindText:
			sv, err := doc.StringValue(d)
			require.NoError(t, err)
			assert.Equal(t, "hello world", sv)
		case xoz.KindComment:
			sv, err := doc.StringValue(d)
			require.NoError(t, err)
			assert.Equal(t, "a comment", sv)
		case xoz.KindProcessingInstruction:
			assert.Equal(t, "pi", doc.PITarget(d))
			assert.Equal(t, "some data", doc.PIData(d))
		}
	}
}

// 7. Preorder law: preorder(a) < preorder(b) iff a precedes b in
// traverse(root) order.
func TestInvariantPreorderLaw(t *testing.T) {
	for _, src := range invariantFixtures {
		doc := parseDoc(t, src)
		docEl, ok := doc.DocumentElement()
		require.True(t, ok)

		var order []xoz.NodeID
		seen := make(map[xoz.NodeID]bool)
		for _, ev := range doc.Traverse(docEl) {
			if !seen[ev.Node] {
				seen[ev.Node] = true
				order = append(order, ev.Node)
			}
		}
		for i := 1; i < len(order); i++ {
			assert.Less(t, doc.Preorder(order[i-1]), doc.Preorder(order[i]))
		}
	}
}

// 8. Ancestor law: is_ancestor(a, b) iff a is in ancestors(b); neither
// relation is reflexive; is_ancestor_or_self(a, a) is always true.
func TestInvariantAncestorLaw(t *testing.T) {
	for _, src := range invariantFixtures {
		doc := parseDoc(t, src)
		docEl, ok := doc.DocumentElement()
		require.True(t, ok)

		nodes := append([]xoz.NodeID{docEl}, doc.Descendants(docEl)...)
		for _, b := range nodes {
			ancestorSet := make(map[xoz.NodeID]bool)
			for _, a := range doc.Ancestors(b) {
				ancestorSet[a] = true
			}
			for _, a := range nodes {
				assert.Equal(t, ancestorSet[a], doc.IsAncestor(a, b), "is_ancestor(%d, %d)", a, b)
			}
			assert.False(t, doc.IsAncestor(b, b))
			assert.True(t, doc.IsAncestorOrSelf(b, b))
		}
	}
}
