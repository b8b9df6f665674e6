package xoz_test

// Exercises the canonical navigation scenarios (§8): small fixture
// documents with known, hand-checked answers for each primitive and axis.
// Grounded on moznion-helium's table-driven tree-shape tests, adapted to
// XML fixtures parsed through xmladapter rather than built by hand.

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xoz "github.com/Paligo/xoz-sub000"
	"github.com/Paligo/xoz-sub000/xmladapter"
)

func parseDoc(t *testing.T, src string) *xoz.Document {
	t.Helper()
	doc, err := xmladapter.Parse(strings.NewReader(src))
	require.NoError(t, err)
	return doc
}

func elementNames(doc *xoz.Document, ids []xoz.NodeID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = doc.NodeType(id).Name.Local
	}
	return out
}

func childByLocalName(t *testing.T, doc *xoz.Document, parent xoz.NodeID, local string) xoz.NodeID {
	t.Helper()
	for c, ok := doc.FirstChild(parent); ok; c, ok = doc.NextSibling(c) {
		if doc.IsElement(c) && doc.NodeType(c).Name.Local == local {
			return c
		}
	}
	t.Fatalf("no child named %q found", local)
	return xoz.NoNode
}

// S1: <doc><a/><b/></doc>
func TestScenarioSiblingNavigation(t *testing.T) {
	doc := parseDoc(t, `<doc><a/><b/></doc>`)

	docEl, ok := doc.DocumentElement()
	require.True(t, ok)
	assert.Equal(t, "doc", doc.NodeType(docEl).Name.Local)

	a, ok := doc.FirstChild(docEl)
	require.True(t, ok)
	assert.Equal(t, "a", doc.NodeType(a).Name.Local)

	b, ok := doc.NextSibling(a)
	require.True(t, ok)
	assert.Equal(t, "b", doc.NodeType(b).Name.Local)

	_, ok = doc.NextSibling(b)
	assert.False(t, ok)

	prevB, ok := doc.PreviousSibling(b)
	require.True(t, ok)
	assert.Equal(t, a, prevB)

	_, ok = doc.PreviousSibling(a)
	assert.False(t, ok)

	pa, ok := doc.Parent(a)
	require.True(t, ok)
	assert.Equal(t, docEl, pa)

	pb, ok := doc.Parent(b)
	require.True(t, ok)
	assert.Equal(t, docEl, pb)

	pDocEl, ok := doc.Parent(docEl)
	require.True(t, ok)
	assert.Equal(t, doc.Root(), pDocEl)
}

// S2: <doc a="A" b="B"/>
func TestScenarioAttributesOnlyElement(t *testing.T) {
	doc := parseDoc(t, `<doc a="A" b="B"/>`)

	docEl, ok := doc.DocumentElement()
	require.True(t, ok)

	val, ok := doc.AttributeValue(docEl, xoz.NodeName{Local: "a"})
	require.True(t, ok)
	assert.Equal(t, "A", val)

	val, ok = doc.AttributeValue(docEl, xoz.NodeName{Local: "b"})
	require.True(t, ok)
	assert.Equal(t, "B", val)

	_, ok = doc.FirstChild(docEl)
	assert.False(t, ok, "an element with only attributes has no ordinary children")

	_, ok = doc.LastChild(docEl)
	assert.False(t, ok)

	attrs := doc.Attributes(docEl)
	require.Len(t, attrs, 2)

	attrA, ok := doc.AttributeNode(docEl, xoz.NodeName{Local: "a"})
	require.True(t, ok)
	parentOfAttr, ok := doc.Parent(attrA)
	require.True(t, ok)
	assert.Equal(t, docEl, parentOfAttr)
}

// S3: <doc><a><b><c/></b><d><e/><f/></d></a></doc>
func TestScenarioDescendantsAndTypedJumps(t *testing.T) {
	doc := parseDoc(t, `<doc><a><b><c/></b><d><e/><f/></d></a></doc>`)

	docEl, ok := doc.DocumentElement()
	require.True(t, ok)
	a, ok := doc.FirstChild(docEl)
	require.True(t, ok)

	assert.Equal(t, []string{"b", "c", "d", "e", "f"}, elementNames(doc, doc.Descendants(a)))

	b, ok := doc.FirstChild(a)
	require.True(t, ok)
	c, ok := doc.FirstChild(b)
	require.True(t, ok)
	assert.Equal(t, "c", doc.NodeType(c).Name.Local)

	assert.Equal(t, []string{"d", "e", "f"}, elementNames(doc, doc.Following(c)))

	f, ok := doc.TypedFollowing(c, xoz.Element("", "f"))
	require.True(t, ok)
	assert.Equal(t, "f", doc.NodeType(f).Name.Local)
	_, ok = doc.NextSibling(f)
	assert.False(t, ok)

	assert.Equal(t, []string{"b", "c", "e"}, elementNames(doc, doc.Preceding(f)))
}

func TestScenarioTypedDescendantCounts(t *testing.T) {
	doc := parseDoc(t, `<doc><b><b/><b/></b></doc>`)

	docEl, ok := doc.DocumentElement()
	require.True(t, ok)
	outerB, ok := doc.FirstChild(docEl)
	require.True(t, ok)

	inner := doc.TypedDescendants(outerB, xoz.Element("", "b"))
	assert.Len(t, inner, 2)

	withSelf := doc.TypedDescendantsOrSelf(outerB, xoz.Element("", "b"))
	assert.Len(t, withSelf, 3)
	assert.Equal(t, outerB, withSelf[0])
}

func TestScenarioNamespaces(t *testing.T) {
	doc := parseDoc(t, `<ex:doc xmlns:ex="http://example.com" ex:a="A"><p/></ex:doc>`)

	docEl, ok := doc.DocumentElement()
	require.True(t, ok)

	nt := doc.NodeType(docEl)
	assert.Equal(t, "http://example.com", nt.Name.Namespace)
	assert.Equal(t, "doc", nt.Name.Local)

	val, ok := doc.AttributeValue(docEl, xoz.NodeName{Namespace: "http://example.com", Local: "a"})
	require.True(t, ok)
	assert.Equal(t, "A", val)

	p := childByLocalName(t, doc, docEl, "p")
	prefix, ok := doc.PrefixForNamespace(p, "http://example.com")
	require.True(t, ok)
	assert.Equal(t, "ex", prefix)

	uri, ok := doc.NamespaceForPrefix(p, "xml")
	require.True(t, ok)
	assert.Equal(t, "http://www.w3.org/XML/1998/namespace", uri)

	uri, ok = doc.NamespaceForPrefix(docEl, "xml")
	require.True(t, ok)
	assert.Equal(t, "http://www.w3.org/XML/1998/namespace", uri)
}

func TestScenarioStringValueAndTraverseOrder(t *testing.T) {
	doc := parseDoc(t, `<doc>hello<b>world</b>!</doc>`)

	docEl, ok := doc.DocumentElement()
	require.True(t, ok)

	sv, err := doc.StringValue(docEl)
	require.NoError(t, err)
	assert.Equal(t, "helloworld!", sv)

	desc := doc.Descendants(docEl)
	require.Len(t, desc, 4)

	var texts, elements int
	for _, n := range desc {
		switch doc.Kind(n) {
		case xoz.KindText:
			texts++
		case xoz.KindElement:
			elements++
		}
	}
	assert.Equal(t, 3, texts)
	assert.Equal(t, 1, elements)

	var traverseText strings.Builder
	for _, ev := range doc.Traverse(docEl) {
		if doc.Kind(ev.Node) == xoz.KindText {
			sv, err := doc.StringValue(ev.Node)
			require.NoError(t, err)
			traverseText.WriteString(sv)
		}
	}
	assert.Equal(t, "helloworld!", traverseText.String())
}
