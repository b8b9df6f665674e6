package xmladapter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xoz "github.com/Paligo/xoz-sub000"
)

func TestParseSimpleDocument(t *testing.T) {
	src := `<?xml version="1.0"?>
<root xmlns:a="urn:a" id="1">
  <a:child>hello</a:child>
  <!--note-->
</root>`

	doc, err := Parse(strings.NewReader(src))
	require.NoError(t, err)

	root, ok := doc.DocumentElement()
	require.True(t, ok)
	assert.Equal(t, "root", doc.NodeType(root).Name.Local)

	val, ok := doc.AttributeValue(root, xoz.NodeName{Local: "id"})
	require.True(t, ok)
	assert.Equal(t, "1", val)

	uri, ok := doc.NamespaceForPrefix(root, "a")
	require.True(t, ok)
	assert.Equal(t, "urn:a", uri)

	// Whitespace between the tags is kept as text nodes:
	// text, a:child, text, comment, text.
	children := doc.Children(root)
	require.Len(t, children, 5)

	child := children[1]
	assert.True(t, doc.IsElement(child))
	assert.Equal(t, "urn:a", doc.NodeType(child).Name.Namespace)
	assert.Equal(t, "child", doc.NodeType(child).Name.Local)

	sv, err := doc.StringValue(child)
	require.NoError(t, err)
	assert.Equal(t, "hello", sv)

	assert.True(t, doc.IsComment(children[3]))
}

func TestParseMismatchedTagsFails(t *testing.T) {
	_, err := Parse(strings.NewReader(`<a><b></a></b>`))
	require.Error(t, err)
}

func TestParseProcessingInstruction(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<root><?target some data?></root>`))
	require.NoError(t, err)

	root, _ := doc.DocumentElement()
	children := doc.Children(root)
	require.Len(t, children, 1)
	assert.True(t, doc.IsProcessingInstruction(children[0]))
	assert.Equal(t, "target", doc.PITarget(children[0]))
	assert.Equal(t, "some data", doc.PIData(children[0]))
}
