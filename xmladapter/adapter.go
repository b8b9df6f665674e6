// Package xmladapter implements Component H: it lowers a byte stream of
// XML into the builder package's event contract, so any io.Reader of XML
// becomes an xoz.Document in one pass.
//
// Grounded on antchfx/xmlquery's createParser/parse (the closest real Go
// analog in the retrieval pack to "adapt a streaming xml.Decoder into a
// tree-building event contract"): the xmlns/xmlns:* attribute-to-namespace
// rerouting loop and the encoding/xml.Decoder + charset.NewReaderLabel
// wiring are carried over directly; the level-tracking sibling/child
// bookkeeping that library does for its own pointer tree is replaced here
// by a plain element stack, since the target is the builder's
// Start/EndElement calls rather than a Node graph.
package xmladapter

import (
	"encoding/xml"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"

	xoz "github.com/Paligo/xoz-sub000"
	"github.com/Paligo/xoz-sub000/builder"
)

// Parse reads a complete XML document from r and builds an xoz.Document.
// A DOCTYPE or XML declaration in the source, if present, is consumed by
// the decoder and dropped: this module carries no declaration-subset or
// entity modeling (§9 Non-goals).
func Parse(r io.Reader) (*xoz.Document, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	b := builder.New()
	if err := b.StartDocument(); err != nil {
		return nil, err
	}

	var stack []xoz.NodeType
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &xoz.BuildError{Kind: xoz.MalformedInput, Message: err.Error()}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			nt := xoz.Element(t.Name.Space, t.Name.Local)
			namespaces, attrs := splitAttrs(t.Attr)
			if err := b.StartElement(nt, namespaces, attrs); err != nil {
				return nil, err
			}
			stack = append(stack, nt)

		case xml.EndElement:
			if len(stack) == 0 {
				return nil, &xoz.BuildError{Kind: xoz.MalformedInput, Message: "end tag without a matching start tag"}
			}
			nt := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if err := b.EndElement(nt); err != nil {
				return nil, err
			}

		case xml.CharData:
			if err := b.Text(string(t)); err != nil {
				return nil, err
			}

		case xml.Comment:
			if err := b.Comment(string(t)); err != nil {
				return nil, err
			}

		case xml.ProcInst:
			if t.Target == "xml" {
				// The XML declaration itself: elided.
				continue
			}
			if err := b.ProcessingInstruction(t.Target, string(t.Inst)); err != nil {
				return nil, err
			}

		case xml.Directive:
			// DOCTYPE and other markup declarations: elided (§9).
		}
	}

	if len(stack) != 0 {
		return nil, &xoz.BuildError{Kind: xoz.MalformedInput, Message: fmt.Sprintf("%d element(s) never closed", len(stack))}
	}
	if err := b.EndDocument(); err != nil {
		return nil, err
	}
	return b.Finish()
}

// splitAttrs reroutes xmlns/xmlns:* attributes to the namespace channel
// and returns the rest as ordinary attributes, mirroring xmlquery's own
// "https://www.w3.org/TR/xml-names/#scoping-defaulting" loop: Go's
// encoding/xml.Decoder does not strip xmlns declarations out of
// StartElement.Attr, so the adapter must.
func splitAttrs(raw []xml.Attr) ([]builder.NSDecl, []builder.Attr) {
	var namespaces []builder.NSDecl
	var attrs []builder.Attr
	for _, a := range raw {
		switch {
		case a.Name.Space == "" && a.Name.Local == "xmlns":
			namespaces = append(namespaces, builder.NSDecl{Prefix: "", URI: a.Value})
		case a.Name.Space == "xmlns":
			namespaces = append(namespaces, builder.NSDecl{Prefix: a.Name.Local, URI: a.Value})
		default:
			attrs = append(attrs, builder.Attr{
				Name:  xoz.NodeName{Namespace: a.Name.Space, Local: a.Name.Local},
				Value: a.Value,
			})
		}
	}
	return namespaces, attrs
}
