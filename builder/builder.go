// Package builder implements Component F: the single-pass, stack-based
// event consumer that turns a StartDocument/StartElement/.../EndDocument
// call sequence into a finished xoz.Document.
//
// The shape is the same one moznion-helium's own TreeBuilder uses around
// its SAX callbacks (tree.go: a "current node" stack, StartElement
// pushing, EndElement popping) — generalized from building a pointer
// tree to appending straight into the five succinct collaborating
// structures (label registry, text arena, label sequence, BP tree,
// text-anchor bitvector) in one linear pass, with no intermediate
// in-memory tree at all.
package builder

import (
	"fmt"

	xoz "github.com/Paligo/xoz-sub000"
	"github.com/Paligo/xoz-sub000/internal/bitvec"
	"github.com/Paligo/xoz-sub000/internal/bptree"
	"github.com/Paligo/xoz-sub000/internal/labels"
	"github.com/Paligo/xoz-sub000/internal/labelseq"
	"github.com/Paligo/xoz-sub000/internal/textarena"
)

// Attr is one attribute to attach at StartElement time.
type Attr struct {
	Name  xoz.NodeName
	Value string
}

// NSDecl is one namespace declaration to attach at StartElement time.
type NSDecl struct {
	Prefix string
	URI    string
}

// Builder consumes a single well-formed event sequence and produces one
// xoz.Document. It is not reusable across documents and not safe for
// concurrent use — matching the single-threaded build model (§5).
type Builder struct {
	reg    *labels.Registry
	textB  *textarena.Builder
	seqB   *labelseq.Builder
	treeB  *bptree.Builder
	anchor *bitvec.DenseBitVectorBuilder

	stack  []xoz.NodeType
	state  state
	result *xoz.Document
}

type state uint8

const (
	stateNotStarted state = iota
	stateInDocument
	stateFinished
)

// New constructs an empty Builder, ready for StartDocument.
func New() *Builder {
	return &Builder{
		reg:    labels.New(),
		textB:  textarena.NewBuilder(),
		seqB:   labelseq.NewBuilder(),
		treeB:  bptree.NewBuilder(),
		anchor: bitvec.NewDenseBitVectorBuilder(),
	}
}

func (b *Builder) malformed(format string, args ...any) error {
	return &xoz.BuildError{Kind: xoz.MalformedInput, Message: fmt.Sprintf(format, args...)}
}

func (b *Builder) register(lbl labels.Label) (labels.LabelID, error) {
	id, err := b.reg.Register(lbl)
	if err != nil {
		return 0, &xoz.BuildError{Kind: xoz.TooManyDistinctLabels, Message: err.Error()}
	}
	return id, nil
}

// openContainer emits an opening parenthesis for a non-leaf node (one
// that will later receive its own EndX / internal close call): label,
// BP open, label-sequence entry, and a false text-anchor bit.
func (b *Builder) openContainer(lbl labels.Label) (int32, error) {
	id, err := b.register(lbl)
	if err != nil {
		return 0, err
	}
	pos := b.treeB.Open()
	b.seqB.Append(id)
	b.anchor.Append(false)
	return pos, nil
}

func (b *Builder) closeContainer(lbl labels.Label) error {
	id, err := b.register(lbl)
	if err != nil {
		return err
	}
	b.treeB.Close()
	b.seqB.Append(id)
	b.anchor.Append(false)
	return nil
}

// emitLeaf emits a complete open+close pair with no children, optionally
// carrying a text-arena payload (every text-bearing kind: Text, Comment,
// ProcessingInstruction, Attribute; Namespace nodes carry their URI the
// same way even though NodeKind.IsTextBearing doesn't count them, per
// §4.E's "Namespace's payload is likewise arena-backed" footnote).
func (b *Builder) emitLeaf(openLbl, closeLbl labels.Label, payload string, hasPayload bool) (int32, error) {
	openID, err := b.register(openLbl)
	if err != nil {
		return 0, err
	}
	pos := b.treeB.Open()
	b.seqB.Append(openID)
	if hasPayload {
		b.textB.Append([]byte(payload))
		b.anchor.Append(true)
	} else {
		b.anchor.Append(false)
	}

	closeID, err := b.register(closeLbl)
	if err != nil {
		return 0, err
	}
	b.treeB.Close()
	b.seqB.Append(closeID)
	b.anchor.Append(false)
	return pos, nil
}

// StartDocument begins the single Document node every build produces.
func (b *Builder) StartDocument() error {
	if b.state != stateNotStarted {
		return b.malformed("StartDocument called more than once")
	}
	if _, err := b.openContainer(xoz.DocumentNode.ToLabel(true)); err != nil {
		return err
	}
	b.stack = append(b.stack, xoz.DocumentNode)
	b.state = stateInDocument
	return nil
}

// EndDocument closes the Document node. Finish() then assembles and
// returns the Document; calling it before EndDocument returns a
// MalformedInput error.
func (b *Builder) EndDocument() error {
	if b.state != stateInDocument {
		return b.malformed("EndDocument called without a matching StartDocument")
	}
	if len(b.stack) != 1 {
		return b.malformed("EndDocument called with %d node(s) still open", len(b.stack)-1)
	}
	if err := b.closeContainer(xoz.DocumentNode.ToLabel(false)); err != nil {
		return err
	}
	b.stack = b.stack[:0]
	b.state = stateFinished
	return nil
}

// StartElement opens an element, immediately followed by its Namespaces
// container (if any) and its Attributes container (if any), per §3's
// fixed child ordering: a Namespaces container always precedes an
// Attributes container, which always precedes ordinary content.
func (b *Builder) StartElement(nt xoz.NodeType, namespaces []NSDecl, attrs []Attr) error {
	if b.state != stateInDocument {
		return b.malformed("StartElement called outside a document")
	}
	if nt.Kind != xoz.KindElement {
		return b.malformed("StartElement requires an Element NodeType, got %s", nt.Kind)
	}

	if _, err := b.openContainer(nt.ToLabel(true)); err != nil {
		return err
	}
	b.stack = append(b.stack, nt)

	if len(namespaces) > 0 {
		if err := b.emitNamespaces(namespaces); err != nil {
			return err
		}
	}
	if len(attrs) > 0 {
		if err := b.emitAttributes(attrs); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) emitNamespaces(namespaces []NSDecl) error {
	if _, err := b.openContainer(xoz.Namespaces.ToLabel(true)); err != nil {
		return err
	}
	for _, ns := range namespaces {
		nt := xoz.Namespace(ns.Prefix)
		if _, err := b.emitLeaf(nt.ToLabel(true), nt.ToLabel(false), ns.URI, true); err != nil {
			return err
		}
	}
	return b.closeContainer(xoz.Namespaces.ToLabel(false))
}

func (b *Builder) emitAttributes(attrs []Attr) error {
	if _, err := b.openContainer(xoz.Attributes.ToLabel(true)); err != nil {
		return err
	}
	for _, a := range attrs {
		nt := xoz.Attribute(a.Name.Namespace, a.Name.Local)
		if _, err := b.emitLeaf(nt.ToLabel(true), nt.ToLabel(false), a.Value, true); err != nil {
			return err
		}
	}
	return b.closeContainer(xoz.Attributes.ToLabel(false))
}

// EndElement closes the innermost still-open element. nt must match the
// element StartElement opened, or this reports MalformedInput (mismatched
// end tag, the single most common well-formedness violation an adapter
// needs to surface, per §7).
func (b *Builder) EndElement(nt xoz.NodeType) error {
	if len(b.stack) == 0 {
		return b.malformed("EndElement called with no open element")
	}
	top := b.stack[len(b.stack)-1]
	if top != nt {
		return b.malformed("EndElement %v does not match open element %v", nt, top)
	}
	b.stack = b.stack[:len(b.stack)-1]
	return b.closeContainer(nt.ToLabel(false))
}

// Text appends a text node as a child of the currently open node.
func (b *Builder) Text(data string) error {
	if len(b.stack) == 0 {
		return b.malformed("Text called outside a document")
	}
	_, err := b.emitLeaf(xoz.Text.ToLabel(true), xoz.Text.ToLabel(false), data, true)
	return err
}

// Comment appends a comment node as a child of the currently open node.
func (b *Builder) Comment(data string) error {
	if len(b.stack) == 0 {
		return b.malformed("Comment called outside a document")
	}
	_, err := b.emitLeaf(xoz.Comment.ToLabel(true), xoz.Comment.ToLabel(false), data, true)
	return err
}

// ProcessingInstruction appends a PI node, storing target and data as one
// arena payload (joined the way encoding/xml.ProcInst splits them:
// target, then a single space, then data, when data is non-empty).
func (b *Builder) ProcessingInstruction(target, data string) error {
	if len(b.stack) == 0 {
		return b.malformed("ProcessingInstruction called outside a document")
	}
	payload := target
	if data != "" {
		payload = target + " " + data
	}
	nt := xoz.ProcessingInstruction
	_, err := b.emitLeaf(nt.ToLabel(true), nt.ToLabel(false), payload, true)
	return err
}

// Finish returns the assembled Document. It must be called after
// EndDocument; later calls return the same Document.
func (b *Builder) Finish() (*xoz.Document, error) {
	if b.state != stateFinished {
		return nil, b.malformed("Finish called before EndDocument")
	}
	if b.result != nil {
		return b.result, nil
	}
	b.result = xoz.NewDocument(b.reg, b.textB.Finish(), b.seqB.Finish(), b.treeB.Finish(), b.anchor.Finish())
	return b.result, nil
}
