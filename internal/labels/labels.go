// Package labels implements Component A, the Label Registry: interning of
// distinct (NodeKind, open/close) pairs into dense small integers, with
// twelve IDs reserved for the content-free kinds so hot-path predicates
// (is this an Attributes-container open? a Text open?) reduce to integer
// comparisons instead of a label lookup.
package labels

import "errors"

// ErrNotFound is returned by Lookup when a label was never registered in
// this document; callers must treat it as "no such node in this document",
// per §4.A.
var ErrNotFound = errors.New("labels: label not registered")

// ErrTooManyLabels is the build-time capacity error from §6: the label
// width is capped at 16 bits so the label sequence's per-label matrix
// stays practical.
var ErrTooManyLabels = errors.New("labels: too many distinct labels")

const maxLabels = 1 << 16

// StructuralKind is the closed tagged union from §3, stripped of payload
// fields that don't participate in label identity (text payloads live in
// the text arena, not in the label).
type StructuralKind uint8

const (
	KindDocument StructuralKind = iota
	KindElement
	KindAttribute
	KindNamespace
	KindText
	KindComment
	KindProcessingInstruction
	KindNamespaces
	KindAttributes
)

// IsTextBearing reports whether nodes of this kind carry a text-arena
// payload (§3's "Text payload" rule).
func (k StructuralKind) IsTextBearing() bool {
	switch k {
	case KindText, KindComment, KindProcessingInstruction, KindAttribute:
		return true
	default:
		return false
	}
}

// Label identifies one (kind, open/close, qualifying name) combination.
// It is comparable, so it can be used directly as a map key: Element and
// Attribute vary by namespace+local name, Namespace varies by prefix (the
// declared URI is its payload, not part of its identity), and the other
// six kinds carry no further identity beyond Kind+Open.
type Label struct {
	Kind      StructuralKind
	Open      bool
	Namespace string
	Local     string
	Prefix    string
}

// LabelID is the dense identifier a Label is interned to.
type LabelID int32

// Reserved IDs for the six content-free kinds, fixed at construction time
// so is_document_open et al. are integer comparisons (§4.A).
const (
	DocumentOpen  LabelID = 0
	DocumentClose LabelID = 1
	TextOpen      LabelID = 2
	TextClose     LabelID = 3
	CommentOpen   LabelID = 4
	CommentClose  LabelID = 5
	PIOpen        LabelID = 6
	PIClose       LabelID = 7
	NamespacesOpen  LabelID = 8
	NamespacesClose LabelID = 9
	AttributesOpen  LabelID = 10
	AttributesClose LabelID = 11
)

const firstDynamicID = LabelID(12)

// Registry is the builder-populated, then query-time-read, label table.
type Registry struct {
	table []Label
	index map[Label]LabelID
}

// New constructs a Registry with the twelve reserved labels pre-registered
// in the fixed order the spec requires.
func New() *Registry {
	r := &Registry{index: make(map[Label]LabelID)}
	reserved := []Label{
		{Kind: KindDocument, Open: true},
		{Kind: KindDocument, Open: false},
		{Kind: KindText, Open: true},
		{Kind: KindText, Open: false},
		{Kind: KindComment, Open: true},
		{Kind: KindComment, Open: false},
		{Kind: KindProcessingInstruction, Open: true},
		{Kind: KindProcessingInstruction, Open: false},
		{Kind: KindNamespaces, Open: true},
		{Kind: KindNamespaces, Open: false},
		{Kind: KindAttributes, Open: true},
		{Kind: KindAttributes, Open: false},
	}
	for i, lbl := range reserved {
		r.table = append(r.table, lbl)
		r.index[lbl] = LabelID(i)
	}
	return r
}

// Register interns label, returning its existing ID if already known.
// Builder-only; idempotent.
func (r *Registry) Register(label Label) (LabelID, error) {
	if id, ok := r.index[label]; ok {
		return id, nil
	}
	if len(r.table) >= maxLabels {
		return 0, ErrTooManyLabels
	}
	id := LabelID(len(r.table))
	r.table = append(r.table, label)
	r.index[label] = id
	return id, nil
}

// Lookup returns the ID for label if registered.
func (r *Registry) Lookup(label Label) (LabelID, error) {
	id, ok := r.index[label]
	if !ok {
		return 0, ErrNotFound
	}
	return id, nil
}

// Resolve returns the Label a given ID was registered for.
func (r *Registry) Resolve(id LabelID) (Label, bool) {
	if id < 0 || int(id) >= len(r.table) {
		return Label{}, false
	}
	return r.table[id], true
}

// Len returns the number of distinct registered labels (opens and closes
// counted separately).
func (r *Registry) Len() int { return len(r.table) }

// HeapSize reports an approximate byte size.
func (r *Registry) HeapSize() int {
	// each table entry: kind(1)+open(1, padded)+3 strings headers(16 each)
	return len(r.table) * (2 + 3*16)
}

func IsDocumentOpen(id LabelID) bool   { return id == DocumentOpen }
func IsTextOpen(id LabelID) bool       { return id == TextOpen }
func IsAttributesOpen(id LabelID) bool { return id == AttributesOpen }
func IsNamespacesOpen(id LabelID) bool { return id == NamespacesOpen }
func IsAttributesClose(id LabelID) bool { return id == AttributesClose }
func IsNamespacesClose(id LabelID) bool { return id == NamespacesClose }

// IsSpecial reports whether id labels one of the two hidden container
// kinds (Attributes, Namespaces), open or close — used by the navigator's
// container-skipping rules (§4.G).
func IsSpecial(id LabelID) bool {
	return id == AttributesOpen || id == AttributesClose ||
		id == NamespacesOpen || id == NamespacesClose
}
