package xoz

import "github.com/Paligo/xoz-sub000/internal/labels"

// Kind discriminates the closed NodeKind union (§3). It mirrors
// internal/labels.StructuralKind one-to-one; the two are kept distinct
// because this type is the public API surface (callers switch on it) while
// the internal one is an implementation detail of the label registry.
type Kind uint8

const (
	KindDocument Kind = iota
	KindElement
	KindAttribute
	KindNamespace
	KindText
	KindComment
	KindProcessingInstruction
	KindAttributes
	KindNamespaces
)

// String renders the kind's name, for debugging and cmd/xozdump output.
func (k Kind) String() string {
	switch k {
	case KindDocument:
		return "document"
	case KindElement:
		return "element"
	case KindAttribute:
		return "attribute"
	case KindNamespace:
		return "namespace"
	case KindText:
		return "text"
	case KindComment:
		return "comment"
	case KindProcessingInstruction:
		return "processing-instruction"
	case KindAttributes:
		return "attributes"
	case KindNamespaces:
		return "namespaces"
	default:
		return "unknown"
	}
}

func (k Kind) toStructural() labels.StructuralKind {
	switch k {
	case KindDocument:
		return labels.KindDocument
	case KindElement:
		return labels.KindElement
	case KindAttribute:
		return labels.KindAttribute
	case KindNamespace:
		return labels.KindNamespace
	case KindText:
		return labels.KindText
	case KindComment:
		return labels.KindComment
	case KindProcessingInstruction:
		return labels.KindProcessingInstruction
	case KindAttributes:
		return labels.KindAttributes
	case KindNamespaces:
		return labels.KindNamespaces
	default:
		panic("xoz: unknown Kind")
	}
}

func fromStructural(s labels.StructuralKind) Kind {
	switch s {
	case labels.KindDocument:
		return KindDocument
	case labels.KindElement:
		return KindElement
	case labels.KindAttribute:
		return KindAttribute
	case labels.KindNamespace:
		return KindNamespace
	case labels.KindText:
		return KindText
	case labels.KindComment:
		return KindComment
	case labels.KindProcessingInstruction:
		return KindProcessingInstruction
	case labels.KindAttributes:
		return KindAttributes
	case labels.KindNamespaces:
		return KindNamespaces
	default:
		panic("xoz: unknown StructuralKind")
	}
}

// NodeName identifies an Element or Attribute by namespace URI + local
// name. A Namespace declaration is identified by NodeType.Prefix instead.
type NodeName struct {
	Namespace string
	Local     string
}

// NodeType is a fully-specified NodeKind: the discriminant plus whatever
// qualifying name a given kind requires. Document/Text/Comment/
// ProcessingInstruction/Attributes/Namespaces carry no name; Element and
// Attribute carry a NodeName; Namespace carries only a prefix (its URI is
// a text-arena payload, not part of its identity — two declarations of
// the same prefix to different URIs are still the same label, since the
// spec's label identity is structural, not value-based).
type NodeType struct {
	Kind   Kind
	Name   NodeName
	Prefix string
}

// Element constructs a NodeType for an element with the given namespace
// URI (may be "") and local name.
func Element(namespace, local string) NodeType {
	return NodeType{Kind: KindElement, Name: NodeName{Namespace: namespace, Local: local}}
}

// Attribute constructs a NodeType for an attribute with the given
// namespace URI (may be "") and local name.
func Attribute(namespace, local string) NodeType {
	return NodeType{Kind: KindAttribute, Name: NodeName{Namespace: namespace, Local: local}}
}

// Namespace constructs a NodeType for a namespace declaration with the
// given prefix ("" for the default namespace).
func Namespace(prefix string) NodeType {
	return NodeType{Kind: KindNamespace, Prefix: prefix}
}

var (
	DocumentNode          = NodeType{Kind: KindDocument}
	Text                  = NodeType{Kind: KindText}
	Comment               = NodeType{Kind: KindComment}
	ProcessingInstruction = NodeType{Kind: KindProcessingInstruction}
	Attributes            = NodeType{Kind: KindAttributes}
	Namespaces            = NodeType{Kind: KindNamespaces}
)

// ToLabel exposes the NodeType-to-Label mapping for the builder and
// xmladapter packages, which need to register labels while assembling a
// Document but have no other reason to import this package's internals.
func (nt NodeType) ToLabel(open bool) labels.Label { return nt.toLabel(open) }

func (nt NodeType) toLabel(open bool) labels.Label {
	switch nt.Kind {
	case KindElement, KindAttribute:
		return labels.Label{Kind: nt.Kind.toStructural(), Open: open, Namespace: nt.Name.Namespace, Local: nt.Name.Local}
	case KindNamespace:
		return labels.Label{Kind: nt.Kind.toStructural(), Open: open, Prefix: nt.Prefix}
	default:
		return labels.Label{Kind: nt.Kind.toStructural(), Open: open}
	}
}

func nodeTypeFromLabel(l labels.Label) NodeType {
	kind := fromStructural(l.Kind)
	switch kind {
	case KindElement, KindAttribute:
		return NodeType{Kind: kind, Name: NodeName{Namespace: l.Namespace, Local: l.Local}}
	case KindNamespace:
		return NodeType{Kind: kind, Prefix: l.Prefix}
	default:
		return NodeType{Kind: kind}
	}
}
