// Package pool implements the multi-document pool from §5/§9: it owns a
// growing sequence of immutable Documents, tags each with a dense index
// so cross-document node comparisons can be rejected without consulting
// either document, and hands callers a stable, externally-opaque handle
// per loaded document.
//
// Grounded on arthur-debert-nanostore's `uuid.New().String()` document-id
// pattern (nanostore/store.go, impl_store_json.go): an external handle
// that is cheap to generate, comparable, and carries no information about
// internal storage order.
package pool

import (
	"errors"

	"github.com/google/uuid"

	xoz "github.com/Paligo/xoz-sub000"
)

// ErrUnknownHandle is returned when a Handle does not belong to this Pool.
var ErrUnknownHandle = errors.New("pool: handle not recognized by this pool")

// Handle is an opaque, externally stable reference to a document loaded
// into a Pool. Its zero value never refers to a real document.
type Handle struct {
	id    uuid.UUID
	index int
}

// Pool owns a sequence of immutable Documents. A Pool is append-only and
// safe for concurrent reads; Add is not safe to call concurrently with
// itself or with reads of the index it is currently appending (matching
// every Document's own single-writer-then-many-readers model, extended
// one level up).
type Pool struct {
	docs []*xoz.Document
	ids  []uuid.UUID
}

// New constructs an empty Pool.
func New() *Pool {
	return &Pool{}
}

// Add appends doc to the pool and returns its Handle.
func (p *Pool) Add(doc *xoz.Document) Handle {
	index := len(p.docs)
	id := uuid.New()
	p.docs = append(p.docs, doc)
	p.ids = append(p.ids, id)
	return Handle{id: id, index: index}
}

// Document resolves a Handle back to its Document.
func (p *Pool) Document(h Handle) (*xoz.Document, error) {
	if h.index < 0 || h.index >= len(p.docs) || p.ids[h.index] != h.id {
		return nil, ErrUnknownHandle
	}
	return p.docs[h.index], nil
}

// Len returns the number of documents currently loaded.
func (p *Pool) Len() int { return len(p.docs) }

// Ref identifies one node within one document loaded into a specific
// Pool: a (Handle, NodeID) pair. Two Refs from different handles are
// never equal even if their NodeIDs happen to coincide (§5's
// cross-document inequality rule: comparisons across documents are
// defined to be unequal without consulting either document's contents).
type Ref struct {
	Doc  Handle
	Node xoz.NodeID
}

// Equal reports whether two refs name the same node in the same document.
func (r Ref) Equal(other Ref) bool {
	return r.Doc.id == other.Doc.id && r.Doc.index == other.Doc.index && r.Node == other.Node
}
