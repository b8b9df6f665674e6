// Package labelseq implements Component C, the Label Sequence: one label
// ID per BP position, supporting get/rank/select. This is the "per-label
// sparse bitvector matrix" variant the spec permits as an alternative to
// a wavelet matrix (§4.C) — one sparse occurrence list per distinct
// label, plus a flat array of the label at every position for Get.
package labelseq

import (
	"github.com/Paligo/xoz-sub000/internal/bitvec"
	"github.com/Paligo/xoz-sub000/internal/labels"
)

// Builder accumulates one label ID per BP position, in position order.
type Builder struct {
	ids        []labels.LabelID
	occurrence map[labels.LabelID]*bitvec.SparseBitVectorBuilder
}

func NewBuilder() *Builder {
	return &Builder{occurrence: make(map[labels.LabelID]*bitvec.SparseBitVectorBuilder)}
}

// Append records the label at the next position.
func (b *Builder) Append(id labels.LabelID) {
	pos := len(b.ids)
	b.ids = append(b.ids, id)
	occ, ok := b.occurrence[id]
	if !ok {
		occ = bitvec.NewSparseBitVectorBuilder()
		b.occurrence[id] = occ
	}
	occ.Append(pos)
}

// Finish materializes the immutable Sequence.
func (b *Builder) Finish() *Sequence {
	n := len(b.ids)
	byLabel := make(map[labels.LabelID]*bitvec.SparseBitVector, len(b.occurrence))
	for id, occ := range b.occurrence {
		byLabel[id] = occ.Finish(n)
	}
	return &Sequence{ids: b.ids, byLabel: byLabel, length: n}
}

// Sequence is the immutable, finalized label sequence.
type Sequence struct {
	ids     []labels.LabelID
	byLabel map[labels.LabelID]*bitvec.SparseBitVector
	length  int
}

// Len returns the number of positions.
func (s *Sequence) Len() int { return s.length }

// Get returns the label ID at position i.
func (s *Sequence) Get(i int) labels.LabelID { return s.ids[i] }

// Rank returns the number of occurrences of id in positions [0, i).
func (s *Sequence) Rank(i int, id labels.LabelID) int {
	occ, ok := s.byLabel[id]
	if !ok {
		return 0
	}
	if i < 0 {
		return 0
	}
	return occ.Rank1(i)
}

// Select returns the position of the r-th (0-indexed) occurrence of id,
// or -1 if there is no such occurrence.
func (s *Sequence) Select(r int, id labels.LabelID) int {
	occ, ok := s.byLabel[id]
	if !ok {
		return -1
	}
	return occ.Select1(r)
}

// HeapSize reports an approximate byte size.
func (s *Sequence) HeapSize() int {
	size := len(s.ids) * 4
	for _, occ := range s.byLabel {
		size += occ.HeapSize()
	}
	return size
}
