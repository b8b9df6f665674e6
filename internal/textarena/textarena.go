// Package textarena implements Component B: an append-only, terminator-
// separated flat byte buffer backing every text-bearing node's payload,
// with O(1) id-to-slice lookup via a sparse rank/select bitvector over
// terminator positions.
package textarena

import "github.com/Paligo/xoz-sub000/internal/bitvec"

// TextID identifies a stored payload, in append order.
type TextID int32

// Builder accumulates payloads during the build call. Append-only,
// immutable after Finish.
type Builder struct {
	buf        []byte
	terminators *bitvec.SparseBitVectorBuilder
	count      int
}

func NewBuilder() *Builder {
	return &Builder{terminators: bitvec.NewSparseBitVectorBuilder()}
}

// Append stores payload and returns its TextID. Every stored payload is
// immediately followed by exactly one terminator byte, per §4.B.
func (b *Builder) Append(payload []byte) TextID {
	id := TextID(b.count)
	b.buf = append(b.buf, payload...)
	b.buf = append(b.buf, 0)
	b.terminators.Append(len(b.buf) - 1)
	b.count++
	return id
}

// Finish materializes the immutable Arena.
func (b *Builder) Finish() *Arena {
	return &Arena{
		buf:         b.buf,
		terminators: b.terminators.Finish(len(b.buf)),
	}
}

// Arena is the immutable, finalized text buffer.
type Arena struct {
	buf         []byte
	terminators *bitvec.SparseBitVector
}

// Value returns the borrowed byte slice for textID. The caller interprets
// it as UTF-8 (every payload is UTF-8 by construction, per §4.B); a decode
// failure here is arena corruption, a fatal programming error, not a
// recoverable one (§7).
func (a *Arena) Value(textID TextID) []byte {
	start := 0
	if textID > 0 {
		start = a.terminators.Select1(int(textID)-1) + 1
	}
	end := a.terminators.Select1(int(textID))
	return a.buf[start:end]
}

// Count returns the number of stored payloads.
func (a *Arena) Count() int { return a.terminators.Ones() }

// HeapSize reports an approximate byte size, per §4.C's "report heap
// size" requirement (shared across all succinct components).
func (a *Arena) HeapSize() int {
	return len(a.buf) + a.terminators.HeapSize()
}
