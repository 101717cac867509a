package lookup

import "encoding/binary"

// treeWriter is an append-only little-endian buffer with explicit
// backpatching, for binary formats whose parents must reference children
// that are only written after them: append a placeholder, remember its
// position, and patch it once the real offset is known.
type treeWriter struct {
	buf []byte
}

func (w *treeWriter) pos() int { return len(w.buf) }

func (w *treeWriter) u16(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

func (w *treeWriter) u32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

func (w *treeWriter) u64(v uint64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
}

// reserveU32 appends a zero placeholder and returns its position for a
// later patchU32.
func (w *treeWriter) reserveU32() int {
	pos := len(w.buf)
	w.u32(0)
	return pos
}

func (w *treeWriter) patchU32(pos int, v uint32) {
	binary.LittleEndian.PutUint32(w.buf[pos:pos+4], v)
}
