// Package lookup builds, serializes and replays precomputed decision trees:
// depth-bounded per-outcome guess trees that let a solve run without live
// search.
//
// The persisted format is little-endian. A fixed 32-byte header (magic
// "PLUT", version, generation depth, absolute root offset, packed start
// word, the start word's 5 raw characters, 3 padding bytes) is followed by
// the node region. Each node is a u32 entry count followed by 16-byte
// entries: u16 outcome code, u16 flags, u64 packed next guess, u32 absolute
// child offset (0 = terminal, no child node).
package lookup

import "github.com/gcbaptista/go-wordle-engine/internal/codec"

const (
	// Magic tags decision-tree files.
	Magic = "PLUT"

	// Version is the current format version.
	Version = 1

	// HeaderSize is the fixed header length for all versions sharing the
	// format.
	HeaderSize = 32

	entrySize = 16

	// flagDepthLimited marks an entry whose branch was truncated by the
	// depth bound and has no further data. The strict backtracking builder
	// never writes it, but readers honor it for forward compatibility.
	flagDepthLimited = 1 << 0
)

// node is an in-memory decision-tree node prior to serialization: the guess
// to play, plus one edge per outcome actually reachable from it.
type node struct {
	guess codec.PackedWord
	edges []edge
}

// edge maps one outcome code to the next guess and, when the remaining
// candidates need further branching, a child node.
type edge struct {
	outcome codec.Outcome
	next    codec.PackedWord
	child   *node
}

// serializeNode appends a node and, recursively, its children to the
// writer, and returns the node's offset relative to the start of the node
// region. Child offsets are unknown while the parent's entries are written,
// so each entry's offset field is reserved and backpatched after the child
// subtree has been emitted.
func serializeNode(n *node, w *treeWriter) uint32 {
	offset := uint32(w.pos())
	w.u32(uint32(len(n.edges)))

	patches := make([]int, len(n.edges))
	for i, e := range n.edges {
		w.u16(uint16(e.outcome))
		w.u16(0) // flags
		w.u64(uint64(e.next))
		patches[i] = w.reserveU32()
	}

	for i, e := range n.edges {
		if e.child != nil {
			childOffset := HeaderSize + serializeNode(e.child, w)
			w.patchU32(patches[i], childOffset)
		}
	}
	return offset
}
