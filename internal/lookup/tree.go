package lookup

import (
	"encoding/binary"
	"log"

	"github.com/gcbaptista/go-wordle-engine/internal/codec"
	"github.com/gcbaptista/go-wordle-engine/internal/persistence"
)

// Node references a tree node by absolute byte offset into the file. The
// zero value means "no node".
type Node uint32

// StepResult is the outcome of advancing one turn through the tree.
type StepResult struct {
	// Found reports whether the node has an entry for the outcome. A miss
	// is a genuine gap: the solve path must fall back to live search.
	Found bool
	// Guess is the next guess to play when Found.
	Guess codec.PackedWord
	// Child is the node to continue from, or zero when the branch is
	// terminal.
	Child Node
	// DepthLimited reports a branch truncated at generation time, which
	// likewise requires live search to finish the solve.
	DepthLimited bool
}

// Tree is a loaded decision tree. It is immutable after Load and safe for
// concurrent traversal.
type Tree struct {
	data  []byte
	root  Node
	depth uint32
	start codec.PackedWord
}

// Load reads and validates the decision tree at path. Any problem short of
// an I/O error — missing file, bad magic, version or start-word mismatch,
// out-of-bounds root — yields (nil, nil): the tree is absent and callers
// fall back to live search.
func Load(path string, expectedStart codec.PackedWord) (*Tree, error) {
	data, err := persistence.ReadFileIfSized(path, -1)
	if err != nil {
		return nil, err
	}
	if data == nil || len(data) < HeaderSize {
		return nil, nil
	}
	if string(data[0:4]) != Magic {
		log.Printf("Ignoring decision tree %s: bad magic", path)
		return nil, nil
	}
	if binary.LittleEndian.Uint32(data[4:8]) != Version {
		log.Printf("Ignoring decision tree %s: unsupported version", path)
		return nil, nil
	}
	start := codec.PackedWord(binary.LittleEndian.Uint64(data[16:24]))
	if start != expectedStart {
		log.Printf("Ignoring decision tree %s: start word '%s' does not match expected '%s'",
			path, codec.Decode(start), codec.Decode(expectedStart))
		return nil, nil
	}
	rootOffset := binary.LittleEndian.Uint32(data[12:16])
	if rootOffset < HeaderSize || int(rootOffset) >= len(data) {
		log.Printf("Ignoring decision tree %s: root offset out of bounds", path)
		return nil, nil
	}
	return &Tree{
		data:  data,
		root:  Node(rootOffset),
		depth: binary.LittleEndian.Uint32(data[8:12]),
		start: start,
	}, nil
}

// Root returns the root node.
func (t *Tree) Root() Node { return t.root }

// Depth returns the generation depth embedded in the file.
func (t *Tree) Depth() uint32 { return t.depth }

// Start returns the opening guess embedded in the file.
func (t *Tree) Start() codec.PackedWord { return t.start }

// Step scans the node's entries for the observed outcome. It is O(entry
// count) per call; a malformed node (entries running past the buffer) is
// treated as a miss, never a crash.
func (t *Tree) Step(n Node, observed codec.Outcome) StepResult {
	if n == 0 || int(n)+4 > len(t.data) {
		return StepResult{}
	}
	count := binary.LittleEndian.Uint32(t.data[n : n+4])
	offset := int(n) + 4
	if offset+int(count)*entrySize > len(t.data) {
		return StepResult{}
	}
	for i := uint32(0); i < count; i++ {
		entry := t.data[offset : offset+entrySize]
		offset += entrySize
		if codec.Outcome(binary.LittleEndian.Uint16(entry[0:2])) != observed {
			continue
		}
		flags := binary.LittleEndian.Uint16(entry[2:4])
		child := Node(binary.LittleEndian.Uint32(entry[12:16]))
		if int(child) >= len(t.data) {
			return StepResult{}
		}
		return StepResult{
			Found:        true,
			Guess:        codec.PackedWord(binary.LittleEndian.Uint64(entry[4:12])),
			Child:        child,
			DepthLimited: flags&flagDepthLimited != 0,
		}
	}
	return StepResult{}
}
