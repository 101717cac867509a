// Package feedback provides the precomputed feedback matrix: a dense
// vocabulary² table of outcome codes, one byte per (guess, answer) pair,
// persisted as a raw headerless file and loaded either as a read-only
// memory mapping or as an owned in-memory buffer.
package feedback

import (
	"fmt"
	"log"
	"os"

	"github.com/gcbaptista/go-wordle-engine/internal/codec"
	"github.com/gcbaptista/go-wordle-engine/internal/persistence"
	"github.com/gcbaptista/go-wordle-engine/internal/vocab"
)

// Matrix is a loaded feedback table. It is immutable after load and safe to
// share across goroutines without synchronization. Exactly one backing store
// is active: a mapped read-only view (unmapped by Close) or an owned buffer.
type Matrix struct {
	wordCount int
	data      []byte
	mapped    bool
}

// BuildFile computes feedback for every (guess, answer) pair in the
// vocabulary and writes the table to path in row-major (guess-major) order,
// one byte per cell. This is an O(N²) offline operation; the file is written
// atomically so a failed build leaves no partial table. It returns the
// number of cells written.
func BuildFile(path string, v *vocab.Vocabulary) (int, error) {
	n := v.Len()
	data := make([]byte, n*n)
	words := v.Words()
	for g, guess := range words {
		row := data[g*n : (g+1)*n]
		for a, answer := range words {
			row[a] = byte(codec.Feedback(guess, answer))
		}
	}
	if err := persistence.WriteFileAtomic(path, data); err != nil {
		return 0, fmt.Errorf("failed to write feedback table: %w", err)
	}
	return len(data), nil
}

// Load opens the feedback table at path for a vocabulary of wordCount words.
// It prefers a zero-copy read-only mapping and falls back to reading the
// whole file into an owned buffer. A missing file or a size other than
// wordCount² is not an error: Load returns (nil, nil) and callers fall back
// to on-the-fly feedback computation.
func Load(path string, wordCount int) (*Matrix, error) {
	expected := int64(wordCount) * int64(wordCount)

	file, err := os.Open(path) // #nosec G304 -- path is controlled by application, not user input
	if err == nil {
		defer func() {
			if closeErr := file.Close(); closeErr != nil {
				log.Printf("Warning: failed to close %s: %v", path, closeErr)
			}
		}()
		info, statErr := file.Stat()
		if statErr == nil && info.Size() == expected {
			if view, mapErr := mapReadOnly(file, int(expected)); mapErr == nil {
				return &Matrix{wordCount: wordCount, data: view, mapped: true}, nil
			}
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to open feedback table %s: %w", path, err)
	}

	data, err := persistence.ReadFileIfSized(path, expected)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}
	return &Matrix{wordCount: wordCount, data: data}, nil
}

// Loaded reports whether the matrix holds data. It is safe on a nil Matrix,
// so a nil result from Load can be carried around directly.
func (m *Matrix) Loaded() bool {
	return m != nil && len(m.data) > 0
}

// Row returns the outcome bytes of guessIdx against every answer, indexed by
// answer rank. The slice aliases the backing store and is valid only until
// Close; callers must not mutate it.
func (m *Matrix) Row(guessIdx int) []byte {
	return m.data[guessIdx*m.wordCount : (guessIdx+1)*m.wordCount]
}

// Outcome returns the cached outcome for one (guess, answer) pair.
func (m *Matrix) Outcome(guessIdx, answerIdx int) codec.Outcome {
	return codec.Outcome(m.data[guessIdx*m.wordCount+answerIdx])
}

// Close releases the mapped view if one is active. The matrix must not be
// used afterwards.
func (m *Matrix) Close() error {
	if m == nil {
		return nil
	}
	data := m.data
	mapped := m.mapped
	m.data = nil
	m.mapped = false
	if !mapped || data == nil {
		return nil
	}
	return unmapReadOnly(data)
}
