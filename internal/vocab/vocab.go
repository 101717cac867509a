// Package vocab holds the canonical ordered vocabulary and the per-word
// letter-coverage weights derived from it. A Vocabulary is built once at
// startup and passed by reference into every component; there is no
// process-wide word state.
package vocab

import (
	"github.com/gcbaptista/go-wordle-engine/internal/codec"
	"github.com/gcbaptista/go-wordle-engine/internal/errors"
)

// Vocabulary is an immutable ordered word list with a reverse index and a
// weight table. Word order is significant: ranks index feedback-matrix rows
// and serve as the final deterministic tie-break in guess selection.
type Vocabulary struct {
	words   []codec.PackedWord
	index   map[codec.PackedWord]int
	weights []uint32
}

// New builds a Vocabulary from already-ordered plain words. Every word must
// be exactly 5 lowercase letters; duplicates are rejected.
func New(words []string) (*Vocabulary, error) {
	v := &Vocabulary{
		words: make([]codec.PackedWord, 0, len(words)),
		index: make(map[codec.PackedWord]int, len(words)),
	}
	for _, word := range words {
		packed, err := codec.Encode(word)
		if err != nil {
			return nil, err
		}
		if _, exists := v.index[packed]; exists {
			return nil, errors.NewInvalidWordError(word, "duplicate word in vocabulary")
		}
		v.index[packed] = len(v.words)
		v.words = append(v.words, packed)
	}
	v.weights = computeWeights(v.words)
	return v, nil
}

// computeWeights scores each word as the sum, over its unique letters, of
// that letter's total occurrence count across the vocabulary. Used only as
// a tie-breaker in guess selection, never as the primary ranking.
func computeWeights(words []codec.PackedWord) []uint32 {
	var letterCounts [codec.AlphabetSize + 1]uint32
	for _, word := range words {
		for i := 0; i < codec.WordLen; i++ {
			letterCounts[codec.CharCodeAt(word, i)]++
		}
	}

	weights := make([]uint32, len(words))
	for idx, word := range words {
		var seen [codec.AlphabetSize + 1]bool
		var score uint32
		for i := 0; i < codec.WordLen; i++ {
			code := codec.CharCodeAt(word, i)
			if !seen[code] {
				score += letterCounts[code]
				seen[code] = true
			}
		}
		weights[idx] = score
	}
	return weights
}

// Len returns the number of words.
func (v *Vocabulary) Len() int { return len(v.words) }

// Word returns the packed word at rank idx.
func (v *Vocabulary) Word(idx int) codec.PackedWord { return v.words[idx] }

// Words returns the full ordered word list. Callers must not mutate it.
func (v *Vocabulary) Words() []codec.PackedWord { return v.words }

// IndexOf returns the rank of a packed word, or false if absent.
func (v *Vocabulary) IndexOf(word codec.PackedWord) (int, bool) {
	idx, ok := v.index[word]
	return idx, ok
}

// Contains reports whether a packed word is in the vocabulary.
func (v *Vocabulary) Contains(word codec.PackedWord) bool {
	_, ok := v.index[word]
	return ok
}

// Weight returns the letter-coverage weight of the word at rank idx.
func (v *Vocabulary) Weight(idx int) uint32 { return v.weights[idx] }

// AllIndices returns a fresh slice of every rank in order, the initial
// candidate set for a solve.
func (v *Vocabulary) AllIndices() []int {
	indices := make([]int, len(v.words))
	for i := range indices {
		indices[i] = i
	}
	return indices
}
