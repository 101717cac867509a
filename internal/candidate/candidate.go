// Package candidate operates on candidate sets: the answer ranks still
// consistent with all feedback observed so far in a solve.
package candidate

import (
	"github.com/gcbaptista/go-wordle-engine/internal/codec"
	"github.com/gcbaptista/go-wordle-engine/internal/feedback"
	"github.com/gcbaptista/go-wordle-engine/internal/vocab"
)

// Source resolves (guess, answer) outcomes, preferring the precomputed
// matrix and falling back to direct computation when it is absent. Both
// paths produce identical outcomes for the same vocabulary. A Source is
// immutable and safe to share across goroutines.
type Source struct {
	Vocab  *vocab.Vocabulary
	Matrix *feedback.Matrix
}

// Outcome returns the outcome of the guess at rank guessIdx against the
// answer at rank answerIdx.
func (s Source) Outcome(guessIdx, answerIdx int) codec.Outcome {
	if s.Matrix.Loaded() {
		return s.Matrix.Outcome(guessIdx, answerIdx)
	}
	return codec.Feedback(s.Vocab.Word(guessIdx), s.Vocab.Word(answerIdx))
}

// Partition splits indices into per-outcome buckets for the guess at rank
// guessIdx. The buckets form a disjoint cover of indices; bucket order (by
// outcome code) and order within a bucket (input order) are deterministic.
func Partition(src Source, indices []int, guessIdx int) [codec.OutcomeCount][]int {
	var buckets [codec.OutcomeCount][]int
	if src.Matrix.Loaded() {
		row := src.Matrix.Row(guessIdx)
		for _, idx := range indices {
			out := row[idx]
			buckets[out] = append(buckets[out], idx)
		}
		return buckets
	}
	guess := src.Vocab.Word(guessIdx)
	for _, idx := range indices {
		out := codec.Feedback(guess, src.Vocab.Word(idx))
		buckets[out] = append(buckets[out], idx)
	}
	return buckets
}

// Filter keeps the indices whose outcome under the guess at rank guessIdx
// equals observed, preserving order.
func Filter(src Source, indices []int, guessIdx int, observed codec.Outcome) []int {
	kept := make([]int, 0, len(indices)/2+1)
	if src.Matrix.Loaded() {
		row := src.Matrix.Row(guessIdx)
		for _, idx := range indices {
			if codec.Outcome(row[idx]) == observed {
				kept = append(kept, idx)
			}
		}
		return kept
	}
	guess := src.Vocab.Word(guessIdx)
	for _, idx := range indices {
		if codec.Feedback(guess, src.Vocab.Word(idx)) == observed {
			kept = append(kept, idx)
		}
	}
	return kept
}
