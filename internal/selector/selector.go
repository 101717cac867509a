// Package selector implements the parallel best-guess search: every legal
// guess is scored by how it partitions the current candidate set, and the
// minimum under a deterministic total order wins.
package selector

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/gcbaptista/go-wordle-engine/internal/candidate"
	"github.com/gcbaptista/go-wordle-engine/internal/codec"
	"github.com/gcbaptista/go-wordle-engine/internal/errors"
)

// Mode selects the scoring policy.
type Mode string

const (
	// ModeExpected minimizes the expected number of remaining candidates
	// (sum of squared bucket sizes under a uniform prior), accumulated
	// incrementally as Σ(2·countSoFar+1) which enables early pruning.
	ModeExpected Mode = "expected"

	// ModeMinimax minimizes the size of the largest bucket, breaking ties
	// on the sum of squared bucket sizes.
	ModeMinimax Mode = "minimax"
)

// Constraint carries the previous guess and its outcome for hard-mode
// filtering of the guess vocabulary.
type Constraint struct {
	Guess   codec.PackedWord
	Outcome codec.Outcome
}

// Config controls scoring mode and parallelism.
type Config struct {
	Mode Mode
	// Workers is the number of parallel scoring chunks. Zero means one per
	// CPU with a floor of four. The result is identical for any value.
	Workers int
}

// Selector scores guesses against candidate sets. It is immutable and safe
// for concurrent use; each Best call joins its own workers before returning.
type Selector struct {
	src     candidate.Source
	mode    Mode
	workers int
}

// New creates a Selector over the given outcome source.
func New(src candidate.Source, cfg Config) *Selector {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
		if workers < 4 {
			workers = 4
		}
	}
	mode := cfg.Mode
	if mode == "" {
		mode = ModeExpected
	}
	return &Selector{src: src, mode: mode, workers: workers}
}

// scored is one chunk's best guess under the total order: primary ascending,
// secondary ascending, weight descending, vocabulary rank ascending. The
// rank component totally orders all guesses, so the parallel reduction is
// associative and independent of chunking.
type scored struct {
	found     bool
	primary   float64
	secondary float64
	weight    uint32
	rank      int
}

func (a scored) better(b scored) bool {
	if !b.found {
		return a.found
	}
	if !a.found {
		return false
	}
	if a.primary != b.primary {
		return a.primary < b.primary
	}
	if a.secondary != b.secondary {
		return a.secondary < b.secondary
	}
	if a.weight != b.weight {
		return a.weight > b.weight
	}
	return a.rank < b.rank
}

// Best returns the best guess for the candidate set, its score, or
// ErrNoGuess when the candidate set is empty or no guess survives the
// banned set and hard-mode constraint. The result is deterministic and
// invariant to the worker count.
func (s *Selector) Best(candidates []int, banned map[codec.PackedWord]bool, prev *Constraint) (codec.PackedWord, float64, error) {
	if len(candidates) == 0 {
		return 0, 0, errors.ErrNoGuess
	}

	eligible := s.eligibleGuesses(banned, prev)
	if len(eligible) == 0 {
		return 0, 0, errors.ErrNoGuess
	}

	chunks := s.workers
	if chunks > len(eligible) {
		chunks = len(eligible)
	}
	results := make([]scored, chunks)
	chunkSize := (len(eligible) + chunks - 1) / chunks

	var g errgroup.Group
	for c := 0; c < chunks; c++ {
		start := c * chunkSize
		if start > len(eligible) {
			start = len(eligible)
		}
		end := start + chunkSize
		if end > len(eligible) {
			end = len(eligible)
		}
		c, start, end := c, start, end
		g.Go(func() error {
			results[c] = s.scoreChunk(candidates, eligible[start:end])
			return nil
		})
	}
	// Workers never fail; Wait is the join point.
	_ = g.Wait()

	best := scored{}
	for _, r := range results {
		if r.better(best) {
			best = r
		}
	}
	if !best.found {
		return 0, 0, errors.ErrNoGuess
	}
	return s.src.Vocab.Word(best.rank), best.primary, nil
}

// eligibleGuesses returns the guess ranks surviving the banned set and, when
// prev is non-nil, the hard-mode rules (greens pinned, yellow multiplicity).
func (s *Selector) eligibleGuesses(banned map[codec.PackedWord]bool, prev *Constraint) []int {
	n := s.src.Vocab.Len()
	eligible := make([]int, 0, n)
	for idx := 0; idx < n; idx++ {
		word := s.src.Vocab.Word(idx)
		if banned != nil && banned[word] {
			continue
		}
		if prev != nil && !codec.ValidHardModeGuess(word, prev.Guess, prev.Outcome) {
			continue
		}
		eligible = append(eligible, idx)
	}
	return eligible
}

func (s *Selector) scoreChunk(candidates []int, guessRanks []int) scored {
	if s.mode == ModeMinimax {
		return s.scoreChunkMinimax(candidates, guessRanks)
	}
	return s.scoreChunkExpected(candidates, guessRanks)
}

func (s *Selector) scoreChunkExpected(candidates []int, guessRanks []int) scored {
	best := scored{}
	for _, guessIdx := range guessRanks {
		var groups [codec.OutcomeCount]int
		score := 0.0
		pruned := false
		if s.src.Matrix.Loaded() {
			row := s.src.Matrix.Row(guessIdx)
			for _, idx := range candidates {
				countBefore := groups[row[idx]]
				score += float64(2*countBefore + 1)
				groups[row[idx]] = countBefore + 1
				// Strict comparison keeps equal-score guesses alive for
				// the weight tie-break without changing the final answer.
				if best.found && score > best.primary {
					pruned = true
					break
				}
			}
		} else {
			guess := s.src.Vocab.Word(guessIdx)
			for _, idx := range candidates {
				out := codec.Feedback(guess, s.src.Vocab.Word(idx))
				countBefore := groups[out]
				score += float64(2*countBefore + 1)
				groups[out] = countBefore + 1
				if best.found && score > best.primary {
					pruned = true
					break
				}
			}
		}
		if pruned {
			continue
		}
		current := scored{
			found:   true,
			primary: score,
			weight:  s.src.Vocab.Weight(guessIdx),
			rank:    guessIdx,
		}
		if current.better(best) {
			best = current
		}
	}
	return best
}

func (s *Selector) scoreChunkMinimax(candidates []int, guessRanks []int) scored {
	best := scored{}
	for _, guessIdx := range guessRanks {
		var groups [codec.OutcomeCount]int
		if s.src.Matrix.Loaded() {
			row := s.src.Matrix.Row(guessIdx)
			for _, idx := range candidates {
				groups[row[idx]]++
			}
		} else {
			guess := s.src.Vocab.Word(guessIdx)
			for _, idx := range candidates {
				groups[codec.Feedback(guess, s.src.Vocab.Word(idx))]++
			}
		}
		largest, spread := 0, 0
		for _, count := range groups {
			if count > largest {
				largest = count
			}
			spread += count * count
		}
		current := scored{
			found:     true,
			primary:   float64(largest),
			secondary: float64(spread),
			weight:    s.src.Vocab.Weight(guessIdx),
			rank:      guessIdx,
		}
		if current.better(best) {
			best = current
		}
	}
	return best
}
