// Package solver runs the per-game solve loop: alternate guessing and
// candidate filtering until the answer is found or the turn budget runs
// out. Guesses come from the precomputed decision tree while it has a
// matching branch; once the tree misses (or was never loaded) the solve
// switches to live search for all remaining turns and does not consult the
// tree again.
package solver

import (
	"time"

	"github.com/gcbaptista/go-wordle-engine/internal/candidate"
	"github.com/gcbaptista/go-wordle-engine/internal/codec"
	"github.com/gcbaptista/go-wordle-engine/internal/lookup"
	"github.com/gcbaptista/go-wordle-engine/internal/selector"
	"github.com/gcbaptista/go-wordle-engine/model"
)

// Config controls one Solver.
type Config struct {
	// StartWord is the opening guess used when no decision tree drives the
	// solve. Must be in the vocabulary.
	StartWord codec.PackedWord
	// TurnBudget is the maximum number of guesses per solve.
	TurnBudget int
	// HardMode constrains every live-search guess to honor previous
	// feedback. The decision tree is not consulted in hard mode.
	HardMode bool
}

// Solver plays complete games against known answers. It is immutable and
// safe for concurrent use; every solve owns its candidate set exclusively.
type Solver struct {
	src  candidate.Source
	sel  *selector.Selector
	tree *lookup.Tree
	cfg  Config
}

// New creates a Solver. tree may be nil, in which case every solve runs
// pure live search.
func New(src candidate.Source, sel *selector.Selector, tree *lookup.Tree, cfg Config) *Solver {
	if cfg.TurnBudget <= 0 {
		cfg.TurnBudget = 6
	}
	return &Solver{src: src, sel: sel, tree: tree, cfg: cfg}
}

// Solve plays a full game against answer and returns the trace. A failed
// solve (budget exhausted or no legal guess left) is reported in the
// result, with LastGuess and Turns recording where it gave up; the error is
// non-nil only when search exhaustion cut the solve short.
func (s *Solver) Solve(answer codec.PackedWord) (model.SolveResult, error) {
	started := time.Now()

	usingTree := s.tree != nil && !s.cfg.HardMode
	var node lookup.Node
	var guess codec.PackedWord
	if usingTree {
		node = s.tree.Root()
		guess = s.tree.Start()
	} else {
		guess = s.cfg.StartWord
	}

	result := model.SolveResult{
		Answer:   codec.Decode(answer),
		HardMode: s.cfg.HardMode,
		UsedTree: usingTree,
	}

	candidates := s.src.Vocab.AllIndices()

	for turn := 1; turn <= s.cfg.TurnBudget; turn++ {
		outcome := codec.Feedback(guess, answer)
		result.Steps = append(result.Steps, model.GameStep{
			Guess:   codec.Decode(guess),
			Outcome: int(outcome),
			Pattern: codec.FormatOutcome(outcome),
		})
		result.Turns = turn

		if outcome == codec.OutcomeSolved {
			result.Solved = true
			result.TookMs = time.Since(started).Milliseconds()
			return result, nil
		}
		if turn == s.cfg.TurnBudget {
			break
		}

		candidates = s.filter(candidates, guess, outcome)

		next, stillOnTree, err := s.nextGuess(candidates, guess, outcome, usingTree, &node)
		if err != nil {
			result.LastGuess = codec.Decode(guess)
			result.TookMs = time.Since(started).Milliseconds()
			return result, err
		}
		guess = next
		usingTree = stillOnTree
	}

	result.LastGuess = codec.Decode(guess)
	result.TookMs = time.Since(started).Milliseconds()
	return result, nil
}

// nextGuess advances one turn. While on the tree it steps along the
// observed outcome; any miss or depth-limited marker switches permanently
// to live search against the current candidate set.
func (s *Solver) nextGuess(candidates []int, guess codec.PackedWord, outcome codec.Outcome, usingTree bool, node *lookup.Node) (codec.PackedWord, bool, error) {
	if usingTree {
		step := s.tree.Step(*node, outcome)
		if step.Found && !step.DepthLimited && step.Guess != 0 {
			*node = step.Child
			return step.Guess, true, nil
		}
	}

	if len(candidates) == 1 {
		return s.src.Vocab.Word(candidates[0]), false, nil
	}

	var prev *selector.Constraint
	if s.cfg.HardMode {
		prev = &selector.Constraint{Guess: guess, Outcome: outcome}
	}
	next, _, err := s.sel.Best(candidates, nil, prev)
	if err != nil {
		return 0, false, err
	}
	return next, false, nil
}

// filter narrows the candidate set by the observed feedback. Guesses
// normally come from the vocabulary, where the matrix row applies; a guess
// outside it (possible only with a foreign tree file) falls back to direct
// computation.
func (s *Solver) filter(candidates []int, guess codec.PackedWord, outcome codec.Outcome) []int {
	if guessIdx, ok := s.src.Vocab.IndexOf(guess); ok {
		return candidate.Filter(s.src, candidates, guessIdx, outcome)
	}
	kept := make([]int, 0, len(candidates)/2+1)
	for _, idx := range candidates {
		if codec.Feedback(guess, s.src.Vocab.Word(idx)) == outcome {
			kept = append(kept, idx)
		}
	}
	return kept
}

// BestOpening scores every word as an opening guess against the full
// vocabulary and returns the winner. This is the expensive whole-vocabulary
// analysis mode; with the feedback matrix loaded it takes seconds, without
// it considerably longer.
func (s *Solver) BestOpening() (model.OpeningResult, error) {
	started := time.Now()
	word, score, err := s.sel.Best(s.src.Vocab.AllIndices(), nil, nil)
	if err != nil {
		return model.OpeningResult{}, err
	}
	return model.OpeningResult{
		Word:       codec.Decode(word),
		Score:      score,
		Candidates: s.src.Vocab.Len(),
		TookMs:     time.Since(started).Milliseconds(),
	}, nil
}
