package lookup

import (
	"encoding/binary"
	"log"

	"github.com/gcbaptista/go-wordle-engine/internal/candidate"
	"github.com/gcbaptista/go-wordle-engine/internal/codec"
	"github.com/gcbaptista/go-wordle-engine/internal/errors"
	"github.com/gcbaptista/go-wordle-engine/internal/persistence"
	"github.com/gcbaptista/go-wordle-engine/internal/selector"
)

// Progress is a snapshot of generation diagnostics. It is observability
// only; the generated file does not depend on it.
type Progress struct {
	States       uint64 `json:"states"`
	GuessesTried uint64 `json:"guesses_tried"`
	Backtracks   uint64 `json:"backtracks"`
	MaxDepth     uint32 `json:"max_depth"`
}

// GenerateResult summarizes a completed generation.
type GenerateResult struct {
	Bytes    int      `json:"bytes"`
	Progress Progress `json:"progress"`
}

// BuilderConfig configures one generation run.
type BuilderConfig struct {
	// Start is the forced opening guess embedded in the file.
	Start codec.PackedWord
	// Depth is the maximum number of guesses on any path.
	Depth uint32
	// OnProgress, when set, receives periodic diagnostic snapshots.
	OnProgress func(Progress)
}

// Builder constructs a complete decision tree for a fixed opening guess
// under the strict exhaustive policy: a branch that cannot resolve every
// candidate within the depth bound fails, the parent bans the guess that
// led there and retries with the next-best guess until the guess
// vocabulary is exhausted. A Builder is single-use and single-threaded;
// the selector it calls is internally parallel.
type Builder struct {
	src   candidate.Source
	sel   *selector.Selector
	cfg   BuilderConfig
	memo  map[string]memoResult
	stats Progress
}

// memoResult caches the outcome of building a subproblem keyed by the exact
// candidate set and remaining depth, so identical states reached via
// different feedback paths are solved once.
type memoResult struct {
	node *node
	ok   bool
}

// NewBuilder creates a Builder. The selector must score over the same
// vocabulary the source resolves outcomes for.
func NewBuilder(src candidate.Source, sel *selector.Selector, cfg BuilderConfig) *Builder {
	return &Builder{
		src:  src,
		sel:  sel,
		cfg:  cfg,
		memo: make(map[string]memoResult),
	}
}

// Generate builds the tree over the full vocabulary and writes it to path
// atomically. On failure no file is written and the accumulated diagnostics
// are still returned.
func (b *Builder) Generate(path string) (GenerateResult, error) {
	if b.cfg.Depth < 1 {
		return GenerateResult{}, errors.NewGenerationError(codec.Decode(b.cfg.Start), b.cfg.Depth)
	}

	root, ok := b.build(b.src.Vocab.AllIndices(), b.cfg.Depth, b.cfg.Start)
	if !ok {
		log.Printf("Decision tree generation failed for '%s' at depth %d (states=%d, backtracks=%d)",
			codec.Decode(b.cfg.Start), b.cfg.Depth, b.stats.States, b.stats.Backtracks)
		return GenerateResult{Progress: b.stats}, errors.NewGenerationError(codec.Decode(b.cfg.Start), b.cfg.Depth)
	}

	w := &treeWriter{buf: make([]byte, 0, 1<<20)}
	rootOffset := HeaderSize + serializeNode(root, w)

	header := make([]byte, HeaderSize)
	copy(header[0:4], Magic)
	binary.LittleEndian.PutUint32(header[4:8], Version)
	binary.LittleEndian.PutUint32(header[8:12], b.cfg.Depth)
	binary.LittleEndian.PutUint32(header[12:16], rootOffset)
	binary.LittleEndian.PutUint64(header[16:24], uint64(b.cfg.Start))
	copy(header[24:29], codec.Decode(b.cfg.Start))
	// header[29:32] is reserved padding.

	if err := persistence.WriteFileAtomic(path, append(header, w.buf...)); err != nil {
		return GenerateResult{Progress: b.stats}, err
	}
	return GenerateResult{Bytes: HeaderSize + len(w.buf), Progress: b.stats}, nil
}

// build constructs the subtree for the given candidates. forced, when
// non-zero, is tried before consulting the selector (the fixed opening
// guess at the root). It returns ok=false when no guess resolves every
// candidate within depthRemaining.
func (b *Builder) build(candidates []int, depthRemaining uint32, forced codec.PackedWord) (*node, bool) {
	if len(candidates) == 0 {
		return nil, false
	}
	if len(candidates) == 1 {
		return &node{guess: b.src.Vocab.Word(candidates[0])}, true
	}
	if depthRemaining == 0 {
		return nil, false
	}

	memoKey := ""
	if forced == 0 {
		memoKey = b.memoKey(candidates, depthRemaining)
		if cached, hit := b.memo[memoKey]; hit {
			return cached.node, cached.ok
		}
	}

	depth := b.cfg.Depth - depthRemaining + 1
	if depth > b.stats.MaxDepth {
		b.stats.MaxDepth = depth
	}

	banned := make(map[codec.PackedWord]bool)
	useForced := forced != 0

	for {
		var guess codec.PackedWord
		if useForced {
			guess = forced
			useForced = false
		} else if forced != 0 {
			// The opening guess is fixed; if it cannot resolve every
			// candidate the whole generation fails rather than silently
			// substituting a different root guess.
			return nil, false
		} else {
			var err error
			guess, _, err = b.sel.Best(candidates, banned, nil)
			if err != nil {
				b.stats.Backtracks++
				if memoKey != "" {
					b.memo[memoKey] = memoResult{}
				}
				return nil, false
			}
		}
		banned[guess] = true
		b.stats.GuessesTried++

		guessIdx, inVocab := b.src.Vocab.IndexOf(guess)
		if !inVocab {
			continue
		}

		built, ok := b.buildEdges(candidates, guess, guessIdx, depthRemaining)
		if ok {
			b.stats.States++
			b.report()
			if memoKey != "" {
				b.memo[memoKey] = memoResult{node: built, ok: true}
			}
			return built, true
		}
		b.stats.Backtracks++
	}
}

// buildEdges partitions the candidates by guess and recurses into every
// non-empty bucket. All buckets must resolve for the node to succeed.
func (b *Builder) buildEdges(candidates []int, guess codec.PackedWord, guessIdx int, depthRemaining uint32) (*node, bool) {
	buckets := candidate.Partition(b.src, candidates, guessIdx)

	built := &node{guess: guess}
	for out := 0; out < codec.OutcomeCount; out++ {
		bucket := buckets[out]
		if len(bucket) == 0 {
			continue
		}
		e := edge{outcome: codec.Outcome(out)}
		if len(bucket) == 1 {
			e.next = b.src.Vocab.Word(bucket[0])
		} else {
			child, ok := b.build(bucket, depthRemaining-1, 0)
			if !ok {
				return nil, false
			}
			e.next = child.guess
			e.child = child
		}
		built.edges = append(built.edges, e)
	}
	return built, true
}

// memoKey packs the candidate ranks and remaining depth into a string key.
// Candidate sets arrive in ascending rank order, so the byte encoding is
// canonical.
func (b *Builder) memoKey(candidates []int, depthRemaining uint32) string {
	key := make([]byte, 0, 4+4*len(candidates))
	key = binary.LittleEndian.AppendUint32(key, depthRemaining)
	for _, idx := range candidates {
		key = binary.LittleEndian.AppendUint32(key, uint32(idx))
	}
	return string(key)
}

func (b *Builder) report() {
	if b.cfg.OnProgress != nil && b.stats.States%100 == 0 {
		b.cfg.OnProgress(b.stats)
	}
}
