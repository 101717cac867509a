package candidate

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-wordle-engine/internal/codec"
	"github.com/gcbaptista/go-wordle-engine/internal/feedback"
	"github.com/gcbaptista/go-wordle-engine/internal/vocab"
)

var testWords = []string{"apple", "angle", "ample", "amble", "maple", "slate", "crane", "world"}

func newSources(t *testing.T) (Source, Source) {
	t.Helper()
	v, err := vocab.New(testWords)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "feedback_table.bin")
	_, err = feedback.BuildFile(path, v)
	require.NoError(t, err)
	m, err := feedback.Load(path, v.Len())
	require.NoError(t, err)
	require.True(t, m.Loaded())
	t.Cleanup(func() { _ = m.Close() })

	return Source{Vocab: v, Matrix: m}, Source{Vocab: v}
}

func TestOutcomeMatrixMatchesDirect(t *testing.T) {
	cached, direct := newSources(t)
	for g := 0; g < cached.Vocab.Len(); g++ {
		for a := 0; a < cached.Vocab.Len(); a++ {
			assert.Equal(t, direct.Outcome(g, a), cached.Outcome(g, a), "pair (%d, %d)", g, a)
		}
	}
}

func TestPartitionIsDisjointCover(t *testing.T) {
	cached, direct := newSources(t)
	indices := cached.Vocab.AllIndices()

	for _, src := range []Source{cached, direct} {
		for g := 0; g < src.Vocab.Len(); g++ {
			buckets := Partition(src, indices, g)

			seen := make(map[int]bool)
			total := 0
			for out := range buckets {
				for _, idx := range buckets[out] {
					assert.False(t, seen[idx], "rank %d appears in multiple buckets", idx)
					seen[idx] = true
					assert.Equal(t, codec.Outcome(out), src.Outcome(g, idx))
					total++
				}
			}
			assert.Equal(t, len(indices), total)
		}
	}
}

func TestPartitionPreservesInputOrder(t *testing.T) {
	cached, _ := newSources(t)
	indices := []int{3, 1, 4, 0, 2}

	buckets := Partition(cached, indices, 0)
	for out := range buckets {
		for i := 1; i < len(buckets[out]); i++ {
			prev, cur := buckets[out][i-1], buckets[out][i]
			posOf := func(idx int) int {
				for p, v := range indices {
					if v == idx {
						return p
					}
				}
				return -1
			}
			assert.Less(t, posOf(prev), posOf(cur))
		}
	}
}

func TestFilterMatchesPartitionBucket(t *testing.T) {
	cached, direct := newSources(t)
	indices := cached.Vocab.AllIndices()

	for _, src := range []Source{cached, direct} {
		for g := 0; g < src.Vocab.Len(); g++ {
			buckets := Partition(src, indices, g)
			for out := range buckets {
				if len(buckets[out]) == 0 {
					continue
				}
				kept := Filter(src, indices, g, codec.Outcome(out))
				assert.Equal(t, buckets[out], kept)
			}
		}
	}
}

func TestFilterSolvedKeepsOnlyTheAnswer(t *testing.T) {
	cached, _ := newSources(t)
	indices := cached.Vocab.AllIndices()

	for g := range indices {
		kept := Filter(cached, indices, g, codec.OutcomeSolved)
		assert.Equal(t, []int{g}, kept)
	}
}
