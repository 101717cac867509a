package selector

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-wordle-engine/internal/candidate"
	"github.com/gcbaptista/go-wordle-engine/internal/codec"
	"github.com/gcbaptista/go-wordle-engine/internal/errors"
	"github.com/gcbaptista/go-wordle-engine/internal/feedback"
	"github.com/gcbaptista/go-wordle-engine/internal/vocab"
)

// The fixture vocabulary is small enough to score by hand. With candidates
// {angle, ample, amble}:
//
//	guess apple splits them {angle, amble} / {ample}  -> sum of squares 5
//	guess angle splits them {ample, amble} / {angle}  -> 5
//	guess ample separates all three                    -> 3
//	guess amble separates all three                    -> 3
//	guess maple separates all three                    -> 3
//
// ample, amble and maple tie on score; ample and maple tie on weight (22 vs
// amble's 19) and ample wins on vocabulary rank.
var fixtureWords = []string{"apple", "angle", "ample", "amble", "maple"}

func fixtureSource(t *testing.T, withMatrix bool) candidate.Source {
	t.Helper()
	v, err := vocab.New(fixtureWords)
	require.NoError(t, err)

	src := candidate.Source{Vocab: v}
	if withMatrix {
		path := filepath.Join(t.TempDir(), "feedback_table.bin")
		_, err = feedback.BuildFile(path, v)
		require.NoError(t, err)
		m, err := feedback.Load(path, v.Len())
		require.NoError(t, err)
		require.True(t, m.Loaded())
		t.Cleanup(func() { _ = m.Close() })
		src.Matrix = m
	}
	return src
}

func fixtureCandidates(t *testing.T, src candidate.Source, words ...string) []int {
	t.Helper()
	indices := make([]int, 0, len(words))
	for _, word := range words {
		idx, ok := src.Vocab.IndexOf(codec.MustEncode(word))
		require.True(t, ok, "word %q not in fixture vocabulary", word)
		indices = append(indices, idx)
	}
	return indices
}

func TestBestExpectedMode(t *testing.T) {
	src := fixtureSource(t, true)
	sel := New(src, Config{Mode: ModeExpected})
	candidates := fixtureCandidates(t, src, "angle", "ample", "amble")

	guess, score, err := sel.Best(candidates, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "ample", codec.Decode(guess))
	assert.Equal(t, 3.0, score)
}

func TestBestMinimaxMode(t *testing.T) {
	src := fixtureSource(t, true)
	sel := New(src, Config{Mode: ModeMinimax})
	candidates := fixtureCandidates(t, src, "angle", "ample", "amble")

	guess, score, err := sel.Best(candidates, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "ample", codec.Decode(guess))
	assert.Equal(t, 1.0, score)
}

func TestBestInvariantToWorkerCount(t *testing.T) {
	src := fixtureSource(t, true)
	candidates := fixtureCandidates(t, src, "angle", "ample", "amble")

	reference, refScore, err := New(src, Config{Workers: 1}).Best(candidates, nil, nil)
	require.NoError(t, err)

	for _, workers := range []int{2, 3, 5, 8} {
		guess, score, err := New(src, Config{Workers: workers}).Best(candidates, nil, nil)
		require.NoError(t, err, "workers=%d", workers)
		assert.Equal(t, reference, guess, "workers=%d", workers)
		assert.Equal(t, refScore, score, "workers=%d", workers)
	}
}

func TestBestMatrixAndDirectAgree(t *testing.T) {
	cached := fixtureSource(t, true)
	direct := fixtureSource(t, false)
	candidates := fixtureCandidates(t, cached, "angle", "ample", "amble")

	cachedGuess, cachedScore, err := New(cached, Config{}).Best(candidates, nil, nil)
	require.NoError(t, err)
	directGuess, directScore, err := New(direct, Config{}).Best(candidates, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, cachedGuess, directGuess)
	assert.Equal(t, cachedScore, directScore)
}

func TestBestRespectsBannedGuesses(t *testing.T) {
	src := fixtureSource(t, true)
	sel := New(src, Config{})
	candidates := fixtureCandidates(t, src, "angle", "ample", "amble")

	banned := map[codec.PackedWord]bool{codec.MustEncode("ample"): true}
	guess, score, err := sel.Best(candidates, banned, nil)
	require.NoError(t, err)
	// amble and maple both score 3; maple's higher weight wins.
	assert.Equal(t, "maple", codec.Decode(guess))
	assert.Equal(t, 3.0, score)
}

func TestBestHardModeConstraint(t *testing.T) {
	src := fixtureSource(t, true)
	sel := New(src, Config{})
	candidates := fixtureCandidates(t, src, "angle", "ample", "amble")

	// apple vs amble pins 'a', 'l' and 'e'; maple fails the green 'a'.
	prev := &Constraint{
		Guess:   codec.MustEncode("apple"),
		Outcome: codec.Feedback(codec.MustEncode("apple"), codec.MustEncode("amble")),
	}
	banned := map[codec.PackedWord]bool{codec.MustEncode("ample"): true}

	guess, _, err := sel.Best(candidates, banned, prev)
	require.NoError(t, err)
	assert.Equal(t, "amble", codec.Decode(guess))
}

func TestBestEmptyCandidates(t *testing.T) {
	src := fixtureSource(t, true)
	sel := New(src, Config{})

	_, _, err := sel.Best(nil, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrNoGuess)
}

func TestBestAllGuessesBanned(t *testing.T) {
	src := fixtureSource(t, true)
	sel := New(src, Config{})
	candidates := fixtureCandidates(t, src, "angle", "ample")

	banned := make(map[codec.PackedWord]bool)
	for _, word := range fixtureWords {
		banned[codec.MustEncode(word)] = true
	}
	_, _, err := sel.Best(candidates, banned, nil)
	assert.ErrorIs(t, err, errors.ErrNoGuess)
}
