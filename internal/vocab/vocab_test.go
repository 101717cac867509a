package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-wordle-engine/internal/codec"
	"github.com/gcbaptista/go-wordle-engine/internal/errors"
)

func TestNewPreservesOrder(t *testing.T) {
	words := []string{"apple", "angle", "ample", "amble", "maple"}
	v, err := New(words)
	require.NoError(t, err)

	assert.Equal(t, len(words), v.Len())
	for rank, word := range words {
		packed := v.Word(rank)
		assert.Equal(t, word, codec.Decode(packed))

		idx, ok := v.IndexOf(packed)
		require.True(t, ok)
		assert.Equal(t, rank, idx)
	}
}

func TestNewRejectsInvalidAndDuplicateWords(t *testing.T) {
	_, err := New([]string{"apple", "cat"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidWord)

	_, err = New([]string{"apple", "angle", "apple"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidWord)
}

func TestContains(t *testing.T) {
	v, err := New([]string{"apple", "angle"})
	require.NoError(t, err)

	assert.True(t, v.Contains(codec.MustEncode("apple")))
	assert.False(t, v.Contains(codec.MustEncode("zebra")))
	assert.False(t, v.Contains(0))
}

func TestWeights(t *testing.T) {
	// Letter totals across the list: a=5, p=4, l=5, e=5, n=1, g=1, m=3, b=1.
	v, err := New([]string{"apple", "angle", "ample", "amble", "maple"})
	require.NoError(t, err)

	tests := []struct {
		word   string
		weight uint32
	}{
		{"apple", 19}, // a+p+l+e, the repeated p counted once
		{"angle", 17}, // a+n+g+l+e
		{"ample", 22}, // a+m+p+l+e
		{"amble", 19}, // a+m+b+l+e
		{"maple", 22}, // m+a+p+l+e
	}
	for _, tt := range tests {
		idx, ok := v.IndexOf(codec.MustEncode(tt.word))
		require.True(t, ok)
		assert.Equal(t, tt.weight, v.Weight(idx), "weight of %q", tt.word)
	}
}

func TestAllIndices(t *testing.T) {
	v, err := New([]string{"apple", "angle", "ample"})
	require.NoError(t, err)

	indices := v.AllIndices()
	assert.Equal(t, []int{0, 1, 2}, indices)

	// The slice is a fresh copy each call.
	indices[0] = 99
	assert.Equal(t, []int{0, 1, 2}, v.AllIndices())
}
