package feedback

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-wordle-engine/internal/codec"
	"github.com/gcbaptista/go-wordle-engine/internal/vocab"
)

func testVocabulary(t *testing.T) *vocab.Vocabulary {
	t.Helper()
	v, err := vocab.New([]string{"apple", "angle", "ample", "amble", "maple", "llama", "world"})
	require.NoError(t, err)
	return v
}

func TestBuildFileAndLoad(t *testing.T) {
	v := testVocabulary(t)
	path := filepath.Join(t.TempDir(), "feedback_table.bin")

	cells, err := BuildFile(path, v)
	require.NoError(t, err)
	assert.Equal(t, v.Len()*v.Len(), cells)

	m, err := Load(path, v.Len())
	require.NoError(t, err)
	require.True(t, m.Loaded())
	defer func() { _ = m.Close() }()

	// Every cell must match on-the-fly feedback computation.
	for g := 0; g < v.Len(); g++ {
		row := m.Row(g)
		require.Len(t, row, v.Len())
		for a := 0; a < v.Len(); a++ {
			want := codec.Feedback(v.Word(g), v.Word(a))
			assert.Equal(t, want, m.Outcome(g, a))
			assert.Equal(t, byte(want), row[a])
		}
	}

	// The diagonal is always the solved outcome.
	for i := 0; i < v.Len(); i++ {
		assert.Equal(t, codec.Outcome(codec.OutcomeSolved), m.Outcome(i, i))
	}
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	m, err := Load(filepath.Join(t.TempDir(), "absent.bin"), 7)
	require.NoError(t, err)
	assert.Nil(t, m)
	assert.False(t, m.Loaded())
}

func TestLoadRejectsMisSizedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback_table.bin")
	require.NoError(t, os.WriteFile(path, make([]byte, 10), 0o600))

	// 10 bytes is not 7², so the table is treated as absent.
	m, err := Load(path, 7)
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestLoadWrongVocabularySize(t *testing.T) {
	v := testVocabulary(t)
	path := filepath.Join(t.TempDir(), "feedback_table.bin")
	_, err := BuildFile(path, v)
	require.NoError(t, err)

	// A table built for 7 words does not load for 6.
	m, err := Load(path, v.Len()-1)
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestCloseIsIdempotentAndNilSafe(t *testing.T) {
	var m *Matrix
	assert.NoError(t, m.Close())

	v := testVocabulary(t)
	path := filepath.Join(t.TempDir(), "feedback_table.bin")
	_, err := BuildFile(path, v)
	require.NoError(t, err)

	m, err = Load(path, v.Len())
	require.NoError(t, err)
	require.True(t, m.Loaded())
	assert.NoError(t, m.Close())
	assert.NoError(t, m.Close())
	assert.False(t, m.Loaded())
}
