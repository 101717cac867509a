package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-wordle-engine/internal/vocab"
)

func TestDefaultListBuildsVocabulary(t *testing.T) {
	list := Default()
	require.NotEmpty(t, list)

	// Every embedded word must be valid and unique.
	v, err := vocab.New(list)
	require.NoError(t, err)
	assert.Equal(t, len(list), v.Len())
}

func TestDefaultContainsStartWord(t *testing.T) {
	assert.Contains(t, Default(), "roate")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	content := "# comment line\nslate\n\ncrane\n  roate  \n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	list, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"slate", "crane", "roate"}, list)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestLoadFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("# only comments\n"), 0o600))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}
