package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/wordle-go/internal/config"
	"github.com/robalobadob/wordle/apps/wordle-go/internal/words"
)

func TestLoadVocabulary_Policies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.txt")
	require.NoError(t, os.WriteFile(path, []byte("crane slate x"), 0o644))

	_, err := loadVocabulary(config.Config{VocabFile: path, VocabStrict: true})
	assert.ErrorIs(t, err, words.ErrMalformedWord)

	v, err := loadVocabulary(config.Config{VocabFile: path})
	require.NoError(t, err)
	assert.Equal(t, 2, v.Len())

	_, err = loadVocabulary(config.Config{VocabFile: path, VocabExpected: 2315})
	assert.ErrorIs(t, err, words.ErrWordCount)

	v, err = loadVocabulary(config.Config{VocabStrict: true})
	require.NoError(t, err)
	assert.Greater(t, v.Len(), 0)
}

func TestWordsCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.txt")
	require.NoError(t, os.WriteFile(path, []byte("crane\nslate\npilot\n"), 0o644))
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"words", "--words", path})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, path+": 3 words\n", out.String())
}

func TestOpenStore_Memory(t *testing.T) {
	st, closeFn, err := openStore(t.Context(), config.Config{Store: config.StoreMemory})
	require.NoError(t, err)
	defer closeFn()
	assert.NotNil(t, st)
}

func TestOpenStore_SQLite(t *testing.T) {
	st, closeFn, err := openStore(t.Context(), config.Config{
		Store:      config.StoreSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "wordle.db"),
	})
	require.NoError(t, err)
	defer closeFn()
	assert.NotNil(t, st)
}
