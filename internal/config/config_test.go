package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, "5175", c.Port)
	assert.Equal(t, StoreMemory, c.Store)
	assert.True(t, c.VocabStrict)
	assert.Equal(t, 24*time.Hour, c.SessionTTL)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("WORDLE_STORE", "redis")
	t.Setenv("WORDLE_VOCAB_STRICT", "false")
	t.Setenv("WORDLE_VOCAB_EXPECTED", "2315")
	t.Setenv("SESSION_TTL", "90m")

	c, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, "9000", c.Port)
	assert.Equal(t, StoreRedis, c.Store)
	assert.False(t, c.VocabStrict)
	assert.Equal(t, 2315, c.VocabExpected)
	assert.Equal(t, 90*time.Minute, c.SessionTTL)
}

func TestLoad_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DAILY_SALT=pepper\n"), 0o600))
	// Register restore of the original value, then clear it so the file wins.
	t.Setenv("DAILY_SALT", "")
	require.NoError(t, os.Unsetenv("DAILY_SALT"))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "pepper", c.DailySalt)
}

func TestLoad_RejectsUnknownStore(t *testing.T) {
	t.Setenv("WORDLE_STORE", "mongo")
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.Error(t, err)
}
