package store_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/wordle-go/internal/game"
	"github.com/robalobadob/wordle/apps/wordle-go/internal/store"
	"github.com/robalobadob/wordle/apps/wordle-go/internal/words"
)

// runContract checks the behaviour every Store must share.
func runContract(t *testing.T, st store.Store) {
	t.Helper()
	ctx := context.Background()

	v, err := words.FromWords("crane", "slate", "pilot")
	require.NoError(t, err)
	d := game.NewDealer(v, words.NewSeededSource(1))

	s, err := d.StartWith("crane", game.ModeDaily)
	require.NoError(t, err)

	// Empty transcript round-trips.
	require.NoError(t, st.Save(ctx, s.Snapshot()))
	got, err := st.Get(ctx, s.ID())
	require.NoError(t, err)
	restored, err := d.Restore(got)
	require.NoError(t, err)
	assert.Empty(t, restored.Transcript())
	assert.Equal(t, game.ModeDaily, restored.Mode())
	assert.True(t, s.StartedAt().Equal(restored.StartedAt()))

	// Updates overwrite.
	s.Submit("slate")
	s.Submit("pilot")
	require.NoError(t, st.Save(ctx, s.Snapshot()))
	got, err = st.Get(ctx, s.ID())
	require.NoError(t, err)
	assert.Equal(t, []string{"slate", "pilot"}, got.Guesses)

	restored, err = d.Restore(got)
	require.NoError(t, err)
	assert.Equal(t, s.Transcript(), restored.Transcript())
	assert.Equal(t, 4, restored.Remaining())

	_, err = st.Get(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, st.Delete(ctx, s.ID()))
	_, err = st.Get(ctx, s.ID())
	assert.ErrorIs(t, err, store.ErrNotFound)
	require.NoError(t, st.Delete(ctx, s.ID()))
}

func TestMemoryStore_Contract(t *testing.T) {
	runContract(t, store.NewMemoryStore())
}

func TestMemoryStore_SnapshotsAreCopies(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	snap := game.Snapshot{ID: "g1", Target: "crane", Guesses: []string{"slate"}}
	require.NoError(t, st.Save(ctx, snap))
	snap.Guesses[0] = "xxxxx"

	got, err := st.Get(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, "slate", got.Guesses[0])
}

func TestRedisStore_Contract(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	st := store.NewRedisStoreFromClient(client)
	defer st.Close()

	require.NoError(t, st.Ping(context.Background()))
	runContract(t, st)
}

func TestRedisStore_TTL(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	st := store.NewRedisStore(mr.Addr(), "", 0, store.WithTTL(time.Minute), store.WithPrefix("test:"))
	defer st.Close()

	ctx := context.Background()
	require.NoError(t, st.Save(ctx, game.Snapshot{ID: "g1", Target: "crane"}))
	assert.True(t, mr.Exists("test:g1"))
	assert.Equal(t, time.Minute, mr.TTL("test:g1"))

	mr.FastForward(2 * time.Minute)
	_, err = st.Get(ctx, "g1")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSQLiteStore_Contract(t *testing.T) {
	st, err := store.OpenSQLite(filepath.Join(t.TempDir(), "data", "wordle.db"))
	require.NoError(t, err)
	defer st.Close()
	runContract(t, st)
}

func TestSQLiteStore_MigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordle.db")
	st, err := store.OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, st.Save(context.Background(), game.Snapshot{ID: "g1", Target: "crane", StartedAt: time.Now()}))
	require.NoError(t, st.Close())

	st, err = store.OpenSQLite(path)
	require.NoError(t, err)
	defer st.Close()
	got, err := st.Get(context.Background(), "g1")
	require.NoError(t, err)
	assert.Equal(t, "crane", got.Target)
	assert.Empty(t, got.Guesses)
}

func TestSQLiteStore_CorruptRow(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "wordle.db")
	st, err := store.OpenSQLite(path)
	require.NoError(t, err)
	defer st.Close()

	require.NoError(t, st.Save(ctx, game.Snapshot{
		ID: "g1", Mode: game.ModeRandom, Target: "crane", StartedAt: time.Now(),
	}))

	raw, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = raw.ExecContext(ctx, `UPDATE games SET started_at='yesterday' WHERE id='g1'`)
	require.NoError(t, err)
	require.NoError(t, raw.Close())

	_, err = st.Get(ctx, "g1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrNotFound)
	assert.Contains(t, err.Error(), "started_at")
}
