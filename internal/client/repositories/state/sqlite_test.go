package state

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	db, err := Open(context.Background(), "file:staterepo?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewSQLiteRepository(db)
	require.NoError(t, repo.Clear(context.Background()))
	return repo
}

func TestRepository_GetMissingKeyReturnsNil(t *testing.T) {
	repo := setupRepo(t)

	v, err := repo.Get(context.Background(), KeyAccessToken)
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestRepository_SetGetRoundTrip(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyAccessToken, []byte("tok123")))

	v, err := repo.Get(ctx, KeyAccessToken)
	require.NoError(t, err)
	require.Equal(t, []byte("tok123"), v)
}

func TestRepository_SetOverwrites(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyCurrentUser, []byte(`{"id":1}`)))
	require.NoError(t, repo.Set(ctx, KeyCurrentUser, []byte(`{"id":2}`)))

	v, err := repo.Get(ctx, KeyCurrentUser)
	require.NoError(t, err)
	require.Equal(t, []byte(`{"id":2}`), v)
}

func TestRepository_DeleteIsIdempotent(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyAccessToken, []byte("tok")))
	require.NoError(t, repo.Delete(ctx, KeyAccessToken))
	require.NoError(t, repo.Delete(ctx, KeyAccessToken))

	v, err := repo.Get(ctx, KeyAccessToken)
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestRepository_ClearRemovesEverything(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, KeyAccessToken, []byte("tok")))
	require.NoError(t, repo.Set(ctx, KeyCurrentUser, []byte(`{}`)))
	require.NoError(t, repo.Clear(ctx))

	for _, key := range []string{KeyAccessToken, KeyCurrentUser} {
		v, err := repo.Get(ctx, key)
		require.NoError(t, err)
		require.Nil(t, v)
	}
}
