package session

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/antab/antabcli/internal/client/repositories/scope"
	"github.com/antab/antabcli/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemStore(t *testing.T) (*Store, *scope.MemoryRepository, *scope.MemoryRepository) {
	t.Helper()
	durable := scope.NewMemoryRepository()
	ephemeral := scope.NewMemoryRepository()
	return NewStoreWithScopes(durable, ephemeral), durable, ephemeral
}

func TestToken_DurableWinsOverEphemeral(t *testing.T) {
	s, durable, ephemeral := newMemStore(t)
	ctx := context.Background()

	require.NoError(t, durable.Set(ctx, common.TokenKey, []byte("durable-token")))
	require.NoError(t, ephemeral.Set(ctx, common.TokenKey, []byte("ephemeral-token")))

	tok, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "durable-token", tok)
}

func TestToken_FallsBackToEphemeral(t *testing.T) {
	s, _, ephemeral := newMemStore(t)
	ctx := context.Background()

	require.NoError(t, ephemeral.Set(ctx, common.TokenKey, []byte("tab-token")))

	tok, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tab-token", tok)
}

func TestToken_AbsentIsEmptyNotError(t *testing.T) {
	s, _, _ := newMemStore(t)

	tok, err := s.Token(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestWrite_RememberChoosesDurable(t *testing.T) {
	s, durable, ephemeral := newMemStore(t)
	ctx := context.Background()

	user := json.RawMessage(`{"fname":"Ann","email":"ann@example.org"}`)
	require.NoError(t, s.Write(ctx, "tok-1", user, true))

	v, err := durable.Get(ctx, common.TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", string(v))

	v, err = ephemeral.Get(ctx, common.TokenKey)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestWrite_NoRememberChoosesEphemeralAndClearsDurable(t *testing.T) {
	s, durable, ephemeral := newMemStore(t)
	ctx := context.Background()

	// a leftover durable credential must not survive a fresh sign-in
	require.NoError(t, durable.Set(ctx, common.TokenKey, []byte("stale")))

	require.NoError(t, s.Write(ctx, "tok-2", nil, false))

	v, err := durable.Get(ctx, common.TokenKey)
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = ephemeral.Get(ctx, common.TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "tok-2", string(v))
}

func TestMergeUser_NewFieldsWinAbsentFieldsKept(t *testing.T) {
	s, durable, _ := newMemStore(t)
	ctx := context.Background()

	require.NoError(t, durable.Set(ctx, common.TokenKey, []byte("tok")))
	require.NoError(t, durable.Set(ctx, common.UserKey,
		[]byte(`{"fname":"Ann","lname":"Lee","phone":"0812345678"}`)))

	require.NoError(t, s.MergeUser(ctx, json.RawMessage(`{"fname":"Anna","email":"ann@example.org"}`)))

	u, err := s.UserRecord(ctx)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "Anna", u.Fname)
	assert.Equal(t, "Lee", u.Lname)
	assert.Equal(t, "0812345678", u.Phone)
	assert.Equal(t, "ann@example.org", u.Email)
}

func TestMergeUser_Idempotent(t *testing.T) {
	s, durable, _ := newMemStore(t)
	ctx := context.Background()

	require.NoError(t, durable.Set(ctx, common.TokenKey, []byte("tok")))

	patch := json.RawMessage(`{"fname":"Ann","phone":"02-000-0000"}`)
	require.NoError(t, s.MergeUser(ctx, patch))
	first, err := s.User(ctx)
	require.NoError(t, err)

	require.NoError(t, s.MergeUser(ctx, patch))
	second, err := s.User(ctx)
	require.NoError(t, err)

	assert.JSONEq(t, string(first), string(second))
}

func TestMergeUser_WritesScopeHoldingToken(t *testing.T) {
	s, durable, ephemeral := newMemStore(t)
	ctx := context.Background()

	require.NoError(t, ephemeral.Set(ctx, common.TokenKey, []byte("tok")))

	require.NoError(t, s.MergeUser(ctx, json.RawMessage(`{"fname":"Ann"}`)))

	v, err := ephemeral.Get(ctx, common.UserKey)
	require.NoError(t, err)
	assert.NotNil(t, v)

	v, err = durable.Get(ctx, common.UserKey)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestMergeUser_DefaultsToDurableWhenSignedOut(t *testing.T) {
	s, durable, _ := newMemStore(t)
	ctx := context.Background()

	require.NoError(t, s.MergeUser(ctx, json.RawMessage(`{"fname":"Ann"}`)))

	v, err := durable.Get(ctx, common.UserKey)
	require.NoError(t, err)
	assert.NotNil(t, v)
}

func TestClear_WipesBothScopes(t *testing.T) {
	s, durable, ephemeral := newMemStore(t)
	ctx := context.Background()

	// both populated at once, the state Clear must be able to recover from
	for _, r := range []*scope.MemoryRepository{durable, ephemeral} {
		require.NoError(t, r.Set(ctx, common.TokenKey, []byte("tok")))
		require.NoError(t, r.Set(ctx, common.UserKey, []byte(`{"fname":"Ann"}`)))
	}

	require.NoError(t, s.Clear(ctx))

	for _, r := range []*scope.MemoryRepository{durable, ephemeral} {
		for _, key := range []string{common.TokenKey, common.UserKey} {
			v, err := r.Get(ctx, key)
			require.NoError(t, err)
			assert.Nil(t, v)
		}
	}
}

func TestUser_MalformedRecordYieldsAbsent(t *testing.T) {
	s, durable, _ := newMemStore(t)
	ctx := context.Background()

	require.NoError(t, durable.Set(ctx, common.UserKey, []byte("{not json")))

	raw, err := s.User(ctx)
	require.NoError(t, err)
	assert.Nil(t, raw)

	u, err := s.UserRecord(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestStore_DurablePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "session.db")

	db, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)

	s := NewStore(db)
	require.NoError(t, s.Write(ctx, "tok", json.RawMessage(`{"fname":"Ann"}`), true))
	require.NoError(t, db.Close())

	db, err = InitDatabase(ctx, dsn)
	require.NoError(t, err)
	defer db.Close()

	s = NewStore(db)
	tok, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok", tok)

	u, err := s.UserRecord(ctx)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "Ann", u.Fname)
}
