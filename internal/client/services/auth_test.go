package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/antab/antabcli/internal/client/api"
	"github.com/antab/antabcli/internal/client/repositories/scope"
	"github.com/antab/antabcli/internal/client/session"
	"github.com/antab/antabcli/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignIn_RememberWritesDurableScope(t *testing.T) {
	durable := scope.NewMemoryRepository()
	ephemeral := scope.NewMemoryRepository()
	store := session.NewStoreWithScopes(durable, ephemeral)

	client := &fakeClient{
		loginToken: "tok123",
		loginUser:  json.RawMessage(`{"fname":"Ann","is_admin":true}`),
	}
	svc := NewAuthService(client, store)

	u, err := svc.SignIn(context.Background(), "ann@example.org", "pw", true)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "Ann", u.Fname)
	assert.True(t, u.IsAdmin)
	assert.Equal(t, [2]string{"ann@example.org", "pw"}, client.lastLogin)

	v, err := durable.Get(context.Background(), common.TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "tok123", string(v))

	v, err = ephemeral.Get(context.Background(), common.TokenKey)
	require.NoError(t, err)
	assert.Nil(t, v, "ephemeral scope stays empty with remember set")
}

func TestSignIn_NoRememberWritesEphemeralScope(t *testing.T) {
	durable := scope.NewMemoryRepository()
	ephemeral := scope.NewMemoryRepository()
	store := session.NewStoreWithScopes(durable, ephemeral)

	client := &fakeClient{loginToken: "tok123"}
	svc := NewAuthService(client, store)

	_, err := svc.SignIn(context.Background(), "a@b.c", "pw", false)
	require.NoError(t, err)

	v, err := ephemeral.Get(context.Background(), common.TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "tok123", string(v))

	v, err = durable.Get(context.Background(), common.TokenKey)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestSignIn_FailureLeavesSessionUntouched(t *testing.T) {
	store := memStore(t)
	seedSession(t, store, "old", "")

	client := &fakeClient{loginErr: &api.Error{Status: 401, Message: "Invalid credentials"}}
	svc := NewAuthService(client, store)

	_, err := svc.SignIn(context.Background(), "a@b.c", "bad", true)
	require.Error(t, err)

	token, err := store.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "old", token)
}

func TestSignOut_ClearsBothScopes(t *testing.T) {
	store := memStore(t)
	seedSession(t, store, "tok", `{"fname":"Ann"}`)

	svc := NewAuthService(&fakeClient{}, store)
	require.NoError(t, svc.SignOut(context.Background()))

	token, err := store.Token(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)

	u, err := svc.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestRegister_PassesInput(t *testing.T) {
	client := &fakeClient{}
	svc := NewAuthService(client, memStore(t))

	in := api.RegisterInput{Fname: "Ann", Lname: "Lee", Email: "a@b.c", Phone: "1", Password: "pw"}
	require.NoError(t, svc.Register(context.Background(), in))
	assert.Equal(t, in, client.lastReg)
}
