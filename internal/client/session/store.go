package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/antab/antabcli/internal/client/models"
	"github.com/antab/antabcli/internal/client/repositories/scope"
	"github.com/antab/antabcli/internal/common"
	"github.com/antab/antabcli/internal/dbx"
)

// Store reads and writes the credential and cached user record across the
// durable and ephemeral scopes.
type Store struct {
	durable   scope.Repository
	ephemeral scope.Repository

	// db is set when the durable scope is SQLite-backed, so sign-in can
	// write token and user in one transaction.
	db *sql.DB
}

// NewStore builds a Store with a SQLite durable scope over db and a fresh
// in-memory ephemeral scope.
func NewStore(db *sql.DB) *Store {
	return &Store{
		durable:   scope.NewSQLiteRepository(db),
		ephemeral: scope.NewMemoryRepository(),
		db:        db,
	}
}

// NewStoreWithScopes wires arbitrary scope implementations. Used by tests
// to substitute in-memory fakes for both scopes.
func NewStoreWithScopes(durable, ephemeral scope.Repository) *Store {
	return &Store{durable: durable, ephemeral: ephemeral}
}

// Token returns the current credential, preferring the durable scope, or ""
// when neither scope holds one. Never touches the network.
func (s *Store) Token(ctx context.Context) (string, error) {
	for _, r := range []scope.Repository{s.durable, s.ephemeral} {
		v, err := r.Get(ctx, common.TokenKey)
		if err != nil {
			return "", err
		}
		if len(v) > 0 {
			return string(v), nil
		}
	}
	return "", nil
}

// User returns the cached profile record with the same scope priority as
// Token. A missing or malformed record yields (nil, nil).
func (s *Store) User(ctx context.Context) (json.RawMessage, error) {
	for _, r := range []scope.Repository{s.durable, s.ephemeral} {
		v, err := r.Get(ctx, common.UserKey)
		if err != nil {
			return nil, err
		}
		if len(v) == 0 {
			continue
		}
		var probe map[string]any
		if json.Unmarshal(v, &probe) != nil {
			// malformed cache counts as absent
			return nil, nil
		}
		return json.RawMessage(v), nil
	}
	return nil, nil
}

// UserRecord decodes the cached record into the typed model. Absent or
// malformed caches yield (nil, nil).
func (s *Store) UserRecord(ctx context.Context) (*models.User, error) {
	raw, err := s.User(ctx)
	if err != nil || raw == nil {
		return nil, err
	}
	var u models.User
	if json.Unmarshal(raw, &u) != nil {
		return nil, nil
	}
	return &u, nil
}

// Write stores the credential and user record at sign-in. The remember flag
// selects the durable scope; otherwise the session lives only in memory.
// Both scopes are cleared first so at most one holds a token afterwards.
func (s *Store) Write(ctx context.Context, token string, user json.RawMessage, remember bool) error {
	if err := s.Clear(ctx); err != nil {
		return err
	}

	if remember {
		return s.writeDurable(ctx, token, user)
	}
	return writePair(ctx, s.ephemeral, token, user)
}

func (s *Store) writeDurable(ctx context.Context, token string, user json.RawMessage) error {
	sqlRepo, ok := s.durable.(*scope.SQLiteRepository)
	if !ok || s.db == nil {
		return writePair(ctx, s.durable, token, user)
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return writePair(ctx, sqlRepo.WithTx(tx), token, user)
	})
}

func writePair(ctx context.Context, r scope.Repository, token string, user json.RawMessage) error {
	if err := r.Set(ctx, common.TokenKey, []byte(token)); err != nil {
		return err
	}
	if user == nil {
		return nil
	}
	return r.Set(ctx, common.UserKey, user)
}

// MergeUser overlays partial onto the cached record field by field: fields
// present in partial win, fields absent from it keep their cached values.
// The merged record is written to whichever scope currently holds a
// non-empty token; with no token anywhere, the durable scope is used.
func (s *Store) MergeUser(ctx context.Context, partial json.RawMessage) error {
	var incoming map[string]any
	if err := json.Unmarshal(partial, &incoming); err != nil {
		return err
	}

	cached := map[string]any{}
	if raw, err := s.User(ctx); err != nil {
		return err
	} else if raw != nil {
		_ = json.Unmarshal(raw, &cached)
	}

	for k, v := range incoming {
		cached[k] = v
	}

	merged, err := json.Marshal(cached)
	if err != nil {
		return err
	}

	target, err := s.writeTarget(ctx)
	if err != nil {
		return err
	}
	return target.Set(ctx, common.UserKey, merged)
}

// writeTarget picks the scope holding a non-empty token, durable first,
// defaulting to durable when signed out.
func (s *Store) writeTarget(ctx context.Context) (scope.Repository, error) {
	for _, r := range []scope.Repository{s.durable, s.ephemeral} {
		v, err := r.Get(ctx, common.TokenKey)
		if err != nil {
			return nil, err
		}
		if len(v) > 0 {
			return r, nil
		}
	}
	return s.durable, nil
}

// Clear removes the credential and user record from both scopes,
// unconditionally. Called on sign-out and on the server's expiry signal.
func (s *Store) Clear(ctx context.Context) error {
	return errors.Join(s.durable.Clear(ctx), s.ephemeral.Clear(ctx))
}
