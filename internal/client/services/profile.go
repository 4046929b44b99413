// Package services contains the application services behind the CLI
// screens: profile, trip history, and the admin collections. Each service
// combines the API client with the session store and owns the view state
// of its screen.
package services

import (
	"context"
	"encoding/json"

	"github.com/antab/antabcli/internal/client/api"
	"github.com/antab/antabcli/internal/client/models"
	"github.com/antab/antabcli/internal/client/session"
)

// ProfileService backs the profile screen.
//
// Contract:
//   - Load: return the freshest profile available, merging any server
//     response into the cached record; on failure the cached record is
//     still returned so the screen can render stale-but-known fields.
//   - Save: persist edited fields and merge the server's echo back into
//     the cache.
type ProfileService interface {
	Load(ctx context.Context) (*models.User, error)
	Save(ctx context.Context, fname, lname, phone string) (*models.User, error)
}

type profileService struct {
	client api.Client
	store  *session.Store
}

func NewProfileService(client api.Client, store *session.Store) ProfileService {
	return &profileService{client: client, store: store}
}

// Load seeds from the cached record, then overlays GET /me. A 2xx response
// without a user object keeps the cached fields; a failed fetch returns the
// cached record together with the error so the caller can show both.
func (s *profileService) Load(ctx context.Context) (*models.User, error) {
	cached, err := s.store.UserRecord(ctx)
	if err != nil {
		return nil, err
	}

	raw, err := s.client.Me(ctx)
	if err != nil {
		return cached, err
	}
	if raw == nil {
		return cached, nil
	}

	if err := s.store.MergeUser(ctx, raw); err != nil {
		return cached, err
	}
	return s.store.UserRecord(ctx)
}

// Save sends the trimmed fields and merges the server's user echo into the
// cache, exactly like a successful profile fetch would.
func (s *profileService) Save(ctx context.Context, fname, lname, phone string) (*models.User, error) {
	raw, err := s.client.UpdateMe(ctx, api.ProfileInput{Fname: fname, Lname: lname, Phone: phone})
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return s.store.UserRecord(ctx)
	}

	if err := s.store.MergeUser(ctx, raw); err != nil {
		return nil, err
	}
	return s.store.UserRecord(ctx)
}

// decodeUser is a defensive decode shared by the services: malformed input
// yields nil rather than an error.
func decodeUser(raw json.RawMessage) *models.User {
	if raw == nil {
		return nil
	}
	var u models.User
	if json.Unmarshal(raw, &u) != nil {
		return nil
	}
	return &u
}
