package services

import (
	"context"

	"github.com/antab/antabcli/internal/client/api"
	"github.com/antab/antabcli/internal/client/models"
	"github.com/antab/antabcli/internal/client/session"
)

// AuthService owns the sign-in/sign-out lifecycle of the session.
//
// Contract:
//   - SignIn: authenticate and persist the credential plus the user echo
//     into the scope selected by remember.
//   - Register: create an account; does not sign in.
//   - SignOut: wipe both persistence scopes.
//   - CurrentUser/Token: local reads only, absence is not an error.
//   - Ping: server liveness probe for the online-status watcher.
type AuthService interface {
	SignIn(ctx context.Context, email, password string, remember bool) (*models.User, error)
	Register(ctx context.Context, in api.RegisterInput) error
	SignOut(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
	Token(ctx context.Context) (string, error)
	Ping(ctx context.Context) error
}

type authService struct {
	client api.Client
	store  *session.Store
}

func NewAuthService(client api.Client, store *session.Store) AuthService {
	return &authService{client: client, store: store}
}

func (s *authService) SignIn(ctx context.Context, email, password string, remember bool) (*models.User, error) {
	token, rawUser, err := s.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if err := s.store.Write(ctx, token, rawUser, remember); err != nil {
		return nil, err
	}

	return decodeUser(rawUser), nil
}

func (s *authService) Register(ctx context.Context, in api.RegisterInput) error {
	return s.client.Register(ctx, in)
}

func (s *authService) SignOut(ctx context.Context) error {
	return s.store.Clear(ctx)
}

func (s *authService) CurrentUser(ctx context.Context) (*models.User, error) {
	return s.store.UserRecord(ctx)
}

func (s *authService) Token(ctx context.Context) (string, error) {
	return s.store.Token(ctx)
}

func (s *authService) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}
