// Package authn wraps the backend's login endpoints and the convenience
// flow that stores the issued token and warms the cached profile.
package authn

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/hemoglobin-nil/hemoglobin-go/client"
	interrors "github.com/hemoglobin-nil/hemoglobin-go/internal/errors"
	"github.com/hemoglobin-nil/hemoglobin-go/session"
	"github.com/hemoglobin-nil/hemoglobin-go/users"
)

// Credentials is the login request shape. Field names follow the backend
// contract exactly (Pascal case on the wire).
type Credentials struct {
	MobileNumber string `json:"MobileNumber"`
	DateOfBirth  string `json:"DateOfBirth"`
	Password     string `json:"Password,omitempty"`
}

type Service struct {
	api   *client.Client
	users *users.Service
}

func NewService(api *client.Client) *Service {
	return &Service{api: api, users: users.NewService(api)}
}

// UserType asks the backend which account class the credentials belong
// to; the login screen branches on this before requesting a token.
func (s *Service) UserType(ctx context.Context, creds Credentials) (users.UserType, error) {
	var body struct {
		UserType string `json:"userType"`
	}
	if err := s.api.PostJSON(ctx, "/Auth/usertype", creds, &body); err != nil {
		return "", err
	}
	return users.UserType(body.UserType), nil
}

// Token exchanges credentials for a bearer token. The backend nests the
// token under content.
func (s *Service) Token(ctx context.Context, creds Credentials) (string, error) {
	var body struct {
		Content struct {
			Token string `json:"token"`
		} `json:"content"`
	}
	if err := s.api.PostJSON(ctx, "/Auth/token", creds, &body); err != nil {
		return "", err
	}
	if body.Content.Token == "" {
		return "", interrors.ErrInvalidToken
	}
	return body.Content.Token, nil
}

// Login resolves a token, stores it, and opportunistically refreshes the
// cached profile using the identity decoded from the token. A profile
// fetch failure does not fail the login; the token alone is a usable
// session. The session is saved durably before returning so the caller
// can navigate away immediately.
func (s *Service) Login(ctx context.Context, store *session.Store, creds Credentials) (*users.User, error) {
	token, err := s.Token(ctx, creds)
	if err != nil {
		return nil, err
	}
	store.SetToken(token)

	var profile *users.User
	if role, ok := store.Role(); ok {
		profile, err = s.users.ByID(ctx, role.ID)
		if err != nil {
			log.Err(err).Msg("authn: profile refresh after login failed")
		} else {
			store.SetUser(profile)
		}
	}

	if err := store.Save(ctx); err != nil {
		return profile, err
	}
	return profile, nil
}
