// Package services contains the application services behind the CLI
// screens. This file defines the authentication service: registration,
// login and the follow-up identity fetch, logout, and the profile
// operations that re-synchronize the session store.
package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/taskdeck/taskdeck/internal/client/api"
	"github.com/taskdeck/taskdeck/internal/client/models"
	"github.com/taskdeck/taskdeck/internal/client/session"
	"github.com/taskdeck/taskdeck/internal/logging"
)

// Cosmetic upload checks, mirrored from the settings screen. The backend
// enforces the real limits.
const maxProfilePictureBytes = 5 * 1024 * 1024

var (
	ErrNotAnImage    = errors.New("file is not an image")
	ErrImageTooLarge = errors.New("image exceeds 5MB")
)

// AuthAPI is the slice of the REST client the auth service consumes.
type AuthAPI interface {
	Register(ctx context.Context, req models.UserRegister) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.TokenResponse, error)
	Me(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error)
	ChangePassword(ctx context.Context, newPassword string) error
	UploadProfilePicture(ctx context.Context, filename string, file []byte) (*api.UploadResponse, error)
	DeleteProfilePicture(ctx context.Context) error
	Health(ctx context.Context) error
}

// AuthService orchestrates the identity-changing operations and keeps the
// session store consistent with their outcome.
//
// Contract:
//   - Register: create an account; never logs the new account in.
//   - Login: exchange credentials for a token, store it, then fetch the
//     user as a follow-up. Login's own result reflects only the token
//     exchange.
//   - FetchCurrentUser: refresh the stored identity, keeping the token.
//   - Logout: clear the session and its persisted copy; cannot fail.
//   - Profile operations: authenticated calls that re-sync the store with
//     the resulting identity.
//   - Ping: backend liveness probe.
type AuthService interface {
	Register(ctx context.Context, req models.UserRegister) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.TokenResponse, error)
	FetchCurrentUser(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context)
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error)
	ChangePassword(ctx context.Context, newPassword string) error
	UploadProfilePicture(ctx context.Context, filename string, file []byte) (*models.User, error)
	DeleteProfilePicture(ctx context.Context) (*models.User, error)
	Ping(ctx context.Context) error
}

type authService struct {
	api      AuthAPI
	sessions *session.Store
	log      logging.Logger
}

// NewAuthService binds the gateway to the REST client and session store.
func NewAuthService(apiClient AuthAPI, sessions *session.Store, log logging.Logger) AuthService {
	return &authService{api: apiClient, sessions: sessions, log: log}
}

func (a *authService) Register(ctx context.Context, req models.UserRegister) (*models.User, error) {
	return a.api.Register(ctx, req)
}

// Login stores the access token as soon as the token endpoint succeeds,
// then fetches the current user to populate the session. A follow-up
// failure other than 401 is treated as transient: the token stays and the
// identity is fetched lazily later. A 401 is handled by the transport,
// which has already torn the session down by the time we see the error.
func (a *authService) Login(ctx context.Context, username, password string) (*models.TokenResponse, error) {
	token, err := a.api.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	a.sessions.Set(ctx, session.Session{Token: token.AccessToken})

	if _, err := a.FetchCurrentUser(ctx); err != nil {
		if errors.Is(err, api.ErrAuthExpired) {
			a.log.Warn(ctx, "token rejected right after login", "user", username)
		} else {
			a.log.Warn(ctx, "user fetch after login failed, will retry lazily", "err", err)
		}
	}

	return token, nil
}

func (a *authService) FetchCurrentUser(ctx context.Context) (*models.User, error) {
	user, err := a.api.Me(ctx)
	if err != nil {
		return nil, err
	}
	a.sessions.SetUser(ctx, user)
	return user, nil
}

func (a *authService) Logout(ctx context.Context) {
	a.sessions.Clear(ctx)
}

func (a *authService) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error) {
	user, err := a.api.UpdateProfile(ctx, upd)
	if err != nil {
		return nil, err
	}
	a.sessions.SetUser(ctx, user)
	return user, nil
}

func (a *authService) ChangePassword(ctx context.Context, newPassword string) error {
	return a.api.ChangePassword(ctx, newPassword)
}

func (a *authService) UploadProfilePicture(ctx context.Context, filename string, file []byte) (*models.User, error) {
	if len(file) > maxProfilePictureBytes {
		return nil, ErrImageTooLarge
	}
	if !isImage(file) {
		return nil, ErrNotAnImage
	}

	if _, err := a.api.UploadProfilePicture(ctx, filename, file); err != nil {
		return nil, err
	}
	return a.FetchCurrentUser(ctx)
}

func (a *authService) DeleteProfilePicture(ctx context.Context) (*models.User, error) {
	if err := a.api.DeleteProfilePicture(ctx); err != nil {
		return nil, err
	}
	return a.FetchCurrentUser(ctx)
}

func (a *authService) Ping(ctx context.Context) error {
	return a.api.Health(ctx)
}

func isImage(file []byte) bool {
	contentType := http.DetectContentType(file)
	return len(contentType) >= 6 && contentType[:6] == "image/"
}
