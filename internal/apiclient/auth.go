package apiclient

import (
	"context"
	"net/http"

	"github.com/noah-isme/college-portal/internal/models"
)

// AuthAPI covers /auth.
type AuthAPI struct {
	c *Client
}

// Login exchanges credentials for a token. Persisting the token is the caller's job.
func (a *AuthAPI) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	if err := a.c.validate(req); err != nil {
		return nil, err
	}
	var resp models.AuthResponse
	if err := a.c.sendInto(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates an account.
func (a *AuthAPI) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	if err := a.c.validate(req); err != nil {
		return nil, err
	}
	var resp models.AuthResponse
	if err := a.c.sendInto(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me returns the signed-in user.
func (a *AuthAPI) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := a.c.sendResource(ctx, http.MethodGet, "/auth/me", "user", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile edits the signed-in user's profile.
func (a *AuthAPI) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.User, error) {
	var user models.User
	if err := a.c.sendResource(ctx, http.MethodPut, "/auth/profile", "user", update, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ChangePassword rotates the caller's password.
func (a *AuthAPI) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error {
	if err := a.c.validate(req); err != nil {
		return err
	}
	_, err := a.c.send(ctx, http.MethodPost, "/auth/change-password", req)
	return err
}

// Logout ends the backend session.
func (a *AuthAPI) Logout(ctx context.Context) error {
	_, err := a.c.send(ctx, http.MethodPost, "/auth/logout", nil)
	return err
}
