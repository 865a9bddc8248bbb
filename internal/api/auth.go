// internal/api/auth.go
package api

import (
	"context"
	"net/http"

	"knowledgepulse-web/internal/domain/auth"
)

// Register creates a new account and returns the issued token.
func (c *Client) Register(ctx context.Context, req auth.RegisterRequest) (*auth.TokenResponse, error) {
	var resp auth.TokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login exchanges credentials for a token plus the account's username and
// role.
func (c *Client) Login(ctx context.Context, req auth.LoginRequest) (*auth.TokenResponse, error) {
	var resp auth.TokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ForgotPassword asks the backend to mail a reset link.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/auth/forgot-password", nil, auth.ForgotPasswordRequest{Email: email}, nil)
}

// ResetPassword completes a password reset with the mailed token.
func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) error {
	return c.do(ctx, http.MethodPost, "/auth/reset-password", nil, auth.ResetPasswordRequest{Token: token, Password: newPassword}, nil)
}

// ChangePassword rotates the signed-in account's password.
func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	return c.do(ctx, http.MethodPost, "/auth/change-password", nil, auth.ChangePasswordRequest{OldPassword: oldPassword, NewPassword: newPassword}, nil)
}
