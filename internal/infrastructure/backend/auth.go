package backend

import (
	"context"
	"encoding/json"
	"net/http"
)

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	UserID          string `json:"user_id"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// SignIn verifies credentials against the authentication provider and
// returns the raw user document. Credential checks never happen locally.
func (c *Client) SignIn(ctx context.Context, email, password string) (json.RawMessage, error) {
	var result envelope

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(&signInRequest{Email: email, Password: password}).
		SetResult(&result).
		Post("/auth/sign-in")
	if err != nil {
		c.log.Warnf("Failed to reach auth provider: %+v", err)
		return nil, ErrUnavailable
	}
	if resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden {
		return nil, ErrInvalidCredentials
	}
	if resp.IsError() {
		c.log.Warnf("Auth provider returned %d on sign-in", resp.StatusCode())
		return nil, ErrUnavailable
	}

	return result.Data, nil
}

// ChangePassword forwards a password change to the authentication
// provider. The provider clears the must_change_password flag on success.
func (c *Client) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(&changePasswordRequest{
			UserID:          userID,
			CurrentPassword: currentPassword,
			NewPassword:     newPassword,
		}).
		Post("/auth/change-password")
	if err != nil {
		c.log.Warnf("Failed to reach auth provider: %+v", err)
		return ErrUnavailable
	}
	if resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden {
		return ErrInvalidCredentials
	}
	if resp.IsError() {
		c.log.Warnf("Auth provider returned %d on change-password", resp.StatusCode())
		return ErrUnavailable
	}

	return nil
}
