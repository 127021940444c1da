package remote

import (
	"context"
	"time"

	"github.com/arslanameen227/Malik-MoneyFlow/internal/errs"
	"github.com/arslanameen227/Malik-MoneyFlow/internal/models"
)

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	User         struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

func (t *tokenResponse) session(now time.Time) *models.Session {
	return &models.Session{
		UID:          t.User.ID,
		Email:        t.User.Email,
		AccessToken:  t.AccessToken,
		RefreshToken: t.RefreshToken,
		ExpiresAt:    now.Add(time.Duration(t.ExpiresIn) * time.Second),
	}
}

// SignIn exchanges email and password for a session.
func (c *Client) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	var tok tokenResponse
	resp, err := c.request(ctx).
		SetQueryParam("grant_type", "password").
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&tok).
		Post("/auth/v1/token")
	if err != nil {
		return nil, errs.NewRemoteUnavailableError("sign in: " + err.Error())
	}
	if err := c.checkStatus("sign in", resp); err != nil {
		return nil, err
	}
	return tok.session(time.Now()), nil
}

// SignUp registers a new user and returns the initial session.
func (c *Client) SignUp(ctx context.Context, email, password, name string) (*models.Session, error) {
	var tok tokenResponse
	resp, err := c.request(ctx).
		SetBody(map[string]any{
			"email":    email,
			"password": password,
			"data":     map[string]string{"name": name},
		}).
		SetResult(&tok).
		Post("/auth/v1/signup")
	if err != nil {
		return nil, errs.NewRemoteUnavailableError("sign up: " + err.Error())
	}
	if err := c.checkStatus("sign up", resp); err != nil {
		return nil, err
	}
	return tok.session(time.Now()), nil
}

// RefreshSession trades a refresh token for a fresh session.
func (c *Client) RefreshSession(ctx context.Context, refreshToken string) (*models.Session, error) {
	var tok tokenResponse
	resp, err := c.request(ctx).
		SetQueryParam("grant_type", "refresh_token").
		SetBody(map[string]string{"refresh_token": refreshToken}).
		SetResult(&tok).
		Post("/auth/v1/token")
	if err != nil {
		return nil, errs.NewRemoteUnavailableError("refresh session: " + err.Error())
	}
	if err := c.checkStatus("refresh session", resp); err != nil {
		return nil, err
	}
	return tok.session(time.Now()), nil
}

// RequestPasswordReset asks the remote auth service to email a time-limited
// recovery token.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	resp, err := c.request(ctx).
		SetBody(map[string]string{"email": email}).
		Post("/auth/v1/recover")
	if err != nil {
		return errs.NewRemoteUnavailableError("request password reset: " + err.Error())
	}
	return c.checkStatus("request password reset", resp)
}

// ConfirmPasswordReset redeems a recovery token for a new password and
// returns the resulting session.
func (c *Client) ConfirmPasswordReset(ctx context.Context, token, newPassword string) (*models.Session, error) {
	var tok tokenResponse
	resp, err := c.request(ctx).
		SetBody(map[string]string{
			"type":     "recovery",
			"token":    token,
			"password": newPassword,
		}).
		SetResult(&tok).
		Post("/auth/v1/verify")
	if err != nil {
		return nil, errs.NewRemoteUnavailableError("confirm password reset: " + err.Error())
	}
	if err := c.checkStatus("confirm password reset", resp); err != nil {
		return nil, err
	}
	return tok.session(time.Now()), nil
}
