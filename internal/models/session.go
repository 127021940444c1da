package models

import "time"

// Session is the persisted remote-auth session. It survives restarts in the
// local store so the operator stays signed in across runs.
type Session struct {
	UID          string    `json:"uid"`
	Email        string    `json:"email"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
