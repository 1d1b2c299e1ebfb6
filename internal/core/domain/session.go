package domain

import "time"

// Session is what the dashboard can tell about the stored access token
// without verifying its signature.
type Session struct {
	UserID    string    `json:"userID"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the token expiry has passed at now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
