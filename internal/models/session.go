package models

import "time"

// Session is one user's working ledger. Everything in it is discarded when
// the session ends or expires.
type Session struct {
	// ID is the unique identifier for the session (UUID format).
	ID string

	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session is past its expiry at now.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
