package models

import "time"

// Session is a short-lived, stateless proof of authenticated identity
// derived from a validated token. It is never persisted; its lifetime is
// one request.
type Session struct {
	AccountID int64
	IssuedAt  time.Time
	NotBefore time.Time
	ExpiresAt time.Time
}
