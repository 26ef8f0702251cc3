// Package services contains the business logic of the question/answer
// service: registration and login, moderated ownership-gated question CRUD,
// and moderated answer creation.
package services

import "context"

// Moderator screens free-text fields before they are persisted.
type Moderator interface {
	Check(ctx context.Context, text string) (string, error)
}
