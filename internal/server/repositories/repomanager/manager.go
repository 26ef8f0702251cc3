// Package repomanager owns the database handle: it opens the connection
// pool, wires repository constructors, and applies the embedded goose
// migrations at startup.
package repomanager

import (
	"qanda-service/internal/server/repositories/accounts"
	"qanda-service/internal/server/repositories/answers"
	"qanda-service/internal/server/repositories/questions"
)

type RepositoryManager interface {
	Accounts() accounts.Repository
	Questions() questions.Repository
	Answers() answers.Repository
	Close() error
}
