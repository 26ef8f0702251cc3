package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"qanda-service/internal/server/migrations"
	"qanda-service/internal/server/repositories/accounts"
	"qanda-service/internal/server/repositories/answers"
	"qanda-service/internal/server/repositories/questions"
)

// maxOpenConns bounds the shared connection pool; the pool is the only
// shared mutable resource between request handlers.
const maxOpenConns = 5

type PostgresRepositoryManager struct {
	db        *sql.DB
	accounts  accounts.Repository
	questions questions.Repository
	answers   answers.Repository
}

func (m *PostgresRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresRepositoryManager) Accounts() accounts.Repository {
	return m.accounts
}

func (m *PostgresRepositoryManager) Questions() questions.Repository {
	return m.questions
}

func (m *PostgresRepositoryManager) Answers() answers.Repository {
	return m.answers
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the managed database.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, m.db, "."); err != nil {
		return err
	}
	return nil
}

// NewPostgresRepositoryManager opens the connection pool, verifies the
// connection, builds the repositories, and applies migrations. Any failure
// here is fatal to the process: no degraded mode is defined.
func NewPostgresRepositoryManager(ctx context.Context, dsn string) (*PostgresRepositoryManager, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	db.SetMaxOpenConns(maxOpenConns)

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("db connect error: %w", err)
	}

	m := &PostgresRepositoryManager{
		db:        db,
		accounts:  accounts.NewPostgresRepository(db),
		questions: questions.NewPostgresRepository(db),
		answers:   answers.NewPostgresRepository(db),
	}

	if err := m.RunMigrations(ctx); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
