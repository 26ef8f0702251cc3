package questions

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"qanda-service/internal/common"
	"qanda-service/internal/dbx"
	"qanda-service/internal/server/models"
)

// PostgresRepository needs the full *sql.DB rather than dbx.DBTX: Delete
// runs a transaction spanning the answers and questions tables.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns questions ordered by ascending id, skipping p.Offset rows
// and returning up to p.Limit rows. A nil limit binds SQL NULL, which
// Postgres treats as LIMIT ALL.
func (r *PostgresRepository) List(ctx context.Context, p models.Pagination) ([]models.Question, error) {

	query :=
		`SELECT id, title, content, tags, account_id FROM questions
		 ORDER BY id
		 LIMIT $1 OFFSET $2
		 `

	rows, err := r.db.QueryContext(ctx, query, limitArg(p.Limit), p.Offset)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrQuery, err)
	}
	defer rows.Close()

	result := []models.Question{}
	for rows.Next() {
		q, err := scanQuestion(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, *q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrQuery, err)
	}

	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, nq models.NewQuestion, accountID int64) (*models.Question, error) {

	tags, err := encodeTags(nq.Tags)
	if err != nil {
		return nil, err
	}

	query :=
		`INSERT INTO questions (title, content, tags, account_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, title, content, tags, account_id
		 `

	row := r.db.QueryRowContext(ctx, query, nq.Title, nq.Content, tags, accountID)
	q, err := scanQuestion(row.Scan)
	if err != nil {
		return nil, err
	}

	return q, nil
}

// Update mutates a question conditioned on both id and owner in the
// statement itself; ownership is enforced at the data layer, not only in
// application logic. Zero matched rows (deleted or re-owned since an
// earlier advisory probe) surface as ErrNotFound, never silent success.
func (r *PostgresRepository) Update(ctx context.Context, nq models.NewQuestion, id int64, accountID int64) (*models.Question, error) {

	tags, err := encodeTags(nq.Tags)
	if err != nil {
		return nil, err
	}

	query :=
		`UPDATE questions
		 SET title = $1, content = $2, tags = $3
		 WHERE id = $4 AND account_id = $5
		 RETURNING id, title, content, tags, account_id
		 `

	row := r.db.QueryRowContext(ctx, query, nq.Title, nq.Content, tags, id, accountID)
	q, err := scanQuestion(row.Scan)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("%w: question %d", common.ErrNotFound, id)
		}
		return nil, err
	}

	return q, nil
}

// Delete removes a question conditioned on both id and owner and reports
// whether a row was removed. The question's answers go with it; both
// deletes run in one transaction so a failure leaves everything in place.
func (r *PostgresRepository) Delete(ctx context.Context, id int64, accountID int64) (bool, error) {

	var removed bool

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {

		answersQuery :=
			`DELETE FROM answers
			 WHERE question_id = $1
			   AND EXISTS (SELECT 1 FROM questions WHERE id = $1 AND account_id = $2)
			 `

		if _, err := tx.ExecContext(ctx, answersQuery, id, accountID); err != nil {
			return fmt.Errorf("%w: %v", common.ErrQuery, err)
		}

		res, err := tx.ExecContext(ctx, `DELETE FROM questions WHERE id = $1 AND account_id = $2`, id, accountID)
		if err != nil {
			return fmt.Errorf("%w: %v", common.ErrQuery, err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %v", common.ErrQuery, err)
		}

		removed = affected > 0
		return nil
	})
	if err != nil {
		return false, err
	}

	return removed, nil
}

// IsOwner is a read-only advisory probe used for early rejection with a
// distinct unauthorized status. The authoritative check is the conditioned
// mutation statement in Update/Delete.
func (r *PostgresRepository) IsOwner(ctx context.Context, id int64, accountID int64) (bool, error) {

	query := `SELECT 1 FROM questions WHERE id = $1 AND account_id = $2`

	var one int
	err := r.db.QueryRowContext(ctx, query, id, accountID).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %v", common.ErrQuery, err)
	}

	return true, nil
}

// limitArg converts an optional limit to a SQL bind value (NULL when absent).
func limitArg(limit *int64) any {
	if limit == nil {
		return nil
	}
	return *limit
}

func encodeTags(tags []string) (any, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrQuery, err)
	}
	return b, nil
}

// scanQuestion reads one question row via the provided scan function,
// decoding the jsonb tags column.
func scanQuestion(scan func(dest ...any) error) (*models.Question, error) {
	q := &models.Question{}
	var tags []byte

	err := scan(&q.ID, &q.Title, &q.Content, &tags, &q.AccountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", common.ErrQuery, err)
	}

	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &q.Tags); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrQuery, err)
		}
	}

	return q, nil
}
