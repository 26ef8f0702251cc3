package answers

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"qanda-service/internal/common"
	"qanda-service/internal/dbx"
	"qanda-service/internal/server/models"
)

// SQLSTATE for foreign_key_violation: the referenced question must exist
// at creation time.
const foreignKeyViolation = "23503"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, na models.NewAnswer, accountID int64) (*models.Answer, error) {

	query :=
		`INSERT INTO answers (content, question_id, account_id)
		 VALUES ($1, $2, $3)
		 RETURNING id
		 `

	answer := &models.Answer{
		Content:    na.Content,
		QuestionID: na.QuestionID,
		AccountID:  accountID,
	}

	err := r.db.QueryRowContext(ctx, query, na.Content, na.QuestionID, accountID).Scan(&answer.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return nil, fmt.Errorf("%w: question %d does not exist", common.ErrQuery, na.QuestionID)
		}
		return nil, fmt.Errorf("%w: %v", common.ErrQuery, err)
	}

	return answer, nil
}

func (r *PostgresRepository) ListByQuestion(ctx context.Context, questionID int64, p models.Pagination) ([]models.Answer, error) {

	query :=
		`SELECT id, content, question_id, account_id FROM answers
		 WHERE question_id = $1
		 ORDER BY id
		 LIMIT $2 OFFSET $3
		 `

	var limit any
	if p.Limit != nil {
		limit = *p.Limit
	}

	rows, err := r.db.QueryContext(ctx, query, questionID, limit, p.Offset)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrQuery, err)
	}
	defer rows.Close()

	result := []models.Answer{}
	for rows.Next() {
		a := models.Answer{}
		if err := rows.Scan(&a.ID, &a.Content, &a.QuestionID, &a.AccountID); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrQuery, err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrQuery, err)
	}

	return result, nil
}
