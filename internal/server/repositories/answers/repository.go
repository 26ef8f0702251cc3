package answers

import (
	"context"

	"qanda-service/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, a models.NewAnswer, accountID int64) (*models.Answer, error)
	ListByQuestion(ctx context.Context, questionID int64, p models.Pagination) ([]models.Answer, error)
}
