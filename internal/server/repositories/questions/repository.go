package questions

import (
	"context"

	"qanda-service/internal/server/models"
)

type Repository interface {
	List(ctx context.Context, p models.Pagination) ([]models.Question, error)
	Create(ctx context.Context, q models.NewQuestion, accountID int64) (*models.Question, error)
	Update(ctx context.Context, q models.NewQuestion, id int64, accountID int64) (*models.Question, error)
	Delete(ctx context.Context, id int64, accountID int64) (bool, error)
	IsOwner(ctx context.Context, id int64, accountID int64) (bool, error)
}
