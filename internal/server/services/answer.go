package services

import (
	"context"

	"qanda-service/internal/common"
	"qanda-service/internal/server/models"
	"qanda-service/internal/server/repositories/answers"
)

// AnswerService handles moderated answer creation and per-question listing.
type AnswerService struct {
	answers   answers.Repository
	moderator Moderator
}

func NewAnswerService(repo answers.Repository, moderator Moderator) *AnswerService {
	return &AnswerService{answers: repo, moderator: moderator}
}

// Add moderates the answer body and persists it for the session's account.
// The referenced question must exist; the repository classifies a broken
// reference from the store's integrity signal.
func (s *AnswerService) Add(ctx context.Context, session *models.Session, na models.NewAnswer) (*models.Answer, error) {
	if na.Content == "" || na.QuestionID == 0 {
		return nil, common.ErrMissingParameters
	}

	censored, err := s.moderator.Check(ctx, na.Content)
	if err != nil {
		return nil, err
	}

	return s.answers.Create(ctx, models.NewAnswer{Content: censored, QuestionID: na.QuestionID}, session.AccountID)
}

// ListByQuestion returns the answers of one question in stable id order.
func (s *AnswerService) ListByQuestion(ctx context.Context, questionID int64, p models.Pagination) ([]models.Answer, error) {
	return s.answers.ListByQuestion(ctx, questionID, p)
}
