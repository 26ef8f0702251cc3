package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"qanda-service/internal/common"
	"qanda-service/internal/server/models"
	"qanda-service/internal/server/repositories/questions"
)

// QuestionService handles listing and ownership-gated mutation of
// questions. Title and content are independently moderated before any
// persistence side effect.
type QuestionService struct {
	questions questions.Repository
	moderator Moderator
}

func NewQuestionService(repo questions.Repository, moderator Moderator) *QuestionService {
	return &QuestionService{questions: repo, moderator: moderator}
}

// List returns questions in stable id order under the given pagination.
// Listing is read-only and requires no session.
func (s *QuestionService) List(ctx context.Context, p models.Pagination) ([]models.Question, error) {
	return s.questions.List(ctx, p)
}

// Add moderates title and content concurrently and persists the question
// for the session's account. The first moderation failure wins; nothing is
// persisted until both checks have succeeded.
func (s *QuestionService) Add(ctx context.Context, session *models.Session, nq models.NewQuestion) (*models.Question, error) {
	if nq.Title == "" || nq.Content == "" {
		return nil, common.ErrMissingParameters
	}

	censored, err := s.moderate(ctx, nq)
	if err != nil {
		return nil, err
	}

	return s.questions.Create(ctx, censored, session.AccountID)
}

// Update rewrites a question owned by the session's account. The advisory
// ownership probe rejects foreign mutations early with ErrUnauthorized;
// the conditioned UPDATE statement remains the authoritative check, so a
// row that disappears between probe and mutation surfaces as not-found.
func (s *QuestionService) Update(ctx context.Context, session *models.Session, id int64, nq models.NewQuestion) (*models.Question, error) {
	if nq.Title == "" || nq.Content == "" {
		return nil, common.ErrMissingParameters
	}

	owner, err := s.questions.IsOwner(ctx, id, session.AccountID)
	if err != nil {
		return nil, err
	}
	if !owner {
		return nil, common.ErrUnauthorized
	}

	censored, err := s.moderate(ctx, nq)
	if err != nil {
		return nil, err
	}

	return s.questions.Update(ctx, censored, id, session.AccountID)
}

// Delete removes a question owned by the session's account; same
// probe-then-conditioned-statement shape as Update.
func (s *QuestionService) Delete(ctx context.Context, session *models.Session, id int64) error {
	owner, err := s.questions.IsOwner(ctx, id, session.AccountID)
	if err != nil {
		return err
	}
	if !owner {
		return common.ErrUnauthorized
	}

	removed, err := s.questions.Delete(ctx, id, session.AccountID)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("%w: question %d", common.ErrNotFound, id)
	}

	return nil
}

// moderate runs the title and content checks concurrently and waits for
// both outcomes. On the first failure the group context is canceled, which
// aborts the sibling's in-flight HTTP call; Wait still joins both
// goroutines, so no check is left unresolved.
func (s *QuestionService) moderate(ctx context.Context, nq models.NewQuestion) (models.NewQuestion, error) {
	var title, content string

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := s.moderator.Check(ctx, nq.Title)
		if err != nil {
			return err
		}
		title = res
		return nil
	})
	g.Go(func() error {
		res, err := s.moderator.Check(ctx, nq.Content)
		if err != nil {
			return err
		}
		content = res
		return nil
	})

	if err := g.Wait(); err != nil {
		return models.NewQuestion{}, err
	}

	return models.NewQuestion{Title: title, Content: content, Tags: nq.Tags}, nil
}
