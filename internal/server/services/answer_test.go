package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"qanda-service/internal/common"
	"qanda-service/internal/server/models"
)

type fakeAnswersRepo struct {
	created   *models.NewAnswer
	createErr error
	listOut   []models.Answer
}

func (f *fakeAnswersRepo) Create(ctx context.Context, a models.NewAnswer, accountID int64) (*models.Answer, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = &a
	return &models.Answer{ID: 1, Content: a.Content, QuestionID: a.QuestionID, AccountID: accountID}, nil
}

func (f *fakeAnswersRepo) ListByQuestion(ctx context.Context, questionID int64, p models.Pagination) ([]models.Answer, error) {
	return f.listOut, nil
}

func TestAnswerAdd(t *testing.T) {
	repo := &fakeAnswersRepo{}
	svc := NewAnswerService(repo, &profanityModerator{})

	a, err := svc.Add(context.Background(), session(7), models.NewAnswer{Content: "a darn answer", QuestionID: 5})
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if a.Content != "a **** answer" {
		t.Errorf("content not censored: %q", a.Content)
	}
	if a.QuestionID != 5 || a.AccountID != 7 {
		t.Errorf("unexpected answer: %+v", a)
	}
}

func TestAnswerAddModerationFailure(t *testing.T) {
	repo := &fakeAnswersRepo{}
	mod := &profanityModerator{rejectWith: errors.New("screening failed")}
	svc := NewAnswerService(repo, mod)

	_, err := svc.Add(context.Background(), session(7), models.NewAnswer{Content: "REJECT me", QuestionID: 5})
	if err == nil {
		t.Fatal("expected moderation failure to propagate")
	}
	if repo.created != nil {
		t.Fatal("nothing may be persisted when moderation fails")
	}
}

func TestAnswerAddMissingQuestion(t *testing.T) {
	repo := &fakeAnswersRepo{createErr: fmt.Errorf("%w: question 404 does not exist", common.ErrQuery)}
	svc := NewAnswerService(repo, &profanityModerator{})

	_, err := svc.Add(context.Background(), session(7), models.NewAnswer{Content: "orphan", QuestionID: 404})
	if !errors.Is(err, common.ErrQuery) {
		t.Fatalf("want ErrQuery, got %v", err)
	}
}

func TestAnswerAddMissingParameters(t *testing.T) {
	svc := NewAnswerService(&fakeAnswersRepo{}, &profanityModerator{})

	for _, na := range []models.NewAnswer{{}, {Content: "x"}, {QuestionID: 1}} {
		if _, err := svc.Add(context.Background(), session(1), na); !errors.Is(err, common.ErrMissingParameters) {
			t.Errorf("Add(%+v): want ErrMissingParameters, got %v", na, err)
		}
	}
}
