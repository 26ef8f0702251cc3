package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qanda-service/internal/common"
	"qanda-service/internal/logging"
	"qanda-service/internal/server/auth"
	"qanda-service/internal/server/models"
	"qanda-service/internal/server/services"
)

// memAccounts is a minimal in-memory account store keyed by email.
type memAccounts struct {
	byEmail map[string]*models.Account
	nextID  int64
}

func newMemAccounts() *memAccounts {
	return &memAccounts{byEmail: map[string]*models.Account{}, nextID: 1}
}

func (m *memAccounts) Create(ctx context.Context, a *models.Account) (*models.Account, error) {
	stored := *a
	stored.ID = m.nextID
	m.nextID++
	m.byEmail[a.Email] = &stored
	return &stored, nil
}

func (m *memAccounts) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	a, ok := m.byEmail[email]
	if !ok {
		return nil, common.ErrNotFound
	}
	return a, nil
}

// memQuestions serves one question owned by account 1.
type memQuestions struct {
	stored models.Question
}

func (m *memQuestions) List(ctx context.Context, p models.Pagination) ([]models.Question, error) {
	return []models.Question{m.stored}, nil
}

func (m *memQuestions) Create(ctx context.Context, q models.NewQuestion, accountID int64) (*models.Question, error) {
	m.stored = models.Question{ID: 1, Title: q.Title, Content: q.Content, Tags: q.Tags, AccountID: accountID}
	return &m.stored, nil
}

func (m *memQuestions) Update(ctx context.Context, q models.NewQuestion, id, accountID int64) (*models.Question, error) {
	m.stored = models.Question{ID: id, Title: q.Title, Content: q.Content, Tags: q.Tags, AccountID: accountID}
	return &m.stored, nil
}

func (m *memQuestions) Delete(ctx context.Context, id, accountID int64) (bool, error) {
	return m.stored.ID == id && m.stored.AccountID == accountID, nil
}

func (m *memQuestions) IsOwner(ctx context.Context, id, accountID int64) (bool, error) {
	return m.stored.AccountID == accountID, nil
}

type memAnswers struct {
	stored []models.Answer
}

func (m *memAnswers) Create(ctx context.Context, a models.NewAnswer, accountID int64) (*models.Answer, error) {
	answer := models.Answer{ID: int64(len(m.stored) + 1), Content: a.Content, QuestionID: a.QuestionID, AccountID: accountID}
	m.stored = append(m.stored, answer)
	return &answer, nil
}

func (m *memAnswers) ListByQuestion(ctx context.Context, questionID int64, p models.Pagination) ([]models.Answer, error) {
	var out []models.Answer
	for _, a := range m.stored {
		if a.QuestionID == questionID {
			out = append(out, a)
		}
	}
	return out, nil
}

type passthroughModerator struct{}

func (passthroughModerator) Check(ctx context.Context, text string) (string, error) {
	return text, nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	codec, err := auth.NewTokenCodec("test-secret", time.Hour)
	require.NoError(t, err)

	logger := logging.NewSlogLogger(slog.New(slog.DiscardHandler))

	return NewServer(
		":0",
		logger,
		auth.NewGuard(codec),
		services.NewAccountService(newMemAccounts(), codec),
		services.NewQuestionService(&memQuestions{}, passthroughModerator{}),
		services.NewAnswerService(&memAnswers{}, passthroughModerator{}),
	)
}

func doRequest(t *testing.T, h http.Handler, method, target, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func registerAndLogin(t *testing.T, h http.Handler) string {
	t.Helper()

	rec := doRequest(t, h, http.MethodPost, "/registration", "", `{"email":"a@b.c","password":"hunter22"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, h, http.MethodPost, "/login", "", `{"email":"a@b.c","password":"hunter22"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp tokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestRegistrationAndLogin(t *testing.T) {
	h := newTestServer(t).routes()
	token := registerAndLogin(t, h)
	assert.NotEmpty(t, token)
}

func TestLoginWrongPassword(t *testing.T) {
	h := newTestServer(t).routes()
	registerAndLogin(t, h)

	rec := doRequest(t, h, http.MethodPost, "/login", "", `{"email":"a@b.c","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestQuestionLifecycle(t *testing.T) {
	h := newTestServer(t).routes()
	token := registerAndLogin(t, h)

	rec := doRequest(t, h, http.MethodPost, "/questions", token,
		`{"title":"first","content":"body","tags":["go"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var created models.Question
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "first", created.Title)

	rec = doRequest(t, h, http.MethodGet, "/questions?limit=10&offset=0", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var listed []models.Question
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)

	rec = doRequest(t, h, http.MethodPut, "/questions/1", token,
		`{"title":"updated","content":"body"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, h, http.MethodDelete, "/questions/1", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMutationWithoutToken(t *testing.T) {
	h := newTestServer(t).routes()

	rec := doRequest(t, h, http.MethodPost, "/questions", "", `{"title":"x","content":"y"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, h, http.MethodDelete, "/questions/1", "garbage-token", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListQuestionsBadPagination(t *testing.T) {
	h := newTestServer(t).routes()

	rec := doRequest(t, h, http.MethodGet, "/questions?limit=10", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, h, http.MethodGet, "/questions?limit=abc&offset=0", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnswerFlow(t *testing.T) {
	h := newTestServer(t).routes()
	token := registerAndLogin(t, h)

	rec := doRequest(t, h, http.MethodPost, "/questions", token,
		`{"title":"q","content":"c"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, h, http.MethodPost, "/answers", token,
		`{"content":"an answer","question_id":1}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, h, http.MethodGet, "/questions/1/answers", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var answers []models.Answer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &answers))
	require.Len(t, answers, 1)
	assert.Equal(t, "an answer", answers[0].Content)
}

func TestMalformedBodyRejected(t *testing.T) {
	h := newTestServer(t).routes()
	token := registerAndLogin(t, h)

	rec := doRequest(t, h, http.MethodPost, "/questions", token, `{not-json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBadPathID(t *testing.T) {
	h := newTestServer(t).routes()
	token := registerAndLogin(t, h)

	rec := doRequest(t, h, http.MethodPut, "/questions/abc", token, `{"title":"t","content":"c"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
