// Package api is the HTTP client for the question/answer backend. It
// keeps the session token obtained at login and attaches it to every
// authenticated call.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"qanda-service/internal/server/models"
)

// ErrUnavailable reports that the server could not be reached at all, as
// opposed to the server rejecting the request.
var ErrUnavailable = errors.New("server unavailable")

type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// IsLoggedIn reports whether a login has succeeded in this session.
func (c *Client) IsLoggedIn() bool {
	return c.token != ""
}

// Logout drops the stored session token.
func (c *Client) Logout() {
	c.token = ""
}

type apiError struct {
	Error string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var ae apiError
		if err := json.NewDecoder(resp.Body).Decode(&ae); err == nil && ae.Error != "" {
			return fmt.Errorf("server: %s (status %d)", ae.Error, resp.StatusCode)
		}
		return fmt.Errorf("server: status %d", resp.StatusCode)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) Register(ctx context.Context, email string, password []byte) error {
	return c.do(ctx, http.MethodPost, "/registration", credentials{Email: email, Password: string(password)}, nil)
}

func (c *Client) Login(ctx context.Context, email string, password []byte) error {
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/login", credentials{Email: email, Password: string(password)}, &resp); err != nil {
		return err
	}
	c.token = resp.Token
	return nil
}

func (c *Client) ListQuestions(ctx context.Context, limit, offset int64) ([]models.Question, error) {
	path := "/questions"
	if limit > 0 {
		path += "?limit=" + strconv.FormatInt(limit, 10) + "&offset=" + strconv.FormatInt(offset, 10)
	}

	var questions []models.Question
	if err := c.do(ctx, http.MethodGet, path, nil, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (c *Client) AskQuestion(ctx context.Context, nq models.NewQuestion) (*models.Question, error) {
	var q models.Question
	if err := c.do(ctx, http.MethodPost, "/questions", nq, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

func (c *Client) UpdateQuestion(ctx context.Context, id int64, nq models.NewQuestion) (*models.Question, error) {
	var q models.Question
	if err := c.do(ctx, http.MethodPut, "/questions/"+strconv.FormatInt(id, 10), nq, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

func (c *Client) DeleteQuestion(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/questions/"+strconv.FormatInt(id, 10), nil, nil)
}

func (c *Client) AddAnswer(ctx context.Context, na models.NewAnswer) (*models.Answer, error) {
	var a models.Answer
	if err := c.do(ctx, http.MethodPost, "/answers", na, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) ListAnswers(ctx context.Context, questionID int64) ([]models.Answer, error) {
	var answers []models.Answer
	path := "/questions/" + strconv.FormatInt(questionID, 10) + "/answers"
	if err := c.do(ctx, http.MethodGet, path, nil, &answers); err != nil {
		return nil, err
	}
	return answers, nil
}
