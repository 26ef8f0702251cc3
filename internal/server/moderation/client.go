// Package moderation calls the external bad-words screening API and
// classifies its failures. Only transport-level errors are retried;
// any received HTTP response is classified immediately by status class.
package moderation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"qanda-service/internal/logging"
)

var (
	// ErrTransport marks a network-level failure that survived the retry
	// budget.
	ErrTransport = errors.New("moderation transport error")

	// ErrDecode marks a 2xx response whose body does not match the
	// expected schema.
	ErrDecode = errors.New("moderation response decode error")
)

// APIError is a non-2xx response from the moderation endpoint.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("status: %d, message: %s", e.Status, e.Message)
}

// Client reports whether the request was rejected by the moderation
// endpoint (4xx) as opposed to failing inside it (5xx).
func (e *APIError) Client() bool {
	return e.Status >= 400 && e.Status < 500
}

// badWord describes one flagged word in a successful response.
type badWord struct {
	Original    string `json:"original"`
	Word        string `json:"word"`
	Deviations  int64  `json:"deviations"`
	Info        int64  `json:"info"`
	ReplacedLen int64  `json:"replacedLen"`
}

// badWordsResponse is the success schema of the bad-words endpoint.
type badWordsResponse struct {
	Content         string    `json:"content"`
	BadWordsTotal   int64     `json:"bad_words_total"`
	BadWordsList    []badWord `json:"bad_words_list"`
	CensoredContent string    `json:"censored_content"`
}

// apiMessage is the error schema of the bad-words endpoint.
type apiMessage struct {
	Message string `json:"message"`
}

// Client is a resilient moderation API client. Safe for concurrent use.
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	censorChar string
	maxRetries uint64
	baseDelay  time.Duration
	logger     logging.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (tests, custom
// transports).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRetryPolicy overrides the retry budget: maxRetries re-attempts after
// the first try, exponential backoff starting at baseDelay.
func WithRetryPolicy(maxRetries uint64, baseDelay time.Duration) Option {
	return func(c *Client) {
		c.maxRetries = maxRetries
		c.baseDelay = baseDelay
	}
}

// NewClient builds a moderation client for endpoint using apiKey and the
// censor replacement character. Defaults: 2 retries (3 attempts total),
// 500ms base backoff, 10s request timeout.
func NewClient(endpoint, apiKey, censorChar string, logger logging.Logger, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		endpoint:   endpoint,
		apiKey:     apiKey,
		censorChar: censorChar,
		maxRetries: 2,
		baseDelay:  500 * time.Millisecond,
		logger:     logger.With("module", "moderation"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check submits text to the moderation endpoint and returns the censored
// version. Failure modes:
//   - ErrTransport: network failure after the retry budget is exhausted
//   - *APIError: any non-2xx response (4xx client, 5xx server), no retry
//   - ErrDecode: a 2xx response with an unexpected body
func (c *Client) Check(ctx context.Context, text string) (string, error) {
	var resp *http.Response

	backoff := retry.WithMaxRetries(c.maxRetries, retry.NewExponential(c.baseDelay))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.requestURL(), strings.NewReader(text))
		if err != nil {
			return err
		}
		req.Header.Set("apikey", c.apiKey)

		res, err := c.httpClient.Do(req)
		if err != nil {
			c.logger.Warn(ctx, "moderation call failed, may retry", "error", err.Error())
			return retry.RetryableError(err)
		}

		// A response of any status class ends the retry loop.
		resp = res
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}

	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", transformError(resp.StatusCode, body)
	}

	var parsed badWordsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return parsed.CensoredContent, nil
}

func (c *Client) requestURL() string {
	return c.endpoint + "?censor_character=" + url.QueryEscape(c.censorChar)
}

// transformError rebuilds the endpoint's terse error body into a classified
// APIError, falling back to the raw body when the error schema itself does
// not parse.
func transformError(status int, body []byte) error {
	var msg apiMessage
	if err := json.Unmarshal(body, &msg); err != nil || msg.Message == "" {
		msg.Message = strings.TrimSpace(string(body))
	}
	return &APIError{Status: status, Message: msg.Message}
}
