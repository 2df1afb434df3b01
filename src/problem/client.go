package problem

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Protocol-Lattice/codescript/src/telemetry"
)

const (
	opFetchProblem   = "fetch random problem"
	opSubmitFeedback = "submit feedback"
)

var (
	errMissingProblem  = errors.New("missing problem")
	errUntitledProblem = errors.New("problem has no title")
	errEmptyFeedback   = errors.New("empty feedback")
)

// Client talks to the random-problem and feedback endpoints.
type Client struct {
	httpClient  *http.Client
	problemURL  string
	feedbackURL string
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient builds a Client for the two endpoints. A zero timeout leaves
// requests unbounded.
func NewClient(problemURL, feedbackURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: timeout},
		problemURL:  problemURL,
		feedbackURL: feedbackURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type randomProblemResponse struct {
	ImageURLs []string `json:"image_urls"`
	Problem   *struct {
		Title       string    `json:"title"`
		Difficulty  int       `json:"difficulty"`
		Description string    `json:"description"`
		Constraints []string  `json:"constraints"`
		Examples    []Example `json:"examples"`
	} `json:"problem"`
}

// FetchRandomProblem retrieves a new problem. Any failure is a *NetworkError
// and nothing is returned that a caller could partially apply. A body
// without a titled problem counts as malformed.
func (c *Client) FetchRandomProblem(ctx context.Context) (Problem, error) {
	ctx, span := telemetry.StartRequestSpan(ctx, "problem.fetch", http.MethodGet, c.problemURL)
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.problemURL, http.NoBody)
	if err != nil {
		span.SetError(err)
		return Problem{}, &NetworkError{Op: opFetchProblem, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	var payload *randomProblemResponse
	if err := c.do(req, opFetchProblem, span, &payload); err != nil {
		return Problem{}, err
	}
	if payload == nil || payload.Problem == nil {
		return Problem{}, malformed(opFetchProblem, span, errMissingProblem)
	}
	if payload.Problem.Title == "" {
		return Problem{}, malformed(opFetchProblem, span, errUntitledProblem)
	}

	p := Problem{
		Title:       payload.Problem.Title,
		Difficulty:  DifficultyFromCode(payload.Problem.Difficulty),
		Description: payload.Problem.Description,
		Constraints: payload.Problem.Constraints,
		Examples:    PairImages(payload.Problem.Examples, payload.ImageURLs),
	}
	if p.Constraints == nil {
		p.Constraints = []string{}
	}
	if p.Examples == nil {
		p.Examples = []Example{}
	}
	return p, nil
}

// SubmitFeedback posts a submission to the scoring service.
func (c *Client) SubmitFeedback(ctx context.Context, fr FeedbackRequest) (FeedbackResult, error) {
	ctx, span := telemetry.StartRequestSpan(ctx, "feedback.submit", http.MethodPost, c.feedbackURL)
	defer span.End()

	body, err := json.Marshal(fr)
	if err != nil {
		span.SetError(err)
		return FeedbackResult{}, &NetworkError{Op: opSubmitFeedback, Err: fmt.Errorf("marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.feedbackURL, bytes.NewReader(body))
	if err != nil {
		span.SetError(err)
		return FeedbackResult{}, &NetworkError{Op: opSubmitFeedback, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	var result *FeedbackResult
	if err := c.do(req, opSubmitFeedback, span, &result); err != nil {
		return FeedbackResult{}, err
	}
	if result == nil {
		return FeedbackResult{}, malformed(opSubmitFeedback, span, errEmptyFeedback)
	}
	if result.Suggestions == nil {
		result.Suggestions = []string{}
	}
	return *result, nil
}

func malformed(op string, span *telemetry.RequestSpan, err error) error {
	span.SetError(err)
	return &NetworkError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
}

func (c *Client) do(req *http.Request, op string, span *telemetry.RequestSpan, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.SetError(err)
		return &NetworkError{Op: op, Err: fmt.Errorf("perform request: %w", err)}
	}
	defer resp.Body.Close()
	span.SetStatus(resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		msg := string(bytes.TrimSpace(data))
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		err := errors.New(msg)
		span.SetError(err)
		return &NetworkError{Op: op, StatusCode: resp.StatusCode, Err: err}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		span.SetError(err)
		return &NetworkError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
