// Package quizservice is the HTTP adapter for the remote quiz
// generation/history service. Only the service's wire shape is assumed;
// non-success responses surface as generic upstream errors without any
// structured error parsing.
package quizservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"quiz-session/internal/domain"
)

// Client defines the operations consumed from the remote service.
type Client interface {
	GenerateQuiz(ctx context.Context, urls []string) (*domain.QuizPayload, error)
	GetHistory(ctx context.Context) ([]domain.HistoryEntry, error)
	GetQuiz(ctx context.Context, quizID int64) (*domain.QuizPayload, error)
}

type httpClient struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a Client against the given base URL, e.g.
// "http://127.0.0.1:8000/api". No timeout is imposed beyond the HTTP
// client's own; a hung call blocks only the container that issued it.
func NewClient(baseURL string, timeout time.Duration) Client {
	return &httpClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// GenerateQuiz implements Client via POST /generate.
func (c *httpClient) GenerateQuiz(ctx context.Context, urls []string) (*domain.QuizPayload, error) {
	body, err := json.Marshal(map[string][]string{"urls": urls})
	if err != nil {
		return nil, domain.NewInternalError("Failed to encode generate request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate", bytes.NewReader(body))
	if err != nil {
		return nil, domain.NewInternalError("Failed to build generate request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, domain.NewUpstreamError("Quiz generation request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewUpstreamError(
			fmt.Sprintf("Quiz generation failed with status %d", resp.StatusCode), nil)
	}

	var payload domain.QuizPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, domain.NewUpstreamError("Failed to decode quiz payload", err)
	}
	return &payload, nil
}

// GetHistory implements Client via GET /history.
func (c *httpClient) GetHistory(ctx context.Context) ([]domain.HistoryEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/history", nil)
	if err != nil {
		return nil, domain.NewInternalError("Failed to build history request", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, domain.NewUpstreamError("History request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewUpstreamError(
			fmt.Sprintf("History request failed with status %d", resp.StatusCode), nil)
	}

	var entries []domain.HistoryEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, domain.NewUpstreamError("Failed to decode history", err)
	}
	return entries, nil
}

// GetQuiz implements Client via GET /quiz/{id}.
func (c *httpClient) GetQuiz(ctx context.Context, quizID int64) (*domain.QuizPayload, error) {
	url := fmt.Sprintf("%s/quiz/%d", c.baseURL, quizID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, domain.NewInternalError("Failed to build quiz request", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, domain.NewUpstreamError("Quiz detail request failed", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		io.Copy(io.Discard, resp.Body)
		return nil, domain.NewQuizNotFoundError(quizID)
	default:
		return nil, domain.NewUpstreamError(
			fmt.Sprintf("Quiz detail request failed with status %d", resp.StatusCode), nil)
	}

	var payload domain.QuizPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, domain.NewUpstreamError("Failed to decode quiz payload", err)
	}
	return &payload, nil
}
