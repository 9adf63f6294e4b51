package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"testing"

	"quiz-session/internal/config"
	"quiz-session/internal/domain"
	"quiz-session/internal/dto"
	"quiz-session/internal/logger"
	"quiz-session/internal/middleware"
	"quiz-session/internal/repository"
	"quiz-session/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{Level: "info", Env: "test"}); err != nil {
		log.Fatalf("Failed to initialize logger for handler tests: %v", err)
	}
	os.Exit(m.Run())
}

// MockClient is a mock implementation of quizservice.Client
type MockClient struct {
	mock.Mock
}

func (m *MockClient) GenerateQuiz(ctx context.Context, urls []string) (*domain.QuizPayload, error) {
	args := m.Called(ctx, urls)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuizPayload), args.Error(1)
}

func (m *MockClient) GetHistory(ctx context.Context) ([]domain.HistoryEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HistoryEntry), args.Error(1)
}

func (m *MockClient) GetQuiz(ctx context.Context, quizID int64) (*domain.QuizPayload, error) {
	args := m.Called(ctx, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuizPayload), args.Error(1)
}

func testPayload() *domain.QuizPayload {
	return &domain.QuizPayload{
		ID:      5,
		Title:   "The Moon",
		Summary: "Earth's only natural satellite.",
		Questions: []domain.Question{
			{
				Prompt:      "How long is a lunar month?",
				Options:     []string{"27 days", "29.5 days", "31 days"},
				Answer:      "29.5 days",
				Difficulty:  "medium",
				Explanation: "A synodic month averages 29.5 days.",
			},
		},
	}
}

// newTestApp wires a fiber app the way cmd/api does, against a mocked
// remote client but with real session machinery.
func newTestApp(client *MockClient) *fiber.App {
	sessions := service.NewSessionService(repository.NewSessionRegistry())
	catalog := service.NewCatalogService(client, sessions, nil, 0)

	catalogHandler := NewCatalogHandler(catalog)
	sessionHandler := NewSessionHandler(sessions)

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	api := app.Group("/api")
	api.Post("/generate", catalogHandler.Generate)
	api.Get("/history", catalogHandler.History)
	api.Get("/quiz/:id", catalogHandler.QuizDetail)
	api.Post("/sessions/:containerID/answers", sessionHandler.SubmitAnswer)
	api.Get("/sessions/:containerID", sessionHandler.Score)
	api.Delete("/sessions/:containerID", sessionHandler.Destroy)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func TestGenerateEndpoint(t *testing.T) {
	client := new(MockClient)
	client.On("GenerateQuiz", mock.Anything, []string{"https://en.wikipedia.org/wiki/Moon"}).
		Return(testPayload(), nil)
	app := newTestApp(client)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/generate", dto.GenerateRequest{
		URLs: []string{"https://en.wikipedia.org/wiki/Moon"},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var view dto.SessionView
	require.NoError(t, json.Unmarshal(raw, &view))
	assert.Equal(t, MainContainerID, view.ContainerID)
	assert.Equal(t, "The Moon", view.Title)
	assert.False(t, view.Score.Visible)
	require.Len(t, view.Questions, 1)
	assert.Len(t, view.Questions[0].Options, 3)
}

func TestGenerateEndpoint_BlankURLs(t *testing.T) {
	client := new(MockClient)
	app := newTestApp(client)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/generate", dto.GenerateRequest{
		URLs: []string{"  \n \n"},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp middleware.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &errResp))
	assert.Equal(t, string(domain.CodeInvalidInput), errResp.Code)
	assert.Equal(t, "inline", errResp.Details["display"])
	client.AssertNotCalled(t, "GenerateQuiz", mock.Anything, mock.Anything)
}

func TestHistoryEndpoint_Empty(t *testing.T) {
	client := new(MockClient)
	client.On("GetHistory", mock.Anything).Return([]domain.HistoryEntry{}, nil)
	app := newTestApp(client)

	resp, raw := doJSON(t, app, http.MethodGet, "/api/history", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var table dto.HistoryTableView
	require.NoError(t, json.Unmarshal(raw, &table))
	assert.True(t, table.Empty)
	assert.Equal(t, "No history found.", table.EmptyMessage)
}

func TestQuizDetailEndpoint_ModalErrorDisplay(t *testing.T) {
	client := new(MockClient)
	client.On("GetQuiz", mock.Anything, int64(9)).
		Return(nil, domain.NewQuizNotFoundError(9))
	app := newTestApp(client)

	resp, raw := doJSON(t, app, http.MethodGet, "/api/quiz/9", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var errResp middleware.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &errResp))
	assert.Equal(t, string(domain.CodeQuizNotFound), errResp.Code)
	assert.Equal(t, "alert", errResp.Details["display"])
}

func TestAnswerFlowOverHTTP(t *testing.T) {
	client := new(MockClient)
	client.On("GetQuiz", mock.Anything, int64(5)).Return(testPayload(), nil)
	app := newTestApp(client)

	// Open the quiz in the modal container.
	resp, _ := doJSON(t, app, http.MethodGet, "/api/quiz/5", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Wrong answer: the correct option is highlighted, the panel reveals.
	resp, raw := doJSON(t, app, http.MethodPost, "/api/sessions/modal-body/answers",
		dto.SubmitAnswerRequest{QuestionIndex: 0, OptionIndex: 0})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result dto.AnswerResultView
	require.NoError(t, json.Unmarshal(raw, &result))
	assert.False(t, result.Correct)
	assert.Equal(t, 1, result.HighlightIndex)
	assert.True(t, result.OptionsLocked)
	assert.True(t, result.Score.Visible)
	assert.Equal(t, "0 / 1", result.Score.Display)

	// Double-fire on the same question is rejected with a conflict.
	resp, raw = doJSON(t, app, http.MethodPost, "/api/sessions/modal-body/answers",
		dto.SubmitAnswerRequest{QuestionIndex: 0, OptionIndex: 1})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var errResp middleware.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &errResp))
	assert.Equal(t, string(domain.CodeAlreadyAnswered), errResp.Code)

	// The score is unchanged.
	resp, raw = doJSON(t, app, http.MethodGet, "/api/sessions/modal-body", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var score dto.ScoreView
	require.NoError(t, json.Unmarshal(raw, &score))
	assert.Equal(t, 1, score.Attempted)
	assert.Equal(t, 0, score.Correct)
}

func TestDestroyEndpoint(t *testing.T) {
	client := new(MockClient)
	client.On("GetQuiz", mock.Anything, int64(5)).Return(testPayload(), nil)
	app := newTestApp(client)

	resp, _ := doJSON(t, app, http.MethodGet, "/api/quiz/5", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodDelete, "/api/sessions/modal-body", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/api/sessions/modal-body", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
