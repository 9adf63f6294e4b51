package service

import (
	"fmt"
	"sync"

	"quiz-session/internal/domain"
	"quiz-session/internal/dto"
	"quiz-session/internal/logger"
	"quiz-session/internal/render"

	"go.uber.org/zap"
)

// SessionService drives the session registry, the question renderer and
// the answer evaluator to produce fully wired, scorable session views.
// It is the single entry point for both the main view and the modal.
type SessionService interface {
	// RenderSession materializes a session for the payload in the given
	// container. Calling it again for the same container always performs
	// a full reset; no score state carries over.
	RenderSession(payload *domain.QuizPayload, containerID string) (*dto.SessionView, error)

	// SubmitAnswer runs the Unanswered -> Answered transition for one
	// question and returns the display delta.
	SubmitAnswer(containerID string, questionIndex, optionIndex int) (*dto.AnswerResultView, error)

	// Score returns the container's current score indicator state.
	Score(containerID string) (*dto.ScoreView, error)

	// DestroySession tears down the container's session (e.g., when the
	// modal closes).
	DestroySession(containerID string)
}

// sessionService implements SessionService. Payloads are kept per
// container, alongside the registry's scoring state, so the evaluator
// can re-read the question a selection refers to.
type sessionService struct {
	registry domain.SessionRegistry

	mu       sync.Mutex
	payloads map[string]*domain.QuizPayload
}

// NewSessionService creates a new instance of sessionService.
func NewSessionService(registry domain.SessionRegistry) SessionService {
	return &sessionService{
		registry: registry,
		payloads: make(map[string]*domain.QuizPayload),
	}
}

// RenderSession implements SessionService
func (s *sessionService) RenderSession(payload *domain.QuizPayload, containerID string) (*dto.SessionView, error) {
	if payload == nil {
		return nil, domain.NewInvalidInputError("quiz payload is required")
	}
	if containerID == "" {
		return nil, domain.NewInvalidInputError("container ID is required")
	}

	state := s.registry.CreateSession(containerID, len(payload.Questions))

	s.mu.Lock()
	s.payloads[containerID] = payload
	s.mu.Unlock()

	questions := make([]dto.QuestionView, len(payload.Questions))
	for i, q := range payload.Questions {
		questions[i] = render.RenderQuestion(q, i, containerID)
	}

	logger.Get().Info("Rendered quiz session",
		zap.String("container_id", containerID),
		zap.String("title", payload.Title),
		zap.Int("questions", len(payload.Questions)),
	)

	return &dto.SessionView{
		ContainerID: containerID,
		Title:       payload.Title,
		Summary:     payload.Summary,
		EntityTags:  payload.KeyEntities.Flatten(),
		Score: dto.ScoreView{
			Visible: false,
			Total:   state.Total,
			Display: render.FormatScore(0, state.Total),
		},
		Questions:     questions,
		RelatedTopics: payload.RelatedTopics,
	}, nil
}

// SubmitAnswer implements SessionService
func (s *sessionService) SubmitAnswer(containerID string, questionIndex, optionIndex int) (*dto.AnswerResultView, error) {
	s.mu.Lock()
	payload, ok := s.payloads[containerID]
	s.mu.Unlock()
	if !ok {
		return nil, domain.NewSessionNotFoundError(containerID)
	}

	if questionIndex < 0 || questionIndex >= len(payload.Questions) {
		return nil, domain.NewInvalidInputError(
			fmt.Sprintf("question index %d out of range", questionIndex))
	}
	question := payload.Questions[questionIndex]
	if optionIndex < 0 || optionIndex >= len(question.Options) {
		return nil, domain.NewInvalidInputError(
			fmt.Sprintf("option index %d out of range", optionIndex))
	}

	correct, highlight := evaluateSelection(question, optionIndex)

	// The registry's ALREADY_ANSWERED guard is the second line of
	// defense behind the rendering layer disabling answered options.
	state, err := s.registry.RecordAnswer(containerID, questionIndex, correct)
	if err != nil {
		return nil, err
	}

	logger.Get().Debug("Answer recorded",
		zap.String("container_id", containerID),
		zap.Int("question_index", questionIndex),
		zap.Bool("correct", correct),
		zap.Int("attempted", state.Attempted),
	)

	return &dto.AnswerResultView{
		ContainerID:    containerID,
		QuestionIndex:  questionIndex,
		SelectedIndex:  optionIndex,
		Correct:        correct,
		HighlightIndex: highlight,
		RevealPanelID:  render.AnswerPanelID(containerID, questionIndex),
		OptionsLocked:  true,
		Score:          scoreView(state),
	}, nil
}

// Score implements SessionService
func (s *sessionService) Score(containerID string) (*dto.ScoreView, error) {
	state, err := s.registry.GetSession(containerID)
	if err != nil {
		return nil, err
	}
	view := scoreView(state)
	return &view, nil
}

// DestroySession implements SessionService
func (s *sessionService) DestroySession(containerID string) {
	s.registry.DeleteSession(containerID)
	s.mu.Lock()
	delete(s.payloads, containerID)
	s.mu.Unlock()

	logger.Get().Info("Session destroyed", zap.String("container_id", containerID))
}

// scoreView builds the indicator state from a registry snapshot. The
// indicator becomes visible with the first attempt and stays visible.
func scoreView(state *domain.SessionState) dto.ScoreView {
	return dto.ScoreView{
		Visible:   state.Attempted > 0,
		Correct:   state.Correct,
		Attempted: state.Attempted,
		Total:     state.Total,
		Display:   render.FormatScore(state.Correct, state.Total),
	}
}
