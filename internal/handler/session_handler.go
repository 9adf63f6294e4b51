package handler

import (
	"quiz-session/internal/domain"
	"quiz-session/internal/dto"
	"quiz-session/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SessionHandler handles the interactive session endpoints.
type SessionHandler struct {
	sessions service.SessionService
}

// NewSessionHandler creates a new SessionHandler instance
func NewSessionHandler(sessions service.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// SubmitAnswer godoc
// @Summary Answer a question
// @Description Runs the answer transition for one question; a question is scored at most once per session
// @Tags sessions
// @Accept json
// @Produce json
// @Param containerID path string true "Container ID"
// @Param request body dto.SubmitAnswerRequest true "Selected option"
// @Success 200 {object} dto.AnswerResultView
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /sessions/{containerID}/answers [post]
func (h *SessionHandler) SubmitAnswer(c *fiber.Ctx) error {
	containerID := c.Params("containerID")

	var req dto.SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	result, err := h.sessions.SubmitAnswer(containerID, req.QuestionIndex, req.OptionIndex)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// Score godoc
// @Summary Get a session's score
// @Description Returns the score indicator state for the container's active session
// @Tags sessions
// @Produce json
// @Param containerID path string true "Container ID"
// @Success 200 {object} dto.ScoreView
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{containerID} [get]
func (h *SessionHandler) Score(c *fiber.Ctx) error {
	score, err := h.sessions.Score(c.Params("containerID"))
	if err != nil {
		return err
	}
	return c.JSON(score)
}

// Destroy godoc
// @Summary Tear a session down
// @Description Destroys the container's session, e.g. when the modal closes; unknown containers are a no-op
// @Tags sessions
// @Param containerID path string true "Container ID"
// @Success 204 "No Content"
// @Router /sessions/{containerID} [delete]
func (h *SessionHandler) Destroy(c *fiber.Ctx) error {
	h.sessions.DestroySession(c.Params("containerID"))
	return c.SendStatus(fiber.StatusNoContent)
}
