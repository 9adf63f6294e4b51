package handler

import (
	"errors"
	"strconv"

	"quiz-session/internal/domain"
	"quiz-session/internal/dto"
	"quiz-session/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Default container IDs for the two display surfaces.
const (
	MainContainerID  = "quiz-result"
	ModalContainerID = "modal-body"
)

// CatalogHandler handles quiz generation, history and detail requests.
type CatalogHandler struct {
	catalog service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler instance
func NewCatalogHandler(catalog service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Generate godoc
// @Summary Generate a quiz and open a session
// @Description Generates a quiz from the given source URLs and renders a scorable session into the target container
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body dto.GenerateRequest true "Source URLs and target container"
// @Success 200 {object} dto.SessionView
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /generate [post]
func (h *CatalogHandler) Generate(c *fiber.Ctx) error {
	var req dto.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	containerID := req.ContainerID
	if containerID == "" {
		containerID = MainContainerID
	}

	view, err := h.catalog.Generate(c.Context(), req.URLs, containerID)
	if err != nil {
		return inlineError(err)
	}
	return c.JSON(view)
}

// History godoc
// @Summary Get the quiz history table
// @Description Returns past quizzes as table rows; an empty history yields a single empty-state row
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.HistoryTableView
// @Failure 502 {object} middleware.ErrorResponse
// @Router /history [get]
func (h *CatalogHandler) History(c *fiber.Ctx) error {
	table, err := h.catalog.History(c.Context())
	if err != nil {
		return inlineError(err)
	}
	return c.JSON(table)
}

// QuizDetail godoc
// @Summary Open a stored quiz in a container
// @Description Fetches a stored quiz by ID and renders it as a session, by default into the modal container
// @Tags catalog
// @Produce json
// @Param id path int true "Quiz ID"
// @Param container_id query string false "Target container (defaults to the modal)"
// @Success 200 {object} dto.SessionView
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /quiz/{id} [get]
func (h *CatalogHandler) QuizDetail(c *fiber.Ctx) error {
	quizID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return domain.NewInvalidInputError("Quiz ID must be an integer")
	}

	containerID := c.Query("container_id")
	if containerID == "" {
		containerID = ModalContainerID
	}

	view, err := h.catalog.QuizDetail(c.Context(), quizID, containerID)
	if err != nil {
		return alertError(err)
	}
	return c.JSON(view)
}

// inlineError tags a failure for inline rendering in the main view.
func inlineError(err error) error {
	return displayError(err, "inline")
}

// alertError tags a failure for blocking-alert rendering in the modal.
func alertError(err error) error {
	return displayError(err, "alert")
}

func displayError(err error, display string) error {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.WithContext("display", display)
	}
	return err
}
