// Package render builds structural view descriptions for quiz questions.
// Rendering is pure: it never touches session state, and every interactive
// element gets a deterministic identifier that cannot collide across
// containers showing the same payload at the same time.
package render

import (
	"fmt"
	"strings"

	"quiz-session/internal/domain"
	"quiz-session/internal/dto"
)

// EncodeToken maps an arbitrary container identifier to an identifier-safe
// token. ASCII letters, digits and '-' pass through; every other byte
// (including '_', which doubles as the escape lead) is hex-escaped. The
// encoding is injective, so distinct container IDs can never produce
// colliding element IDs, whatever characters they contain.
func EncodeToken(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, c := range []byte(s) {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-':
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "_%02x", c)
		}
	}
	return b.String()
}

// QuestionID returns the element ID of a question unit.
func QuestionID(containerID string, questionIndex int) string {
	return fmt.Sprintf("question-%d-%s", questionIndex, EncodeToken(containerID))
}

// OptionID returns the element ID of one option within a question.
func OptionID(containerID string, questionIndex, optionIndex int) string {
	return fmt.Sprintf("option-%d-%d-%s", questionIndex, optionIndex, EncodeToken(containerID))
}

// AnswerPanelID returns the element ID of a question's hidden
// answer/explanation panel.
func AnswerPanelID(containerID string, questionIndex int) string {
	return fmt.Sprintf("answer-%d-%s", questionIndex, EncodeToken(containerID))
}

// FormatScore renders the score indicator text, e.g. "2 / 3".
func FormatScore(correct, total int) string {
	return fmt.Sprintf("%d / %d", correct, total)
}

// RenderQuestion produces the interactive unit description for one
// question. Option text travels only as display labels and structured
// OptionRef data; it is never embedded into identifiers or handler
// arguments, so quotes and control characters in options need no
// escaping anywhere.
func RenderQuestion(q domain.Question, questionIndex int, containerID string) dto.QuestionView {
	options := make([]dto.OptionView, len(q.Options))
	for i, opt := range q.Options {
		options[i] = dto.OptionView{
			ID:    OptionID(containerID, questionIndex, i),
			Label: opt,
			Ref: dto.OptionRef{
				ContainerID:   containerID,
				QuestionIndex: questionIndex,
				OptionIndex:   i,
			},
		}
	}

	difficulty := domain.ParseDifficulty(q.Difficulty)

	return dto.QuestionView{
		ID:         QuestionID(containerID, questionIndex),
		Number:     questionIndex + 1,
		Prompt:     fmt.Sprintf("Q%d: %s", questionIndex+1, q.Prompt),
		Difficulty: difficulty.String(),
		BadgeClass: difficulty.BadgeClass(),
		Options:    options,
		AnswerPanel: dto.AnswerPanelView{
			ID:            AnswerPanelID(containerID, questionIndex),
			Hidden:        true,
			CorrectAnswer: q.Answer,
			Explanation:   q.Explanation,
		},
	}
}
