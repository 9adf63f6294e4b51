package service

import "quiz-session/internal/domain"

// evaluateSelection compares a selected option against the question's
// correct answer. It returns whether the selection is correct and, for a
// wrong selection, the index of the option to highlight as the correct
// one. The highlight index is -1 when the answer is absent from the
// options; such a question is unwinnable but still renderable. With
// duplicate options the first match by list order is highlighted.
//
// The comparison is exact string equality and never fails.
func evaluateSelection(q domain.Question, optionIndex int) (correct bool, highlightIndex int) {
	correct = q.IsCorrect(optionIndex)
	if correct {
		return true, -1
	}
	return false, q.CorrectIndex()
}
