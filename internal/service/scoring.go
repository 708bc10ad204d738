package service

import "elearning-service/internal/models"

// ScoreQuiz grades an answer sheet against a quiz. A question scores its
// point value on an exact index match and zero otherwise; there is no
// partial credit. Malformed input never fails grading: nil or missing
// entries are simply wrong, entries beyond the question count are ignored,
// and out-of-range option indices match nothing.
func ScoreQuiz(quiz *models.Quiz, answers []*int) int {
	score := 0
	for i, q := range quiz.Questions {
		if i >= len(answers) || answers[i] == nil {
			continue
		}
		if *answers[i] == q.CorrectIndex {
			score += q.PointValue()
		}
	}
	return score
}
