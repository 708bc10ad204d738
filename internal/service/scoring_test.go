package service

import (
	"testing"

	"elearning-service/internal/models"
)

func intPtr(v int) *int { return &v }

func twoQuestionQuiz() *models.Quiz {
	return &models.Quiz{
		Title: "Algo Quiz 1",
		Questions: []models.Question{
			{Question: "Q1", Options: []string{"a", "b"}, CorrectIndex: 1, Points: 10},
			{Question: "Q2", Options: []string{"a", "b"}, CorrectIndex: 1, Points: 10},
		},
	}
}

func TestScoreQuiz(t *testing.T) {
	testCases := []struct {
		name     string
		quiz     *models.Quiz
		answers  []*int
		expected int
	}{
		{
			name:     "all correct scores the full total",
			quiz:     twoQuestionQuiz(),
			answers:  []*int{intPtr(1), intPtr(1)},
			expected: 20,
		},
		{
			name:     "one wrong answer earns only the matched question",
			quiz:     twoQuestionQuiz(),
			answers:  []*int{intPtr(1), intPtr(0)},
			expected: 10,
		},
		{
			name:     "unanswered questions are incorrect",
			quiz:     twoQuestionQuiz(),
			answers:  []*int{nil, intPtr(1)},
			expected: 10,
		},
		{
			name:     "short answer sheet never faults",
			quiz:     twoQuestionQuiz(),
			answers:  []*int{intPtr(1)},
			expected: 10,
		},
		{
			name:     "extra answers are ignored",
			quiz:     twoQuestionQuiz(),
			answers:  []*int{intPtr(1), intPtr(1), intPtr(1), intPtr(0)},
			expected: 20,
		},
		{
			name:     "out of range option index matches nothing",
			quiz:     twoQuestionQuiz(),
			answers:  []*int{intPtr(99), intPtr(-3)},
			expected: 0,
		},
		{
			name:     "nil answer sheet scores zero",
			quiz:     twoQuestionQuiz(),
			answers:  nil,
			expected: 0,
		},
		{
			name:     "empty quiz scores zero",
			quiz:     &models.Quiz{},
			answers:  []*int{intPtr(0)},
			expected: 0,
		},
		{
			name: "unset points fall back to the default",
			quiz: &models.Quiz{
				Questions: []models.Question{
					{Options: []string{"a", "b"}, CorrectIndex: 0},
				},
			},
			answers:  []*int{intPtr(0)},
			expected: models.DefaultQuestionPoints,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ScoreQuiz(tc.quiz, tc.answers)
			if got != tc.expected {
				t.Errorf("expected score %d, got %d", tc.expected, got)
			}
		})
	}
}

func TestScoreQuizBounds(t *testing.T) {
	quiz := twoQuestionQuiz()
	total := quiz.TotalScore()

	sheets := [][]*int{
		nil,
		{intPtr(0), intPtr(0)},
		{intPtr(1), intPtr(1)},
		{intPtr(1), nil},
		{intPtr(-1), intPtr(7)},
	}
	for _, answers := range sheets {
		score := ScoreQuiz(quiz, answers)
		if score < 0 || score > total {
			t.Errorf("score %d for %v outside [0, %d]", score, answers, total)
		}
	}
}
