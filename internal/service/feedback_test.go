package service

import "testing"

func TestMessageForBands(t *testing.T) {
	testCases := []struct {
		percentage int
		expected   string
	}{
		{100, "Excellent work! You have mastered this topic."},
		{90, "Excellent work! You have mastered this topic."},
		{89, "Good job! You have a solid understanding."},
		{70, "Good job! You have a solid understanding."},
		{69, "Not bad, but there is room for improvement."},
		{50, "Not bad, but there is room for improvement."},
		{49, "Keep practicing! Review the material and try again."},
		{0, "Keep practicing! Review the material and try again."},
	}

	for _, tc := range testCases {
		got := MessageFor(tc.percentage)
		if got != tc.expected {
			t.Errorf("MessageFor(%d) = %q, expected %q", tc.percentage, got, tc.expected)
		}
	}
}

func TestPercentage(t *testing.T) {
	testCases := []struct {
		name     string
		score    int
		total    int
		expected int
	}{
		{"perfect score", 20, 20, 100},
		{"half score", 10, 20, 50},
		{"rounds down", 1, 3, 33},
		{"rounds up", 2, 3, 67},
		{"rounds half away from zero", 1, 8, 13},
		{"zero score", 0, 20, 0},
		{"empty quiz defined as zero", 0, 0, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Percentage(tc.score, tc.total)
			if got != tc.expected {
				t.Errorf("Percentage(%d, %d) = %d, expected %d", tc.score, tc.total, got, tc.expected)
			}
		})
	}
}

// The worked example from the grading flow: two questions worth 10 each,
// one answered correctly.
func TestGradingScenario(t *testing.T) {
	quiz := twoQuestionQuiz()
	answers := []*int{intPtr(1), intPtr(0)}

	score := ScoreQuiz(quiz, answers)
	if score != 10 {
		t.Fatalf("expected score 10, got %d", score)
	}
	total := quiz.TotalScore()
	if total != 20 {
		t.Fatalf("expected total 20, got %d", total)
	}
	pct := Percentage(score, total)
	if pct != 50 {
		t.Fatalf("expected percentage 50, got %d", pct)
	}
	if msg := MessageFor(pct); msg != "Not bad, but there is room for improvement." {
		t.Errorf("unexpected message %q", msg)
	}
}
