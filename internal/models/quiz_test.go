package models

import (
	"reflect"
	"testing"
)

func TestQuestionPointValue(t *testing.T) {
	testCases := []struct {
		points   int
		expected int
	}{
		{0, DefaultQuestionPoints},
		{-5, DefaultQuestionPoints},
		{10, 10},
		{25, 25},
	}
	for _, tc := range testCases {
		q := Question{Points: tc.points}
		if got := q.PointValue(); got != tc.expected {
			t.Errorf("PointValue with points=%d: expected %d, got %d", tc.points, tc.expected, got)
		}
	}
}

func TestQuizTotalScoreAndAnswerKey(t *testing.T) {
	quiz := &Quiz{
		Questions: []Question{
			{Options: []string{"a", "b"}, CorrectIndex: 1, Points: 10},
			{Options: []string{"a", "b", "c"}, CorrectIndex: 2},
			{Options: []string{"a", "b"}, CorrectIndex: 0, Points: 5},
		},
	}

	if got := quiz.TotalScore(); got != 25 {
		t.Errorf("expected total 25, got %d", got)
	}
	if got := quiz.AnswerKey(); !reflect.DeepEqual(got, []int{1, 2, 0}) {
		t.Errorf("unexpected answer key %v", got)
	}
}

func TestQuizValidate(t *testing.T) {
	testCases := []struct {
		name    string
		quiz    Quiz
		wantErr bool
	}{
		{
			name: "valid quiz",
			quiz: Quiz{Title: "ok", Questions: []Question{
				{Options: []string{"a", "b"}, CorrectIndex: 1},
			}},
		},
		{
			name:    "missing title",
			quiz:    Quiz{},
			wantErr: true,
		},
		{
			name: "single option",
			quiz: Quiz{Title: "ok", Questions: []Question{
				{Options: []string{"a"}, CorrectIndex: 0},
			}},
			wantErr: true,
		},
		{
			name: "correct index out of range",
			quiz: Quiz{Title: "ok", Questions: []Question{
				{Options: []string{"a", "b"}, CorrectIndex: 2},
			}},
			wantErr: true,
		},
		{
			name: "negative correct index",
			quiz: Quiz{Title: "ok", Questions: []Question{
				{Options: []string{"a", "b"}, CorrectIndex: -1},
			}},
			wantErr: true,
		},
		{
			name: "no questions is allowed",
			quiz: Quiz{Title: "empty"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.quiz.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected an error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestRoleValid(t *testing.T) {
	for _, role := range []Role{RoleStudent, RoleFaculty, RoleAdmin} {
		if !role.Valid() {
			t.Errorf("expected %q to be valid", role)
		}
	}
	for _, role := range []Role{"", "student", "Superuser"} {
		if role.Valid() {
			t.Errorf("expected %q to be invalid", role)
		}
	}
}

func TestFileTypeValid(t *testing.T) {
	for _, ft := range []FileType{FileTypePDF, FileTypeVideo, FileTypeDocument, FileTypeLink, FileTypeOther} {
		if !ft.Valid() {
			t.Errorf("expected %q to be valid", ft)
		}
	}
	if FileType("exe").Valid() {
		t.Error("expected unknown file type to be invalid")
	}
}
