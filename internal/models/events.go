package models

import "time"

type EventType string

const (
	EventTypeUserRegistered   EventType = "user.registered"
	EventTypeQuizCreated      EventType = "quiz.created"
	EventTypeAttemptSubmitted EventType = "attempt.submitted"
	EventTypeBadgeAwarded     EventType = "badge.awarded"
	EventTypeFeedbackCreated  EventType = "feedback.created"
	EventTypeMaterialCreated  EventType = "material.created"
)

type AttemptEvent struct {
	AttemptID string    `json:"attemptId"`
	UserID    string    `json:"userId"`
	QuizID    string    `json:"quizId"`
	Score     int       `json:"score"`
	NewPoints int       `json:"newPoints"`
	Timestamp time.Time `json:"timestamp"`
}

type BadgeEvent struct {
	UserID    string    `json:"userId"`
	Badge     string    `json:"badge"`
	Points    int       `json:"points"`
	Timestamp time.Time `json:"timestamp"`
}

type FeedbackEvent struct {
	FeedbackID string    `json:"feedbackId"`
	AttemptID  string    `json:"attemptId"`
	UserID     string    `json:"userId"`
	Percentage int       `json:"percentage"`
	Timestamp  time.Time `json:"timestamp"`
}
