package quiz

import "quizbox/internal/question"

// Status is the coarse state of a session.
type Status string

const (
	// StatusInProgress means a question is awaiting an answer.
	StatusInProgress Status = "in_progress"
	// StatusCompleted means every question has been passed or exhausted.
	StatusCompleted Status = "completed"
)

// State is a read-only snapshot of a session.
type State struct {
	SessionID           string
	Status              Status
	Index               int
	Total               int
	AttemptsRemaining   int
	AttemptsPerQuestion int
	Score               int
	MaxScore            int
	Question            question.Question
	Notification        string
}

// Completed reports whether the session has finished.
func (s State) Completed() bool {
	return s.Status == StatusCompleted
}

// Number is the 1-based position of the current question.
func (s State) Number() int {
	return s.Index + 1
}

// Outcome describes the effect of one submitted answer.
type Outcome struct {
	Selected          int
	CorrectIndex      int
	Correct           bool
	PointsAwarded     int
	AttemptsRemaining int
	Advanced          bool
	Completed         bool
	Notification      string
}
