// Package quiz implements the quiz session state machine: answering,
// scoring, attempt limiting, advancing and restarting.
package quiz

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"quizbox/internal/question"
)

// DefaultAttempts is the number of answers allowed per question.
const DefaultAttempts = 3

// Notification texts produced by SubmitAnswer.
const (
	MessageCorrect       = "Correct!"
	MessageOutOfAttempts = "Wrong answer. Try again next time!"
)

var (
	// ErrNoQuestions indicates an engine was built from an empty set.
	ErrNoQuestions = errors.New("quiz has no questions")
	// ErrInvalidQuestion indicates a question whose correct index is out of range.
	ErrInvalidQuestion = errors.New("correct option out of range")
	// ErrInvalidOption indicates a selected index outside the current options.
	ErrInvalidOption = errors.New("selected option out of range")
	// ErrCompleted indicates a transition on a finished session.
	ErrCompleted = errors.New("quiz already completed")
)

// Engine owns one quiz session. It is not safe for concurrent use; the
// presentation loop that drives it is its only owner.
type Engine struct {
	questions []question.Question
	attempts  int
	maxScore  int
	newID     func() string

	sessionID    string
	current      int
	attemptsLeft int
	score        int
	completed    bool
	notification string
}

// Option configures an Engine.
type Option func(*Engine)

// WithAttempts sets the per-question attempt budget. Values below one are ignored.
func WithAttempts(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.attempts = n
		}
	}
}

// WithSessionIDs overrides the session id generator.
func WithSessionIDs(fn func() string) Option {
	return func(e *Engine) {
		if fn != nil {
			e.newID = fn
		}
	}
}

// New builds an engine over a copy of questions, positioned at the first one.
func New(questions []question.Question, opts ...Option) (*Engine, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	owned := make([]question.Question, len(questions))
	for i, q := range questions {
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			return nil, fmt.Errorf("question %d: %w", i+1, ErrInvalidQuestion)
		}
		owned[i] = q.Clone()
	}
	e := &Engine{
		questions: owned,
		attempts:  DefaultAttempts,
		maxScore:  question.MaxScore(owned),
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.Restart()
	return e, nil
}

// SubmitAnswer records one attempt at the current question.
func (e *Engine) SubmitAnswer(selected int) (Outcome, error) {
	if e.completed {
		return Outcome{}, ErrCompleted
	}
	current := e.questions[e.current]
	if selected < 0 || selected >= len(current.Options) {
		return Outcome{}, fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidOption, selected, len(current.Options))
	}

	outcome := Outcome{Selected: selected, CorrectIndex: current.CorrectIndex}
	if selected == current.CorrectIndex {
		e.score += current.Points
		e.notification = MessageCorrect
		e.advance()
		outcome.Correct = true
		outcome.PointsAwarded = current.Points
		outcome.Advanced = true
	} else {
		e.attemptsLeft--
		if e.attemptsLeft <= 0 {
			e.notification = MessageOutOfAttempts
			e.advance()
			outcome.Advanced = true
		}
	}
	outcome.AttemptsRemaining = e.attemptsLeft
	outcome.Completed = e.completed
	outcome.Notification = e.notification
	return outcome, nil
}

// Advance moves to the next question, or completes the quiz on the last one.
func (e *Engine) Advance() error {
	if e.completed {
		return ErrCompleted
	}
	e.advance()
	return nil
}

// advance is the single transition that leaves a question; it always resets
// the attempt budget.
func (e *Engine) advance() {
	e.attemptsLeft = e.attempts
	if e.current+1 < len(e.questions) {
		e.current++
		return
	}
	e.completed = true
}

// Restart returns the session to its first question with a zero score.
func (e *Engine) Restart() {
	e.sessionID = e.newID()
	e.current = 0
	e.attemptsLeft = e.attempts
	e.score = 0
	e.completed = false
	e.notification = ""
}

// CurrentQuestion returns a copy of the active question. After completion it
// is the last question of the set.
func (e *Engine) CurrentQuestion() question.Question {
	return e.questions[e.current].Clone()
}

// Notification returns the pending outcome message, if any.
func (e *Engine) Notification() string {
	return e.notification
}

// DismissNotification clears the pending outcome message.
func (e *Engine) DismissNotification() {
	e.notification = ""
}

// Questions returns a copy of the question set.
func (e *Engine) Questions() []question.Question {
	out := make([]question.Question, len(e.questions))
	for i, q := range e.questions {
		out[i] = q.Clone()
	}
	return out
}

// State returns a snapshot of the session.
func (e *Engine) State() State {
	status := StatusInProgress
	if e.completed {
		status = StatusCompleted
	}
	return State{
		SessionID:           e.sessionID,
		Status:              status,
		Index:               e.current,
		Total:               len(e.questions),
		AttemptsRemaining:   e.attemptsLeft,
		AttemptsPerQuestion: e.attempts,
		Score:               e.score,
		MaxScore:            e.maxScore,
		Question:            e.questions[e.current].Clone(),
		Notification:        e.notification,
	}
}
