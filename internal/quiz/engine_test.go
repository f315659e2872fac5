package quiz

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"quizbox/internal/question"
)

// uniformSet builds n questions worth points each, with option 1 correct.
func uniformSet(n, points int) []question.Question {
	questions := make([]question.Question, n)
	for i := range questions {
		questions[i] = question.Question{
			ID:           fmt.Sprintf("q%d", i+1),
			Prompt:       fmt.Sprintf("Question %d", i+1),
			Options:      []string{"a", "b", "c", "d"},
			CorrectIndex: 1,
			Points:       points,
		}
	}
	return questions
}

func newEngine(t *testing.T, questions []question.Question, opts ...Option) *Engine {
	t.Helper()
	counter := 0
	opts = append([]Option{WithSessionIDs(func() string {
		counter++
		return fmt.Sprintf("session-%d", counter)
	})}, opts...)
	engine, err := New(questions, opts...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

// TestNewInitialState verifies a fresh session starts at InProgress(0, 3, 0).
func TestNewInitialState(t *testing.T) {
	engine := newEngine(t, uniformSet(3, 10))
	state := engine.State()
	if state.Status != StatusInProgress || state.Index != 0 || state.AttemptsRemaining != DefaultAttempts || state.Score != 0 {
		t.Fatalf("unexpected initial state: %+v", state)
	}
	if state.Total != 3 || state.MaxScore != 30 {
		t.Fatalf("expected total 3 and max 30, got %d/%d", state.Total, state.MaxScore)
	}
	if state.SessionID != "session-1" {
		t.Fatalf("expected session id, got %q", state.SessionID)
	}
}

// TestNewRejectsInvalidSets verifies empty sets and bad correct indices.
func TestNewRejectsInvalidSets(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("expected no questions error, got %v", err)
	}
	bad := uniformSet(2, 10)
	bad[1].CorrectIndex = 4
	if _, err := New(bad); !errors.Is(err, ErrInvalidQuestion) {
		t.Fatalf("expected invalid question error, got %v", err)
	}
}

// TestCorrectAnswerScoresAndAdvances verifies scoring and progression.
func TestCorrectAnswerScoresAndAdvances(t *testing.T) {
	questions := uniformSet(3, 10)
	questions[0].Points = 7
	engine := newEngine(t, questions)

	outcome, err := engine.SubmitAnswer(1)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !outcome.Correct || outcome.PointsAwarded != 7 || !outcome.Advanced {
		t.Fatalf("unexpected outcome: %+v", outcome)
	}
	if outcome.Notification != MessageCorrect {
		t.Fatalf("expected %q, got %q", MessageCorrect, outcome.Notification)
	}
	state := engine.State()
	if state.Score != 7 || state.Index != 1 || state.AttemptsRemaining != DefaultAttempts {
		t.Fatalf("unexpected state: %+v", state)
	}
}

// TestWrongAnswerKeepsQuestion verifies a wrong answer with attempts left stays put.
func TestWrongAnswerKeepsQuestion(t *testing.T) {
	engine := newEngine(t, uniformSet(2, 10))
	outcome, err := engine.SubmitAnswer(0)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if outcome.Correct || outcome.Advanced || outcome.AttemptsRemaining != 2 {
		t.Fatalf("unexpected outcome: %+v", outcome)
	}
	if outcome.Notification != "" || engine.Notification() != "" {
		t.Fatalf("expected no notification, got %q", outcome.Notification)
	}
	if state := engine.State(); state.Index != 0 || state.Score != 0 {
		t.Fatalf("unexpected state: %+v", state)
	}
}

// TestExhaustedAttemptsAdvanceOnce verifies three misses move exactly one question.
func TestExhaustedAttemptsAdvanceOnce(t *testing.T) {
	engine := newEngine(t, uniformSet(3, 10))
	var outcome Outcome
	for i := 0; i < DefaultAttempts; i++ {
		var err error
		outcome, err = engine.SubmitAnswer(2)
		if err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}
	if !outcome.Advanced || outcome.Notification != MessageOutOfAttempts {
		t.Fatalf("unexpected outcome: %+v", outcome)
	}
	state := engine.State()
	if state.Index != 1 {
		t.Fatalf("expected index 1, got %d", state.Index)
	}
	if state.AttemptsRemaining != DefaultAttempts || state.Score != 0 {
		t.Fatalf("unexpected state: %+v", state)
	}
}

// TestExhaustedAttemptsOnLastQuestionCompletes verifies the exhausted path
// shares the bounds check of Advance.
func TestExhaustedAttemptsOnLastQuestionCompletes(t *testing.T) {
	engine := newEngine(t, uniformSet(1, 10))
	for i := 0; i < DefaultAttempts; i++ {
		if _, err := engine.SubmitAnswer(0); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}
	state := engine.State()
	if !state.Completed() || state.Index != 0 {
		t.Fatalf("expected completed at index 0, got %+v", state)
	}
	if _, err := engine.SubmitAnswer(1); !errors.Is(err, ErrCompleted) {
		t.Fatalf("expected completed error, got %v", err)
	}
}

// TestAdvanceCompletesOnLastQuestion verifies completion happens only at the end.
func TestAdvanceCompletesOnLastQuestion(t *testing.T) {
	engine := newEngine(t, uniformSet(2, 10))
	if _, err := engine.SubmitAnswer(0); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := engine.Advance(); err != nil {
		t.Fatalf("advance: %v", err)
	}
	state := engine.State()
	if state.Completed() || state.Index != 1 || state.AttemptsRemaining != DefaultAttempts {
		t.Fatalf("unexpected state after first advance: %+v", state)
	}
	if err := engine.Advance(); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if !engine.State().Completed() {
		t.Fatalf("expected completion on last advance")
	}
	if err := engine.Advance(); !errors.Is(err, ErrCompleted) {
		t.Fatalf("expected completed error, got %v", err)
	}
}

// TestSubmitAnswerRejectsOutOfRange verifies invalid indices leave state untouched.
func TestSubmitAnswerRejectsOutOfRange(t *testing.T) {
	engine := newEngine(t, uniformSet(2, 10))
	before := engine.State()
	for _, index := range []int{-1, 4, 99} {
		if _, err := engine.SubmitAnswer(index); !errors.Is(err, ErrInvalidOption) {
			t.Fatalf("index %d: expected invalid option error, got %v", index, err)
		}
	}
	after := engine.State()
	if after.AttemptsRemaining != before.AttemptsRemaining || after.Index != before.Index || after.Score != before.Score {
		t.Fatalf("state changed: before %+v after %+v", before, after)
	}
}

// TestAllCorrectScenario verifies 8 questions x 10 points yields the derived maximum.
func TestAllCorrectScenario(t *testing.T) {
	engine := newEngine(t, uniformSet(8, 10))
	for i := 0; i < 8; i++ {
		if _, err := engine.SubmitAnswer(1); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}
	state := engine.State()
	if !state.Completed() {
		t.Fatalf("expected completed")
	}
	if state.Score != 80 || state.MaxScore != 80 {
		t.Fatalf("expected 80/80, got %d/%d", state.Score, state.MaxScore)
	}
}

// TestRestartFromCompleted verifies restart returns to InProgress(0, 3, 0).
func TestRestartFromCompleted(t *testing.T) {
	engine := newEngine(t, uniformSet(2, 10))
	for i := 0; i < 2; i++ {
		if _, err := engine.SubmitAnswer(1); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}
	if !engine.State().Completed() {
		t.Fatalf("expected completed")
	}
	engine.Restart()
	state := engine.State()
	if state.Status != StatusInProgress || state.Index != 0 || state.AttemptsRemaining != DefaultAttempts || state.Score != 0 {
		t.Fatalf("unexpected state after restart: %+v", state)
	}
	if state.Notification != "" {
		t.Fatalf("expected notification cleared, got %q", state.Notification)
	}
	if state.SessionID != "session-2" {
		t.Fatalf("expected new session id, got %q", state.SessionID)
	}
}

// TestRestartIssuesFreshUUID verifies the default generator yields a new
// UUID for every session.
func TestRestartIssuesFreshUUID(t *testing.T) {
	engine, err := New(uniformSet(1, 10))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	first := engine.State().SessionID
	if _, err := uuid.Parse(first); err != nil {
		t.Fatalf("expected uuid session id, got %q: %v", first, err)
	}
	engine.Restart()
	second := engine.State().SessionID
	if _, err := uuid.Parse(second); err != nil {
		t.Fatalf("expected uuid session id, got %q: %v", second, err)
	}
	if first == second {
		t.Fatalf("expected restart to change session id, both %q", first)
	}
}

// TestNotificationDismiss verifies the pending message lifecycle.
func TestNotificationDismiss(t *testing.T) {
	engine := newEngine(t, uniformSet(2, 10))
	if _, err := engine.SubmitAnswer(1); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if engine.Notification() != MessageCorrect {
		t.Fatalf("expected pending notification")
	}
	engine.DismissNotification()
	if engine.Notification() != "" {
		t.Fatalf("expected notification cleared")
	}
}

// TestWithAttempts verifies a custom attempt budget.
func TestWithAttempts(t *testing.T) {
	engine := newEngine(t, uniformSet(2, 10), WithAttempts(1))
	outcome, err := engine.SubmitAnswer(0)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !outcome.Advanced || engine.State().AttemptsRemaining != 1 {
		t.Fatalf("expected single-attempt advance, got %+v", outcome)
	}
}

// TestQuestionsAreCopied verifies callers cannot mutate engine state.
func TestQuestionsAreCopied(t *testing.T) {
	questions := uniformSet(1, 10)
	engine := newEngine(t, questions)
	questions[0].Options[1] = "mutated"
	current := engine.CurrentQuestion()
	if current.Options[1] != "b" {
		t.Fatalf("expected engine copy, got %q", current.Options[1])
	}
	current.Options[0] = "changed"
	if engine.Questions()[0].Options[0] != "a" {
		t.Fatalf("expected returned question to be a copy")
	}
}
