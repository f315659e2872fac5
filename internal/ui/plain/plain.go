// Package plain runs the quiz as a line-oriented prompt for terminals that
// cannot host the interactive screen.
package plain

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"quizbox/internal/question"
	"quizbox/internal/quiz"
)

// AudioPlayer is the fire-and-forget audio trigger.
type AudioPlayer interface {
	Play()
	Available() bool
}

// Options configures the plain prompt.
type Options struct {
	Logger zerolog.Logger
}

const helpLine = "Commands: 1-4 or A-D answer, n next, p play audio, r restart, q quit"

// Run reads commands from in until quit, EOF or ctx cancellation. Outcome
// notifications are printed once and then dismissed. Cancellation returns
// promptly even while a read is pending; a line read after it is dropped.
func Run(ctx context.Context, engine *quiz.Engine, player AudioPlayer, opts Options, in io.Reader, out io.Writer) error {
	log := opts.Logger
	writeScreen(out, engine.State(), player)
	readCtx, stopReading := context.WithCancel(ctx)
	defer stopReading()
	lines, readErr := readLines(readCtx, in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(out, "> ")
		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return ctx.Err()
		case next, ok := <-lines:
			if !ok {
				fmt.Fprintln(out)
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := <-readErr; err != nil {
					return fmt.Errorf("read input: %w", err)
				}
				return nil
			}
			line = next
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		input := strings.TrimSpace(line)
		command := strings.ToLower(input)
		changed := false

		switch {
		case input == "":
			continue
		case command == "q" || command == "quit":
			return nil
		case command == "p":
			if player == nil || !player.Available() {
				fmt.Fprintln(out, "Audio unavailable.")
				continue
			}
			player.Play()
		case command == "?" || command == "help":
			fmt.Fprintln(out, helpLine)
		case engine.State().Completed():
			if command != "r" {
				fmt.Fprintln(out, "Quiz completed. Press r to restart or q to quit.")
				continue
			}
			engine.Restart()
			log.Info().Str("session", engine.State().SessionID).Msg("quiz restarted")
			changed = true
		case command == "n":
			if err := engine.Advance(); err != nil {
				return err
			}
			changed = true
		case command == "r":
			fmt.Fprintln(out, "Restart is available once the quiz is completed.")
		default:
			index, err := question.ParseChoice(input, engine.CurrentQuestion())
			if err != nil {
				fmt.Fprintf(out, "Unknown command %q. %s\n", input, helpLine)
				continue
			}
			outcome, err := engine.SubmitAnswer(index)
			if err != nil {
				if errors.Is(err, quiz.ErrInvalidOption) {
					fmt.Fprintf(out, "Option %d does not exist.\n", index+1)
					continue
				}
				return err
			}
			log.Debug().
				Int("option", index).
				Bool("correct", outcome.Correct).
				Int("attempts_remaining", outcome.AttemptsRemaining).
				Bool("completed", outcome.Completed).
				Msg("answer submitted")
			if !outcome.Advanced {
				fmt.Fprintf(out, "Not quite. Attempts Remaining: %d\n", outcome.AttemptsRemaining)
			}
			changed = outcome.Advanced
		}

		if message := engine.Notification(); message != "" {
			fmt.Fprintf(out, "\n*** %s ***\n", message)
			engine.DismissNotification()
		}
		if changed {
			writeScreen(out, engine.State(), player)
		}
	}
}

// readLines scans in on its own goroutine so the command loop can wait on
// ctx as well. The error channel receives the scan result once lines closes.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				readErr <- nil
				return
			}
		}
		readErr <- scanner.Err()
	}()
	return lines, readErr
}

// writeScreen prints the active question or the completion summary.
func writeScreen(out io.Writer, state quiz.State, player AudioPlayer) {
	fmt.Fprintln(out)
	if state.Completed() {
		fmt.Fprintln(out, "Quiz Completed!")
		fmt.Fprintf(out, "Your Score: %d/%d\n", state.Score, state.MaxScore)
		fmt.Fprintln(out, "[r] Restart  [q] Quit")
		return
	}
	audio := "[p] Play Audio"
	if player == nil || !player.Available() {
		audio += " (unavailable)"
	}
	fmt.Fprintln(out, audio)
	fmt.Fprintf(out, "Question %d/%d: %s\n", state.Number(), state.Total, state.Question.Prompt)
	for i, option := range state.Question.Options {
		fmt.Fprintf(out, "  %d. %s) %s\n", i+1, question.OptionLabel(i), option)
	}
	fmt.Fprintf(out, "Attempts Remaining: %d\n", state.AttemptsRemaining)
	fmt.Fprintf(out, "Score: %d\n", state.Score)
	fmt.Fprintln(out, "[n] Next Question")
}
