package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quizbox/internal/question"
	"quizbox/internal/quiz"
)

var (
	colorAccent  = lipgloss.Color("33")
	colorMuted   = lipgloss.Color("244")
	colorOption  = lipgloss.Color("27")
	colorCorrect = lipgloss.Color("42")
	colorWrong   = lipgloss.Color("196")
	colorNext    = lipgloss.Color("34")
)

// renderAudioLine renders the Play Audio control.
func renderAudioLine(available, noColor bool) string {
	if !available {
		return stylize("[p] Play Audio (unavailable)", noColor, lipgloss.NewStyle().Foreground(colorMuted))
	}
	return stylize("[p] Play Audio", noColor, lipgloss.NewStyle().Foreground(colorAccent))
}

// renderQuestion renders the prompt, options and counters.
func renderQuestion(state quiz.State, cursor int, noColor bool) string {
	lines := []string{
		stylize(fmt.Sprintf("Question %d/%d", state.Number(), state.Total), noColor, lipgloss.NewStyle().Foreground(colorMuted)),
		"",
		stylize(state.Question.Prompt, noColor, lipgloss.NewStyle().Bold(true)),
		"",
	}
	for i, option := range state.Question.Options {
		lines = append(lines, renderOption(i, option, i == cursor, noColor))
	}
	lines = append(lines, "")
	lines = append(lines,
		fmt.Sprintf("Attempts Remaining: %d", state.AttemptsRemaining),
		fmt.Sprintf("Score: %d", state.Score),
		"",
		stylize("[n] Next Question", noColor, lipgloss.NewStyle().Foreground(colorNext)),
	)
	return strings.Join(lines, "\n")
}

// renderOption renders one selectable option row.
func renderOption(index int, text string, selected, noColor bool) string {
	label := fmt.Sprintf("%d. %s) %s", index+1, question.OptionLabel(index), text)
	if !selected {
		return "  " + label
	}
	style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(colorOption)
	return "> " + stylize(label, noColor, style)
}

// renderSummary renders the completion screen.
func renderSummary(state quiz.State, noColor bool) string {
	lines := []string{
		stylize("Quiz Completed!", noColor, lipgloss.NewStyle().Bold(true).Foreground(colorCorrect)),
		"",
		fmt.Sprintf("Your Score: %d/%d", state.Score, state.MaxScore),
		"",
		stylize("[r] Restart", noColor, lipgloss.NewStyle().Foreground(colorAccent)),
	}
	return strings.Join(lines, "\n")
}

// renderAlert renders the blocking notification box.
func renderAlert(message string, noColor bool) string {
	color := colorWrong
	if message == quiz.MessageCorrect {
		color = colorCorrect
	}
	body := stylize(message, noColor, lipgloss.NewStyle().Bold(true).Foreground(color)) + "\n\n[enter] OK"
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)
	if !noColor {
		box = box.BorderForeground(color)
	}
	return box.Render(body)
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, style lipgloss.Style) string {
	if noColor {
		return text
	}
	return style.Render(text)
}
