package question

import (
	"errors"
	"strconv"
	"strings"
)

// ErrEmptyAnswer indicates that no answer text was given.
var ErrEmptyAnswer = errors.New("empty answer text")

// ErrUnknownChoice indicates the answer does not name any option.
var ErrUnknownChoice = errors.New("answer does not match any option")

// ParseChoice maps typed input to an option index. It accepts a 1-based
// number, an option letter (A-D) or the option text itself.
func ParseChoice(input string, q Question) (int, error) {
	text := strings.TrimSpace(input)
	if text == "" {
		return 0, ErrEmptyAnswer
	}
	if n, err := strconv.Atoi(text); err == nil {
		if n < 1 || n > len(q.Options) {
			return 0, ErrUnknownChoice
		}
		return n - 1, nil
	}
	if len(text) == 1 {
		letter := strings.ToUpper(text)[0]
		if letter >= 'A' && int(letter-'A') < len(q.Options) {
			return int(letter - 'A'), nil
		}
	}
	normalized := NormalizeAnswerText(text)
	for i, option := range q.Options {
		if NormalizeAnswerText(option) == normalized {
			return i, nil
		}
	}
	return 0, ErrUnknownChoice
}

// OptionLabel returns the letter shown next to an option index.
func OptionLabel(index int) string {
	if index < 0 || index >= 26 {
		return "?"
	}
	return string(rune('A' + index))
}
