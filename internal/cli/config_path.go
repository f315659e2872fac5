package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"quizbox/internal/config"
	"quizbox/internal/question"
)

// resolveQuestionsPath prefers the flag value over the configured file. An
// empty result selects the built-in set.
func resolveQuestionsPath(flagValue string, cfg *config.Config) (string, error) {
	path := strings.TrimSpace(flagValue)
	if path == "" && cfg != nil {
		path = strings.TrimSpace(cfg.QuestionsFile)
	}
	if path == "" {
		return "", nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve questions path: %w", err)
	}
	return abs, nil
}

// loadQuestions loads the selected question set, or the built-in one.
func loadQuestions(flagValue string, cfg *config.Config) (question.Spec, string, error) {
	path, err := resolveQuestionsPath(flagValue, cfg)
	if err != nil {
		return question.Spec{}, "", err
	}
	spec, err := question.Resolve(path)
	if err != nil {
		return question.Spec{}, path, err
	}
	return spec, path, nil
}

// describeSource names a question source for messages.
func describeSource(path string) string {
	if path == "" {
		return "built-in question set"
	}
	return path
}
