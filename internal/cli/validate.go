package cli

import (
	"fmt"
	"io"

	"quizbox/internal/config"
	"quizbox/internal/question"
)

// runValidate checks a question set and prints its size and max score.
func runValidate(cmd *Command, args []string, stdout, stderr io.Writer) int {
	var src sourceFlags
	fs := newFlagSet(cmd, stderr, &src)
	if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
		return code
	}

	cfg, err := config.Load(src.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return ExitError
	}
	spec, _, err := loadQuestions(src.questions, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
		return ExitError
	}

	fmt.Fprintf(stdout, "Questions OK (%d questions, max score %d)\n", len(spec.Questions), question.MaxScore(spec.Questions))
	return ExitOK
}
