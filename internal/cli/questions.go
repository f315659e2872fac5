package cli

import (
	"fmt"
	"io"

	"quizbox/internal/config"
	"quizbox/internal/question"
)

// runQuestions prints the selected set with correct answers marked.
func runQuestions(cmd *Command, args []string, stdout, stderr io.Writer) int {
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
	spec, path, err := loadQuestions(src.questions, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load questions: %v\n", err)
		return ExitError
	}

	writeQuestionList(stdout, spec.Questions)
	fmt.Fprintf(stdout, "\n%d questions from %s, max score %d\n", len(spec.Questions), describeSource(path), question.MaxScore(spec.Questions))
	return ExitOK
}

// writeQuestionList prints each question with its options, marking the
// correct one.
func writeQuestionList(w io.Writer, questions []question.Question) {
	for i, q := range questions {
		header := fmt.Sprintf("%d. %s (%d points)", i+1, q.Prompt, q.Points)
		if q.ID != "" {
			header = fmt.Sprintf("%d. [%s] %s (%d points)", i+1, q.ID, q.Prompt, q.Points)
		}
		fmt.Fprintln(w, header)
		for j, option := range q.Options {
			marker := " "
			if j == q.CorrectIndex {
				marker = "*"
			}
			fmt.Fprintf(w, "   %s %s) %s\n", marker, question.OptionLabel(j), option)
		}
	}
}
