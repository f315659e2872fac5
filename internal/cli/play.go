package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"

	"quizbox/internal/audio"
	"quizbox/internal/config"
	"quizbox/internal/logger"
	"quizbox/internal/quiz"
	"quizbox/internal/ui/plain"
	"quizbox/internal/ui/tui"
)

var (
	stdin    io.Reader = os.Stdin
	runTUI             = tui.Run
	runPlain           = plain.Run
)

// playFlags holds the play command overrides; zero values keep the config.
type playFlags struct {
	sourceFlags
	uiMode    string
	noColor   bool
	audioDir  string
	audioName string
	attempts  int
}

// apply copies explicit flag values over the loaded config.
func (f playFlags) apply(cfg *config.Config) {
	if f.questions != "" {
		cfg.QuestionsFile = f.questions
	}
	if f.uiMode != "" {
		cfg.UI.Mode = f.uiMode
	}
	if f.noColor {
		cfg.UI.NoColor = true
	}
	if f.audioDir != "" {
		cfg.Audio.Dir = f.audioDir
	}
	if f.audioName != "" {
		cfg.Audio.Name = f.audioName
	}
	if f.attempts != 0 {
		cfg.Attempts = f.attempts
	}
}

// runPlay starts a quiz session in the resolved presentation.
func runPlay(cmd *Command, args []string, stdout, stderr io.Writer) int {
	var opts playFlags
	fs := newFlagSet(cmd, stderr, &opts.sourceFlags)
	fs.StringVar(&opts.uiMode, "ui", "", "UI mode: auto|tui|plain")
	fs.BoolVar(&opts.noColor, "no-color", false, "Disable colors in the interactive UI")
	fs.StringVar(&opts.audioDir, "audio-dir", "", "Directory holding the audio asset")
	fs.StringVar(&opts.audioName, "audio", "", "Audio asset name")
	fs.IntVar(&opts.attempts, "attempts", 0, "Attempts allowed per question")
	if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
		return code
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return ExitError
	}
	opts.apply(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Invalid options: %v\n", err)
		return ExitUsage
	}

	decision, err := resolveUIMode(cfg.UI.Mode, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "Invalid options: %v\n", err)
		return ExitUsage
	}
	if decision.warning != "" {
		fmt.Fprintln(stderr, decision.warning)
	}

	logOut, closeLog, err := openLogOutput(cfg.Log.File, decision.useTUI, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to open log file: %v\n", err)
		return ExitError
	}
	defer closeLog()
	log := logger.Setup(cfg.Log.Level, cfg.Log.Format, logOut)

	spec, path, err := loadQuestions(cfg.QuestionsFile, nil)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load questions: %v\n", err)
		return ExitError
	}
	engine, err := quiz.New(spec.Questions, quiz.WithAttempts(cfg.Attempts))
	if err != nil {
		fmt.Fprintf(stderr, "Failed to start quiz: %v\n", err)
		return ExitError
	}
	player := audio.Load(cfg.Audio.Dir, cfg.Audio.Name, log)

	state := engine.State()
	log.Info().
		Str("session", state.SessionID).
		Str("source", describeSource(path)).
		Int("questions", state.Total).
		Int("max_score", state.MaxScore).
		Bool("tui", decision.useTUI).
		Msg("quiz started")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if decision.useTUI {
		err = runTUI(ctx, engine, player, tui.Options{NoColor: cfg.UI.NoColor, Logger: log}, stdin, stdout)
	} else {
		err = runPlain(ctx, engine, player, plain.Options{Logger: log}, stdin, stdout)
	}
	logFinished(log, engine.State())
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(stderr, "Quiz failed: %v\n", err)
		return ExitError
	}
	return ExitOK
}

// openLogOutput picks the log destination. The interactive screen owns the
// terminal, so without a log file its logs are discarded.
func openLogOutput(path string, useTUI bool, stderr io.Writer) (io.Writer, func(), error) {
	if strings.TrimSpace(path) != "" {
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, func() {}, err
		}
		return file, func() { _ = file.Close() }, nil
	}
	if useTUI {
		return io.Discard, func() {}, nil
	}
	return stderr, func() {}, nil
}

func logFinished(log zerolog.Logger, state quiz.State) {
	log.Info().
		Str("session", state.SessionID).
		Bool("completed", state.Completed()).
		Int("score", state.Score).
		Int("max_score", state.MaxScore).
		Msg("quiz finished")
}
