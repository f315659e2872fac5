package cli

import (
	"io"

	"golang.org/x/term"

	"quizbox/internal/config"
)

const tuiFallbackWarning = "Interactive UI requested but stdout is not a TTY; falling back to plain prompts."

// uiModeDecision records which presentation a play session uses.
type uiModeDecision struct {
	useTUI  bool
	warning string
}

// isTerminal reports whether a writer is a TTY. Tests swap it out.
var isTerminal = fdIsTerminal

// resolveUIMode maps the configured mode and the stdout kind to a
// presentation. Only an explicit tui request on a non-TTY warns.
func resolveUIMode(mode string, stdout io.Writer) (uiModeDecision, error) {
	normalized, err := config.NormalizeUIMode(mode)
	if err != nil {
		return uiModeDecision{}, err
	}
	if normalized == config.UIModePlain {
		return uiModeDecision{}, nil
	}
	if isTerminal(stdout) {
		return uiModeDecision{useTUI: true}, nil
	}
	if normalized == config.UIModeTUI {
		return uiModeDecision{warning: tuiFallbackWarning}, nil
	}
	return uiModeDecision{}, nil
}

// fdIsTerminal checks writers backed by a file descriptor, such as *os.File.
func fdIsTerminal(w io.Writer) bool {
	fder, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(fder.Fd()))
}
