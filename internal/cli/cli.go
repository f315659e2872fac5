// Package cli implements the quizbox command line.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

// Process exit codes returned by Run.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Command is one quizbox subcommand.
type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, stdout, stderr io.Writer) int
}

// handler runs a command after help handling.
type handler func(cmd *Command, args []string, stdout, stderr io.Writer) int

// Run dispatches args to a command and returns the exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}
	if isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}
	for _, cmd := range commands {
		if cmd.Name == args[0] {
			return cmd.Run(args[1:], stdout, stderr)
		}
	}
	fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
	printUsage(stderr)
	return ExitUsage
}

func isHelpArg(arg string) bool {
	return arg == "-h" || arg == "--help" || arg == "help"
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  quizbox <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nUse \"quizbox <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

// sourceFlags are shared by every command that reads a question set.
type sourceFlags struct {
	configPath string
	questions  string
}

// newFlagSet returns a flag set for cmd with the shared source flags bound.
func newFlagSet(cmd *Command, stderr io.Writer, src *sourceFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&src.configPath, "config", "", "Path to quizbox.yaml (default: search ./config and .)")
	fs.StringVar(&src.questions, "questions", "", "Question set file (default: configured file or built-in set)")
	return fs
}

// parseFlags parses args and rejects positional arguments. When ok is false
// the command should return code.
func parseFlags(cmd *Command, fs *flag.FlagSet, args []string, stdout, stderr io.Writer) (code int, ok bool) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printCommandUsage(cmd, stdout)
			return ExitOK, false
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	return ExitOK, true
}

func command(name, summary string, usage []string, run handler) *Command {
	cmd := &Command{Name: name, Summary: summary, Usage: usage}
	cmd.Run = func(args []string, stdout, stderr io.Writer) int {
		for _, arg := range args {
			if arg == "-h" || arg == "--help" {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
		}
		return run(cmd, args, stdout, stderr)
	}
	return cmd
}

var commands = []*Command{
	command("play", "Play the quiz", []string{
		"quizbox play [--questions <path>] [--ui auto|tui|plain] [--no-color] [--audio-dir <dir>] [--audio <name>]",
	}, runPlay),
	command("validate", "Validate a question set file", []string{
		"quizbox validate --questions <path>",
	}, runValidate),
	command("questions", "List questions with their correct answers", []string{
		"quizbox questions [--questions <path>]",
	}, runQuestions),
}
