// Package prompt reads shell input lines.
//
// On a terminal each line is edited by a small Bubble Tea program with
// history navigation. Piped input is read line by line without echo.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// ErrInterrupted is returned by ReadLine when Ctrl+C is pressed at the prompt.
var ErrInterrupted = errors.New("prompt: interrupted")

// Reader reads lines from the user and remembers what was entered.
type Reader struct {
	in          io.Reader
	out         io.Writer
	prompt      string
	history     []string
	interactive bool
	promptStyle *lipgloss.Style
	complete    func(string) []string
	scanner     *bufio.Scanner
}

type Option func(*Reader)

// WithInput reads from in instead of stdin.
func WithInput(in io.Reader) Option {
	return func(r *Reader) { r.in = in }
}

// WithOutput renders to out instead of stdout.
func WithOutput(out io.Writer) Option {
	return func(r *Reader) { r.out = out }
}

// WithHistory seeds the history walked by Up and Down.
func WithHistory(lines []string) Option {
	return func(r *Reader) { r.history = append([]string(nil), lines...) }
}

// WithInteractive forces line editing on or off.
func WithInteractive(interactive bool) Option {
	return func(r *Reader) { r.interactive = interactive }
}

// WithPromptStyle renders the prompt text with s.
func WithPromptStyle(s lipgloss.Style) Option {
	return func(r *Reader) { r.promptStyle = &s }
}

// WithCompleter offers complete(line) as Tab suggestions while typing.
func WithCompleter(complete func(line string) []string) Option {
	return func(r *Reader) { r.complete = complete }
}

// New returns a Reader showing prompt before each line. Line editing is
// enabled when both stdin and stdout are terminals.
func New(prompt string, opts ...Option) *Reader {
	r := &Reader{
		in:          os.Stdin,
		out:         os.Stdout,
		prompt:      prompt,
		interactive: isTerminal(os.Stdin) && isTerminal(os.Stdout),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.scanner = bufio.NewScanner(r.in)
	return r
}

// Interactive reports whether lines are edited on a terminal.
func (r *Reader) Interactive() bool {
	return r.interactive
}

// History returns the lines entered so far, oldest first, including the
// seeded ones.
func (r *Reader) History() []string {
	return append([]string(nil), r.history...)
}

// ReadLine reads the next line. It returns io.EOF at end of input or on
// Ctrl+D at an empty prompt, and ErrInterrupted on Ctrl+C.
// Non-blank lines are added to the history.
func (r *Reader) ReadLine(ctx context.Context) (string, error) {
	line, err := r.read(ctx, field{prompt: r.prompt, history: r.history, complete: r.complete})
	if err != nil {
		return "", err
	}
	r.remember(line)
	return line, nil
}

// Ask reads a single answer to question without touching the history.
func (r *Reader) Ask(ctx context.Context, question string) (string, error) {
	return r.answer(ctx, field{prompt: question})
}

// ReadPassword reads a secret without echoing it. Ctrl+C or a cancelled ctx
// abandons the question.
func (r *Reader) ReadPassword(ctx context.Context, question string) (string, error) {
	return r.answer(ctx, field{prompt: question, secret: true})
}

func (r *Reader) answer(ctx context.Context, f field) (string, error) {
	line, err := r.read(ctx, f)
	if errors.Is(err, ErrInterrupted) {
		return "", fmt.Errorf("%s cancelled: %w", strings.TrimSuffix(strings.TrimSpace(f.prompt), ":"), err)
	}
	return line, err
}

// field describes one line to read.
type field struct {
	prompt   string
	history  []string
	complete func(string) []string
	secret   bool
}

func (r *Reader) read(ctx context.Context, f field) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !r.interactive {
		return r.scan()
	}

	input := textinput.New()
	input.Prompt = f.prompt
	if r.promptStyle != nil {
		input.PromptStyle = *r.promptStyle
	}
	if f.secret {
		input.EchoMode = textinput.EchoNone
	}
	input.Focus()

	p := tea.NewProgram(
		newModel(input, f.history, f.complete),
		tea.WithInput(r.in),
		tea.WithOutput(r.out),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("prompt: %w", err)
	}

	fm := final.(model)
	switch fm.outcome {
	case interrupted:
		return "", ErrInterrupted
	case closed:
		return "", io.EOF
	default:
		return fm.input.Value(), nil
	}
}

func (r *Reader) scan() (string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSuffix(r.scanner.Text(), "\r"), nil
}

// remember appends line unless it is blank or repeats the previous entry.
func (r *Reader) remember(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	if n := len(r.history); n > 0 && r.history[n-1] == line {
		return
	}
	r.history = append(r.history, line)
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
