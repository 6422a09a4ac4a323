// Package repl drives the interactive shell: read a line, dispatch it,
// report the outcome, repeat.
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/odoo-term/odterm/internal/dispatchers"
	"github.com/odoo-term/odterm/internal/domain"
	"github.com/odoo-term/odterm/internal/ui/prompt"
)

type Deps struct {
	ReadLine      func(ctx context.Context) (string, error)
	Dispatch      func(ctx context.Context, line string, sess *domain.Session) error
	AppendHistory func(lines []string) error
	TrimHistory   func(keep int) (int64, error)
	// HistorySize bounds the stored history after a flush; 0 keeps everything.
	HistorySize int
	Errors      domain.OutputWriter
	ErrorStyle  func(string) string
	Logger      domain.Logger
	// NotifyContext derives the context a single line runs under.
	NotifyContext func(ctx context.Context) (context.Context, context.CancelFunc)
}

// DefaultDeps wires the loop to the application. Each line is cancelled
// by SIGINT.
func DefaultDeps(app *domain.Application, readLine func(context.Context) (string, error), dispatch func(context.Context, string, *domain.Session) error, historySize int) Deps {
	return Deps{
		ReadLine:      readLine,
		Dispatch:      dispatch,
		AppendHistory: app.History.AppendHistory,
		TrimHistory:   app.History.TrimHistory,
		HistorySize:   historySize,
		Errors:        app.Errors,
		ErrorStyle:    app.Styler.Error,
		Logger:        app.Logger,
		NotifyContext: func(ctx context.Context) (context.Context, context.CancelFunc) {
			return signal.NotifyContext(ctx, os.Interrupt)
		},
	}
}

// Loop owns the session and the lines typed since the last flush.
type Loop struct {
	deps    Deps
	session *domain.Session
	pending []string
}

func New(deps Deps) *Loop {
	return &Loop{deps: deps, session: &domain.Session{}}
}

// Session returns the session shared by every line of this loop.
func (l *Loop) Session() *domain.Session {
	return l.session
}

// Pending returns the lines entered since the last flush, oldest first.
func (l *Loop) Pending() []string {
	return append([]string(nil), l.pending...)
}

// Run reads and dispatches lines until exit, end of input or ctx is done.
// Every failed line is reported and the loop goes on. History is flushed
// on the way out.
func (l *Loop) Run(ctx context.Context) error {
	for {
		line, err := l.deps.ReadLine(ctx)
		switch {
		case errors.Is(err, prompt.ErrInterrupted):
			continue
		case errors.Is(err, io.EOF):
			return l.Flush()
		case err != nil:
			l.flushQuietly()
			return err
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		l.pending = append(l.pending, line)

		err = l.runLine(ctx, line)
		if errors.Is(err, dispatchers.ErrExit) {
			return l.Flush()
		}
		if err != nil {
			l.report(err)
		}

		if ctx.Err() != nil {
			l.flushQuietly()
			return ctx.Err()
		}
	}
}

// Exec dispatches lines in order and stops at the first failure, which is
// returned. An exit line ends the batch without error.
func (l *Loop) Exec(ctx context.Context, lines []string) error {
	defer l.flushQuietly()

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		l.pending = append(l.pending, line)

		err := l.runLine(ctx, line)
		if errors.Is(err, dispatchers.ErrExit) {
			return nil
		}
		if err != nil {
			l.report(err)
			return err
		}
	}
	return nil
}

func (l *Loop) runLine(ctx context.Context, line string) error {
	lineCtx, stop := ctx, context.CancelFunc(func() {})
	if l.deps.NotifyContext != nil {
		lineCtx, stop = l.deps.NotifyContext(ctx)
	}
	defer stop()

	if l.deps.Logger != nil {
		l.deps.Logger.Debug("repl: %s", line)
	}

	err := l.deps.Dispatch(lineCtx, line, l.session)
	if err != nil && lineCtx.Err() != nil && ctx.Err() == nil {
		return fmt.Errorf("interrupted: %w", lineCtx.Err())
	}
	return err
}

func (l *Loop) report(err error) {
	if l.deps.Logger != nil {
		l.deps.Logger.Warn("repl: %v", err)
	}
	msg := "Error: " + err.Error()
	if l.deps.ErrorStyle != nil {
		msg = l.deps.ErrorStyle(msg)
	}
	_, _ = l.deps.Errors.Println(msg)
}

// Flush stores the pending lines and trims the stored history.
func (l *Loop) Flush() error {
	if len(l.pending) == 0 {
		return nil
	}
	if err := l.deps.AppendHistory(l.pending); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	l.pending = nil

	if l.deps.HistorySize > 0 && l.deps.TrimHistory != nil {
		removed, err := l.deps.TrimHistory(l.deps.HistorySize)
		if err != nil {
			return fmt.Errorf("trim history: %w", err)
		}
		if removed > 0 && l.deps.Logger != nil {
			l.deps.Logger.Debug("repl: trimmed %d history lines", removed)
		}
	}
	return nil
}

func (l *Loop) flushQuietly() {
	if err := l.Flush(); err != nil && l.deps.Logger != nil {
		l.deps.Logger.Error("repl: %v", err)
	}
}
