package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/odoo-term/odterm/internal/domain"
	"golang.org/x/term"
)

// Writer implements domain.OutputWriter.
type Writer struct {
	out           io.Writer
	pagerDisabled bool
	pagerOverride string
	configGetter  func(string) (string, bool)
	envGetter     func(string) string
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithPagerDisabled disables the pager.
func WithPagerDisabled() WriterOption {
	return func(w *Writer) {
		w.pagerDisabled = true
	}
}

// WithPagerOverride sets a pager command override.
func WithPagerOverride(cmd string) WriterOption {
	return func(w *Writer) {
		w.pagerOverride = cmd
	}
}

// WithConfigGetter sets the config getter function.
func WithConfigGetter(fn func(string) (string, bool)) WriterOption {
	return func(w *Writer) {
		w.configGetter = fn
	}
}

// WithEnvGetter sets the environment variable getter function.
func WithEnvGetter(fn func(string) string) WriterOption {
	return func(w *Writer) {
		w.envGetter = fn
	}
}

// NewWriter creates a new Writer that writes to stdout.
func NewWriter(opts ...WriterOption) *Writer {
	return NewWriterTo(os.Stdout, opts...)
}

// NewWriterTo creates a new Writer that writes to the specified writer.
func NewWriterTo(out io.Writer, opts ...WriterOption) *Writer {
	w := &Writer{
		out:       out,
		envGetter: os.Getenv,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (n int, err error) {
	return w.out.Write(p)
}

// Printf formats and prints to the output.
func (w *Writer) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(w.out, format, args...)
}

// Println prints a line to the output.
func (w *Writer) Println(args ...any) (int, error) {
	return fmt.Fprintln(w.out, args...)
}

// Pager displays content through a pager if appropriate.
//
// Precedence:
//  1. pager disabled → direct output
//  2. output not a TTY → direct output
//  3. override → uses override, "cat" bypasses
//  4. config pager → uses configured pager, "cat" bypasses
//  5. $PAGER env var → uses env pager, "cat" bypasses
//  6. Default: "less -FRSX"
func (w *Writer) Pager(content string) {
	if w.pagerDisabled {
		fmt.Fprint(w.out, content)
		return
	}

	f, ok := w.out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(w.out, content)
		return
	}

	if w.pagerOverride != "" {
		w.page(w.pagerOverride, content)
		return
	}

	if w.configGetter != nil {
		if configPager, ok := w.configGetter("pager"); ok && configPager != "" {
			w.page(configPager, content)
			return
		}
	}

	if w.envGetter != nil {
		if envPager := w.envGetter("PAGER"); envPager != "" {
			w.page(envPager, content)
			return
		}
	}

	runPager(w.out, "less", []string{"-FRSX"}, content)
}

func (w *Writer) page(pagerCmd, content string) {
	if isBypassPager(pagerCmd) {
		fmt.Fprint(w.out, content)
		return
	}
	runPagerCmd(w.out, pagerCmd, content)
}

// Verify Writer implements domain.OutputWriter
var _ domain.OutputWriter = (*Writer)(nil)
