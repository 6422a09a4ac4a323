package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/odoo-term/odterm/internal/app"
	"github.com/odoo-term/odterm/internal/cli"
	"github.com/odoo-term/odterm/internal/completions"
	"github.com/odoo-term/odterm/internal/domain"
	"github.com/odoo-term/odterm/internal/log"
	"github.com/odoo-term/odterm/internal/repl"
	"github.com/odoo-term/odterm/internal/ui/prompt"
	"github.com/odoo-term/odterm/internal/ui/style"
	"github.com/odoo-term/odterm/internal/usage"
)

const defaultHistorySize = 500

// processFlags holds the command-line options of the odterm binary.
type processFlags struct {
	noColor     bool
	noPager     bool
	historyFile string
	logLevel    string
	exec        []string
	version     bool
}

func parseFlags(args []string, stderr io.Writer) (processFlags, error) {
	var pf processFlags

	fs := pflag.NewFlagSet("odterm", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: odterm [options]")
		fmt.Fprintln(stderr)
		fmt.Fprint(stderr, fs.FlagUsages())
	}

	fs.BoolVar(&pf.noColor, "no-color", false, "disable colored output")
	fs.BoolVar(&pf.noPager, "no-pager", false, "print long output directly")
	fs.StringVar(&pf.historyFile, "history-file", "", "history database (default ~/.odoo-term-history.db)")
	fs.StringVar(&pf.logLevel, "log-level", "", "log level: debug, info, warn, error (enables logging)")
	fs.StringArrayVarP(&pf.exec, "exec", "e", nil, "run a shell line and exit; repeatable")
	fs.BoolVar(&pf.version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return pf, err
	}
	if fs.NArg() > 0 {
		return pf, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	return pf, nil
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	pf, err := parseFlags(args, os.Stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	if pf.version {
		fmt.Println("odterm", app.Version)
		return 0
	}

	opts := app.DefaultOptions()
	opts.StyleEnabled = term.IsTerminal(int(os.Stdout.Fd())) && !pf.noColor
	opts.PagerDisabled = pf.noPager
	opts.HistoryPath = pf.historyFile
	if pf.logLevel != "" {
		opts.LogEnabled = true
		opts.LogLevel = log.ParseLevel(pf.logLevel)
	}

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer func() { _ = app.Close(application) }()

	historySize := configInt(application.Config, "history_size", defaultHistorySize)
	promptText, _ := application.Config.Get("prompt")

	var completer *completions.Completer
	promptOpts := []prompt.Option{
		prompt.WithHistory(loadHistory(application, historySize)),
		prompt.WithCompleter(func(line string) []string { return completer.Complete(line) }),
	}
	if style.Enabled() {
		promptOpts = append(promptOpts, prompt.WithPromptStyle(style.PromptStyle()))
	}
	reader := prompt.New(promptText, promptOpts...)

	var loop *repl.Loop
	reg := cli.NewRegistry(application, cli.Shell{
		PromptUser:     reader.Ask,
		PromptPassword: reader.ReadPassword,
		Pending:        func() []string { return loop.Pending() },
	})
	completer = completions.New(reg)
	loop = repl.New(repl.DefaultDeps(application, reader.ReadLine, reg.Dispatch, historySize))

	ctx := context.Background()
	if len(pf.exec) > 0 {
		return exitCode(loop.Exec(ctx, pf.exec))
	}

	if err := loop.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// exitCode maps a failed line to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var ue *usage.Error
	if errors.As(err, &ue) {
		return ue.GetExitCode()
	}
	return 1
}

func loadHistory(application *domain.Application, limit int) []string {
	entries, err := application.History.RecentHistory(limit)
	if err != nil {
		application.Logger.Warn("main: load history: %v", err)
		return nil
	}
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.Line
	}
	return lines
}

func configInt(cfg domain.ConfigProvider, key string, def int) int {
	raw, ok := cfg.Get(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return def
	}
	return n
}
