package app

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/odoo-term/odterm/internal/config"
	"github.com/odoo-term/odterm/internal/domain"
	"github.com/odoo-term/odterm/internal/log"
	"github.com/odoo-term/odterm/internal/odoo"
	"github.com/odoo-term/odterm/internal/paths"
	"github.com/odoo-term/odterm/internal/store"
	"github.com/odoo-term/odterm/internal/store/migrations"
	"github.com/odoo-term/odterm/internal/ui"
	"github.com/odoo-term/odterm/internal/ui/style"
)

// Version is set at build time with -ldflags "-X .../internal/app.Version=...".
var Version = "dev"

// Options configures the application factory.
type Options struct {
	// Pager options
	PagerDisabled bool
	PagerOverride string

	// Log options
	LogEnabled bool
	LogLevel   log.Level

	// Style options
	StyleEnabled bool
	StyleConfig  map[string]string

	// HistoryPath overrides the history database location.
	HistoryPath string
	// ReadlineHistory is imported into a newly created history database.
	ReadlineHistory string

	// Timeout bounds each remote request.
	Timeout time.Duration
}

// DefaultOptions returns the options described by ~/.odootermrc.
func DefaultOptions() Options {
	logEnabled, _ := config.Get("enable_log")
	logLevel, _ := config.Get("log_level")
	styleConfig, _ := config.GetAll()

	return Options{
		LogEnabled:   logEnabled == "true",
		LogLevel:     log.ParseLevel(logLevel),
		StyleEnabled: true,
		StyleConfig:  styleConfig,
		Timeout:      timeoutFromConfig(),

		ReadlineHistory: store.ReadlinePath(),
	}
}

func timeoutFromConfig() time.Duration {
	raw, _ := config.Get("timeout_sec")
	secs, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || secs <= 0 {
		return odoo.DefaultTimeout
	}
	return time.Duration(secs) * time.Second
}

// New creates a new Application with all dependencies wired up.
func New(opts Options) (*domain.Application, error) {
	var logger domain.Logger = log.NopLogger{}
	if opts.LogEnabled {
		// a broken log file must not stop the shell
		if l, err := log.New(paths.LogFilePath(), opts.LogLevel); err == nil {
			log.SetDefault(l)
			logger = l
		}
	}

	historyPath := opts.HistoryPath
	if historyPath == "" {
		historyPath = store.DBPath()
	}
	history, err := store.New(historyPath, migrations.WithReadlineHistory(opts.ReadlineHistory))
	if err != nil {
		_ = logger.Close()
		return nil, err
	}

	style.Init(opts.StyleEnabled, opts.StyleConfig)

	var writerOpts []ui.WriterOption
	if opts.PagerDisabled {
		writerOpts = append(writerOpts, ui.WithPagerDisabled())
	}
	if opts.PagerOverride != "" {
		writerOpts = append(writerOpts, ui.WithPagerOverride(opts.PagerOverride))
	}
	writerOpts = append(writerOpts, ui.WithConfigGetter(config.Get))

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = odoo.DefaultTimeout
	}

	logger.Info("app: starting odterm %s, history at %s", Version, historyPath)

	return &domain.Application{
		Remote:  odoo.NewClient(odoo.WithTimeout(timeout), odoo.WithLogger(logger)),
		History: history,
		Config:  config.NewProvider(),
		Logger:  logger,
		Output:  ui.NewWriter(writerOpts...),
		Errors:  ui.NewWriterTo(os.Stderr, ui.WithPagerDisabled()),
		Styler:  style.NewStyler(),
	}, nil
}

// NewForTesting creates an Application suitable for testing.
// Uses an in-memory store, NopLogger, no styling, and writes everything to out.
func NewForTesting(out io.Writer) (*domain.Application, error) {
	history, err := store.New(":memory:")
	if err != nil {
		return nil, err
	}
	return &domain.Application{
		Remote:  odoo.NewClient(),
		History: history,
		Config:  config.NewProvider(),
		Logger:  log.NopLogger{},
		Output:  ui.NewWriterTo(out, ui.WithPagerDisabled()),
		Errors:  ui.NewWriterTo(out, ui.WithPagerDisabled()),
		Styler:  style.NopStyler{},
	}, nil
}

// Close cleans up application resources.
func Close(app *domain.Application) error {
	if app.Logger != nil {
		_ = app.Logger.Close()
	}
	if app.History != nil {
		return app.History.Close()
	}
	return nil
}
