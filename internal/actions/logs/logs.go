package logs

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/odoo-term/odterm/internal/dispatchers"
	"github.com/odoo-term/odterm/internal/domain"
)

const defaultLogLimit = 50

// Logs shows the tail of the odterm log file. With --follow it keeps
// printing new lines until the line is interrupted; with --clear it
// empties the file.
func Logs(deps Deps) dispatchers.HandlerFunc {
	return func(ctx context.Context, args *dispatchers.Arguments, _ *domain.Session) error {
		return logs(ctx, args, deps)
	}
}

func logs(ctx context.Context, args *dispatchers.Arguments, deps Deps) error {
	switch {
	case dispatchers.ValueOr(args, false, "c", "clear"):
		return clear(deps)
	case dispatchers.ValueOr(args, false, "f", "follow"):
		return follow(ctx, deps)
	default:
		return view(dispatchers.ValueOr(args, defaultLogLimit, "n", "limit"), deps)
	}
}

func view(limit int, deps Deps) error {
	logPath := deps.LogFilePath()

	info, err := deps.Stat(logPath)
	if errors.Is(err, os.ErrNotExist) {
		_, _ = deps.Println(deps.Styler.Muted("No log file found at " + logPath))
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat log file: %w", err)
	}
	if info.Size() == 0 {
		_, _ = deps.Println(deps.Styler.Muted("Log file is empty"))
		return nil
	}

	content, err := deps.ReadFile(logPath)
	if err != nil {
		return fmt.Errorf("read log file: %w", err)
	}

	lines := strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
	if limit <= 0 {
		limit = defaultLogLimit
	}
	if len(lines) > limit {
		lines = lines[len(lines)-limit:]
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(colorize(line, deps.Styler))
		b.WriteByte('\n')
	}
	deps.Pager(b.String())
	return nil
}

func follow(ctx context.Context, deps Deps) error {
	logPath := deps.LogFilePath()

	file, err := deps.OpenFile(logPath, os.O_RDONLY|os.O_CREATE, 0600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("seek log file: %w", err)
	}

	_, _ = deps.Println(deps.Styler.Muted("Following logs at " + logPath + " (Ctrl+C to stop)"))

	ticker := time.NewTicker(deps.PollInterval)
	defer ticker.Stop()

	reader := bufio.NewReader(file)
	var partial string
	for {
		chunk, err := reader.ReadString('\n')
		partial += chunk
		if err == nil {
			_, _ = deps.Println(colorize(strings.TrimSuffix(partial, "\n"), deps.Styler))
			partial = ""
			continue
		}
		if err != io.EOF {
			return fmt.Errorf("read log file: %w", err)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func clear(deps Deps) error {
	if err := deps.WriteFile(deps.LogFilePath(), []byte{}, 0600); err != nil {
		return fmt.Errorf("clear log file: %w", err)
	}
	_, _ = deps.Println(deps.Styler.Success("Log file cleared"))
	return nil
}

// colorize styles a "[timestamp] LEVEL: message" line by its level.
func colorize(line string, s domain.Styler) string {
	switch {
	case strings.Contains(line, "] ERROR:"):
		return s.Error(line)
	case strings.Contains(line, "] WARN:"):
		return s.Warning(line)
	case strings.Contains(line, "] INFO:"):
		return s.Info(line)
	case strings.Contains(line, "] DEBUG:"):
		return s.Muted(line)
	default:
		return line
	}
}
