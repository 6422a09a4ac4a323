package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/odoo-term/odterm/internal/paths"
)

// ErrLockTimeout is returned when another odterm keeps the rc file locked.
var ErrLockTimeout = errors.New("config: lock timeout")

var (
	lockWait  = 5 * time.Second
	lockStale = 30 * time.Second
	lockPoll  = 50 * time.Millisecond
)

// Edit rewrites ~/.odootermrc while holding its lock. fn receives the current
// lines and reports whether its result should be written back.
func Edit(fn func(lines []string) ([]string, bool)) error {
	return WithLock(func() error {
		lines, err := ReadLines()
		if err != nil {
			return err
		}

		edited, write := fn(lines)
		if !write {
			return nil
		}
		return WriteLines(edited)
	})
}

// WithLock runs fn while holding ~/.odootermrc.lock, so two shells never
// interleave a read and a write of the rc file.
func WithLock(fn func() error) error {
	rc, err := paths.ConfigFilePath()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), lockWait)
	defer cancel()

	release, err := lockFile(ctx, rc+".lock")
	if err != nil {
		return err
	}
	defer release()

	return fn()
}

// lockFile creates path exclusively, stamping it with our pid. A lock older
// than lockStale is taken over.
func lockFile(ctx context.Context, path string) (func(), error) {
	ticker := time.NewTicker(lockPoll)
	defer ticker.Stop()

	for {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
		if err == nil {
			_, _ = f.WriteString(strconv.Itoa(os.Getpid()))
			_ = f.Close()
			return func() { _ = os.Remove(path) }, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("config: lock: %w", err)
		}

		if info, statErr := os.Stat(path); statErr == nil && time.Since(info.ModTime()) > lockStale {
			_ = os.Remove(path)
			continue
		}

		select {
		case <-ctx.Done():
			return nil, ErrLockTimeout
		case <-ticker.C:
		}
	}
}

// WriteLines replaces ~/.odootermrc with lines. The new content is written
// to a sibling temp file and renamed over the old one.
func WriteLines(lines []string) error {
	rc, err := paths.ConfigFilePath()
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(rc), ".odootermrc.*")
	if err != nil {
		return err
	}
	done := false
	defer func() {
		if !done {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	var body strings.Builder
	for _, line := range lines {
		body.WriteString(line)
		body.WriteByte('\n')
	}

	if err := tmp.Chmod(0600); err != nil {
		return err
	}
	if _, err := tmp.WriteString(body.String()); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), rc); err != nil {
		return err
	}

	done = true
	return nil
}
