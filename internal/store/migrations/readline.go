package migrations

import (
	"bufio"
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"
)

const (
	sqliteHeader  = "SQLite format 3\x00"
	libeditHeader = "_HiStOrY_V2_"
)

// IsDatabaseFile reports whether path holds an SQLite database. Missing,
// empty and unreadable files are not databases.
func IsDatabaseFile(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer func() { _ = f.Close() }()

	head := make([]byte, len(sqliteHeader))
	if _, err := io.ReadFull(f, head); err != nil {
		return false
	}
	return string(head) == sqliteHeader
}

// importReadline copies the lines of a GNU readline or libedit history file
// into the history table, stamped with the file's modification time.
func importReadline(path string) func(tx *sql.Tx) error {
	return func(tx *sql.Tx) error {
		if path == "" || IsDatabaseFile(path) {
			return nil
		}

		lines, modTime, err := readReadline(path)
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		if err != nil {
			return err
		}

		stmt, err := tx.Prepare("INSERT INTO history (line, created_at) VALUES (?, ?)")
		if err != nil {
			return fmt.Errorf("prepare: %w", err)
		}
		defer func() { _ = stmt.Close() }()

		stamp := modTime.UTC().Format(time.RFC3339Nano)
		for _, line := range lines {
			if _, err := stmt.Exec(line, stamp); err != nil {
				return fmt.Errorf("import %q: %w", line, err)
			}
		}
		return nil
	}
}

func readReadline(path string) ([]string, time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, time.Time{}, err
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, time.Time{}, err
	}

	var (
		lines   []string
		libedit bool
	)
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for first := true; sc.Scan(); first = false {
		line := strings.TrimRight(sc.Text(), "\r")
		if first && line == libeditHeader {
			libedit = true
			continue
		}
		if isTimestamp(line) || strings.TrimSpace(line) == "" {
			continue
		}
		if libedit {
			line = unvis(line)
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, time.Time{}, fmt.Errorf("read %s: %w", path, err)
	}

	return lines, info.ModTime(), nil
}

// isTimestamp matches the "#<unix seconds>" lines readline writes when
// history timestamps are on.
func isTimestamp(line string) bool {
	if len(line) < 2 || line[0] != '#' {
		return false
	}
	for _, c := range line[1:] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// unvis reverses the octal escaping libedit applies to spaces and other
// bytes, e.g. "read\040-m\040res.partner".
func unvis(line string) string {
	if !strings.Contains(line, `\`) {
		return line
	}

	var b bytes.Buffer
	for i := 0; i < len(line); i++ {
		if line[i] != '\\' || i+1 >= len(line) {
			b.WriteByte(line[i])
			continue
		}
		if line[i+1] == '\\' {
			b.WriteByte('\\')
			i++
			continue
		}
		if i+3 < len(line) && isOctal(line[i+1]) && isOctal(line[i+2]) && isOctal(line[i+3]) {
			b.WriteByte((line[i+1]-'0')<<6 | (line[i+2]-'0')<<3 | (line[i+3] - '0'))
			i += 3
			continue
		}
		b.WriteByte(line[i])
	}
	return b.String()
}

func isOctal(c byte) bool {
	return c >= '0' && c <= '7'
}
