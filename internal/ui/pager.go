// Package ui provides terminal output utilities: a pager-aware writer and
// JSON result rendering.
//
// SECURITY NOTE: The pager functionality intentionally allows execution of
// arbitrary commands specified via config or $PAGER. This is standard
// behavior for CLI tools (similar to git, less, man) and requires local
// access to exploit. Users should only configure pagers they trust.
package ui

import (
	"io"
	"os"
	"os/exec"
	"strings"
)

// isBypassPager returns true if the pager command means "bypass pager".
func isBypassPager(cmd string) bool {
	return cmd == "cat"
}

// runPagerCmd parses a pager command string (e.g., "less -R") and runs it.
// Falls back to writing content to out on error.
func runPagerCmd(out io.Writer, pagerCmd string, content string) {
	parts := strings.Fields(pagerCmd)
	if len(parts) == 0 {
		_, _ = io.WriteString(out, content)
		return
	}
	runPager(out, parts[0], parts[1:], content)
}

// runPager executes the pager command with the given content.
func runPager(out io.Writer, pager string, args []string, content string) {
	cmd := exec.Command(pager, args...)
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		_, _ = io.WriteString(out, content)
	}
}
