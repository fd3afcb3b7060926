package cmd

import (
	"os"
	"strconv"
	"strings"

	"github.com/jamesbehr/openeditor/editor"
)

// parseTarget splits a trailing :line or :line:column off target. A target
// naming an existing file is never split, so files with colons in their
// names can still be opened.
func parseTarget(target string) (string, editor.Position) {
	pos := editor.Start

	if _, err := os.Stat(target); err == nil {
		return target, pos
	}

	path, last, ok := cutNumber(target)
	if !ok {
		return target, pos
	}

	if rest, line, ok := cutNumber(path); ok {
		pos.Line = line
		pos.Column = last
		return rest, pos
	}

	pos.Line = last
	return path, pos
}

func cutNumber(s string) (string, int, bool) {
	i := strings.LastIndexByte(s, ':')
	if i <= 0 {
		return s, 0, false
	}

	n, err := strconv.Atoi(s[i+1:])
	if err != nil || n < 1 {
		return s, 0, false
	}

	return s[:i], n, true
}

// controllingTerminal opens the terminal the process was started from, for
// when its standard streams have been redirected. It returns nil if there is
// none.
func controllingTerminal() *os.File {
	f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return nil
	}

	return f
}
