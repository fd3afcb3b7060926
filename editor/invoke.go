package editor

import (
	"bytes"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/mattn/go-isatty"
)

// invoker runs editor processes attached to the given standard streams.
type invoker struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func defaultInvoker() invoker {
	return invoker{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// IsTerminal reports whether v is an *os.File open on a terminal.
func IsTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok || f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// detached returns v if the child can use it directly. Anything else would
// need a copying goroutine that nobody waits for, so it is dropped and the
// child gets the null device instead.
func detached[T any](v T) T {
	var zero T

	if f, ok := any(v).(*os.File); ok && f != nil {
		return v
	}

	return zero
}

// run starts bin with args. When wait is false it returns as soon as the
// process has started and never looks at it again.
func (inv invoker) run(bin Binary, args []string, wait bool) error {
	cmd := exec.Command(bin.Path, args...)

	cmd.Stdin = inv.stdin
	cmd.Stdout = inv.stdout
	cmd.Stderr = inv.stderr

	if !wait {
		cmd.Stdin = detached(inv.stdin)
		cmd.Stdout = detached(inv.stdout)
		cmd.Stderr = detached(inv.stderr)
	}

	// A terminal is handed to the editor untouched. Anything else is copied
	// so it can be reported if the editor fails.
	var stderr bytes.Buffer
	if wait && !IsTerminal(inv.stderr) {
		cmd.Stderr = &stderr
		if inv.stderr != nil {
			cmd.Stderr = io.MultiWriter(inv.stderr, &stderr)
		}
	}

	if err := cmd.Start(); err != nil {
		return &CommandError{Path: bin.Path, Err: err}
	}

	if !wait {
		if err := cmd.Process.Release(); err != nil {
			return &CommandError{Path: bin.Path, Err: err}
		}

		return nil
	}

	if err := cmd.Wait(); err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			return &CallError{
				ExitCode: ee.ExitCode(),
				Stderr:   strings.ToValidUTF8(stderr.String(), "\uFFFD"),
			}
		}

		return &CommandError{Path: bin.Path, Err: err}
	}

	return nil
}
