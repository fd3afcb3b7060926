package editor

import (
	"errors"
	"fmt"
)

// ErrNoEditorFound is returned when none of the searched environment
// variables name an editor.
var ErrNoEditorFound = errors.New("editor: no editor found in the environment")

// NotFoundError is returned when the editor binary does not exist or is not
// a regular file.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("editor: binary not found at %q", e.Path)
}

// NotExecutableError is returned when the editor binary has no execute bit
// set. Err is set if the permissions could not be read at all.
type NotExecutableError struct {
	Path string
	Err  error
}

func (e *NotExecutableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("editor: binary at %q is not executable: %v", e.Path, e.Err)
	}

	return fmt.Sprintf("editor: binary at %q is not executable", e.Path)
}

func (e *NotExecutableError) Unwrap() error { return e.Err }

// CommandError is returned when the editor process could not be started.
type CommandError struct {
	Path string
	Err  error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("editor: unable to start %q: %v", e.Path, e.Err)
}

func (e *CommandError) Unwrap() error { return e.Err }

// CallError is returned when the editor ran but exited unsuccessfully.
// ExitCode is -1 if the process was terminated by a signal.
type CallError struct {
	ExitCode int
	Stderr   string
}

func (e *CallError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("editor: exited with code %d", e.ExitCode)
	}

	return fmt.Sprintf("editor: exited with code %d: %s", e.ExitCode, e.Stderr)
}

// FileError is returned when the file being edited could not be written or
// read back.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("editor: unable to %s %q: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// CleanupError is returned when a scratch file could not be removed after
// use.
type CleanupError struct {
	Path string
	Err  error
}

func (e *CleanupError) Error() string {
	return fmt.Sprintf("editor: unable to remove scratch file %q: %v", e.Path, e.Err)
}

func (e *CleanupError) Unwrap() error { return e.Err }
