// Package editor opens files and strings in the user's text editor.
//
// The editor is either given explicitly or taken from the first non-empty
// environment variable out of any caller supplied names, VISUAL and EDITOR.
// Editors whose command line is known are asked to place the cursor at a
// line and column.
package editor

import (
	"io"

	"github.com/go-logr/logr"
	"github.com/jamesbehr/openeditor/filesystem"
)

// Builder describes how to launch an editor. Configuration methods return a
// modified copy, so a Builder can be shared and reused freely. Get one from
// [New]; the zero value is not ready for use.
type Builder struct {
	editor  *Binary
	target  string
	wait    bool
	pos     Position
	envVars []string
	fs      filesystem.FS
	inv     invoker
	log     logr.Logger
}

// New returns a Builder that waits for the editor, opens at line 1 column 1
// and searches only VISUAL and EDITOR.
func New() Builder {
	return Builder{
		wait: true,
		pos:  Start,
		fs:   filesystem.OS{},
		inv:  defaultInvoker(),
		log:  logr.Discard(),
	}
}

// AtLine sets the 1-based line to put the cursor on.
func (b Builder) AtLine(line int) Builder {
	b.pos.Line = line
	return b
}

// AtColumn sets the 1-based column to put the cursor on.
func (b Builder) AtColumn(col int) Builder {
	b.pos.Column = col
	return b
}

// At sets both the line and the column.
func (b Builder) At(pos Position) Builder {
	b.pos = pos
	return b
}

// Wait sets whether to block until the editor exits. When false, the editor
// keeps running in the background and its exit status is never checked.
func (b Builder) Wait(wait bool) Builder {
	b.wait = wait
	return b
}

// WithEditor skips the environment and uses bin.
func (b Builder) WithEditor(bin Binary) Builder {
	b.editor = &bin
	return b
}

// WithEditorName is WithEditor(FromName(name)).
func (b Builder) WithEditorName(name string) Builder {
	return b.WithEditor(FromName(name))
}

// WithEditorPath is WithEditor(FromPath(path)).
func (b Builder) WithEditorPath(path string) Builder {
	return b.WithEditor(FromPath(path))
}

// WithEnvVars adds environment variables to search for an editor. They are
// checked in order, before the defaults.
func (b Builder) WithEnvVars(names ...string) Builder {
	envVars := make([]string, 0, len(b.envVars)+len(names))
	envVars = append(envVars, b.envVars...)
	b.envVars = append(envVars, names...)
	return b
}

// WithTarget makes string edits happen in path instead of the shared scratch
// file. The file is left in place afterwards.
func (b Builder) WithTarget(path string) Builder {
	b.target = path
	return b
}

// WithFS sets the filesystem that string edits are written to and read from.
func (b Builder) WithFS(fsys filesystem.FS) Builder {
	b.fs = fsys
	return b
}

// WithStdio sets the streams the editor is attached to instead of the
// process's own.
func (b Builder) WithStdio(stdin io.Reader, stdout, stderr io.Writer) Builder {
	b.inv = invoker{stdin: stdin, stdout: stdout, stderr: stderr}
	return b
}

// WithLogger sets where resolution and startup details are traced, at V(1).
func (b Builder) WithLogger(log logr.Logger) Builder {
	b.log = log
	return b
}

// EnvVars returns the environment variables that are searched, in order.
func (b Builder) EnvVars() []string {
	return append(append([]string{}, b.envVars...), DefaultEnvVars()...)
}

// Resolve returns the editor that would be launched.
func (b Builder) Resolve() (Binary, error) {
	bin, _, err := b.Which()
	return bin, err
}

// Which is like Resolve but also returns the environment variable the
// editor was found in, or "" if it was set explicitly.
func (b Builder) Which() (Binary, string, error) {
	bin, source, err := resolve(b.editor, b.EnvVars())
	if err != nil {
		return Binary{}, "", err
	}

	b.log.V(1).Info("resolved editor",
		"name", bin.Identity.Name(),
		"kind", bin.Identity.Kind.String(),
		"path", bin.Path,
		"source", source,
	)

	return bin, source, nil
}

// OpenFile opens the file at path. The file does not have to exist, in
// which case it is up to the editor whether it gets created.
func (b Builder) OpenFile(path string) error {
	bin, err := b.Resolve()
	if err != nil {
		return err
	}

	return b.open(bin, path)
}

func (b Builder) open(bin Binary, path string) error {
	if err := bin.Validate(); err != nil {
		return err
	}

	args := bin.Identity.Args(path, b.wait, b.pos)
	b.log.V(1).Info("starting editor", "path", bin.Path, "args", args, "wait", b.wait)

	return b.inv.run(bin, args, b.wait)
}

// EditString lets the user edit content and returns the result. Unless a
// target was set, the text goes through the scratch file in the temporary
// directory, which is removed before returning. The editor is always waited
// for, whatever Wait was set to, since the result is read back afterwards.
func (b Builder) EditString(content string) (string, error) {
	s := newScratch(b.fs, b.target)
	b.log.V(1).Info("editing string", "path", s.path, "scratch", s.owned)

	return s.edit(content, b.Wait(true).OpenFile)
}

// EditStringInPlace is like EditString but replaces *content with the
// result. On error *content is left as it was.
func (b Builder) EditStringInPlace(content *string) error {
	result, err := b.EditString(*content)
	if err != nil {
		return err
	}

	*content = result
	return nil
}

// ReadInput opens the editor on an empty file and returns what the user
// wrote.
func (b Builder) ReadInput() (string, error) {
	return b.EditString("")
}

// OpenFile opens path with bin, placing the cursor at pos if the editor
// supports it.
func OpenFile(bin Binary, path string, wait bool, pos Position) error {
	return New().WithEditor(bin).Wait(wait).At(pos).OpenFile(path)
}
