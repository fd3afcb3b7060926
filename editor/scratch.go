package editor

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/jamesbehr/openeditor/filesystem"
)

// ScratchFileName is the file strings are edited in, inside the temporary
// directory. Every call uses the same name, so two edits running at the same
// time against one temporary directory clobber each other. Callers that need
// that should give each edit its own file with [Builder.WithTarget].
const ScratchFileName = "open_editor_tmp_file"

type scratch struct {
	fs   filesystem.FS
	path string

	// owned is set when the file was allocated here rather than supplied by
	// the caller. Only owned files are removed.
	owned bool
}

func newScratch(fsys filesystem.FS, target string) scratch {
	if target != "" {
		return scratch{fs: fsys, path: target}
	}

	return scratch{
		fs:    fsys,
		path:  filepath.Join(fsys.TempDir(), ScratchFileName),
		owned: true,
	}
}

// edit writes content to the file, hands it to open and reads back whatever
// it contains afterwards. An owned file is removed on every return path.
func (s scratch) edit(content string, open func(path string) error) (string, error) {
	perm := fs.FileMode(0666)
	if s.owned {
		perm = 0600
	}

	if err := s.fs.WriteFile(s.path, []byte(content), perm); err != nil {
		return "", s.finish(&FileError{Op: "write", Path: s.path, Err: err})
	}

	if err := open(s.path); err != nil {
		return "", s.finish(err)
	}

	b, err := s.fs.ReadFile(s.path)
	if err != nil {
		return "", s.finish(&FileError{Op: "read", Path: s.path, Err: err})
	}

	if err := s.finish(nil); err != nil {
		return "", err
	}

	return strings.ToValidUTF8(string(b), "\uFFFD"), nil
}

// finish removes an owned file. A removal failure is only reported when
// nothing else went wrong.
func (s scratch) finish(err error) error {
	if !s.owned {
		return err
	}

	if rmErr := s.fs.Remove(s.path); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
		if err == nil {
			return &CleanupError{Path: s.path, Err: rmErr}
		}
	}

	return err
}
