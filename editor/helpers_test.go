package editor

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/jamesbehr/openeditor/filesystem"
)

// script writes an executable shell script called name into dir and returns
// its path.
func script(t *testing.T, dir, name, body string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("shell script editors are not supported on windows")
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755); err != nil {
		t.Fatal(err)
	}

	return path
}

// clearEnv makes sure none of the default variables name an editor.
func clearEnv(t *testing.T) {
	t.Helper()

	for _, name := range DefaultEnvVars() {
		t.Setenv(name, "")
	}
}

// tempFS is the host filesystem with its own temporary directory.
type tempFS struct {
	filesystem.OS
	dir string
}

func (fsys tempFS) TempDir() string { return fsys.dir }

// faultyFS fails reads or removals on demand and records what was removed.
type faultyFS struct {
	tempFS
	readErr   error
	removeErr error
	removed   []string
}

func (fsys *faultyFS) ReadFile(name string) ([]byte, error) {
	if fsys.readErr != nil {
		return nil, fsys.readErr
	}

	return fsys.tempFS.ReadFile(name)
}

func (fsys *faultyFS) Remove(name string) error {
	fsys.removed = append(fsys.removed, name)

	if fsys.removeErr != nil {
		return fsys.removeErr
	}

	return fsys.tempFS.Remove(name)
}

func requireMissing(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected %s to be removed, got %v", path, err)
	}
}

// funcLogger calls fn with each V(1) or lower log line.
func funcLogger(fn func(string)) logr.Logger {
	return funcr.New(func(prefix, args string) {
		fn(args)
	}, funcr.Options{Verbosity: 1})
}
