package filesystem

import (
	"io/fs"
	"os"
)

// FS is the set of file operations used to round-trip text through an
// editor. Paths are native OS paths, not slash separated fs.FS names.
type FS interface {
	ReadFile(string) ([]byte, error)
	WriteFile(string, []byte, fs.FileMode) error
	Remove(string) error
	TempDir() string
}

// OS is the host filesystem.
type OS struct{}

func (OS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (OS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}

func (OS) Remove(name string) error {
	return os.Remove(name)
}

func (OS) TempDir() string {
	return os.TempDir()
}
