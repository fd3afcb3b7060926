//go:build !windows

package editor

import "io/fs"

func checkExecutable(path string, info fs.FileInfo) error {
	if info.Mode().Perm()&0111 == 0 {
		return &NotExecutableError{Path: path}
	}

	return nil
}
