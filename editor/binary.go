package editor

import (
	"errors"
	"io/fs"
	"os"
	"os/exec"
)

// DefaultEnvVars returns the environment variables searched for an editor
// after any caller supplied ones, in the order they are checked.
func DefaultEnvVars() []string {
	return []string{"VISUAL", "EDITOR"}
}

// Binary is an editor identity paired with the executable that runs it.
type Binary struct {
	Identity Identity
	Path     string
}

// FromPath uses the executable at path. Its command line is not
// interpreted, so the file is opened without positioning.
func FromPath(path string) Binary {
	return Binary{
		Identity: UnknownEditor(path),
		Path:     path,
	}
}

// FromName looks up a well-known or arbitrary editor name and searches PATH
// for it. If the search fails the name is used as the path as is, which makes
// Validate report the editor as missing rather than picking something else.
func FromName(name string) Binary {
	path, err := exec.LookPath(name)
	if err != nil {
		path = name
	}

	return Binary{
		Identity: Lookup(name),
		Path:     path,
	}
}

// Resolve returns explicit if it is set, otherwise the editor named by the
// first of envVars that is set to a non-empty value. Later variables are not
// consulted once one matches, even if its editor turns out to be unusable.
func Resolve(explicit *Binary, envVars []string) (Binary, error) {
	bin, _, err := resolve(explicit, envVars)
	return bin, err
}

func resolve(explicit *Binary, envVars []string) (Binary, string, error) {
	if explicit != nil {
		return *explicit, "", nil
	}

	for _, name := range envVars {
		if v := os.Getenv(name); v != "" {
			return FromName(v), name, nil
		}
	}

	return Binary{}, "", ErrNoEditorFound
}

// Validate checks that the binary exists, is a regular file and, where the
// platform has the concept, is executable by someone.
func (b Binary) Validate() error {
	info, err := os.Stat(b.Path)
	if err != nil {
		// The file may exist, but we can't tell whether it can be run.
		if errors.Is(err, fs.ErrPermission) {
			return &NotExecutableError{Path: b.Path, Err: err}
		}

		// Missing files, and paths running through something that isn't a
		// directory, don't name an editor.
		return &NotFoundError{Path: b.Path}
	}

	if !info.Mode().IsRegular() {
		return &NotFoundError{Path: b.Path}
	}

	return checkExecutable(b.Path, info)
}
