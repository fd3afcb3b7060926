package editor

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newBuilder(t *testing.T, editor string) (Builder, *bytes.Buffer, string) {
	t.Helper()

	clearEnv(t)

	dir := t.TempDir()
	stderr := &bytes.Buffer{}

	b := New().
		WithEditorPath(editor).
		WithFS(tempFS{dir: dir}).
		WithStdio(nil, io.Discard, stderr)

	return b, stderr, filepath.Join(dir, ScratchFileName)
}

func TestOpenFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "args")

	bin := script(t, dir, "vim", `printf '%s\n' "$@" > "`+out+`"`)
	t.Setenv("PATH", dir)

	b, _, _ := newBuilder(t, bin)
	b = b.WithEditorName("vim").AtLine(2).AtColumn(5)

	require.NoError(t, b.OpenFile("/tmp/notes.txt"))

	args, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "+call cursor(2, 5)\n/tmp/notes.txt\n", string(args))
}

func TestOpenFileFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "args")

	bin := script(t, dir, "my-editor", `printf '%s\n' "$@" > "`+out+`"`)

	clearEnv(t)
	b := New().WithStdio(nil, io.Discard, io.Discard).WithEnvVars("MY_EDITOR")

	t.Setenv("MY_EDITOR", bin)
	t.Setenv("EDITOR", "vim")

	require.NoError(t, b.OpenFile("notes.txt"))

	args, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "notes.txt\n", string(args))
}

func TestOpenFileCallError(t *testing.T) {
	bin := script(t, t.TempDir(), "ed", "echo boom >&2\nexit 3")

	b, stderr, _ := newBuilder(t, bin)

	err := b.OpenFile("notes.txt")

	var ce *CallError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, 3, ce.ExitCode)
	require.Equal(t, "boom\n", ce.Stderr)
	require.Equal(t, "boom\n", stderr.String())
}

func TestOpenFileDetached(t *testing.T) {
	bin := script(t, t.TempDir(), "ed", "exit 3")

	b, _, _ := newBuilder(t, bin)

	require.NoError(t, b.Wait(false).OpenFile("notes.txt"))
}

func TestOpenFileMissingEditor(t *testing.T) {
	b, _, _ := newBuilder(t, filepath.Join(t.TempDir(), "missing"))

	var nf *NotFoundError
	require.ErrorAs(t, b.OpenFile("notes.txt"), &nf)
	require.ErrorAs(t, b.Wait(false).OpenFile("notes.txt"), &nf)
}

func TestOpenFileNoEditor(t *testing.T) {
	clearEnv(t)

	err := New().OpenFile("notes.txt")
	require.ErrorIs(t, err, ErrNoEditorFound)
}

func TestPackageOpenFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "args")

	script(t, dir, "hx", `printf '%s\n' "$@" > "`+out+`"`)
	t.Setenv("PATH", dir)

	require.NoError(t, OpenFile(FromName("hx"), "main.go", true, Position{Line: 10, Column: 2}))

	args, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "main.go:10:2\n", string(args))
}

func TestEditString(t *testing.T) {
	bin := script(t, t.TempDir(), "ed", `printf 'edited\n' >> "$1"`)

	b, _, scratch := newBuilder(t, bin)

	result, err := b.EditString("hello\n")
	require.NoError(t, err)
	require.Equal(t, "hello\nedited\n", result)
	requireMissing(t, scratch)
}

func TestEditStringTwice(t *testing.T) {
	bin := script(t, t.TempDir(), "ed", "exit 0")

	b, _, scratch := newBuilder(t, bin)

	for i := 0; i < 2; i++ {
		result, err := b.EditString("")
		require.NoError(t, err)
		require.Equal(t, "", result)
		requireMissing(t, scratch)
	}
}

func TestEditStringTruncates(t *testing.T) {
	bin := script(t, t.TempDir(), "ed", "exit 0")

	b, _, scratch := newBuilder(t, bin)
	require.NoError(t, os.WriteFile(scratch, []byte("left over from a previous run"), 0600))

	result, err := b.EditString("short")
	require.NoError(t, err)
	require.Equal(t, "short", result)
}

func TestEditStringLossyUTF8(t *testing.T) {
	bin := script(t, t.TempDir(), "ed", `printf 'ok\377' > "$1"`)

	b, _, _ := newBuilder(t, bin)

	result, err := b.EditString("")
	require.NoError(t, err)
	require.Equal(t, "ok\uFFFD", result)
}

func TestEditStringEditorFails(t *testing.T) {
	bin := script(t, t.TempDir(), "ed", "exit 1")

	b, _, scratch := newBuilder(t, bin)

	_, err := b.EditString("hello")

	var ce *CallError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, 1, ce.ExitCode)
	requireMissing(t, scratch)
}

func TestEditStringNoEditor(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()

	_, err := New().WithFS(tempFS{dir: dir}).EditString("hello")
	require.ErrorIs(t, err, ErrNoEditorFound)
	requireMissing(t, filepath.Join(dir, ScratchFileName))
}

func TestEditStringCleanupFails(t *testing.T) {
	bin := script(t, t.TempDir(), "ed", "exit 0")

	b, _, scratch := newBuilder(t, bin)

	fsys := &faultyFS{
		tempFS:    tempFS{dir: filepath.Dir(scratch)},
		removeErr: errors.New("device busy"),
	}

	_, err := b.WithFS(fsys).EditString("hello")

	var ce *CleanupError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, scratch, ce.Path)
}

func TestEditStringCleanupDoesNotMaskFailure(t *testing.T) {
	bin := script(t, t.TempDir(), "ed", "exit 2")

	b, _, scratch := newBuilder(t, bin)

	fsys := &faultyFS{
		tempFS:    tempFS{dir: filepath.Dir(scratch)},
		removeErr: errors.New("device busy"),
	}

	_, err := b.WithFS(fsys).EditString("hello")

	var ce *CallError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, []string{scratch}, fsys.removed)

	var cl *CleanupError
	require.False(t, errors.As(err, &cl))
}

func TestEditStringReadFails(t *testing.T) {
	bin := script(t, t.TempDir(), "ed", "exit 0")

	b, _, scratch := newBuilder(t, bin)

	fsys := &faultyFS{
		tempFS:  tempFS{dir: filepath.Dir(scratch)},
		readErr: os.ErrPermission,
	}

	_, err := b.WithFS(fsys).EditString("hello")

	var fe *FileError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, "read", fe.Op)
	require.ErrorIs(t, err, os.ErrPermission)
	require.Equal(t, []string{scratch}, fsys.removed)
	requireMissing(t, scratch)
}

func TestEditStringWriteFails(t *testing.T) {
	bin := script(t, t.TempDir(), "ed", "exit 0")

	b, _, _ := newBuilder(t, bin)

	fsys := tempFS{dir: filepath.Join(t.TempDir(), "does", "not", "exist")}

	_, err := b.WithFS(fsys).EditString("hello")

	var fe *FileError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, "write", fe.Op)
}

func TestEditStringTarget(t *testing.T) {
	bin := script(t, t.TempDir(), "ed", `printf 'world' >> "$1"`)

	b, _, scratch := newBuilder(t, bin)

	target := filepath.Join(t.TempDir(), "message.txt")

	result, err := b.WithTarget(target).EditString("hello ")
	require.NoError(t, err)
	require.Equal(t, "hello world", result)
	requireMissing(t, scratch)

	kept, err := os.ReadFile(target)
	require.NoError(t, err)
	require.Equal(t, "hello world", string(kept))
}

func TestEditStringTargetNotRemovedOnFailure(t *testing.T) {
	bin := script(t, t.TempDir(), "ed", "exit 1")

	b, _, _ := newBuilder(t, bin)

	target := filepath.Join(t.TempDir(), "message.txt")

	_, err := b.WithTarget(target).EditString("hello")

	var ce *CallError
	require.ErrorAs(t, err, &ce)

	_, err = os.Stat(target)
	require.NoError(t, err)
}

func TestEditStringInPlace(t *testing.T) {
	dir := t.TempDir()

	ok := script(t, dir, "ok", `printf 'replaced' > "$1"`)
	fail := script(t, dir, "fail", `printf 'replaced' > "$1"; exit 1`)

	b, _, _ := newBuilder(t, ok)

	content := "original"
	require.NoError(t, b.EditStringInPlace(&content))
	require.Equal(t, "replaced", content)

	content = "original"
	require.Error(t, b.WithEditorPath(fail).EditStringInPlace(&content))
	require.Equal(t, "original", content)
}

func TestReadInput(t *testing.T) {
	bin := script(t, t.TempDir(), "ed", `printf 'typed by the user' > "$1"`)

	b, _, _ := newBuilder(t, bin)

	input, err := b.ReadInput()
	require.NoError(t, err)
	require.Equal(t, "typed by the user", input)
}

func TestBuilderCopies(t *testing.T) {
	b := New()
	custom := b.WithEnvVars("A", "B")
	more := custom.WithEnvVars("C")
	other := custom.WithEnvVars("D")

	require.Equal(t, []string{"VISUAL", "EDITOR"}, b.EnvVars())
	require.Equal(t, []string{"A", "B", "VISUAL", "EDITOR"}, custom.EnvVars())
	require.Equal(t, []string{"A", "B", "C", "VISUAL", "EDITOR"}, more.EnvVars())
	require.Equal(t, []string{"A", "B", "D", "VISUAL", "EDITOR"}, other.EnvVars())

	require.Equal(t, Start, b.pos)
	require.Equal(t, Position{Line: 4, Column: 1}, b.AtLine(4).pos)
	require.True(t, b.wait)
	require.False(t, b.Wait(false).wait)
	require.True(t, b.wait)
}

func TestResolveLogsSource(t *testing.T) {
	clearEnv(t)
	t.Setenv("EDITOR", "nano")

	var lines []string
	log := funcLogger(func(line string) { lines = append(lines, line) })

	bin, err := New().WithLogger(log).Resolve()
	require.NoError(t, err)
	require.Equal(t, Nano, bin.Identity.Kind)
	require.Len(t, lines, 1)
	require.True(t, strings.Contains(lines[0], `"source"="EDITOR"`), lines[0])
}

func TestEditStringIgnoresDetach(t *testing.T) {
	bin := script(t, t.TempDir(), "ed", `sleep 0.3; printf 'typed' > "$1"`)

	b, _, scratch := newBuilder(t, bin)

	result, err := b.Wait(false).EditString("")
	require.NoError(t, err)
	require.Equal(t, "typed", result)
	requireMissing(t, scratch)
}
