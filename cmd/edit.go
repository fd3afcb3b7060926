package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/jamesbehr/openeditor/editor"
)

type EditCmd struct {
	From    string `help:"Read the initial text from this file instead of standard input" type:"existingfile"`
	Scratch string `help:"Edit in this file instead of a temporary one. It is kept afterwards" type:"path"`
	Line    int    `help:"Line to put the cursor on" short:"l" default:"1"`
	Column  int    `help:"Column to put the cursor on" short:"c" default:"1"`
}

func (cmd *EditCmd) initial(stdin *os.File) (string, error) {
	if cmd.From != "" {
		b, err := os.ReadFile(cmd.From)
		if err != nil {
			return "", fmt.Errorf("edit: unable to read initial text: %w", err)
		}

		return string(b), nil
	}

	if stdin == nil || editor.IsTerminal(stdin) {
		return "", nil
	}

	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("edit: unable to read standard input: %w", err)
	}

	return string(b), nil
}

func (cmd *EditCmd) Run(ctx *Context) error {
	text, err := cmd.initial(ctx.Stdin)
	if err != nil {
		return err
	}

	// The result is read back once the editor exits, so a configured detach
	// does not apply here.
	b := ctx.Builder.
		At(editor.Position{Line: cmd.Line, Column: cmd.Column}).
		Wait(true)

	if cmd.Scratch != "" {
		b = b.WithTarget(cmd.Scratch)
	}

	// Standard input has been used up and standard output is where the
	// result goes, so give the editor the terminal if there is one.
	if !editor.IsTerminal(ctx.Stdin) || !editor.IsTerminal(ctx.Stdout) {
		if tty := controllingTerminal(); tty != nil {
			defer tty.Close()
			b = b.WithStdio(tty, tty, os.Stderr)
		}
	}

	if err := b.EditStringInPlace(&text); err != nil {
		return err
	}

	if _, err := io.WriteString(ctx.Stdout, text); err != nil {
		return fmt.Errorf("edit: unable to write result: %w", err)
	}

	return nil
}
