package cmd

import (
	"github.com/jamesbehr/openeditor/util"
)

type OpenCmd struct {
	Target string `arg:"" help:"File to open, optionally followed by :line or :line:column"`
	Line   int    `help:"Line to put the cursor on" short:"l"`
	Column int    `help:"Column to put the cursor on" short:"c"`
	Detach bool   `help:"Don't wait for the editor to exit" short:"d"`
}

func (cmd *OpenCmd) Run(ctx *Context) error {
	path, pos := parseTarget(util.ExpandPath(cmd.Target))

	if cmd.Line > 0 {
		pos.Line = cmd.Line
	}

	if cmd.Column > 0 {
		pos.Column = cmd.Column
	}

	b := ctx.Builder.At(pos)

	if cmd.Detach {
		b = b.Wait(false)
	}

	return b.OpenFile(path)
}
