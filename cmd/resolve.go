package cmd

import (
	"github.com/jamesbehr/openeditor/format"
	"github.com/jamesbehr/openeditor/util"
)

type ResolveCmd struct {
	Format string `help:"Output format" enum:"text,json" default:"text"`
}

func (cmd *ResolveCmd) Run(ctx *Context) error {
	bin, source, err := ctx.Builder.Which()
	if err != nil {
		return err
	}

	f, err := format.New(cmd.Format, []string{"name", "kind", "path", "source", "status"}, ctx.Stdout)
	if err != nil {
		return err
	}

	path := bin.Path
	if cmd.Format == "text" {
		path = util.UnexpandPath(path)
	}

	status := "ok"
	if err := bin.Validate(); err != nil {
		status = err.Error()
	}

	if source == "" {
		source = "explicit"
	}

	row := map[string]any{
		"name":   bin.Identity.Name(),
		"kind":   bin.Identity.Kind.String(),
		"path":   path,
		"source": source,
		"status": status,
	}

	if err := f.Write(row); err != nil {
		return err
	}

	return f.Close()
}
