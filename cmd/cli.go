package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/jamesbehr/openeditor/config"
	"github.com/jamesbehr/openeditor/editor"
)

type CLI struct {
	Config  string   `help:"Path to config file" default:"${config}" type:"path"`
	Editor  string   `help:"Editor name or path to use instead of the one in the environment" short:"e"`
	EnvVar  []string `help:"Environment variables to search for an editor before VISUAL and EDITOR" name:"env-var"`
	Verbose bool     `help:"Log which editor is used and how it is started" short:"v"`

	Open    OpenCmd    `cmd:"" help:"Open a file in your editor"`
	Edit    EditCmd    `cmd:"" help:"Edit text in your editor and print the result"`
	Resolve ResolveCmd `cmd:"" help:"Show which editor would be used"`
}

// Context is passed to every command's Run method.
type Context struct {
	Builder editor.Builder
	Stdin   *os.File
	Stdout  io.Writer
}

func logger(verbose bool) logr.Logger {
	if !verbose {
		return logr.Discard()
	}

	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintf(os.Stderr, "%s: %s\n", prefix, args)
		} else {
			fmt.Fprintln(os.Stderr, args)
		}
	}, funcr.Options{Verbosity: 1})
}

// Builder combines the flags with the config file. Variables given on the
// command line are searched before those in the config, and --editor wins
// over the configured editor.
func (cli *CLI) Builder(cfg *config.Configuration) editor.Builder {
	b := editor.New().WithLogger(logger(cli.Verbose))

	if len(cli.EnvVar) > 0 {
		b = b.WithEnvVars(cli.EnvVar...)
	}

	b = cfg.Apply(b)

	if cli.Editor != "" {
		b = b.WithEditor(config.Editor(cli.Editor))
	}

	return b
}

var cli CLI

func Execute() {
	ctx := kong.Parse(&cli,
		kong.Name("openeditor"),
		kong.Description("Open files and text in your preferred editor."),
		kong.Vars{
			"config": config.DefaultPath,
		})

	cfg, err := config.Load(cli.Config)
	ctx.FatalIfErrorf(err)

	ctx.FatalIfErrorf(ctx.Run(&Context{
		Builder: cli.Builder(&cfg.Configuration),
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
	}))
}
