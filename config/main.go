package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/jamesbehr/openeditor/editor"
	"github.com/jamesbehr/openeditor/util"
	"github.com/sblinch/kdl-go"
)

// DefaultPath is where the config file is looked for if none is given.
const DefaultPath = "~/.config/openeditor/config.toml"

type Configuration struct {
	// Editor is an editor name looked up in PATH, or a path to one.
	Editor string `toml:"editor" kdl:"editor"`

	// EnvVars are searched for an editor before VISUAL and EDITOR.
	EnvVars []string `toml:"env-vars" kdl:"env-vars"`

	// Detach stops the editor from being waited for.
	Detach bool `toml:"detach" kdl:"detach"`
}

type File struct {
	Configuration
	Path string
}

// Load reads the config file at path. Files with a .kdl extension are read
// as KDL, anything else as TOML. A missing file is an empty configuration.
func Load(path string) (*File, error) {
	path = util.ExpandPath(path)

	var cfg Configuration

	if filepath.Ext(path) == ".kdl" {
		if err := decodeKDL(path, &cfg); err != nil {
			return nil, err
		}
	} else {
		_, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("config: could not parse config: %w", err)
			}
		}
	}

	return &File{cfg, path}, nil
}

func decodeKDL(path string, cfg *Configuration) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("config: unable to open config file: %w", err)
	}

	defer f.Close()

	if err := kdl.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("config: could not parse config: %w", err)
	}

	return nil
}

// Apply configures b with the settings in cfg. Unset settings leave b as
// it is.
func (cfg *Configuration) Apply(b editor.Builder) editor.Builder {
	if cfg.Editor != "" {
		b = b.WithEditor(Editor(cfg.Editor))
	}

	if len(cfg.EnvVars) > 0 {
		b = b.WithEnvVars(cfg.EnvVars...)
	}

	if cfg.Detach {
		b = b.Wait(false)
	}

	return b
}

// Editor turns a configured editor into a binary. Anything with a path
// separator is taken as a path to the executable, anything else as a name.
func Editor(name string) editor.Binary {
	if filepath.Base(name) != name {
		return editor.FromPath(util.ExpandPath(name))
	}

	return editor.FromName(name)
}
