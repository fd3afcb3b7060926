package editor

import (
	"fmt"
	"strconv"
)

// Kind is an editor family whose command line syntax for jumping to a
// position is known.
type Kind int

const (
	Unknown Kind = iota
	Vi
	Vim
	Nvim
	Gvim
	Emacs
	Nano
	Pico
	Helix
	Kakoune
	Code
	Atom
	Sublime
	TextMate
)

var kindNames = map[Kind]string{
	Vi:       "vi",
	Vim:      "vim",
	Nvim:     "nvim",
	Gvim:     "gvim",
	Emacs:    "emacs",
	Nano:     "nano",
	Pico:     "pico",
	Helix:    "hx",
	Kakoune:  "kak",
	Code:     "code",
	Atom:     "atom",
	Sublime:  "subl",
	TextMate: "mate",
}

var aliases = map[string]Kind{
	"vi":       Vi,
	"vim":      Vim,
	"nvim":     Nvim,
	"gvim":     Gvim,
	"emacs":    Emacs,
	"nano":     Nano,
	"pico":     Pico,
	"hx":       Helix,
	"helix":    Helix,
	"kak":      Kakoune,
	"kakoune":  Kakoune,
	"code":     Code,
	"vscode":   Code,
	"atom":     Atom,
	"subl":     Sublime,
	"sublime":  Sublime,
	"mate":     TextMate,
	"textmate": TextMate,
}

// Kinds returns every well-known kind, in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(kindNames))
	for k := Vi; k <= TextMate; k++ {
		kinds = append(kinds, k)
	}

	return kinds
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "unknown"
}

// Identity is a Kind plus, for unknown editors, the name it was resolved
// from. The zero value is an unknown editor with an empty name.
type Identity struct {
	Kind Kind
	name string
}

// Lookup maps an editor name to its identity. Matching is exact and case
// sensitive; anything not in the alias table becomes an unknown editor that
// remembers the name.
func Lookup(name string) Identity {
	if k, ok := aliases[name]; ok {
		return Identity{Kind: k}
	}

	return UnknownEditor(name)
}

// UnknownEditor returns the identity of an editor whose command line isn't
// understood. It is always opened with the bare path.
func UnknownEditor(name string) Identity {
	return Identity{Kind: Unknown, name: name}
}

// Name is the canonical short name of the editor, or the original name for
// unknown editors.
func (id Identity) Name() string {
	if id.Kind == Unknown {
		return id.name
	}

	return id.Kind.String()
}

func (id Identity) String() string {
	return id.Name()
}

// Position is a 1-based line and column to place the cursor at.
type Position struct {
	Line   int
	Column int
}

// Start is the first character of a file.
var Start = Position{Line: 1, Column: 1}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Args builds the argument vector that opens path at pos. The wait flag
// only matters to editors that detach from the terminal unless asked not to.
func (id Identity) Args(path string, wait bool, pos Position) []string {
	line := strconv.Itoa(pos.Line)
	col := strconv.Itoa(pos.Column)

	switch id.Kind {
	case Vi, Vim, Nvim, Gvim:
		return []string{fmt.Sprintf("+call cursor(%s, %s)", line, col), path}
	case Emacs:
		return []string{"+" + line + ":" + col, path}
	case Nano, Pico:
		return []string{"+" + line + "," + col, path}
	case Helix, Sublime:
		return []string{path + ":" + line + ":" + col}
	case Kakoune:
		return []string{path, "+" + line + ":" + col}
	case Code, Atom:
		args := []string{}
		if wait {
			args = append(args, "-w")
		}

		return append(args, "--goto", path+":"+line+":"+col)
	case TextMate:
		return []string{"--line", line, path}
	default:
		return []string{path}
	}
}
