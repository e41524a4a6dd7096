package cmd

import (
	"fmt"
	"strings"

	"github.com/JaskiratSingh1/Verto/internal/theme"
)

// themeCommand prints the themes, or sets one. Unknown names are an error
// here even though an unknown stored name only falls back to the default.
func themeCommand(e *env, args []string) error {
	fs := newFlagSet("theme", e)
	if err := fs.Parse(args); err != nil {
		return err
	}
	p := e.openPrefs()

	switch fs.NArg() {
	case 0:
		for _, t := range theme.All() {
			marker := " "
			if t == p.Theme() {
				marker = "*"
			}
			line := fmt.Sprintf("%s %s", marker, t)
			if t.Scheme() != theme.SchemeNone {
				line += fmt.Sprintf(" (%s)", t.Scheme())
			}
			fmt.Fprintln(e.stdout, line)
		}
		return nil
	case 1:
	default:
		return fmt.Errorf("usage: verto theme [name]")
	}

	t, ok := theme.Parse(fs.Arg(0))
	if !ok {
		var names []string
		for _, t := range theme.All() {
			names = append(names, t.String())
		}
		return fmt.Errorf("unknown theme %q (available: %s)", fs.Arg(0), strings.Join(names, ", "))
	}
	if err := p.SetTheme(t); err != nil {
		return fmt.Errorf("saving theme: %w", err)
	}
	fmt.Fprintf(e.stdout, "Theme set to %s\n", t)
	return nil
}
