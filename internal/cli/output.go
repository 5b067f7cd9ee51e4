package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// styles holds the color formatters used for diagnostics.
type styles struct {
	err    *color.Color
	prefix *color.Color
}

func newStyles(enabled bool) *styles {
	s := &styles{
		err:    color.New(color.Bold, color.FgHiRed),
		prefix: color.New(color.FgHiBlue),
	}

	if enabled {
		s.err.EnableColor()
		s.prefix.EnableColor()
	} else {
		s.err.DisableColor()
		s.prefix.DisableColor()
	}
	return s
}

// colorEnabled resolves the --color mode. "auto" colors only a terminal
// and honors NO_COLOR.
func colorEnabled(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto", "":
		if os.Getenv("NO_COLOR") != "" {
			return false, nil
		}
		f, ok := w.(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil
	default:
		return false, fmt.Errorf("unknown color mode: %s", mode)
	}
}

// logger writes verbose diagnostics to stderr, prefixed with the tool name.
type logger struct {
	w       io.Writer
	name    string
	enabled bool
	styles  *styles
}

func newLogger(w io.Writer, name string, opts *options) *logger {
	enabled, _ := colorEnabled(opts.color, w)
	return &logger{
		w:       w,
		name:    name,
		enabled: opts.verbose,
		styles:  newStyles(enabled),
	}
}

func (l *logger) Printf(format string, args ...any) {
	if !l.enabled {
		return
	}
	fmt.Fprintf(l.w, "%s %s\n", l.styles.prefix.Sprint(l.name+":"), fmt.Sprintf(format, args...))
}
