package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/clarete/locparsec"
	"github.com/mattn/go-isatty"
)

// ANSI color codes for terminal output
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[1;31m"
	colorYellow = "\033[1;33m"
	colorGreen  = "\033[1;32m"
	colorCyan   = "\033[1;36m"
	colorGray   = "\033[0;37m"
)

type palette struct {
	enabled bool
}

// newPalette decides whether output written to `w` gets colors.  In
// auto mode only terminals do.
func newPalette(mode string, w io.Writer) (palette, error) {
	switch mode {
	case "always":
		return palette{enabled: true}, nil
	case "never":
		return palette{}, nil
	case "auto":
		f, ok := w.(*os.File)
		if !ok {
			return palette{}, nil
		}
		return palette{enabled: isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())}, nil
	default:
		return palette{}, fmt.Errorf("unknown color mode `%s` (expected auto, always or never)", mode)
	}
}

func (p palette) paint(color, s string) string {
	if !p.enabled {
		return s
	}
	return color + s + colorReset
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// printParsingError shows `input` with a caret under the position the
// error points at
func printParsingError(w io.Writer, p palette, input string, err error) {
	var loc locparsec.Location
	var incomplete *locparsec.IncompleteError
	var perr *locparsec.ParsingError
	switch {
	case errors.As(err, &incomplete):
		loc = incomplete.Location
	case errors.As(err, &perr):
		loc = perr.Location
	default:
		fmt.Fprintf(w, "%s %s\n", p.paint(colorRed, "ERROR:"), err)
		return
	}
	fmt.Fprintf(w, "%s %s\n", p.paint(colorRed, "ERROR:"), err)
	if loc.Line == 0 {
		fmt.Fprintf(w, "  %s\n", input)
		fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", loc.Column), p.paint(colorYellow, "^"))
	}
	if incomplete != nil && len(incomplete.Candidates) > 1 {
		for _, path := range incomplete.Candidates {
			fmt.Fprintf(w, "  %s %s\n", p.paint(colorGray, "candidate:"), path)
		}
	}
}
