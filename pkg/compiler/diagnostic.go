package compiler

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/colorprofile"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// ColorMode mirrors the config file's color: auto|always|never knob.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// FormatDiagnostic renders a *LexError, *ParseError, or *SemanticError
// as its message followed by the offending source line and a caret
// under the error column, adding ANSI color only when mode and w allow
// it. Any other error is returned as its plain message. src is the
// original source text the error was produced from.
func FormatDiagnostic(w io.Writer, err error, src string, mode ColorMode) string {
	pe, ok := err.(posError)
	if !ok {
		return err.Error()
	}
	_, line, col := pe.position()

	profile := resolveProfile(w, mode)
	lines := strings.Split(src, "\n")
	var snippet, caret string
	if line >= 1 && line <= len(lines) {
		snippet = lines[line-1]
		caret = caretFor(snippet, col)
	}

	if profile <= colorprofile.Ascii {
		if snippet == "" {
			return err.Error()
		}
		return fmt.Sprintf("%s\n  %s\n  %s", err.Error(), snippet, caret)
	}

	bold := "\x1b[" + "1m"
	red := "\x1b[" + "1;31m"
	dim := "\x1b[" + "2m"
	reset := "\x1b[" + "0m"

	head := fmt.Sprintf("%serror:%s %s%s%s", red, reset, bold, err.Error(), reset)
	if snippet == "" {
		return head
	}
	return fmt.Sprintf("%s\n  %s%s%s\n  %s%s%s", head, dim, snippet, reset, red, caret, reset)
}

// caretFor builds a "   ^" marker under column col (1-based), accounting
// for wide runes and tabs so the caret lands under the offending byte
// even when the source line contains multi-cell characters.
func caretFor(line string, col int) string {
	if col < 1 {
		col = 1
	}
	runes := []rune(line)
	upTo := col - 1
	if upTo > len(runes) {
		upTo = len(runes)
	}
	var sb strings.Builder
	for _, r := range runes[:upTo] {
		if r == '\t' {
			sb.WriteByte('\t') // keep the tab so the caret line expands it the same way
		} else {
			sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
		}
	}
	sb.WriteByte('^')
	return sb.String()
}

func resolveProfile(w io.Writer, mode ColorMode) colorprofile.Profile {
	switch mode {
	case ColorAlways:
		return colorprofile.TrueColor
	case ColorNever:
		return colorprofile.Ascii
	default:
		f, ok := w.(*os.File)
		if !ok || !term.IsTerminal(int(f.Fd())) {
			return colorprofile.NoTTY
		}
		return colorprofile.Detect(w, os.Environ())
	}
}
