// Package asmbuf accumulates assembly-language text one line at a time,
// tracking which lines are labels so callers can patch or inspect them
// without re-parsing the buffer they just wrote.
package asmbuf

import (
	"fmt"
	"strings"
)

// row is one line of output: either an indented instruction/directive
// or an unindented label.
type row struct {
	text   string
	indent bool
}

// Builder is a line-buffering assembly-text accumulator. Every method
// that adds a row returns the Builder so calls can be chained.
type Builder struct {
	rows   []row
	labels map[string]int // label name -> row index, for lookups by callers that need it
}

func New() *Builder {
	return &Builder{labels: make(map[string]int)}
}

// Line appends an indented instruction or directive, e.g. "mov rax, 1".
func (b *Builder) Line(text string) *Builder {
	b.rows = append(b.rows, row{text: text, indent: true})
	return b
}

// Linef is Line with fmt.Sprintf-style formatting.
func (b *Builder) Linef(format string, args ...any) *Builder {
	return b.Line(fmt.Sprintf(format, args...))
}

// Label appends an unindented "name:" line and records its position.
func (b *Builder) Label(name string) *Builder {
	b.rows = append(b.rows, row{text: name + ":", indent: false})
	b.labels[name] = len(b.rows) - 1
	return b
}

// Directive appends an unindented assembler directive such as ".data"
// or ".section .rodata" without a trailing colon.
func (b *Builder) Directive(text string) *Builder {
	b.rows = append(b.rows, row{text: text, indent: false})
	return b
}

// HasLabel reports whether name has been emitted as a label so far.
func (b *Builder) HasLabel(name string) bool {
	_, ok := b.labels[name]
	return ok
}

// Build renders the buffer to its final text form: indented rows get a
// two-space prefix, everything ends with exactly one trailing newline
// per row.
func (b *Builder) Build() string {
	var sb strings.Builder
	for _, r := range b.rows {
		if r.indent {
			sb.WriteString("  ")
		}
		sb.WriteString(r.text)
		sb.WriteByte('\n')
	}
	return sb.String()
}
