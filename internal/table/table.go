// Package table renders simple ASCII tables with aligned columns. It is
// aware of ANSI escape sequences, so colored cell content does not break
// column alignment.
package table

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Alignment controls how cell content is padded within its column.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignCenter
)

var ansiPattern = regexp.MustCompile("\x1b\\[[0-9;]*m")

func stripAnsi(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// Table accumulates rows and renders them to a writer with +---+ borders.
type Table struct {
	writer          io.Writer
	header          []string
	rows            [][]string
	columnAlignment []Alignment
	headerAlignment []Alignment
}

// NewTable creates a table that renders to the given writer.
func NewTable(writer io.Writer) *Table {
	return &Table{writer: writer}
}

// WithHeader sets the header row.
func (t *Table) WithHeader(header []string) {
	t.header = header
}

// WithColumnAlignment sets the per-column alignment for body rows.
func (t *Table) WithColumnAlignment(alignment []Alignment) {
	t.columnAlignment = alignment
}

// WithHeaderAlignment sets the per-column alignment for the header row.
func (t *Table) WithHeaderAlignment(alignment []Alignment) {
	t.headerAlignment = alignment
}

// Append adds one body row.
func (t *Table) Append(row []string) {
	t.rows = append(t.rows, row)
}

func (t *Table) columnWidths() []int {
	widths := make([]int, len(t.header))
	for i, h := range t.header {
		widths[i] = len(stripAnsi(h))
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if w := len(stripAnsi(cell)); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func pad(cell string, width int, alignment Alignment) string {
	gap := width - len(stripAnsi(cell))
	if gap <= 0 {
		return cell
	}
	switch alignment {
	case AlignRight:
		return strings.Repeat(" ", gap) + cell
	case AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + cell + strings.Repeat(" ", gap-left)
	default:
		return cell + strings.Repeat(" ", gap)
	}
}

func (t *Table) writeBorder(widths []int) {
	var b strings.Builder
	b.WriteString("+")
	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w+2))
		b.WriteString("+")
	}
	fmt.Fprintln(t.writer, b.String())
}

func (t *Table) writeRow(row []string, widths []int, alignment []Alignment) {
	var b strings.Builder
	b.WriteString("|")
	for i, w := range widths {
		var cell string
		if i < len(row) {
			cell = row[i]
		}
		a := AlignLeft
		if i < len(alignment) {
			a = alignment[i]
		}
		b.WriteString(" ")
		b.WriteString(pad(cell, w, a))
		b.WriteString(" |")
	}
	fmt.Fprintln(t.writer, b.String())
}

// Render writes the table to the writer.
func (t *Table) Render() {
	widths := t.columnWidths()
	t.writeBorder(widths)
	if len(t.header) > 0 {
		t.writeRow(t.header, widths, t.headerAlignment)
		t.writeBorder(widths)
	}
	for _, row := range t.rows {
		t.writeRow(row, widths, t.columnAlignment)
	}
	t.writeBorder(widths)
}
