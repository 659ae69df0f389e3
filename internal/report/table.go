package report

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// table accumulates rows and pads every column to its widest cell.
type table struct {
	header []string
	rows   [][]string
}

func newTable(header ...string) *table { return &table{header: header} }

func (t *table) add(cells ...string) { t.rows = append(t.rows, cells) }

func (t *table) widths() []int {
	w := make([]int, len(t.header))
	for j, h := range t.header {
		w[j] = runewidth.StringWidth(h)
	}
	for _, row := range t.rows {
		for j, c := range row {
			if sw := runewidth.StringWidth(c); j < len(w) && sw > w[j] {
				w[j] = sw
			}
		}
	}
	return w
}

func (t *table) write(w io.Writer) error {
	widths := t.widths()
	var b strings.Builder
	line := func(cells []string) {
		for j, c := range cells {
			if j > 0 {
				b.WriteString("  ")
			}
			if j == len(cells)-1 {
				b.WriteString(c)
				continue
			}
			b.WriteString(padRight(c, widths[j]))
		}
		b.WriteString("\n")
	}

	line(t.header)
	rule := make([]string, len(widths))
	for j, n := range widths {
		rule[j] = strings.Repeat("-", n)
	}
	line(rule)
	for _, row := range t.rows {
		line(row)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}
