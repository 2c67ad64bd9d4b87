package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// asciiTable lays out rows of cells as a bordered grid. Cell text may span
// multiple lines; column widths are measured with runewidth so East Asian
// wide characters keep the borders aligned.
type asciiTable struct {
	rows [][]string
}

func (t *asciiTable) render() string {
	cols := 0
	for _, row := range t.rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if cols == 0 {
		return ""
	}

	cellLines := make([][][]string, len(t.rows))
	widths := make([]int, cols)
	heights := make([]int, len(t.rows))

	for ri, row := range t.rows {
		cellLines[ri] = make([][]string, cols)
		for ci := 0; ci < cols; ci++ {
			lines := []string{""}
			if ci < len(row) && row[ci] != "" {
				lines = strings.Split(row[ci], "\n")
			}
			cellLines[ri][ci] = lines
			if len(lines) > heights[ri] {
				heights[ri] = len(lines)
			}
			for _, ln := range lines {
				if w := runewidth.StringWidth(ln); w > widths[ci] {
					widths[ci] = w
				}
			}
		}
	}

	var b strings.Builder
	writeBorder := func() {
		b.WriteByte('+')
		for _, w := range widths {
			b.WriteString(strings.Repeat("-", w+2))
			b.WriteByte('+')
		}
		b.WriteByte('\n')
	}

	writeBorder()
	for ri := range t.rows {
		for line := 0; line < heights[ri]; line++ {
			b.WriteByte('|')
			for ci := 0; ci < cols; ci++ {
				txt := ""
				if line < len(cellLines[ri][ci]) {
					txt = cellLines[ri][ci][line]
				}
				b.WriteByte(' ')
				b.WriteString(txt)
				b.WriteString(strings.Repeat(" ", widths[ci]-runewidth.StringWidth(txt)))
				b.WriteString(" |")
			}
			b.WriteByte('\n')
		}
		writeBorder()
	}
	return b.String()
}
