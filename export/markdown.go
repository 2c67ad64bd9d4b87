package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/taggedpdf/structview/structure"
)

// Markdown writes the document's structure tree to w as markdown. Headings,
// paragraphs, block quotes, lists, tables, and figures map to their markdown
// forms; span attributes become emphasis markers.
func Markdown(doc structure.Document, w io.Writer) error {
	it := structure.NewIter(doc)
	if it == nil {
		return ErrNoStructure
	}
	m := &markdownWriter{w: w}
	return m.walk(it)
}

type markdownWriter struct {
	w io.Writer
}

func (m *markdownWriter) walk(it *structure.Iter) error {
	for {
		handled, err := m.element(it)
		if err != nil {
			return err
		}
		if !handled {
			if child := it.Child(); child != nil {
				if err := m.walk(child); err != nil {
					return err
				}
			}
		}
		if !it.Next() {
			return nil
		}
	}
}

func (m *markdownWriter) element(it *structure.Iter) (bool, error) {
	el := it.Element()
	kind := el.Kind()

	switch {
	case kind.HeadingLevel() > 0:
		heading := strings.Repeat("#", kind.HeadingLevel())
		return true, m.blockf("%s %s", heading, inlineMarkdown(collectSpans(it.Child())))

	case kind == structure.KindParagraph:
		return true, m.blockf("%s", inlineMarkdown(collectSpans(it.Child())))

	case kind == structure.KindBlockQuote || kind == structure.KindQuote:
		return true, m.blockf("> %s", spanText(collectSpans(it.Child())))

	case kind == structure.KindCode:
		return true, m.blockf("```\n%s\n```", spanText(collectSpans(it.Child())))

	case kind == structure.KindFigure:
		alt, _ := el.AltText()
		if actual, ok := el.ActualText(); ok {
			return true, m.blockf("%s", actual)
		}
		return true, m.blockf("![%s](#)", alt)

	case kind == structure.KindList:
		return true, m.list(it.Child())

	case kind == structure.KindTable:
		return true, m.table(it.Child())

	case kind == structure.KindContent:
		return true, m.blockf("%s", inlineMarkdown(el.TextSpans()))
	}

	return false, nil
}

func (m *markdownWriter) blockf(format string, args ...interface{}) error {
	text := fmt.Sprintf(format, args...)
	if strings.TrimSpace(text) == "" {
		return nil
	}
	_, err := fmt.Fprintf(m.w, "%s\n\n", text)
	return err
}

func (m *markdownWriter) list(items *structure.Iter) error {
	if items == nil {
		return nil
	}
	for {
		el := items.Element()
		if el.Kind() == structure.KindListItem {
			if _, err := fmt.Fprintf(m.w, "- %s\n", listItemText(items.Child())); err != nil {
				return err
			}
		}
		if !items.Next() {
			break
		}
	}
	_, err := fmt.Fprintln(m.w)
	return err
}

func listItemText(it *structure.Iter) string {
	if it == nil {
		return ""
	}
	var body strings.Builder
	for {
		el := it.Element()
		// The label is dropped: markdown supplies its own bullet.
		if el.Kind() != structure.KindListLabel {
			if el.IsContent() {
				body.WriteString(inlineMarkdown(el.TextSpans()))
			} else {
				body.WriteString(inlineMarkdown(collectSpans(it.Child())))
			}
		}
		if !it.Next() {
			return body.String()
		}
	}
}

func (m *markdownWriter) table(rows *structure.Iter) error {
	var grid [][]string
	collectMarkdownRows(rows, &grid)
	if len(grid) == 0 {
		return nil
	}
	cols := 0
	for _, row := range grid {
		if len(row) > cols {
			cols = len(row)
		}
	}
	for ri, row := range grid {
		cells := make([]string, cols)
		copy(cells, row)
		if _, err := fmt.Fprintf(m.w, "| %s |\n", strings.Join(cells, " | ")); err != nil {
			return err
		}
		if ri == 0 {
			seps := make([]string, cols)
			for i := range seps {
				seps[i] = "---"
			}
			if _, err := fmt.Fprintf(m.w, "| %s |\n", strings.Join(seps, " | ")); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(m.w)
	return err
}

func collectMarkdownRows(it *structure.Iter, grid *[][]string) {
	if it == nil {
		return
	}
	for {
		el := it.Element()
		switch el.Kind() {
		case structure.KindTableRow:
			var row []string
			if cells := it.Child(); cells != nil {
				for {
					cell := cells.Element()
					switch cell.Kind() {
					case structure.KindTableHeading, structure.KindTableData:
						row = append(row, spanText(collectSpans(cells.Child())))
					}
					if !cells.Next() {
						break
					}
				}
			}
			*grid = append(*grid, row)
		case structure.KindTableHeader, structure.KindTableBody, structure.KindTableFooter:
			collectMarkdownRows(it.Child(), grid)
		}
		if !it.Next() {
			return
		}
	}
}

// inlineMarkdown renders spans with emphasis markers: bold, italic, and
// fixed-width map to **, *, and backticks.
func inlineMarkdown(spans []structure.TextSpan) string {
	var b strings.Builder
	for _, s := range spans {
		text := s.Text
		switch {
		case s.IsFixedWidth():
			text = "`" + text + "`"
		case s.IsBold() && s.IsItalic():
			text = "***" + text + "***"
		case s.IsBold():
			text = "**" + text + "**"
		case s.IsItalic():
			text = "*" + text + "*"
		}
		b.WriteString(text)
	}
	return b.String()
}
