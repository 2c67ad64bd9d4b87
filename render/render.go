// Package render produces an accessible plain-text rendition of a tagged
// document's structure tree: headings and paragraphs in document order,
// figures replaced by their alternate text, tables laid out as ASCII grids.
package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/taggedpdf/structview/observability"
	"github.com/taggedpdf/structview/structure"
)

// ErrNoStructure is returned when the document carries no structure tree.
var ErrNoStructure = errors.New("render: document has no structure tree")

type Option func(*renderer)

// WithLogger makes the renderer emit a debug line per rendered block.
func WithLogger(l observability.Logger) Option {
	return func(r *renderer) { r.log = l }
}

type renderer struct {
	w   io.Writer
	log observability.Logger
}

// Text renders the document's structure tree to w as plain text.
func Text(doc structure.Document, w io.Writer, opts ...Option) error {
	it := structure.NewIter(doc)
	if it == nil {
		return ErrNoStructure
	}
	r := &renderer{w: w, log: observability.NopLogger{}}
	for _, o := range opts {
		o(r)
	}
	return r.walk(it)
}

func (r *renderer) walk(it *structure.Iter) error {
	for {
		handled, err := r.renderElement(it)
		if err != nil {
			return err
		}
		if !handled {
			if child := it.Child(); child != nil {
				if err := r.walk(child); err != nil {
					return err
				}
			}
		}
		if !it.Next() {
			return nil
		}
	}
}

// renderElement writes the element at the iterator's position. It reports
// whether the element consumed its own subtree, in which case the caller
// must not descend further.
func (r *renderer) renderElement(it *structure.Iter) (bool, error) {
	el := it.Element()
	kind := el.Kind()

	switch {
	case kind.HeadingLevel() > 0:
		r.log.Debug("render heading", observability.String("kind", kind.String()))
		return true, r.block(recursiveText(el))

	case kind == structure.KindParagraph || kind == structure.KindCaption:
		return true, r.block(recursiveText(el))

	case kind == structure.KindFigure || kind == structure.KindFormula:
		return true, r.block(figureText(el))

	case kind == structure.KindTable:
		r.log.Debug("render table")
		return true, r.renderTable(it)

	case kind == structure.KindList:
		return true, r.renderList(it.Child())

	case kind == structure.KindContent:
		if s, ok := el.Text(false); ok {
			return true, r.block(s)
		}
		return true, nil
	}

	// Grouping elements: descend.
	return false, nil
}

func (r *renderer) block(text string) error {
	if text == "" {
		return nil
	}
	_, err := fmt.Fprintf(r.w, "%s\n\n", text)
	return err
}

func (r *renderer) renderList(items *structure.Iter) error {
	if items == nil {
		return nil
	}
	for {
		el := items.Element()
		if el.Kind() == structure.KindListItem {
			label, body := listItemParts(items.Child())
			if label == "" {
				label = "-"
			}
			if _, err := fmt.Fprintf(r.w, "%s %s\n", label, body); err != nil {
				return err
			}
		}
		if !items.Next() {
			break
		}
	}
	_, err := fmt.Fprintln(r.w)
	return err
}

// listItemParts splits a list item into its label and body text.
func listItemParts(it *structure.Iter) (label, body string) {
	if it == nil {
		return "", ""
	}
	for {
		el := it.Element()
		switch el.Kind() {
		case structure.KindListLabel:
			label = recursiveText(el)
		case structure.KindListBody:
			body += recursiveText(el)
		default:
			body += recursiveText(el)
		}
		if !it.Next() {
			return label, body
		}
	}
}

func (r *renderer) renderTable(tableIt *structure.Iter) error {
	var tbl asciiTable
	if rows := tableIt.Child(); rows != nil {
		collectRows(rows, &tbl)
	}
	out := tbl.render()
	if out == "" {
		return nil
	}
	_, err := fmt.Fprintf(r.w, "%s\n", out)
	return err
}

func collectRows(it *structure.Iter, tbl *asciiTable) {
	for {
		el := it.Element()
		switch el.Kind() {
		case structure.KindTableRow:
			tbl.rows = append(tbl.rows, collectCells(it.Child()))
		case structure.KindTableHeader, structure.KindTableBody, structure.KindTableFooter:
			if child := it.Child(); child != nil {
				collectRows(child, tbl)
			}
		}
		if !it.Next() {
			return
		}
	}
}

func collectCells(it *structure.Iter) []string {
	var cells []string
	if it == nil {
		return cells
	}
	for {
		el := it.Element()
		switch el.Kind() {
		case structure.KindTableHeading, structure.KindTableData:
			cells = append(cells, recursiveText(el))
		}
		if !it.Next() {
			return cells
		}
	}
}

// recursiveText is the gathered text of an element's subtree, falling back
// to its actual-text replacement when no content text exists.
func recursiveText(el *structure.Element) string {
	if s, ok := el.Text(true); ok {
		return s
	}
	if s, ok := el.ActualText(); ok {
		return s
	}
	return ""
}

// figureText prefers actual text (text-lookalike graphics), then alternate
// text, then any enclosed text.
func figureText(el *structure.Element) string {
	if s, ok := el.ActualText(); ok {
		return s
	}
	if s, ok := el.AltText(); ok {
		return "[" + s + "]"
	}
	if s, ok := el.Text(true); ok {
		return s
	}
	return ""
}
