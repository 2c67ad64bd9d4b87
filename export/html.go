package export

import (
	"fmt"
	"html"
	"io"

	"github.com/taggedpdf/structview/structure"
)

// HTML writes the document's structure tree to w as a standalone HTML
// document. Structure kinds map to their closest HTML elements, scalar
// attributes become id/lang/title attributes, and span attributes become
// inline markup.
func HTML(doc structure.Document, w io.Writer) error {
	it := structure.NewIter(doc)
	if it == nil {
		return ErrNoStructure
	}
	h := &htmlWriter{w: w}

	lang := documentLanguage(it.Copy())
	if err := h.printf("<!DOCTYPE html>\n<html%s>\n<body>\n", langAttr(lang)); err != nil {
		return err
	}
	if err := h.walk(it); err != nil {
		return err
	}
	return h.printf("</body>\n</html>\n")
}

// documentLanguage is the language of the first root element carrying one.
func documentLanguage(it *structure.Iter) string {
	for {
		if lang, ok := it.Element().Language(); ok {
			return lang
		}
		if !it.Next() {
			return ""
		}
	}
}

func langAttr(lang string) string {
	if lang == "" {
		return ""
	}
	return fmt.Sprintf(" lang=%q", html.EscapeString(lang))
}

type htmlWriter struct {
	w io.Writer
}

func (h *htmlWriter) printf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(h.w, format, args...)
	return err
}

// htmlTags maps structure kinds to HTML elements. Kinds absent from the
// map contribute their children without a wrapping element.
var htmlTags = map[structure.Kind]string{
	structure.KindDocument:     "main",
	structure.KindPart:         "section",
	structure.KindArticle:      "article",
	structure.KindSection:      "section",
	structure.KindDiv:          "div",
	structure.KindSpan:         "span",
	structure.KindQuote:        "q",
	structure.KindNote:         "aside",
	structure.KindBibEntry:     "cite",
	structure.KindCode:         "code",
	structure.KindLink:         "a",
	structure.KindBlockQuote:   "blockquote",
	structure.KindCaption:      "figcaption",
	structure.KindTOC:          "nav",
	structure.KindParagraph:    "p",
	structure.KindHeading:      "h1",
	structure.KindHeading1:     "h1",
	structure.KindHeading2:     "h2",
	structure.KindHeading3:     "h3",
	structure.KindHeading4:     "h4",
	structure.KindHeading5:     "h5",
	structure.KindHeading6:     "h6",
	structure.KindList:         "ul",
	structure.KindListItem:     "li",
	structure.KindTable:        "table",
	structure.KindTableRow:     "tr",
	structure.KindTableHeading: "th",
	structure.KindTableData:    "td",
	structure.KindTableHeader:  "thead",
	structure.KindTableFooter:  "tfoot",
	structure.KindTableBody:    "tbody",
	structure.KindFigure:       "figure",
	structure.KindFormula:      "figure",
	structure.KindForm:         "form",
}

func (h *htmlWriter) walk(it *structure.Iter) error {
	for {
		if err := h.element(it); err != nil {
			return err
		}
		if !it.Next() {
			return nil
		}
	}
}

func (h *htmlWriter) element(it *structure.Iter) error {
	el := it.Element()
	kind := el.Kind()

	if kind == structure.KindContent {
		return h.spans(el.TextSpans())
	}

	tag, wrapped := htmlTags[kind]
	if wrapped {
		if err := h.printf("<%s%s>", tag, elementAttrs(el)); err != nil {
			return err
		}
	}

	if actual, ok := el.ActualText(); ok {
		if err := h.printf("%s", html.EscapeString(actual)); err != nil {
			return err
		}
	} else if kind == structure.KindFigure {
		if alt, hasAlt := el.AltText(); hasAlt {
			if err := h.printf("<img alt=%q>", html.EscapeString(alt)); err != nil {
				return err
			}
		}
	}

	if child := it.Child(); child != nil {
		if err := h.walk(child); err != nil {
			return err
		}
	}

	if wrapped {
		if err := h.printf("</%s>", tag); err != nil {
			return err
		}
		if el.IsBlock() || !el.IsInline() {
			return h.printf("\n")
		}
	}
	return nil
}

func elementAttrs(el *structure.Element) string {
	var attrs string
	if id, ok := el.ID(); ok {
		attrs += fmt.Sprintf(" id=%q", html.EscapeString(id))
	}
	if lang, ok := el.Language(); ok {
		attrs += fmt.Sprintf(" lang=%q", html.EscapeString(lang))
	}
	if title, ok := el.Title(); ok {
		attrs += fmt.Sprintf(" title=%q", html.EscapeString(title))
	}
	if abbrev, ok := el.Abbreviation(); ok {
		attrs += fmt.Sprintf(" data-expanded=%q", html.EscapeString(abbrev))
	}
	return attrs
}

// spans writes attributed text runs as inline markup: fixed-width becomes
// <code>, bold <b>, italic <i>; a color wraps the run in a styled <span>
// and a link target in an anchor.
func (h *htmlWriter) spans(spans []structure.TextSpan) error {
	for _, s := range spans {
		var open, closing string
		if s.IsLink() {
			open = fmt.Sprintf("<a href=%q>", html.EscapeString(s.LinkTarget))
			closing = "</a>"
		}
		if s.HasColor() {
			open += fmt.Sprintf(`<span style="color:#%06x">`, s.Color.Pixel())
			closing = "</span>" + closing
		}
		if s.IsFixedWidth() {
			open += "<code>"
			closing = "</code>" + closing
		}
		if s.IsBold() {
			open += "<b>"
			closing = "</b>" + closing
		}
		if s.IsItalic() {
			open += "<i>"
			closing = "</i>" + closing
		}
		if err := h.printf("%s%s%s", open, html.EscapeString(s.Text), closing); err != nil {
			return err
		}
	}
	return nil
}
