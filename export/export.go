// Package export projects a tagged document's structure tree into markdown
// and HTML, carrying span attributes into the output markup.
package export

import (
	"errors"

	"github.com/taggedpdf/structview/structure"
)

// ErrNoStructure is returned when the document carries no structure tree.
var ErrNoStructure = errors.New("export: document has no structure tree")

// collectSpans gathers the attributed text runs under one element level,
// in document order. An element carrying actual text contributes it as a
// single unattributed run in place of its subtree (the replacement text
// for graphics that merely look like text).
func collectSpans(it *structure.Iter) []structure.TextSpan {
	var spans []structure.TextSpan
	if it == nil {
		return spans
	}
	for {
		el := it.Element()
		if actual, ok := el.ActualText(); ok {
			spans = append(spans, structure.TextSpan{Text: actual})
		} else if el.IsContent() {
			spans = append(spans, el.TextSpans()...)
		} else if child := it.Child(); child != nil {
			spans = append(spans, collectSpans(child)...)
		}
		if !it.Next() {
			return spans
		}
	}
}

func spanText(spans []structure.TextSpan) string {
	var out string
	for _, s := range spans {
		out += s.Text
	}
	return out
}
