// Package stats derives reading statistics from a tagged document's
// segmented text: span, word, and grapheme-cluster counts, used by
// consumers for reading-time estimates.
package stats

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/taggedpdf/structview/structure"
)

// Stats accumulates counts over the content of a structure subtree.
// Graphemes counts user-perceived characters, which may differ from both
// bytes and runes for combining sequences and emoji.
type Stats struct {
	Spans     int
	Words     int
	Graphemes int
}

func (s *Stats) addText(text string) {
	s.Words += len(strings.Fields(text))
	s.Graphemes += uniseg.GraphemeClusterCount(text)
}

// ForDocument collects statistics over every content node of the
// document's structure tree. The zero Stats is returned for untagged
// documents.
func ForDocument(doc structure.Document) Stats {
	var s Stats
	if it := structure.NewIter(doc); it != nil {
		collect(it, &s)
	}
	return s
}

func collect(it *structure.Iter, s *Stats) {
	for {
		el := it.Element()
		if el.IsContent() {
			for _, span := range el.TextSpans() {
				s.Spans++
				s.addText(span.Text)
			}
		} else if child := it.Child(); child != nil {
			collect(child, s)
		}
		if !it.Next() {
			return
		}
	}
}
