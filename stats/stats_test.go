package stats

import (
	"testing"

	"github.com/taggedpdf/structview/memdoc"
	"github.com/taggedpdf/structview/structure"
)

func TestForDocumentUntagged(t *testing.T) {
	if s := ForDocument(memdoc.New()); s != (Stats{}) {
		t.Errorf("stats = %+v, want zero", s)
	}
}

func TestForDocument(t *testing.T) {
	bold := memdoc.NewContent(
		structure.CharOp('o'), structure.CharOp('n'), structure.CharOp('e'),
		structure.CharOp(' '),
		structure.StyleOp(structure.StyleBold),
		structure.CharOp('t'), structure.CharOp('w'), structure.CharOp('o'),
	)
	doc := memdoc.New().AddRoot(
		memdoc.NewNode(structure.RoleDocument).Append(
			memdoc.NewNode(structure.RoleP).Append(bold),
			memdoc.NewNode(structure.RoleP).Append(memdoc.Text("three four")),
		),
	)

	s := ForDocument(doc)
	// "one " and "two" segment separately; "three four" is one span.
	if s.Spans != 3 {
		t.Errorf("Spans = %d, want 3", s.Spans)
	}
	if s.Words != 4 {
		t.Errorf("Words = %d, want 4", s.Words)
	}
	if s.Graphemes != 17 {
		t.Errorf("Graphemes = %d, want 17", s.Graphemes)
	}
}

func TestGraphemesNotRunes(t *testing.T) {
	// "e" plus a combining acute accent is one user-perceived character.
	doc := memdoc.New().AddRoot(
		memdoc.NewNode(structure.RoleP).Append(memdoc.Text("é")),
	)
	s := ForDocument(doc)
	if s.Graphemes != 1 {
		t.Errorf("Graphemes = %d, want 1", s.Graphemes)
	}
	if s.Words != 1 || s.Spans != 1 {
		t.Errorf("stats = %+v", s)
	}
}
