package structure

// memoText caches one lazily-computed derived string. Computed at most once
// and never invalidated; the underlying node is immutable.
type memoText struct {
	done bool
	val  string
	ok   bool
}

func (m *memoText) get(fetch func() ([]byte, bool)) (string, bool) {
	if !m.done {
		m.done = true
		if raw, present := fetch(); present {
			m.val = decodeText(raw)
			m.ok = true
		}
	}
	return m.val, m.ok
}

// Element binds one structure node to its owning document and exposes
// classification, scalar attributes, text, and span segmentation over it.
// Derived state is memoized per Element; a single Element must not be
// shared across goroutines without external synchronization.
type Element struct {
	doc  Document
	node Node

	id     memoText
	title  memoText
	lang   memoText
	abbrev memoText
	alt    memoText
	actual memoText
	text   memoText
	textR  memoText

	spans     []TextSpan
	spansDone bool
}

func newElement(doc Document, node Node) *Element {
	if node == nil {
		panic("structure: element requires a node")
	}
	return &Element{doc: doc, node: node}
}

// Kind returns the semantic classification of the element.
func (e *Element) Kind() Kind {
	return Classify(e.node.Role())
}

// PageIndex returns the 0-based index of the page containing the element,
// or -1 when the element has no page association.
func (e *Element) PageIndex() int {
	ref, ok := e.node.PageRef()
	if !ok {
		return -1
	}
	page, ok := e.doc.ResolvePageIndex(ref)
	if !ok {
		return -1
	}
	return page - 1
}

// IsContent reports whether the element is actual document content.
func (e *Element) IsContent() bool { return e.node.IsContent() }

// IsInline reports whether the element is an inline element.
func (e *Element) IsInline() bool { return e.node.IsInline() }

// IsBlock reports whether the element is a block element.
func (e *Element) IsBlock() bool { return e.node.IsBlock() }

// ID returns the identifier of the element, if defined.
func (e *Element) ID() (string, bool) {
	return e.id.get(e.node.ID)
}

// Title returns the title of the element, if defined.
func (e *Element) Title() (string, bool) {
	return e.title.get(e.node.Title)
}

// Language returns the language and country code of the element's content,
// e.g. "en-US", if defined.
func (e *Element) Language() (string, bool) {
	return e.lang.get(e.node.Language)
}

// Abbreviation returns the expanded text form of an abbreviation or
// acronym. Only elements of span role carry an expansion.
func (e *Element) Abbreviation() (string, bool) {
	if e.node.Role() != RoleSpan {
		return "", false
	}
	return e.abbrev.get(e.node.ExpandedAbbr)
}

// AltText returns the alternate text representation of the element and its
// children, mostly used for non-text elements like images and figures.
func (e *Element) AltText() (string, bool) {
	return e.alt.get(e.node.AltText)
}

// ActualText returns the text equivalent of graphics that have the
// appearance of text, like a logo.
func (e *Element) ActualText() (string, bool) {
	return e.actual.get(e.node.ActualText)
}

// Text returns the plain text enclosed by the element. When recursive is
// true the text of child elements is gathered depth-first in document
// order and included in the result.
func (e *Element) Text(recursive bool) (string, bool) {
	m := &e.text
	if recursive {
		m = &e.textR
	}
	return m.get(func() ([]byte, bool) {
		return e.node.PlainText(recursive)
	})
}

// TextSpans segments the element's marked-content operations into text
// runs with uniform rendering attributes. It returns nil for elements that
// are not content. The result is computed once and reused.
func (e *Element) TextSpans() []TextSpan {
	if !e.node.IsContent() {
		return nil
	}
	if !e.spansDone {
		e.spans = Segment(e.node.Ops())
		e.spansDone = true
	}
	return e.spans
}
