package structure

// In-package stubs for the boundary interfaces. They double as call
// counters so memoization can be observed.

type stubDoc struct {
	tagged bool
	roots  []*stubNode
	pages  map[PageRef]int
}

func (d *stubDoc) HasStructure() bool { return d.tagged }
func (d *stubDoc) RootCount() int     { return len(d.roots) }
func (d *stubDoc) RootAt(i int) Node  { return d.roots[i] }

func (d *stubDoc) ResolvePageIndex(ref PageRef) (int, bool) {
	n, ok := d.pages[ref]
	return n, ok
}

type stubNode struct {
	role    Role
	kids    []*stubNode
	page    *PageRef
	content bool
	inline  bool
	block   bool

	id, title, lang, expanded, alt, actual []byte

	ops   []MCOp
	plain map[bool][]byte

	calls map[string]int
}

func (n *stubNode) count(name string) {
	if n.calls == nil {
		n.calls = make(map[string]int)
	}
	n.calls[name]++
}

func (n *stubNode) Role() Role      { return n.role }
func (n *stubNode) ChildCount() int { return len(n.kids) }

func (n *stubNode) ChildAt(i int) Node { return n.kids[i] }

func (n *stubNode) PageRef() (PageRef, bool) {
	if n.page == nil {
		return PageRef{}, false
	}
	return *n.page, true
}

func (n *stubNode) IsContent() bool { return n.content }
func (n *stubNode) IsInline() bool  { return n.inline }
func (n *stubNode) IsBlock() bool   { return n.block }

func attrBytes(b []byte) ([]byte, bool) {
	if b == nil {
		return nil, false
	}
	return b, true
}

func (n *stubNode) ID() ([]byte, bool) {
	n.count("ID")
	return attrBytes(n.id)
}

func (n *stubNode) Title() ([]byte, bool) {
	n.count("Title")
	return attrBytes(n.title)
}

func (n *stubNode) Language() ([]byte, bool) {
	n.count("Language")
	return attrBytes(n.lang)
}

func (n *stubNode) ExpandedAbbr() ([]byte, bool) {
	n.count("ExpandedAbbr")
	return attrBytes(n.expanded)
}

func (n *stubNode) AltText() ([]byte, bool) {
	n.count("AltText")
	return attrBytes(n.alt)
}

func (n *stubNode) ActualText() ([]byte, bool) {
	n.count("ActualText")
	return attrBytes(n.actual)
}

func (n *stubNode) Ops() []MCOp {
	n.count("Ops")
	return n.ops
}

func (n *stubNode) PlainText(recursive bool) ([]byte, bool) {
	n.count("PlainText")
	b, ok := n.plain[recursive]
	return b, ok && b != nil
}
