// Package memdoc provides an in-memory implementation of the structure
// boundary. It backs tests and tooling with documents assembled
// programmatically or loaded from the JSON fixture format.
package memdoc

import (
	"bytes"

	"github.com/taggedpdf/structview/structure"
)

// Document is an in-memory tagged document. Build it with the setters,
// then hand it to structure.NewIter; it must not be mutated afterwards.
type Document struct {
	tagged bool
	roots  []*Node
	pages  map[structure.PageRef]int
}

func New() *Document {
	return &Document{pages: make(map[structure.PageRef]int)}
}

// MarkTagged records that the document carries a structure tree even when
// no roots are added. AddRoot implies it.
func (d *Document) MarkTagged() *Document {
	d.tagged = true
	return d
}

// MapPage associates a page reference with its 1-based page number.
func (d *Document) MapPage(ref structure.PageRef, number int) *Document {
	d.pages[ref] = number
	return d
}

// AddRoot appends a top-level structure element.
func (d *Document) AddRoot(roots ...*Node) *Document {
	d.tagged = true
	d.roots = append(d.roots, roots...)
	return d
}

func (d *Document) HasStructure() bool { return d.tagged }
func (d *Document) RootCount() int     { return len(d.roots) }

func (d *Document) RootAt(i int) structure.Node { return d.roots[i] }

func (d *Document) ResolvePageIndex(ref structure.PageRef) (int, bool) {
	n, ok := d.pages[ref]
	return n, ok
}

// Node is one in-memory structure node.
type Node struct {
	role    structure.Role
	kids    []*Node
	page    structure.PageRef
	hasPage bool

	id       []byte
	title    []byte
	lang     []byte
	expanded []byte
	alt      []byte
	actual   []byte

	ops []structure.MCOp
}

// NewNode returns a structure node with the given role.
func NewNode(role structure.Role) *Node {
	return &Node{role: role}
}

// NewContent returns a content node carrying the given marked-content
// operations.
func NewContent(ops ...structure.MCOp) *Node {
	return &Node{role: structure.RoleMCID, ops: ops}
}

// Text returns a content node whose operations are the characters of s.
func Text(s string) *Node {
	ops := make([]structure.MCOp, 0, len(s))
	for _, r := range s {
		ops = append(ops, structure.CharOp(r))
	}
	return NewContent(ops...)
}

// Append adds child nodes in document order.
func (n *Node) Append(kids ...*Node) *Node {
	n.kids = append(n.kids, kids...)
	return n
}

func (n *Node) SetPage(ref structure.PageRef) *Node {
	n.page = ref
	n.hasPage = true
	return n
}

func (n *Node) SetID(s string) *Node           { n.id = []byte(s); return n }
func (n *Node) SetTitle(s string) *Node        { n.title = []byte(s); return n }
func (n *Node) SetLanguage(s string) *Node     { n.lang = []byte(s); return n }
func (n *Node) SetExpandedAbbr(s string) *Node { n.expanded = []byte(s); return n }
func (n *Node) SetAltText(s string) *Node      { n.alt = []byte(s); return n }
func (n *Node) SetActualText(s string) *Node   { n.actual = []byte(s); return n }

func (n *Node) Role() structure.Role { return n.role }
func (n *Node) ChildCount() int      { return len(n.kids) }

func (n *Node) ChildAt(i int) structure.Node { return n.kids[i] }

func (n *Node) PageRef() (structure.PageRef, bool) {
	return n.page, n.hasPage
}

func (n *Node) IsContent() bool { return n.role == structure.RoleMCID }
func (n *Node) IsInline() bool  { return inlineRoles[n.role] }
func (n *Node) IsBlock() bool   { return blockRoles[n.role] }

func attr(b []byte) ([]byte, bool) {
	if b == nil {
		return nil, false
	}
	return b, true
}

func (n *Node) ID() ([]byte, bool)           { return attr(n.id) }
func (n *Node) Title() ([]byte, bool)        { return attr(n.title) }
func (n *Node) Language() ([]byte, bool)     { return attr(n.lang) }
func (n *Node) ExpandedAbbr() ([]byte, bool) { return attr(n.expanded) }
func (n *Node) AltText() ([]byte, bool)      { return attr(n.alt) }
func (n *Node) ActualText() ([]byte, bool)   { return attr(n.actual) }

func (n *Node) Ops() []structure.MCOp { return n.ops }

// PlainText concatenates the node's character operations, followed, when
// recursive, by each child's text depth-first in stored order.
func (n *Node) PlainText(recursive bool) ([]byte, bool) {
	var buf bytes.Buffer
	n.writeText(&buf, recursive)
	if buf.Len() == 0 {
		return nil, false
	}
	return buf.Bytes(), true
}

func (n *Node) writeText(buf *bytes.Buffer, recursive bool) {
	for _, op := range n.ops {
		if op.Type == structure.OpChar {
			buf.WriteRune(op.Rune)
		}
	}
	if !recursive {
		return
	}
	for _, kid := range n.kids {
		kid.writeText(buf, true)
	}
}

// inlineRoles and blockRoles encode the inline/block classification of the
// standard structure types, per the tree format's layout model.
var inlineRoles = map[structure.Role]bool{
	structure.RoleSpan:      true,
	structure.RoleQuote:     true,
	structure.RoleNote:      true,
	structure.RoleReference: true,
	structure.RoleBibEntry:  true,
	structure.RoleCode:      true,
	structure.RoleLink:      true,
	structure.RoleAnnot:     true,
	structure.RoleRuby:      true,
	structure.RoleWarichu:   true,
}

var blockRoles = map[structure.Role]bool{
	structure.RoleP:          true,
	structure.RoleH:          true,
	structure.RoleH1:         true,
	structure.RoleH2:         true,
	structure.RoleH3:         true,
	structure.RoleH4:         true,
	structure.RoleH5:         true,
	structure.RoleH6:         true,
	structure.RoleL:          true,
	structure.RoleLI:         true,
	structure.RoleLbl:        true,
	structure.RoleLBody:      true,
	structure.RoleTable:      true,
	structure.RoleTR:         true,
	structure.RoleTH:         true,
	structure.RoleTD:         true,
	structure.RoleTHead:      true,
	structure.RoleTBody:      true,
	structure.RoleTFoot:      true,
	structure.RoleCaption:    true,
	structure.RoleBlockQuote: true,
	structure.RoleTOC:        true,
	structure.RoleTOCI:       true,
	structure.RoleIndex:      true,
	structure.RoleFigure:     true,
	structure.RoleFormula:    true,
	structure.RoleForm:       true,
}
