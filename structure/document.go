// Package structure provides a read-only, hierarchical view over the logical
// structure tree of a tagged document, and extracts attribute-segmented text
// from its content nodes.
//
// The structure tree itself is produced by an external parser and consumed
// here through the Document and Node interfaces. To walk a tree, obtain an
// Iter with NewIter and advance it with Next, descending with Child:
//
//	func walk(it *structure.Iter) {
//		for {
//			el := it.Element()
//			// use el
//			if child := it.Child(); child != nil {
//				walk(child)
//			}
//			if !it.Next() {
//				return
//			}
//		}
//	}
package structure

// PageRef is an opaque reference to a page object in the owning document.
// It is resolved to a page number only through Document.ResolvePageIndex.
type PageRef struct {
	Num int
	Gen int
}

// Document is the boundary to the external document model. The tree behind
// it is immutable once built; all methods are read-only.
type Document interface {
	// HasStructure reports whether the document carries a structure tree.
	HasStructure() bool
	// RootCount returns the number of top-level structure elements.
	RootCount() int
	// RootAt returns the top-level element at index i.
	RootAt(i int) Node
	// ResolvePageIndex resolves a page reference to its 1-based page
	// number. The second result is false when the reference does not
	// name a page of this document.
	ResolvePageIndex(ref PageRef) (int, bool)
}

// Node is one immutable node of the structure tree. Scalar attribute getters
// return externally-encoded bytes which this package transcodes to UTF-8 on
// access; the second result is false when the attribute is not defined.
type Node interface {
	Role() Role
	ChildCount() int
	ChildAt(i int) Node
	PageRef() (PageRef, bool)

	IsContent() bool
	IsInline() bool
	IsBlock() bool

	ID() ([]byte, bool)
	Title() ([]byte, bool)
	Language() ([]byte, bool)
	ExpandedAbbr() ([]byte, bool)
	AltText() ([]byte, bool)
	ActualText() ([]byte, bool)

	// Ops returns the ordered marked-content operations of a content
	// node. Only valid when IsContent reports true.
	Ops() []MCOp
	// PlainText returns the raw text enclosed by the node, optionally
	// gathering child text recursively in document order.
	PlainText(recursive bool) ([]byte, bool)
}

// OpType discriminates the MCOp variants.
type OpType int

const (
	OpChar OpType = iota
	OpStyle
	OpColor
	OpFont
)

// StyleFlags is the style bit set carried by an OpStyle operation.
type StyleFlags uint32

const (
	StyleBold StyleFlags = 1 << iota
	StyleFixed
	StyleItalic
)

// RGB is a packed 8-bit-per-channel color.
type RGB struct {
	R, G, B uint8
}

// Pixel returns the color as a 0x00RRGGBB value.
func (c RGB) Pixel() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// MCOp is one marked-content operation: a character, or a change to an
// active rendering attribute. Type selects which of the remaining fields
// is meaningful.
type MCOp struct {
	Type  OpType
	Rune  rune
	Style StyleFlags
	Color RGB
	Font  string
}

// CharOp returns a character operation.
func CharOp(r rune) MCOp { return MCOp{Type: OpChar, Rune: r} }

// StyleOp returns a style operation. The flag set fully determines the
// bold, fixed-width, and italic state; bits absent from f are cleared.
func StyleOp(f StyleFlags) MCOp { return MCOp{Type: OpStyle, Style: f} }

// ColorOp returns a color operation. A zero-valued color is treated as
// "no color"; see Segment.
func ColorOp(c RGB) MCOp { return MCOp{Type: OpColor, Color: c} }

// FontOp returns a font-name operation. An empty name clears the active
// font.
func FontOp(name string) MCOp { return MCOp{Type: OpFont, Font: name} }
