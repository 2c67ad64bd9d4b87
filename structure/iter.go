package structure

// level is the position discriminant of an Iter: either the document's
// top-level root list, or the child list of one parent node.
type level interface {
	count() int
	at(i int) Node
}

type rootLevel struct {
	doc Document
}

func (l rootLevel) count() int    { return l.doc.RootCount() }
func (l rootLevel) at(i int) Node { return l.doc.RootAt(i) }

type childLevel struct {
	parent Node
}

func (l childLevel) count() int    { return l.parent.ChildCount() }
func (l childLevel) at(i int) Node { return l.parent.ChildAt(i) }

// Iter traverses the siblings at one level of a document's structure tree.
// An Iter never owns tree nodes; it shares the document reference with any
// copies made from it. A single Iter must not be used from multiple
// goroutines, but independent Iters over the same document may.
type Iter struct {
	doc   Document
	level level
	index int
}

// NewIter returns an iterator over the document's top-level structure
// elements, positioned at the first one. It returns nil when the document
// has no structure tree or the tree has no top-level elements.
func NewIter(doc Document) *Iter {
	if doc == nil || !doc.HasStructure() {
		return nil
	}
	if doc.RootCount() == 0 {
		return nil
	}
	return &Iter{doc: doc, level: rootLevel{doc: doc}}
}

// Next advances the iterator to the next sibling. It returns false once the
// level is exhausted, and keeps returning false on further calls; the
// iterator never wraps.
func (it *Iter) Next() bool {
	it.index++
	return it.index < it.level.count()
}

// Element materializes the structure element at the current position.
// Calling it past the end of the level is a caller bug and panics.
func (it *Iter) Element() *Element {
	return newElement(it.doc, it.current())
}

// Child returns a new iterator over the children of the element at the
// current position, or nil when it has none. The receiver is not advanced.
func (it *Iter) Child() *Iter {
	node := it.current()
	if node.ChildCount() == 0 {
		return nil
	}
	return &Iter{doc: it.doc, level: childLevel{parent: node}}
}

// Copy returns an iterator at the same position. The copy shares the
// underlying document and advances independently.
func (it *Iter) Copy() *Iter {
	dup := *it
	return &dup
}

func (it *Iter) current() Node {
	if it.index >= it.level.count() {
		panic("structure: iterator index out of bounds")
	}
	return it.level.at(it.index)
}
