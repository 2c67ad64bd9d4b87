package structure

import "testing"

func taggedDoc(roots ...*stubNode) *stubDoc {
	return &stubDoc{tagged: true, roots: roots}
}

func TestNewIterAbsence(t *testing.T) {
	if it := NewIter(nil); it != nil {
		t.Error("expected nil iterator for nil document")
	}
	if it := NewIter(&stubDoc{}); it != nil {
		t.Error("expected nil iterator without structure tree")
	}
	if it := NewIter(&stubDoc{tagged: true}); it != nil {
		t.Error("expected nil iterator for tree with zero roots")
	}
}

func TestNextVisitsEveryRoot(t *testing.T) {
	doc := taggedDoc(
		&stubNode{role: RoleP},
		&stubNode{role: RoleP},
		&stubNode{role: RoleP},
	)
	it := NewIter(doc)
	if it == nil {
		t.Fatal("expected iterator")
	}

	visited := 1
	for it.Next() {
		visited++
	}
	if visited != 3 {
		t.Fatalf("visited %d positions, want 3", visited)
	}

	// Exhausted iterators stay exhausted.
	if it.Next() {
		t.Error("Next returned true after exhaustion")
	}
	if it.Next() {
		t.Error("Next returned true after exhaustion")
	}
}

func TestChild(t *testing.T) {
	leaf := &stubNode{role: RoleP}
	parent := &stubNode{role: RoleSect, kids: []*stubNode{
		{role: RoleP},
		{role: RoleP},
	}}
	it := NewIter(taggedDoc(parent, leaf))

	child := it.Child()
	if child == nil {
		t.Fatal("expected child iterator for node with children")
	}
	advances := 0
	for child.Next() {
		advances++
	}
	if advances != 1 {
		t.Errorf("child level advanced %d times, want child_count-1 = 1", advances)
	}

	if !it.Next() {
		t.Fatal("expected second root")
	}
	if got := it.Child(); got != nil {
		t.Error("expected nil child iterator for leaf")
	}
}

func TestChildDoesNotAdvanceParent(t *testing.T) {
	parent := &stubNode{role: RoleSect, kids: []*stubNode{{role: RoleP}}}
	it := NewIter(taggedDoc(parent))
	_ = it.Child()
	if it.Element().Kind() != KindSection {
		t.Error("Child moved the parent iterator")
	}
}

func TestCopyAdvancesIndependently(t *testing.T) {
	doc := taggedDoc(&stubNode{role: RoleH1}, &stubNode{role: RoleP})
	it := NewIter(doc)
	dup := it.Copy()

	if !dup.Next() {
		t.Fatal("copy failed to advance")
	}
	if dup.Element().Kind() != KindParagraph {
		t.Error("copy at wrong position after advance")
	}
	if it.Element().Kind() != KindHeading1 {
		t.Error("advancing the copy moved the original")
	}
}

func TestElementOutOfBoundsPanics(t *testing.T) {
	it := NewIter(taggedDoc(&stubNode{role: RoleP}))
	for it.Next() {
	}
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic materializing an exhausted iterator")
		}
	}()
	it.Element()
}

func TestPreOrderWalkOrder(t *testing.T) {
	// Document
	//   Sect(id=a)
	//     P(id=b)
	//     P(id=c)
	//   Sect(id=d)
	tree := &stubNode{role: RoleDocument, id: []byte("root"), kids: []*stubNode{
		{role: RoleSect, id: []byte("a"), kids: []*stubNode{
			{role: RoleP, id: []byte("b")},
			{role: RoleP, id: []byte("c")},
		}},
		{role: RoleSect, id: []byte("d")},
	}}
	it := NewIter(taggedDoc(tree))

	var order []string
	var walk func(it *Iter)
	walk = func(it *Iter) {
		for {
			id, _ := it.Element().ID()
			order = append(order, id)
			if child := it.Child(); child != nil {
				walk(child)
			}
			if !it.Next() {
				return
			}
		}
	}
	walk(it)

	want := []string{"root", "a", "b", "c", "d"}
	if len(order) != len(want) {
		t.Fatalf("visited %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("visited %v, want %v", order, want)
		}
	}
}
